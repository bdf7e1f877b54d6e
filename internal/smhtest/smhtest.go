// Package smhtest builds synthetic ScanM header files for tests.
package smhtest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/robert-malhotra/go-scanm/internal/preheader"
)

// FixedGUID is the GUID written by Build unless a File overrides it.
var FixedGUID = uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")

// File describes a header file to synthesize.
type File struct {
	GUID    uuid.UUID
	Lines   []string
	Padding int // zero bytes appended after the last line
}

// EncodeText encodes lines the way ScanM writes them: every character as a
// zero byte followed by its code, every line terminated by a newline pair.
// Characters above U+00FF cannot be represented and panic.
func EncodeText(lines ...string) []byte {
	var out []byte
	for _, ln := range lines {
		for _, r := range ln + "\n" {
			if r > 0xFF {
				panic(fmt.Sprintf("smhtest: character %q not representable", r))
			}
			out = append(out, 0, byte(r))
		}
	}
	return out
}

// Build returns the complete byte image of f.
func Build(f File) []byte {
	guid := f.GUID
	if guid == uuid.Nil {
		guid = FixedGUID
	}
	text := EncodeText(f.Lines...)

	ph := &preheader.PreHeader{
		FileTypeID:               "SMH",
		GUID:                     guid,
		HeaderSizeBytes:          uint64(preheader.Size + len(text) + f.Padding),
		HeaderLengthInValuePairs: uint64(len(f.Lines)),
		HeaderStartBytes:         preheader.Size,
	}

	data := preheader.Encode(ph)
	data = append(data, text...)
	data = append(data, make([]byte, f.Padding)...)
	return data
}

// WriteFile writes data as <dir>/<name>.smh and returns the path without the
// extension, which is how header files are addressed.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	base := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(base+".smh", data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return base
}

// MinimalLines returns a self-consistent parameter set: two stimulus
// buffers, stimulus channels 0 and 2 with a map length of 2, and input
// channels 0 and 1.
func MinimalLines() []string {
	return []string{
		"string#ComputerName=RIG-2P",
		"string#ScanPathFunc=XYScan2|5120|80|64|10|6|0|1",
		"string#Comment=n/a",
		"uint32#PixelSizeInBytes=2",
		"real32#TargetedPixelDuration_µs=5.0",
		"real32#RealPixelDuration_µs=5.0",
		"uint32#ScanMode=0",
		"uint32#ScanType=0",
		"uint32#FrameWidth=80",
		"uint32#FrameHeight=64",
		"uint32#PixRetraceLen=10",
		"uint32#XPixLineOffs=6",
		"uint32#ChunksPerFrame=1",
		"uint32#FrameCounter=388",
		"real32#Zoom=0.65",
		"uint64#HeaderLengthInValuePairs=71",
		"uint32#NumberOfStimulusBuffers=2",
		"uint32#StimBufLen_0=5120",
		"uint32#StimBufLen_1=2560",
		"real32#TargetedStimDur_0=128000",
		"real32#TargetedStimDur_1=64000",
		"real32#RealStimDur_A_0=128000.5",
		"real32#RealStimDur_A_1=64000.25",
		"uint32#StimulusChannelMask=5",
		"uint32#MaxStimulusBufferMapLength=2",
		"uint32#StimBufMapEntr_0_0=0",
		"uint32#StimBufMapEntr_0_1=1",
		"uint32#StimBufMapEntr_2_0=1",
		"uint32#StimBufMapEntr_2_1=0",
		"uint32#InputChannelMask=3",
		"uint32#InChan_PixBufLen_0=2560",
		"uint32#InChan_PixBufLen_1=2560",
	}
}
