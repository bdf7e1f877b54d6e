package textdec

import (
	"bytes"
	"strings"
	"testing"
)

// pairs encodes s as zero/code byte pairs, the common on-disk form.
func pairs(s string) []byte {
	var out []byte
	for _, r := range s {
		out = append(out, 0, byte(r))
	}
	return out
}

func TestDecodeLineASCII(t *testing.T) {
	raw := pairs("uint32#FrameWidth=80\n")

	got := DecodeLine(raw)
	if got != "uint32#FrameWidth=80" {
		t.Errorf("DecodeLine = %q", got)
	}
}

func TestDecodeLineExtendedPair(t *testing.T) {
	// 'µ' stored directly as a pair: 00 B5
	raw := pairs("real32#RealPixelDuration_µs=5\n")

	got := DecodeLine(raw)
	if got != "real32#RealPixelDuration_µs=5" {
		t.Errorf("DecodeLine = %q", got)
	}
}

func TestDecodeLineTriple(t *testing.T) {
	// "_µs\n" after UTF-8 transcoding: 00 '_' 00 C2 B5 00 's' 00 0A
	// C2 is emitted first, then the B5 00 's' group replaces it with 'µ'
	// and appends 's'.
	raw := []byte{0, '_', 0, 0xC2, 0xB5, 0, 's', 0, '\n'}

	got := DecodeLine(raw)
	if got != "_µs" {
		t.Errorf("DecodeLine = %q, want %q", got, "_µs")
	}
}

func TestDecodeLineTripleAtStart(t *testing.T) {
	// A group with nothing to replace appends both characters.
	raw := []byte{0xB5, 0, 'x', 0, '\n'}

	got := DecodeLine(raw)
	if got != "µx" {
		t.Errorf("DecodeLine = %q, want %q", got, "µx")
	}
}

func TestDecodeLineTruncatedGroup(t *testing.T) {
	raw := []byte{0, 'a', 0, 'b', 0xB5, 0}

	got := DecodeLine(raw)
	if got != "ab" {
		t.Errorf("DecodeLine = %q, want %q", got, "ab")
	}
}

func TestDecodeLineEmpty(t *testing.T) {
	for _, raw := range [][]byte{nil, {0}, {0, '\n'}} {
		if got := DecodeLine(raw); got != "" {
			t.Errorf("DecodeLine(%x) = %q, want empty", raw, got)
		}
	}
}

func TestDecodeLineAllBytes(t *testing.T) {
	// Every non-zero, non-newline byte maps to the code point of equal value.
	for b := 1; b < 256; b++ {
		if b == '\n' {
			continue
		}
		raw := []byte{0, byte(b), 0, '\n'}
		got := []rune(DecodeLine(raw))
		if len(got) != 1 || got[0] != rune(b) {
			t.Fatalf("byte 0x%02x decoded as %q", b, string(got))
		}
	}
}

func TestScannerLines(t *testing.T) {
	var data []byte
	data = append(data, pairs("string#A=x\n")...)
	data = append(data, pairs("\n")...) // empty line is skipped
	data = append(data, pairs("uint32#B=1\n")...)

	lines, err := Lines(data)
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	want := []string{"string#A=x", "uint32#B=1"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("Lines = %q, want %q", lines, want)
	}
}

func TestScannerStopsAtNul(t *testing.T) {
	var data []byte
	data = append(data, pairs("uint32#A=1\n")...)
	data = append(data, make([]byte, 256)...) // zero padding
	data = append(data, pairs("\nuint32#Ghost=2\n")...)

	lines, err := Lines(data)
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	if len(lines) != 1 || lines[0] != "uint32#A=1" {
		t.Errorf("Lines = %q, want only the first line", lines)
	}
}

func TestScannerNoContent(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":   nil,
		"padding": make([]byte, 128),
		"blank":   pairs("\n\n\n"),
	} {
		t.Run(name, func(t *testing.T) {
			lines, err := Lines(data)
			if err != nil {
				t.Fatalf("Lines failed: %v", err)
			}
			if len(lines) != 0 {
				t.Errorf("expected no lines, got %q", lines)
			}
		})
	}
}

func TestScannerRestartable(t *testing.T) {
	data := pairs("uint32#A=1\nuint32#B=2\n")

	first := NewScanner(bytes.NewReader(data))
	if !first.Scan() {
		t.Fatal("expected a line")
	}

	second, err := Lines(data)
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	if len(second) != 2 {
		t.Errorf("second pass got %d lines, want 2", len(second))
	}
	if first.RawLines() != 1 {
		t.Errorf("RawLines = %d, want 1", first.RawLines())
	}
}
