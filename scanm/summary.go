package scanm

import (
	"fmt"
	"strconv"
)

// SummaryField is one line of a header summary.
type SummaryField struct {
	Section string
	Label   string
	Value   string
}

const notAvailable = "n/a"

// Summary returns the acquisition settings most users look at first, in
// display order. Settings the file does not carry read "n/a".
func (h *Header) Summary() []SummaryField {
	u32 := func(f func() (uint32, error)) string {
		v, err := f()
		if err != nil {
			return notAvailable
		}
		return strconv.FormatUint(uint64(v), 10)
	}
	mask := func(f func() (uint64, error)) string {
		v, err := f()
		if err != nil {
			return notAvailable
		}
		return fmt.Sprintf("%04b", v)
	}
	float := func(f func() (float64, error), format string) string {
		v, err := f()
		if err != nil {
			return notAvailable
		}
		return fmt.Sprintf(format, v)
	}

	count, err := h.StimulusBufferCount()
	stimBufs := notAvailable
	if err == nil {
		stimBufs = strconv.FormatUint(count, 10)
	}

	return []SummaryField{
		{"Scan", "mode, type", u32(h.ScanMode) + ", " + u32(h.ScanType)},
		{"Pixel", "size", u32(h.PixelSizeBytes) + " bytes/pixel"},
		{"Pixel", "duration", float(h.PixelDurationMicros, "%g") + " us (" + float(h.TargetedPixelDurationMicros, "%g") + ")"},
		{"Frame", "x-y size", u32(h.FrameWidth) + " x " + u32(h.FrameHeight) + " pixels"},
		{"Frame", "x-offset", u32(h.LineOffset) + " pixels"},
		{"Frame", "x-retrace", u32(h.RetraceLength) + " pixels"},
		{"Frame", "count", u32(h.FrameCount) + " recorded"},
		{"Frame", "organisation", u32(h.PixelBuffersPerFrame) + " pixel buffers/frame"},
		{"Stimulus", "# of buffers", stimBufs},
		{"Stimulus", "mask", mask(h.StimulusChannelMask)},
		{"Input", "# of channels", u32(h.InputChannelCount)},
		{"Input", "mask", mask(h.InputChannelMask)},
		{"Zoom", "factor", float(h.Zoom, "%3.2f")},
	}
}
