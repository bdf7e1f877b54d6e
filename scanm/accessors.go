package scanm

import (
	"fmt"

	"github.com/robert-malhotra/go-scanm/internal/param"
	"github.com/robert-malhotra/go-scanm/internal/rebuild"
)

// Parameter names.
const (
	KeyComment               = "Comment"
	KeyScanPathFunc          = "ScanPathFunc"
	KeyScanMode              = "ScanMode"
	KeyScanType              = "ScanType"
	KeyPixelSizeInBytes      = "PixelSizeInBytes"
	KeyTargetedPixelDuration = "TargetedPixelDuration_µs"
	KeyRealPixelDuration     = "RealPixelDuration_µs"
	KeyFrameCounter          = "FrameCounter"
	KeyChunksPerFrame        = "ChunksPerFrame"
	KeyFrameWidth            = "FrameWidth"
	KeyFrameHeight           = "FrameHeight"
	KeyXPixLineOffs          = "XPixLineOffs"
	KeyPixRetraceLen         = "PixRetraceLen"
	KeyZoom                  = "Zoom"
	KeyNumberOfStimulusBufs  = rebuild.KeyNumberOfStimBufs
	KeyStimulusChannelMask   = rebuild.KeyStimulusChannelMask
	KeyMaxStimBufMapLen      = rebuild.KeyMaxStimBufMapLen
	KeyInputChannelMask      = rebuild.KeyInputChannelMask
	KeyStimBufLenList        = rebuild.KeyStimBufLenList
	KeyTargetedStimDurList   = rebuild.KeyTargetedStimDurList
	KeyRealStimDurList       = rebuild.KeyRealStimDurList
	KeyStimBufMapEntries     = rebuild.KeyStimBufMapEntries
	KeyNumberOfInputChans    = rebuild.KeyNumberOfInputChans
	KeyInChanPixBufLenList   = rebuild.KeyInChanPixBufLenList
)

// Limits of the acquisition hardware.
const (
	MaxStimulusChannels      = rebuild.MaxStimChans
	MaxStimulusBufferMapSize = rebuild.MaxStimBufMapEntries
	MaxInputChannels         = rebuild.MaxInputChans
)

// getAs fetches key and converts it, naming the key on failure.
func getAs[T any](h *Header, key string, conv func(param.Value) (T, error)) (T, error) {
	var zero T
	v, err := h.params.Get(key)
	if err != nil {
		return zero, err
	}
	out, err := conv(v)
	if err != nil {
		return zero, fmt.Errorf("%q: %w", key, err)
	}
	return out, nil
}

// ScanMode returns the scan mode.
func (h *Header) ScanMode() (uint32, error) {
	return getAs(h, KeyScanMode, param.AsUint32)
}

// ScanType returns the scan type.
func (h *Header) ScanType() (uint32, error) {
	return getAs(h, KeyScanType, param.AsUint32)
}

// PixelSizeBytes returns the size of one pixel in bytes.
func (h *Header) PixelSizeBytes() (uint32, error) {
	return getAs(h, KeyPixelSizeInBytes, param.AsUint32)
}

// TargetedPixelDurationMicros returns the requested pixel dwell time in µs.
func (h *Header) TargetedPixelDurationMicros() (float64, error) {
	return getAs(h, KeyTargetedPixelDuration, param.AsFloat64)
}

// PixelDurationMicros returns the realized pixel dwell time in µs.
func (h *Header) PixelDurationMicros() (float64, error) {
	return getAs(h, KeyRealPixelDuration, param.AsFloat64)
}

// FrameCount returns the number of recorded frames.
func (h *Header) FrameCount() (uint32, error) {
	return getAs(h, KeyFrameCounter, param.AsUint32)
}

// PixelBuffersPerFrame returns how many pixel buffers make up one frame.
func (h *Header) PixelBuffersPerFrame() (uint32, error) {
	return getAs(h, KeyChunksPerFrame, param.AsUint32)
}

// FrameWidth returns the frame width in pixels, retrace and offset included.
func (h *Header) FrameWidth() (uint32, error) {
	return getAs(h, KeyFrameWidth, param.AsUint32)
}

// FrameHeight returns the frame height in pixels.
func (h *Header) FrameHeight() (uint32, error) {
	return getAs(h, KeyFrameHeight, param.AsUint32)
}

// LineOffset returns the x offset of each line in pixels.
func (h *Header) LineOffset() (uint32, error) {
	return getAs(h, KeyXPixLineOffs, param.AsUint32)
}

// RetraceLength returns the x retrace length in pixels.
func (h *Header) RetraceLength() (uint32, error) {
	return getAs(h, KeyPixRetraceLen, param.AsUint32)
}

// StimulusBufferCount returns the number of stimulus buffers.
func (h *Header) StimulusBufferCount() (uint64, error) {
	return getAs(h, KeyNumberOfStimulusBufs, param.AsUnsigned)
}

// StimulusChannelMask returns the enabled stimulus (analog output) channels.
func (h *Header) StimulusChannelMask() (uint64, error) {
	return getAs(h, KeyStimulusChannelMask, param.AsUnsigned)
}

// InputChannelCount returns the number of enabled input channels.
func (h *Header) InputChannelCount() (uint32, error) {
	return getAs(h, KeyNumberOfInputChans, param.AsUint32)
}

// InputChannelMask returns the enabled input (analog input) channels.
func (h *Header) InputChannelMask() (uint64, error) {
	return getAs(h, KeyInputChannelMask, param.AsUnsigned)
}

// Zoom returns the zoom factor.
func (h *Header) Zoom() (float64, error) {
	return getAs(h, KeyZoom, param.AsFloat64)
}

// StimulusBufferLengths returns the length of each stimulus buffer.
func (h *Header) StimulusBufferLengths() ([]uint32, error) {
	return getAs(h, KeyStimBufLenList, param.AsUint32s)
}

// TargetedStimulusDurations returns the requested duration of each stimulus
// buffer.
func (h *Header) TargetedStimulusDurations() ([]float64, error) {
	return getAs(h, KeyTargetedStimDurList, param.AsFloat64s)
}

// StimulusDurations returns the realized duration of each stimulus buffer.
func (h *Header) StimulusDurations() ([]float64, error) {
	return getAs(h, KeyRealStimDurList, param.AsFloat64s)
}

// StimulusBufferMap returns the MaxStimulusChannels x
// MaxStimulusBufferMapSize buffer map. Rows of disabled channels are zero.
func (h *Header) StimulusBufferMap() ([][]uint64, error) {
	return getAs(h, KeyStimBufMapEntries, param.AsMatrix)
}

// InputPixelBufferLengths returns the pixel buffer length of each enabled
// input channel, in channel order.
func (h *Header) InputPixelBufferLengths() ([]uint32, error) {
	return getAs(h, KeyInChanPixBufLenList, param.AsUint32s)
}

// ScanPathFunc returns the scan path function and its arguments.
func (h *Header) ScanPathFunc() ([]string, error) {
	v, err := h.params.Get(KeyScanPathFunc)
	if err != nil {
		return nil, err
	}
	if t, ok := v.(param.Text); ok {
		return []string{string(t)}, nil
	}
	return getAs(h, KeyScanPathFunc, param.AsTexts)
}

// Comment returns the user comment.
func (h *Header) Comment() (string, error) {
	return getAs(h, KeyComment, param.AsText)
}
