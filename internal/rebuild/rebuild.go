// Package rebuild turns families of indexed scalar parameters into the
// array parameters they represent.
//
// The header stores per-buffer and per-channel values as separately named
// keys (StimBufLen_0, StimBufLen_1, ...). How many exist is only known from
// count and channel-mask parameters, so reconstruction must run after every
// line has been parsed. Consumed keys are removed from the store as they are
// read; a failing step leaves the removals it already made in place.
package rebuild

import (
	"fmt"

	"github.com/robert-malhotra/go-scanm/internal/param"
)

// Limits fixed by the acquisition hardware.
const (
	MaxStimChans         = 32
	MaxStimBufMapEntries = 128
	MaxInputChans        = 4
)

// Parameters that gate reconstruction.
const (
	KeyNumberOfStimBufs    = "NumberOfStimulusBuffers"
	KeyStimulusChannelMask = "StimulusChannelMask"
	KeyMaxStimBufMapLen    = "MaxStimulusBufferMapLength"
	KeyInputChannelMask    = "InputChannelMask"
)

// Indexed keys, formatted with fmt.Sprintf.
const (
	KeyFmtStimBufLen      = "StimBufLen_%d"
	KeyFmtTargetedStimDur = "TargetedStimDur_%d"
	KeyFmtRealStimDur     = "RealStimDur_%s_%d"
	KeyFmtStimBufMapEntr  = "StimBufMapEntr_%d_%d"
	KeyFmtInChanPixBufLen = "InChan_PixBufLen_%d"
)

// StimulusOutput is the analog output whose realized durations are recorded.
const StimulusOutput = "A"

// Derived keys.
const (
	KeyStimBufLenList      = "StimBufLenList"
	KeyTargetedStimDurList = "TargetedStimDurList"
	KeyRealStimDurList     = "RealStimDurList"
	KeyStimBufMapEntries   = "StimBufMapEntries"
	KeyNumberOfInputChans  = "NumberOfInputChans"
	KeyInChanPixBufLenList = "InChan_PixBufLenList"
)

// All runs every reconstruction in order.
func All(s *param.Store) error {
	steps := []struct {
		name string
		fn   func(*param.Store) error
	}{
		{"stimulus buffers", StimulusBuffers},
		{"stimulus buffer map", StimulusBufferMap},
		{"input pixel buffers", InputPixelBuffers},
	}
	for _, step := range steps {
		if err := step.fn(s); err != nil {
			return fmt.Errorf("rebuilding %s: %w", step.name, err)
		}
	}
	return nil
}

// StimulusBuffers collects buffer lengths, targeted durations and realized
// durations for every stimulus buffer into three parallel lists.
func StimulusBuffers(s *param.Store) error {
	n, err := unsigned(s, KeyNumberOfStimBufs)
	if err != nil {
		return err
	}

	lens := param.UInt32s{}
	targeted := param.Float64s{}
	realized := param.Float64s{}

	for i := uint64(0); i < n; i++ {
		l, err := take(s, fmt.Sprintf(KeyFmtStimBufLen, i), param.AsUint32)
		if err != nil {
			return err
		}
		lens = append(lens, l)

		f, err := take(s, fmt.Sprintf(KeyFmtTargetedStimDur, i), param.AsFloat64)
		if err != nil {
			return err
		}
		targeted = append(targeted, f)

		f, err = take(s, fmt.Sprintf(KeyFmtRealStimDur, StimulusOutput, i), param.AsFloat64)
		if err != nil {
			return err
		}
		realized = append(realized, f)
	}

	s.Upsert(KeyStimBufLenList, list(param.TypeUInt32, lens, len(lens)))
	s.Upsert(KeyTargetedStimDurList, list(param.TypeFloat64, targeted, len(targeted)))
	s.Upsert(KeyRealStimDurList, list(param.TypeFloat64, realized, len(realized)))
	return nil
}

// StimulusBufferMap fills a MaxStimChans x MaxStimBufMapEntries matrix. Rows
// of channels not set in the stimulus channel mask stay zero.
func StimulusBufferMap(s *param.Store) error {
	mask, err := unsigned(s, KeyStimulusChannelMask)
	if err != nil {
		return err
	}

	m := make(param.UInt64Matrix, MaxStimChans)
	for ch := range m {
		m[ch] = make([]uint64, MaxStimBufMapEntries)
	}

	if mask != 0 {
		mapLen, err := unsigned(s, KeyMaxStimBufMapLen)
		if err != nil {
			return err
		}
		if mapLen > MaxStimBufMapEntries {
			return fmt.Errorf("%w: %s = %d exceeds %d",
				param.ErrIndexOutOfRange, KeyMaxStimBufMapLen, mapLen, MaxStimBufMapEntries)
		}

		for ch := 0; ch < MaxStimChans; ch++ {
			if mask&(1<<ch) == 0 {
				continue
			}
			for j := 0; j < int(mapLen); j++ {
				if m[ch][j], err = take(s, fmt.Sprintf(KeyFmtStimBufMapEntr, ch, j), param.AsUnsigned); err != nil {
					return err
				}
			}
		}
	}

	s.Upsert(KeyStimBufMapEntries, &param.Entry{
		Type:  param.TypeUInt64,
		Shape: param.Shape{MaxStimChans, MaxStimBufMapEntries},
		Value: m,
	})
	return nil
}

// InputPixelBuffers collects the pixel buffer length of every enabled input
// channel. Pixel buffer keys are numbered densely over the enabled channels,
// so the k-th set bit of the mask reads InChan_PixBufLen_k.
func InputPixelBuffers(s *param.Store) error {
	mask, err := unsigned(s, KeyInputChannelMask)
	if err != nil {
		return err
	}

	lens := param.UInt32s{}
	for ch := 0; ch < MaxInputChans; ch++ {
		if mask&(1<<ch) == 0 {
			continue
		}
		l, err := take(s, fmt.Sprintf(KeyFmtInChanPixBufLen, len(lens)), param.AsUint32)
		if err != nil {
			return err
		}
		lens = append(lens, l)
	}

	s.Upsert(KeyNumberOfInputChans, param.NewScalar(param.TypeUInt32, param.UInt32(len(lens))))
	s.Upsert(KeyInChanPixBufLenList, list(param.TypeUInt32, lens, len(lens)))
	return nil
}

func unsigned(s *param.Store, key string) (uint64, error) {
	v, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	u, err := param.AsUnsigned(v)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", key, err)
	}
	return u, nil
}

// take converts the value of key and removes the key only if both the read
// and the conversion succeed.
func take[T any](s *param.Store, key string, conv func(param.Value) (T, error)) (T, error) {
	var zero T
	v, err := s.Get(key)
	if err != nil {
		return zero, err
	}
	out, err := conv(v)
	if err != nil {
		return zero, fmt.Errorf("%q: %w", key, err)
	}
	if _, err := s.Remove(key); err != nil {
		return zero, err
	}
	return out, nil
}

func list(t param.Type, v param.Value, n int) *param.Entry {
	return &param.Entry{Type: t, Shape: param.Shape{n}, Value: v}
}
