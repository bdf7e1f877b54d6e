// Package param holds typed header parameters and the ordered table that
// stores them.
package param

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors
var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrNoValue         = fmt.Errorf("%w: parameter has no value", ErrKeyNotFound)
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrTypeMismatch    = errors.New("type mismatch")
)

// Type is the declared type of a parameter.
type Type int

const (
	TypeUnknown Type = iota
	TypeText
	TypeFloat64
	TypeUInt32
	TypeUInt64
)

func (t Type) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeFloat64:
		return "float64"
	case TypeUInt32:
		return "uint32"
	case TypeUInt64:
		return "uint64"
	default:
		return "unknown"
	}
}

// Value is one of Text, Texts, Float64, Float64s, UInt32, UInt32s, UInt64,
// UInt64s or UInt64Matrix.
type Value interface {
	isValue()
	String() string
}

type (
	Text         string
	Texts        []string
	Float64      float64
	Float64s     []float64
	UInt32       uint32
	UInt32s      []uint32
	UInt64       uint64
	UInt64s      []uint64
	UInt64Matrix [][]uint64
)

func (Text) isValue()         {}
func (Texts) isValue()        {}
func (Float64) isValue()      {}
func (Float64s) isValue()     {}
func (UInt32) isValue()       {}
func (UInt32s) isValue()      {}
func (UInt64) isValue()       {}
func (UInt64s) isValue()      {}
func (UInt64Matrix) isValue() {}

func (v Text) String() string    { return string(v) }
func (v Texts) String() string   { return "[" + strings.Join(v, " ") + "]" }
func (v Float64) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v UInt32) String() string  { return strconv.FormatUint(uint64(v), 10) }
func (v UInt64) String() string  { return strconv.FormatUint(uint64(v), 10) }

func (v Float64s) String() string { return fmt.Sprint([]float64(v)) }
func (v UInt32s) String() string  { return fmt.Sprint([]uint32(v)) }
func (v UInt64s) String() string  { return fmt.Sprint([]uint64(v)) }

func (v UInt64Matrix) String() string {
	rows, cols := len(v), 0
	if rows > 0 {
		cols = len(v[0])
	}
	return fmt.Sprintf("<%dx%d uint64>", rows, cols)
}

// AsText returns v as a scalar string.
func AsText(v Value) (string, error) {
	if t, ok := v.(Text); ok {
		return string(t), nil
	}
	return "", mismatch("text", v)
}

// AsTexts returns v as a string list.
func AsTexts(v Value) ([]string, error) {
	if t, ok := v.(Texts); ok {
		return t, nil
	}
	return nil, mismatch("text list", v)
}

// AsFloat64 returns v as a scalar float.
func AsFloat64(v Value) (float64, error) {
	if f, ok := v.(Float64); ok {
		return float64(f), nil
	}
	return 0, mismatch("float64", v)
}

// AsFloat64s returns v as a float list.
func AsFloat64s(v Value) ([]float64, error) {
	if f, ok := v.(Float64s); ok {
		return f, nil
	}
	return nil, mismatch("float64 list", v)
}

// AsUint32 returns v as a scalar uint32.
func AsUint32(v Value) (uint32, error) {
	if u, ok := v.(UInt32); ok {
		return uint32(u), nil
	}
	return 0, mismatch("uint32", v)
}

// AsUint32s returns v as a uint32 list.
func AsUint32s(v Value) ([]uint32, error) {
	if u, ok := v.(UInt32s); ok {
		return u, nil
	}
	return nil, mismatch("uint32 list", v)
}

// AsUint64 returns v as a scalar uint64.
func AsUint64(v Value) (uint64, error) {
	if u, ok := v.(UInt64); ok {
		return uint64(u), nil
	}
	return 0, mismatch("uint64", v)
}

// AsUint64s returns v as a uint64 list.
func AsUint64s(v Value) ([]uint64, error) {
	if u, ok := v.(UInt64s); ok {
		return u, nil
	}
	return nil, mismatch("uint64 list", v)
}

// AsMatrix returns v as a uint64 matrix.
func AsMatrix(v Value) ([][]uint64, error) {
	if m, ok := v.(UInt64Matrix); ok {
		return m, nil
	}
	return nil, mismatch("uint64 matrix", v)
}

// AsUnsigned returns a scalar of either unsigned width as uint64. Channel
// masks and counts are written as uint32 or uint64 depending on the
// acquisition software version.
func AsUnsigned(v Value) (uint64, error) {
	switch u := v.(type) {
	case UInt32:
		return uint64(u), nil
	case UInt64:
		return uint64(u), nil
	}
	return 0, mismatch("unsigned integer", v)
}

func mismatch(want string, got Value) error {
	return fmt.Errorf("%w: want %s, have %T", ErrTypeMismatch, want, got)
}
