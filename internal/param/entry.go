package param

import "fmt"

// Shape is the element count of an entry: [n] for scalars (n == 1) and
// sequences, [rows, cols] for matrices.
type Shape []int

// Len returns the first dimension.
func (s Shape) Len() int {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

func (s Shape) String() string {
	switch len(s) {
	case 0:
		return "()"
	case 1:
		return fmt.Sprintf("%d", s[0])
	default:
		return fmt.Sprintf("(%d, %d)", s[0], s[1])
	}
}

// Entry is one parameter. Value is nil when the header declared the
// parameter without a usable value: unknown type tags, and unsigned
// integers written as "nan".
type Entry struct {
	Type  Type
	Shape Shape
	Value Value
}

// NewScalar returns a one-element entry.
func NewScalar(t Type, v Value) *Entry {
	return &Entry{Type: t, Shape: Shape{1}, Value: v}
}

// HasValue reports whether the entry carries a value.
func (e *Entry) HasValue() bool {
	return e.Value != nil
}

// At returns element i. Scalars return themselves for i == 0, sequences
// their i-th element and matrices their i-th row.
func (e *Entry) At(i int) (Value, error) {
	n := e.Shape.Len()
	if i < 0 || i >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	if e.Value == nil {
		return nil, ErrNoValue
	}

	switch v := e.Value.(type) {
	case Texts:
		return Text(v[i]), nil
	case Float64s:
		return Float64(v[i]), nil
	case UInt32s:
		return UInt32(v[i]), nil
	case UInt64s:
		return UInt64(v[i]), nil
	case UInt64Matrix:
		return UInt64s(v[i]), nil
	default:
		return v, nil
	}
}
