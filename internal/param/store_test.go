package param

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreUpsertAndGet(t *testing.T) {
	s := NewStore()
	s.Upsert("FrameWidth", NewScalar(TypeUInt32, UInt32(80)))
	s.Upsert("Comment", NewScalar(TypeText, Text("n/a")))

	v, err := s.Get("FrameWidth")
	require.NoError(t, err)
	w, err := AsUint32(v)
	require.NoError(t, err)
	assert.Equal(t, uint32(80), w)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"FrameWidth", "Comment"}, s.Keys())
}

func TestStoreLastWriteWins(t *testing.T) {
	s := NewStore()
	s.Upsert("A", NewScalar(TypeUInt32, UInt32(1)))
	s.Upsert("B", NewScalar(TypeUInt32, UInt32(2)))
	s.Upsert("A", NewScalar(TypeFloat64, Float64(3.5)))

	v, err := s.Get("A")
	require.NoError(t, err)
	assert.Equal(t, Float64(3.5), v)
	assert.Equal(t, []string{"A", "B"}, s.Keys(), "replaced key keeps its position")
}

func TestStoreKeyNotFound(t *testing.T) {
	s := NewStore()

	_, err := s.Get("Missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	_, err = s.GetAt("Missing", 0)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	_, err = s.Remove("Missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	_, err = s.Take("Missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestStoreUnsetValue(t *testing.T) {
	s := NewStore()
	s.Upsert("Junk", NewScalar(TypeUnknown, nil))
	s.Upsert("ZLensShifty", NewScalar(TypeUInt32, nil))

	for _, key := range []string{"Junk", "ZLensShifty"} {
		_, err := s.Get(key)
		assert.ErrorIs(t, err, ErrNoValue, key)
		assert.ErrorIs(t, err, ErrKeyNotFound, key)

		e, err := s.Lookup(key)
		require.NoError(t, err)
		assert.False(t, e.HasValue())
	}

	// A failed take leaves the key in place
	_, err := s.Take("Junk")
	require.Error(t, err)
	_, err = s.Lookup("Junk")
	assert.NoError(t, err)
}

func TestStoreGetAt(t *testing.T) {
	s := NewStore()
	s.Upsert("Scalar", NewScalar(TypeFloat64, Float64(0.65)))
	s.Upsert("List", &Entry{Type: TypeUInt32, Shape: Shape{3}, Value: UInt32s{5120, 2560, 1280}})
	s.Upsert("Names", &Entry{Type: TypeText, Shape: Shape{2}, Value: Texts{"XYScan2", "5120"}})
	s.Upsert("Map", &Entry{Type: TypeUInt64, Shape: Shape{2, 3}, Value: UInt64Matrix{{1, 2, 3}, {4, 5, 6}}})

	tests := []struct {
		key  string
		i    int
		want Value
	}{
		{"Scalar", 0, Float64(0.65)},
		{"List", 0, UInt32(5120)},
		{"List", 2, UInt32(1280)},
		{"Names", 1, Text("5120")},
		{"Map", 1, UInt64s{4, 5, 6}},
	}
	for _, tt := range tests {
		got, err := s.GetAt(tt.key, tt.i)
		require.NoError(t, err, "%s[%d]", tt.key, tt.i)
		assert.Equal(t, tt.want, got, "%s[%d]", tt.key, tt.i)
	}

	outOfRange := []struct {
		key string
		i   int
	}{
		{"Scalar", 1},
		{"List", 3},
		{"List", -1},
		{"Map", 2},
	}
	for _, tt := range outOfRange {
		_, err := s.GetAt(tt.key, tt.i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "%s[%d]", tt.key, tt.i)
	}
}

func TestStoreTakeRemoves(t *testing.T) {
	s := NewStore()
	s.Upsert("StimBufLen_0", NewScalar(TypeUInt32, UInt32(5120)))

	v, err := s.Take("StimBufLen_0")
	require.NoError(t, err)
	assert.Equal(t, UInt32(5120), v)
	assert.Equal(t, 0, s.Len())

	e, err := s.Remove("StimBufLen_0")
	assert.Nil(t, e)
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestStoreAllStopsEarly(t *testing.T) {
	s := NewStore()
	for _, k := range []string{"a", "b", "c"} {
		s.Upsert(k, NewScalar(TypeText, Text(k)))
	}

	var seen []string
	for k := range s.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestTypedAccessorsFailFast(t *testing.T) {
	_, err := AsUint32(UInt64(1))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = AsFloat64(UInt32(1))
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = AsText(Texts{"a", "b"})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = AsMatrix(UInt64s{1})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	u, err := AsUnsigned(UInt32(7))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), u)

	u, err = AsUnsigned(UInt64(1 << 40))
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40), u)

	_, err = AsUnsigned(Float64(1))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "0.65", Float64(0.65).String())
	assert.Equal(t, "[XYScan2 5120]", Texts{"XYScan2", "5120"}.String())
	assert.Equal(t, "[1 2]", UInt32s{1, 2}.String())
	assert.Equal(t, "<2x3 uint64>", UInt64Matrix{{0, 0, 0}, {0, 0, 0}}.String())
	assert.Equal(t, "(32, 128)", Shape{32, 128}.String())
	assert.Equal(t, "uint32", TypeUInt32.String())
}
