package tiffcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueCounts(t *testing.T) {
	assert.Equal(t, 3, NewShortValue([]uint16{1, 2, 3}).Count())
	assert.Equal(t, 2, NewRationalValue([]Rational{{1, 2}, {3, 4}}).Count())
	// ASCII counts include the implicit NUL terminator.
	assert.Equal(t, 6, NewASCIIValue("hello").Count())
	assert.Equal(t, 1, NewASCIIValue("").Count())
	assert.Equal(t, 4, NewUndefinedValue([]byte{1, 2, 3, 4}).Count())
}

func TestAnyUintWidensAllIntegerKinds(t *testing.T) {
	cases := []Value{
		NewByteValue([]uint8{42}),
		NewShortValue([]uint16{42}),
		NewLongValue([]uint32{42}),
		NewLong8Value([]uint64{42}),
		NewSByteValue([]int8{42}),
		NewSShortValue([]int16{42}),
		NewSLongValue([]int32{42}),
		NewSLong8Value([]int64{42}),
	}
	for _, v := range cases {
		u, ok := v.AnyUint(0)
		require.True(t, ok, v.Kind.Name())
		assert.EqualValues(t, 42, u, v.Kind.Name())
	}
}

func TestAnyUintRejectsNegativesAndOutOfRange(t *testing.T) {
	_, ok := NewSLongValue([]int32{-1}).AnyUint(0)
	assert.False(t, ok)
	_, ok = NewShortValue([]uint16{1}).AnyUint(5)
	assert.False(t, ok)
	_, ok = NewASCIIValue("x").AnyUint(0)
	assert.False(t, ok)
}

func TestAnyFloatCoversFloatsRationalsAndIntegers(t *testing.T) {
	f, ok := NewFloatValue([]float32{1.5}).AnyFloat(0)
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	f, ok = NewDoubleValue([]float64{2.5}).AnyFloat(0)
	require.True(t, ok)
	assert.Equal(t, 2.5, f)

	f, ok = NewRationalValue([]Rational{{1, 4}}).AnyFloat(0)
	require.True(t, ok)
	assert.Equal(t, 0.25, f)

	f, ok = NewSRationalValue([]SRational{{-1, 4}}).AnyFloat(0)
	require.True(t, ok)
	assert.Equal(t, -0.25, f)

	f, ok = NewShortValue([]uint16{7}).AnyFloat(0)
	require.True(t, ok)
	assert.Equal(t, 7.0, f)
}

func TestRationalZeroDenominatorReadsAsNumerator(t *testing.T) {
	assert.Equal(t, 42.0, Rational{Numerator: 42, Denominator: 0}.Float())
	assert.Equal(t, -42.0, SRational{Numerator: -42, Denominator: 0}.Float())
}

func TestRationalFromFloat(t *testing.T) {
	r, ok := RationalFromFloat(300)
	require.True(t, ok)
	assert.Equal(t, Rational{Numerator: 300, Denominator: 1}, r)

	r, ok = RationalFromFloat(0.25)
	require.True(t, ok)
	assert.Equal(t, uint32(1<<32-1), r.Denominator)
	assert.InDelta(t, 0.25, r.Float(), 1e-9)

	r, ok = RationalFromFloat(72.5)
	require.True(t, ok)
	assert.Equal(t, uint32(1<<32-1), r.Numerator)
	assert.InDelta(t, 72.5, r.Float(), 1e-5)

	_, ok = RationalFromFloat(-1)
	assert.False(t, ok)
}

func TestTypeProperties(t *testing.T) {
	assert.EqualValues(t, 1, BYTE.Size())
	assert.EqualValues(t, 2, SHORT.Size())
	assert.EqualValues(t, 4, LONG.Size())
	assert.EqualValues(t, 8, RATIONAL.Size())
	assert.EqualValues(t, 8, LONG8.Size())
	assert.EqualValues(t, 0, Type(99).Size())

	assert.True(t, LONG8.IsBigTIFFOnly())
	assert.False(t, LONG.IsBigTIFFOnly())
	assert.True(t, SLONG.IsSigned())
	assert.False(t, LONG.IsSigned())
	assert.True(t, RATIONAL.IsRational())
	assert.True(t, DOUBLE.IsFloat())
	assert.Equal(t, "SHORT", SHORT.Name())
	assert.Equal(t, "Unknown", Type(99).Name())
}
