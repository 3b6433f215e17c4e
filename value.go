package tiffcore

import (
	"fmt"
)

// Value is a dynamically-typed tag value: a tagged variant over the dozen
// TIFF primitive types plus their vector forms. The value's shape is a
// function of Kind, and typed accessors do the unwrapping so callers never
// need a type switch of their own for the common cases.
type Value struct {
	Kind Type
	raw  any
}

// NewByteValue wraps a BYTE array.
func NewByteValue(v []uint8) Value { return Value{Kind: BYTE, raw: v} }

// NewSByteValue wraps an SBYTE array.
func NewSByteValue(v []int8) Value { return Value{Kind: SBYTE, raw: v} }

// NewShortValue wraps a SHORT array.
func NewShortValue(v []uint16) Value { return Value{Kind: SHORT, raw: v} }

// NewSShortValue wraps an SSHORT array.
func NewSShortValue(v []int16) Value { return Value{Kind: SSHORT, raw: v} }

// NewLongValue wraps a LONG array.
func NewLongValue(v []uint32) Value { return Value{Kind: LONG, raw: v} }

// NewSLongValue wraps an SLONG array.
func NewSLongValue(v []int32) Value { return Value{Kind: SLONG, raw: v} }

// NewLong8Value wraps a LONG8 array (BigTIFF only).
func NewLong8Value(v []uint64) Value { return Value{Kind: LONG8, raw: v} }

// NewSLong8Value wraps an SLONG8 array (BigTIFF only).
func NewSLong8Value(v []int64) Value { return Value{Kind: SLONG8, raw: v} }

// NewRationalValue wraps a RATIONAL array.
func NewRationalValue(v []Rational) Value { return Value{Kind: RATIONAL, raw: v} }

// NewSRationalValue wraps an SRATIONAL array.
func NewSRationalValue(v []SRational) Value { return Value{Kind: SRATIONAL, raw: v} }

// NewFloatValue wraps a FLOAT array.
func NewFloatValue(v []float32) Value { return Value{Kind: FLOAT, raw: v} }

// NewDoubleValue wraps a DOUBLE array.
func NewDoubleValue(v []float64) Value { return Value{Kind: DOUBLE, raw: v} }

// NewASCIIValue wraps a NUL-terminated ASCII string. The terminator is
// implicit; callers pass the Go string without it.
func NewASCIIValue(v string) Value { return Value{Kind: ASCII, raw: v} }

// NewUndefinedValue wraps an opaque UNDEFINED byte blob.
func NewUndefinedValue(v []byte) Value { return Value{Kind: UNDEFINED, raw: v} }

// Count returns the number of elements the value holds. For ASCII it is
// the on-disk byte length, len(string)+1 for the implicit NUL terminator,
// matching the TIFF convention that ASCII's Count is a byte length.
func (v Value) Count() int {
	switch r := v.raw.(type) {
	case []uint8:
		return len(r)
	case []int8:
		return len(r)
	case []uint16:
		return len(r)
	case []int16:
		return len(r)
	case []uint32:
		return len(r)
	case []int32:
		return len(r)
	case []uint64:
		return len(r)
	case []int64:
		return len(r)
	case []Rational:
		return len(r)
	case []SRational:
		return len(r)
	case []float32:
		return len(r)
	case []float64:
		return len(r)
	case string:
		return len(r) + 1
	default:
		return 0
	}
}

// Bytes returns the BYTE slice and whether v actually holds one.
func (v Value) Bytes() ([]uint8, bool) { r, ok := v.raw.([]uint8); return r, ok }

// SBytes returns the SBYTE slice and whether v actually holds one.
func (v Value) SBytes() ([]int8, bool) { r, ok := v.raw.([]int8); return r, ok }

// Shorts returns the SHORT slice and whether v actually holds one.
func (v Value) Shorts() ([]uint16, bool) { r, ok := v.raw.([]uint16); return r, ok }

// SShorts returns the SSHORT slice and whether v actually holds one.
func (v Value) SShorts() ([]int16, bool) { r, ok := v.raw.([]int16); return r, ok }

// Longs returns the LONG slice and whether v actually holds one.
func (v Value) Longs() ([]uint32, bool) { r, ok := v.raw.([]uint32); return r, ok }

// SLongs returns the SLONG slice and whether v actually holds one.
func (v Value) SLongs() ([]int32, bool) { r, ok := v.raw.([]int32); return r, ok }

// Long8s returns the LONG8 slice and whether v actually holds one.
func (v Value) Long8s() ([]uint64, bool) { r, ok := v.raw.([]uint64); return r, ok }

// SLong8s returns the SLONG8 slice and whether v actually holds one.
func (v Value) SLong8s() ([]int64, bool) { r, ok := v.raw.([]int64); return r, ok }

// Rationals returns the RATIONAL slice and whether v actually holds one.
func (v Value) Rationals() ([]Rational, bool) { r, ok := v.raw.([]Rational); return r, ok }

// SRationals returns the SRATIONAL slice and whether v actually holds one.
func (v Value) SRationals() ([]SRational, bool) { r, ok := v.raw.([]SRational); return r, ok }

// Floats returns the FLOAT slice and whether v actually holds one.
func (v Value) Floats() ([]float32, bool) { r, ok := v.raw.([]float32); return r, ok }

// Doubles returns the DOUBLE slice and whether v actually holds one.
func (v Value) Doubles() ([]float64, bool) { r, ok := v.raw.([]float64); return r, ok }

// ASCII returns the string and whether v actually holds an ASCII value.
func (v Value) ASCII() (string, bool) { r, ok := v.raw.(string); return r, ok }

// Undefined returns the opaque byte blob and whether v actually holds one.
func (v Value) Undefined() ([]byte, bool) { r, ok := v.raw.([]byte); return r, ok }

// AnyUint widens the i'th element to uint64 regardless of its concrete
// integer kind. ok is false if v doesn't hold an integral kind, i is out
// of range, or the element is negative.
func (v Value) AnyUint(i int) (uint64, bool) {
	switch r := v.raw.(type) {
	case []uint8:
		if i < 0 || i >= len(r) {
			return 0, false
		}
		return uint64(r[i]), true
	case []uint16:
		if i < 0 || i >= len(r) {
			return 0, false
		}
		return uint64(r[i]), true
	case []uint32:
		if i < 0 || i >= len(r) {
			return 0, false
		}
		return uint64(r[i]), true
	case []uint64:
		if i < 0 || i >= len(r) {
			return 0, false
		}
		return r[i], true
	case []int8:
		if i < 0 || i >= len(r) || r[i] < 0 {
			return 0, false
		}
		return uint64(r[i]), true
	case []int16:
		if i < 0 || i >= len(r) || r[i] < 0 {
			return 0, false
		}
		return uint64(r[i]), true
	case []int32:
		if i < 0 || i >= len(r) || r[i] < 0 {
			return 0, false
		}
		return uint64(r[i]), true
	case []int64:
		if i < 0 || i >= len(r) || r[i] < 0 {
			return 0, false
		}
		return uint64(r[i]), true
	default:
		return 0, false
	}
}

// AnyFloat widens the i'th element to float64 regardless of whether v
// holds FLOAT, DOUBLE, an integer kind, or a rational pair.
func (v Value) AnyFloat(i int) (float64, bool) {
	switch r := v.raw.(type) {
	case []float32:
		if i < 0 || i >= len(r) {
			return 0, false
		}
		return float64(r[i]), true
	case []float64:
		if i < 0 || i >= len(r) {
			return 0, false
		}
		return r[i], true
	case []Rational:
		if i < 0 || i >= len(r) {
			return 0, false
		}
		return r[i].Float(), true
	case []SRational:
		if i < 0 || i >= len(r) {
			return 0, false
		}
		return r[i].Float(), true
	default:
		if u, ok := v.AnyUint(i); ok {
			return float64(u), true
		}
		return 0, false
	}
}

// String renders v for diagnostics; it is not used for on-disk ASCII
// serialization.
func (v Value) String() string {
	return fmt.Sprintf("%s%v", v.Kind.Name(), v.raw)
}
