package tiffcore

import (
	"math"

	"github.com/vadz/gotiffcore/tifferr"
)

// This file is the wide-integer range-safety layer: every narrowing
// conversion the reader and writer perform (widening an on-disk SHORT/LONG
// into the directory model's uint64 arrays is always safe; going back the
// other way when the writer picks the narrowest on-disk type is not) goes
// through one of these helpers instead of a bare Go conversion, so an
// out-of-range value becomes a tifferr.Range error instead of silently
// wrapping.

// ToUint32 narrows v to uint32, or reports Range if it would overflow.
func ToUint32(op string, v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, errOp(op, tifferr.Range)
	}
	return uint32(v), nil
}

// ToUint16 narrows v to uint16, or reports Range if it would overflow.
func ToUint16(op string, v uint64) (uint16, error) {
	if v > math.MaxUint16 {
		return 0, errOp(op, tifferr.Range)
	}
	return uint16(v), nil
}

// ToUint8 narrows v to uint8, or reports Range if it would overflow.
func ToUint8(op string, v uint64) (uint8, error) {
	if v > math.MaxUint8 {
		return 0, errOp(op, tifferr.Range)
	}
	return uint8(v), nil
}

// ToInt32 narrows a signed wide value to int32, or reports Range.
func ToInt32(op string, v int64) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, errOp(op, tifferr.Range)
	}
	return int32(v), nil
}

// ToInt16 narrows a signed wide value to int16, or reports Range.
func ToInt16(op string, v int64) (int16, error) {
	if v > math.MaxInt16 || v < math.MinInt16 {
		return 0, errOp(op, tifferr.Range)
	}
	return int16(v), nil
}

// ToInt8 narrows a signed wide value to int8, or reports Range.
func ToInt8(op string, v int64) (int8, error) {
	if v > math.MaxInt8 || v < math.MinInt8 {
		return 0, errOp(op, tifferr.Range)
	}
	return int8(v), nil
}

// FitsType reports whether every value in vs fits in typ's on-disk range,
// used by the writer's narrowest-type selection (offsets/counts are
// widened internally to uint64 and narrowed back down to the smallest
// type that round-trips them).
func FitsType(vs []uint64, typ Type) bool {
	var max uint64
	switch typ {
	case BYTE:
		max = math.MaxUint8
	case SHORT:
		max = math.MaxUint16
	case LONG, IFD:
		max = math.MaxUint32
	case LONG8, IFD8:
		return true
	default:
		return false
	}
	for _, v := range vs {
		if v > max {
			return false
		}
	}
	return true
}

// NarrowestUintType returns the smallest of the candidate types (tried in
// the order given) that FitsType accepts for vs, or the last candidate if
// none fits exactly (the caller is expected to pass the widest legal type
// last so this never silently truncates).
func NarrowestUintType(vs []uint64, candidates ...Type) Type {
	for _, t := range candidates {
		if FitsType(vs, t) {
			return t
		}
	}
	if len(candidates) == 0 {
		return LONG8
	}
	return candidates[len(candidates)-1]
}

// CheckOffset reports a Range error if offset exceeds what flavor can
// represent: classic files are limited to a 4GiB address space.
func CheckOffset(op string, offset uint64, flavor Flavor) error {
	if offset > flavor.MaxOffset() {
		return errOp(op, tifferr.Range)
	}
	return nil
}

// CheckSizeSanity reports a SizeSanity error if n exceeds limit, the
// cross-check the reader applies to any count/size read from an untrusted
// file before allocating memory for it (e.g. a directory entry count, or a
// strip byte count compared against the remaining file size).
func CheckSizeSanity(op string, n, limit uint64) error {
	if n > limit {
		return errOp(op, tifferr.SizeSanity)
	}
	return nil
}
