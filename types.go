// Package tiffcore implements the directory (IFD) core of a TIFF and
// BigTIFF library: the binary parser that turns an on-disk IFD into an
// in-memory tag dictionary, the reciprocal writer, the field-type registry,
// and the byte-order / range-checking layer tying them together. Codec
// plug-ins, the raster strip/tile I/O path, and pixel-domain tools are
// external collaborators reached only through the interfaces in ioabi and
// Capabilities.
package tiffcore

import (
	"math"

	"github.com/vadz/gotiffcore/tifferr"
)

// Type is a TIFF primitive field type id, extended with the three
// BigTIFF-only 64-bit types beyond the classic thirteen.
type Type uint16

const (
	BYTE      Type = 1
	ASCII     Type = 2
	SHORT     Type = 3
	LONG      Type = 4
	RATIONAL  Type = 5
	SBYTE     Type = 6
	UNDEFINED Type = 7
	SSHORT    Type = 8
	SLONG     Type = 9
	SRATIONAL Type = 10
	FLOAT     Type = 11
	DOUBLE    Type = 12
	IFD       Type = 13
	// BigTIFF-only.
	LONG8  Type = 16
	SLONG8 Type = 17
	IFD8   Type = 18
)

var typeNames = map[Type]string{
	BYTE:      "BYTE",
	ASCII:     "ASCII",
	SHORT:     "SHORT",
	LONG:      "LONG",
	RATIONAL:  "RATIONAL",
	SBYTE:     "SBYTE",
	UNDEFINED: "UNDEFINED",
	SSHORT:    "SSHORT",
	SLONG:     "SLONG",
	SRATIONAL: "SRATIONAL",
	FLOAT:     "FLOAT",
	DOUBLE:    "DOUBLE",
	IFD:       "IFD",
	LONG8:     "LONG8",
	SLONG8:    "SLONG8",
	IFD8:      "IFD8",
}

// Name returns the TIFF-spec name of t, or "Unknown" if t isn't one of the
// thirteen (or, for BigTIFF, sixteen) primitive types.
func (t Type) Name() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

var typeSizes = map[Type]uint64{
	BYTE:      1,
	ASCII:     1,
	SHORT:     2,
	LONG:      4,
	RATIONAL:  8,
	SBYTE:     1,
	UNDEFINED: 1,
	SSHORT:    2,
	SLONG:     4,
	SRATIONAL: 8,
	FLOAT:     4,
	DOUBLE:    8,
	IFD:       4,
	LONG8:     8,
	SLONG8:    8,
	IFD8:      8,
}

// Size returns the on-disk byte width of a single value of type t, or 0 if
// t is not a recognized primitive type.
func (t Type) Size() uint64 {
	return typeSizes[t]
}

// IsIntegral reports whether t is one of the TIFF integer types.
func (t Type) IsIntegral() bool {
	switch t {
	case BYTE, SHORT, LONG, SBYTE, SSHORT, SLONG, LONG8, SLONG8:
		return true
	}
	return false
}

// IsRational reports whether t is RATIONAL or SRATIONAL.
func (t Type) IsRational() bool {
	return t == RATIONAL || t == SRATIONAL
}

// IsFloat reports whether t is FLOAT or DOUBLE.
func (t Type) IsFloat() bool {
	return t == FLOAT || t == DOUBLE
}

// IsSigned reports whether t's integer values are interpreted as signed.
func (t Type) IsSigned() bool {
	switch t {
	case SBYTE, SSHORT, SLONG, SLONG8, SRATIONAL:
		return true
	}
	return false
}

// IsBigTIFFOnly reports whether t only exists in BigTIFF files.
func (t Type) IsBigTIFFOnly() bool {
	return t == LONG8 || t == SLONG8 || t == IFD8
}

// Rational is a TIFF RATIONAL or SRATIONAL pair: the core exposes these to
// callers as a single float but preserves the numerator/denominator pair
// on disk.
type Rational struct {
	Numerator, Denominator uint32
}

// Float converts the pair to a float64. A zero denominator is an
// out-of-band encoding some encoders use for "integer value stored as a
// rational"; this treats it as the numerator itself rather than failing
// (see DESIGN.md).
func (r Rational) Float() float64 {
	if r.Denominator == 0 {
		return float64(r.Numerator)
	}
	return float64(r.Numerator) / float64(r.Denominator)
}

// RationalFromFloat encodes a non-negative float as a numerator and
// denominator pair. An exact integer becomes (v, 1); a value below 1
// scales the numerator against the largest 32-bit denominator; anything
// else scales the denominator against the largest 32-bit numerator. This
// keeps the full 32-bit fraction precision in range without overflowing
// either half.
func RationalFromFloat(v float64) (Rational, bool) {
	const maxU32 = 1<<32 - 1
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Rational{}, false
	}
	if v == math.Trunc(v) && v <= maxU32 {
		return Rational{Numerator: uint32(v), Denominator: 1}, true
	}
	if v < 1 {
		return Rational{Numerator: uint32(math.Round(v * maxU32)), Denominator: maxU32}, true
	}
	den := math.Round(maxU32 / v)
	if den < 1 {
		den = 1
	}
	return Rational{Numerator: maxU32, Denominator: uint32(den)}, true
}

// SRational is the signed counterpart of Rational.
type SRational struct {
	Numerator, Denominator int32
}

func (r SRational) Float() float64 {
	if r.Denominator == 0 {
		return float64(r.Numerator)
	}
	return float64(r.Numerator) / float64(r.Denominator)
}

// Flavor distinguishes classic 32-bit TIFF from 64-bit BigTIFF.
type Flavor uint8

const (
	Classic Flavor = iota
	BigTIFF
)

// HeaderSize returns the on-disk header size for f: 8 bytes classic, 16
// bytes BigTIFF.
func (f Flavor) HeaderSize() int {
	if f == BigTIFF {
		return 16
	}
	return 8
}

// EntrySize returns the on-disk directory entry size for f: 12 bytes
// classic, 20 bytes BigTIFF.
func (f Flavor) EntrySize() int {
	if f == BigTIFF {
		return 20
	}
	return 12
}

// OffsetSize returns the width of an offset/count field for f: 4 bytes
// classic, 8 bytes BigTIFF.
func (f Flavor) OffsetSize() int {
	if f == BigTIFF {
		return 8
	}
	return 4
}

// MaxOffset returns the largest representable offset for f, used by the
// writer's narrowest-type selection and the rule that classic files stay
// under a 4GiB address space.
func (f Flavor) MaxOffset() uint64 {
	if f == BigTIFF {
		return 1<<64 - 1
	}
	return 1<<32 - 1
}

// errOp is a small helper so every file in this package builds
// *tifferr.Error consistently without repeating the op string type.
func errOp(op string, kind tifferr.Kind) *tifferr.Error {
	return tifferr.New(op, kind)
}
