package tiffcore

// This file is the byte-order engine: in-place endian reversal of 16/32/64
// bit scalars and of contiguous arrays of same. None of the functions
// assume alignment — they operate on arbitrary byte offsets in raw
// directory buffers. Per-field decoding elsewhere in the package goes
// through encoding/binary with the file's declared order; these bulk
// helpers exist for the paths that mirror whole payloads between files of
// opposite endianness (tiffrepack's pixel-array copies, canonicalization
// of mapped strip arrays) where one pass over the slice beats re-decoding
// element by element.

// Swap16 reverses the two bytes at buf[0:2].
func Swap16(buf []byte) {
	buf[0], buf[1] = buf[1], buf[0]
}

// Swap32 reverses the four bytes at buf[0:4].
func Swap32(buf []byte) {
	buf[0], buf[3] = buf[3], buf[0]
	buf[1], buf[2] = buf[2], buf[1]
}

// Swap64 reverses the eight bytes at buf[0:8].
func Swap64(buf []byte) {
	for i := 0; i < 4; i++ {
		buf[i], buf[7-i] = buf[7-i], buf[i]
	}
}

// SwapShorts reverses every 2-byte group in buf, converting a contiguous
// array of uint16 values between endiannesses. A trailing odd byte is left
// untouched.
func SwapShorts(buf []byte) {
	for i := 0; i+2 <= len(buf); i += 2 {
		Swap16(buf[i:])
	}
}

// SwapLongs reverses every 4-byte group in buf.
func SwapLongs(buf []byte) {
	for i := 0; i+4 <= len(buf); i += 4 {
		Swap32(buf[i:])
	}
}

// SwapLong8s reverses every 8-byte group in buf (BigTIFF offsets and
// counts, LONG8/SLONG8/IFD8 payloads).
func SwapLong8s(buf []byte) {
	for i := 0; i+8 <= len(buf); i += 8 {
		Swap64(buf[i:])
	}
}

// SwapArrayForType reverses buf's element groups according to typ's
// on-disk width, doing nothing for the 1-byte types
// (BYTE/SBYTE/ASCII/UNDEFINED). RATIONAL and SRATIONAL are pairs of
// 32-bit halves, not single 8-byte words, so they swap as longs.
func SwapArrayForType(buf []byte, typ Type) {
	switch typ {
	case SHORT, SSHORT:
		SwapShorts(buf)
	case LONG, SLONG, FLOAT, IFD, RATIONAL, SRATIONAL:
		SwapLongs(buf)
	case DOUBLE, LONG8, SLONG8, IFD8:
		SwapLong8s(buf)
	}
}
