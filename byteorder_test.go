package tiffcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapScalars(t *testing.T) {
	b2 := []byte{0x12, 0x34}
	Swap16(b2)
	assert.Equal(t, []byte{0x34, 0x12}, b2)

	b4 := []byte{0x12, 0x34, 0x56, 0x78}
	Swap32(b4)
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, b4)

	b8 := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	Swap64(b8)
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, b8)
}

func TestSwapArraysAreInvolutions(t *testing.T) {
	orig := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	buf := append([]byte(nil), orig...)
	SwapShorts(buf)
	assert.Equal(t, []byte{2, 1, 4, 3, 6, 5, 8, 7, 10, 9, 12, 11, 14, 13, 16, 15}, buf)
	SwapShorts(buf)
	assert.Equal(t, orig, buf)

	buf = append([]byte(nil), orig...)
	SwapLongs(buf)
	SwapLongs(buf)
	assert.Equal(t, orig, buf)

	buf = append([]byte(nil), orig...)
	SwapLong8s(buf)
	SwapLong8s(buf)
	assert.Equal(t, orig, buf)
}

func TestSwapShortsIgnoresTrailingOddByte(t *testing.T) {
	buf := []byte{1, 2, 3}
	SwapShorts(buf)
	assert.Equal(t, []byte{2, 1, 3}, buf)
}

func TestSwapArrayForTypeUsesElementWidth(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	short := append([]byte(nil), buf...)
	SwapArrayForType(short, SHORT)
	assert.Equal(t, []byte{2, 1, 4, 3, 6, 5, 8, 7}, short)

	// Rationals swap as two 32-bit halves, not one 64-bit word.
	rat := append([]byte(nil), buf...)
	SwapArrayForType(rat, RATIONAL)
	assert.Equal(t, []byte{4, 3, 2, 1, 8, 7, 6, 5}, rat)

	dbl := append([]byte(nil), buf...)
	SwapArrayForType(dbl, DOUBLE)
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, dbl)

	ascii := append([]byte(nil), buf...)
	SwapArrayForType(ascii, ASCII)
	assert.Equal(t, buf, ascii)
}
