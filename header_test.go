package tiffcore

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadz/gotiffcore/ioabi"
)

func TestPutHeaderThenReadHeaderClassic(t *testing.T) {
	dev := ioabi.NewMemoryDevice(nil)
	require.NoError(t, PutHeader(dev, binary.LittleEndian, Classic))
	require.NoError(t, PatchFirstIFDOffset(dev, binary.LittleEndian, Classic, 8))

	h, err := ReadHeader(dev)
	require.NoError(t, err)
	assert.Equal(t, Classic, h.Flavor)
	assert.Equal(t, binary.LittleEndian, h.Order)
	assert.EqualValues(t, 8, h.FirstIFDOff)
}

func TestPutHeaderThenReadHeaderBigTIFF(t *testing.T) {
	dev := ioabi.NewMemoryDevice(nil)
	require.NoError(t, PutHeader(dev, binary.BigEndian, BigTIFF))
	require.NoError(t, PatchFirstIFDOffset(dev, binary.BigEndian, BigTIFF, 16))

	h, err := ReadHeader(dev)
	require.NoError(t, err)
	assert.Equal(t, BigTIFF, h.Flavor)
	assert.Equal(t, binary.BigEndian, h.Order)
	assert.EqualValues(t, 16, h.FirstIFDOff)
}

func TestReadHeaderRejectsBadByteOrderMark(t *testing.T) {
	dev := ioabi.NewMemoryDevice([]byte{0x00, 0x00, 0x2A, 0x00, 0, 0, 0, 0})
	_, err := ReadHeader(dev)
	assert.Error(t, err)
}

func TestReadHeaderRejectsBadMagic(t *testing.T) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint16(buf[0:2], byteOrderLittle)
	binary.LittleEndian.PutUint16(buf[2:4], 99)
	dev := ioabi.NewMemoryDevice(buf)
	_, err := ReadHeader(dev)
	assert.Error(t, err)
}

func TestReadHeaderRejectsBadBigTIFFConstant(t *testing.T) {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint16(buf[0:2], byteOrderLittle)
	binary.LittleEndian.PutUint16(buf[2:4], magicBigTIFF)
	binary.LittleEndian.PutUint16(buf[4:6], 8)
	binary.LittleEndian.PutUint16(buf[6:8], 1) // should be 0
	dev := ioabi.NewMemoryDevice(buf)
	_, err := ReadHeader(dev)
	assert.Error(t, err)
}

func TestPatchFirstIFDOffsetRejectsOutOfRangeOnClassic(t *testing.T) {
	dev := ioabi.NewMemoryDevice(nil)
	require.NoError(t, PutHeader(dev, binary.LittleEndian, Classic))
	err := PatchFirstIFDOffset(dev, binary.LittleEndian, Classic, 1<<33)
	assert.Error(t, err)
}
