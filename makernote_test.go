package tiffcore

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadz/gotiffcore/ioabi"
)

// miniIFD serializes a one-entry classic IFD holding (tag, SHORT, value)
// with no out-of-line data and a zero next pointer.
func miniIFD(order binary.ByteOrder, tag Tag, value uint16) []byte {
	buf := make([]byte, 2+12+4)
	order.PutUint16(buf[0:2], 1)
	order.PutUint16(buf[2:4], uint16(tag))
	order.PutUint16(buf[4:6], uint16(SHORT))
	order.PutUint32(buf[6:10], 1)
	order.PutUint16(buf[10:12], value)
	return buf
}

func TestIdentifyMakerNoteVendors(t *testing.T) {
	nikon := append([]byte("Nikon\x00\x02\x10\x00\x00"), []byte("MM\x00\x2A\x00\x00\x00\x08")...)
	f, ok := IdentifyMakerNote(nikon, "NIKON CORPORATION")
	require.True(t, ok)
	assert.Equal(t, "Nikon2", f.Vendor)
	assert.True(t, f.SelfContained)
	assert.Equal(t, binary.BigEndian, f.Order)
	assert.EqualValues(t, 18, f.IFDStart)

	fuji := append([]byte("FUJIFILM"), 12, 0, 0, 0)
	f, ok = IdentifyMakerNote(fuji, "FUJIFILM")
	require.True(t, ok)
	assert.Equal(t, "Fujifilm1", f.Vendor)
	assert.EqualValues(t, 12, f.IFDStart)

	f, ok = IdentifyMakerNote([]byte("OLYMP\x00\x01\x00"), "OLYMPUS")
	require.True(t, ok)
	assert.Equal(t, "Olympus1", f.Vendor)
	assert.False(t, f.SelfContained)

	f, ok = IdentifyMakerNote([]byte{0, 1, 0, 12}, "Canon")
	require.True(t, ok)
	assert.Equal(t, "Canon1", f.Vendor)
	assert.Zero(t, f.IFDStart)

	_, ok = IdentifyMakerNote([]byte("something else"), "Acme")
	assert.False(t, ok)
}

func TestReadMakerNoteCanonBareIFD(t *testing.T) {
	order := binary.LittleEndian
	// A Canon note is a bare IFD in the enclosing file's order, with
	// file-relative offsets; plant one mid-file.
	const noteOffset = 40
	ifd := miniIFD(order, Tag(0x0001), 7)
	file := make([]byte, noteOffset+len(ifd))
	copy(file[noteOffset:], ifd)

	dir, format, err := ReadMakerNote(ioabi.NewMemoryDevice(file), order, file[noteOffset:], noteOffset, "Canon")
	require.NoError(t, err)
	require.NotNil(t, format)
	assert.Equal(t, "Canon1", format.Vendor)

	v, ok := dir.Get(Tag(0x0001))
	require.True(t, ok)
	u, _ := v.AnyUint(0)
	assert.EqualValues(t, 7, u)
}

func TestReadMakerNoteNikonEmbeddedHeader(t *testing.T) {
	// Nikon2 notes carry a complete little TIFF of their own after the
	// label; offsets inside are relative to that embedded header, so the
	// note decodes identically wherever it lands in the outer file.
	inner := miniIFD(binary.BigEndian, Tag(0x0002), 9)
	payload := []byte("Nikon\x00\x02\x10\x00\x00")
	payload = append(payload, []byte{'M', 'M', 0, 42, 0, 0, 0, 8}...)
	payload = append(payload, inner...)

	dir, format, err := ReadMakerNote(ioabi.NewMemoryDevice(nil), binary.LittleEndian, payload, 12345, "NIKON")
	require.NoError(t, err)
	require.NotNil(t, format)
	assert.Equal(t, "Nikon2", format.Vendor)

	v, ok := dir.Get(Tag(0x0002))
	require.True(t, ok)
	u, _ := v.AnyUint(0)
	assert.EqualValues(t, 9, u)
}

func TestReadMakerNoteUnknownVendorStaysOpaque(t *testing.T) {
	dir, format, err := ReadMakerNote(ioabi.NewMemoryDevice(nil), binary.LittleEndian, []byte("opaque"), 0, "Acme")
	assert.NoError(t, err)
	assert.Nil(t, dir)
	assert.Nil(t, format)
}
