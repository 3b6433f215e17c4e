package tiffcore

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadz/gotiffcore/ioabi"
	"github.com/vadz/gotiffcore/tifferr"
)

// findRawEntry digs the on-disk entry for tag out of an IFD at diroff,
// for assertions about the exact type/count the writer chose.
func findRawEntry(t *testing.T, buf []byte, order binary.ByteOrder, flavor Flavor, diroff uint64, tag Tag) (rawEntry, bool) {
	t.Helper()
	countFieldSize := uint64(2)
	var n uint64
	if flavor == BigTIFF {
		countFieldSize = 8
		n = order.Uint64(buf[diroff:])
	} else {
		n = uint64(order.Uint16(buf[diroff:]))
	}
	start := diroff + countFieldSize
	entries := parseRawEntries(buf[start:start+n*uint64(flavor.EntrySize())], int(n), order, flavor)
	for _, e := range entries {
		if e.Tag == tag {
			return e, true
		}
	}
	return rawEntry{}, false
}

// writeMinimalImage writes a 1x1 grayscale image whose pixel byte sits at
// offset 8, directly after the header, and returns the backing buffer.
func writeMinimalImage(t *testing.T, order binary.ByteOrder) *ioabi.MemoryDevice {
	t.Helper()
	dev := ioabi.NewMemoryDevice(nil)
	h, err := Create(dev, order, Classic, nil)
	require.NoError(t, err)
	_, err = ioabi.WriteAt(dev, []byte{0xFF}, 8)
	require.NoError(t, err)

	dir := h.NewDirectory()
	require.NoError(t, dir.Set(ImageWidth, NewLongValue([]uint32{1})))
	require.NoError(t, dir.Set(ImageLength, NewLongValue([]uint32{1})))
	require.NoError(t, dir.Set(BitsPerSample, NewShortValue([]uint16{8})))
	require.NoError(t, dir.Set(Compression, NewShortValue([]uint16{CompressionNone})))
	require.NoError(t, dir.Set(PhotometricInterpretation, NewShortValue([]uint16{PhotometricMinIsBlack})))
	require.NoError(t, dir.Set(SamplesPerPixel, NewShortValue([]uint16{1})))
	require.NoError(t, dir.Set(RowsPerStrip, NewLongValue([]uint32{1})))
	dir.StripOffsets = []uint64{8}
	dir.markSet(BitStripOffsets)
	dir.StripByteCounts = []uint64{1}
	dir.markSet(BitStripByteCounts)

	_, err = h.Flush(dir, true)
	require.NoError(t, err)
	return dev
}

func TestRoundTripIsByteStable(t *testing.T) {
	order := binary.LittleEndian
	dev1 := writeMinimalImage(t, order)

	h, err := Open(ioabi.NewMemoryDevice(dev1.Bytes()), nil)
	require.NoError(t, err)
	dir, err := h.ReadNextDirectory()
	require.NoError(t, err)
	require.NotNil(t, dir)

	dev2 := ioabi.NewMemoryDevice(nil)
	h2, err := Create(dev2, order, Classic, nil)
	require.NoError(t, err)
	_, err = ioabi.WriteAt(dev2, []byte{0xFF}, 8)
	require.NoError(t, err)
	_, err = h2.Flush(dir, true)
	require.NoError(t, err)

	assert.Equal(t, dev1.Bytes(), dev2.Bytes())
}

func TestRoundTripPreservesEveryField(t *testing.T) {
	order := binary.LittleEndian
	dev1 := writeMinimalImage(t, order)

	read := func(dev *ioabi.MemoryDevice) *Directory {
		h, err := Open(dev, nil)
		require.NoError(t, err)
		dir, err := h.ReadNextDirectory()
		require.NoError(t, err)
		require.NotNil(t, dir)
		return dir
	}
	first := read(ioabi.NewMemoryDevice(dev1.Bytes()))

	dev2 := ioabi.NewMemoryDevice(nil)
	h2, err := Create(dev2, order, Classic, nil)
	require.NoError(t, err)
	_, err = ioabi.WriteAt(dev2, []byte{0xFF}, 8)
	require.NoError(t, err)
	_, err = h2.Flush(first, true)
	require.NoError(t, err)
	second := read(ioabi.NewMemoryDevice(dev2.Bytes()))

	for _, tag := range WellKnownTags {
		v1, ok1 := first.Get(tag)
		v2, ok2 := second.Get(tag)
		assert.Equal(t, ok1, ok2, "tag %s presence", tag.Name())
		if ok1 && ok2 {
			assert.Equal(t, v1.Count(), v2.Count(), "tag %s count", tag.Name())
		}
	}
}

func TestEndianMirrorsReadIdentically(t *testing.T) {
	le := writeMinimalImage(t, binary.LittleEndian)
	be := writeMinimalImage(t, binary.BigEndian)

	read := func(dev *ioabi.MemoryDevice) *Directory {
		h, err := Open(dev, nil)
		require.NoError(t, err)
		dir, err := h.ReadNextDirectory()
		require.NoError(t, err)
		return dir
	}
	dl := read(le)
	db := read(be)
	assert.Equal(t, dl.ImageWidth, db.ImageWidth)
	assert.Equal(t, dl.BitsPerSample, db.BitsPerSample)
	assert.Equal(t, dl.StripOffsets, db.StripOffsets)
	assert.Equal(t, dl.StripByteCounts, db.StripByteCounts)
	assert.Equal(t, dl.Photometric, db.Photometric)
}

func TestPerSampleBroadcastOnWrite(t *testing.T) {
	order := binary.LittleEndian
	dev := ioabi.NewMemoryDevice(nil)
	h, err := Create(dev, order, Classic, nil)
	require.NoError(t, err)

	dir := h.NewDirectory()
	require.NoError(t, dir.Set(ImageWidth, NewLongValue([]uint32{100})))
	require.NoError(t, dir.Set(ImageLength, NewLongValue([]uint32{100})))
	require.NoError(t, dir.Set(SamplesPerPixel, NewShortValue([]uint16{3})))
	// A single value for a per-sample tag broadcasts to count=3 on disk.
	require.NoError(t, dir.Set(BitsPerSample, NewShortValue([]uint16{8})))
	require.NoError(t, dir.Set(Compression, NewShortValue([]uint16{CompressionNone})))
	diroff, err := h.Flush(dir, true)
	require.NoError(t, err)

	e, found := findRawEntry(t, dev.Bytes(), order, Classic, diroff, BitsPerSample)
	require.True(t, found)
	assert.Equal(t, SHORT, e.Type)
	assert.EqualValues(t, 3, e.Count)

	h2, err := Open(ioabi.NewMemoryDevice(dev.Bytes()), nil)
	require.NoError(t, err)
	back, err := h2.ReadNextDirectory()
	require.NoError(t, err)
	assert.Equal(t, []uint16{8, 8, 8}, back.BitsPerSample)

	bits, err := back.ScalarBitsPerSample()
	require.NoError(t, err)
	assert.EqualValues(t, 8, bits)

	spp, found := findRawEntry(t, dev.Bytes(), order, Classic, diroff, SamplesPerPixel)
	require.True(t, found)
	assert.Equal(t, SHORT, spp.Type)
	assert.EqualValues(t, 1, spp.Count)
}

func TestNarrowestTypeSelectionForStripOffsets(t *testing.T) {
	order := binary.LittleEndian
	write := func(flavor Flavor, offsets []uint64) (*ioabi.MemoryDevice, uint64, error) {
		dev := ioabi.NewMemoryDevice(nil)
		h, err := Create(dev, order, flavor, nil)
		require.NoError(t, err)
		dir := h.NewDirectory()
		dir.StripOffsets = offsets
		dir.markSet(BitStripOffsets)
		dir.StripByteCounts = make([]uint64, len(offsets))
		dir.markSet(BitStripByteCounts)
		off, err := h.Flush(dir, true)
		return dev, off, err
	}

	dev, diroff, err := write(Classic, []uint64{100, 65535})
	require.NoError(t, err)
	e, _ := findRawEntry(t, dev.Bytes(), order, Classic, diroff, StripOffsets)
	assert.Equal(t, SHORT, e.Type)

	dev, diroff, err = write(Classic, []uint64{100, 70000})
	require.NoError(t, err)
	e, _ = findRawEntry(t, dev.Bytes(), order, Classic, diroff, StripOffsets)
	assert.Equal(t, LONG, e.Type)

	_, _, err = write(Classic, []uint64{1 << 33})
	assert.True(t, tifferr.Is(err, tifferr.Range))

	dev, diroff, err = write(BigTIFF, []uint64{1 << 33})
	require.NoError(t, err)
	e, _ = findRawEntry(t, dev.Bytes(), order, BigTIFF, diroff, StripOffsets)
	assert.Equal(t, LONG8, e.Type)
}

func TestSubIFDTreeLinkage(t *testing.T) {
	order := binary.LittleEndian
	dev := ioabi.NewMemoryDevice(nil)
	h, err := Create(dev, order, Classic, nil)
	require.NoError(t, err)

	parent := h.NewDirectory()
	require.NoError(t, parent.Set(ImageWidth, NewLongValue([]uint32{10})))
	require.NoError(t, parent.Set(ImageLength, NewLongValue([]uint32{10})))

	child1 := h.NewDirectory()
	require.NoError(t, child1.Set(Compression, NewShortValue([]uint16{1})))
	child2 := h.NewDirectory()
	require.NoError(t, child2.Set(Compression, NewShortValue([]uint16{5})))

	_, err = h.WriteDirectoryTree(parent, []*Directory{child1, child2})
	require.NoError(t, err)

	h2, err := Open(ioabi.NewMemoryDevice(dev.Bytes()), nil)
	require.NoError(t, err)
	top, err := h2.ReadNextDirectory()
	require.NoError(t, err)
	require.NotNil(t, top)
	require.Len(t, top.SubIFDOffsets, 2)

	sub1, err := h2.ReadSubIFD(top.SubIFDOffsets[0])
	require.NoError(t, err)
	assert.EqualValues(t, 1, sub1.Compression)
	sub2, err := h2.ReadSubIFD(top.SubIFDOffsets[1])
	require.NoError(t, err)
	assert.EqualValues(t, 5, sub2.Compression)

	// The children hang off the SubIFDs array only; the top-level chain
	// ends after the parent.
	end, err := h2.ReadNextDirectory()
	require.NoError(t, err)
	assert.Nil(t, end)
}

func TestFlushAppendsToChain(t *testing.T) {
	order := binary.LittleEndian
	dev := ioabi.NewMemoryDevice(nil)
	h, err := Create(dev, order, Classic, nil)
	require.NoError(t, err)

	dir1 := h.NewDirectory()
	require.NoError(t, dir1.Set(ImageWidth, NewLongValue([]uint32{1})))
	require.NoError(t, dir1.Set(ImageLength, NewLongValue([]uint32{1})))
	_, err = h.Flush(dir1, true)
	require.NoError(t, err)

	dir2 := h.NewDirectory()
	require.NoError(t, dir2.Set(ImageWidth, NewLongValue([]uint32{2})))
	require.NoError(t, dir2.Set(ImageLength, NewLongValue([]uint32{2})))
	_, err = h.Flush(dir2, true)
	require.NoError(t, err)

	h2, err := Open(ioabi.NewMemoryDevice(dev.Bytes()), nil)
	require.NoError(t, err)
	first, err := h2.ReadNextDirectory()
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.EqualValues(t, 1, first.ImageWidth)
	second, err := h2.ReadNextDirectory()
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.EqualValues(t, 2, second.ImageWidth)
	end, err := h2.ReadNextDirectory()
	require.NoError(t, err)
	assert.Nil(t, end)
}

func TestCheckpointOverwritesInPlaceUntilItGrows(t *testing.T) {
	order := binary.LittleEndian
	dev := ioabi.NewMemoryDevice(nil)
	h, err := Create(dev, order, Classic, nil)
	require.NoError(t, err)

	dir := h.NewDirectory()
	require.NoError(t, dir.Set(ImageWidth, NewLongValue([]uint32{1})))
	require.NoError(t, dir.Set(ImageLength, NewLongValue([]uint32{1})))
	off1, err := h.Flush(dir, false)
	require.NoError(t, err)

	// Same size: the slot is overwritten, not relocated.
	dir.ImageWidth = 2
	off2, err := h.Flush(dir, false)
	require.NoError(t, err)
	assert.Equal(t, off1, off2)

	// The encoding grows past the old slot: the directory relocates and
	// the header is re-pointed at the new copy.
	require.NoError(t, dir.Set(ImageDescription, NewASCIIValue("grown well past the original slot size")))
	off3, err := h.Flush(dir, false)
	require.NoError(t, err)
	assert.NotEqual(t, off1, off3)

	hdr, err := ReadHeader(dev)
	require.NoError(t, err)
	assert.Equal(t, off3, hdr.FirstIFDOff)

	h2, err := Open(ioabi.NewMemoryDevice(dev.Bytes()), nil)
	require.NoError(t, err)
	back, err := h2.ReadNextDirectory()
	require.NoError(t, err)
	assert.EqualValues(t, 2, back.ImageWidth)
	assert.Equal(t, "grown well past the original slot size", back.ImageDescription)
}

func TestFlushIsNoOpOnReadOnlyHandle(t *testing.T) {
	dev := writeMinimalImage(t, binary.LittleEndian)
	before := append([]byte(nil), dev.Bytes()...)

	h, err := Open(ioabi.NewMemoryDevice(dev.Bytes()), nil)
	require.NoError(t, err)
	dir, err := h.ReadNextDirectory()
	require.NoError(t, err)

	off, err := h.Flush(dir, true)
	require.NoError(t, err)
	assert.Zero(t, off)
	assert.Equal(t, before, dev.Bytes())
}

func TestOutOfLinePayloadsLandOnEvenOffsets(t *testing.T) {
	order := binary.LittleEndian
	dev := ioabi.NewMemoryDevice(nil)
	h, err := Create(dev, order, Classic, nil)
	require.NoError(t, err)

	dir := h.NewDirectory()
	require.NoError(t, dir.Set(ImageWidth, NewLongValue([]uint32{1})))
	require.NoError(t, dir.Set(ImageLength, NewLongValue([]uint32{1})))
	require.NoError(t, dir.Set(ImageDescription, NewASCIIValue("odd-length")))
	require.NoError(t, dir.Set(Software, NewASCIIValue("also odd-length payload")))
	diroff, err := h.Flush(dir, true)
	require.NoError(t, err)

	for _, tag := range []Tag{ImageDescription, Software} {
		e, found := findRawEntry(t, dev.Bytes(), order, Classic, diroff, tag)
		require.True(t, found)
		require.False(t, fitsInline(e.Count, e.Type, Classic))
		off := inlineOffset(e, order, Classic)
		assert.Zero(t, off%2, "payload for %s at odd offset %d", tag.Name(), off)
	}
}

func TestWriteFinalizeInvokesCodecHooks(t *testing.T) {
	order := binary.LittleEndian
	dev := ioabi.NewMemoryDevice(nil)
	h, err := Create(dev, order, Classic, nil)
	require.NoError(t, err)

	var calls []string
	h.SetCapabilities(Capabilities{
		PostEncode: func() error { calls = append(calls, "postencode"); return nil },
		Cleanup:    func() error { calls = append(calls, "cleanup"); return nil },
	})
	dir := h.NewDirectory()
	require.NoError(t, dir.Set(ImageWidth, NewLongValue([]uint32{1})))
	require.NoError(t, dir.Set(ImageLength, NewLongValue([]uint32{1})))

	_, err = h.Flush(dir, false)
	require.NoError(t, err)
	assert.Empty(t, calls)

	_, err = h.Flush(dir, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"postencode", "cleanup"}, calls)
}

func TestSetResolutionRoundTripsThroughRational(t *testing.T) {
	order := binary.LittleEndian
	dev := ioabi.NewMemoryDevice(nil)
	h, err := Create(dev, order, Classic, nil)
	require.NoError(t, err)

	dir := h.NewDirectory()
	require.NoError(t, dir.Set(ImageWidth, NewLongValue([]uint32{1})))
	require.NoError(t, dir.Set(ImageLength, NewLongValue([]uint32{1})))
	require.NoError(t, dir.SetResolution(300, 72.5))
	_, err = h.Flush(dir, true)
	require.NoError(t, err)

	h2, err := Open(ioabi.NewMemoryDevice(dev.Bytes()), nil)
	require.NoError(t, err)
	back, err := h2.ReadNextDirectory()
	require.NoError(t, err)
	assert.Equal(t, Rational{Numerator: 300, Denominator: 1}, back.XResolution)
	assert.InDelta(t, 72.5, back.YResolution.Float(), 1e-6)
}
