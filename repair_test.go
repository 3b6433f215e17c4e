package tiffcore

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadz/gotiffcore/ioabi"
)

func TestMissingStripByteCountsEstimatedAndTrimmed(t *testing.T) {
	order := binary.LittleEndian
	// 100 pixels/row at 8 bits, 1000 rows: geometry says 100000 bytes,
	// but the file only has 10000, so the estimate trims to what's
	// actually there past the strip offset.
	tags := []rawTag{
		{ImageWidth, SHORT, 1, shortVal(order, 100)},
		{ImageLength, SHORT, 1, shortVal(order, 1000)},
		{BitsPerSample, SHORT, 1, shortVal(order, 8)},
		{Compression, SHORT, 1, shortVal(order, CompressionNone)},
		{StripOffsets, LONG, 1, longVal(order, 8)},
	}
	buf := buildClassic(order, tags, 0, nil)
	res, err := ReadDirectory(ioabi.NewMemoryDevice(buf), order, Classic, NewTIFFRegistry(), 8, ReadOptions{AllowAnon: true, RequireImage: true})
	require.NoError(t, err)

	warns := res.Directory.Repair(10000)
	require.NotEmpty(t, warns)
	require.Len(t, res.Directory.StripByteCounts, 1)
	assert.EqualValues(t, 9992, res.Directory.StripByteCounts[0])
}

func TestMissingStripByteCountsEstimateIsExactWhenGeometryFits(t *testing.T) {
	order := binary.LittleEndian
	tags := []rawTag{
		{ImageWidth, SHORT, 1, shortVal(order, 8)},
		{ImageLength, SHORT, 1, shortVal(order, 100)},
		{BitsPerSample, SHORT, 1, shortVal(order, 8)},
		{Compression, SHORT, 1, shortVal(order, CompressionNone)},
		{StripOffsets, LONG, 1, longVal(order, 8)},
	}
	buf := buildClassic(order, tags, 0, nil)
	res, err := ReadDirectory(ioabi.NewMemoryDevice(buf), order, Classic, NewTIFFRegistry(), 8, ReadOptions{AllowAnon: true})
	require.NoError(t, err)

	warns := res.Directory.Repair(10000)
	require.NotEmpty(t, warns)
	assert.Equal(t, []uint64{800}, res.Directory.StripByteCounts)
}

func TestMissingByteCountsCompressedDistributesEvenly(t *testing.T) {
	order := binary.LittleEndian
	tags := []rawTag{
		{ImageWidth, SHORT, 1, shortVal(order, 100)},
		{ImageLength, SHORT, 1, shortVal(order, 100)},
		{Compression, SHORT, 1, shortVal(order, 5)},
		{RowsPerStrip, SHORT, 1, shortVal(order, 50)},
		{StripOffsets, LONG, 2, append(longVal(order, 1000), longVal(order, 2000)...)},
	}
	buf := buildClassic(order, tags, 0, nil)
	res, err := ReadDirectory(ioabi.NewMemoryDevice(buf), order, Classic, NewTIFFRegistry(), 8, ReadOptions{AllowAnon: true})
	require.NoError(t, err)

	warns := res.Directory.Repair(3000)
	require.NotEmpty(t, warns)
	assert.Equal(t, []uint64{1000, 1000}, res.Directory.StripByteCounts)
}

func TestBogusSingleStripByteCountRecomputed(t *testing.T) {
	order := binary.LittleEndian
	for _, bogus := range []uint32{0, 999999} {
		tags := []rawTag{
			{ImageWidth, SHORT, 1, shortVal(order, 10)},
			{ImageLength, SHORT, 1, shortVal(order, 10)},
			{BitsPerSample, SHORT, 1, shortVal(order, 8)},
			{Compression, SHORT, 1, shortVal(order, CompressionNone)},
			{StripOffsets, LONG, 1, longVal(order, 8)},
			{StripByteCounts, LONG, 1, longVal(order, bogus)},
		}
		buf := buildClassic(order, tags, 0, nil)
		res, err := ReadDirectory(ioabi.NewMemoryDevice(buf), order, Classic, NewTIFFRegistry(), 8, ReadOptions{AllowAnon: true})
		require.NoError(t, err)

		warns := res.Directory.Repair(1000)
		require.NotEmpty(t, warns, "bogus count %d", bogus)
		assert.Equal(t, []uint64{100}, res.Directory.StripByteCounts)
	}
}

func TestRepairIsIdempotentAfterRewrite(t *testing.T) {
	order := binary.LittleEndian
	// Geometry exactly matches the pixel bytes on disk, so the first
	// read estimates and the rewrite records the estimate for good.
	tags := []rawTag{
		{ImageWidth, SHORT, 1, shortVal(order, 8)},
		{ImageLength, SHORT, 1, shortVal(order, 100)},
		{BitsPerSample, SHORT, 1, shortVal(order, 8)},
		{Compression, SHORT, 1, shortVal(order, CompressionNone)},
		{RowsPerStrip, SHORT, 1, shortVal(order, 100)},
	}
	pixels := make([]byte, 800)
	// Strip data lives after the IFD; compute its offset by building once.
	probe := buildClassic(order, append(tags, rawTag{StripOffsets, LONG, 1, longVal(order, 0)}), 0, nil)
	stripOff := uint32(len(probe))
	full := buildClassic(order, append(tags, rawTag{StripOffsets, LONG, 1, longVal(order, stripOff)}), 0, pixels)

	res, err := ReadDirectory(ioabi.NewMemoryDevice(full), order, Classic, NewTIFFRegistry(), 8, ReadOptions{AllowAnon: true})
	require.NoError(t, err)
	warns := res.Directory.Repair(uint64(len(full)))
	require.NotEmpty(t, warns)
	require.Equal(t, []uint64{800}, res.Directory.StripByteCounts)

	// Rewrite: copy the pixel bytes, flush the repaired directory.
	out := ioabi.NewMemoryDevice(nil)
	h, err := Create(out, order, Classic, nil)
	require.NoError(t, err)
	_, err = ioabi.WriteAt(out, pixels, 8)
	require.NoError(t, err)
	res.Directory.StripOffsets = []uint64{8}
	_, err = h.Flush(res.Directory, true)
	require.NoError(t, err)

	res2, err := ReadDirectory(ioabi.NewMemoryDevice(out.Bytes()), order, Classic, NewTIFFRegistry(), h.header.FirstIFDOff, ReadOptions{AllowAnon: true})
	require.NoError(t, err)
	warns2 := res2.Directory.Repair(uint64(len(out.Bytes())))
	assert.Empty(t, warns2)
	assert.Equal(t, []uint64{800}, res2.Directory.StripByteCounts)
}

func TestMissingTileByteCountsEstimatedFromGeometry(t *testing.T) {
	d := NewDirectory(NewTIFFRegistry(), binary.LittleEndian, Classic)
	d.ImageWidth = 128
	d.markSet(BitImageWidth)
	d.ImageLength = 128
	d.markSet(BitImageLength)
	d.BitsPerSample = []uint16{8}
	d.markSet(BitBitsPerSample)
	d.TileWidth = 64
	d.markSet(BitTileWidth)
	d.TileLength = 64
	d.markSet(BitTileLength)
	d.TileOffsets = []uint64{8, 4104, 8200, 12296}
	d.markSet(BitTileOffsets)

	warns := d.Repair(1 << 20)
	require.NotEmpty(t, warns)
	assert.Equal(t, []uint64{4096, 4096, 4096, 4096}, d.TileByteCounts)
}

func TestMaxSampleValueDefaultsFromBitsPerSample(t *testing.T) {
	d := NewDirectory(NewTIFFRegistry(), binary.LittleEndian, Classic)
	d.BitsPerSample = []uint16{8, 4, 16}
	d.markSet(BitBitsPerSample)
	d.Repair(0)
	assert.Equal(t, []uint16{255, 15, 0xFFFF}, d.MaxSampleValue)

	one := NewDirectory(NewTIFFRegistry(), binary.LittleEndian, Classic)
	one.Repair(0)
	assert.Equal(t, []uint16{1}, one.MaxSampleValue)
}

func TestOversizedRowsPerStripClampedToImageLength(t *testing.T) {
	d := NewDirectory(NewTIFFRegistry(), binary.LittleEndian, Classic)
	d.ImageLength = 100
	d.markSet(BitImageLength)
	d.RowsPerStrip = 1 << 30
	d.markSet(BitRowsPerStrip)
	d.Repair(0)
	assert.EqualValues(t, 100, d.RowsPerStrip)
}

func TestUnsortedStripOffsetsDetected(t *testing.T) {
	d := NewDirectory(NewTIFFRegistry(), binary.LittleEndian, Classic)
	d.StripOffsets = []uint64{100, 50}
	d.markSet(BitStripOffsets)
	d.StripByteCounts = []uint64{10, 10}
	d.markSet(BitStripByteCounts)
	d.Repair(0)
	assert.False(t, d.StripByteCountSorted)
}

func TestOJPEGDefaultsApplied(t *testing.T) {
	d := NewDirectory(NewTIFFRegistry(), binary.LittleEndian, Classic)
	d.Compression = CompressionOJPEG
	d.markSet(BitCompression)
	d.Repair(0)

	assert.EqualValues(t, PhotometricYCbCr, d.Photometric)
	assert.True(t, d.IsSet(PhotometricInterpretation))
	assert.Equal(t, []uint16{8}, d.BitsPerSample)
	assert.EqualValues(t, 3, d.SamplesPerPixel)
}

func TestOJPEGRGBCoercedToYCbCr(t *testing.T) {
	d := NewDirectory(NewTIFFRegistry(), binary.LittleEndian, Classic)
	d.Compression = CompressionOJPEG
	d.markSet(BitCompression)
	d.Photometric = PhotometricRGB
	d.markSet(BitPhotometric)
	warns := d.Repair(0)

	assert.EqualValues(t, PhotometricYCbCr, d.Photometric)
	assert.NotEmpty(t, warns)
}

func TestOJPEGSingleStripSeparateCoercedToContig(t *testing.T) {
	d := NewDirectory(NewTIFFRegistry(), binary.LittleEndian, Classic)
	d.Compression = CompressionOJPEG
	d.markSet(BitCompression)
	d.PlanarConfig = PlanarSeparate
	d.markSet(BitPlanarConfig)
	d.StripOffsets = []uint64{100}
	d.markSet(BitStripOffsets)
	d.StripByteCounts = []uint64{500}
	d.markSet(BitStripByteCounts)
	d.Repair(0)

	assert.EqualValues(t, PlanarContig, d.PlanarConfig)
}

func TestOJPEGStripsSynthesizedFromInterchangeFormat(t *testing.T) {
	order := binary.LittleEndian
	tags := []rawTag{
		{Compression, SHORT, 1, shortVal(order, CompressionOJPEG)},
		{JPEGInterchangeFormat, LONG, 1, longVal(order, 512)},
		{JPEGInterchangeFormatLength, LONG, 1, longVal(order, 2048)},
	}
	buf := buildClassic(order, tags, 0, nil)
	res, err := ReadDirectory(ioabi.NewMemoryDevice(buf), order, Classic, NewTIFFRegistry(), 8, ReadOptions{AllowAnon: true})
	require.NoError(t, err)
	res.Directory.Repair(1 << 20)

	assert.Equal(t, []uint64{512}, res.Directory.StripOffsets)
	assert.Equal(t, []uint64{2048}, res.Directory.StripByteCounts)
}
