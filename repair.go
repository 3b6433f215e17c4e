package tiffcore

import (
	"sort"

	"github.com/vadz/gotiffcore/tifferr"
)

// Repair applies the post-read fix-ups a tolerant TIFF reader performs
// after a directory's raw tags are parsed but before the image is
// considered usable: clamping an oversized RowsPerStrip, estimating a
// missing or bogus StripByteCounts from geometry and the file size,
// old-style-JPEG quirk handling, defaulting MaxSampleValue from
// BitsPerSample, and recording whether StripOffsets is already in
// ascending order. fileSize is the backing store's total size, consulted
// by the estimators; 0 disables the estimates that need it.
//
// Every fix-up applied to cover for damage is reported back as a warning;
// structurally required fields are checked before Repair runs and are not
// its concern.
func (d *Directory) Repair(fileSize uint64) []error {
	var warnings []error
	d.repairSingleStrip()
	warnings = d.repairMissingStripByteCounts(fileSize, warnings)
	warnings = d.repairBogusStripByteCount(fileSize, warnings)
	warnings = d.repairOJPEG(warnings)
	d.repairMaxSampleValue()
	d.repairSortedCheck()
	return warnings
}

// repairSingleStrip clamps RowsPerStrip to ImageLength when it claims to
// span more than the whole image: some encoders write an oversized
// RowsPerStrip rather than the exact image height.
func (d *Directory) repairSingleStrip() {
	if d.ImageLength == 0 {
		return
	}
	if d.isBitSet(BitRowsPerStrip) && d.RowsPerStrip > d.ImageLength {
		d.RowsPerStrip = d.ImageLength
	}
}

// repairMissingStripByteCounts estimates StripByteCounts when a file omits
// it: for tiled data from the tile geometry, for uncompressed strips from
// the scanline size, and for compressed strips by dividing the remaining
// file space evenly. The last strip is trimmed so the sum never runs past
// the end of the file.
func (d *Directory) repairMissingStripByteCounts(fileSize uint64, warnings []error) []error {
	const op = "Repair"
	if d.isBitSet(BitStripByteCounts) || d.isBitSet(BitTileByteCounts) {
		return warnings
	}

	if d.isBitSet(BitTileWidth) {
		if len(d.TileOffsets) == 0 || d.TileWidth == 0 {
			return warnings
		}
		tileRowBytes := (uint64(d.TileWidth)*d.bitsPerPixel() + 7) / 8
		tileBytes := tileRowBytes * uint64(d.TileLength)
		counts := make([]uint64, len(d.TileOffsets))
		for i := range counts {
			counts[i] = tileBytes
		}
		d.TileByteCounts = counts
		d.markSet(BitTileByteCounts)
		return append(warnings, errOp(op, tifferr.MissingRequired).WithTag(uint16(TileByteCounts), "TileByteCounts estimated from tile geometry"))
	}

	if len(d.StripOffsets) == 0 {
		return warnings
	}
	counts := make([]uint64, len(d.StripOffsets))
	if d.Compression == CompressionNone {
		rows := d.RowsPerStrip
		if rows == 0 {
			rows = d.ImageLength
		}
		stripBytes := d.ScanlineBytes() * rows
		for i := range counts {
			counts[i] = stripBytes
		}
	} else if fileSize > d.StripOffsets[0] {
		// No way to know a compressed strip's size from geometry;
		// distribute the space after the first strip evenly.
		share := (fileSize - d.StripOffsets[0]) / uint64(len(counts))
		for i := range counts {
			counts[i] = share
		}
	} else {
		return warnings
	}
	trimToFileSize(d.StripOffsets, counts, fileSize)
	d.StripByteCounts = counts
	d.markSet(BitStripByteCounts)
	return append(warnings, errOp(op, tifferr.MissingRequired).WithTag(uint16(StripByteCounts), "StripByteCounts estimated"))
}

// repairBogusStripByteCount recomputes a single uncompressed strip's byte
// count when the recorded one is clearly wrong: zero, running past the end
// of the file, or smaller than the image's own scanline math says it must
// be.
func (d *Directory) repairBogusStripByteCount(fileSize uint64, warnings []error) []error {
	const op = "Repair"
	if !d.isBitSet(BitStripByteCounts) || d.Compression != CompressionNone {
		return warnings
	}
	if len(d.StripOffsets) != 1 || len(d.StripByteCounts) != 1 || fileSize == 0 {
		return warnings
	}
	off, cnt := d.StripOffsets[0], d.StripByteCounts[0]
	need := d.ScanlineBytes() * d.ImageLength
	bogus := cnt == 0 || off+cnt > fileSize || (need > 0 && cnt < need)
	if !bogus {
		return warnings
	}
	if off >= fileSize {
		return warnings
	}
	recomputed := need
	if recomputed == 0 || off+recomputed > fileSize {
		recomputed = fileSize - off
	}
	d.StripByteCounts[0] = recomputed
	return append(warnings, errOp(op, tifferr.Range).WithTag(uint16(StripByteCounts), "StripByteCounts[0] recomputed"))
}

// trimToFileSize shrinks the last count so offset+count never exceeds
// fileSize. fileSize 0 means unknown and disables the trim.
func trimToFileSize(offsets, counts []uint64, fileSize uint64) {
	if fileSize == 0 || len(counts) == 0 {
		return
	}
	last := len(counts) - 1
	if offsets[last] >= fileSize {
		counts[last] = 0
		return
	}
	if offsets[last]+counts[last] > fileSize {
		counts[last] = fileSize - offsets[last]
	}
}

// bitsPerPixel sums BitsPerSample, falling back to SamplesPerPixel bits
// when the tag is absent.
func (d *Directory) bitsPerPixel() uint64 {
	var bits uint64
	for _, b := range d.BitsPerSample {
		bits += uint64(b)
	}
	if bits == 0 {
		bits = uint64(d.SamplesPerPixel)
	}
	return bits
}

// repairMaxSampleValue defaults MaxSampleValue to (1<<BitsPerSample)-1
// per sample, when unset. Computed here rather than in GetDefaulted
// because it is genuinely per-sample and GetDefaulted's single-Value
// contract can't express that cleanly.
func (d *Directory) repairMaxSampleValue() {
	if d.isBitSet(BitMaxSampleValue) || len(d.BitsPerSample) == 0 {
		return
	}
	out := make([]uint16, len(d.BitsPerSample))
	for i, b := range d.BitsPerSample {
		if b >= 16 {
			out[i] = 0xFFFF
			continue
		}
		out[i] = uint16(1<<uint(b)) - 1
	}
	d.MaxSampleValue = out
}

// repairSortedCheck records whether StripOffsets is already
// non-decreasing, so callers deciding whether sequential strip access
// will also be sequential on disk don't have to re-scan it themselves.
func (d *Directory) repairSortedCheck() {
	d.StripByteCountSorted = sort.SliceIsSorted(d.StripOffsets, func(i, j int) bool {
		return d.StripOffsets[i] < d.StripOffsets[j]
	})
}
