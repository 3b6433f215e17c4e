package tiffcore

// stripChopTarget is the strip size in bytes the chop heuristic aims for.
const stripChopTarget = 8192

// StripChop splits a directory's single oversized uncompressed strip into
// several smaller ones so readers that process image data strip-by-strip
// don't have to hold the entire image in memory at once. It only ever
// shrinks the effective rows-per-strip — a file that already chose a
// strip size at or below the target is left alone — and it is a no-op for
// tiled images, multi-strip images, and compressed data (compressed strip
// byte counts don't scale linearly with row count, so re-dividing them
// would produce wrong offsets).
func (d *Directory) StripChop() {
	if d.isBitSet(BitTileWidth) || d.Compression != CompressionNone {
		return
	}
	if len(d.StripOffsets) != 1 || len(d.StripByteCounts) != 1 {
		return
	}
	if d.ImageLength == 0 {
		return
	}
	totalBytes := d.StripByteCounts[0]
	if totalBytes == 0 || totalBytes <= stripChopTarget {
		return
	}
	oldRows := d.RowsPerStrip
	if oldRows == 0 {
		oldRows = d.ImageLength
	}
	rowBytes := d.ScanlineBytes()
	if rowBytes == 0 {
		rowBytes = totalBytes / oldRows
	}
	if rowBytes == 0 {
		return
	}
	rows := stripChopTarget / rowBytes
	if rows == 0 {
		rows = 1
	}
	if rows >= oldRows {
		// Only-shrink: the existing strips are already at or below the
		// target size.
		return
	}
	stripBytes := rows * rowBytes
	n := (totalBytes + stripBytes - 1) / stripBytes
	if n == 0 || n > 1<<32 {
		return
	}

	offsets := make([]uint64, 0, n)
	counts := make([]uint64, 0, n)
	offset := d.StripOffsets[0]
	remaining := totalBytes
	for remaining > 0 {
		count := stripBytes
		if count > remaining {
			count = remaining
		}
		offsets = append(offsets, offset)
		counts = append(counts, count)
		offset += count
		remaining -= count
	}
	d.StripOffsets = offsets
	d.StripByteCounts = counts
	d.RowsPerStrip = rows
	d.markSet(BitRowsPerStrip)
	d.repairSortedCheck()
}
