package tiffcore

import "github.com/vadz/gotiffcore/tifferr"

// Scalar accessors for per-sample fields. On disk these tags carry one
// value per sample; most callers only care about the single common value
// and want an error if the samples actually differ.

// perSampleScalar collapses a per-sample array to its single common value.
func perSampleScalar(op string, tag Tag, vals []uint16) (uint16, error) {
	if len(vals) == 0 {
		return 0, errOp(op, tifferr.Count).WithTag(uint16(tag), tag.Name())
	}
	for _, v := range vals[1:] {
		if v != vals[0] {
			return 0, errOp(op, tifferr.PerSampleDiffers).WithTag(uint16(tag), tag.Name())
		}
	}
	return vals[0], nil
}

// ScalarBitsPerSample returns the single BitsPerSample value shared by all
// samples, or PerSampleDiffers when the samples disagree.
func (d *Directory) ScalarBitsPerSample() (uint16, error) {
	return perSampleScalar("Directory.ScalarBitsPerSample", BitsPerSample, d.BitsPerSample)
}

// ScalarSampleFormat returns the single SampleFormat value shared by all
// samples, or PerSampleDiffers when the samples disagree.
func (d *Directory) ScalarSampleFormat() (uint16, error) {
	return perSampleScalar("Directory.ScalarSampleFormat", SampleFormat, d.SampleFormat)
}

// ScalarMaxSampleValue returns the single MaxSampleValue shared by all
// samples, or PerSampleDiffers when the samples disagree.
func (d *Directory) ScalarMaxSampleValue() (uint16, error) {
	return perSampleScalar("Directory.ScalarMaxSampleValue", MaxSampleValue, d.MaxSampleValue)
}

// ScanlineBytes returns the byte width of one decompressed row, summing
// BitsPerSample across samples for contiguous data and using the single
// sample's width for separate planes.
func (d *Directory) ScanlineBytes() uint64 {
	var bits uint64
	if d.PlanarConfig == PlanarSeparate {
		if len(d.BitsPerSample) > 0 {
			bits = uint64(d.BitsPerSample[0])
		}
	} else {
		for _, b := range d.BitsPerSample {
			bits += uint64(b)
		}
		if bits == 0 {
			bits = uint64(d.SamplesPerPixel)
		}
	}
	return (d.ImageWidth*bits + 7) / 8
}

// StripsPerImage returns how many strips the directory's geometry implies:
// ceil(length / rows-per-strip), multiplied by SamplesPerPixel for
// separate planar data, or the tile count for tiled directories.
func (d *Directory) StripsPerImage() uint64 {
	if d.isBitSet(BitTileWidth) {
		if d.TileWidth == 0 || d.TileLength == 0 {
			return 0
		}
		across := (d.ImageWidth + uint64(d.TileWidth) - 1) / uint64(d.TileWidth)
		down := (d.ImageLength + uint64(d.TileLength) - 1) / uint64(d.TileLength)
		n := across * down
		if d.PlanarConfig == PlanarSeparate {
			n *= uint64(d.SamplesPerPixel)
		}
		return n
	}
	rows := d.RowsPerStrip
	if rows == 0 {
		rows = d.ImageLength
	}
	if rows == 0 {
		return 0
	}
	n := (d.ImageLength + rows - 1) / rows
	if d.PlanarConfig == PlanarSeparate {
		n *= uint64(d.SamplesPerPixel)
	}
	return n
}
