package tiffcore

import "github.com/vadz/gotiffcore/tifferr"

// CompressionOJPEG is the TIFF 6.0 "old-style JPEG" compression scheme
// (Technical Note 2), long deprecated but still found in the wild. Its
// writers routinely omitted tags that every other scheme records, so the
// repair phase carries a block of fix-ups specific to it.
const CompressionOJPEG = 6

// repairOJPEG applies the old-style JPEG quirk fixes:
//
//   - Photometric defaults to YCbCr when absent, and an RGB claim is
//     coerced to YCbCr (OJPEG streams are YCbCr regardless of what the
//     tag says).
//   - BitsPerSample defaults to 8.
//   - SamplesPerPixel defaults to 3 for RGB/YCbCr and 1 for the
//     grayscale photometrics.
//   - A single-strip image claiming separate planes is coerced to contig
//     (one strip cannot hold separate planes).
//   - Missing StripOffsets/StripByteCounts are synthesized from
//     JPEGInterchangeFormat/JPEGInterchangeFormatLength when present.
func (d *Directory) repairOJPEG(warnings []error) []error {
	const op = "Repair"
	if d.Compression != CompressionOJPEG {
		return warnings
	}

	if !d.isBitSet(BitPhotometric) {
		d.Photometric = PhotometricYCbCr
		d.markSet(BitPhotometric)
	} else if d.Photometric == PhotometricRGB {
		d.Photometric = PhotometricYCbCr
		warnings = append(warnings, errOp(op, tifferr.Type).WithTag(uint16(PhotometricInterpretation), "OJPEG RGB coerced to YCbCr"))
	}

	if !d.isBitSet(BitBitsPerSample) {
		d.BitsPerSample = []uint16{8}
		d.markSet(BitBitsPerSample)
	}

	if !d.isBitSet(BitSamplesPerPixel) {
		switch d.Photometric {
		case PhotometricRGB, PhotometricYCbCr:
			d.SamplesPerPixel = 3
		case PhotometricMinIsBlack, PhotometricMinIsWhite:
			d.SamplesPerPixel = 1
		}
		d.markSet(BitSamplesPerPixel)
	}

	if len(d.StripOffsets) <= 1 && d.PlanarConfig == PlanarSeparate {
		d.PlanarConfig = PlanarContig
		warnings = append(warnings, errOp(op, tifferr.Type).WithTag(uint16(PlanarConfiguration), "single-strip separate coerced to contig"))
	}

	if !d.isBitSet(BitStripOffsets) {
		jif, jifOK := d.findCustom(JPEGInterchangeFormat)
		jifLen, jifLenOK := d.findCustom(JPEGInterchangeFormatLength)
		if jifOK && jifLenOK {
			off, ok1 := jif.AnyUint(0)
			length, ok2 := jifLen.AnyUint(0)
			if ok1 && ok2 {
				d.StripOffsets = []uint64{off}
				d.StripByteCounts = []uint64{length}
				d.markSet(BitStripOffsets)
				d.markSet(BitStripByteCounts)
			}
		}
	}
	return warnings
}
