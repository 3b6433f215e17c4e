package tiffcore

import (
	"bytes"
	"encoding/binary"
	"math"
	"sort"

	"github.com/vadz/gotiffcore/ioabi"
	"github.com/vadz/gotiffcore/tifferr"
)

// writeEntry is one not-yet-laid-out directory entry: its tag, the
// on-disk type the writer chose for it (narrowest that exactly
// represents the value), its count, and its encoded payload bytes.
type writeEntry struct {
	Tag     Tag
	Type    Type
	Count   uint64
	Payload []byte
}

// encodeValue serializes v's elements in order's byte order. It is
// decodeTyped's inverse.
func encodeValue(v Value, order binary.ByteOrder) []byte {
	switch v.Kind {
	case BYTE:
		b, _ := v.Bytes()
		return append([]byte(nil), b...)
	case SBYTE:
		b, _ := v.SBytes()
		out := make([]byte, len(b))
		for i, x := range b {
			out[i] = byte(x)
		}
		return out
	case ASCII:
		s, _ := v.ASCII()
		out := make([]byte, len(s)+1)
		copy(out, s)
		return out
	case UNDEFINED:
		b, _ := v.Undefined()
		return append([]byte(nil), b...)
	case SHORT:
		s, _ := v.Shorts()
		out := make([]byte, len(s)*2)
		for i, x := range s {
			order.PutUint16(out[i*2:], x)
		}
		return out
	case SSHORT:
		s, _ := v.SShorts()
		out := make([]byte, len(s)*2)
		for i, x := range s {
			order.PutUint16(out[i*2:], uint16(x))
		}
		return out
	case LONG, IFD:
		s, _ := v.Longs()
		out := make([]byte, len(s)*4)
		for i, x := range s {
			order.PutUint32(out[i*4:], x)
		}
		return out
	case SLONG:
		s, _ := v.SLongs()
		out := make([]byte, len(s)*4)
		for i, x := range s {
			order.PutUint32(out[i*4:], uint32(x))
		}
		return out
	case LONG8, IFD8:
		s, _ := v.Long8s()
		out := make([]byte, len(s)*8)
		for i, x := range s {
			order.PutUint64(out[i*8:], x)
		}
		return out
	case SLONG8:
		s, _ := v.SLong8s()
		out := make([]byte, len(s)*8)
		for i, x := range s {
			order.PutUint64(out[i*8:], uint64(x))
		}
		return out
	case RATIONAL:
		s, _ := v.Rationals()
		out := make([]byte, len(s)*8)
		for i, x := range s {
			order.PutUint32(out[i*8:], x.Numerator)
			order.PutUint32(out[i*8+4:], x.Denominator)
		}
		return out
	case SRATIONAL:
		s, _ := v.SRationals()
		out := make([]byte, len(s)*8)
		for i, x := range s {
			order.PutUint32(out[i*8:], uint32(x.Numerator))
			order.PutUint32(out[i*8+4:], uint32(x.Denominator))
		}
		return out
	case FLOAT:
		s, _ := v.Floats()
		out := make([]byte, len(s)*4)
		for i, x := range s {
			order.PutUint32(out[i*4:], math.Float32bits(x))
		}
		return out
	case DOUBLE:
		s, _ := v.Doubles()
		out := make([]byte, len(s)*8)
		for i, x := range s {
			order.PutUint64(out[i*8:], math.Float64bits(x))
		}
		return out
	default:
		return nil
	}
}

// broadcastPerSample widens a per-sample array that was set with a single
// value to the full SamplesPerPixel count, so a caller that set
// BitsPerSample once gets the on-disk count=N entry the format requires.
func broadcastPerSample(vals []uint16, samples uint16) []uint16 {
	if len(vals) == 1 && samples > 1 {
		out := make([]uint16, samples)
		for i := range out {
			out[i] = vals[0]
		}
		return out
	}
	return vals
}

// buildWriteEntries collects every set well-known field plus every custom
// field into a flat, not-yet-sorted entry list, narrowing dimension and
// offset/bytecount fields to the smallest on-disk type that represents
// them exactly. A classic file asked to hold a value past 32 bits is a
// Range error — there is no wider type to spill into.
func buildWriteEntries(dir *Directory, order binary.ByteOrder, flavor Flavor) ([]writeEntry, error) {
	const op = "WriteDirectory"
	var entries []writeEntry

	add := func(tag Tag, v Value) {
		entries = append(entries, writeEntry{Tag: tag, Type: v.Kind, Count: uint64(v.Count()), Payload: encodeValue(v, order)})
	}
	addDim := func(tag Tag, v uint64) error {
		switch {
		case v <= math.MaxUint16:
			add(tag, NewShortValue([]uint16{uint16(v)}))
		case v <= math.MaxUint32:
			add(tag, NewLongValue([]uint32{uint32(v)}))
		case flavor == BigTIFF:
			add(tag, NewLong8Value([]uint64{v}))
		default:
			return errOp(op, tifferr.Range).WithTag(uint16(tag), tag.Name())
		}
		return nil
	}
	// addNarrowUint picks the narrowest of types (SHORT, LONG, LONG8 when
	// none are given) that holds every value.
	addNarrowUint := func(tag Tag, vals []uint64, types ...Type) error {
		if len(types) == 0 {
			types = []Type{SHORT, LONG, LONG8}
		}
		typ := NarrowestUintType(vals, types...)
		if flavor == Classic && typ == LONG8 {
			return errOp(op, tifferr.Range).WithTag(uint16(tag), tag.Name())
		}
		switch typ {
		case SHORT:
			out := make([]uint16, len(vals))
			for i, v := range vals {
				out[i] = uint16(v)
			}
			add(tag, NewShortValue(out))
		case LONG:
			out := make([]uint32, len(vals))
			for i, v := range vals {
				out[i] = uint32(v)
			}
			add(tag, NewLongValue(out))
		default:
			add(tag, NewLong8Value(vals))
		}
		return nil
	}
	perSample := func(vals []uint16) []uint16 {
		return broadcastPerSample(vals, dir.SamplesPerPixel)
	}

	if dir.isBitSet(BitNewSubfileType) {
		add(NewSubfileType, NewLongValue([]uint32{dir.NewSubfileType}))
	}
	if dir.isBitSet(BitSubfileType) {
		add(SubfileType, NewShortValue([]uint16{dir.SubfileType}))
	}
	if dir.isBitSet(BitImageWidth) {
		if err := addDim(ImageWidth, dir.ImageWidth); err != nil {
			return nil, err
		}
	}
	if dir.isBitSet(BitImageLength) {
		if err := addDim(ImageLength, dir.ImageLength); err != nil {
			return nil, err
		}
	}
	if dir.isBitSet(BitBitsPerSample) {
		add(BitsPerSample, NewShortValue(perSample(dir.BitsPerSample)))
	}
	if dir.isBitSet(BitCompression) {
		add(Compression, NewShortValue([]uint16{dir.Compression}))
	}
	if dir.isBitSet(BitPhotometric) {
		add(PhotometricInterpretation, NewShortValue([]uint16{dir.Photometric}))
	}
	if dir.isBitSet(BitThreshholding) {
		add(Threshholding, NewShortValue([]uint16{dir.Threshholding}))
	}
	if dir.isBitSet(BitCellWidth) {
		add(CellWidth, NewShortValue([]uint16{dir.CellWidth}))
	}
	if dir.isBitSet(BitCellLength) {
		add(CellLength, NewShortValue([]uint16{dir.CellLength}))
	}
	if dir.isBitSet(BitFillOrder) {
		add(FillOrder, NewShortValue([]uint16{dir.FillOrder}))
	}
	if dir.isBitSet(BitDocumentName) {
		add(DocumentName, NewASCIIValue(dir.DocumentName))
	}
	if dir.isBitSet(BitImageDescription) {
		add(ImageDescription, NewASCIIValue(dir.ImageDescription))
	}
	if dir.isBitSet(BitMake) {
		add(Make, NewASCIIValue(dir.Make))
	}
	if dir.isBitSet(BitModel) {
		add(Model, NewASCIIValue(dir.Model))
	}
	if dir.isBitSet(BitStripOffsets) {
		if err := addNarrowUint(StripOffsets, dir.StripOffsets); err != nil {
			return nil, err
		}
	}
	if dir.isBitSet(BitOrientation) {
		add(Orientation, NewShortValue([]uint16{dir.Orientation}))
	}
	if dir.isBitSet(BitSamplesPerPixel) {
		add(SamplesPerPixel, NewShortValue([]uint16{dir.SamplesPerPixel}))
	}
	if dir.isBitSet(BitRowsPerStrip) {
		if err := addDim(RowsPerStrip, dir.RowsPerStrip); err != nil {
			return nil, err
		}
	}
	if dir.isBitSet(BitStripByteCounts) {
		if err := addNarrowUint(StripByteCounts, dir.StripByteCounts); err != nil {
			return nil, err
		}
	}
	if dir.isBitSet(BitMinSampleValue) {
		add(MinSampleValue, NewShortValue(perSample(dir.MinSampleValue)))
	}
	if dir.isBitSet(BitMaxSampleValue) {
		add(MaxSampleValue, NewShortValue(perSample(dir.MaxSampleValue)))
	}
	if dir.isBitSet(BitXResolution) {
		add(XResolution, NewRationalValue([]Rational{dir.XResolution}))
	}
	if dir.isBitSet(BitYResolution) {
		add(YResolution, NewRationalValue([]Rational{dir.YResolution}))
	}
	if dir.isBitSet(BitPlanarConfig) {
		add(PlanarConfiguration, NewShortValue([]uint16{dir.PlanarConfig}))
	}
	if dir.isBitSet(BitPageName) {
		add(PageName, NewASCIIValue(dir.PageName))
	}
	if dir.isBitSet(BitXPosition) {
		add(XPosition, NewRationalValue([]Rational{dir.XPosition}))
	}
	if dir.isBitSet(BitYPosition) {
		add(YPosition, NewRationalValue([]Rational{dir.YPosition}))
	}
	if dir.isBitSet(BitResolutionUnit) {
		add(ResolutionUnit, NewShortValue([]uint16{dir.ResolutionUnit}))
	}
	if dir.isBitSet(BitPageNumber) {
		add(PageNumber, NewShortValue(dir.PageNumber[:]))
	}
	if dir.isBitSet(BitSoftware) {
		add(Software, NewASCIIValue(dir.Software))
	}
	if dir.isBitSet(BitDateTime) {
		add(DateTime, NewASCIIValue(dir.DateTime))
	}
	if dir.isBitSet(BitArtist) {
		add(Artist, NewASCIIValue(dir.Artist))
	}
	if dir.isBitSet(BitHostComputer) {
		add(HostComputer, NewASCIIValue(dir.HostComputer))
	}
	if dir.isBitSet(BitPredictor) {
		add(Predictor, NewShortValue([]uint16{dir.Predictor}))
	}
	if dir.isBitSet(BitWhitePoint) {
		add(WhitePoint, NewRationalValue(dir.WhitePoint[:]))
	}
	if dir.isBitSet(BitPrimaryChromaticities) {
		add(PrimaryChromaticities, NewRationalValue(dir.PrimaryChromaticities[:]))
	}
	if dir.isBitSet(BitColorMap) {
		all := append(append(append([]uint16{}, dir.ColorMap[0]...), dir.ColorMap[1]...), dir.ColorMap[2]...)
		add(ColorMap, NewShortValue(all))
	}
	if dir.isBitSet(BitTileWidth) {
		if err := addDim(TileWidth, uint64(dir.TileWidth)); err != nil {
			return nil, err
		}
	}
	if dir.isBitSet(BitTileLength) {
		if err := addDim(TileLength, uint64(dir.TileLength)); err != nil {
			return nil, err
		}
	}
	if dir.isBitSet(BitTileOffsets) {
		if err := addNarrowUint(TileOffsets, dir.TileOffsets); err != nil {
			return nil, err
		}
	}
	if dir.isBitSet(BitTileByteCounts) {
		if err := addNarrowUint(TileByteCounts, dir.TileByteCounts); err != nil {
			return nil, err
		}
	}
	if dir.isBitSet(BitSubIFDs) {
		if err := addNarrowUint(SubIFDs, dir.SubIFDOffsets, LONG, LONG8); err != nil {
			return nil, err
		}
	}
	if dir.isBitSet(BitInkSet) {
		add(InkSet, NewShortValue([]uint16{dir.InkSet}))
	}
	if dir.isBitSet(BitExtraSamples) {
		add(ExtraSamples, NewShortValue(dir.ExtraSamples))
	}
	if dir.isBitSet(BitSampleFormat) {
		add(SampleFormat, NewShortValue(perSample(dir.SampleFormat)))
	}
	if dir.isBitSet(BitSMinSampleValue) {
		add(SMinSampleValue, NewDoubleValue(dir.SMinSampleValue))
	}
	if dir.isBitSet(BitSMaxSampleValue) {
		add(SMaxSampleValue, NewDoubleValue(dir.SMaxSampleValue))
	}
	if dir.isBitSet(BitJPEGTables) {
		add(JPEGTables, NewUndefinedValue(dir.JPEGTables))
	}
	if dir.isBitSet(BitYCbCrCoefficients) {
		add(YCbCrCoefficients, NewRationalValue(dir.YCbCrCoefficients[:]))
	}
	if dir.isBitSet(BitYCbCrSubSampling) {
		add(YCbCrSubSampling, NewShortValue(dir.YCbCrSubSampling[:]))
	}
	if dir.isBitSet(BitYCbCrPositioning) {
		add(YCbCrPositioning, NewShortValue([]uint16{dir.YCbCrPositioning}))
	}
	if dir.isBitSet(BitReferenceBlackWhite) {
		add(ReferenceBlackWhite, NewRationalValue(dir.ReferenceBlackWhite))
	}
	if dir.isBitSet(BitCopyright) {
		add(Copyright, NewASCIIValue(dir.Copyright))
	}
	if dir.isBitSet(BitICCProfile) {
		add(ICCProfile, NewUndefinedValue(dir.ICCProfile))
	}
	if dir.isBitSet(BitExifIFD) {
		if err := addNarrowUint(ExifIFD, []uint64{dir.ExifIFDOffset}, LONG, LONG8); err != nil {
			return nil, err
		}
	}
	if dir.isBitSet(BitGPSIFD) {
		if err := addNarrowUint(GPSIFD, []uint64{dir.GPSIFDOffset}, LONG, LONG8); err != nil {
			return nil, err
		}
	}

	for _, c := range dir.Custom {
		entries = append(entries, writeEntry{Tag: c.Descriptor.Tag, Type: c.Value.Kind, Count: uint64(c.Value.Count()), Payload: encodeValue(c.Value, order)})
	}
	return entries, nil
}

// layoutDirectory serializes dir's entries against a known anchor offset:
// the fixed region (count field, entries in ascending tag order, next-IFD
// pointer) and the overflow region holding every payload that doesn't fit
// inline, each at an even offset.
func layoutDirectory(dir *Directory, next, offset uint64, order binary.ByteOrder, flavor Flavor) ([]byte, []byte, error) {
	const op = "WriteDirectory"
	entries, err := buildWriteEntries(dir, order, flavor)
	if err != nil {
		return nil, nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Tag < entries[j].Tag })

	countFieldSize := uint64(2)
	if flavor == BigTIFF {
		countFieldSize = 8
	}
	entrySize := uint64(flavor.EntrySize())
	overflowBase := offset + countFieldSize + uint64(len(entries))*entrySize + uint64(flavor.OffsetSize())

	var overflow bytes.Buffer
	rawEntries := make([]rawEntry, len(entries))
	for i, e := range entries {
		re := rawEntry{Tag: e.Tag, Type: e.Type, Count: e.Count, Inline: make([]byte, flavor.OffsetSize())}
		if fitsInline(e.Count, e.Type, flavor) {
			copy(re.Inline, e.Payload)
		} else {
			valOff := overflowBase + uint64(overflow.Len())
			if valOff%2 != 0 {
				overflow.WriteByte(0)
				valOff++
			}
			if err := CheckOffset(op, valOff+uint64(len(e.Payload)), flavor); err != nil {
				return nil, nil, err
			}
			if flavor == BigTIFF {
				order.PutUint64(re.Inline, valOff)
			} else {
				order.PutUint32(re.Inline, uint32(valOff))
			}
			overflow.Write(e.Payload)
		}
		rawEntries[i] = re
	}

	var fixed bytes.Buffer
	countBuf := make([]byte, countFieldSize)
	if flavor == BigTIFF {
		order.PutUint64(countBuf, uint64(len(entries)))
	} else {
		order.PutUint16(countBuf, uint16(len(entries)))
	}
	fixed.Write(countBuf)
	for _, re := range rawEntries {
		fixed.Write(putRawEntry(re, order, flavor))
	}
	nextBuf := make([]byte, flavor.OffsetSize())
	if flavor == BigTIFF {
		order.PutUint64(nextBuf, next)
	} else {
		order.PutUint32(nextBuf, uint32(next))
	}
	fixed.Write(nextBuf)
	return fixed.Bytes(), overflow.Bytes(), nil
}

// WriteDirectory serializes dir to the end of the handle's backing
// device without linking it anywhere: the caller receives the offset the
// directory starts at and owns patching it into a chain, a SubIFD slot,
// or the header. Flush is the linking front end most callers want.
func (h *Handle) WriteDirectory(dir *Directory, next uint64) (uint64, error) {
	const op = "Handle.WriteDirectory"
	size, err := h.dev.Size()
	if err != nil {
		return 0, tifferr.Wrap(op, tifferr.Io, err)
	}
	offset := uint64(size)
	if offset%2 != 0 {
		offset++
	}
	if err := CheckOffset(op, offset, h.header.Flavor); err != nil {
		return 0, err
	}
	if err := h.writeDirectoryAt(dir, next, offset); err != nil {
		return 0, err
	}
	return offset, nil
}

func (h *Handle) writeDirectoryAt(dir *Directory, next, offset uint64) error {
	const op = "Handle.WriteDirectory"
	fixed, overflow, err := layoutDirectory(dir, next, offset, h.header.Order, h.header.Flavor)
	if err != nil {
		return err
	}
	if _, err := ioabi.WriteAt(h.dev, fixed, int64(offset)); err != nil {
		return tifferr.Wrap(op, tifferr.Io, err)
	}
	if len(overflow) > 0 {
		if _, err := ioabi.WriteAt(h.dev, overflow, int64(offset)+int64(len(fixed))); err != nil {
			return tifferr.Wrap(op, tifferr.Io, err)
		}
	}
	return nil
}

// Flush writes dir to the backing device and links it into the file's
// top-level directory chain.
//
// finalize=true is the normal close path: the codec's PostEncode and
// Cleanup hooks run first, the directory is committed permanently, and
// the handle's current directory resets to a fresh empty one for the
// next image. finalize=false is a checkpoint: the directory is written
// so the partial file is readable, but the in-memory state is kept, and
// a later Flush of the same directory overwrites the same slot when the
// encoding hasn't grown — or appends a relocated copy and re-patches the
// link when it has.
//
// On a read-only handle Flush is a no-op returning (0, nil). On error the
// in-memory directory is unchanged, so the caller may correct and retry.
func (h *Handle) Flush(dir *Directory, finalize bool) (uint64, error) {
	const op = "Handle.Flush"
	if !h.writable {
		return 0, nil
	}
	if finalize {
		if h.caps.PostEncode != nil {
			if err := h.caps.PostEncode(); err != nil {
				return 0, err
			}
		}
		if h.caps.Cleanup != nil {
			if err := h.caps.Cleanup(); err != nil {
				return 0, err
			}
		}
	}

	// Probe the encoded size against a zero anchor first; the real
	// layout is recomputed against the final offset below.
	fixed, overflow, err := layoutDirectory(dir, 0, 0, h.header.Order, h.header.Flavor)
	if err != nil {
		return 0, err
	}
	newSize := uint64(len(fixed) + len(overflow))

	relocating := h.checkpointed == dir
	var offset uint64
	if relocating && newSize <= h.ckptSize {
		offset = h.ckptOff
		if err := h.writeDirectoryAt(dir, 0, offset); err != nil {
			return 0, err
		}
	} else {
		offset, err = h.WriteDirectory(dir, 0)
		if err != nil {
			return 0, err
		}
		if relocating {
			// The directory grew: re-point whatever linked to the old
			// copy at the new one.
			if err := putOffset(h.dev, h.header.Order, h.header.Flavor, h.ckptPtrPos, offset); err != nil {
				return 0, err
			}
			if h.ckptPtrPos == h.headerPtrPos() {
				h.header.FirstIFDOff = offset
			}
		} else {
			ptrPos, err := AppendToChain(h.dev, h.header, offset)
			if err != nil {
				return 0, err
			}
			h.ckptPtrPos = ptrPos
		}
	}

	if finalize {
		h.checkpointed = nil
		h.ckptOff, h.ckptSize, h.ckptPtrPos = 0, 0, 0
		h.current = h.NewDirectory()
	} else {
		h.checkpointed = dir
		h.ckptOff = offset
		if newSize > h.ckptSize || !relocating {
			h.ckptSize = newSize
		}
	}
	return offset, nil
}

func (h *Handle) headerPtrPos() uint64 {
	if h.header.Flavor == BigTIFF {
		return 8
	}
	return 4
}

// WriteDirectoryTree writes each of subDirs (in order) with a terminating
// next-offset of 0, records their offsets into dir's SubIFDs field, then
// flushes dir itself into the top-level chain. The children are written
// first because a SubIFDs field can only hold real offsets once its
// targets exist in the file; they never appear on the top-level chain.
func (h *Handle) WriteDirectoryTree(dir *Directory, subDirs []*Directory) (uint64, error) {
	if len(subDirs) > 0 {
		offsets := make([]uint64, len(subDirs))
		for i, sub := range subDirs {
			off, err := h.WriteDirectory(sub, 0)
			if err != nil {
				return 0, err
			}
			offsets[i] = off
		}
		dir.SubIFDOffsets = offsets
		dir.markSet(BitSubIFDs)
	}
	return h.Flush(dir, true)
}
