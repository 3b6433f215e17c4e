package tiffcore

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/vadz/gotiffcore/ioabi"
	"github.com/vadz/gotiffcore/tifferr"
)

// maxDirectoryEntries caps a directory's claimed entry count before it is
// trusted enough to allocate a buffer for. Real directories top out at a
// few dozen entries; counts above this threshold almost certainly mean the
// offset pointed into pixel data rather than at an IFD.
const maxDirectoryEntries = 4096

// maxFieldBytes caps an ordinary tag's decoded payload size before any
// allocation. Strip and tile offset/bytecount arrays are exempt (their
// legitimate size scales with the image) and get the larger cap below.
const maxFieldBytes = 4 << 20

// maxStripArrayBytes bounds the exempt strip/tile arrays too, far above
// any real image but low enough that a bogus 64-bit count can't wedge the
// allocator.
const maxStripArrayBytes = 256 << 20

// ReadOptions controls how ReadDirectory treats tags and structure it
// can't account for.
type ReadOptions struct {
	// AllowAnon registers a descriptor on the fly for tags the registry
	// doesn't know, instead of dropping them with an Unknown warning.
	AllowAnon bool

	// RequireImage enforces the structural checks a displayable image IFD
	// must pass (ImageLength present when ImageWidth is, strip or tile
	// offsets present when bytecounts are, ColorMap present under a
	// palette photometric). Custom IFDs (EXIF, GPS) carry none of these
	// tags and read with this off.
	RequireImage bool
}

// ReadResult bundles a decoded directory with its chain position and the
// recoverable problems encountered decoding it: a read tolerates
// non-structural damage by dropping the offending tag and continuing,
// rather than aborting the entire directory.
type ReadResult struct {
	Directory  *Directory
	NextOffset uint64
	Warnings   []error
}

// ReadDirectory reads one IFD at offset: the entry count, the entry
// array, and the next-IFD offset, decoding each entry's value via reg and
// storing it into a fresh Directory.
//
// Decoding is two passes over the entries. The first resolves
// SamplesPerPixel and Compression ahead of everything else, because the
// per-sample count checks applied to later tags (BitsPerSample,
// SampleFormat) need the real sample count, and legacy writers have been
// seen emitting Compression as a bogus per-sample array that the count
// checks must already know to trim. The second pass fetches every
// remaining payload in entry order.
func ReadDirectory(dev ioabi.Device, order binary.ByteOrder, flavor Flavor, reg *Registry, offset uint64, opts ReadOptions) (*ReadResult, error) {
	const op = "ReadDirectory"

	countFieldSize := int64(2)
	if flavor == BigTIFF {
		countFieldSize = 8
	}
	countBuf := make([]byte, countFieldSize)
	if _, err := ioabi.ReadAt(dev, countBuf, int64(offset)); err != nil {
		return nil, tifferr.Wrap(op, tifferr.Io, err)
	}
	var count uint64
	if flavor == BigTIFF {
		count = order.Uint64(countBuf)
	} else {
		count = uint64(order.Uint16(countBuf))
	}
	if err := CheckSizeSanity(op, count, maxDirectoryEntries); err != nil {
		return nil, err
	}

	entriesOff := offset + uint64(countFieldSize)
	entriesBuf := make([]byte, count*uint64(flavor.EntrySize()))
	if len(entriesBuf) > 0 {
		if _, err := ioabi.ReadAt(dev, entriesBuf, int64(entriesOff)); err != nil {
			return nil, tifferr.Wrap(op, tifferr.Io, err)
		}
	}
	entries := parseRawEntries(entriesBuf, int(count), order, flavor)

	nextOff := entriesOff + count*uint64(flavor.EntrySize())
	nextBuf := make([]byte, flavor.OffsetSize())
	if _, err := ioabi.ReadAt(dev, nextBuf, int64(nextOff)); err != nil {
		return nil, tifferr.Wrap(op, tifferr.Io, err)
	}
	var next uint64
	if flavor == BigTIFF {
		next = order.Uint64(nextBuf)
	} else {
		next = uint64(order.Uint32(nextBuf))
	}

	dir := NewDirectory(reg, order, flavor)
	var warnings []error

	for i := 1; i < len(entries); i++ {
		if entries[i].Tag < entries[i-1].Tag {
			warnings = append(warnings, errOp(op, tifferr.Type).WithTag(uint16(entries[i].Tag), "directory entries out of ascending tag order"))
			break
		}
	}

	// Pass 1: SamplesPerPixel first, then Compression, so pass 2's
	// per-sample count checks see the real values instead of defaults.
	consumed := make([]bool, len(entries))
	for _, tag := range []Tag{SamplesPerPixel, Compression} {
		for j := range entries {
			if entries[j].Tag != tag {
				continue
			}
			var err error
			warnings, err = decodeEntryInto(dev, dir, reg, &entries[j], order, flavor, opts, warnings)
			if err != nil {
				return nil, err
			}
			consumed[j] = true
			break
		}
	}

	// Pass 2: everything else, in entry order.
	for j := range entries {
		if consumed[j] {
			continue
		}
		var err error
		warnings, err = decodeEntryInto(dev, dir, reg, &entries[j], order, flavor, opts, warnings)
		if err != nil {
			return nil, err
		}
	}

	if opts.RequireImage {
		if err := dir.checkStructure(op); err != nil {
			return nil, err
		}
	}
	return &ReadResult{Directory: dir, NextOffset: next, Warnings: warnings}, nil
}

// decodeEntryInto resolves one raw entry's descriptor, applies the
// type/count checks, fetches the payload, and stores it into dir.
// Recoverable problems are appended to warnings and the tag dropped; Io
// and SizeSanity abort the whole directory and come back as the error.
func decodeEntryInto(dev ioabi.Device, dir *Directory, reg *Registry, e *rawEntry, order binary.ByteOrder, flavor Flavor, opts ReadOptions, warnings []error) ([]error, error) {
	const op = "ReadDirectory"
	desc, ok := reg.FindByTag(e.Tag, e.Type)
	if !ok {
		if !opts.AllowAnon {
			return append(warnings, newUnknownTagError(op, e.Tag)), nil
		}
		desc = reg.FindOrRegisterAnon(e.Tag, e.Type, e.Count)
	}
	if !desc.anonymous && desc.Type != AnyType && desc.Type != e.Type {
		return append(warnings, errOp(op, tifferr.Type).WithTag(uint16(e.Tag), desc.Name)), nil
	}
	// Inline-vs-offset placement is decided by the count actually on
	// disk, before any trimming below shrinks it.
	inline := fitsInline(e.Count, e.Type, flavor)
	if !desc.ExplicitCount {
		switch {
		case desc.ReadCount.Kind == CountFixed && e.Count > uint64(desc.ReadCount.N):
			// Too many values: accept and trim to the declared count.
			warnings = append(warnings, errOp(op, tifferr.Count).WithTag(uint16(e.Tag), desc.Name))
			e.Count = uint64(desc.ReadCount.N)
		case !desc.ReadCount.Check(e.Count, dir.SamplesPerPixel):
			// Too few (or a per-sample mismatch): drop the tag.
			return append(warnings, errOp(op, tifferr.Count).WithTag(uint16(e.Tag), desc.Name)), nil
		}
	}
	sizeCap := uint64(maxFieldBytes)
	if desc.ReadCount.Kind == CountVariableLarge {
		sizeCap = maxStripArrayBytes
	}
	val, err := decodeValue(dev, *e, order, flavor, sizeCap, inline)
	if err != nil {
		if tifferr.Is(err, tifferr.Io) || tifferr.Is(err, tifferr.SizeSanity) {
			return warnings, err
		}
		return append(warnings, err), nil
	}
	dir.setField(desc, val)
	return warnings, nil
}

// checkStructure enforces the invariants an image IFD must satisfy after
// all entries are decoded. Each violated one is fatal: the file cannot be
// interpreted as an image without the missing tag, and no repair can
// conjure it.
func (d *Directory) checkStructure(op string) error {
	if d.isBitSet(BitImageWidth) && !d.isBitSet(BitImageLength) {
		return errOp(op, tifferr.MissingRequired).WithTag(uint16(ImageLength), "ImageLength")
	}
	if d.isBitSet(BitStripByteCounts) && !d.isBitSet(BitStripOffsets) && !d.isBitSet(BitTileOffsets) {
		return errOp(op, tifferr.MissingRequired).WithTag(uint16(StripOffsets), "StripOffsets")
	}
	if d.isBitSet(BitTileByteCounts) && !d.isBitSet(BitTileOffsets) {
		return errOp(op, tifferr.MissingRequired).WithTag(uint16(TileOffsets), "TileOffsets")
	}
	if d.isBitSet(BitPhotometric) && d.Photometric == PhotometricPalette && !d.isBitSet(BitColorMap) {
		return errOp(op, tifferr.MissingRequired).WithTag(uint16(ColorMap), "ColorMap")
	}
	return nil
}

// decodeValue reads and decodes one entry's payload. inline reports
// whether the on-disk entry stored its data in the value slot (decided
// against the original count, which a trim may since have shrunk).
// sizeCap bounds the payload size before any allocation happens.
func decodeValue(dev ioabi.Device, e rawEntry, order binary.ByteOrder, flavor Flavor, sizeCap uint64, inline bool) (Value, error) {
	const op = "decodeValue"
	size := e.Type.Size()
	if size == 0 {
		return Value{}, errOp(op, tifferr.Type).WithTag(uint16(e.Tag), e.Tag.Name())
	}
	total := e.Count * size
	if err := CheckSizeSanity(op, total, sizeCap); err != nil {
		return Value{}, err
	}

	var raw []byte
	if inline {
		raw = e.Inline[:total]
	} else {
		off := inlineOffset(e, order, flavor)
		raw = make([]byte, total)
		if total > 0 {
			if _, err := ioabi.ReadAt(dev, raw, int64(off)); err != nil {
				return Value{}, tifferr.Wrap(op, tifferr.Io, err)
			}
		}
	}
	return decodeTyped(raw, e.Type, e.Count, order)
}

// decodeTyped interprets raw as count elements of typ, in order's byte
// order.
func decodeTyped(raw []byte, typ Type, count uint64, order binary.ByteOrder) (Value, error) {
	const op = "decodeTyped"
	switch typ {
	case BYTE:
		return NewByteValue(append([]uint8(nil), raw...)), nil
	case SBYTE:
		v := make([]int8, count)
		for i := range v {
			v[i] = int8(raw[i])
		}
		return NewSByteValue(v), nil
	case ASCII:
		s := string(raw)
		if i := strings.IndexByte(s, 0); i >= 0 {
			s = s[:i]
		}
		return NewASCIIValue(s), nil
	case UNDEFINED:
		return NewUndefinedValue(append([]byte(nil), raw...)), nil
	case SHORT:
		v := make([]uint16, count)
		for i := range v {
			v[i] = order.Uint16(raw[i*2:])
		}
		return NewShortValue(v), nil
	case SSHORT:
		v := make([]int16, count)
		for i := range v {
			v[i] = int16(order.Uint16(raw[i*2:]))
		}
		return NewSShortValue(v), nil
	case LONG, IFD:
		v := make([]uint32, count)
		for i := range v {
			v[i] = order.Uint32(raw[i*4:])
		}
		return NewLongValue(v), nil
	case SLONG:
		v := make([]int32, count)
		for i := range v {
			v[i] = int32(order.Uint32(raw[i*4:]))
		}
		return NewSLongValue(v), nil
	case LONG8, IFD8:
		v := make([]uint64, count)
		for i := range v {
			v[i] = order.Uint64(raw[i*8:])
		}
		return NewLong8Value(v), nil
	case SLONG8:
		v := make([]int64, count)
		for i := range v {
			v[i] = int64(order.Uint64(raw[i*8:]))
		}
		return NewSLong8Value(v), nil
	case RATIONAL:
		v := make([]Rational, count)
		for i := range v {
			v[i] = Rational{Numerator: order.Uint32(raw[i*8:]), Denominator: order.Uint32(raw[i*8+4:])}
		}
		return NewRationalValue(v), nil
	case SRATIONAL:
		v := make([]SRational, count)
		for i := range v {
			v[i] = SRational{Numerator: int32(order.Uint32(raw[i*8:])), Denominator: int32(order.Uint32(raw[i*8+4:]))}
		}
		return NewSRationalValue(v), nil
	case FLOAT:
		v := make([]float32, count)
		for i := range v {
			v[i] = math.Float32frombits(order.Uint32(raw[i*4:]))
		}
		return NewFloatValue(v), nil
	case DOUBLE:
		v := make([]float64, count)
		for i := range v {
			v[i] = math.Float64frombits(order.Uint64(raw[i*8:]))
		}
		return NewDoubleValue(v), nil
	default:
		return Value{}, errOp(op, tifferr.Type)
	}
}
