package tiffcore

import (
	"sort"

	"github.com/vadz/gotiffcore/tifferr"
)

// This file is the tag <-> struct-field dispatcher for Directory: setField
// (trusted, used by the reader and custom-directory reading), the public
// Set/Get/GetDefaulted contract, and the small widening helpers that
// convert a Value's concrete element type into the Directory struct's
// chosen storage width.

func widenShorts(v Value) []uint16 {
	n := v.Count()
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		if u, ok := v.AnyUint(i); ok {
			out[i] = uint16(u)
		}
	}
	return out
}

func widenUints(v Value) []uint64 {
	n := v.Count()
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		if u, ok := v.AnyUint(i); ok {
			out[i] = u
		}
	}
	return out
}

func widenDoubles(v Value) []float64 {
	n := v.Count()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if f, ok := v.AnyFloat(i); ok {
			out[i] = f
		}
	}
	return out
}

// findCustom looks up tag in the ordered custom-tag list.
func (d *Directory) findCustom(tag Tag) (*Value, bool) {
	for i := range d.Custom {
		if d.Custom[i].Descriptor.Tag == tag {
			return &d.Custom[i].Value, true
		}
	}
	return nil, false
}

// setCustom inserts or replaces tag's entry in the ordered custom-tag
// list.
func (d *Directory) setCustom(desc *Descriptor, v Value) {
	for i := range d.Custom {
		if d.Custom[i].Descriptor.Tag == desc.Tag {
			d.Custom[i] = CustomField{Descriptor: desc, Value: v}
			return
		}
	}
	d.Custom = append(d.Custom, CustomField{Descriptor: desc, Value: v})
	sort.SliceStable(d.Custom, func(i, j int) bool {
		return d.Custom[i].Descriptor.Tag < d.Custom[j].Descriptor.Tag
	})
}

// setField writes v into desc's struct slot (or the custom list) and
// marks the slot's bit, without any of the Unknown/Locked/Type/Count
// checks Set performs — the reader has already made those calls itself
// (structural vs. recoverable) before getting here.
func (d *Directory) setField(desc *Descriptor, v Value) {
	if desc.Bit == CustomBit {
		d.setCustom(desc, v)
		return
	}
	switch desc.Tag {
	case NewSubfileType:
		if u, ok := v.AnyUint(0); ok {
			d.NewSubfileType = uint32(u)
		}
	case SubfileType:
		if u, ok := v.AnyUint(0); ok {
			d.SubfileType = uint16(u)
		}
	case ImageWidth:
		if u, ok := v.AnyUint(0); ok {
			d.ImageWidth = u
		}
	case ImageLength:
		if u, ok := v.AnyUint(0); ok {
			d.ImageLength = u
		}
	case BitsPerSample:
		d.BitsPerSample = widenShorts(v)
	case Compression:
		if u, ok := v.AnyUint(0); ok {
			d.Compression = uint16(u)
		}
	case PhotometricInterpretation:
		if u, ok := v.AnyUint(0); ok {
			d.Photometric = uint16(u)
		}
	case Threshholding:
		if u, ok := v.AnyUint(0); ok {
			d.Threshholding = uint16(u)
		}
	case CellWidth:
		if u, ok := v.AnyUint(0); ok {
			d.CellWidth = uint16(u)
		}
	case CellLength:
		if u, ok := v.AnyUint(0); ok {
			d.CellLength = uint16(u)
		}
	case FillOrder:
		if u, ok := v.AnyUint(0); ok {
			d.FillOrder = uint16(u)
		}
	case DocumentName:
		if s, ok := v.ASCII(); ok {
			d.DocumentName = s
		}
	case ImageDescription:
		if s, ok := v.ASCII(); ok {
			d.ImageDescription = s
		}
	case Make:
		if s, ok := v.ASCII(); ok {
			d.Make = s
		}
	case Model:
		if s, ok := v.ASCII(); ok {
			d.Model = s
		}
	case StripOffsets:
		d.StripOffsets = widenUints(v)
	case Orientation:
		if u, ok := v.AnyUint(0); ok {
			d.Orientation = uint16(u)
		}
	case SamplesPerPixel:
		if u, ok := v.AnyUint(0); ok {
			d.SamplesPerPixel = uint16(u)
		}
	case RowsPerStrip:
		if u, ok := v.AnyUint(0); ok {
			d.RowsPerStrip = u
		}
	case StripByteCounts:
		d.StripByteCounts = widenUints(v)
	case MinSampleValue:
		d.MinSampleValue = widenShorts(v)
	case MaxSampleValue:
		d.MaxSampleValue = widenShorts(v)
	case XResolution:
		if r, ok := v.Rationals(); ok && len(r) > 0 {
			d.XResolution = r[0]
		}
	case YResolution:
		if r, ok := v.Rationals(); ok && len(r) > 0 {
			d.YResolution = r[0]
		}
	case PlanarConfiguration:
		if u, ok := v.AnyUint(0); ok {
			d.PlanarConfig = uint16(u)
		}
	case PageName:
		if s, ok := v.ASCII(); ok {
			d.PageName = s
		}
	case XPosition:
		if r, ok := v.Rationals(); ok && len(r) > 0 {
			d.XPosition = r[0]
		}
	case YPosition:
		if r, ok := v.Rationals(); ok && len(r) > 0 {
			d.YPosition = r[0]
		}
	case ResolutionUnit:
		if u, ok := v.AnyUint(0); ok {
			d.ResolutionUnit = uint16(u)
		}
	case PageNumber:
		if s, ok := v.Shorts(); ok && len(s) >= 2 {
			d.PageNumber = [2]uint16{s[0], s[1]}
		}
	case Software:
		if s, ok := v.ASCII(); ok {
			d.Software = s
		}
	case DateTime:
		if s, ok := v.ASCII(); ok {
			d.DateTime = s
		}
	case Artist:
		if s, ok := v.ASCII(); ok {
			d.Artist = s
		}
	case HostComputer:
		if s, ok := v.ASCII(); ok {
			d.HostComputer = s
		}
	case Predictor:
		if u, ok := v.AnyUint(0); ok {
			d.Predictor = uint16(u)
		}
	case WhitePoint:
		if r, ok := v.Rationals(); ok && len(r) >= 2 {
			d.WhitePoint = [2]Rational{r[0], r[1]}
		}
	case PrimaryChromaticities:
		if r, ok := v.Rationals(); ok && len(r) >= 6 {
			copy(d.PrimaryChromaticities[:], r[:6])
		}
	case ColorMap:
		if s, ok := v.Shorts(); ok && len(s) > 0 {
			third := len(s) / 3
			d.ColorMap = [3][]uint16{
				append([]uint16(nil), s[:third]...),
				append([]uint16(nil), s[third:2*third]...),
				append([]uint16(nil), s[2*third:3*third]...),
			}
		}
	case TileWidth:
		if u, ok := v.AnyUint(0); ok {
			d.TileWidth = uint32(u)
		}
	case TileLength:
		if u, ok := v.AnyUint(0); ok {
			d.TileLength = uint32(u)
		}
	case TileOffsets:
		d.TileOffsets = widenUints(v)
	case TileByteCounts:
		d.TileByteCounts = widenUints(v)
	case SubIFDs:
		d.SubIFDOffsets = widenUints(v)
	case InkSet:
		if u, ok := v.AnyUint(0); ok {
			d.InkSet = uint16(u)
		}
	case ExtraSamples:
		d.ExtraSamples = widenShorts(v)
	case SampleFormat:
		d.SampleFormat = widenShorts(v)
	case SMinSampleValue:
		d.SMinSampleValue = widenDoubles(v)
	case SMaxSampleValue:
		d.SMaxSampleValue = widenDoubles(v)
	case JPEGTables:
		if b, ok := v.Undefined(); ok {
			d.JPEGTables = b
		}
	case YCbCrCoefficients:
		if r, ok := v.Rationals(); ok && len(r) >= 3 {
			copy(d.YCbCrCoefficients[:], r[:3])
		}
	case YCbCrSubSampling:
		if s, ok := v.Shorts(); ok && len(s) >= 2 {
			d.YCbCrSubSampling = [2]uint16{s[0], s[1]}
		}
	case YCbCrPositioning:
		if u, ok := v.AnyUint(0); ok {
			d.YCbCrPositioning = uint16(u)
		}
	case ReferenceBlackWhite:
		if r, ok := v.Rationals(); ok {
			d.ReferenceBlackWhite = r
		}
	case Copyright:
		if s, ok := v.ASCII(); ok {
			d.Copyright = s
		}
	case ICCProfile:
		if b, ok := v.Undefined(); ok {
			d.ICCProfile = b
		} else if b, ok := v.Bytes(); ok {
			d.ICCProfile = b
		}
	case ExifIFD:
		if u, ok := v.AnyUint(0); ok {
			d.ExifIFDOffset = u
		}
	case GPSIFD:
		if u, ok := v.AnyUint(0); ok {
			d.GPSIFDOffset = u
		}
	default:
		d.setCustom(desc, v)
		return
	}
	d.markSet(desc.Bit)
}

// valueForBit is setField's inverse: it re-boxes a well-known struct slot
// into a Value for Get/GetDefaulted. Called only when the slot's bit is
// known to be set (or, from GetDefaulted, when a default is being
// synthesized).
func (d *Directory) valueForBit(tag Tag) (Value, bool) {
	switch tag {
	case NewSubfileType:
		return NewLongValue([]uint32{d.NewSubfileType}), true
	case SubfileType:
		return NewShortValue([]uint16{d.SubfileType}), true
	case ImageWidth:
		return NewLongValue([]uint32{uint32(d.ImageWidth)}), true
	case ImageLength:
		return NewLongValue([]uint32{uint32(d.ImageLength)}), true
	case BitsPerSample:
		return NewShortValue(d.BitsPerSample), true
	case Compression:
		return NewShortValue([]uint16{d.Compression}), true
	case PhotometricInterpretation:
		return NewShortValue([]uint16{d.Photometric}), true
	case Threshholding:
		return NewShortValue([]uint16{d.Threshholding}), true
	case CellWidth:
		return NewShortValue([]uint16{d.CellWidth}), true
	case CellLength:
		return NewShortValue([]uint16{d.CellLength}), true
	case FillOrder:
		return NewShortValue([]uint16{d.FillOrder}), true
	case DocumentName:
		return NewASCIIValue(d.DocumentName), true
	case ImageDescription:
		return NewASCIIValue(d.ImageDescription), true
	case Make:
		return NewASCIIValue(d.Make), true
	case Model:
		return NewASCIIValue(d.Model), true
	case StripOffsets:
		return NewLong8Value(d.StripOffsets), true
	case Orientation:
		return NewShortValue([]uint16{d.Orientation}), true
	case SamplesPerPixel:
		return NewShortValue([]uint16{d.SamplesPerPixel}), true
	case RowsPerStrip:
		return NewLongValue([]uint32{uint32(d.RowsPerStrip)}), true
	case StripByteCounts:
		return NewLong8Value(d.StripByteCounts), true
	case MinSampleValue:
		return NewShortValue(d.MinSampleValue), true
	case MaxSampleValue:
		return NewShortValue(d.MaxSampleValue), true
	case XResolution:
		return NewRationalValue([]Rational{d.XResolution}), true
	case YResolution:
		return NewRationalValue([]Rational{d.YResolution}), true
	case PlanarConfiguration:
		return NewShortValue([]uint16{d.PlanarConfig}), true
	case PageName:
		return NewASCIIValue(d.PageName), true
	case XPosition:
		return NewRationalValue([]Rational{d.XPosition}), true
	case YPosition:
		return NewRationalValue([]Rational{d.YPosition}), true
	case ResolutionUnit:
		return NewShortValue([]uint16{d.ResolutionUnit}), true
	case PageNumber:
		return NewShortValue(d.PageNumber[:]), true
	case Software:
		return NewASCIIValue(d.Software), true
	case DateTime:
		return NewASCIIValue(d.DateTime), true
	case Artist:
		return NewASCIIValue(d.Artist), true
	case HostComputer:
		return NewASCIIValue(d.HostComputer), true
	case Predictor:
		return NewShortValue([]uint16{d.Predictor}), true
	case WhitePoint:
		return NewRationalValue(d.WhitePoint[:]), true
	case PrimaryChromaticities:
		return NewRationalValue(d.PrimaryChromaticities[:]), true
	case ColorMap:
		all := append(append(append([]uint16{}, d.ColorMap[0]...), d.ColorMap[1]...), d.ColorMap[2]...)
		return NewShortValue(all), true
	case TileWidth:
		return NewLongValue([]uint32{d.TileWidth}), true
	case TileLength:
		return NewLongValue([]uint32{d.TileLength}), true
	case TileOffsets:
		return NewLong8Value(d.TileOffsets), true
	case TileByteCounts:
		return NewLong8Value(d.TileByteCounts), true
	case SubIFDs:
		return NewLong8Value(d.SubIFDOffsets), true
	case InkSet:
		return NewShortValue([]uint16{d.InkSet}), true
	case ExtraSamples:
		return NewShortValue(d.ExtraSamples), true
	case SampleFormat:
		return NewShortValue(d.SampleFormat), true
	case SMinSampleValue:
		return NewDoubleValue(d.SMinSampleValue), true
	case SMaxSampleValue:
		return NewDoubleValue(d.SMaxSampleValue), true
	case JPEGTables:
		return NewUndefinedValue(d.JPEGTables), true
	case YCbCrCoefficients:
		return NewRationalValue(d.YCbCrCoefficients[:]), true
	case YCbCrSubSampling:
		return NewShortValue(d.YCbCrSubSampling[:]), true
	case YCbCrPositioning:
		return NewShortValue([]uint16{d.YCbCrPositioning}), true
	case ReferenceBlackWhite:
		return NewRationalValue(d.ReferenceBlackWhite), true
	case Copyright:
		return NewASCIIValue(d.Copyright), true
	case ICCProfile:
		return NewUndefinedValue(d.ICCProfile), true
	case ExifIFD:
		return NewLongValue([]uint32{uint32(d.ExifIFDOffset)}), true
	case GPSIFD:
		return NewLongValue([]uint32{uint32(d.GPSIFDOffset)}), true
	default:
		return Value{}, false
	}
}

// Set stores v under tag, enforcing the directory model's mutation
// contract: Unknown if no descriptor covers tag, Type if v's Kind
// doesn't match the descriptor, Locked if the field is already set and
// its descriptor forbids change, Count if v's element count doesn't
// satisfy the descriptor's write-count vocabulary.
func (d *Directory) Set(tag Tag, v Value) error {
	const op = "Directory.Set"
	desc, ok := d.Registry.FindByTag(tag, v.Kind)
	if !ok {
		return newUnknownTagError(op, tag)
	}
	if desc.Type != AnyType && desc.Type != v.Kind {
		return errOp(op, tifferr.Type).WithTag(uint16(tag), desc.Name)
	}
	if !desc.OkToChange && d.IsSet(tag) {
		return errOp(op, tifferr.Locked).WithTag(uint16(tag), desc.Name)
	}
	if !desc.ExplicitCount {
		cnt := uint64(v.Count())
		ok := desc.WriteCount.Check(cnt, d.SamplesPerPixel)
		// A per-sample tag set with one value broadcasts to all samples
		// at write time.
		if !ok && desc.WriteCount.Kind == CountPerSample && cnt == 1 {
			ok = true
		}
		if !ok {
			return errOp(op, tifferr.Count).WithTag(uint16(tag), desc.Name)
		}
	}
	d.setField(desc, v)
	return nil
}

// SetResolution stores X/YResolution from plain floats, encoding each as
// the numerator/denominator pair the RATIONAL type requires.
func (d *Directory) SetResolution(x, y float64) error {
	const op = "Directory.SetResolution"
	xr, ok := RationalFromFloat(x)
	if !ok {
		return errOp(op, tifferr.Range).WithTag(uint16(XResolution), "XResolution")
	}
	yr, ok := RationalFromFloat(y)
	if !ok {
		return errOp(op, tifferr.Range).WithTag(uint16(YResolution), "YResolution")
	}
	if err := d.Set(XResolution, NewRationalValue([]Rational{xr})); err != nil {
		return err
	}
	return d.Set(YResolution, NewRationalValue([]Rational{yr}))
}

// Get returns tag's value and whether it is actually set. A well-known
// field whose struct slot merely holds its construction-time default
// (never explicitly Set, never read from a file) reports ok=false; use
// GetDefaulted to fall back to the default in that case.
func (d *Directory) Get(tag Tag) (Value, bool) {
	desc, ok := d.Registry.FindByTag(tag, AnyType)
	if !ok {
		return Value{}, false
	}
	if desc.Bit == CustomBit {
		for _, c := range d.Custom {
			if c.Descriptor.Tag == tag {
				return c.Value, true
			}
		}
		return Value{}, false
	}
	if !d.isBitSet(desc.Bit) {
		return Value{}, false
	}
	return d.valueForBit(tag)
}

// GetDefaulted returns tag's value if set, else its default if one
// exists. RowsPerStrip's default depends on ImageLength; MaxSampleValue's
// depends on BitsPerSample and is resolved during the repair phase
// instead (it needs per-sample handling GetDefaulted's single-Value
// return can't express cleanly). PhotometricInterpretation has no
// universal default and always reports ok=false when unset.
func (d *Directory) GetDefaulted(tag Tag) (Value, bool) {
	if v, ok := d.Get(tag); ok {
		return v, true
	}
	switch tag {
	case Compression:
		return NewShortValue([]uint16{d.Compression}), true
	case PlanarConfiguration:
		return NewShortValue([]uint16{d.PlanarConfig}), true
	case SamplesPerPixel:
		return NewShortValue([]uint16{d.SamplesPerPixel}), true
	case BitsPerSample:
		return NewShortValue(d.BitsPerSample), true
	case SampleFormat:
		return NewShortValue(d.SampleFormat), true
	case Orientation:
		return NewShortValue([]uint16{d.Orientation}), true
	case ResolutionUnit:
		return NewShortValue([]uint16{d.ResolutionUnit}), true
	case FillOrder:
		return NewShortValue([]uint16{d.FillOrder}), true
	case RowsPerStrip:
		if d.isBitSet(BitImageLength) {
			return NewLongValue([]uint32{uint32(d.ImageLength)}), true
		}
		return Value{}, false
	default:
		return Value{}, false
	}
}
