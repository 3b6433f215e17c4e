package tiffcore

import "encoding/binary"

// Bit positions for the Directory's "set" vector. A field is considered
// set only if its bit is on; CustomBit (-1) marks tags that live in the
// custom-tag list instead of the dense struct below.
const (
	BitNewSubfileType = iota
	BitSubfileType
	BitImageWidth
	BitImageLength
	BitBitsPerSample
	BitCompression
	BitPhotometric
	BitThreshholding
	BitCellWidth
	BitCellLength
	BitFillOrder
	BitDocumentName
	BitImageDescription
	BitMake
	BitModel
	BitStripOffsets
	BitOrientation
	BitSamplesPerPixel
	BitRowsPerStrip
	BitStripByteCounts
	BitMinSampleValue
	BitMaxSampleValue
	BitXResolution
	BitYResolution
	BitPlanarConfig
	BitPageName
	BitXPosition
	BitYPosition
	BitResolutionUnit
	BitPageNumber
	BitSoftware
	BitDateTime
	BitArtist
	BitHostComputer
	BitPredictor
	BitWhitePoint
	BitPrimaryChromaticities
	BitColorMap
	BitTileWidth
	BitTileLength
	BitTileOffsets
	BitTileByteCounts
	BitSubIFDs
	BitInkSet
	BitExtraSamples
	BitSampleFormat
	BitSMinSampleValue
	BitSMaxSampleValue
	BitJPEGTables
	BitYCbCrCoefficients
	BitYCbCrSubSampling
	BitYCbCrPositioning
	BitReferenceBlackWhite
	BitCopyright
	BitICCProfile
	BitExifIFD
	BitGPSIFD
	numWellKnownBits
)

func init() {
	if numWellKnownBits > 64 {
		panic("tiffcore: well-known bit vector overflowed 64 bits")
	}
}

// PlanarConfig values.
const (
	PlanarContig   = 1
	PlanarSeparate = 2
)

// PhotometricInterpretation values.
const (
	PhotometricMinIsWhite = 0
	PhotometricMinIsBlack = 1
	PhotometricRGB        = 2
	PhotometricPalette    = 3
	PhotometricMask       = 4
	PhotometricSeparated  = 5
	PhotometricYCbCr      = 6
	PhotometricCIELab     = 8
)

// Compression values the directory layer itself has to know about. The
// full scheme space belongs to codec plug-ins.
const (
	CompressionNone = 1
)

// WellKnownTags lists, in ascending tag order, every tag with a dense
// struct slot in Directory, for callers (dumpers, canonicalizing
// rewriters) that want to walk the well-known fields without consulting
// the registry.
var WellKnownTags = []Tag{
	NewSubfileType, SubfileType, ImageWidth, ImageLength, BitsPerSample,
	Compression, PhotometricInterpretation, Threshholding, CellWidth,
	CellLength, FillOrder, DocumentName, ImageDescription, Make, Model,
	StripOffsets, Orientation, SamplesPerPixel, RowsPerStrip,
	StripByteCounts, MinSampleValue, MaxSampleValue, XResolution,
	YResolution, PlanarConfiguration, PageName, XPosition, YPosition,
	ResolutionUnit, PageNumber, Software, DateTime, Artist, HostComputer,
	Predictor, WhitePoint, PrimaryChromaticities, ColorMap, TileWidth,
	TileLength, TileOffsets, TileByteCounts, SubIFDs, InkSet,
	ExtraSamples, SampleFormat, SMinSampleValue, SMaxSampleValue,
	JPEGTables, YCbCrCoefficients, YCbCrSubSampling, YCbCrPositioning,
	ReferenceBlackWhite, Copyright, ICCProfile, ExifIFD, GPSIFD,
}

// CustomField is one entry in a Directory's ordered custom-tag list: a
// field descriptor plus an owned, variable-length payload.
type CustomField struct {
	Descriptor *Descriptor
	Value      Value
}

// Directory is the in-memory representation of one IFD: a dense struct
// of well-known fields, a bit vector of which are set, and an ordered
// list of custom-tag values. Strip/tile offset and bytecount arrays are
// always widened to uint64 even for classic files.
type Directory struct {
	Registry *Registry
	Order    binary.ByteOrder
	Flavor   Flavor

	set uint64

	NewSubfileType   uint32
	SubfileType      uint16
	ImageWidth       uint64
	ImageLength      uint64
	BitsPerSample    []uint16
	Compression      uint16
	Photometric      uint16
	Threshholding    uint16
	CellWidth        uint16
	CellLength       uint16
	FillOrder        uint16
	DocumentName     string
	ImageDescription string
	Make             string
	Model            string
	StripOffsets     []uint64
	Orientation      uint16
	SamplesPerPixel  uint16
	RowsPerStrip     uint64
	StripByteCounts  []uint64
	MinSampleValue   []uint16
	MaxSampleValue   []uint16
	XResolution      Rational
	YResolution      Rational
	PlanarConfig     uint16
	PageName         string
	XPosition        Rational
	YPosition        Rational
	ResolutionUnit   uint16
	PageNumber       [2]uint16
	Software         string
	DateTime         string
	Artist           string
	HostComputer     string
	Predictor        uint16

	WhitePoint            [2]Rational
	PrimaryChromaticities [6]Rational
	ColorMap              [3][]uint16

	TileWidth       uint32
	TileLength      uint32
	TileOffsets     []uint64
	TileByteCounts  []uint64
	SubIFDOffsets   []uint64
	InkSet          uint16
	ExtraSamples    []uint16
	SampleFormat    []uint16
	SMinSampleValue []float64
	SMaxSampleValue []float64
	JPEGTables      []byte

	YCbCrCoefficients   [3]Rational
	YCbCrSubSampling    [2]uint16
	YCbCrPositioning    uint16
	ReferenceBlackWhite []Rational
	Copyright           string
	ICCProfile          []byte

	ExifIFDOffset uint64
	GPSIFDOffset  uint64

	// StripByteCountSorted records whether StripOffsets is monotonically
	// non-decreasing, computed during the repair phase and consumed by
	// callers deciding whether sequential strip access will also be
	// sequential on disk.
	StripByteCountSorted bool

	// Custom holds every tag without a well-known struct slot, in tag
	// order.
	Custom []CustomField
}

// NewDirectory returns an empty directory bound to reg and order. reg may
// be shared read-only across directories (e.g. a codec's extension
// table); each Directory still owns its own field payloads.
func NewDirectory(reg *Registry, order binary.ByteOrder, flavor Flavor) *Directory {
	d := &Directory{Registry: reg, Order: order, Flavor: flavor}
	d.applyStaticDefaults()
	return d
}

// applyStaticDefaults seeds the fields whose default doesn't depend on any
// other field's value. Dynamic defaults
// (RowsPerStrip ← ImageLength, MaxSampleValue ← BitsPerSample) are
// resolved lazily by GetDefaulted/the repair phase instead.
func (d *Directory) applyStaticDefaults() {
	d.PlanarConfig = PlanarContig
	d.BitsPerSample = []uint16{1}
	d.SamplesPerPixel = 1
	d.SampleFormat = []uint16{1} // unsigned integer
	d.Compression = 1            // none
	d.Orientation = 1            // top-left
	d.ResolutionUnit = 2         // inch
	d.FillOrder = 1              // MSB-to-LSB
}

func (d *Directory) isBitSet(bit int) bool {
	if bit < 0 {
		return false
	}
	return d.set&(1<<uint(bit)) != 0
}

func (d *Directory) markSet(bit int) {
	if bit >= 0 {
		d.set |= 1 << uint(bit)
	}
}

func (d *Directory) clearSet(bit int) {
	if bit >= 0 {
		d.set &^= 1 << uint(bit)
	}
}

// IsSet reports whether tag's bit is on (well-known fields) or it appears
// in the custom list (custom fields). A field whose bit is clear is
// "unset" even if applyStaticDefaults already gave its struct slot a
// default value — callers that need to distinguish "never written" from
// "written and happens to equal the default" rely on this distinction.
func (d *Directory) IsSet(tag Tag) bool {
	if desc, ok := d.Registry.FindByTag(tag, AnyType); ok && desc.Bit != CustomBit {
		return d.isBitSet(desc.Bit)
	}
	for _, c := range d.Custom {
		if c.Descriptor.Tag == tag {
			return true
		}
	}
	return false
}
