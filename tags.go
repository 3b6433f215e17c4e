package tiffcore

// Tag is a 16-bit TIFF field identifier. The numeric ids and most names
// below follow TIFF 6.0 plus the listed supplements; GeoTIFF and a
// handful of others are included because the registry needs an
// id->name mapping for every tag the repair phase or writer
// special-cases.
type Tag uint16

const (
	NewSubfileType              Tag = 0x0FE
	SubfileType                 Tag = 0x0FF
	ImageWidth                  Tag = 0x100
	ImageLength                 Tag = 0x101
	BitsPerSample               Tag = 0x102
	Compression                 Tag = 0x103
	PhotometricInterpretation   Tag = 0x106
	Threshholding               Tag = 0x107
	CellWidth                   Tag = 0x108
	CellLength                  Tag = 0x109
	FillOrder                   Tag = 0x10A
	DocumentName                Tag = 0x10D
	ImageDescription            Tag = 0x10E
	Make                        Tag = 0x10F
	Model                       Tag = 0x110
	StripOffsets                Tag = 0x111
	Orientation                 Tag = 0x112
	SamplesPerPixel             Tag = 0x115
	RowsPerStrip                Tag = 0x116
	StripByteCounts             Tag = 0x117
	MinSampleValue              Tag = 0x118
	MaxSampleValue              Tag = 0x119
	XResolution                 Tag = 0x11A
	YResolution                 Tag = 0x11B
	PlanarConfiguration         Tag = 0x11C
	PageName                    Tag = 0x11D
	XPosition                   Tag = 0x11E
	YPosition                   Tag = 0x11F
	FreeOffsets                 Tag = 0x120
	FreeByteCounts              Tag = 0x121
	GrayResponseUnit            Tag = 0x122
	GrayResponseCurve           Tag = 0x123
	T4Options                   Tag = 0x124
	T6Options                   Tag = 0x125
	ResolutionUnit              Tag = 0x128
	PageNumber                  Tag = 0x129
	TransferFunction            Tag = 0x12D
	Software                    Tag = 0x131
	DateTime                    Tag = 0x132
	Artist                      Tag = 0x13B
	HostComputer                Tag = 0x13C
	Predictor                   Tag = 0x13D
	WhitePoint                  Tag = 0x13E
	PrimaryChromaticities       Tag = 0x13F
	ColorMap                    Tag = 0x140
	HalftoneHints               Tag = 0x141
	TileWidth                   Tag = 0x142
	TileLength                  Tag = 0x143
	TileOffsets                 Tag = 0x144
	TileByteCounts              Tag = 0x145
	BadFaxLines                 Tag = 0x146
	CleanFaxData                Tag = 0x147
	ConsecutiveBadFaxLines      Tag = 0x148
	SubIFDs                     Tag = 0x14A
	InkSet                      Tag = 0x14C
	InkNames                    Tag = 0x14D
	NumberOfInks                Tag = 0x14E
	DotRange                    Tag = 0x150
	TargetPrinter               Tag = 0x151
	ExtraSamples                Tag = 0x152
	SampleFormat                Tag = 0x153
	SMinSampleValue             Tag = 0x154
	SMaxSampleValue             Tag = 0x155
	TransferRange               Tag = 0x156
	ClipPath                    Tag = 0x157
	XClipPathUnits              Tag = 0x158
	YClipPathUnits              Tag = 0x159
	Indexed                     Tag = 0x15A
	JPEGTables                  Tag = 0x15B
	OPIProxy                    Tag = 0x15F
	JPEGProc                    Tag = 0x200
	JPEGInterchangeFormat       Tag = 0x201
	JPEGInterchangeFormatLength Tag = 0x202
	JPEGRestartInterval         Tag = 0x203
	JPEGLosslessPredictors      Tag = 0x205
	JPEGPointTransforms         Tag = 0x206
	JPEGQTables                 Tag = 0x207
	JPEGDCTables                Tag = 0x208
	JPEGACTables                Tag = 0x209
	YCbCrCoefficients           Tag = 0x211
	YCbCrSubSampling            Tag = 0x212
	YCbCrPositioning            Tag = 0x213
	ReferenceBlackWhite         Tag = 0x214
	XMP                         Tag = 0x2BC
	ImageID                     Tag = 0x800
	Copyright                   Tag = 0x8298
	ModelPixelScaleTag          Tag = 0x830E // GeoTIFF
	IPTC                        Tag = 0x83BB
	ModelTiepointTag            Tag = 0x8482 // GeoTIFF
	ModelTransformationTag      Tag = 0x85D8 // GeoTIFF
	PSIR                        Tag = 0x8649
	ExifIFD                     Tag = 0x8769
	ICCProfile                  Tag = 0x8773
	GeoKeyDirectoryTag          Tag = 0x87AF // GeoTIFF
	GeoDoubleParamsTag          Tag = 0x87B0 // GeoTIFF
	GeoAsciiParamsTag           Tag = 0x87B1 // GeoTIFF
	GPSIFD                      Tag = 0x8825
	ImageSourceData             Tag = 0x935C
	PrintIM                     Tag = 0xC4A5
)

var tagNames = map[Tag]string{
	NewSubfileType:              "NewSubfileType",
	SubfileType:                 "SubfileType",
	ImageWidth:                  "ImageWidth",
	ImageLength:                 "ImageLength",
	BitsPerSample:               "BitsPerSample",
	Compression:                 "Compression",
	PhotometricInterpretation:   "PhotometricInterpretation",
	Threshholding:               "Threshholding",
	CellWidth:                   "CellWidth",
	CellLength:                  "CellLength",
	FillOrder:                   "FillOrder",
	DocumentName:                "DocumentName",
	ImageDescription:            "ImageDescription",
	Make:                        "Make",
	Model:                       "Model",
	StripOffsets:                "StripOffsets",
	Orientation:                 "Orientation",
	SamplesPerPixel:             "SamplesPerPixel",
	RowsPerStrip:                "RowsPerStrip",
	StripByteCounts:             "StripByteCounts",
	MinSampleValue:              "MinSampleValue",
	MaxSampleValue:              "MaxSampleValue",
	XResolution:                 "XResolution",
	YResolution:                 "YResolution",
	PlanarConfiguration:         "PlanarConfiguration",
	PageName:                    "PageName",
	XPosition:                   "XPosition",
	YPosition:                   "YPosition",
	FreeOffsets:                 "FreeOffsets",
	FreeByteCounts:              "FreeByteCounts",
	GrayResponseUnit:            "GrayResponseUnit",
	GrayResponseCurve:           "GrayResponseCurve",
	T4Options:                   "T4Options",
	T6Options:                   "T6Options",
	ResolutionUnit:              "ResolutionUnit",
	PageNumber:                  "PageNumber",
	TransferFunction:            "TransferFunction",
	Software:                    "Software",
	DateTime:                    "DateTime",
	Artist:                      "Artist",
	HostComputer:                "HostComputer",
	Predictor:                   "Predictor",
	WhitePoint:                  "WhitePoint",
	PrimaryChromaticities:       "PrimaryChromaticities",
	ColorMap:                    "ColorMap",
	HalftoneHints:               "HalftoneHints",
	TileWidth:                   "TileWidth",
	TileLength:                  "TileLength",
	TileOffsets:                 "TileOffsets",
	TileByteCounts:              "TileByteCounts",
	BadFaxLines:                 "BadFaxLines",
	CleanFaxData:                "CleanFaxData",
	ConsecutiveBadFaxLines:      "ConsecutiveBadFaxLines",
	SubIFDs:                     "SubIFDs",
	InkSet:                      "InkSet",
	InkNames:                    "InkNames",
	NumberOfInks:                "NumberOfInks",
	DotRange:                    "DotRange",
	TargetPrinter:               "TargetPrinter",
	ExtraSamples:                "ExtraSamples",
	SampleFormat:                "SampleFormat",
	SMinSampleValue:             "SMinSampleValue",
	SMaxSampleValue:             "SMaxSampleValue",
	TransferRange:               "TransferRange",
	ClipPath:                    "ClipPath",
	XClipPathUnits:              "XClipPathUnits",
	YClipPathUnits:              "YClipPathUnits",
	Indexed:                     "Indexed",
	JPEGTables:                  "JPEGTables",
	OPIProxy:                    "OPIProxy",
	JPEGProc:                    "JPEGProc",
	JPEGInterchangeFormat:       "JPEGInterchangeFormat",
	JPEGInterchangeFormatLength: "JPEGInterchangeFormatLength",
	JPEGRestartInterval:         "JPEGRestartInterval",
	JPEGLosslessPredictors:      "JPEGLosslessPredictors",
	JPEGPointTransforms:         "JPEGPointTransforms",
	JPEGQTables:                 "JPEGQTables",
	JPEGDCTables:                "JPEGDCTables",
	JPEGACTables:                "JPEGACTables",
	YCbCrCoefficients:           "YCbCrCoefficients",
	YCbCrSubSampling:            "YCbCrSubSampling",
	YCbCrPositioning:            "YCbCrPositioning",
	ReferenceBlackWhite:         "ReferenceBlackWhite",
	XMP:                         "XMP",
	ImageID:                     "ImageID",
	Copyright:                   "Copyright",
	ModelPixelScaleTag:          "ModelPixelScaleTag",
	IPTC:                        "IPTC",
	ModelTiepointTag:            "ModelTiepointTag",
	ModelTransformationTag:      "ModelTransformationTag",
	PSIR:                        "PSIR",
	ExifIFD:                     "ExifIFD",
	ICCProfile:                  "ICCProfile",
	GeoKeyDirectoryTag:          "GeoKeyDirectoryTag",
	GeoDoubleParamsTag:          "GeoDoubleParamsTag",
	GeoAsciiParamsTag:           "GeoAsciiParamsTag",
	GPSIFD:                      "GPSIFD",
	ImageSourceData:             "ImageSourceData",
	PrintIM:                     "PrintIM",
}

// Name returns the human-readable name of t, or "" if t is not a built-in
// tag (an anonymously-registered tag carries its own synthesized name in
// its Descriptor instead).
func (t Tag) Name() string {
	return tagNames[t]
}
