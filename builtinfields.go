package tiffcore

// BuiltinTIFFFields is the built-in TIFF 6.0 + Supplement 1/2 field
// table, consulted by NewTIFFRegistry. Dimension-ish tags that
// legitimately appear on disk as either SHORT or LONG (ImageWidth,
// ImageLength, RowsPerStrip, TileWidth, TileLength, and the strip/tile
// offset and bytecount arrays, which additionally widen to LONG8 under
// BigTIFF) are registered once per permitted on-disk type; FindByTag's
// tie-break rule (first-registered wins as canonical, exact type match
// wins when present) then picks the right one for both reading an
// existing file and writing the narrowest type that fits.
var BuiltinTIFFFields = []Descriptor{
	{Tag: NewSubfileType, Name: "NewSubfileType", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitNewSubfileType, OkToChange: true},
	{Tag: SubfileType, Name: "SubfileType", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitSubfileType, OkToChange: true},

	{Tag: ImageWidth, Name: "ImageWidth", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitImageWidth, OkToChange: true},
	{Tag: ImageWidth, Name: "ImageWidth", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitImageWidth, OkToChange: true},
	{Tag: ImageLength, Name: "ImageLength", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitImageLength, OkToChange: true},
	{Tag: ImageLength, Name: "ImageLength", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitImageLength, OkToChange: true},

	{Tag: BitsPerSample, Name: "BitsPerSample", Type: SHORT, ReadCount: PerSample(), WriteCount: PerSample(), Bit: BitBitsPerSample, OkToChange: true},
	{Tag: Compression, Name: "Compression", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitCompression, OkToChange: true},
	{Tag: PhotometricInterpretation, Name: "PhotometricInterpretation", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitPhotometric, OkToChange: true},
	{Tag: Threshholding, Name: "Threshholding", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitThreshholding, OkToChange: true},
	{Tag: CellWidth, Name: "CellWidth", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitCellWidth, OkToChange: true},
	{Tag: CellLength, Name: "CellLength", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitCellLength, OkToChange: true},
	{Tag: FillOrder, Name: "FillOrder", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitFillOrder, OkToChange: true},

	{Tag: DocumentName, Name: "DocumentName", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: BitDocumentName, OkToChange: true},
	{Tag: ImageDescription, Name: "ImageDescription", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: BitImageDescription, OkToChange: true},
	{Tag: Make, Name: "Make", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: BitMake, OkToChange: true},
	{Tag: Model, Name: "Model", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: BitModel, OkToChange: true},

	{Tag: StripOffsets, Name: "StripOffsets", Type: LONG8, ReadCount: VariableLarge(), WriteCount: VariableLarge(), Bit: BitStripOffsets, OkToChange: true, ExplicitCount: true},
	{Tag: StripOffsets, Name: "StripOffsets", Type: LONG, ReadCount: VariableLarge(), WriteCount: VariableLarge(), Bit: BitStripOffsets, OkToChange: true, ExplicitCount: true},
	{Tag: StripOffsets, Name: "StripOffsets", Type: SHORT, ReadCount: VariableLarge(), WriteCount: VariableLarge(), Bit: BitStripOffsets, OkToChange: true, ExplicitCount: true},

	{Tag: Orientation, Name: "Orientation", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitOrientation, OkToChange: true},
	{Tag: SamplesPerPixel, Name: "SamplesPerPixel", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitSamplesPerPixel, OkToChange: true},

	{Tag: RowsPerStrip, Name: "RowsPerStrip", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitRowsPerStrip, OkToChange: true},
	{Tag: RowsPerStrip, Name: "RowsPerStrip", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitRowsPerStrip, OkToChange: true},

	{Tag: StripByteCounts, Name: "StripByteCounts", Type: LONG8, ReadCount: VariableLarge(), WriteCount: VariableLarge(), Bit: BitStripByteCounts, OkToChange: true, ExplicitCount: true},
	{Tag: StripByteCounts, Name: "StripByteCounts", Type: LONG, ReadCount: VariableLarge(), WriteCount: VariableLarge(), Bit: BitStripByteCounts, OkToChange: true, ExplicitCount: true},
	{Tag: StripByteCounts, Name: "StripByteCounts", Type: SHORT, ReadCount: VariableLarge(), WriteCount: VariableLarge(), Bit: BitStripByteCounts, OkToChange: true, ExplicitCount: true},

	{Tag: MinSampleValue, Name: "MinSampleValue", Type: SHORT, ReadCount: PerSample(), WriteCount: PerSample(), Bit: BitMinSampleValue, OkToChange: true},
	{Tag: MaxSampleValue, Name: "MaxSampleValue", Type: SHORT, ReadCount: PerSample(), WriteCount: PerSample(), Bit: BitMaxSampleValue, OkToChange: true},

	{Tag: XResolution, Name: "XResolution", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitXResolution, OkToChange: true},
	{Tag: YResolution, Name: "YResolution", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitYResolution, OkToChange: true},

	{Tag: PlanarConfiguration, Name: "PlanarConfiguration", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitPlanarConfig, OkToChange: true},
	{Tag: PageName, Name: "PageName", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: BitPageName, OkToChange: true},
	{Tag: XPosition, Name: "XPosition", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitXPosition, OkToChange: true},
	{Tag: YPosition, Name: "YPosition", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitYPosition, OkToChange: true},

	{Tag: FreeOffsets, Name: "FreeOffsets", Type: LONG, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: FreeByteCounts, Name: "FreeByteCounts", Type: LONG, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: GrayResponseUnit, Name: "GrayResponseUnit", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: GrayResponseCurve, Name: "GrayResponseCurve", Type: SHORT, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: T4Options, Name: "T4Options", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: T6Options, Name: "T6Options", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},

	{Tag: ResolutionUnit, Name: "ResolutionUnit", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitResolutionUnit, OkToChange: true},
	{Tag: PageNumber, Name: "PageNumber", Type: SHORT, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: BitPageNumber, OkToChange: true},
	{Tag: TransferFunction, Name: "TransferFunction", Type: SHORT, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},

	{Tag: Software, Name: "Software", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: BitSoftware, OkToChange: true},
	{Tag: DateTime, Name: "DateTime", Type: ASCII, ReadCount: Fixed(20), WriteCount: Fixed(20), Bit: BitDateTime, OkToChange: true},
	{Tag: Artist, Name: "Artist", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: BitArtist, OkToChange: true},
	{Tag: HostComputer, Name: "HostComputer", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: BitHostComputer, OkToChange: true},
	{Tag: Predictor, Name: "Predictor", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitPredictor, OkToChange: true},

	{Tag: WhitePoint, Name: "WhitePoint", Type: RATIONAL, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: BitWhitePoint, OkToChange: true},
	{Tag: PrimaryChromaticities, Name: "PrimaryChromaticities", Type: RATIONAL, ReadCount: Fixed(6), WriteCount: Fixed(6), Bit: BitPrimaryChromaticities, OkToChange: true},
	{Tag: ColorMap, Name: "ColorMap", Type: SHORT, ReadCount: Variable(), WriteCount: Variable(), Bit: BitColorMap, OkToChange: true, ExplicitCount: true},
	{Tag: HalftoneHints, Name: "HalftoneHints", Type: SHORT, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: CustomBit, OkToChange: true},

	{Tag: TileWidth, Name: "TileWidth", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitTileWidth, OkToChange: true},
	{Tag: TileWidth, Name: "TileWidth", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitTileWidth, OkToChange: true},
	{Tag: TileLength, Name: "TileLength", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitTileLength, OkToChange: true},
	{Tag: TileLength, Name: "TileLength", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitTileLength, OkToChange: true},

	{Tag: TileOffsets, Name: "TileOffsets", Type: LONG8, ReadCount: VariableLarge(), WriteCount: VariableLarge(), Bit: BitTileOffsets, OkToChange: true, ExplicitCount: true},
	{Tag: TileOffsets, Name: "TileOffsets", Type: LONG, ReadCount: VariableLarge(), WriteCount: VariableLarge(), Bit: BitTileOffsets, OkToChange: true, ExplicitCount: true},
	{Tag: TileOffsets, Name: "TileOffsets", Type: SHORT, ReadCount: VariableLarge(), WriteCount: VariableLarge(), Bit: BitTileOffsets, OkToChange: true, ExplicitCount: true},

	{Tag: TileByteCounts, Name: "TileByteCounts", Type: LONG8, ReadCount: VariableLarge(), WriteCount: VariableLarge(), Bit: BitTileByteCounts, OkToChange: true, ExplicitCount: true},
	{Tag: TileByteCounts, Name: "TileByteCounts", Type: LONG, ReadCount: VariableLarge(), WriteCount: VariableLarge(), Bit: BitTileByteCounts, OkToChange: true, ExplicitCount: true},
	{Tag: TileByteCounts, Name: "TileByteCounts", Type: SHORT, ReadCount: VariableLarge(), WriteCount: VariableLarge(), Bit: BitTileByteCounts, OkToChange: true, ExplicitCount: true},

	{Tag: BadFaxLines, Name: "BadFaxLines", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: CleanFaxData, Name: "CleanFaxData", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ConsecutiveBadFaxLines, Name: "ConsecutiveBadFaxLines", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},

	{Tag: SubIFDs, Name: "SubIFDs", Type: LONG8, ReadCount: Variable(), WriteCount: Variable(), Bit: BitSubIFDs, OkToChange: true, ExplicitCount: true},
	{Tag: SubIFDs, Name: "SubIFDs", Type: LONG, ReadCount: Variable(), WriteCount: Variable(), Bit: BitSubIFDs, OkToChange: true, ExplicitCount: true},
	{Tag: SubIFDs, Name: "SubIFDs", Type: IFD, ReadCount: Variable(), WriteCount: Variable(), Bit: BitSubIFDs, OkToChange: true, ExplicitCount: true},

	{Tag: InkSet, Name: "InkSet", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitInkSet, OkToChange: true},
	{Tag: InkNames, Name: "InkNames", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: NumberOfInks, Name: "NumberOfInks", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: DotRange, Name: "DotRange", Type: SHORT, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: TargetPrinter, Name: "TargetPrinter", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true},

	{Tag: ExtraSamples, Name: "ExtraSamples", Type: SHORT, ReadCount: Variable(), WriteCount: Variable(), Bit: BitExtraSamples, OkToChange: true, ExplicitCount: true},
	{Tag: SampleFormat, Name: "SampleFormat", Type: SHORT, ReadCount: PerSample(), WriteCount: PerSample(), Bit: BitSampleFormat, OkToChange: true},
	{Tag: SMinSampleValue, Name: "SMinSampleValue", Type: DOUBLE, ReadCount: PerSample(), WriteCount: PerSample(), Bit: BitSMinSampleValue, OkToChange: true},
	{Tag: SMaxSampleValue, Name: "SMaxSampleValue", Type: DOUBLE, ReadCount: PerSample(), WriteCount: PerSample(), Bit: BitSMaxSampleValue, OkToChange: true},
	{Tag: TransferRange, Name: "TransferRange", Type: SHORT, ReadCount: Fixed(6), WriteCount: Fixed(6), Bit: CustomBit, OkToChange: true},

	{Tag: ClipPath, Name: "ClipPath", Type: UNDEFINED, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: XClipPathUnits, Name: "XClipPathUnits", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: YClipPathUnits, Name: "YClipPathUnits", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: Indexed, Name: "Indexed", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},

	{Tag: JPEGTables, Name: "JPEGTables", Type: UNDEFINED, ReadCount: Variable(), WriteCount: Variable(), Bit: BitJPEGTables, OkToChange: true, ExplicitCount: true},
	{Tag: OPIProxy, Name: "OPIProxy", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},

	{Tag: JPEGProc, Name: "JPEGProc", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: JPEGInterchangeFormat, Name: "JPEGInterchangeFormat", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: JPEGInterchangeFormatLength, Name: "JPEGInterchangeFormatLength", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: JPEGRestartInterval, Name: "JPEGRestartInterval", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: JPEGLosslessPredictors, Name: "JPEGLosslessPredictors", Type: SHORT, ReadCount: PerSample(), WriteCount: PerSample(), Bit: CustomBit, OkToChange: true},
	{Tag: JPEGPointTransforms, Name: "JPEGPointTransforms", Type: SHORT, ReadCount: PerSample(), WriteCount: PerSample(), Bit: CustomBit, OkToChange: true},
	{Tag: JPEGQTables, Name: "JPEGQTables", Type: LONG, ReadCount: PerSample(), WriteCount: PerSample(), Bit: CustomBit, OkToChange: true},
	{Tag: JPEGDCTables, Name: "JPEGDCTables", Type: LONG, ReadCount: PerSample(), WriteCount: PerSample(), Bit: CustomBit, OkToChange: true},
	{Tag: JPEGACTables, Name: "JPEGACTables", Type: LONG, ReadCount: PerSample(), WriteCount: PerSample(), Bit: CustomBit, OkToChange: true},

	{Tag: YCbCrCoefficients, Name: "YCbCrCoefficients", Type: RATIONAL, ReadCount: Fixed(3), WriteCount: Fixed(3), Bit: BitYCbCrCoefficients, OkToChange: true},
	{Tag: YCbCrSubSampling, Name: "YCbCrSubSampling", Type: SHORT, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: BitYCbCrSubSampling, OkToChange: true},
	{Tag: YCbCrPositioning, Name: "YCbCrPositioning", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitYCbCrPositioning, OkToChange: true},
	{Tag: ReferenceBlackWhite, Name: "ReferenceBlackWhite", Type: RATIONAL, ReadCount: Variable(), WriteCount: Variable(), Bit: BitReferenceBlackWhite, OkToChange: true},

	{Tag: XMP, Name: "XMP", Type: BYTE, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: ImageID, Name: "ImageID", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true},
	{Tag: Copyright, Name: "Copyright", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: BitCopyright, OkToChange: true},

	{Tag: ModelPixelScaleTag, Name: "ModelPixelScaleTag", Type: DOUBLE, ReadCount: Fixed(3), WriteCount: Fixed(3), Bit: CustomBit, OkToChange: true},
	{Tag: IPTC, Name: "IPTC", Type: LONG, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: ModelTiepointTag, Name: "ModelTiepointTag", Type: DOUBLE, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: ModelTransformationTag, Name: "ModelTransformationTag", Type: DOUBLE, ReadCount: Fixed(16), WriteCount: Fixed(16), Bit: CustomBit, OkToChange: true},
	{Tag: PSIR, Name: "PSIR", Type: BYTE, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},

	{Tag: ExifIFD, Name: "ExifIFD", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitExifIFD, OkToChange: true},
	{Tag: ExifIFD, Name: "ExifIFD", Type: IFD, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitExifIFD, OkToChange: true},
	{Tag: ExifIFD, Name: "ExifIFD", Type: LONG8, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitExifIFD, OkToChange: true},

	{Tag: ICCProfile, Name: "ICCProfile", Type: UNDEFINED, ReadCount: Variable(), WriteCount: Variable(), Bit: BitICCProfile, OkToChange: true, ExplicitCount: true},

	{Tag: GeoKeyDirectoryTag, Name: "GeoKeyDirectoryTag", Type: SHORT, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: GeoDoubleParamsTag, Name: "GeoDoubleParamsTag", Type: DOUBLE, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: GeoAsciiParamsTag, Name: "GeoAsciiParamsTag", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},

	{Tag: GPSIFD, Name: "GPSIFD", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitGPSIFD, OkToChange: true},
	{Tag: GPSIFD, Name: "GPSIFD", Type: IFD, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitGPSIFD, OkToChange: true},
	{Tag: GPSIFD, Name: "GPSIFD", Type: LONG8, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: BitGPSIFD, OkToChange: true},

	{Tag: ImageSourceData, Name: "ImageSourceData", Type: UNDEFINED, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: PrintIM, Name: "PrintIM", Type: UNDEFINED, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
}
