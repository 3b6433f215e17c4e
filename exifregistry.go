package tiffcore

// Exif tag ids (EXIF 2.3 §4.6.5), kept in their own namespace rather than
// merged into the main Tag constant block since they only ever appear
// inside the IFD pointed to by ExifIFD, never in a main image directory.
const (
	ExifExposureTime             Tag = 0x829A
	ExifFNumber                  Tag = 0x829D
	ExifExposureProgram          Tag = 0x8822
	ExifISOSpeedRatings          Tag = 0x8827
	ExifExifVersion              Tag = 0x9000
	ExifDateTimeOriginal         Tag = 0x9003
	ExifDateTimeDigitized        Tag = 0x9004
	ExifComponentsConfiguration  Tag = 0x9101
	ExifCompressedBitsPerPixel   Tag = 0x9102
	ExifShutterSpeedValue        Tag = 0x9201
	ExifApertureValue            Tag = 0x9202
	ExifBrightnessValue          Tag = 0x9203
	ExifExposureBiasValue        Tag = 0x9204
	ExifMaxApertureValue         Tag = 0x9205
	ExifSubjectDistance          Tag = 0x9206
	ExifMeteringMode             Tag = 0x9207
	ExifLightSource              Tag = 0x9208
	ExifFlash                    Tag = 0x9209
	ExifFocalLength              Tag = 0x920A
	ExifMakerNote                Tag = 0x927C
	ExifUserComment              Tag = 0x9286
	ExifSubsecTime               Tag = 0x9290
	ExifSubsecTimeOriginal       Tag = 0x9291
	ExifSubsecTimeDigitized      Tag = 0x9292
	ExifFlashpixVersion          Tag = 0xA000
	ExifColorSpace               Tag = 0xA001
	ExifPixelXDimension          Tag = 0xA002
	ExifPixelYDimension          Tag = 0xA003
	ExifInteroperabilityIFD      Tag = 0xA005
	ExifFocalPlaneXResolution    Tag = 0xA20E
	ExifFocalPlaneYResolution    Tag = 0xA20F
	ExifFocalPlaneResolutionUnit Tag = 0xA210
	ExifExposureIndex            Tag = 0xA215
	ExifSensingMethod            Tag = 0xA217
	ExifFileSource                Tag = 0xA300
	ExifSceneType                 Tag = 0xA301
	ExifCustomRendered            Tag = 0xA401
	ExifExposureMode              Tag = 0xA402
	ExifWhiteBalance              Tag = 0xA403
	ExifDigitalZoomRatio          Tag = 0xA404
	ExifFocalLengthIn35mmFilm     Tag = 0xA405
	ExifSceneCaptureType          Tag = 0xA406
	ExifLensModel                 Tag = 0xA434
)

// BuiltinExifFields is the field table for a registry passed to
// ReadCustomDirectory when reading the directory at a tag's ExifIFD
// offset, following the EXIF 2.3 tag table.
var BuiltinExifFields = []Descriptor{
	{Tag: ExifExposureTime, Name: "ExposureTime", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifFNumber, Name: "FNumber", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifExposureProgram, Name: "ExposureProgram", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifISOSpeedRatings, Name: "ISOSpeedRatings", Type: SHORT, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: ExifExifVersion, Name: "ExifVersion", Type: UNDEFINED, ReadCount: Fixed(4), WriteCount: Fixed(4), Bit: CustomBit, OkToChange: true},
	{Tag: ExifDateTimeOriginal, Name: "DateTimeOriginal", Type: ASCII, ReadCount: Fixed(20), WriteCount: Fixed(20), Bit: CustomBit, OkToChange: true},
	{Tag: ExifDateTimeDigitized, Name: "DateTimeDigitized", Type: ASCII, ReadCount: Fixed(20), WriteCount: Fixed(20), Bit: CustomBit, OkToChange: true},
	{Tag: ExifComponentsConfiguration, Name: "ComponentsConfiguration", Type: UNDEFINED, ReadCount: Fixed(4), WriteCount: Fixed(4), Bit: CustomBit, OkToChange: true},
	{Tag: ExifCompressedBitsPerPixel, Name: "CompressedBitsPerPixel", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifShutterSpeedValue, Name: "ShutterSpeedValue", Type: SRATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifApertureValue, Name: "ApertureValue", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifBrightnessValue, Name: "BrightnessValue", Type: SRATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifExposureBiasValue, Name: "ExposureBiasValue", Type: SRATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifMaxApertureValue, Name: "MaxApertureValue", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifSubjectDistance, Name: "SubjectDistance", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifMeteringMode, Name: "MeteringMode", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifLightSource, Name: "LightSource", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifFlash, Name: "Flash", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifFocalLength, Name: "FocalLength", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifMakerNote, Name: "MakerNote", Type: UNDEFINED, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: ExifUserComment, Name: "UserComment", Type: UNDEFINED, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true, ExplicitCount: true},
	{Tag: ExifSubsecTime, Name: "SubSecTime", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true},
	{Tag: ExifSubsecTimeOriginal, Name: "SubSecTimeOriginal", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true},
	{Tag: ExifSubsecTimeDigitized, Name: "SubSecTimeDigitized", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true},
	{Tag: ExifFlashpixVersion, Name: "FlashpixVersion", Type: UNDEFINED, ReadCount: Fixed(4), WriteCount: Fixed(4), Bit: CustomBit, OkToChange: true},
	{Tag: ExifColorSpace, Name: "ColorSpace", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifPixelXDimension, Name: "PixelXDimension", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifPixelXDimension, Name: "PixelXDimension", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifPixelYDimension, Name: "PixelYDimension", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifPixelYDimension, Name: "PixelYDimension", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifInteroperabilityIFD, Name: "InteroperabilityIFD", Type: LONG, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifFocalPlaneXResolution, Name: "FocalPlaneXResolution", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifFocalPlaneYResolution, Name: "FocalPlaneYResolution", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifFocalPlaneResolutionUnit, Name: "FocalPlaneResolutionUnit", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifExposureIndex, Name: "ExposureIndex", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifSensingMethod, Name: "SensingMethod", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifFileSource, Name: "FileSource", Type: UNDEFINED, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifSceneType, Name: "SceneType", Type: UNDEFINED, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifCustomRendered, Name: "CustomRendered", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifExposureMode, Name: "ExposureMode", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifWhiteBalance, Name: "WhiteBalance", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifDigitalZoomRatio, Name: "DigitalZoomRatio", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifFocalLengthIn35mmFilm, Name: "FocalLengthIn35mmFilm", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifSceneCaptureType, Name: "SceneCaptureType", Type: SHORT, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: ExifLensModel, Name: "LensModel", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true},
}

// NewExifRegistry returns a registry populated with BuiltinExifFields,
// suitable for passing to ReadCustomDirectory at a directory's ExifIFD
// offset.
func NewExifRegistry() *Registry {
	r := NewRegistry()
	r.Register(BuiltinExifFields)
	return r
}
