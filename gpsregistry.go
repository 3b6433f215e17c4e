package tiffcore

// GPS tag ids (EXIF 2.3 §4.6.6), only ever present inside the IFD pointed
// to by GPSIFD.
const (
	GPSVersionID        Tag = 0x0000
	GPSLatitudeRef      Tag = 0x0001
	GPSLatitude         Tag = 0x0002
	GPSLongitudeRef     Tag = 0x0003
	GPSLongitude        Tag = 0x0004
	GPSAltitudeRef      Tag = 0x0005
	GPSAltitude         Tag = 0x0006
	GPSTimeStamp        Tag = 0x0007
	GPSSatellites       Tag = 0x0008
	GPSStatus           Tag = 0x0009
	GPSMeasureMode      Tag = 0x000A
	GPSDOP              Tag = 0x000B
	GPSSpeedRef         Tag = 0x000C
	GPSSpeed            Tag = 0x000D
	GPSTrackRef         Tag = 0x000E
	GPSTrack            Tag = 0x000F
	GPSImgDirectionRef  Tag = 0x0010
	GPSImgDirection     Tag = 0x0011
	GPSMapDatum         Tag = 0x0012
	GPSDestLatitudeRef  Tag = 0x0013
	GPSDestLatitude     Tag = 0x0014
	GPSDestLongitudeRef Tag = 0x0015
	GPSDestLongitude    Tag = 0x0016
	GPSDateStamp        Tag = 0x001D
)

// BuiltinGPSFields is the field table for a registry passed to
// ReadCustomDirectory when reading the directory at a tag's GPSIFD
// offset.
var BuiltinGPSFields = []Descriptor{
	{Tag: GPSVersionID, Name: "GPSVersionID", Type: BYTE, ReadCount: Fixed(4), WriteCount: Fixed(4), Bit: CustomBit, OkToChange: true},
	{Tag: GPSLatitudeRef, Name: "GPSLatitudeRef", Type: ASCII, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: CustomBit, OkToChange: true},
	{Tag: GPSLatitude, Name: "GPSLatitude", Type: RATIONAL, ReadCount: Fixed(3), WriteCount: Fixed(3), Bit: CustomBit, OkToChange: true},
	{Tag: GPSLongitudeRef, Name: "GPSLongitudeRef", Type: ASCII, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: CustomBit, OkToChange: true},
	{Tag: GPSLongitude, Name: "GPSLongitude", Type: RATIONAL, ReadCount: Fixed(3), WriteCount: Fixed(3), Bit: CustomBit, OkToChange: true},
	{Tag: GPSAltitudeRef, Name: "GPSAltitudeRef", Type: BYTE, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: GPSAltitude, Name: "GPSAltitude", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: GPSTimeStamp, Name: "GPSTimeStamp", Type: RATIONAL, ReadCount: Fixed(3), WriteCount: Fixed(3), Bit: CustomBit, OkToChange: true},
	{Tag: GPSSatellites, Name: "GPSSatellites", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true},
	{Tag: GPSStatus, Name: "GPSStatus", Type: ASCII, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: CustomBit, OkToChange: true},
	{Tag: GPSMeasureMode, Name: "GPSMeasureMode", Type: ASCII, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: CustomBit, OkToChange: true},
	{Tag: GPSDOP, Name: "GPSDOP", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: GPSSpeedRef, Name: "GPSSpeedRef", Type: ASCII, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: CustomBit, OkToChange: true},
	{Tag: GPSSpeed, Name: "GPSSpeed", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: GPSTrackRef, Name: "GPSTrackRef", Type: ASCII, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: CustomBit, OkToChange: true},
	{Tag: GPSTrack, Name: "GPSTrack", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: GPSImgDirectionRef, Name: "GPSImgDirectionRef", Type: ASCII, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: CustomBit, OkToChange: true},
	{Tag: GPSImgDirection, Name: "GPSImgDirection", Type: RATIONAL, ReadCount: Fixed(1), WriteCount: Fixed(1), Bit: CustomBit, OkToChange: true},
	{Tag: GPSMapDatum, Name: "GPSMapDatum", Type: ASCII, ReadCount: Variable(), WriteCount: Variable(), Bit: CustomBit, OkToChange: true},
	{Tag: GPSDestLatitudeRef, Name: "GPSDestLatitudeRef", Type: ASCII, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: CustomBit, OkToChange: true},
	{Tag: GPSDestLatitude, Name: "GPSDestLatitude", Type: RATIONAL, ReadCount: Fixed(3), WriteCount: Fixed(3), Bit: CustomBit, OkToChange: true},
	{Tag: GPSDestLongitudeRef, Name: "GPSDestLongitudeRef", Type: ASCII, ReadCount: Fixed(2), WriteCount: Fixed(2), Bit: CustomBit, OkToChange: true},
	{Tag: GPSDestLongitude, Name: "GPSDestLongitude", Type: RATIONAL, ReadCount: Fixed(3), WriteCount: Fixed(3), Bit: CustomBit, OkToChange: true},
	{Tag: GPSDateStamp, Name: "GPSDateStamp", Type: ASCII, ReadCount: Fixed(11), WriteCount: Fixed(11), Bit: CustomBit, OkToChange: true},
}

// NewGPSRegistry returns a registry populated with BuiltinGPSFields,
// suitable for passing to ReadCustomDirectory at a directory's GPSIFD
// offset.
func NewGPSRegistry() *Registry {
	r := NewRegistry()
	r.Register(BuiltinGPSFields)
	return r
}
