package tiffcore

import (
	"bytes"
	"encoding/binary"

	"github.com/vadz/gotiffcore/ioabi"
)

// Maker-note identification. The EXIF MakerNote tag is an opaque
// UNDEFINED blob, but most vendors store another IFD inside it, each with
// its own label, header, and addressing quirks. The directory core
// identifies the common layouts so a caller holding the blob can read the
// embedded IFD through the ordinary custom-directory path; it makes no
// attempt to interpret the vendor tags themselves.

// MakerNoteFormat describes how a vendor embeds an IFD in the MakerNote
// payload.
type MakerNoteFormat struct {
	// Vendor is the detected vendor family, e.g. "Nikon2".
	Vendor string

	// IFDStart is the byte offset of the embedded IFD's entry count,
	// relative to the start of the payload.
	IFDStart uint64

	// Order is the byte order of the embedded IFD, nil when it follows
	// the enclosing file's order.
	Order binary.ByteOrder

	// SelfContained marks notes (Nikon2 style) whose offsets are
	// relative to the note's own embedded header rather than to the
	// enclosing file.
	SelfContained bool
}

var (
	nikon2Label    = []byte("Nikon\x00")
	fujifilmLabel  = []byte("FUJIFILM")
	olympus1Label  = []byte("OLYMP\x00")
	panasonicLabel = []byte("Panasonic\x00\x00\x00")
	sonyLabel      = []byte("SONY DSC \x00\x00\x00")
)

// IdentifyMakerNote inspects a MakerNote payload (and the image's Make
// tag, for vendors whose notes carry no label of their own) and reports
// the embedded IFD layout. ok is false when no known layout matches —
// the payload stays an opaque blob in that case.
func IdentifyMakerNote(payload []byte, imageMake string) (MakerNoteFormat, bool) {
	switch {
	case bytes.HasPrefix(payload, nikon2Label):
		// "Nikon\0" then a version, then a complete embedded TIFF
		// header at +10; all offsets inside are relative to that header.
		if len(payload) < 18 {
			break
		}
		var order binary.ByteOrder
		switch binary.BigEndian.Uint16(payload[10:12]) {
		case byteOrderLittle:
			order = binary.LittleEndian
		case byteOrderBig:
			order = binary.BigEndian
		default:
			return MakerNoteFormat{}, false
		}
		first := uint64(order.Uint32(payload[14:18]))
		return MakerNoteFormat{Vendor: "Nikon2", IFDStart: 10 + first, Order: order, SelfContained: true}, true
	case bytes.HasPrefix(payload, fujifilmLabel):
		// "FUJIFILM" then a little-endian offset to the IFD, relative
		// to the note start.
		if len(payload) < 12 {
			break
		}
		off := uint64(binary.LittleEndian.Uint32(payload[8:12]))
		return MakerNoteFormat{Vendor: "Fujifilm1", IFDStart: off, Order: binary.LittleEndian, SelfContained: true}, true
	case bytes.HasPrefix(payload, olympus1Label):
		return MakerNoteFormat{Vendor: "Olympus1", IFDStart: 8}, true
	case bytes.HasPrefix(payload, panasonicLabel):
		return MakerNoteFormat{Vendor: "Panasonic1", IFDStart: 12}, true
	case bytes.HasPrefix(payload, sonyLabel):
		return MakerNoteFormat{Vendor: "Sony1", IFDStart: 12}, true
	}
	// Canon notes carry no label at all: a bare IFD in the enclosing
	// file's byte order, identified by the Make tag alone.
	if imageMake == "Canon" {
		return MakerNoteFormat{Vendor: "Canon1", IFDStart: 0}, true
	}
	return MakerNoteFormat{}, false
}

// ReadMakerNote identifies the maker note in payload (the EXIF MakerNote
// tag's bytes) and reads its embedded IFD. noteOffset is the MakerNote
// payload's absolute position in the file (needed for the vendors whose
// embedded offsets are file-relative). An unrecognized vendor layout
// returns all-nil: the payload stays an opaque blob.
// Maker-note IFDs are always classic-layout (12-byte entries) regardless
// of the enclosing file's flavor.
func ReadMakerNote(dev ioabi.Device, fileOrder binary.ByteOrder, payload []byte, noteOffset uint64, imageMake string) (*Directory, *MakerNoteFormat, error) {
	format, ok := IdentifyMakerNote(payload, imageMake)
	if !ok {
		return nil, nil, nil
	}
	order := format.Order
	if order == nil {
		order = fileOrder
	}
	reg := NewRegistry()
	var noteDev ioabi.Device
	var ifdOff uint64
	if format.SelfContained {
		// Offsets inside the note are relative to its own header; read
		// it as a little file of its own.
		base := payload
		start := format.IFDStart
		if format.Vendor == "Nikon2" {
			// The embedded header sits at +10; offsets are relative to
			// it, so the "file" starts there.
			base = payload[10:]
			start = format.IFDStart - 10
		}
		noteDev = ioabi.NewMemoryDevice(base)
		ifdOff = start
	} else {
		noteDev = dev
		ifdOff = noteOffset + format.IFDStart
	}
	dir, err := ReadCustomDirectory(noteDev, order, Classic, reg, ifdOff, nil)
	if err != nil {
		return nil, &format, err
	}
	return dir, &format, nil
}
