package tiffcore

import (
	"encoding/binary"

	"github.com/vadz/gotiffcore/ioabi"
	"github.com/vadz/gotiffcore/tifferr"
)

const (
	byteOrderLittle = 0x4949 // "II"
	byteOrderBig    = 0x4D4D // "MM"

	magicClassic = 42
	magicBigTIFF = 43
)

// Header is the parsed 8-byte classic or 16-byte BigTIFF header.
type Header struct {
	Order       binary.ByteOrder
	Flavor      Flavor
	FirstIFDOff uint64
}

// ReadHeader reads and validates the header at the start of dev, detecting
// byte order, classic-vs-BigTIFF, and (for BigTIFF) the fixed
// offset-size/constant fields. It does not follow FirstIFDOff.
func ReadHeader(dev ioabi.Device) (*Header, error) {
	const op = "ReadHeader"
	buf := make([]byte, 16)
	n, err := ioabi.ReadAt(dev, buf[:8], 0)
	if err != nil || n != 8 {
		return nil, tifferr.Wrap(op, tifferr.Io, err)
	}

	var order binary.ByteOrder
	switch binary.BigEndian.Uint16(buf[0:2]) {
	case byteOrderLittle:
		order = binary.LittleEndian
	case byteOrderBig:
		order = binary.BigEndian
	default:
		return nil, errOp(op, tifferr.Type)
	}

	magic := order.Uint16(buf[2:4])
	switch magic {
	case magicClassic:
		h := &Header{Order: order, Flavor: Classic, FirstIFDOff: uint64(order.Uint32(buf[4:8]))}
		return h, nil
	case magicBigTIFF:
		n, err = ioabi.ReadAt(dev, buf[8:16], 8)
		if err != nil || n != 8 {
			return nil, tifferr.Wrap(op, tifferr.Io, err)
		}
		offsetSize := order.Uint16(buf[4:6])
		constant := order.Uint16(buf[6:8])
		if offsetSize != 8 || constant != 0 {
			return nil, errOp(op, tifferr.Type)
		}
		h := &Header{Order: order, Flavor: BigTIFF, FirstIFDOff: order.Uint64(buf[8:16])}
		return h, nil
	default:
		return nil, errOp(op, tifferr.Type)
	}
}

// PutHeader writes a fresh header for flavor/order to dev, with
// firstIFDOff left as a placeholder (0) to be patched in once the first
// directory's write offset is known.
func PutHeader(dev ioabi.Device, order binary.ByteOrder, flavor Flavor) error {
	const op = "PutHeader"
	buf := make([]byte, flavor.HeaderSize())
	if order == binary.LittleEndian {
		binary.BigEndian.PutUint16(buf[0:2], byteOrderLittle)
	} else {
		binary.BigEndian.PutUint16(buf[0:2], byteOrderBig)
	}
	switch flavor {
	case Classic:
		order.PutUint16(buf[2:4], magicClassic)
		order.PutUint32(buf[4:8], 0)
	case BigTIFF:
		order.PutUint16(buf[2:4], magicBigTIFF)
		order.PutUint16(buf[4:6], 8)
		order.PutUint16(buf[6:8], 0)
		order.PutUint64(buf[8:16], 0)
	}
	if _, err := ioabi.WriteAt(dev, buf, 0); err != nil {
		return tifferr.Wrap(op, tifferr.Io, err)
	}
	return nil
}

// PatchFirstIFDOffset overwrites the header's first-IFD offset field once
// it is known, used by the writer after it has laid out the first
// directory.
func PatchFirstIFDOffset(dev ioabi.Device, order binary.ByteOrder, flavor Flavor, offset uint64) error {
	const op = "PatchFirstIFDOffset"
	if err := CheckOffset(op, offset, flavor); err != nil {
		return err
	}
	if flavor == BigTIFF {
		buf := make([]byte, 8)
		order.PutUint64(buf, offset)
		if _, err := ioabi.WriteAt(dev, buf, 8); err != nil {
			return tifferr.Wrap(op, tifferr.Io, err)
		}
		return nil
	}
	buf := make([]byte, 4)
	order.PutUint32(buf, uint32(offset))
	if _, err := ioabi.WriteAt(dev, buf, 4); err != nil {
		return tifferr.Wrap(op, tifferr.Io, err)
	}
	return nil
}
