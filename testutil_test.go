package tiffcore

import (
	"encoding/binary"
)

// rawTag is one hand-crafted directory entry for the tests that need to
// build malformed or precisely-shaped files the writer would refuse to
// produce.
type rawTag struct {
	tag   Tag
	typ   Type
	count uint32
	// value is the payload bytes, already in the file's byte order. Four
	// bytes or fewer go inline; anything longer is placed out-of-line
	// after the IFD.
	value []byte
}

// buildClassic lays out a classic file: header, one IFD at offset 8 with
// the given entries (in the order given — tests exercising the
// out-of-order warning pass them unsorted), out-of-line payloads after
// the IFD, then trailing bytes (pixel data for the repair tests). next is
// the IFD's next-directory offset.
func buildClassic(order binary.ByteOrder, tags []rawTag, next uint32, trailing []byte) []byte {
	const diroff = 8
	n := len(tags)
	ifdSize := 2 + 12*n + 4
	payloadOff := uint32(diroff + ifdSize)

	var payloads []byte
	inline := make([][4]byte, n)
	for i, t := range tags {
		if len(t.value) <= 4 {
			copy(inline[i][:], t.value)
			continue
		}
		if (payloadOff+uint32(len(payloads)))%2 != 0 {
			payloads = append(payloads, 0)
		}
		order.PutUint32(inline[i][:], payloadOff+uint32(len(payloads)))
		payloads = append(payloads, t.value...)
	}

	buf := make([]byte, diroff+ifdSize+len(payloads)+len(trailing))
	if order == binary.LittleEndian {
		binary.BigEndian.PutUint16(buf[0:2], byteOrderLittle)
	} else {
		binary.BigEndian.PutUint16(buf[0:2], byteOrderBig)
	}
	order.PutUint16(buf[2:4], magicClassic)
	order.PutUint32(buf[4:8], diroff)

	order.PutUint16(buf[diroff:], uint16(n))
	for i, t := range tags {
		e := buf[diroff+2+12*i:]
		order.PutUint16(e[0:2], uint16(t.tag))
		order.PutUint16(e[2:4], uint16(t.typ))
		order.PutUint32(e[4:8], t.count)
		copy(e[8:12], inline[i][:])
	}
	order.PutUint32(buf[diroff+2+12*n:], next)
	copy(buf[diroff+ifdSize:], payloads)
	copy(buf[diroff+ifdSize+len(payloads):], trailing)
	return buf
}

func shortVal(order binary.ByteOrder, v uint16) []byte {
	b := make([]byte, 2)
	order.PutUint16(b, v)
	return b
}

func longVal(order binary.ByteOrder, v uint32) []byte {
	b := make([]byte, 4)
	order.PutUint32(b, v)
	return b
}

func shortsVal(order binary.ByteOrder, vs ...uint16) []byte {
	b := make([]byte, 2*len(vs))
	for i, v := range vs {
		order.PutUint16(b[2*i:], v)
	}
	return b
}
