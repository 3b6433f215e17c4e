package tiffcore

import "encoding/binary"

// rawEntry is a directory entry after parsing away the classic/BigTIFF
// on-disk layout difference: whatever its flavor, Count and ValueOrOffset
// are normalized to the same shape the reader then interprets uniformly.
type rawEntry struct {
	Tag   Tag
	Type  Type
	Count uint64
	// Inline holds the raw value-or-offset area of the entry, left-padded
	// to flavor's OffsetSize. Whether it's an inline value or an offset
	// elsewhere in the file depends on whether Count*Type.Size() fits in
	// that many bytes — the reader, not this file, makes that call.
	Inline []byte
}

// parseRawEntries slices buf (the raw bytes of one directory's entry
// array, count*EntrySize long) into count entries.
func parseRawEntries(buf []byte, count int, order binary.ByteOrder, flavor Flavor) []rawEntry {
	entries := make([]rawEntry, 0, count)
	entrySize := flavor.EntrySize()
	for i := 0; i < count; i++ {
		e := buf[i*entrySize : (i+1)*entrySize]
		tag := Tag(order.Uint16(e[0:2]))
		typ := Type(order.Uint16(e[2:4]))
		var cnt uint64
		var inline []byte
		if flavor == BigTIFF {
			cnt = order.Uint64(e[4:12])
			inline = e[12:20]
		} else {
			cnt = uint64(order.Uint32(e[4:8]))
			inline = e[8:12]
		}
		entries = append(entries, rawEntry{Tag: tag, Type: typ, Count: cnt, Inline: inline})
	}
	return entries
}

// putRawEntry serializes e into an EntrySize-byte buffer for flavor/order.
func putRawEntry(e rawEntry, order binary.ByteOrder, flavor Flavor) []byte {
	buf := make([]byte, flavor.EntrySize())
	order.PutUint16(buf[0:2], uint16(e.Tag))
	order.PutUint16(buf[2:4], uint16(e.Type))
	if flavor == BigTIFF {
		order.PutUint64(buf[4:12], e.Count)
		copy(buf[12:20], e.Inline)
	} else {
		order.PutUint32(buf[4:8], uint32(e.Count))
		copy(buf[8:12], e.Inline)
	}
	return buf
}

// fitsInline reports whether count values of typ fit in flavor's inline
// value-or-offset area; if not, Inline instead holds an offset to the
// value's actual storage elsewhere in the file.
func fitsInline(count uint64, typ Type, flavor Flavor) bool {
	return count*typ.Size() <= uint64(flavor.OffsetSize())
}

// inlineOffset decodes an entry's Inline field as the absolute file offset
// of an out-of-line value, per flavor/order. Callers use it only for
// entries whose value does not fit inline.
func inlineOffset(e rawEntry, order binary.ByteOrder, flavor Flavor) uint64 {
	if flavor == BigTIFF {
		return order.Uint64(e.Inline)
	}
	return uint64(order.Uint32(e.Inline[:4]))
}
