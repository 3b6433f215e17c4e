package tiffcore

import (
	"encoding/binary"

	"github.com/vadz/gotiffcore/ioabi"
	"github.com/vadz/gotiffcore/tifferr"
)

// Chain walks the singly-linked list of IFD offsets that makes up a TIFF
// directory chain, tracking visited offsets so a corrupt file whose
// next-IFD pointer cycles back on itself is caught as a Loop error instead
// of iterating forever.
type Chain struct {
	visited map[uint64]bool
	// Offsets accumulates every IFD offset visited so far, in chain order.
	Offsets []uint64
}

// NewChain returns an empty chain walker.
func NewChain() *Chain {
	return &Chain{visited: make(map[uint64]bool)}
}

// Visit records offset as visited, returning a Loop error if it was
// already seen. offset == 0 is the conventional "no more directories"
// terminator and is never recorded as a loop.
func (c *Chain) Visit(offset uint64) error {
	if offset == 0 {
		return nil
	}
	if c.visited[offset] {
		return errOp("Chain.Visit", tifferr.Loop)
	}
	c.visited[offset] = true
	c.Offsets = append(c.Offsets, offset)
	return nil
}

// Len reports how many distinct IFD offsets have been visited.
func (c *Chain) Len() int {
	return len(c.Offsets)
}

// AppendToChain links newDiroff onto the end of the file's top-level
// directory chain: if the header's first-IFD offset is still zero the
// header itself is patched, otherwise the chain is walked on disk — seek
// to each IFD, read its entry count, skip the entries, read the next-IFD
// pointer — until a zero next-pointer is found and overwritten. It
// returns the file position of the pointer slot that was patched, so a
// later relocation of the same directory can re-patch it without another
// walk.
func AppendToChain(dev ioabi.Device, hdr *Header, newDiroff uint64) (uint64, error) {
	const op = "AppendToChain"
	order, flavor := hdr.Order, hdr.Flavor

	if hdr.FirstIFDOff == 0 {
		if err := PatchFirstIFDOffset(dev, order, flavor, newDiroff); err != nil {
			return 0, err
		}
		hdr.FirstIFDOff = newDiroff
		if flavor == BigTIFF {
			return 8, nil
		}
		return 4, nil
	}

	countFieldSize := uint64(2)
	if flavor == BigTIFF {
		countFieldSize = 8
	}
	seen := make(map[uint64]bool)
	cur := hdr.FirstIFDOff
	for {
		if seen[cur] {
			return 0, errOp(op, tifferr.Loop)
		}
		seen[cur] = true

		countBuf := make([]byte, countFieldSize)
		if _, err := ioabi.ReadAt(dev, countBuf, int64(cur)); err != nil {
			return 0, tifferr.Wrap(op, tifferr.Io, err)
		}
		var n uint64
		if flavor == BigTIFF {
			n = order.Uint64(countBuf)
		} else {
			n = uint64(order.Uint16(countBuf))
		}
		if err := CheckSizeSanity(op, n, maxDirectoryEntries); err != nil {
			return 0, err
		}

		ptrPos := cur + countFieldSize + n*uint64(flavor.EntrySize())
		nextBuf := make([]byte, flavor.OffsetSize())
		if _, err := ioabi.ReadAt(dev, nextBuf, int64(ptrPos)); err != nil {
			return 0, tifferr.Wrap(op, tifferr.Io, err)
		}
		var next uint64
		if flavor == BigTIFF {
			next = order.Uint64(nextBuf)
		} else {
			next = uint64(order.Uint32(nextBuf))
		}
		if next == 0 {
			if err := putOffset(dev, order, flavor, ptrPos, newDiroff); err != nil {
				return 0, err
			}
			return ptrPos, nil
		}
		cur = next
	}
}

// putOffset writes a flavor-width offset value at position pos.
func putOffset(dev ioabi.Device, order binary.ByteOrder, flavor Flavor, pos, value uint64) error {
	const op = "putOffset"
	if err := CheckOffset(op, value, flavor); err != nil {
		return err
	}
	buf := make([]byte, flavor.OffsetSize())
	if flavor == BigTIFF {
		order.PutUint64(buf, value)
	} else {
		order.PutUint32(buf, uint32(value))
	}
	if _, err := ioabi.WriteAt(dev, buf, int64(pos)); err != nil {
		return tifferr.Wrap(op, tifferr.Io, err)
	}
	return nil
}
