package tiffcore

import (
	"encoding/binary"

	"github.com/vadz/gotiffcore/ioabi"
)

// ReadCustomDirectory reads a generic, non-image IFD — EXIF, GPS,
// Interoperability, or an application-defined custom tree — using reg's
// schema instead of the default TIFF tag table, and without the repair
// phase or any of the main-IFD structural checks: a custom directory has
// no ImageWidth, no StripOffsets, none of the tags that make a directory
// "structurally" a displayable image, so none of those checks apply.
// chain may be nil to skip loop detection for a caller reading a single
// known-good offset in isolation; pass the main chain to catch a custom
// IFD that loops back into it.
func ReadCustomDirectory(dev ioabi.Device, order binary.ByteOrder, flavor Flavor, reg *Registry, offset uint64, chain *Chain) (*Directory, error) {
	if chain != nil {
		if err := chain.Visit(offset); err != nil {
			return nil, err
		}
	}
	res, err := ReadDirectory(dev, order, flavor, reg, offset, ReadOptions{AllowAnon: true})
	if err != nil {
		return nil, err
	}
	return res.Directory, nil
}
