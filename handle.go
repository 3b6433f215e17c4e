package tiffcore

import (
	"encoding/binary"
	"log/slog"

	"github.com/vadz/gotiffcore/ioabi"
)

// Handle is an open TIFF/BigTIFF file: the backing Device, its header,
// the registry governing how tags are interpreted, the chain-walk state,
// and a logger for recoverable per-tag warnings. It is not safe for
// concurrent use from multiple goroutines — callers needing that
// serialize their own access, matching the single-threaded, call-ordered
// contract the rest of the core assumes.
type Handle struct {
	dev        ioabi.Device
	header     *Header
	registry   *Registry
	chain      *Chain
	logger     *slog.Logger
	current    *Directory
	nextOffset uint64
	caps       Capabilities
	writable   bool
	stripChop  bool

	// Checkpoint state: the directory most recently flushed without
	// finalizing, where it landed, how much room it got, and the file
	// position of the pointer slot that links to it. A re-flush that
	// still fits is overwritten in place; one that grew is relocated and
	// the pointer slot re-patched.
	checkpointed *Directory
	ckptOff      uint64
	ckptSize     uint64
	ckptPtrPos   uint64
}

// OpenOption configures a Handle at open time.
type OpenOption func(*Handle)

// WithStripChop opts the handle into the strip-chop heuristic: a
// single-strip uncompressed image is presented as many ~8KiB strips.
func WithStripChop() OpenOption {
	return func(h *Handle) { h.stripChop = true }
}

// WithLogger substitutes the warning logger installed at open time.
func WithLogger(l *slog.Logger) OpenOption {
	return func(h *Handle) { h.logger = l }
}

// WithWritable marks a handle opened over an existing file as writable,
// for append-style updates. Handles from Create are always writable;
// handles from Open default to read-only, and WriteDirectory on a
// read-only handle is a no-op.
func WithWritable() OpenOption {
	return func(h *Handle) { h.writable = true }
}

// Open reads and validates the header of dev, returning a Handle ready
// for ReadNextDirectory. A nil reg defaults to NewTIFFRegistry().
func Open(dev ioabi.Device, reg *Registry, opts ...OpenOption) (*Handle, error) {
	hdr, err := ReadHeader(dev)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		reg = NewTIFFRegistry()
	}
	h := &Handle{dev: dev, header: hdr, registry: reg, chain: NewChain(), logger: NewDefaultLogger(), nextOffset: hdr.FirstIFDOff}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Create writes a fresh header for order/flavor to dev and returns a
// writable Handle ready to accept WriteDirectory calls. A nil reg
// defaults to NewTIFFRegistry().
func Create(dev ioabi.Device, order binary.ByteOrder, flavor Flavor, reg *Registry, opts ...OpenOption) (*Handle, error) {
	if reg == nil {
		reg = NewTIFFRegistry()
	}
	if err := PutHeader(dev, order, flavor); err != nil {
		return nil, err
	}
	h := &Handle{dev: dev, header: &Header{Order: order, Flavor: flavor}, registry: reg, chain: NewChain(), logger: NewDefaultLogger(), writable: true}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// SetLogger replaces the handle's warning logger. The default, installed
// by Open/Create, is NewDefaultLogger().
func (h *Handle) SetLogger(l *slog.Logger) { h.logger = l }

// SetCapabilities binds the codec hook vtable a caller wants the
// directory layer to invoke around decode/encode boundaries. The core
// never inspects the hooks; it only calls them at the documented points.
func (h *Handle) SetCapabilities(c Capabilities) { h.caps = c }

// Registry returns the handle's field registry, shared by every
// directory read or written through it.
func (h *Handle) Registry() *Registry { return h.registry }

// Flavor reports whether the open file is classic TIFF or BigTIFF.
func (h *Handle) Flavor() Flavor { return h.header.Flavor }

// Order reports the open file's byte order.
func (h *Handle) Order() binary.ByteOrder { return h.header.Order }

// Current returns the most recently read or written directory, or nil.
func (h *Handle) Current() *Directory { return h.current }

// Chain returns the chain walker tracking visited IFD offsets.
func (h *Handle) Chain() *Chain { return h.chain }

// Device exposes the underlying Device for callers that need to read
// strip/tile pixel data directly (the core never interprets pixel
// payloads itself).
func (h *Handle) Device() ioabi.Device { return h.dev }

// ReadNextDirectory reads the next IFD in the chain, applies the repair
// phase and (when opted in) the strip-chop heuristic, and advances the
// chain position. It returns (nil, nil) once the chain's terminating zero
// offset is reached.
func (h *Handle) ReadNextDirectory() (*Directory, error) {
	if h.nextOffset == 0 {
		return nil, nil
	}
	offset := h.nextOffset
	if err := h.chain.Visit(offset); err != nil {
		return nil, err
	}
	dir, next, err := h.readAndRepair(offset)
	if err != nil {
		return nil, err
	}
	h.current = dir
	h.nextOffset = next
	if h.caps.SetupDecode != nil {
		if err := h.caps.SetupDecode(dir); err != nil {
			return nil, err
		}
	}
	return dir, nil
}

// ReadSubIFD reads the directory at offset as a child of the current
// chain, sharing its visited-offset set so a SubIFD pointing back into
// the main chain (or into another already-visited SubIFD) is caught as a
// Loop rather than recursing forever. Unlike ReadNextDirectory it does
// not advance h.current or h.nextOffset — the caller owns the returned
// Directory directly.
func (h *Handle) ReadSubIFD(offset uint64) (*Directory, error) {
	if err := h.chain.Visit(offset); err != nil {
		return nil, err
	}
	dir, _, err := h.readAndRepair(offset)
	return dir, err
}

func (h *Handle) readAndRepair(offset uint64) (*Directory, uint64, error) {
	res, err := ReadDirectory(h.dev, h.header.Order, h.header.Flavor, h.registry, offset, ReadOptions{AllowAnon: true, RequireImage: true})
	if err != nil {
		return nil, 0, err
	}
	for _, w := range res.Warnings {
		h.logger.Warn("directory field dropped", "error", w)
	}
	var fileSize uint64
	if size, err := h.dev.Size(); err == nil && size > 0 {
		fileSize = uint64(size)
	}
	for _, w := range res.Directory.Repair(fileSize) {
		h.logger.Warn("directory repaired", "fix", w)
	}
	if h.stripChop {
		res.Directory.StripChop()
	}
	return res.Directory, res.NextOffset, nil
}

// NewDirectory returns an empty directory bound to this handle's
// registry, order, and flavor, ready to be populated and passed to
// WriteDirectory.
func (h *Handle) NewDirectory() *Directory {
	return NewDirectory(h.registry, h.header.Order, h.header.Flavor)
}

// Close invokes the codec Close hook, if any, then releases the
// underlying Device.
func (h *Handle) Close() error {
	if h.caps.Close != nil {
		if err := h.caps.Close(); err != nil {
			h.dev.Close()
			return err
		}
	}
	return h.dev.Close()
}
