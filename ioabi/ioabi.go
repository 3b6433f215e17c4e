// Package ioabi defines the six-operation capability set that every
// on-disk access in the directory core goes through. The core never
// touches the OS directly: callers inject a Device backed by an *os.File, a
// byte slice, or a stream, and the reader/writer are oblivious to which.
package ioabi

import "io"

// Whence mirrors io.Seek{Start,Current,End} without forcing callers to
// import "io" just to seek a Device.
type Whence int

const (
	SeekStart   Whence = Whence(io.SeekStart)
	SeekCurrent Whence = Whence(io.SeekCurrent)
	SeekEnd     Whence = Whence(io.SeekEnd)
)

// Device is the injected I/O vtable. Implementations are provided by the
// embedding application: at minimum a seekable file backend, optionally a
// mapped-memory backend. The core calls these methods and never touches
// the OS directly, so in-memory, file-backed, or stream-backed files are
// equivalent to it.
type Device interface {
	// Read reads up to len(buf) bytes at the current position, advancing
	// it. Returns the number of bytes read and an error, following the
	// io.Reader contract (io.EOF on clean end of input).
	Read(buf []byte) (n int, err error)

	// Write writes buf at the current position, advancing it.
	Write(buf []byte) (n int, err error)

	// Seek repositions the cursor per whence, returning the new absolute
	// offset.
	Seek(offset int64, whence Whence) (int64, error)

	// Size reports the total size of the backing store.
	Size() (int64, error)

	// Map returns a borrowed read-only view of the entire backing store
	// when the implementation supports memory mapping, and ok=false
	// otherwise. Readers consult Map first and fall back to Read+Seek.
	Map() (base []byte, ok bool)

	// Close releases any resources held by the device.
	Close() error
}

// ReadAt is a convenience used by readers that already have an absolute
// offset in hand (the common case for directory entries): seek then read,
// restoring nothing — callers that need the old position must save it
// themselves, matching the core's single-threaded, call-ordered semantics.
func ReadAt(d Device, buf []byte, offset int64) (int, error) {
	if base, ok := d.Map(); ok {
		end := offset + int64(len(buf))
		if offset < 0 || end > int64(len(base)) {
			return 0, io.ErrUnexpectedEOF
		}
		n := copy(buf, base[offset:end])
		return n, nil
	}
	if _, err := d.Seek(offset, SeekStart); err != nil {
		return 0, err
	}
	return io.ReadFull(d, buf)
}

// WriteAt seeks then writes the full buffer, for devices with no native
// WriteAt of their own.
func WriteAt(d Device, buf []byte, offset int64) (int, error) {
	if _, err := d.Seek(offset, SeekStart); err != nil {
		return 0, err
	}
	return writeFull(d, buf)
}

func writeFull(d Device, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := d.Write(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}
