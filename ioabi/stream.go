package ioabi

import (
	"errors"
	"io"
)

// StreamDevice adapts a forward-only io.Reader or io.Writer (a network
// socket, a pipe) to Device. TIFF directories are scattered non-sequentially
// across a file, so a stream device only supports forward seeks achieved by
// discarding bytes; backward seeks fail. This is enough for, e.g., a write-
// once encoder that never revisits earlier offsets except to patch a
// next-IFD pointer it buffered locally.
type StreamDevice struct {
	r   io.Reader
	w   io.Writer
	pos int64
	// size is only known for streams that report it up front (e.g. an
	// HTTP Content-Length); 0 means unknown.
	size int64
}

// NewStreamReadDevice wraps a forward-only reader. size may be 0 if unknown.
func NewStreamReadDevice(r io.Reader, size int64) *StreamDevice {
	return &StreamDevice{r: r, size: size}
}

// NewStreamWriteDevice wraps a forward-only writer.
func NewStreamWriteDevice(w io.Writer) *StreamDevice {
	return &StreamDevice{w: w}
}

func (d *StreamDevice) Read(buf []byte) (int, error) {
	if d.r == nil {
		return 0, errStreamNotReadable
	}
	n, err := d.r.Read(buf)
	d.pos += int64(n)
	return n, err
}

func (d *StreamDevice) Write(buf []byte) (int, error) {
	if d.w == nil {
		return 0, errStreamNotWritable
	}
	n, err := d.w.Write(buf)
	d.pos += int64(n)
	return n, err
}

// Seek supports only forward motion (discarding intervening bytes on a
// readable stream) or a no-op seek to the current position; anything else
// returns an error, since a true stream cannot rewind.
func (d *StreamDevice) Seek(offset int64, whence Whence) (int64, error) {
	var target int64
	switch whence {
	case SeekStart:
		target = offset
	case SeekCurrent:
		target = d.pos + offset
	default:
		return 0, errStreamSeekEnd
	}
	if target < d.pos {
		return 0, errStreamNoRewind
	}
	if target == d.pos {
		return d.pos, nil
	}
	if d.r == nil {
		return 0, errStreamNotReadable
	}
	skip := target - d.pos
	if _, err := io.CopyN(io.Discard, d.r, skip); err != nil {
		return 0, err
	}
	d.pos = target
	return d.pos, nil
}

func (d *StreamDevice) Size() (int64, error) {
	if d.size > 0 {
		return d.size, nil
	}
	return 0, errStreamSizeUnknown
}

func (d *StreamDevice) Map() ([]byte, bool) {
	return nil, false
}

func (d *StreamDevice) Close() error {
	if c, ok := d.r.(io.Closer); ok {
		return c.Close()
	}
	if c, ok := d.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

var (
	errStreamNotReadable = errors.New("ioabi: stream device is not readable")
	errStreamNotWritable = errors.New("ioabi: stream device is not writable")
	errStreamSeekEnd     = errors.New("ioabi: stream device cannot seek from end")
	errStreamNoRewind    = errors.New("ioabi: stream device cannot seek backwards")
	errStreamSizeUnknown = errors.New("ioabi: stream device size is unknown")
)
