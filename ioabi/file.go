package ioabi

import "os"

// FileDevice adapts an *os.File to Device. It never memory-maps: Map always
// reports ok=false, so readers fall back to Read+Seek.
type FileDevice struct {
	f *os.File
}

// NewFileDevice wraps an already-open file. The caller owns open-mode
// selection (r/w/a); this type only adapts the handle.
func NewFileDevice(f *os.File) *FileDevice {
	return &FileDevice{f: f}
}

// OpenFileDevice opens path with the given os flags and wraps the result.
func OpenFileDevice(path string, flag int, perm os.FileMode) (*FileDevice, error) {
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}
	return NewFileDevice(f), nil
}

func (d *FileDevice) Read(buf []byte) (int, error) {
	return d.f.Read(buf)
}

func (d *FileDevice) Write(buf []byte) (int, error) {
	return d.f.Write(buf)
}

func (d *FileDevice) Seek(offset int64, whence Whence) (int64, error) {
	return d.f.Seek(offset, int(whence))
}

func (d *FileDevice) Size() (int64, error) {
	info, err := d.f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Map always returns ok=false: a plain *os.File-backed device has no
// mapping capability of its own. Embedders wanting mapped access should
// use MappedFileDevice instead, or supply their own Device
// implementation.
func (d *FileDevice) Map() ([]byte, bool) {
	return nil, false
}

func (d *FileDevice) Close() error {
	return d.f.Close()
}

// MappedFileDevice is a Device over an in-memory snapshot of a file,
// standing in for a true OS mmap: it gives the reader's Map() fast path
// (bounds-checked slice reads, no syscalls) without requiring a
// platform-specific mmap dependency the retrieval pack never exercises.
// A real embedder can substitute a true mmap-backed Device that satisfies
// the same interface without any core change.
type MappedFileDevice struct {
	*MemoryDevice
	backing *os.File
}

// OpenMappedFileDevice reads path fully into memory and returns a Device
// whose Map() succeeds.
func OpenMappedFileDevice(path string) (*MappedFileDevice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	buf := make([]byte, info.Size())
	if _, err := readFull(f, buf); err != nil {
		f.Close()
		return nil, err
	}
	return &MappedFileDevice{MemoryDevice: NewMemoryDevice(buf), backing: f}, nil
}

func (d *MappedFileDevice) Close() error {
	return d.backing.Close()
}

func readFull(f *os.File, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := f.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
