package ioabi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileDeviceReadWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.bin")
	d, err := OpenFileDevice(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	require.NoError(t, err)
	defer d.Close()

	_, err = d.Write([]byte("payload"))
	require.NoError(t, err)
	size, err := d.Size()
	require.NoError(t, err)
	require.Equal(t, int64(7), size)

	_, ok := d.Map()
	require.False(t, ok)

	_, err = d.Seek(0, SeekStart)
	require.NoError(t, err)
	buf := make([]byte, 7)
	_, err = d.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "payload", string(buf))
}

func TestMappedFileDeviceMapsWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.bin")
	require.NoError(t, os.WriteFile(path, []byte("mapped-data"), 0o600))

	d, err := OpenMappedFileDevice(path)
	require.NoError(t, err)
	defer d.Close()

	base, ok := d.Map()
	require.True(t, ok)
	require.Equal(t, "mapped-data", string(base))
}
