package ioabi

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryDeviceReadWriteRoundTrip(t *testing.T) {
	d := NewMemoryDevice(make([]byte, 0))
	n, err := d.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = d.Seek(0, SeekStart)
	require.NoError(t, err)

	buf := make([]byte, 5)
	n, err = d.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(buf))
}

func TestMemoryDeviceGrowsOnWrite(t *testing.T) {
	d := NewMemoryDevice(nil)
	_, err := d.Seek(10, SeekStart)
	require.NoError(t, err)
	_, err = d.Write([]byte("x"))
	require.NoError(t, err)
	require.Equal(t, 11, len(d.Bytes()))
}

func TestMemoryDeviceMapSucceeds(t *testing.T) {
	d := NewMemoryDevice([]byte("abc"))
	base, ok := d.Map()
	require.True(t, ok)
	require.Equal(t, []byte("abc"), base)
}

func TestMemoryDeviceReadEOF(t *testing.T) {
	d := NewMemoryDevice([]byte("ab"))
	buf := make([]byte, 2)
	_, err := d.Read(buf)
	require.NoError(t, err)
	_, err = d.Read(buf)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadAtUsesMapFastPath(t *testing.T) {
	d := NewMemoryDevice([]byte("0123456789"))
	buf := make([]byte, 4)
	n, err := ReadAt(d, buf, 3)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "3456", string(buf))
}

func TestReadAtOutOfRangeFails(t *testing.T) {
	d := NewMemoryDevice([]byte("abc"))
	buf := make([]byte, 4)
	_, err := ReadAt(d, buf, 0)
	require.Error(t, err)
}

func TestWriteAtSeeksThenWrites(t *testing.T) {
	d := NewMemoryDevice(make([]byte, 4))
	n, err := WriteAt(d, []byte("zz"), 2)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{0, 0, 'z', 'z'}, d.Bytes())
}
