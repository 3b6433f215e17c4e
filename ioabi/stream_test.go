package ioabi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamDeviceForwardSeekDiscards(t *testing.T) {
	d := NewStreamReadDevice(bytes.NewReader([]byte("0123456789")), 10)
	_, err := d.Seek(5, SeekStart)
	require.NoError(t, err)
	buf := make([]byte, 2)
	n, err := d.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "56", string(buf))
}

func TestStreamDeviceRejectsBackwardSeek(t *testing.T) {
	d := NewStreamReadDevice(bytes.NewReader([]byte("0123456789")), 10)
	_, err := d.Seek(5, SeekStart)
	require.NoError(t, err)
	_, err = d.Seek(1, SeekStart)
	require.ErrorIs(t, err, errStreamNoRewind)
}

func TestStreamDeviceWriteOnlyRejectsRead(t *testing.T) {
	var buf bytes.Buffer
	d := NewStreamWriteDevice(&buf)
	_, err := d.Read(make([]byte, 1))
	require.ErrorIs(t, err, errStreamNotReadable)
	n, err := d.Write([]byte("ok"))
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "ok", buf.String())
}

func TestStreamDeviceSizeUnknownByDefault(t *testing.T) {
	d := NewStreamWriteDevice(&bytes.Buffer{})
	_, err := d.Size()
	require.ErrorIs(t, err, errStreamSizeUnknown)
}
