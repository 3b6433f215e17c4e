package tiffcore

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/vadz/gotiffcore/ioabi"
	"github.com/vadz/gotiffcore/ioabi/ioabitest"
	"github.com/vadz/gotiffcore/tifferr"
)

// These tests pin down call sequencing against the I/O vtable — which
// operations run, in what order — rather than behavior over a byte
// buffer; the mock device asserts the exact traffic.

func TestReadHeaderFallsBackToSeekReadWhenUnmapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := ioabitest.NewMockDevice(ctrl)

	header := []byte{0x49, 0x49, 42, 0, 8, 0, 0, 0}
	gomock.InOrder(
		dev.EXPECT().Map().Return(nil, false),
		dev.EXPECT().Seek(int64(0), ioabi.SeekStart).Return(int64(0), nil),
		dev.EXPECT().Read(gomock.Any()).DoAndReturn(func(buf []byte) (int, error) {
			return copy(buf, header), nil
		}),
	)

	h, err := ReadHeader(dev)
	require.NoError(t, err)
	assert.Equal(t, Classic, h.Flavor)
	assert.EqualValues(t, 8, h.FirstIFDOff)
}

func TestReadHeaderUsesMapWithoutSeeking(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := ioabitest.NewMockDevice(ctrl)

	header := []byte{0x4D, 0x4D, 0, 42, 0, 0, 0, 8}
	// Map satisfies the read directly; Seek and Read must never happen.
	dev.EXPECT().Map().Return(header, true).AnyTimes()

	h, err := ReadHeader(dev)
	require.NoError(t, err)
	assert.Equal(t, Classic, h.Flavor)
	assert.EqualValues(t, 8, h.FirstIFDOff)
}

func TestShortReadSurfacesAsIo(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := ioabitest.NewMockDevice(ctrl)

	gomock.InOrder(
		dev.EXPECT().Map().Return(nil, false),
		dev.EXPECT().Seek(int64(0), ioabi.SeekStart).Return(int64(0), nil),
		dev.EXPECT().Read(gomock.Any()).Return(3, io.ErrUnexpectedEOF),
	)

	_, err := ReadHeader(dev)
	assert.True(t, tifferr.Is(err, tifferr.Io))
}

func TestSeekFailureSurfacesAsIo(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := ioabitest.NewMockDevice(ctrl)

	gomock.InOrder(
		dev.EXPECT().Map().Return(nil, false),
		dev.EXPECT().Seek(int64(0), ioabi.SeekStart).Return(int64(0), io.ErrClosedPipe),
	)

	_, err := ReadHeader(dev)
	assert.True(t, tifferr.Is(err, tifferr.Io))
}
