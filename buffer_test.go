package tessellate

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/tessellate/internal/encoding"
)

func TestBufferAt(t *testing.T) {
	buf := Rebuild(3, 2, redBlue(), Manhattan, Nearest)

	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			c, ok := buf.At(x, y)
			require.True(t, ok)
			assert.Equal(t, Pt(float64(x), float64(y)), c.Position)
		}
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		_, ok := buf.At(p[0], p[1])
		assert.False(t, ok, "%v", p)
	}
}

func TestBufferImage(t *testing.T) {
	buf := Rebuild(11, 2, redBlue(), Euclidean, Nearest)
	im := buf.Image()

	assert.Equal(t, 11, im.Bounds().Dx())
	assert.Equal(t, 2, im.Bounds().Dy())

	left := im.RGBAAt(1, 1)
	assert.Equal(t, uint8(0xff), left.R)
	assert.Equal(t, uint8(0), left.B)

	right := im.RGBAAt(10, 0)
	assert.Equal(t, uint8(0), right.R)
	assert.Equal(t, uint8(0xff), right.B)
}

func TestBufferBinary(t *testing.T) {
	sites := GenerateSites(4, 16, 8, newRand(5))
	buf := Rebuild(16, 8, sites, Octagonal, Farthest)

	data, err := buf.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, headerSize+16*8*cellSize)

	decoded := &Buffer{}
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, buf, decoded)
}

func TestBufferBinaryCorrupt(t *testing.T) {
	buf := &Buffer{}

	err := buf.UnmarshalBinary([]byte{0, 1})
	assert.Equal(t, ErrCorruptBuffer, errors.Cause(err))

	data, err := Rebuild(2, 2, redBlue(), Euclidean, Nearest).MarshalBinary()
	require.NoError(t, err)

	err = buf.UnmarshalBinary(data[:len(data)-1])
	assert.Equal(t, ErrCorruptBuffer, errors.Cause(err))

	// header claims more cells than fit in an int once multiplied out
	huge := append(encoding.ToBytes32(1<<31), encoding.ToBytes32(1<<31)...)
	assert.NotPanics(t, func() {
		err = buf.UnmarshalBinary(huge)
	})
	assert.Equal(t, ErrCorruptBuffer, errors.Cause(err))

	// whole cells, wrong count
	mismatch := append(encoding.ToBytes32(3), encoding.ToBytes32(3)...)
	mismatch = append(mismatch, data[headerSize:]...)
	err = buf.UnmarshalBinary(mismatch)
	assert.Equal(t, ErrCorruptBuffer, errors.Cause(err))
}
