package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes32(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, ToBytes32(0x01020304))
	assert.Equal(t, uint32(0xdeadbeef), FromBytes32(ToBytes32(0xdeadbeef)))
}

func TestBytesInt32(t *testing.T) {
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, ToBytesInt32(-1))
	assert.Equal(t, int32(-1), FromBytesInt32(ToBytesInt32(-1)))
}

func TestBytesFloat64(t *testing.T) {
	assert.Equal(t, []byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, ToBytesFloat64(1))
	assert.True(t, math.IsNaN(FromBytesFloat64(ToBytesFloat64(math.NaN()))))
	assert.Equal(t, math.Inf(-1), FromBytesFloat64(ToBytesFloat64(math.Inf(-1))))
}
