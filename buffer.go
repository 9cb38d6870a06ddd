package tessellate

import (
	"bytes"
	"fmt"
	"image"

	"github.com/pkg/errors"

	"github.com/voidshard/tessellate/internal/encoding"
)

const (
	// bytes per encoded cell: x, y, r, g, b, a as float64 + site as int32
	cellSize = 6*8 + 4

	// width, height as uint32
	headerSize = 2 * 4
)

var (
	// ErrCorruptBuffer is returned when decoding data not written by MarshalBinary
	ErrCorruptBuffer = fmt.Errorf("corrupt tessellation buffer")
)

// Buffer is a complete tessellation of a Width x Height grid.
// Cells are stored column by column, see Rebuild.
type Buffer struct {
	Width  int
	Height int
	Cells  []Cell
}

// Len returns the number of cells
func (b *Buffer) Len() int {
	return len(b.Cells)
}

// At returns the cell at grid coordinate (x, y).
func (b *Buffer) At(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return Cell{}, false
	}
	return b.Cells[b.index(x, y)], true
}

// index of (x, y) in Cells
func (b *Buffer) index(x, y int) int {
	return x*b.Height + y
}

// Image returns the buffer as an RGBA image, one pixel per cell.
func (b *Buffer) Image() *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for _, c := range b.Cells {
		im.Set(int(c.Position.X), int(c.Position.Y), c.Color)
	}
	return im
}

// MarshalBinary encodes the buffer. Two buffers with equal contents
// always encode to the same bytes.
func (b *Buffer) MarshalBinary() ([]byte, error) {
	out := bytes.NewBuffer(make([]byte, 0, headerSize+cellSize*len(b.Cells)))

	out.Write(encoding.ToBytes32(uint32(b.Width)))
	out.Write(encoding.ToBytes32(uint32(b.Height)))

	for _, c := range b.Cells {
		for _, f := range []float64{c.Position.X, c.Position.Y, c.Color.R, c.Color.G, c.Color.B, c.Color.A} {
			out.Write(encoding.ToBytesFloat64(f))
		}
		out.Write(encoding.ToBytesInt32(int32(c.Site)))
	}

	return out.Bytes(), nil
}

// UnmarshalBinary decodes data written by MarshalBinary.
func (b *Buffer) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return errors.Wrap(ErrCorruptBuffer, "missing header")
	}

	width := int(encoding.FromBytes32(data[0:4]))
	height := int(encoding.FromBytes32(data[4:8]))
	data = data[headerSize:]

	if len(data)%cellSize != 0 {
		return errors.Wrapf(ErrCorruptBuffer, "%d bytes is not a whole number of cells", len(data))
	}
	if uint64(width)*uint64(height) != uint64(len(data)/cellSize) {
		return errors.Wrapf(ErrCorruptBuffer, "%dx%d does not match %d cells", width, height, len(data)/cellSize)
	}

	cells := make([]Cell, len(data)/cellSize)
	for i := range cells {
		chunk := data[i*cellSize : (i+1)*cellSize]
		f := func(n int) float64 {
			return encoding.FromBytesFloat64(chunk[n*8 : (n+1)*8])
		}
		cells[i] = Cell{
			Position: Pt(f(0), f(1)),
			Color:    Color{R: f(2), G: f(3), B: f(4), A: f(5)},
			Site:     int(encoding.FromBytesInt32(chunk[48:52])),
		}
	}

	b.Width = width
	b.Height = height
	b.Cells = cells
	return nil
}
