package tessellate

import (
	"fmt"
	"image"
	"image/color"

	"github.com/boljen/go-bitmap"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
	"golang.org/x/image/colornames"

	"github.com/voidshard/tessellate/internal/voronoi"
)

var (
	// ErrEmptyBuffer is returned when asked to render a buffer without cells
	ErrEmptyBuffer = fmt.Errorf("cannot render an empty buffer")
)

// RenderOptions controls what is drawn on top of the raw tessellation.
type RenderOptions struct {
	// Radius of the marker drawn at each site, 0 or less draws no markers.
	// Markers are filled with the site colour & outlined with SiteColor.
	SiteRadius float64
	SiteColor  color.Color

	// Boundaries paints every cell whose owner differs from its right or
	// lower neighbour in BoundaryColor.
	Boundaries    bool
	BoundaryColor color.Color

	// Overlay draws the exact euclidean nearest-site diagram as lines.
	// This is drawn no matter which metric built the buffer, which makes it
	// handy to compare the other metrics against.
	Overlay      bool
	OverlayColor color.Color
	OverlayWidth float64
}

// DefaultRenderOptions returns options that draw site markers only.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		SiteRadius:    3,
		SiteColor:     colornames.White,
		BoundaryColor: colornames.Black,
		OverlayColor:  colornames.Dimgray,
		OverlayWidth:  1,
	}
}

// Boundaries returns a bitmap with one bit per cell (in Cells order) set if
// the cell is owned by a different site than its right or lower neighbour.
func (b *Buffer) Boundaries() bitmap.Bitmap {
	bm := bitmap.New(len(b.Cells))
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height; y++ {
			i := b.index(x, y)
			owner := b.Cells[i].Site

			if x+1 < b.Width && b.Cells[b.index(x+1, y)].Site != owner {
				bm.Set(i, true)
			} else if y+1 < b.Height && b.Cells[b.index(x, y+1)].Site != owner {
				bm.Set(i, true)
			}
		}
	}
	return bm
}

// Render draws the buffer with any extras requested in opts.
// A nil opts is the same as DefaultRenderOptions().
func Render(buf *Buffer, sites SiteSet, opts *RenderOptions) (image.Image, error) {
	if buf == nil || buf.Len() == 0 {
		return nil, ErrEmptyBuffer
	}
	if opts == nil {
		opts = DefaultRenderOptions()
	}

	im := buf.Image()

	if opts.Boundaries {
		bm := buf.Boundaries()
		for i, c := range buf.Cells {
			if bm.Get(i) {
				im.Set(int(c.Position.X), int(c.Position.Y), opts.BoundaryColor)
			}
		}
	}

	ctx := gg.NewContextForRGBA(im)

	if opts.Overlay && len(sites) > 0 {
		drawOverlay(ctx, buf, sites, opts)
	}

	if opts.SiteRadius > 0 {
		for _, s := range sites {
			ctx.DrawCircle(s.Position.X, s.Position.Y, opts.SiteRadius)
			ctx.SetColor(s.Color)
			ctx.FillPreserve()
			ctx.SetColor(opts.SiteColor)
			ctx.SetLineWidth(1)
			ctx.Stroke()
		}
	}

	return ctx.Image(), nil
}

// drawOverlay draws the edges of the euclidean voronoi diagram of sites,
// clipped to the buffer area.
func drawOverlay(ctx *gg.Context, buf *Buffer, sites SiteSet, opts *RenderOptions) {
	coords := make([]model2d.Coord, len(sites))
	for i, s := range sites {
		coords[i] = model2d.Coord{X: s.Position.X, Y: s.Position.Y}
	}

	diagram := voronoi.Cells(
		model2d.Coord{X: 0, Y: 0},
		model2d.Coord{X: float64(buf.Width), Y: float64(buf.Height)},
		coords,
	)

	ctx.SetColor(opts.OverlayColor)
	ctx.SetLineWidth(opts.OverlayWidth)
	for _, seg := range diagram.Segments() {
		ctx.DrawLine(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
		ctx.Stroke()
	}
}

// SavePNG renders the buffer & writes it to fpath as a PNG.
func SavePNG(fpath string, buf *Buffer, sites SiteSet, opts *RenderOptions) error {
	im, err := Render(buf, sites, opts)
	if err != nil {
		return err
	}
	return errors.Wrapf(gg.SavePNG(fpath, im), "writing %s", fpath)
}
