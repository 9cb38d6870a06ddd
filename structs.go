package tessellate

import (
	"github.com/golang/geo/r2"
)

// Point is a location on the grid. Grid cells sit at integer coordinates,
// sites may sit anywhere.
type Point = r2.Point

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Color is a floating point RGBA colour. Channels are conventionally in [0,1]
// but are neither clamped nor validated here, see RGBA().
type Color struct {
	R, G, B, A float64
}

var (
	// DefaultColor is returned when there is no site to pick a colour from.
	DefaultColor = Color{0, 0, 0, 1}
)

// RGBA satisfies color.Color, clamping each channel into [0,1]
// and premultiplying by alpha.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	a := clamp01(c.A)
	return channel(c.R, a), channel(c.G, a), channel(c.B, a), uint32(a * 0xffff)
}

// channel converts a single colour channel to the 16 bit premultiplied form
func channel(v, a float64) uint32 {
	return uint32(clamp01(v) * a * 0xffff)
}

// clamp01 forces v into [0,1], NaN becomes 0.
func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v >= 0 {
		return v
	}
	return 0
}

// Site is a coloured point that competes to own grid cells.
type Site struct {
	Position Point
	Color    Color
}

// SiteSet is an ordered collection of sites.
// Order matters: ties are always won by the site that appears first.
// Sets are never modified once handed to Classify / Rebuild.
type SiteSet []*Site

// Positions returns the location of every site, in order
func (s SiteSet) Positions() []Point {
	pts := make([]Point, len(s))
	for i, site := range s {
		pts[i] = site.Position
	}
	return pts
}

// Cell is a single entry of a tessellation Buffer.
type Cell struct {
	Position Point
	Color    Color

	// index into the SiteSet of the winning site, -1 if there were no sites
	Site int
}
