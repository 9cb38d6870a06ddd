package voronoi

import (
	"github.com/unixpickle/model3d/model2d"
)

// based on
// https://github.com/unixpickle/voronoi-glass/blob/main/voronoi.go

// Cell is the part of the bounding box that is closer (euclidean) to
// Center than to any other site.
type Cell struct {
	Center model2d.Coord
	Edges  []*model2d.Segment
}

// Diagram is a cell per site, in site order.
type Diagram []*Cell

// Cells computes the (euclidean, nearest site) voronoi cells for a list of
// coordinates, assuming they are all contained within a bounding box.
//
// Each cell is the bounding box clipped by the half planes of the
// perpendicular bisectors with every other site. Sites sharing the exact
// same coordinate do not clip each other.
//
// Adjacent cells compute their shared edge separately so coordinates may
// differ slightly due to rounding errors.
func Cells(min, max model2d.Coord, coords []model2d.Coord) Diagram {
	cells := make(Diagram, len(coords))
	for i, c := range coords {
		constraints := model2d.NewConvexPolytopeRect(min, max)
		for _, c1 := range coords {
			if c == c1 {
				continue
			}
			mp := c.Mid(c1)
			normal := c1.Sub(c).Normalize()
			constraints = append(constraints, &model2d.LinearConstraint{
				Normal: normal,
				Max:    normal.Dot(mp),
			})
		}
		cells[i] = &Cell{
			Center: c,
			Edges:  constraints.Mesh().SegmentSlice(),
		}
	}
	return cells
}

// Segments returns every edge of every cell.
// Edges shared by two cells are returned twice.
func (d Diagram) Segments() []*model2d.Segment {
	out := []*model2d.Segment{}
	for _, cell := range d {
		out = append(out, cell.Edges...)
	}
	return out
}
