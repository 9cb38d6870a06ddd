package tessellate

// Classify returns the colour of the site selected for query.
//
// Sites are scanned in order, every one of them, there is no early exit
// or spatial pruning. With an empty SiteSet the result is DefaultColor.
func Classify(query Point, sites SiteSet, metric Metric, sel Selector) Color {
	i := ClassifyIndex(query, sites, metric, sel)
	if i < 0 {
		return DefaultColor
	}
	return sites[i].Color
}

// ClassifyIndex is Classify but returns the index of the winning site,
// or -1 if there are no sites.
func ClassifyIndex(query Point, sites SiteSet, metric Metric, sel Selector) int {
	return classify(query, sites, metric, NewExtremum(sel))
}

// classify runs a single scan with the given (reset) tracker.
func classify(query Point, sites SiteSet, metric Metric, ext *Extremum) int {
	ext.Reset()
	pick := -1
	for i, site := range sites {
		if ext.Evaluate(metric.Distance(query, site.Position)) {
			pick = i
		}
	}
	return pick
}

// Rebuild classifies every cell of a width x height grid.
//
// Cells are visited column by column (outer loop x, inner loop y) and the
// result always holds exactly width*height cells. A fresh buffer is
// returned every time, nothing is reused from earlier builds.
// Non positive dimensions give an empty buffer.
//
// Each cell is independent & reads sites only, so this could be split
// across goroutines by column if it ever needs to be faster.
func Rebuild(width, height int, sites SiteSet, metric Metric, sel Selector) *Buffer {
	if width <= 0 || height <= 0 {
		return &Buffer{Cells: []Cell{}}
	}

	buf := &Buffer{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, 0, width*height),
	}

	ext := NewExtremum(sel)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			pos := Pt(float64(x), float64(y))

			c := Cell{Position: pos, Color: DefaultColor, Site: classify(pos, sites, metric, ext)}
			if c.Site >= 0 {
				c.Color = sites[c.Site].Color
			}

			buf.Cells = append(buf.Cells, c)
		}
	}

	return buf
}
