package tessellate

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises how the grid is shared out between sites.
type Stats struct {
	// Cells owned by each site, indexed as the SiteSet
	Coverage []int

	// Regions is the number of sites that own at least one cell.
	// Under Farthest most sites end up owning nothing.
	Regions int

	// mean & (sample) standard deviation of cells per site, sites owning
	// nothing included. StdDevArea is NaN for a single site.
	MeanArea   float64
	StdDevArea float64

	// fraction of the grid owned by the biggest region
	LargestShare float64
}

// Coverage returns the number of cells owned by each of n sites.
// Cells owned by no site (or a site index >= n) are not counted.
// A nil buffer or n <= 0 gives an empty result.
func Coverage(buf *Buffer, n int) []int {
	if buf == nil || n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	for _, c := range buf.Cells {
		if c.Site >= 0 && c.Site < n {
			out[c.Site]++
		}
	}
	return out
}

// Summarize computes Stats for a buffer built from n sites.
func Summarize(buf *Buffer, n int) *Stats {
	st := &Stats{Coverage: Coverage(buf, n)}
	if buf == nil || n <= 0 {
		return st
	}

	areas := make([]float64, n)
	for i, count := range st.Coverage {
		areas[i] = float64(count)
		if count > 0 {
			st.Regions++
		}
	}

	st.MeanArea, st.StdDevArea = stat.MeanStdDev(areas, nil)
	if buf.Len() > 0 {
		st.LargestShare = floats.Max(areas) / float64(buf.Len())
	}

	return st
}
