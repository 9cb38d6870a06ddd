package tessellate

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Metric names a distance function between two points.
type Metric string

const (
	Euclidean Metric = "euclidean"        // sqrt(dx² + dy²)
	Manhattan Metric = "manhattan"        // |dx| + |dy|
	Chebyshev Metric = "chebyshev"        // max(|dx|, |dy|)
	Minimal   Metric = "minimal"          // min(|dx|, |dy|), not a true metric but looks great
	Octagonal Metric = "octagonal-approx" // square root free approximation of Euclidean
)

const (
	// weights for the octagonal approximation
	octagonalMax = 1007.0 / 1024.0
	octagonalMin = 441.0 / 1024.0
)

var (
	// ErrUnknownMetric is returned when parsing a name outside of Metrics()
	ErrUnknownMetric = fmt.Errorf("unknown distance metric")

	// in key binding order, see ApplyKey
	allMetrics = []Metric{Euclidean, Manhattan, Minimal, Chebyshev, Octagonal}

	metricAliases = map[string]Metric{
		"euclidian": Euclidean,
		"taxicab":   Manhattan,
		"maximal":   Chebyshev,
		"approx":    Octagonal,
		"octagonal": Octagonal,
	}
)

// Metrics returns every supported metric.
func Metrics() []Metric {
	out := make([]Metric, len(allMetrics))
	copy(out, allMetrics)
	return out
}

// ParseMetric returns the Metric for the given name (case insensitive).
func ParseMetric(name string) (Metric, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range allMetrics {
		if string(m) == name {
			return m, nil
		}
	}
	m, ok := metricAliases[name]
	if !ok {
		return "", errors.Wrapf(ErrUnknownMetric, "%q", name)
	}
	return m, nil
}

// Distance between a and b under this metric.
// Non finite inputs simply propagate through the arithmetic.
func (m Metric) Distance(a, b Point) float64 {
	switch m {
	case Euclidean:
		dx, dy := a.X-b.X, a.Y-b.Y
		return math.Sqrt(dx*dx + dy*dy)
	case Manhattan:
		dx, dy := deltas(a, b)
		return dx + dy
	case Chebyshev:
		return math.Max(deltas(a, b))
	case Minimal:
		return math.Min(deltas(a, b))
	case Octagonal:
		dx, dy := deltas(a, b)
		return octagonalMax*math.Max(dx, dy) + octagonalMin*math.Min(dx, dy)
	}
	panic(fmt.Sprintf("distance requested for unknown metric %q", string(m)))
}

// Valid returns if m is one of Metrics()
func (m Metric) Valid() bool {
	for _, known := range allMetrics {
		if m == known {
			return true
		}
	}
	return false
}

func (m Metric) String() string {
	return string(m)
}

// deltas returns |dx|, |dy|
func deltas(a, b Point) (float64, float64) {
	return math.Abs(a.X - b.X), math.Abs(a.Y - b.Y)
}
