package tessellate

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Selector decides whether the nearest or farthest site wins a cell.
type Selector string

const (
	Nearest  Selector = "nearest"
	Farthest Selector = "farthest"
)

var (
	// ErrUnknownSelector is returned when parsing a name outside of Selectors()
	ErrUnknownSelector = fmt.Errorf("unknown extremum selector")

	allSelectors = []Selector{Nearest, Farthest}

	selectorAliases = map[string]Selector{
		"min":      Nearest,
		"closest":  Nearest,
		"max":      Farthest,
		"furthest": Farthest,
	}
)

// Selectors returns every supported selector.
func Selectors() []Selector {
	out := make([]Selector, len(allSelectors))
	copy(out, allSelectors)
	return out
}

// ParseSelector returns the Selector for the given name (case insensitive).
func ParseSelector(name string) (Selector, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range allSelectors {
		if string(s) == name {
			return s, nil
		}
	}
	s, ok := selectorAliases[name]
	if !ok {
		return "", errors.Wrapf(ErrUnknownSelector, "%q", name)
	}
	return s, nil
}

// Valid returns if s is one of Selectors()
func (s Selector) Valid() bool {
	return s == Nearest || s == Farthest
}

func (s Selector) String() string {
	return string(s)
}

// Extremum tracks the running best distance of a single scan.
// It must not be shared between scans (or cells).
type Extremum struct {
	sel  Selector
	best float64
	seen bool
}

// NewExtremum returns an empty tracker for the given selector.
func NewExtremum(sel Selector) *Extremum {
	return &Extremum{sel: sel}
}

// Evaluate returns true if candidate replaces the running best, in which
// case the running best is updated.
// The first candidate is always accepted. After that only strictly
// better candidates are, so on a tie the earlier candidate stays.
func (e *Extremum) Evaluate(candidate float64) bool {
	if !e.seen {
		e.best = candidate
		e.seen = true
		return true
	}

	var better bool
	switch e.sel {
	case Nearest:
		better = candidate < e.best
	case Farthest:
		better = candidate > e.best
	default:
		panic(fmt.Sprintf("evaluate called with unknown selector %q", string(e.sel)))
	}

	if better {
		e.best = candidate
	}
	return better
}

// Best returns the running best & whether any candidate has been seen
func (e *Extremum) Best() (float64, bool) {
	return e.best, e.seen
}

// Reset forgets the running best so the tracker can start a new scan.
func (e *Extremum) Reset() {
	e.best = 0
	e.seen = false
}
