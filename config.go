package tessellate

// Config holds the active metric & selector plus a dirty flag that says
// whether the current tessellation is stale.
//
// A Config is owned by whatever drives rendering (an event loop, a CLI)
// and is not safe for concurrent use.
type Config struct {
	metric   Metric
	selector Selector
	dirty    bool
}

// keyMetrics maps single key commands onto metrics
var keyMetrics = map[rune]Metric{
	'1': Euclidean,
	'2': Manhattan,
	'3': Minimal,
	'4': Chebyshev,
	'5': Octagonal,
}

// keySelectors maps single key commands onto selectors
var keySelectors = map[rune]Selector{
	'q': Nearest,
	'r': Farthest,
}

// NewConfig returns a Config set to Euclidean / Nearest, dirty so the
// first Refresh always builds.
func NewConfig() *Config {
	return &Config{metric: Euclidean, selector: Nearest, dirty: true}
}

// Metric returns the active metric
func (c *Config) Metric() Metric {
	return c.metric
}

// Selector returns the active selector
func (c *Config) Selector() Selector {
	return c.selector
}

// Dirty returns if the next Refresh will rebuild
func (c *Config) Dirty() bool {
	return c.dirty
}

// SetMetric switches the active metric. Always marks the config dirty,
// even if m is already active. Metrics outside Metrics() are refused
// (returning false) and leave the config untouched.
func (c *Config) SetMetric(m Metric) bool {
	if !m.Valid() {
		return false
	}
	c.metric = m
	c.dirty = true
	return true
}

// SetSelector switches the active selector. Always marks the config dirty.
// Selectors outside Selectors() are refused like SetMetric.
func (c *Config) SetSelector(s Selector) bool {
	if !s.Valid() {
		return false
	}
	c.selector = s
	c.dirty = true
	return true
}

// ApplyKey applies a single key command:
//
//	1 euclidean, 2 manhattan, 3 minimal, 4 chebyshev, 5 octagonal-approx
//	q nearest, r farthest
//
// Returns false (and changes nothing) for any other key.
func (c *Config) ApplyKey(key rune) bool {
	if m, ok := keyMetrics[key]; ok {
		return c.SetMetric(m)
	}
	if s, ok := keySelectors[key]; ok {
		return c.SetSelector(s)
	}
	return false
}

// Refresh rebuilds the tessellation if the config is dirty, clearing the flag.
// Otherwise current is handed back untouched. The bool reports whether a
// rebuild happened.
func (c *Config) Refresh(width, height int, sites SiteSet, current *Buffer) (*Buffer, bool) {
	if !c.dirty && current != nil {
		return current, false
	}
	buf := Rebuild(width, height, sites, c.metric, c.selector)
	c.dirty = false
	return buf, true
}
