package tessellate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, Euclidean, c.Metric())
	assert.Equal(t, Nearest, c.Selector())
	assert.True(t, c.Dirty())
}

func TestConfigApplyKey(t *testing.T) {
	tests := []struct {
		key      rune
		metric   Metric
		selector Selector
	}{
		{'1', Euclidean, Nearest},
		{'2', Manhattan, Nearest},
		{'3', Minimal, Nearest},
		{'4', Chebyshev, Nearest},
		{'5', Octagonal, Nearest},
		{'r', Euclidean, Farthest},
		{'q', Euclidean, Nearest},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			c := NewConfig()
			c.dirty = false

			require.True(t, c.ApplyKey(tt.key))
			assert.Equal(t, tt.metric, c.Metric())
			assert.Equal(t, tt.selector, c.Selector())
			assert.True(t, c.Dirty())
		})
	}
}

func TestConfigApplyUnboundKey(t *testing.T) {
	c := NewConfig()
	c.dirty = false

	assert.False(t, c.ApplyKey('z'))
	assert.False(t, c.Dirty())
	assert.Equal(t, Euclidean, c.Metric())
}

func TestConfigSameValueStillDirty(t *testing.T) {
	c := NewConfig()
	c.dirty = false

	c.SetMetric(Euclidean)
	assert.True(t, c.Dirty())

	c.dirty = false
	c.SetSelector(Nearest)
	assert.True(t, c.Dirty())
}

func TestConfigRejectsUnknownValues(t *testing.T) {
	c := NewConfig()
	c.dirty = false

	assert.False(t, c.SetMetric(Metric("bogus")))
	assert.False(t, c.SetSelector(Selector("median")))
	assert.Equal(t, Euclidean, c.Metric())
	assert.Equal(t, Nearest, c.Selector())
	assert.False(t, c.Dirty())

	// still builds with the last good values
	c.dirty = true
	assert.NotPanics(t, func() {
		buf, rebuilt := c.Refresh(3, 3, redBlue(), nil)
		assert.True(t, rebuilt)
		assert.Equal(t, 9, buf.Len())
	})

	assert.True(t, c.SetMetric(Manhattan))
	assert.True(t, c.SetSelector(Farthest))
}

func TestConfigRefresh(t *testing.T) {
	sites := redBlue()
	c := NewConfig()

	buf, rebuilt := c.Refresh(11, 1, sites, nil)
	require.True(t, rebuilt)
	assert.False(t, c.Dirty())
	assert.Equal(t, 11, buf.Len())

	same, rebuilt := c.Refresh(11, 1, sites, buf)
	assert.False(t, rebuilt)
	assert.Same(t, buf, same)

	c.SetSelector(Farthest)
	next, rebuilt := c.Refresh(11, 1, sites, buf)
	require.True(t, rebuilt)
	assert.NotSame(t, buf, next)
	assert.False(t, c.Dirty())

	cell, _ := next.At(3, 0)
	assert.Equal(t, blue, cell.Color)
}

func TestConfigRefreshWithoutBuffer(t *testing.T) {
	c := NewConfig()
	c.dirty = false

	// nothing to hand back, so build regardless
	buf, rebuilt := c.Refresh(2, 2, redBlue(), nil)
	assert.True(t, rebuilt)
	assert.Equal(t, 4, buf.Len())
}
