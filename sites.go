package tessellate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

const (
	// reference configuration
	DefaultSiteCount = 40
	DefaultWidth     = 1024
	DefaultHeight    = 1024

	// how many random candidates Fill tries per site before giving up
	maxAttempts = 100
)

var (
	// ErrCannotPlaceSites implies the configured filters reject too many candidates
	// to place the requested number of sites.
	ErrCannotPlaceSites = fmt.Errorf("failed to place requested number of sites")
)

// CandidateFilter accepts or rejects a candidate position based purely on the
// position itself. These run before SiteFilter(s).
type CandidateFilter func(candidate Point) bool

// SiteFilter compares a candidate position to an already placed site.
// The candidate must be accepted when compared with every placed site.
type SiteFilter func(candidate Point, site *Site) bool

// MinDistance ensures a candidate is at least dist away from every other site
// under the given metric.
func MinDistance(metric Metric, dist float64) SiteFilter {
	return func(candidate Point, site *Site) bool {
		return metric.Distance(candidate, site.Position) >= dist
	}
}

// GenerateSites returns count sites with positions drawn uniformly from
// [0, xRange) x [0, yRange) and opaque colours with r, g, b drawn uniformly
// from [0, 1).
func GenerateSites(count int, xRange, yRange float64, rng *rand.Rand) SiteSet {
	out := make(SiteSet, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, randomSite(rng, xRange, yRange))
	}
	return out
}

// randomSite draws position first (x then y) then colour (r, g, b)
func randomSite(rng *rand.Rand, xRange, yRange float64) *Site {
	pos := Pt(rng.Float64()*xRange, rng.Float64()*yRange)
	return &Site{
		Position: pos,
		Color:    Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64(), A: 1},
	}
}

// SiteBuilder makes it easier to lay out sites with some structure,
// ie. keeping sites apart from each other.
type SiteBuilder struct {
	xRange float64
	yRange float64
	sites  SiteSet
	rng    *rand.Rand
	sfilt  []SiteFilter
	cfilt  []CandidateFilter
}

// NewSiteBuilder returns a builder placing sites within [0, xRange) x [0, yRange)
func NewSiteBuilder(xRange, yRange float64) *SiteBuilder {
	return &SiteBuilder{
		xRange: xRange,
		yRange: yRange,
		sites:  SiteSet{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed sets our internal RNG seed
func (b *SiteBuilder) SetSeed(seed int64) {
	b.rng = rand.New(rand.NewSource(seed))
}

// SetCandidateFilters sets filters that accept / reject a proposed site without
// reference to other currently placed site(s).
func (b *SiteBuilder) SetCandidateFilters(f ...CandidateFilter) {
	b.cfilt = f
}

// SetSiteFilters sets filters that compare proposed sites to all current sites.
func (b *SiteBuilder) SetSiteFilters(f ...SiteFilter) {
	b.sfilt = f
}

// SiteCount returns how many sites we've currently got
func (b *SiteBuilder) SiteCount() int {
	return len(b.sites)
}

// AddSite places a site, assuming it obeys currently set filters.
func (b *SiteBuilder) AddSite(s *Site) (int, bool) {
	if !b.accepted(s.Position) {
		return 0, false
	}
	return b.addSite(s), true
}

// AddRandomSite places a random site, assuming it obeys all currently set filters.
func (b *SiteBuilder) AddRandomSite() (int, bool) {
	return b.AddSite(randomSite(b.rng, b.xRange, b.yRange))
}

// Fill adds random sites until there are count of them.
func (b *SiteBuilder) Fill(count int) error {
	for attempts := 0; len(b.sites) < count; attempts++ {
		if attempts >= maxAttempts*count {
			return errors.Wrapf(ErrCannotPlaceSites, "placed %d of %d", len(b.sites), count)
		}
		b.AddRandomSite()
	}
	return nil
}

// Sites returns a copy of the placed sites. Site values themselves are
// shared and must be treated as read only.
func (b *SiteBuilder) Sites() SiteSet {
	out := make(SiteSet, len(b.sites))
	copy(out, b.sites)
	return out
}

// accepted returns if the proposed site location is acceptable to our filters.
// CandidateFilter(s) run first so we can hopefully reject candidates early.
func (b *SiteBuilder) accepted(candidate Point) bool {
	for _, fn := range b.cfilt {
		if !fn(candidate) {
			return false
		}
	}

	for _, s := range b.sites {
		for _, fn := range b.sfilt {
			if !fn(candidate, s) {
				return false
			}
		}
	}

	return true
}

// addSite adds a site, no filters are run.
func (b *SiteBuilder) addSite(s *Site) int {
	id := len(b.sites)
	b.sites = append(b.sites, s)
	return id
}
