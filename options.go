package tessellate

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidDimensions implies a grid with no area
	ErrInvalidDimensions = fmt.Errorf("grid width and height must be positive")

	// ErrNoSites implies a site count below one; classification needs at least one site
	ErrNoSites = fmt.Errorf("at least one site is required")

	// ErrUnknownColor is returned for colour names not in colornames.Map
	ErrUnknownColor = fmt.Errorf("unknown colour name")
)

// Options configures a tessellation run end to end. Everything here can be
// given in a yaml file (see LoadOptions) & most of it overridden by flags.
type Options struct {
	// grid size in cells, required
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Number of sites, placed at random once per run
	Sites int `yaml:"sites"`

	// Seed for site placement (random number chosen if not set)
	Seed int64 `yaml:"seed"`

	// MinSiteDistance keeps sites at least this far apart (euclidean).
	// 0 or less means no restriction.
	MinSiteDistance float64 `yaml:"min_site_distance"`

	// starting metric & selector
	Metric   Metric   `yaml:"metric"`
	Selector Selector `yaml:"selector"`

	// Output PNG path
	Output string `yaml:"output"`

	Render RenderSettings `yaml:"render"`
}

// RenderSettings is the file friendly version of RenderOptions,
// colours are given by name (see golang.org/x/image/colornames).
type RenderSettings struct {
	SiteRadius    float64 `yaml:"site_radius"`
	SiteColor     string  `yaml:"site_color"`
	Boundaries    bool    `yaml:"boundaries"`
	BoundaryColor string  `yaml:"boundary_color"`
	Overlay       bool    `yaml:"overlay"`
	OverlayColor  string  `yaml:"overlay_color"`
	OverlayWidth  float64 `yaml:"overlay_width"`
}

// DefaultOptions returns the reference configuration: 40 sites on a
// 1024 x 1024 grid, euclidean / nearest.
func DefaultOptions() *Options {
	return &Options{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Sites:    DefaultSiteCount,
		Metric:   Euclidean,
		Selector: Nearest,
		Output:   "tessellation.png",
		Render: RenderSettings{
			SiteRadius:    3,
			SiteColor:     "white",
			BoundaryColor: "black",
			OverlayColor:  "dimgray",
			OverlayWidth:  1,
		},
	}
}

// LoadOptions reads yaml options from fpath on top of DefaultOptions().
func LoadOptions(fpath string) (*Options, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, errors.Wrap(err, "reading options")
	}

	opts := DefaultOptions()
	err = yaml.Unmarshal(data, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing options %s", fpath)
	}

	return opts, opts.Validate()
}

// Validate checks the options describe something we can build.
// Metric & selector names are normalised (aliases, case) in place.
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "got %dx%d", o.Width, o.Height)
	}
	if o.Sites < 1 {
		return errors.Wrapf(ErrNoSites, "got %d", o.Sites)
	}

	m, err := ParseMetric(string(o.Metric))
	if err != nil {
		return err
	}
	o.Metric = m

	s, err := ParseSelector(string(o.Selector))
	if err != nil {
		return err
	}
	o.Selector = s

	_, err = o.Render.Options()
	return err
}

// Options converts the settings to RenderOptions, resolving colour names.
func (r RenderSettings) Options() (*RenderOptions, error) {
	opts := &RenderOptions{
		SiteRadius:   r.SiteRadius,
		Boundaries:   r.Boundaries,
		Overlay:      r.Overlay,
		OverlayWidth: r.OverlayWidth,
	}

	var err error
	opts.SiteColor, err = ParseColor(r.SiteColor)
	if err != nil {
		return nil, err
	}
	opts.BoundaryColor, err = ParseColor(r.BoundaryColor)
	if err != nil {
		return nil, err
	}
	opts.OverlayColor, err = ParseColor(r.OverlayColor)
	if err != nil {
		return nil, err
	}

	return opts, nil
}

// ParseColor returns the named colour, see golang.org/x/image/colornames.
func ParseColor(name string) (color.Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownColor, "%q", name)
	}
	return c, nil
}

// BuildSites places o.Sites sites within the grid according to the options.
// If no seed is set one is chosen & recorded in o.Seed.
func (o *Options) BuildSites() (SiteSet, error) {
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}

	b := NewSiteBuilder(float64(o.Width), float64(o.Height))
	b.SetSeed(o.Seed)
	if o.MinSiteDistance > 0 {
		b.SetSiteFilters(MinDistance(Euclidean, o.MinSiteDistance))
	}

	err := b.Fill(o.Sites)
	if err != nil {
		return nil, err
	}
	return b.Sites(), nil
}
