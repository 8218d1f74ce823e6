package cubescan

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/cubescan/internal/classify"
	"github.com/SeamusWaldron/cubescan/internal/sampler"
)

// Option configures a Scanner.
type Option func(*config)

type config struct {
	logger         *log.Logger
	detector       Detector
	floor          float64
	sampler        sampler.Options
	regionFraction float64
	throttle       *Throttle
	references     []classify.Reference
}

// DefaultRegionFraction is the side of the fallback face square relative to
// the shorter frame side.
const DefaultRegionFraction = 0.6

func defaultConfig() *config {
	return &config{
		logger:         log.NewWithOptions(io.Discard, log.Options{}),
		detector:       InitDetector(DetectorCenter),
		floor:          classify.DefaultFloor,
		sampler:        sampler.DefaultOptions(),
		regionFraction: DefaultRegionFraction,
	}
}

// WithLogger sets the logger used for per-capture diagnostics.
// The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDetector sets the face region detector.
func WithDetector(d Detector) Option {
	return func(c *config) {
		c.detector = d
	}
}

// WithConfidenceFloor sets the confidence a facelet must exceed to count as
// detected. Values outside [0,1] are ignored.
func WithConfidenceFloor(floor float64) Option {
	return func(c *config) {
		if floor >= 0 && floor <= 1 {
			c.floor = floor
		}
	}
}

// WithSamplerOptions replaces the facelet sampler settings.
func WithSamplerOptions(opts sampler.Options) Option {
	return func(c *config) {
		c.sampler = opts
	}
}

// WithRegionFraction sets the fallback face square size used when the
// detector finds nothing. Values outside (0,1] are ignored.
func WithRegionFraction(f float64) Option {
	return func(c *config) {
		if f > 0 && f <= 1 {
			c.regionFraction = f
		}
	}
}

// WithThrottle feeds every scan duration to t.
func WithThrottle(t *Throttle) Option {
	return func(c *config) {
		c.throttle = t
	}
}

// WithReferences replaces the reference colour table of the
// nearest-reference classifier technique.
func WithReferences(refs []classify.Reference) Option {
	return func(c *config) {
		if len(refs) > 0 {
			c.references = refs
		}
	}
}
