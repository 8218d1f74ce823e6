package cubescan

import (
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubescan/internal/classify"
	"github.com/SeamusWaldron/cubescan/internal/correct"
	"github.com/SeamusWaldron/cubescan/internal/cube"
	"github.com/SeamusWaldron/cubescan/internal/sampler"
	"github.com/SeamusWaldron/cubescan/internal/score"
	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// CaptureContext tells the scanner which face a frame shows.
type CaptureContext struct {
	// FaceIndex is the position in the capture sequence:
	// 0 front, 1 back, 2 up, 3 down, 4 right, 5 left.
	FaceIndex int
	// Mirrored is set for selfie-style frames whose columns are reversed.
	Mirrored bool
}

// Capture is the result of scanning one face.
type Capture struct {
	ID     string
	Face   Face
	Grid   FaceGrid
	Region image.Rectangle

	// Cells holds the classifier output per facelet, before correction.
	Cells [3][3]classify.Result
	// Valid is the number of facelets detected above the confidence floor.
	Valid       int
	Score       float64
	Corrections []correct.Change
	// Warnings counts colour distributions the corrector could not repair.
	Warnings     int
	LowDiversity bool
	Elapsed      time.Duration
}

// Accepted reports whether the capture scored at least minScore.
func (c *Capture) Accepted(minScore float64) bool {
	return c.Score >= minScore
}

// Scanner turns frames into face grids. A Scanner runs one scan at a time;
// a call made while another is in flight fails with ErrBusy.
type Scanner struct {
	logger         *log.Logger
	detector       Detector
	classifier     *classify.Classifier
	sampler        sampler.Options
	regionFraction float64
	throttle       *Throttle

	busy atomic.Bool
}

// NewScanner creates a scanner.
func NewScanner(opts ...Option) *Scanner {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := classify.New()
	c.Floor = cfg.floor
	if cfg.references != nil {
		c.References = cfg.references
	}

	return &Scanner{
		logger:         cfg.logger,
		detector:       cfg.detector,
		classifier:     c,
		sampler:        cfg.sampler,
		regionFraction: cfg.regionFraction,
		throttle:       cfg.throttle,
	}
}

// Floor returns the confidence floor used for validity.
func (s *Scanner) Floor() float64 {
	return s.classifier.Floor
}

// ScanFace samples and classifies the nine facelets of the face in frame.
func (s *Scanner) ScanFace(frame image.Image, cc CaptureContext) (*Capture, error) {
	face, err := types.FaceForCapture(cc.FaceIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFaceIndex, cc.FaceIndex)
	}
	if frame == nil {
		return nil, ErrNoFrame
	}

	if !s.busy.CompareAndSwap(false, true) {
		s.logger.Debug("frame dropped", "face", face.Name())
		return nil, ErrBusy
	}
	defer s.busy.Store(false)

	start := time.Now()
	if s.throttle != nil {
		defer func() { s.throttle.Observe(time.Since(start)) }()
	}

	region := s.region(frame)
	if region.Empty() {
		return nil, ErrNoRegion
	}

	capture := &Capture{
		ID:     uuid.NewString(),
		Face:   face,
		Region: region,
	}

	reader := sampler.FromImage(frame)
	size := min(region.Dx(), region.Dy()) / 3
	var labels [3][3]types.Color
	results := make([]classify.Result, 0, 9)

	for row := range 3 {
		for col := range 3 {
			src := col
			if cc.Mirrored {
				src = 2 - col
			}
			center := image.Pt(
				region.Min.X+src*size+size/2,
				region.Min.Y+row*size+size/2,
			)

			var res classify.Result
			if rgb, ok := sampler.Sample(reader, center, size, s.sampler); ok {
				res = s.classifier.Classify(rgb)
			}
			capture.Cells[row][col] = res
			results = append(results, res)

			if s.classifier.Valid(res) {
				labels[row][col] = res.Label
				capture.Valid++
			}
		}
	}

	corrected, changes := correct.Correct(labels)
	capture.Grid = cube.NewFaceGrid(face, corrected)
	capture.Corrections = changes
	capture.Warnings = correct.Inconsistencies(corrected)
	capture.Score = score.Alignment(results, s.classifier.Floor)
	capture.LowDiversity = score.LowDiversity(results, s.classifier.Floor)
	capture.Elapsed = time.Since(start)

	s.logger.Debug("face scanned",
		"face", face.Name(),
		"score", fmt.Sprintf("%.1f", capture.Score),
		"valid", capture.Valid,
		"elapsed", capture.Elapsed,
	)
	if len(changes) > 0 {
		s.logger.Warn("grid corrected", "face", face.Name(), "changes", len(changes))
	}
	if capture.Warnings > 0 {
		s.logger.Warn("implausible colour distribution", "face", face.Name(), "count", capture.Warnings)
	}

	return capture, nil
}

// region returns the face square: the detector's if it finds one, otherwise
// a centred square, clipped to the frame.
func (s *Scanner) region(frame image.Image) image.Rectangle {
	bounds := frame.Bounds()
	if s.detector != nil && s.detector.Available() {
		if r, ok := s.detector.Detect(frame); ok {
			return r.Intersect(bounds)
		}
	}
	return centeredSquare(bounds, s.regionFraction)
}

// Merge adds the capture's grid to state, replacing any earlier capture of
// the same face.
func (c *Capture) Merge(state State) State {
	return state.With(c.Grid)
}
