package sim

import (
	"math/rand"

	"github.com/Garsondee/Pixel-Hunt/internal/config"
)

// DefaultStepMs is one 60 Hz display refresh.
const DefaultStepMs = 1000.0 / 60.0

// TestSim is a headless session harness for tests and batch reports. It
// drives a Session with a StepScheduler and CPU rasters, with deterministic
// seeding and structured logging.
type TestSim struct {
	Session *Session
	Sched   *StepScheduler
	Canvas  *Raster
	SimLog  *SimLog
	Now     float64 // timestamp of the last stepped frame, ms

	cfg     config.Config
	rng     *rand.Rand
	assets  Assets
	targets []TargetSpec
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // config, seed, verbose, assets: applied first
	simOptTarget                      // seeded targets: applied after the session exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg config.Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg = cfg
	}}
}

// WithCanvas sets the canvas dimensions and re-centres the retry button.
func WithCanvas(w, h int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.CanvasWidth = w
		ts.cfg.CanvasHeight = h
		ts.cfg.RetryButton = config.DefaultRetryButton(w, h)
	}}
}

// WithSpawnInterval sets the spawn interval in ms.
func WithSpawnInterval(ms float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.SpawnInterval = ms
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithVerbose enables per-frame population logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithSimAssets sets sheets and sounds for the session.
func WithSimAssets(a Assets) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.assets = a
	}}
}

// WithTarget seeds a target with fixed attributes.
func WithTarget(spec TargetSpec) SimOption {
	return SimOption{simOptTarget, func(ts *TestSim) {
		ts.targets = append(ts.targets, spec)
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (config, seed, verbose, assets)
//  2. Session construction and Start
//  3. Seeded targets
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg:    config.Default(),
		SimLog: NewSimLog(false),
		rng:    rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
		Sched:  &StepScheduler{},
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.Canvas = NewRaster(ts.cfg.CanvasWidth, ts.cfg.CanvasHeight, nil)
	ts.Session = NewSession(ts.cfg, ts.Canvas, ts.Sched,
		WithRand(ts.rng), WithLog(ts.SimLog), WithAssets(ts.assets))
	ts.Session.Start()
	for _, o := range opts {
		if o.kind == simOptTarget {
			o.fn(ts)
		}
	}
	for _, spec := range ts.targets {
		ts.Session.SpawnTarget(spec)
	}
	return ts
}

// Step runs one pending frame stepMs after the previous one. It returns
// false once the session has stopped requesting frames.
func (ts *TestSim) Step(stepMs float64) bool {
	if !ts.Sched.Pending() {
		return false
	}
	ts.Now += stepMs
	return ts.Sched.Step(ts.Now)
}

// RunFrames steps up to n frames, stopping early if the session ends.
// It returns the number of frames actually run.
func (ts *TestSim) RunFrames(n int, stepMs float64) int {
	ran := 0
	for ran < n && ts.Step(stepMs) {
		ran++
	}
	return ran
}

// Click forwards a click to the session.
func (ts *TestSim) Click(x, y float64) bool {
	return ts.Session.Click(x, y)
}

// ClickTarget clicks the centre of t's last drawn rectangle.
func (ts *TestSim) ClickTarget(t *Target) bool {
	x, y := t.Center()
	return ts.Session.Click(x, y)
}
