package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/bouncers/bouncer"
	"github.com/lixenwraith/bouncers/core"
	"github.com/lixenwraith/bouncers/parameter"
	"github.com/lixenwraith/bouncers/status"
	"github.com/lixenwraith/bouncers/vmath"
)

// Config wires the loop to its collaborators
// Surface, Triggers and RNG are required; the rest fall back to no-ops
type Config struct {
	Surface   bouncer.Surface
	Bounds    core.Bounds
	RNG       *vmath.FastRand
	Triggers  Triggers
	Reporter  Reporter
	Presenter Presenter
	AddCue    Cue
	Metrics   *status.Registry
}

// Loop drives one frame at a time and exclusively owns the registry
// Not safe for concurrent use; the host calls Frame from a single goroutine
type Loop struct {
	registry  *bouncer.Registry
	bounds    core.Bounds
	rng       *vmath.FastRand
	triggers  Triggers
	reporter  Reporter
	presenter Presenter
	addCue    Cue
	frame     uint64

	// Cached metric pointers
	metricFrame     *atomic.Int64
	metricBouncers  *atomic.Int64
	metricCentroidX *status.AtomicFloat
	metricCentroidY *status.AtomicFloat
	metricReportVX  *status.AtomicFloat
}

// NewLoop creates the loop and inserts the distinguished bouncer
func NewLoop(cfg Config) *Loop {
	if cfg.Reporter == nil {
		cfg.Reporter = nopReporter{}
	}
	if cfg.Presenter == nil {
		cfg.Presenter = nopPresenter{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = status.NewRegistry()
	}

	l := &Loop{
		registry:  bouncer.NewRegistry(cfg.Surface),
		bounds:    cfg.Bounds,
		rng:       cfg.RNG,
		triggers:  cfg.Triggers,
		reporter:  cfg.Reporter,
		presenter: cfg.Presenter,
		addCue:    cfg.AddCue,

		metricFrame:     cfg.Metrics.Ints.Get(parameter.MetricFrame),
		metricBouncers:  cfg.Metrics.Ints.Get(parameter.MetricBouncers),
		metricCentroidX: cfg.Metrics.Floats.Get(parameter.MetricCentroidX),
		metricCentroidY: cfg.Metrics.Floats.Get(parameter.MetricCentroidY),
		metricReportVX:  cfg.Metrics.Floats.Get(parameter.MetricReportVX),
	}

	// Aggregate queries below assume the distinguished bouncer exists
	l.add()
	return l
}

// Frame runs one frame: triggers, physics, centroid override, present
func (l *Loop) Frame() {
	if l.triggers.AddRequested() {
		l.add()
	}

	if l.triggers.ReportRequested() {
		avg := l.registry.AverageVelocityX()
		l.reporter.Emit(parameter.LabelAverageX, avg)
		l.metricReportVX.SetFixed(avg)
	}

	for _, b := range l.registry.Others() {
		b.Update(l.bounds)
	}

	// Reads positions written by the physics pass above
	cx, cy := l.registry.Centroid()
	l.registry.Distinguished().OverridePosition(cx, cy)

	l.frame++
	l.metricFrame.Store(int64(l.frame))
	l.metricCentroidX.SetFixed(cx)
	l.metricCentroidY.SetFixed(cy)

	l.presenter.Present()
}

func (l *Loop) add() {
	l.rng.Advance()
	if !l.registry.Add(l.rng) {
		return
	}
	l.metricBouncers.Store(int64(l.registry.Len()))
	if l.addCue != nil {
		l.addCue.Play()
	}
}

// FrameNumber returns the number of completed frames
func (l *Loop) FrameNumber() uint64 {
	return l.frame
}

// Registry exposes the bouncer registry for read-only inspection
func (l *Loop) Registry() *bouncer.Registry {
	return l.registry
}

// Close releases every bouncer visual
func (l *Loop) Close() {
	l.registry.Close()
}
