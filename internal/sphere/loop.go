package sphere

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/iburimskiy/neural-sphere/internal/config"
	"github.com/iburimskiy/neural-sphere/internal/logging"
)

// State of the animation loop.
type State uint32

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Config holds the simulation constants.
type Config struct {
	ParticleCount int
	SphereRadius  float64
	FocalDistance float64
	RotationSpeed float64
	Linker        Linker
}

func DefaultConfig() Config {
	return Config{
		ParticleCount: config.ParticleCount,
		SphereRadius:  config.SphereRadius,
		FocalDistance: config.FocalDistance,
		RotationSpeed: config.RotationSpeed,
		Linker:        NewLinker(),
	}
}

// Stats are counters for the HUD and for tests. They are written by Frame and
// must be read on the goroutine that renders, or after Run has returned.
type Stats struct {
	Frames    uint64 // frames drawn
	Skipped   uint64 // frames skipped because the surface had no area
	LastEdges int
}

// Loop drives the sphere: rotate, project, draw edges, draw nodes.
type Loop struct {
	cfg  Config
	ctrl *SurfaceController
	rng  *rand.Rand
	log  *logging.Logger

	state atomic.Uint32

	points    []*Point
	projected []Projected
	stats     Stats
}

// NewLoop builds an idle loop. rng places the particles; a nil rng is seeded
// from the current time, so pass one explicitly for reproducible layouts.
func NewLoop(ctrl *SurfaceController, cfg Config, rng *rand.Rand, log *logging.Logger) *Loop {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Loop{cfg: cfg, ctrl: ctrl, rng: rng, log: log}
}

func (l *Loop) State() State { return State(l.state.Load()) }

// Start builds the particle pool and moves the loop to Running. It does
// nothing if the loop was already started or stopped.
func (l *Loop) Start() {
	if !l.state.CompareAndSwap(uint32(Idle), uint32(Running)) {
		return
	}
	l.points = make([]*Point, 0, l.cfg.ParticleCount)
	for i := 0; i < l.cfg.ParticleCount; i++ {
		l.points = append(l.points, NewPoint(l.rng, l.cfg.SphereRadius))
	}
	l.projected = make([]Projected, 0, len(l.points))
	w, h := l.ctrl.Dimensions()
	l.log.Infof("started: %d particles on %.0fx%.0f", len(l.points), w, h)
}

// Stop ends the loop and detaches the controller. Safe to call from any
// goroutine; it only touches atomic state. A frame already in progress
// finishes, and Run returns before the next one.
func (l *Loop) Stop() {
	if State(l.state.Swap(uint32(Stopped))) == Stopped {
		return
	}
	l.ctrl.Detach()
	l.log.Debugf("stop requested")
}

// Frame renders one frame onto s. A nil surface or an empty view draws
// nothing; an empty view still advances the rotation.
func (l *Loop) Frame(s Surface) {
	if l.State() != Running || s == nil {
		return
	}
	v := l.ctrl.View()

	ax := l.cfg.RotationSpeed + v.MouseY
	ay := l.cfg.RotationSpeed + v.MouseX
	for _, p := range l.points {
		p.Rotate(ax, ay)
	}

	if v.Empty() {
		l.stats.Skipped++
		return
	}

	pr := Projector{Width: v.Width, Height: v.Height, Focal: l.cfg.FocalDistance}
	l.projected = pr.ProjectAll(l.projected, l.points)

	pal := PaletteFor(v.Theme)
	s.Clear(pal.Background)
	l.stats.LastEdges = l.cfg.Linker.Draw(s, l.projected)
	drawNodes(s, pal, l.projected)
	l.stats.Frames++
}

// Run starts the loop and renders one frame per clock tick until Stop, the
// clock runs out or ctx is cancelled. Only cancellation is reported as an
// error.
func (l *Loop) Run(ctx context.Context, clock FrameClock, s Surface) error {
	if s == nil {
		return nil
	}
	l.Start()
	for l.State() == Running {
		if err := clock.Wait(ctx); err != nil {
			if errors.Is(err, ErrClockDone) {
				return nil
			}
			return err
		}
		l.Frame(s)
	}
	return nil
}

// Points returns copies of the current particle positions.
func (l *Loop) Points() []Point {
	out := make([]Point, len(l.points))
	for i, p := range l.points {
		out[i] = *p
	}
	return out
}

func (l *Loop) Stats() Stats { return l.stats }
