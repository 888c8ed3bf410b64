package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/alive/clock"
	"github.com/lixenwraith/alive/event"
	"github.com/lixenwraith/alive/input"
	"github.com/lixenwraith/alive/mode"
	"github.com/lixenwraith/alive/personality"
	"github.com/lixenwraith/alive/physics"
	"github.com/lixenwraith/alive/status"
	"github.com/lixenwraith/alive/vmath"
)

// Engine runs the ordered tick pipeline: arbiter, personality, mode, timers, physics
// Not safe for concurrent use; Runner owns it on a single goroutine
type Engine struct {
	cfg  Config
	rng  *vmath.FastRand
	sink event.Sink

	arbiter *input.Arbiter
	mood    *personality.Engine
	sched   *clock.Scheduler
	modes   *mode.Controller

	gravity *physics.Simulator
	sparks  *physics.Simulator
	swarm   *physics.Simulator

	viewport   vmath.Rect
	target     vmath.Rect
	pointer    vmath.Vec2F
	hasPointer bool

	frame        uint64
	clickOrdinal int
	phrase       string
	flags        mode.Flags

	signals []input.Signal
	pending []event.Effect
	last    Snapshot
	closed  bool

	reg  *status.Registry
	stat *metrics
}

// Option customizes engine construction
type Option func(*options)

type options struct {
	start  time.Time
	status *status.Registry
}

// WithStart sets the engine's initial time, defaults to time.Now
func WithStart(t time.Time) Option {
	return func(o *options) { o.start = t }
}

// WithStatus publishes metrics into reg instead of a private registry
func WithStatus(reg *status.Registry) Option {
	return func(o *options) { o.status = reg }
}

// New builds an engine delivering effects to sink after each tick
func New(cfg Config, sink event.Sink, opts ...Option) *Engine {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.start.IsZero() {
		o.start = time.Now()
	}
	if o.status == nil {
		o.status = status.NewRegistry()
	}
	if sink == nil {
		sink = event.Discard
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(o.start.UnixNano())
	}
	rng := vmath.NewFastRand(seed)

	e := &Engine{
		cfg:          cfg,
		rng:          rng,
		sink:         sink,
		arbiter:      input.NewArbiter(cfg.Input),
		sched:        clock.NewScheduler(),
		viewport:     vmath.Rect{MaxX: cfg.Width, MaxY: cfg.Height},
		clickOrdinal: -1,
		reg:          o.status,
		stat:         newMetrics(o.status),
	}
	e.mood = personality.NewEngine(cfg.Personality, rng, o.start)
	e.modes = mode.NewController(cfg.Mode, e.sched, event.SinkFunc(e.buffer), o.start)
	e.sched.Every(o.start, e.mood.TickInterval(), func(now time.Time) { e.mood.Tick(now) })

	e.gravity = physics.NewSimulator(cfg.Gravity, e.viewport, rng)
	e.sparks = physics.NewSimulator(cfg.Sparks, e.viewport, rng)
	e.swarm = physics.NewSimulator(cfg.Swarm, e.viewport, rng)

	e.last = e.snapshot(o.start)
	return e
}

func (e *Engine) buffer(ef event.Effect) {
	e.pending = append(e.pending, ef)
}

// Status returns the registry the engine publishes into
func (e *Engine) Status() *status.Registry { return e.reg }

// Last returns the most recent complete snapshot
func (e *Engine) Last() Snapshot { return e.last }

// SetViewport resizes the physics bounds in pixel units
func (e *Engine) SetViewport(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	e.viewport = vmath.Rect{MaxX: w, MaxY: h}
	e.gravity.SetBounds(e.viewport)
	e.sparks.SetBounds(e.viewport)
	e.swarm.SetBounds(e.viewport)
}

// SetTarget sets the character's hit box for pointer-derived hover
// An empty rect disables derivation
func (e *Engine) SetTarget(r vmath.Rect) {
	e.target = r
	if r.Empty() {
		e.arbiter.ClearTarget()
		return
	}
	e.arbiter.SetTarget(r)
}

// Tick runs one full pipeline pass and returns the published snapshot
// After Close it returns the last snapshot unchanged
func (e *Engine) Tick(f Frame) Snapshot {
	if e.closed {
		return e.last
	}
	now := f.Now

	// 1. Arbitrate raw events into signals
	e.signals = e.signals[:0]
	for _, ev := range f.Events {
		if ev.Time.IsZero() {
			ev.Time = now
		}
		if ev.Kind == input.EventPointer {
			e.pointer = vmath.Vec2F{X: ev.X, Y: ev.Y}
			e.hasPointer = true
			e.sparks.MaybeEmit(e.pointer)
		}
		e.signals = append(e.signals, e.arbiter.Handle(ev)...)
	}

	// 2. Mood deltas
	for _, sig := range e.signals {
		e.stat.countSignal(sig.Kind)
		if sig.Kind == input.SignalClick {
			e.clickOrdinal = sig.Ordinal
		}
		if in, ok := interactionFor(sig.Kind); ok {
			e.mood.Apply(sig.Time, in)
		}
	}

	// 3. Mode transitions
	for _, sig := range e.signals {
		e.modes.Handle(sig.Time, sig)
	}

	// 4. Timers: mood decay, mode checks, overlay expiry, speech sequence
	e.sched.Run(now)
	e.applyOverlays(now)

	// 5. Physics
	dt := f.DT.Seconds() * physics.ReferenceFPS
	if e.flags.Gravity {
		att := e.attractor()
		e.gravity.Step(dt, &att)
	}
	e.sparks.Step(dt, nil)
	if e.flags.Screensaver {
		e.swarm.Step(dt, nil)
	}

	e.frame++
	for _, ef := range e.pending {
		if ef.IsSpeech() {
			e.phrase = personality.Phrase(e.mood.Mood(), e.rng)
		}
	}
	snap := e.snapshot(now)
	e.last = snap
	e.stat.publish(&snap)

	e.flush()
	return snap
}

// applyOverlays reacts to flag edges by seeding or clearing the overlay simulations
func (e *Engine) applyOverlays(now time.Time) {
	next := e.modes.Flags()
	for _, tr := range mode.Diff(e.flags, next, now) {
		log.Printf("engine: overlay %s on=%v", tr.Overlay, tr.On)
		switch tr.Overlay {
		case "gravity":
			if tr.On {
				e.gravity.Reseed()
			} else {
				e.gravity.Clear()
			}
		case "screensaver":
			if tr.On {
				e.swarm.Reseed()
			} else {
				e.swarm.Clear()
			}
		}
	}
	e.flags = next
}

func (e *Engine) attractor() vmath.Vec2F {
	switch {
	case e.hasPointer:
		return e.pointer
	case !e.target.Empty():
		return e.target.Center()
	default:
		return e.viewport.Center()
	}
}

func (e *Engine) flush() {
	if len(e.pending) == 0 {
		return
	}
	for _, ef := range e.pending {
		e.sink.Trigger(ef)
	}
	e.pending = e.pending[:0]
}

func (e *Engine) snapshot(now time.Time) Snapshot {
	ms := e.mood.Snapshot()
	s := Snapshot{
		Frame:        e.frame,
		Time:         now,
		Mood:         ms,
		Styles:       personality.Styles(ms.Mood),
		Flags:        e.flags,
		ClickOrdinal: e.clickOrdinal,
		Hovered:      e.arbiter.Hovered(),
		Phrase:       e.phrase,
		Gravity:      e.gravity.Snapshot(nil),
		Sparks:       e.sparks.Snapshot(nil),
		Swarm:        e.swarm.Snapshot(nil),
		Pointer:      e.pointer,
		HasPointer:   e.hasPointer,
		Viewport:     e.viewport,
		Target:       e.target,
	}
	if len(e.pending) > 0 {
		s.Effects = append([]event.Effect(nil), e.pending...)
	}
	return s
}

// Close cancels every scheduled task; later ticks return the last snapshot
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.modes.Close()
	e.sched.CancelAll()
	e.pending = e.pending[:0]
}

func interactionFor(kind input.SignalKind) (personality.Interaction, bool) {
	switch kind {
	case input.SignalHover:
		return personality.InteractionHover, true
	case input.SignalClick:
		return personality.InteractionClick, true
	case input.SignalRapidClick:
		return personality.InteractionRapidClick, true
	case input.SignalFaceDetected:
		return personality.InteractionFace, true
	case input.SignalSmileDetected:
		return personality.InteractionSmile, true
	}
	return 0, false
}
