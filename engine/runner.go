package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/alive/clock"
	"github.com/lixenwraith/alive/core"
	"github.com/lixenwraith/alive/input"
)

// Runner drives one Engine on its own goroutine at a fixed frame interval
// Input is queued through Submit; readers see only complete snapshots via Snapshot
type Runner struct {
	eng      *Engine
	clk      clock.Clock
	interval time.Duration

	events  chan input.Event
	control chan func(*Engine)
	frames  chan struct{}
	batch   []input.Event

	snap    atomic.Pointer[Snapshot]
	dropped atomic.Int64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statDropped *atomic.Int64
}

// NewRunner wraps eng; interval and buffer fall back to the defaults when not positive
func NewRunner(eng *Engine, clk clock.Clock, interval time.Duration, buffer int) *Runner {
	def := DefaultConfig()
	if interval <= 0 {
		interval = def.FrameInterval
	}
	if buffer <= 0 {
		buffer = def.EventBuffer
	}
	if clk == nil {
		clk = clock.Real{}
	}
	r := &Runner{
		eng:         eng,
		clk:         clk,
		interval:    interval,
		events:      make(chan input.Event, buffer),
		control:     make(chan func(*Engine), 16),
		frames:      make(chan struct{}, 1),
		batch:       make([]input.Event, 0, buffer),
		stopChan:    make(chan struct{}),
		statDropped: eng.Status().Ints.Get("input.dropped"),
	}
	last := eng.Last()
	r.snap.Store(&last)
	return r
}

// Submit queues ev for the next tick, stamping it with the current time if unset
// Returns false and counts a drop when the queue is full
func (r *Runner) Submit(ev input.Event) bool {
	if ev.Time.IsZero() {
		ev.Time = r.clk.Now()
	}
	select {
	case r.events <- ev:
		return true
	default:
		r.dropped.Add(1)
		r.statDropped.Add(1)
		return false
	}
}

// Do runs fn on the engine goroutine before the next tick
// Blocks while the control queue is full; dropped after Stop
func (r *Runner) Do(fn func(*Engine)) {
	select {
	case r.control <- fn:
	case <-r.stopChan:
	}
}

// Snapshot returns the latest complete snapshot
func (r *Runner) Snapshot() *Snapshot {
	return r.snap.Load()
}

// Frames signals after each published snapshot, coalescing when the reader lags
func (r *Runner) Frames() <-chan struct{} {
	return r.frames
}

// Dropped returns the number of events rejected by Submit
func (r *Runner) Dropped() int64 {
	return r.dropped.Load()
}

// Start launches the frame loop, later calls are no-ops
func (r *Runner) Start() {
	select {
	case <-r.stopChan:
		return
	default:
	}
	if r.running.CompareAndSwap(false, true) {
		r.wg.Add(1)
		core.Go(r.loop)
	}
}

// Stop halts the loop and closes the engine, safe to call repeatedly
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
		r.wg.Wait()
		r.eng.Close()
		log.Printf("engine: runner stopped, %d events dropped", r.dropped.Load())
	})
}

func (r *Runner) loop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	last := r.clk.Now()

	for {
		select {
		case <-r.stopChan:
			return
		case fn := <-r.control:
			fn(r.eng)
		case <-ticker.C:
			now := r.clk.Now()
			r.step(now, now.Sub(last))
			last = now
		}
	}
}

// step drains queued events into one tick and publishes the result
func (r *Runner) step(now time.Time, dt time.Duration) {
	r.batch = r.batch[:0]
drain:
	for len(r.batch) < cap(r.batch) {
		select {
		case ev := <-r.events:
			r.batch = append(r.batch, ev)
		default:
			break drain
		}
	}

	snap := r.eng.Tick(Frame{Now: now, DT: dt, Events: r.batch})
	r.snap.Store(&snap)

	select {
	case r.frames <- struct{}{}:
	default:
	}
}
