package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/alive/input"
	"github.com/lixenwraith/alive/status"
)

// metrics caches registry pointers so the tick loop only does atomic stores
type metrics struct {
	frames    *atomic.Int64
	clicks    *atomic.Int64
	rapid     *atomic.Int64
	sequences *atomic.Int64
	keys      *atomic.Int64
	particles *atomic.Int64

	energy    *status.AtomicFloat
	happiness *status.AtomicFloat
	chaos     *status.AtomicFloat
	attention *status.AtomicFloat
	mood      *status.AtomicString
	phrase    *status.AtomicString

	screensaver *atomic.Bool
	chaosOn     *atomic.Bool
	gravityOn   *atomic.Bool
	glitchOn    *atomic.Bool
}

func newMetrics(reg *status.Registry) *metrics {
	return &metrics{
		frames:      reg.Ints.Get("engine.frames"),
		clicks:      reg.Ints.Get("input.clicks"),
		rapid:       reg.Ints.Get("input.rapid"),
		sequences:   reg.Ints.Get("input.sequences"),
		keys:        reg.Ints.Get("input.keys"),
		particles:   reg.Ints.Get("physics.particles"),
		energy:      reg.Floats.Get("mood.energy"),
		happiness:   reg.Floats.Get("mood.happiness"),
		chaos:       reg.Floats.Get("mood.chaos"),
		attention:   reg.Floats.Get("mood.attention"),
		mood:        reg.Strings.Get("mood.current"),
		phrase:      reg.Strings.Get("mood.phrase"),
		screensaver: reg.Bools.Get("mode.screensaver"),
		chaosOn:     reg.Bools.Get("mode.chaos"),
		gravityOn:   reg.Bools.Get("mode.gravity"),
		glitchOn:    reg.Bools.Get("mode.glitch"),
	}
}

func (m *metrics) countSignal(kind input.SignalKind) {
	switch kind {
	case input.SignalClick:
		m.clicks.Add(1)
	case input.SignalRapidClick:
		m.rapid.Add(1)
	case input.SignalSequenceMatched:
		m.sequences.Add(1)
	case input.SignalKey:
		m.keys.Add(1)
	}
}

func (m *metrics) publish(s *Snapshot) {
	m.frames.Store(int64(s.Frame))
	m.particles.Store(int64(len(s.Gravity) + len(s.Sparks) + len(s.Swarm)))
	m.energy.Store(s.Mood.Energy)
	m.happiness.Store(s.Mood.Happiness)
	m.chaos.Store(s.Mood.Chaos)
	m.attention.Store(s.Mood.Attention)
	m.mood.Store(string(s.Mood.Mood))
	m.phrase.Store(s.Phrase)
	m.screensaver.Store(s.Flags.Screensaver)
	m.chaosOn.Store(s.Flags.Chaos)
	m.gravityOn.Store(s.Flags.Gravity)
	m.glitchOn.Store(s.Flags.Glitch)
}
