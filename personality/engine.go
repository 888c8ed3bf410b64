package personality

import (
	"math"
	"time"

	"github.com/lixenwraith/alive/vmath"
)

// Engine owns the MoodVector, mutated only through ApplyDelta and Tick
// Not safe for concurrent use
type Engine struct {
	cfg Config
	rng *vmath.FastRand

	vec             MoodVector
	lastInteraction time.Time
}

// NewEngine creates an engine at cfg.Initial. rng drives the drift, nil disables it
func NewEngine(cfg Config, rng *vmath.FastRand, now time.Time) *Engine {
	return &Engine{
		cfg:             cfg,
		rng:             rng,
		vec:             cfg.Initial.Clamped(),
		lastInteraction: now,
	}
}

// ApplyDelta adds d to the vector, clamps and records the interaction time
// Non-finite delta components are ignored
func (e *Engine) ApplyDelta(now time.Time, d Delta) Mood {
	e.vec = e.add(d)
	e.lastInteraction = now
	return Derive(e.vec)
}

// Apply applies the configured bundle for an interaction
func (e *Engine) Apply(now time.Time, i Interaction) Mood {
	return e.ApplyDelta(now, e.cfg.Bundles.For(i))
}

func (e *Engine) add(d Delta) MoodVector {
	v := e.vec
	v.Energy = step(v.Energy, d.Energy)
	v.Happiness = step(v.Happiness, d.Happiness)
	v.Chaos = step(v.Chaos, d.Chaos)
	v.Attention = step(v.Attention, d.Attention)
	return v
}

func step(v, delta float64) float64 {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return v
	}
	return vmath.Clamp(v+delta, MinValue, MaxValue)
}

// Tick runs one passive decay period. Returns true if the vector changed
func (e *Engine) Tick(now time.Time) bool {
	before := e.vec

	if now.Sub(e.lastInteraction) > e.cfg.IdleThreshold {
		e.vec.Energy = vmath.Approach(e.vec.Energy, e.cfg.Baseline, e.cfg.EnergyDecay, true)
		e.vec.Happiness = vmath.Approach(e.vec.Happiness, e.cfg.Baseline, e.cfg.HappinessDecay, true)
		e.vec.Chaos = vmath.Approach(e.vec.Chaos, MinValue, e.cfg.ChaosDecay, true)
		e.vec.Attention = vmath.Approach(e.vec.Attention, e.cfg.AttentionFloor, e.cfg.AttentionDecay, true)
	}

	// Ambient restlessness, independent of idle time and not an interaction
	if e.rng != nil && e.rng.Chance(e.cfg.DriftChance) {
		e.vec = e.add(Delta{
			Energy:    e.rng.Range(-e.cfg.DriftEnergy, e.cfg.DriftEnergy),
			Happiness: e.rng.Range(-e.cfg.DriftHappiness, e.cfg.DriftHappiness),
			Chaos:     e.rng.Range(-e.cfg.DriftChaos, e.cfg.DriftChaos),
			Attention: e.rng.Range(-e.cfg.DriftAttention, e.cfg.DriftAttention),
		})
	}

	return e.vec != before
}

// Vector returns the current mood vector
func (e *Engine) Vector() MoodVector {
	return e.vec
}

// Mood returns the categorical mood derived from the current vector
func (e *Engine) Mood() Mood {
	return Derive(e.vec)
}

// LastInteraction returns the time of the most recent applied delta
func (e *Engine) LastInteraction() time.Time {
	return e.lastInteraction
}

// TickInterval returns the configured decay period
func (e *Engine) TickInterval() time.Duration {
	if e.cfg.TickInterval <= 0 {
		return time.Second
	}
	return e.cfg.TickInterval
}

// Set overrides the vector, clamped. Does not count as an interaction
func (e *Engine) Set(v MoodVector) {
	e.vec = v.Clamped()
}

// Snapshot returns the read-only mood view
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Mood:      Derive(e.vec),
		Energy:    e.vec.Energy,
		Happiness: e.vec.Happiness,
		Chaos:     e.vec.Chaos,
		Attention: e.vec.Attention,
	}
}
