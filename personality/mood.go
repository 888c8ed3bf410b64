// Package personality owns the glyph's continuous mood vector, the categorical
// mood derived from it and the passive decay that pulls it back to baseline.
package personality

import "github.com/lixenwraith/alive/vmath"

// Mood is the categorical mood derived from a MoodVector
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodExcited    Mood = "excited"
	MoodSleepy     Mood = "sleepy"
	MoodAngry      Mood = "angry"
	MoodMysterious Mood = "mysterious"
	MoodChaotic    Mood = "chaotic"
	MoodZen        Mood = "zen"
)

// AllMoods lists every mood in derivation priority order, zen last
var AllMoods = []Mood{MoodChaotic, MoodExcited, MoodHappy, MoodSleepy, MoodAngry, MoodMysterious, MoodZen}

// Component bounds
const (
	MinValue = 0.0
	MaxValue = 100.0
)

// MoodVector is the four-dimensional continuous state, every component in [0,100]
type MoodVector struct {
	Energy    float64 `yaml:"energy"`
	Happiness float64 `yaml:"happiness"`
	Chaos     float64 `yaml:"chaos"`
	Attention float64 `yaml:"attention"`
}

// Clamped returns v with every component forced into [0,100], NaN maps to the midpoint
func (v MoodVector) Clamped() MoodVector {
	return MoodVector{
		Energy:    vmath.ClampFinite(v.Energy, MinValue, MaxValue, 50),
		Happiness: vmath.ClampFinite(v.Happiness, MinValue, MaxValue, 50),
		Chaos:     vmath.ClampFinite(v.Chaos, MinValue, MaxValue, 50),
		Attention: vmath.ClampFinite(v.Attention, MinValue, MaxValue, 50),
	}
}

// Derive maps a mood vector to its categorical mood
// Priority ordered, first match wins
func Derive(v MoodVector) Mood {
	switch {
	case v.Chaos > 80:
		return MoodChaotic
	case v.Energy > 80 && v.Happiness > 70:
		return MoodExcited
	case v.Happiness > 70:
		return MoodHappy
	case v.Energy < 30:
		return MoodSleepy
	case v.Happiness < 30:
		return MoodAngry
	case v.Attention < 40:
		return MoodMysterious
	default:
		return MoodZen
	}
}

// Snapshot is the read-only mood view handed to renderers
type Snapshot struct {
	Mood      Mood
	Energy    float64
	Happiness float64
	Chaos     float64
	Attention float64
}

// Vector returns the continuous part of the snapshot
func (s Snapshot) Vector() MoodVector {
	return MoodVector{Energy: s.Energy, Happiness: s.Happiness, Chaos: s.Chaos, Attention: s.Attention}
}
