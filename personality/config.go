package personality

import "time"

// Delta is an additive change to a MoodVector
type Delta struct {
	Energy    float64 `yaml:"energy"`
	Happiness float64 `yaml:"happiness"`
	Chaos     float64 `yaml:"chaos"`
	Attention float64 `yaml:"attention"`
}

// Interaction names a predefined delta bundle
type Interaction uint8

const (
	InteractionHover Interaction = iota
	InteractionClick
	InteractionRapidClick
	InteractionFace
	InteractionSmile
)

func (i Interaction) String() string {
	switch i {
	case InteractionHover:
		return "hover"
	case InteractionClick:
		return "click"
	case InteractionRapidClick:
		return "rapid_click"
	case InteractionFace:
		return "face"
	case InteractionSmile:
		return "smile"
	}
	return "unknown"
}

// Bundles is the interaction-delta table
type Bundles struct {
	Hover      Delta `yaml:"hover"`
	Click      Delta `yaml:"click"`
	RapidClick Delta `yaml:"rapid_click"`
	Face       Delta `yaml:"face"`
	Smile      Delta `yaml:"smile"`
}

// For returns the bundle for an interaction
func (b Bundles) For(i Interaction) Delta {
	switch i {
	case InteractionHover:
		return b.Hover
	case InteractionClick:
		return b.Click
	case InteractionRapidClick:
		return b.RapidClick
	case InteractionFace:
		return b.Face
	case InteractionSmile:
		return b.Smile
	}
	return Delta{}
}

// Config tunes the personality engine
type Config struct {
	Initial MoodVector `yaml:"initial"`
	Bundles Bundles    `yaml:"bundles"`

	// TickInterval is the decay/drift period
	TickInterval time.Duration `yaml:"tick_interval"`
	// IdleThreshold is the quiet time before decay starts
	IdleThreshold time.Duration `yaml:"idle_threshold"`

	// Baselines: energy and happiness decay down to Baseline, attention to AttentionFloor
	Baseline       float64 `yaml:"baseline"`
	AttentionFloor float64 `yaml:"attention_floor"`

	// Per-tick decay steps
	EnergyDecay    float64 `yaml:"energy_decay"`
	HappinessDecay float64 `yaml:"happiness_decay"`
	ChaosDecay     float64 `yaml:"chaos_decay"`
	AttentionDecay float64 `yaml:"attention_decay"`

	// DriftChance is the per-tick probability of ambient restlessness
	DriftChance float64 `yaml:"drift_chance"`
	// Drift magnitudes, each component drifts uniformly in [-m, +m)
	DriftEnergy    float64 `yaml:"drift_energy"`
	DriftHappiness float64 `yaml:"drift_happiness"`
	DriftChaos     float64 `yaml:"drift_chaos"`
	DriftAttention float64 `yaml:"drift_attention"`
}

// DefaultConfig returns the stock personality parameters
func DefaultConfig() Config {
	return Config{
		Initial: MoodVector{Energy: 50, Happiness: 50, Chaos: 0, Attention: 100},
		Bundles: Bundles{
			Hover:      Delta{Energy: 5, Happiness: 10, Chaos: 0, Attention: 20},
			Click:      Delta{Energy: 15, Happiness: 20, Chaos: 10, Attention: 30},
			RapidClick: Delta{Energy: 30, Happiness: 10, Chaos: 40, Attention: 50},
			Face:       Delta{Energy: 10, Happiness: 15, Chaos: 0, Attention: 40},
			Smile:      Delta{Energy: 20, Happiness: 30, Chaos: 0, Attention: 30},
		},
		TickInterval:   time.Second,
		IdleThreshold:  5 * time.Second,
		Baseline:       50,
		AttentionFloor: 20,
		EnergyDecay:    1,
		HappinessDecay: 1,
		ChaosDecay:     2,
		AttentionDecay: 1,
		DriftChance:    0.01,
		DriftEnergy:    5,
		DriftHappiness: 5,
		DriftChaos:     2.5,
		DriftAttention: 5,
	}
}
