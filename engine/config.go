package engine

import (
	"time"

	"github.com/lixenwraith/alive/input"
	"github.com/lixenwraith/alive/mode"
	"github.com/lixenwraith/alive/personality"
	"github.com/lixenwraith/alive/physics"
)

// Config aggregates every component's parameters
type Config struct {
	Input       input.Config       `yaml:"input"`
	Personality personality.Config `yaml:"personality"`
	Mode        mode.Config        `yaml:"mode"`

	Gravity physics.Config `yaml:"gravity"`
	Sparks  physics.Config `yaml:"sparks"`
	Swarm   physics.Config `yaml:"swarm"`

	// FrameInterval is the runner's tick period
	FrameInterval time.Duration `yaml:"frame_interval"`
	// EventBuffer bounds queued input between ticks
	EventBuffer int `yaml:"event_buffer"`
	// Seed feeds the shared random source, 0 picks one from the clock
	Seed uint64 `yaml:"seed"`

	// Width and Height size the initial viewport in pixel units
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		Input:         input.DefaultConfig(),
		Personality:   personality.DefaultConfig(),
		Mode:          mode.DefaultConfig(),
		Gravity:       physics.GravityFieldConfig(),
		Sparks:        physics.SparksConfig(),
		Swarm:         physics.SwarmConfig(),
		FrameInterval: time.Second / physics.ReferenceFPS,
		EventBuffer:   256,
		Width:         800,
		Height:        600,
	}
}
