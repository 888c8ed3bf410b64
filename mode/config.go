package mode

import "time"

// Config holds overlay durations and the idle threshold
type Config struct {
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	ChaosDuration  time.Duration `yaml:"chaos_duration"`
	GlitchDuration time.Duration `yaml:"glitch_duration"`
	CheckInterval  time.Duration `yaml:"check_interval"`
	// SpeechDelays offsets the speech sequence from the trigger, one per voice
	SpeechDelays []time.Duration `yaml:"speech_delays"`
}

// DefaultConfig returns the stock timing
func DefaultConfig() Config {
	return Config{
		IdleTimeout:    30 * time.Second,
		ChaosDuration:  30 * time.Second,
		GlitchDuration: 500 * time.Millisecond,
		CheckInterval:  time.Second,
		SpeechDelays:   []time.Duration{0, 3 * time.Second, 6 * time.Second},
	}
}
