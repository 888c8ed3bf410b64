package audio

import (
	"encoding/json"
	"strconv"
	"time"
)

// Config controls the synthesized effect output
type Config struct {
	Enabled      bool          `yaml:"enabled"`
	MasterVolume float64       `yaml:"master_volume"`
	SampleRate   int           `yaml:"sample_rate"`
	Buffer       time.Duration `yaml:"buffer"`
	// EffectVolumes scales individual effects by name, missing names play at 1.0
	EffectVolumes map[string]float64 `yaml:"effect_volumes"`
}

// DefaultConfig returns audio settings with output enabled
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		MasterVolume:  0.5,
		SampleRate:    44100,
		Buffer:        100 * time.Millisecond,
		EffectVolumes: map[string]float64{},
	}
}

// EffectVolume returns the configured scale for an effect name
func (c Config) EffectVolume(name string) float64 {
	if v, ok := c.EffectVolumes[name]; ok {
		return v
	}
	return 1
}

// ApplyEnv overrides fields from environment lookups, ignoring malformed values
// ALIVE_AUDIO_ENABLED, ALIVE_MASTER_VOLUME (0-100), ALIVE_SAMPLE_RATE, ALIVE_SFX_VOLUMES (JSON object)
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if enabled := getenv("ALIVE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := getenv("ALIVE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	if sampleRate := getenv("ALIVE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if sfx := getenv("ALIVE_SFX_VOLUMES"); sfx != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(sfx), &volumes); err == nil {
			if cfg.EffectVolumes == nil {
				cfg.EffectVolumes = make(map[string]float64, len(volumes))
			}
			for k, v := range volumes {
				cfg.EffectVolumes[k] = clamp01(v)
			}
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
