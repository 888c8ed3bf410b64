// Package config loads the YAML configuration file, a .env file and ALIVE_* overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/alive/audio"
	"github.com/lixenwraith/alive/engine"
	"github.com/lixenwraith/alive/physics"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete application configuration
type Config struct {
	Engine engine.Config `yaml:"engine"`
	Audio  audio.Config  `yaml:"audio"`
	LogDir string        `yaml:"log_dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Engine: engine.DefaultConfig(),
		Audio:  audio.DefaultConfig(),
		LogDir: "logs",
	}
}

// Load reads the YAML file at path over the defaults, then applies overrides
// Process environment wins over envFile entries; missing files are not errors
func Load(path, envFile string) (*Config, error) {
	vals, err := readEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	getenv := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return vals[key]
	}
	return load(path, getenv)
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	vals, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return vals, nil
}

func load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies ALIVE_* overrides; malformed engine values are errors
func (c *Config) ApplyEnv(getenv func(string) string) error {
	audio.ApplyEnv(&c.Audio, getenv)

	if v := getenv("ALIVE_IDLE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ALIVE_IDLE_TIMEOUT: %w", err)
		}
		c.Engine.Mode.IdleTimeout = d
	}
	if v := getenv("ALIVE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ALIVE_SEED: %w", err)
		}
		c.Engine.Seed = seed
	}
	if v := getenv("ALIVE_LOG_DIR"); v != "" {
		c.LogDir = v
	}
	return nil
}

// Validate reports every nonsensical value, joined
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	in := c.Engine.Input
	if in.RapidWindow <= 0 {
		bad("input.rapid_window must be positive, got %v", in.RapidWindow)
	}
	if in.RapidThreshold < 1 {
		bad("input.rapid_threshold must be at least 1, got %d", in.RapidThreshold)
	}
	if in.ClickVariants < 1 {
		bad("input.click_variants must be at least 1, got %d", in.ClickVariants)
	}
	if len(in.Pattern) == 0 {
		bad("input.pattern must not be empty")
	}

	p := c.Engine.Personality
	if p.TickInterval <= 0 {
		bad("personality.tick_interval must be positive, got %v", p.TickInterval)
	}
	if p.IdleThreshold < 0 {
		bad("personality.idle_threshold must not be negative, got %v", p.IdleThreshold)
	}
	if p.DriftChance < 0 || p.DriftChance > 1 {
		bad("personality.drift_chance must be in [0,1], got %v", p.DriftChance)
	}

	m := c.Engine.Mode
	for name, d := range map[string]time.Duration{
		"idle_timeout":    m.IdleTimeout,
		"chaos_duration":  m.ChaosDuration,
		"glitch_duration": m.GlitchDuration,
		"check_interval":  m.CheckInterval,
	} {
		if d <= 0 {
			bad("mode.%s must be positive, got %v", name, d)
		}
	}

	for name, sim := range map[string]physics.Config{
		"gravity": c.Engine.Gravity,
		"sparks":  c.Engine.Sparks,
		"swarm":   c.Engine.Swarm,
	} {
		validateSim(name, sim, bad)
	}

	if c.Engine.FrameInterval <= 0 {
		bad("engine.frame_interval must be positive, got %v", c.Engine.FrameInterval)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		bad("audio.master_volume must be in [0,1], got %v", c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		bad("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}

	return errors.Join(errs...)
}

func validateSim(name string, s physics.Config, bad func(string, ...any)) {
	if s.Friction <= 0 || s.Friction > 1 {
		bad("%s.friction must be in (0,1], got %v", name, s.Friction)
	}
	if s.Bounce && (s.Restitution <= 0 || s.Restitution > 1) {
		bad("%s.restitution must be in (0,1], got %v", name, s.Restitution)
	}
	if s.Capacity < 0 || s.Count < 0 || s.Count > s.Capacity {
		bad("%s.count %d must be within capacity %d", name, s.Count, s.Capacity)
	}
	if s.TrailCap < 0 {
		bad("%s.trail_cap must not be negative, got %d", name, s.TrailCap)
	}
	if s.Lifecycle != physics.LifecycleRecycle && s.Lifecycle != physics.LifecycleExpire {
		bad("%s.lifecycle %q unknown", name, s.Lifecycle)
	}
	if s.MaxStepDT <= 0 {
		bad("%s.max_step_dt must be positive, got %v", name, s.MaxStepDT)
	}
}
