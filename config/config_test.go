package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/alive/physics"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func noEnv(string) string { return "" }

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load("non_existent_config.yml", noEnv)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Engine.Input.RapidWindow)
	assert.Equal(t, 5, cfg.Engine.Input.RapidThreshold)
	assert.Equal(t, 3, cfg.Engine.Input.ClickVariants)
	assert.Len(t, cfg.Engine.Input.Pattern, 10)
	assert.Equal(t, 30*time.Second, cfg.Engine.Mode.IdleTimeout)
	assert.Equal(t, 30*time.Second, cfg.Engine.Mode.ChaosDuration)
	assert.Equal(t, 500*time.Millisecond, cfg.Engine.Mode.GlitchDuration)
	assert.Equal(t, 500.0, cfg.Engine.Gravity.Attraction)
	assert.Equal(t, 0.99, cfg.Engine.Gravity.Friction)
	assert.Equal(t, 0.8, cfg.Engine.Gravity.Restitution)
	assert.Equal(t, 20, cfg.Engine.Gravity.TrailCap)
	assert.Equal(t, physics.LifecycleExpire, cfg.Engine.Sparks.Lifecycle)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.True(t, cfg.Audio.Enabled)
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeFile(t, "alive.yml", `
engine:
  seed: 7
  input:
    rapid_window: 300ms
    rapid_threshold: 3
  mode:
    idle_timeout: 1m
  gravity:
    attraction: 250
    friction: 0.95
  personality:
    initial:
      energy: 80
audio:
  master_volume: 0.25
log_dir: /tmp/alive-logs
`)

	cfg, err := load(path, noEnv)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Engine.Seed)
	assert.Equal(t, 300*time.Millisecond, cfg.Engine.Input.RapidWindow)
	assert.Equal(t, 3, cfg.Engine.Input.RapidThreshold)
	assert.Equal(t, time.Minute, cfg.Engine.Mode.IdleTimeout)
	assert.Equal(t, 250.0, cfg.Engine.Gravity.Attraction)
	assert.Equal(t, 0.95, cfg.Engine.Gravity.Friction)
	assert.Equal(t, 80.0, cfg.Engine.Personality.Initial.Energy)
	assert.Equal(t, 0.25, cfg.Audio.MasterVolume)
	assert.Equal(t, "/tmp/alive-logs", cfg.LogDir)

	// Untouched fields keep their defaults
	assert.Equal(t, 0.8, cfg.Engine.Gravity.Restitution)
	assert.Equal(t, 50.0, cfg.Engine.Personality.Initial.Happiness)
	assert.Equal(t, 3, cfg.Engine.Input.ClickVariants)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, "broken.yml", `
engine:
  input:
    rapid_threshold: "not a number"
    broken_yaml: [ unclosed bracket
`)

	cfg, err := load(path, noEnv)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeFile(t, "bad.yml", `
engine:
  input:
    click_variants: 0
  gravity:
    friction: 1.5
`)

	_, err := load(path, noEnv)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Contains(t, err.Error(), "click_variants")
	assert.Contains(t, err.Error(), "gravity.friction")
}

func TestApplyEnv_Overrides(t *testing.T) {
	env := map[string]string{
		"ALIVE_IDLE_TIMEOUT":  "45s",
		"ALIVE_SEED":          "1234",
		"ALIVE_MASTER_VOLUME": "10",
		"ALIVE_LOG_DIR":       "/var/log/alive",
	}
	cfg, err := load("", func(k string) string { return env[k] })
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.Engine.Mode.IdleTimeout)
	assert.Equal(t, uint64(1234), cfg.Engine.Seed)
	assert.InDelta(t, 0.1, cfg.Audio.MasterVolume, 1e-9)
	assert.Equal(t, "/var/log/alive", cfg.LogDir)
}

func TestApplyEnv_MalformedDuration(t *testing.T) {
	env := map[string]string{"ALIVE_IDLE_TIMEOUT": "soon"}
	_, err := load("", func(k string) string { return env[k] })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ALIVE_IDLE_TIMEOUT")
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "ALIVE_SEED=99\nALIVE_AUDIO_ENABLED=false\n")

	cfg, err := Load("", envFile)
	require.NoError(t, err)

	if _, set := os.LookupEnv("ALIVE_SEED"); !set {
		assert.Equal(t, uint64(99), cfg.Engine.Seed)
	}
	if _, set := os.LookupEnv("ALIVE_AUDIO_ENABLED"); !set {
		assert.False(t, cfg.Audio.Enabled)
	}
}

func TestLoad_ProcessEnvWinsOverEnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "ALIVE_SEED=99\n")
	t.Setenv("ALIVE_SEED", "5")

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), cfg.Engine.Seed)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
