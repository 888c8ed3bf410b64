package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/alive/event"
)

// newAttachedPlayer returns a player that mixes without a speaker device
func newAttachedPlayer() *Player {
	p := NewPlayer(DefaultConfig())
	p.lock = func() {}
	p.unlock = func() {}
	p.close = func() {}
	p.initialized = true
	return p
}

// TestPlayerGracefulDegradation verifies effects are dropped without a speaker
func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer(DefaultConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without initialization: %v", r)
		}
	}()

	for _, e := range event.AllEffects() {
		p.Trigger(e)
	}
	p.Close()

	if p.Played() != 0 {
		t.Errorf("Expected nothing played, got %d", p.Played())
	}
	if int(p.Skipped()) != len(event.AllEffects()) {
		t.Errorf("Expected every effect skipped, got %d", p.Skipped())
	}
}

// TestPlayerDisabled verifies configuration can turn output off
func TestPlayerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg)

	if err := p.Initialize(); !errors.Is(err, ErrDisabled) {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}
}

// TestPlayerInitialization tolerates machines without an audio device
func TestPlayerInitialization(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	err := p.Initialize()
	if err != nil {
		if !errors.Is(err, ErrSpeakerInit) {
			t.Errorf("Expected ErrSpeakerInit wrapping, got %v", err)
		}
		t.Logf("Speaker init failed (expected in test environment): %v", err)
		return
	}
	if err := p.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got %v", err)
	}
	p.Close()
}

// TestPlayerMixesEffects verifies synthesized effects reach the mixer
func TestPlayerMixesEffects(t *testing.T) {
	p := newAttachedPlayer()

	p.Trigger(event.EffectWhoosh)
	p.Trigger(event.EffectExplosion)
	p.Trigger(event.EffectSpeakRobotic)

	if p.mixer.Len() != 2 {
		t.Errorf("Expected 2 streamers in mixer, got %d", p.mixer.Len())
	}
	if p.Played() != 2 || p.Skipped() != 1 {
		t.Errorf("Expected 2 played and 1 skipped speech, got %d/%d", p.Played(), p.Skipped())
	}
}

// TestPlayerMute verifies mute silences the master and drops new effects
func TestPlayerMute(t *testing.T) {
	p := newAttachedPlayer()
	p.Trigger(event.EffectWhoosh)

	if !p.ToggleMute() {
		t.Fatal("Expected muted after first toggle")
	}
	if !p.master.Silent {
		t.Error("Expected silent master while muted")
	}
	if p.mixer.Len() != 0 {
		t.Errorf("Expected mixer cleared on mute, got %d", p.mixer.Len())
	}

	p.Trigger(event.EffectGlitch)
	if p.mixer.Len() != 0 {
		t.Error("Effects must not be queued while muted")
	}

	if p.ToggleMute() {
		t.Fatal("Expected unmuted after second toggle")
	}
	if p.master.Silent {
		t.Error("Expected audible master after unmute")
	}
}

// TestPlayerVolume verifies master volume clamping
func TestPlayerVolume(t *testing.T) {
	p := newAttachedPlayer()

	p.SetVolume(2)
	if p.Volume() != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", p.Volume())
	}
	if p.master.Volume != 0 {
		t.Errorf("Expected log2 gain 0 at full volume, got %f", p.master.Volume)
	}

	p.SetVolume(0)
	if !p.master.Silent {
		t.Error("Expected zero volume to silence the master")
	}

	p.SetVolume(0.5)
	if p.master.Silent || p.master.Volume != -1 {
		t.Errorf("Expected gain -1 at half volume, got %f silent=%v", p.master.Volume, p.master.Silent)
	}
}

// TestPlayerClose verifies close drains the mixer and stops accepting effects
func TestPlayerClose(t *testing.T) {
	p := newAttachedPlayer()
	closed := 0
	p.close = func() { closed++ }
	p.Trigger(event.EffectAmbientSpace)

	p.Close()
	p.Close()

	if closed != 1 {
		t.Errorf("Expected speaker released once, got %d", closed)
	}
	if p.mixer.Len() != 0 {
		t.Errorf("Expected empty mixer after close, got %d", p.mixer.Len())
	}
	p.Trigger(event.EffectWhoosh)
	if p.Played() != 1 {
		t.Errorf("Expected no effects after close, played %d", p.Played())
	}
}
