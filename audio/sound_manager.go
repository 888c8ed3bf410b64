package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/alive/event"
)

// Player is an event.Sink mixing synthesized effects into the speaker
// Until Initialize succeeds it stays silent and drops every effect
type Player struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	volume      float64
	muted       bool
	initialized bool

	played  atomic.Int64
	skipped atomic.Int64

	// speaker locking, swapped out by tests that never open a device
	lock   func()
	unlock func()
	close  func()
}

// NewPlayer creates a silent player; call Initialize to open the speaker
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = DefaultConfig().Buffer
	}
	mixer := &beep.Mixer{}
	p := &Player{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
		close:  speaker.Close,
	}
	p.applyVolume(clamp01(cfg.MasterVolume))
	return p
}

// Initialize opens the speaker and starts the mixer
// On failure the player remains usable and silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if !p.cfg.Enabled {
		return ErrDisabled
	}
	if err := speaker.Init(p.rate, p.rate.N(p.cfg.Buffer)); err != nil {
		return fmt.Errorf("%w: %v", ErrSpeakerInit, err)
	}
	speaker.Play(p.master)
	p.initialized = true
	return nil
}

// Trigger implements event.Sink
func (p *Player) Trigger(e event.Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		p.skipped.Add(1)
		return
	}
	s := NewEffect(e, p.cfg)
	if s == nil {
		p.skipped.Add(1)
		return
	}

	p.lock()
	p.mixer.Add(s)
	p.unlock()
	p.played.Add(1)
}

// ToggleMute flips mute and returns the new state
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	p.lock()
	p.master.Silent = p.muted || p.volume <= 0
	if p.muted {
		p.mixer.Clear()
	}
	p.unlock()
	return p.muted
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// SetVolume sets the master gain, clamped to [0,1]
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	p.applyVolume(clamp01(v))
	p.unlock()
}

// Volume returns the master gain
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

func (p *Player) applyVolume(v float64) {
	p.volume = v
	if v <= 0 {
		p.master.Volume = 0
		p.master.Silent = true
		return
	}
	p.master.Volume = math.Log2(v)
	p.master.Silent = p.muted
}

// Played returns how many effects reached the mixer
func (p *Player) Played() int64 { return p.played.Load() }

// Skipped returns how many effects were dropped as silent
func (p *Player) Skipped() int64 { return p.skipped.Load() }

// Close stops all sounds and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.close()
	p.initialized = false
}
