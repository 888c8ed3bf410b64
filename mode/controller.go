// Package mode arbitrates the screensaver, chaos, gravity and glitch overlays
package mode

import (
	"time"

	"github.com/lixenwraith/alive/clock"
	"github.com/lixenwraith/alive/event"
	"github.com/lixenwraith/alive/input"
)

var speechVoices = [...]event.Effect{
	event.EffectSpeakCrazyPhrase,
	event.EffectSpeakRobotic,
	event.EffectSpeakWhisper,
}

// Controller owns State and the timers that revert it
// Timers live on the shared tick scheduler; Close cancels all of them
type Controller struct {
	cfg   Config
	sched *clock.Scheduler
	sink  event.Sink
	state State

	checkTok  clock.Token
	glitchTok clock.Token
	speech    []clock.Token
	closed    bool
}

// NewController starts the periodic check at now
// Activity is considered to have happened at now
func NewController(cfg Config, sched *clock.Scheduler, sink event.Sink, now time.Time) *Controller {
	def := DefaultConfig()
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = def.IdleTimeout
	}
	if cfg.ChaosDuration <= 0 {
		cfg.ChaosDuration = def.ChaosDuration
	}
	if cfg.GlitchDuration <= 0 {
		cfg.GlitchDuration = def.GlitchDuration
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = def.CheckInterval
	}
	if sink == nil {
		sink = event.Discard
	}
	c := &Controller{
		cfg:   cfg,
		sched: sched,
		sink:  sink,
		state: State{LastActivity: now},
	}
	c.checkTok = sched.Every(now, cfg.CheckInterval, c.Check)
	return c
}

// State returns a copy of the current state
func (c *Controller) State() State { return c.state }

// Flags returns the current overlay flags
func (c *Controller) Flags() Flags { return c.state.Flags }

// Idle returns time since the last activity signal
func (c *Controller) Idle(now time.Time) time.Duration {
	d := now.Sub(c.state.LastActivity)
	if d < 0 {
		return 0
	}
	return d
}

// Handle applies one arbitrated signal
func (c *Controller) Handle(now time.Time, sig input.Signal) {
	if c.closed {
		return
	}
	if sig.Kind.IsActivity() {
		c.state.LastActivity = now
		c.state.Screensaver = false
	}

	switch sig.Kind {
	case input.SignalClick:
		c.sink.Trigger(event.EffectWhoosh)
	case input.SignalRapidClick:
		c.startGlitch(now)
	case input.SignalSequenceMatched:
		c.startChaos(now)
	}
}

func (c *Controller) startGlitch(now time.Time) {
	c.state.Glitch = true
	c.state.GlitchExpiry = now.Add(c.cfg.GlitchDuration)
	c.glitchTok = c.sched.Replace(c.glitchTok, now, c.cfg.GlitchDuration, c.endGlitch)
	c.sink.Trigger(event.EffectGlitch)
	c.sink.Trigger(event.EffectShapeShift)
}

func (c *Controller) endGlitch(time.Time) {
	c.state.Glitch = false
	c.state.GlitchExpiry = time.Time{}
	c.glitchTok = 0
}

func (c *Controller) startChaos(now time.Time) {
	c.state.Chaos = true
	c.state.Gravity = true
	c.state.ChaosExpiry = now.Add(c.cfg.ChaosDuration)

	c.sink.Trigger(event.EffectExplosion)
	c.sink.Trigger(event.EffectMusicalSequence)

	c.cancelSpeech()
	for i, delay := range c.cfg.SpeechDelays {
		if i >= len(speechVoices) {
			break
		}
		voice := speechVoices[i]
		if delay <= 0 {
			c.sink.Trigger(voice)
			continue
		}
		c.speech = append(c.speech, c.sched.After(now, delay, func(time.Time) {
			c.sink.Trigger(voice)
		}))
	}
}

func (c *Controller) cancelSpeech() {
	for _, tok := range c.speech {
		c.sched.Cancel(tok)
	}
	c.speech = c.speech[:0]
}

// Check runs the periodic evaluation: idle screensaver entry and chaos expiry
// Safe to call repeatedly, each transition happens once
func (c *Controller) Check(now time.Time) {
	if c.closed {
		return
	}
	if (c.state.Chaos || c.state.Gravity) && !now.Before(c.state.ChaosExpiry) {
		c.state.Chaos = false
		c.state.Gravity = false
		c.state.ChaosExpiry = time.Time{}
	}
	if !c.state.Screensaver && now.Sub(c.state.LastActivity) > c.cfg.IdleTimeout {
		c.state.Screensaver = true
		c.sink.Trigger(event.EffectAmbientSpace)
	}
}

// Close cancels every timer the controller owns; later calls are no-ops
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.sched.Cancel(c.checkTok)
	c.sched.Cancel(c.glitchTok)
	c.cancelSpeech()
	c.checkTok, c.glitchTok = 0, 0
}
