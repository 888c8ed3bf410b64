// Package audio synthesizes the character's sound effects with beep
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/alive/event"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave whose frequency ramps from freq to endFreq
type oscillator struct {
	freq        float64
	endFreq     float64
	exponential bool
	phase       float64
	duration    int
	position    int
	wave        WaveType
	rate        beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// NewSweep creates an oscillator gliding from one frequency to another
// Exponential glides need both ends positive, otherwise the glide is linear
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:        from,
		endFreq:     to,
		exponential: from > 0 && to > 0,
		duration:    rate.N(duration),
		wave:        wave,
		rate:        rate,
	}
}

func (o *oscillator) frequency() float64 {
	if o.freq == o.endFreq || o.duration <= 1 {
		return o.freq
	}
	t := float64(o.position) / float64(o.duration-1)
	if o.exponential {
		return o.freq * math.Pow(o.endFreq/o.freq, t)
	}
	return o.freq + (o.endFreq-o.freq)*t
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.frequency() / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack/release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// decay multiplies a stream by exp(-k·t), reaching floor at duration
type decay struct {
	streamer beep.Streamer
	position int
	k        float64
}

// NewDecay fades s exponentially from 1 to floor over duration
func NewDecay(s beep.Streamer, duration time.Duration, floor float64, rate beep.SampleRate) beep.Streamer {
	n := rate.N(duration)
	if n < 1 {
		n = 1
	}
	if floor <= 0 || floor >= 1 {
		floor = 0.01
	}
	return &decay{streamer: s, k: -math.Log(floor) / float64(n)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := math.Exp(-d.k * float64(d.position))
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// delayed prefixes s with silence
func delayed(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	if d <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(rate.N(d)), s)
}

// Effect timing
const (
	whooshDuration  = 500 * time.Millisecond
	glitchHop       = 20 * time.Millisecond
	glitchHops      = 10
	shapeDuration   = 80 * time.Millisecond
	blastDuration   = 300 * time.Millisecond
	noteSpacing     = 150 * time.Millisecond
	noteDuration    = 200 * time.Millisecond
	ambientDuration = 3 * time.Second
)

// Melody notes A4 C5 E5 G5 E5 C5 A4
var melody = []float64{440, 523.25, 659.25, 783.99, 659.25, 523.25, 440}

// CreateWhoosh is a saw sweep falling from 200Hz to 50Hz
func CreateWhoosh(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(200, 50, whooshDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, whooshDuration, 100*time.Millisecond, 300*time.Millisecond, rate)
	return newVolume(shaped, 0.2)
}

// CreateGlitch hops a square wave across random frequencies in 200-1200Hz
func CreateGlitch(rate beep.SampleRate) beep.Streamer {
	hops := make([]beep.Streamer, glitchHops)
	for i := range hops {
		hops[i] = NewOscillator(rand.Float64()*1000+200, glitchHop, WaveSquare, rate)
	}
	total := glitchHop * glitchHops
	shaped := NewEnvelope(beep.Seq(hops...), total, 10*time.Millisecond, total/2, rate)
	return newVolume(shaped, 0.15)
}

// CreateShapeShift is a short rising sine blip
func CreateShapeShift(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(660, 990, shapeDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, shapeDuration, 5*time.Millisecond, 40*time.Millisecond, rate)
	return newVolume(shaped, 0.15)
}

// CreateExplosion is white noise decaying over 300ms
func CreateExplosion(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, blastDuration, WaveNoise, rate)
	return newVolume(NewDecay(noise, blastDuration, 0.03, rate), 0.3)
}

// CreateMusicalSequence plays the melody with overlapping notes
func CreateMusicalSequence(rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, len(melody))
	for i, freq := range melody {
		osc := NewOscillator(freq, noteDuration, WaveSine, rate)
		shaped := NewEnvelope(osc, noteDuration, 50*time.Millisecond, 150*time.Millisecond, rate)
		voices[i] = delayed(shaped, time.Duration(i)*noteSpacing, rate)
	}
	return newVolume(beep.Mix(voices...), 0.1)
}

// CreateAmbientSpace is a slowly drifting two-tone drone
func CreateAmbientSpace(rate beep.SampleRate) beep.Streamer {
	low := NewSweep(80, 85, ambientDuration, WaveSine, rate)
	high := NewSweep(120, 125, ambientDuration, WaveSine, rate)
	fade := time.Second
	return beep.Mix(
		newVolume(NewEnvelope(low, ambientDuration, fade, fade, rate), 0.05),
		newVolume(NewEnvelope(high, ambientDuration, fade, fade, rate), 0.03),
	)
}

// NewEffect returns the streamer for e scaled by cfg, nil for effects without sound
// Speech effects are rendered by an external voice, not synthesized here
func NewEffect(e event.Effect, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var s beep.Streamer
	switch e {
	case event.EffectWhoosh:
		s = CreateWhoosh(rate)
	case event.EffectGlitch:
		s = CreateGlitch(rate)
	case event.EffectShapeShift:
		s = CreateShapeShift(rate)
	case event.EffectExplosion:
		s = CreateExplosion(rate)
	case event.EffectMusicalSequence:
		s = CreateMusicalSequence(rate)
	case event.EffectAmbientSpace:
		s = CreateAmbientSpace(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.EffectVolume(e.String()))
}
