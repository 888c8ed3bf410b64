package event

import "sync"

// Sink receives one-shot effect requests
type Sink interface {
	Trigger(e Effect)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Effect)

func (f SinkFunc) Trigger(e Effect) { f(e) }

// Discard drops every effect
var Discard Sink = SinkFunc(func(Effect) {})

// Recorder collects effects for later inspection, safe for concurrent use
type Recorder struct {
	mu      sync.Mutex
	effects []Effect
}

// Trigger appends the effect
func (r *Recorder) Trigger(e Effect) {
	r.mu.Lock()
	r.effects = append(r.effects, e)
	r.mu.Unlock()
}

// Drain returns all recorded effects in order and clears the recorder
func (r *Recorder) Drain() []Effect {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.effects
	r.effects = nil
	return out
}

// Count returns how many times e was recorded
func (r *Recorder) Count(e Effect) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.effects {
		if got == e {
			n++
		}
	}
	return n
}

// Len returns the number of recorded effects
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.effects)
}

type fanout []Sink

func (f fanout) Trigger(e Effect) {
	for _, s := range f {
		s.Trigger(e)
	}
}

// Fanout forwards each effect to every non-nil sink in order
func Fanout(sinks ...Sink) Sink {
	out := make(fanout, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
