// Package status holds lock-free runtime metrics published by the engine
package status

import (
	"strconv"
	"sync/atomic"
)

// Registry groups metric tables by value type
// Writers cache the returned pointers once and store atomically on the hot path
type Registry struct {
	Bools   *Table[atomic.Bool]
	Ints    *Table[atomic.Int64]
	Floats  *Table[AtomicFloat]
	Strings *Table[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewTable[atomic.Bool](),
		Ints:    NewTable[atomic.Int64](),
		Floats:  NewTable[AtomicFloat](),
		Strings: NewTable[AtomicString](),
	}
}

// Len returns the number of metrics across all tables
func (r *Registry) Len() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Metric is one formatted key/value pair
type Metric struct {
	Key   string
	Value string
}

// Collect formats every metric, grouped by table and sorted by key within each
func (r *Registry) Collect() []Metric {
	out := make([]Metric, 0, r.Len())
	r.Bools.Each(func(k string, v *atomic.Bool) {
		out = append(out, Metric{k, strconv.FormatBool(v.Load())})
	})
	r.Ints.Each(func(k string, v *atomic.Int64) {
		out = append(out, Metric{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Each(func(k string, v *AtomicFloat) {
		out = append(out, Metric{k, strconv.FormatFloat(v.Load(), 'f', 1, 64)})
	})
	r.Strings.Each(func(k string, v *AtomicString) {
		out = append(out, Metric{k, v.Load()})
	})
	return out
}
