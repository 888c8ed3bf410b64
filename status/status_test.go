package status

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

func TestTable_GetReturnsStablePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("engine.frames")
	b := r.Ints.Get("engine.frames")
	if a != b {
		t.Fatalf("expected cached pointer")
	}
	a.Add(3)
	if got := b.Load(); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if _, ok := r.Ints.Lookup("missing"); ok {
		t.Errorf("lookup must not create entries")
	}
	if r.Len() != 1 {
		t.Errorf("expected one metric, got %d", r.Len())
	}
}

func TestTable_ConcurrentGet(t *testing.T) {
	tbl := NewTable[AtomicFloat]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tbl.Get("mood.energy").Add(1)
			}
		}()
	}
	wg.Wait()
	if got := tbl.Get("mood.energy").Load(); got != 800 {
		t.Errorf("expected 800, got %v", got)
	}
}

func TestAtomicString_TruncatesOnRuneBoundary(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Errorf("zero value must be empty")
	}
	long := strings.Repeat("é", MaxStringLen)
	s.Store(long)
	got := s.Load()
	if len(got) > MaxStringLen {
		t.Errorf("expected at most %d bytes, got %d", MaxStringLen, len(got))
	}
	if !utf8.ValidString(got) {
		t.Errorf("truncation split a rune: %q", got)
	}
}

func TestRegistry_Collect(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get("mode.chaos").Store(true)
	r.Ints.Get("input.clicks").Store(7)
	r.Floats.Get("mood.energy").Store(62.5)
	r.Strings.Get("mood.current").Store("happy")
	r.Ints.Get("engine.frames").Store(2)

	got := r.Collect()
	want := []Metric{
		{"mode.chaos", "true"},
		{"engine.frames", "2"},
		{"input.clicks", "7"},
		{"mood.energy", "62.5"},
		{"mood.current", "happy"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d metrics, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("metric %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
