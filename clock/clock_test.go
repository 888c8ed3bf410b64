package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMockClock(t *testing.T) {
	mock := NewMock(epoch)

	if !mock.Now().Equal(epoch) {
		t.Errorf("Expected initial time %v, got %v", epoch, mock.Now())
	}

	got := mock.Advance(90 * time.Second)
	if want := epoch.Add(90 * time.Second); !got.Equal(want) || !mock.Now().Equal(want) {
		t.Errorf("Expected %v after Advance, got %v", want, got)
	}

	mock.Set(epoch)
	if !mock.Now().Equal(epoch) {
		t.Errorf("Expected %v after Set, got %v", epoch, mock.Now())
	}
}

func TestSchedulerAfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(epoch, 500*time.Millisecond, func(time.Time) { fired++ })

	if n := s.Run(epoch.Add(499 * time.Millisecond)); n != 0 {
		t.Errorf("Expected no fire before deadline, got %d", n)
	}
	if n := s.Run(epoch.Add(500 * time.Millisecond)); n != 1 {
		t.Errorf("Expected fire at deadline, got %d", n)
	}
	s.Run(epoch.Add(time.Second))
	if fired != 1 {
		t.Errorf("Expected exactly one fire, got %d", fired)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty scheduler, got %d tasks", s.Len())
	}
}

func TestSchedulerEveryDropsMissedPeriods(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Every(epoch, time.Second, func(time.Time) { fired++ })

	now := epoch
	for i := 0; i < 5; i++ {
		now = now.Add(time.Second)
		s.Run(now)
	}
	if fired != 5 {
		t.Errorf("Expected 5 periodic fires, got %d", fired)
	}

	// A long gap fires once, then resumes one period later
	now = now.Add(time.Minute)
	s.Run(now)
	if fired != 6 {
		t.Errorf("Expected single catch-up fire, got %d", fired)
	}
	s.Run(now.Add(999 * time.Millisecond))
	if fired != 6 {
		t.Errorf("Expected no fire before rebased deadline, got %d", fired)
	}
	s.Run(now.Add(time.Second))
	if fired != 7 {
		t.Errorf("Expected fire at rebased deadline, got %d", fired)
	}
}

func TestSchedulerCancelIsIdempotent(t *testing.T) {
	s := NewScheduler()
	fired := false
	tok := s.After(epoch, time.Second, func(time.Time) { fired = true })

	if !s.Cancel(tok) {
		t.Error("Expected first cancel to succeed")
	}
	if s.Cancel(tok) {
		t.Error("Expected second cancel to report false")
	}
	if s.Cancel(0) {
		t.Error("Zero token must never cancel anything")
	}
	s.Run(epoch.Add(time.Hour))
	if fired {
		t.Error("Cancelled task fired")
	}
}

func TestSchedulerReplace(t *testing.T) {
	s := NewScheduler()
	var hits []string
	tok := s.After(epoch, time.Second, func(time.Time) { hits = append(hits, "old") })
	tok = s.Replace(tok, epoch.Add(500*time.Millisecond), time.Second, func(time.Time) { hits = append(hits, "new") })

	s.Run(epoch.Add(1200 * time.Millisecond))
	if len(hits) != 0 {
		t.Fatalf("Expected replaced task silent, got %v", hits)
	}
	s.Run(epoch.Add(1500 * time.Millisecond))
	if len(hits) != 1 || hits[0] != "new" {
		t.Errorf("Expected only new task, got %v", hits)
	}
	if s.Pending(tok) {
		t.Error("Fired one-shot must not stay pending")
	}
}

func TestSchedulerOrderAndNesting(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.After(epoch, 300*time.Millisecond, func(time.Time) { order = append(order, 3) })
	s.After(epoch, 100*time.Millisecond, func(now time.Time) {
		order = append(order, 1)
		// Scheduled from a callback: must wait for the next Run even if already due
		s.After(now, 0, func(time.Time) { order = append(order, 4) })
	})
	s.After(epoch, 100*time.Millisecond, func(time.Time) { order = append(order, 2) })

	s.Run(epoch.Add(time.Second))
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("Unexpected fire order %v", order)
	}
	s.Run(epoch.Add(time.Second))
	if len(order) != 4 || order[3] != 4 {
		t.Errorf("Expected nested task on next run, got %v", order)
	}
}

func TestSchedulerCancelFromCallback(t *testing.T) {
	s := NewScheduler()
	var second Token
	fired := false
	s.After(epoch, 100*time.Millisecond, func(time.Time) { s.Cancel(second) })
	second = s.After(epoch, 200*time.Millisecond, func(time.Time) { fired = true })

	s.Run(epoch.Add(time.Second))
	if fired {
		t.Error("Task cancelled by an earlier callback in the same run fired")
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.After(epoch, time.Second, func(time.Time) { count++ })
	s.Every(epoch, time.Second, func(time.Time) { count++ })
	s.CancelAll()

	if s.Run(epoch.Add(time.Hour)) != 0 || count != 0 {
		t.Error("Expected nothing to fire after CancelAll")
	}
}
