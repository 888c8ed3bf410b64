package clock

import (
	"sort"
	"time"
)

// Token identifies a scheduled task for cancellation, zero is never issued
type Token uint64

// Task is invoked with the scheduler's evaluation time
type Task func(now time.Time)

type entry struct {
	token  Token
	due    time.Time
	period time.Duration // 0 = one-shot
	seq    uint64        // insertion order for tie-breaks
	fn     Task
}

// Scheduler is an explicit scheduled-task list evaluated once per tick
// Not safe for concurrent use: owned by the tick loop
type Scheduler struct {
	entries []*entry
	next    Token
	seq     uint64
	running bool
	due     []*entry // reused across Run calls
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn once at now+d
func (s *Scheduler) After(now time.Time, d time.Duration, fn Task) Token {
	if d < 0 {
		d = 0
	}
	return s.add(now.Add(d), 0, fn)
}

// Every schedules fn at now+period and every period after that
func (s *Scheduler) Every(now time.Time, period time.Duration, fn Task) Token {
	if period <= 0 {
		period = time.Millisecond
	}
	return s.add(now.Add(period), period, fn)
}

// Replace cancels tok (if still pending) and schedules fn once at now+d
func (s *Scheduler) Replace(tok Token, now time.Time, d time.Duration, fn Task) Token {
	s.Cancel(tok)
	return s.After(now, d, fn)
}

func (s *Scheduler) add(due time.Time, period time.Duration, fn Task) Token {
	s.next++
	s.seq++
	s.entries = append(s.entries, &entry{
		token:  s.next,
		due:    due,
		period: period,
		seq:    s.seq,
		fn:     fn,
	})
	return s.next
}

// Cancel removes a pending task, returns false if it already fired or was cancelled
func (s *Scheduler) Cancel(tok Token) bool {
	if tok == 0 {
		return false
	}
	for i, e := range s.entries {
		if e.token == tok {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			e.fn = nil
			return true
		}
	}
	return false
}

// Pending reports whether tok is still scheduled
func (s *Scheduler) Pending(tok Token) bool {
	for _, e := range s.entries {
		if e.token == tok {
			return true
		}
	}
	return false
}

// Len returns the number of scheduled tasks
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// CancelAll drops every scheduled task
func (s *Scheduler) CancelAll() {
	for _, e := range s.entries {
		e.fn = nil
	}
	s.entries = s.entries[:0]
}

// Run fires every task due at or before now in due-time order and returns the fire count
// Periodic tasks fire at most once per Run; tasks added by callbacks wait for the next Run
func (s *Scheduler) Run(now time.Time) int {
	if s.running {
		return 0
	}
	s.running = true
	defer func() { s.running = false }()

	s.due = s.due[:0]
	for _, e := range s.entries {
		if !e.due.After(now) {
			s.due = append(s.due, e)
		}
	}
	if len(s.due) == 0 {
		return 0
	}
	sort.SliceStable(s.due, func(i, j int) bool {
		if s.due[i].due.Equal(s.due[j].due) {
			return s.due[i].seq < s.due[j].seq
		}
		return s.due[i].due.Before(s.due[j].due)
	})

	fired := 0
	for _, e := range s.due {
		// Cancelled by an earlier callback in this Run
		if e.fn == nil {
			continue
		}
		fn := e.fn
		if e.period > 0 {
			e.due = e.due.Add(e.period)
			// Missed periods are dropped, not replayed
			if !e.due.After(now) {
				e.due = now.Add(e.period)
			}
		} else {
			s.remove(e)
		}
		fn(now)
		fired++
	}
	return fired
}

func (s *Scheduler) remove(target *entry) {
	for i, e := range s.entries {
		if e == target {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}
