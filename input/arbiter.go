package input

import (
	"time"

	"github.com/lixenwraith/alive/vmath"
)

// Arbiter turns raw interaction events into discrete behavioral signals
// Processes one event at a time, synchronously, not safe for concurrent use
type Arbiter struct {
	cfg Config

	// Rapid-click window
	lastClick   time.Time
	hasClicked  bool
	consecutive int
	clickCount  int
	disarmed    bool // set after escalation until a burst ends naturally

	sequence *sequenceMatcher

	// Hover state, target is optional
	hovered   bool
	target    vmath.Rect
	hasTarget bool

	// Face edge detection
	faceSeen  bool
	smileSeen bool

	out []Signal // reused per Handle
}

// NewArbiter creates an arbiter, invalid fields fall back to defaults
func NewArbiter(cfg Config) *Arbiter {
	def := DefaultConfig()
	if cfg.RapidWindow <= 0 {
		cfg.RapidWindow = def.RapidWindow
	}
	if cfg.RapidThreshold <= 0 {
		cfg.RapidThreshold = def.RapidThreshold
	}
	if cfg.ClickVariants <= 0 {
		cfg.ClickVariants = def.ClickVariants
	}
	if len(cfg.Pattern) == 0 {
		cfg.Pattern = def.Pattern
	}
	return &Arbiter{
		cfg:      cfg,
		sequence: newSequenceMatcher(cfg.Pattern),
		out:      make([]Signal, 0, 4),
	}
}

// SetTarget sets the glyph hit box used to derive hover from pointer events
func (a *Arbiter) SetTarget(r vmath.Rect) {
	a.target = r
	a.hasTarget = !r.Empty()
}

// ClearTarget disables pointer-derived hover
func (a *Arbiter) ClearTarget() {
	a.hasTarget = false
}

// Hovered returns current hover state
func (a *Arbiter) Hovered() bool {
	return a.hovered
}

// ClickCount returns the number of non-escalating clicks seen
func (a *Arbiter) ClickCount() int {
	return a.clickCount
}

// Consecutive returns the length of the current click burst
func (a *Arbiter) Consecutive() int {
	return a.consecutive
}

// PendingKeys returns the buffered key tokens, oldest first
func (a *Arbiter) PendingKeys() []string {
	return a.sequence.window()
}

// Handle consumes one event and returns the produced signals
// The returned slice is reused by the next call
func (a *Arbiter) Handle(ev Event) []Signal {
	a.out = a.out[:0]

	switch ev.Kind {
	case EventHoverEnter:
		a.setHover(true, ev.Time)
	case EventHoverLeave:
		a.setHover(false, ev.Time)
	case EventClick:
		a.handleClick(ev.Time)
	case EventKey:
		a.emit(Signal{Kind: SignalKey, Time: ev.Time})
		if a.sequence.push(ev.Key) {
			a.emit(Signal{Kind: SignalSequenceMatched, Time: ev.Time})
		}
	case EventPointer:
		a.emit(Signal{Kind: SignalPointerMoved, Time: ev.Time, X: ev.X, Y: ev.Y})
		if a.hasTarget {
			a.setHover(a.target.Contains(vmath.Vec2F{X: ev.X, Y: ev.Y}), ev.Time)
		}
	case EventFace:
		a.handleFace(ev.Face, ev.Time)
	}

	return a.out
}

func (a *Arbiter) emit(s Signal) {
	a.out = append(a.out, s)
}

func (a *Arbiter) setHover(on bool, now time.Time) {
	if on == a.hovered {
		return
	}
	a.hovered = on
	if on {
		a.emit(Signal{Kind: SignalHover, Time: now})
	} else {
		a.emit(Signal{Kind: SignalUnhover, Time: now})
	}
}

func (a *Arbiter) handleClick(now time.Time) {
	gap := a.cfg.RapidWindow // first click of a session starts a burst
	if a.hasClicked {
		gap = now.Sub(a.lastClick)
		if gap < 0 {
			gap = 0
		}
	}
	a.lastClick = now
	a.hasClicked = true

	if gap < a.cfg.RapidWindow {
		a.consecutive++
	} else {
		a.consecutive = 1
		a.disarmed = false
	}

	if !a.disarmed && a.consecutive >= a.cfg.RapidThreshold {
		a.consecutive = 0
		a.disarmed = true
		a.emit(Signal{Kind: SignalRapidClick, Time: now})
		return
	}

	ordinal := a.clickCount % a.cfg.ClickVariants
	a.clickCount++
	a.emit(Signal{Kind: SignalClick, Time: now, Ordinal: ordinal})
}

func (a *Arbiter) handleFace(f FaceSignal, now time.Time) {
	detected := f.Detected && f.Confidence >= a.cfg.MinFaceConfidence
	smiling := detected && f.Smiling

	if detected && !a.faceSeen {
		a.emit(Signal{Kind: SignalFaceDetected, Time: now})
	}
	if !detected && a.faceSeen {
		a.emit(Signal{Kind: SignalFaceLost, Time: now})
	}
	if smiling && !a.smileSeen {
		a.emit(Signal{Kind: SignalSmileDetected, Time: now})
	}
	a.faceSeen = detected
	a.smileSeen = smiling
}

// Reset clears click, key, hover and face state
func (a *Arbiter) Reset() {
	a.hasClicked = false
	a.consecutive = 0
	a.disarmed = false
	a.clickCount = 0
	a.sequence.reset()
	a.hovered = false
	a.faceSeen = false
	a.smileSeen = false
}
