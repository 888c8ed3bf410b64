package mode

import "time"

// Flags are the overlay bits published to renderer and audio
// Screensaver is exclusive with interaction; the others are independent timed overlays
type Flags struct {
	Screensaver bool
	Chaos       bool
	Gravity     bool
	Glitch      bool
}

// State is the controller's full view, flags plus absolute expiries
type State struct {
	Flags
	ChaosExpiry  time.Time
	GlitchExpiry time.Time
	LastActivity time.Time
}

// Transition describes one overlay flipping on or off
type Transition struct {
	Overlay string
	On      bool
	At      time.Time
}

// Diff lists overlays that differ between prev and next, in fixed order
func Diff(prev, next Flags, at time.Time) []Transition {
	var out []Transition
	add := func(name string, a, b bool) {
		if a != b {
			out = append(out, Transition{Overlay: name, On: b, At: at})
		}
	}
	add("screensaver", prev.Screensaver, next.Screensaver)
	add("chaos", prev.Chaos, next.Chaos)
	add("gravity", prev.Gravity, next.Gravity)
	add("glitch", prev.Glitch, next.Glitch)
	return out
}
