package engine

import (
	"time"

	"github.com/lixenwraith/alive/event"
	"github.com/lixenwraith/alive/input"
	"github.com/lixenwraith/alive/mode"
	"github.com/lixenwraith/alive/personality"
	"github.com/lixenwraith/alive/physics"
	"github.com/lixenwraith/alive/vmath"
)

// Frame is one tick's input: the evaluation time, elapsed time and raw events
type Frame struct {
	Now    time.Time
	DT     time.Duration
	Events []input.Event
}

// Snapshot is the complete post-tick state handed to renderer and audio
// Slices are owned by the snapshot and never mutated after publication
type Snapshot struct {
	Frame uint64
	Time  time.Time

	Mood   personality.Snapshot
	Styles []personality.StyleToken
	Flags  mode.Flags

	// ClickOrdinal is the variant of the latest plain click, -1 before any
	ClickOrdinal int
	Hovered      bool
	// Phrase is the latest spoken line, empty until the first speech effect
	Phrase string

	Gravity []physics.View
	Sparks  []physics.View
	Swarm   []physics.View

	// Effects fired during this tick, in order
	Effects []event.Effect

	Pointer    vmath.Vec2F
	HasPointer bool
	Viewport   vmath.Rect
	Target     vmath.Rect
}
