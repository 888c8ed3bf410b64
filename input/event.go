package input

import "time"

// EventKind classifies a raw interaction event
type EventKind uint8

const (
	EventHoverEnter EventKind = iota
	EventHoverLeave
	EventClick
	EventKey
	EventPointer
	EventFace
)

// Event is a raw interaction, consumed immediately by the Arbiter
type Event struct {
	Kind EventKind
	Time time.Time

	// Pointer position for EventPointer and EventClick
	X, Y float64

	// Key token for EventKey (e.g. "ArrowUp", "KeyB")
	Key string

	// Camera-derived signal for EventFace
	Face FaceSignal
}

// FaceSignal is the camera collaborator's output. Zero value means no face
type FaceSignal struct {
	Detected   bool
	Confidence float64
	Smiling    bool
	Angry      bool
	Sad        bool
}

// Convenience constructors

func HoverEnter(t time.Time) Event { return Event{Kind: EventHoverEnter, Time: t} }
func HoverLeave(t time.Time) Event { return Event{Kind: EventHoverLeave, Time: t} }
func Click(t time.Time) Event      { return Event{Kind: EventClick, Time: t} }

func Key(t time.Time, token string) Event {
	return Event{Kind: EventKey, Time: t, Key: token}
}

func Pointer(t time.Time, x, y float64) Event {
	return Event{Kind: EventPointer, Time: t, X: x, Y: y}
}

func Face(t time.Time, f FaceSignal) Event {
	return Event{Kind: EventFace, Time: t, Face: f}
}
