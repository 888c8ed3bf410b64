package input

import "time"

// SignalKind is a discrete behavioral signal produced by the Arbiter
type SignalKind uint8

const (
	SignalHover SignalKind = iota
	SignalUnhover
	SignalClick
	SignalRapidClick // RapidClickThresholdExceeded
	SignalSequenceMatched
	SignalKey
	SignalPointerMoved
	SignalFaceDetected
	SignalSmileDetected
	SignalFaceLost
)

var signalNames = [...]string{
	SignalHover:           "hover",
	SignalUnhover:         "unhover",
	SignalClick:           "click",
	SignalRapidClick:      "rapid_click",
	SignalSequenceMatched: "sequence_matched",
	SignalKey:             "key",
	SignalPointerMoved:    "pointer_moved",
	SignalFaceDetected:    "face_detected",
	SignalSmileDetected:   "smile_detected",
	SignalFaceLost:        "face_lost",
}

func (k SignalKind) String() string {
	if int(k) < len(signalNames) {
		return signalNames[k]
	}
	return "unknown"
}

// IsActivity reports whether the signal counts as user activity for idle tracking
func (k SignalKind) IsActivity() bool {
	switch k {
	case SignalHover, SignalClick, SignalRapidClick, SignalSequenceMatched, SignalKey, SignalPointerMoved:
		return true
	}
	return false
}

// Signal is one arbiter output
type Signal struct {
	Kind SignalKind
	Time time.Time

	// Ordinal selects the click-response variant, valid for SignalClick
	Ordinal int

	// Pointer position for SignalPointerMoved
	X, Y float64
}
