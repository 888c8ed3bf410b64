package audio

import "errors"

// Sentinel errors
var (
	ErrDisabled    = errors.New("audio disabled by configuration")
	ErrSpeakerInit = errors.New("audio speaker init failed")
)
