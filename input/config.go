package input

import "time"

// KonamiPattern is the default secret key sequence
var KonamiPattern = []string{
	"ArrowUp", "ArrowUp", "ArrowDown", "ArrowDown",
	"ArrowLeft", "ArrowRight", "ArrowLeft", "ArrowRight",
	"KeyB", "KeyA",
}

// Config tunes click escalation and sequence matching
type Config struct {
	// RapidWindow is the max inter-click gap that continues a burst
	RapidWindow time.Duration `yaml:"rapid_window"`
	// RapidThreshold is the burst length that escalates
	RapidThreshold int `yaml:"rapid_threshold"`
	// ClickVariants is the number of click-response variants for ordinal rotation
	ClickVariants int `yaml:"click_variants"`
	// Pattern is the secret key sequence
	Pattern []string `yaml:"pattern"`
	// MinFaceConfidence below which a detection counts as no face
	MinFaceConfidence float64 `yaml:"min_face_confidence"`
}

// DefaultConfig returns the stock arbitration parameters
func DefaultConfig() Config {
	pattern := make([]string, len(KonamiPattern))
	copy(pattern, KonamiPattern)
	return Config{
		RapidWindow:       500 * time.Millisecond,
		RapidThreshold:    5,
		ClickVariants:     3,
		Pattern:           pattern,
		MinFaceConfidence: 0,
	}
}
