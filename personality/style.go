package personality

// StyleToken is a renderer-agnostic visual treatment hint
type StyleToken string

const (
	StyleBright   StyleToken = "bright"
	StyleSaturate StyleToken = "saturate"
	StyleBounce   StyleToken = "bounce"
	StyleDim      StyleToken = "dim"
	StylePulse    StyleToken = "pulse"
	StyleHot      StyleToken = "hot"
	StyleBlur     StyleToken = "blur"
	StyleSpin     StyleToken = "spin"
	StyleChaos    StyleToken = "chaos"
	StyleGlow     StyleToken = "glow"
)

var moodStyles = map[Mood][]StyleToken{
	MoodHappy:      {StyleBright, StyleSaturate},
	MoodExcited:    {StyleBounce, StyleBright},
	MoodSleepy:     {StyleDim},
	MoodAngry:      {StyleHot, StylePulse},
	MoodMysterious: {StyleDim, StylePulse, StyleBlur},
	MoodChaotic:    {StyleChaos, StyleSpin},
	MoodZen:        {StyleGlow, StylePulse},
}

// Styles returns the style token set for a mood, the result is a fresh slice
func Styles(m Mood) []StyleToken {
	src := moodStyles[m]
	out := make([]StyleToken, len(src))
	copy(out, src)
	return out
}

// HasStyle reports whether tokens contains s
func HasStyle(tokens []StyleToken, s StyleToken) bool {
	for _, t := range tokens {
		if t == s {
			return true
		}
	}
	return false
}
