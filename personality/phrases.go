package personality

import "github.com/lixenwraith/alive/vmath"

var phrases = map[Mood][]string{
	MoodHappy: {
		"Glad you stopped by!",
		"Everything is lovely from up here.",
		"Feeling bright and well-kerned.",
		"Joy has serifs today.",
	},
	MoodExcited: {
		"THIS IS THE BEST FRAME EVER!",
		"Energy levels off the chart!",
		"Can't stop, won't stop!",
		"AGAIN! DO IT AGAIN!",
	},
	MoodSleepy: {
		"Zzz... just resting my strokes...",
		"Five more minutes...",
		"So... very... sleepy...",
		"Dreaming of blank pages...",
	},
	MoodAngry: {
		"Hey, stop poking me!",
		"Not amused. Not at all.",
		"Careful, I bite in bold.",
		"Personal space, please!",
	},
	MoodMysterious: {
		"I know things you don't...",
		"The margins whisper secrets...",
		"Some glyphs are older than words...",
		"Look closer. No, closer.",
	},
	MoodChaotic: {
		"CHAOS! MAYHEM! WHEEE!",
		"Reality is bending around me!",
		"Rules? What rules?",
		"ANARCHY IN THE ALPHABET!",
	},
	MoodZen: {
		"Breathe in... breathe out...",
		"At peace with the baseline.",
		"Flowing like water.",
		"Centered and aligned.",
	},
}

// Phrase picks a line for the mood. A nil rng returns the first line
func Phrase(m Mood, rng *vmath.FastRand) string {
	lines := phrases[m]
	if len(lines) == 0 {
		lines = phrases[MoodZen]
	}
	if rng == nil {
		return lines[0]
	}
	return lines[rng.Intn(len(lines))]
}
