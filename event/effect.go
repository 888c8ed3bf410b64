package event

// Effect identifies a one-shot request for an external collaborator
// (audio, speech, renderer). The core never produces the effect itself
type Effect uint8

const (
	// EffectWhoosh accompanies a regular click reaction
	// Trigger: non-escalating Click | Consumer: audio
	EffectWhoosh Effect = iota

	// EffectGlitch marks the start of the glitch overlay
	// Trigger: RapidClickThresholdExceeded | Consumer: audio, renderer
	EffectGlitch

	// EffectShapeShift asks the renderer to swap the glyph shape briefly
	// Trigger: RapidClickThresholdExceeded | Consumer: renderer
	EffectShapeShift

	// EffectExplosion opens chaos mode
	// Trigger: SequenceMatched | Consumer: audio, renderer
	EffectExplosion

	// EffectMusicalSequence plays the short melody
	// Trigger: SequenceMatched | Consumer: audio
	EffectMusicalSequence

	// EffectSpeakCrazyPhrase, EffectSpeakRobotic and EffectSpeakWhisper form the speech sequence
	// Trigger: SequenceMatched (staged +0s, +3s, +6s) | Consumer: speech
	EffectSpeakCrazyPhrase
	EffectSpeakRobotic
	EffectSpeakWhisper

	// EffectAmbientSpace starts the screensaver ambience
	// Trigger: idle timeout | Consumer: audio
	EffectAmbientSpace

	effectCount
)

var effectNames = [effectCount]string{
	EffectWhoosh:           "whoosh",
	EffectGlitch:           "glitch",
	EffectShapeShift:       "shape_shift",
	EffectExplosion:        "explosion",
	EffectMusicalSequence:  "musical_sequence",
	EffectSpeakCrazyPhrase: "speak_crazy_phrase",
	EffectSpeakRobotic:     "speak_robotic",
	EffectSpeakWhisper:     "speak_whisper",
	EffectAmbientSpace:     "ambient_space",
}

func (e Effect) String() string {
	if e < effectCount {
		return effectNames[e]
	}
	return "unknown"
}

// IsSpeech reports whether the effect targets the speech collaborator
func (e Effect) IsSpeech() bool {
	return e == EffectSpeakCrazyPhrase || e == EffectSpeakRobotic || e == EffectSpeakWhisper
}

// AllEffects returns every defined effect in declaration order
func AllEffects() []Effect {
	out := make([]Effect, 0, effectCount)
	for e := Effect(0); e < effectCount; e++ {
		out = append(out, e)
	}
	return out
}
