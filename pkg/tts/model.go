package tts

// Model identifies a supported remote TTS model version.
type Model string

const (
	// ModelSSFMv21 is the legacy model; it only accepts the flat
	// preset+intensity prompt shape and the legacy preset set.
	ModelSSFMv21 Model = "ssfm-v21"
	// ModelSSFMv30 is the extended model; it accepts explicit preset
	// prompts over the full preset set and context-aware smart prompts.
	ModelSSFMv30 Model = "ssfm-v30"
)

var models = []Model{ModelSSFMv21, ModelSSFMv30}

// ParseModel validates a raw model string against the closed model set.
func ParseModel(s string) (Model, error) {
	for _, m := range models {
		if s == string(m) {
			return m, nil
		}
	}
	return "", enumErr("model", s, modelStrings())
}

// SupportsSmartPrompt reports whether the model accepts context-aware prompts.
func (m Model) SupportsSmartPrompt() bool {
	return m == ModelSSFMv30
}

// SupportsPreset reports whether the model accepts the given emotion preset.
func (m Model) SupportsPreset(p EmotionPreset) bool {
	if m == ModelSSFMv21 {
		_, ok := legacyPresets[p]
		return ok
	}
	_, ok := allPresets[p]
	return ok
}

// PresetNames returns the preset names valid for the model, for error messages.
func (m Model) PresetNames() []string {
	var src []EmotionPreset
	if m == ModelSSFMv21 {
		src = legacyPresetOrder
	} else {
		src = presetOrder
	}
	out := make([]string, len(src))
	for i, p := range src {
		out[i] = string(p)
	}
	return out
}

func modelStrings() []string {
	out := make([]string, len(models))
	for i, m := range models {
		out[i] = string(m)
	}
	return out
}

// EmotionPreset is a named, fixed emotional expression style.
type EmotionPreset string

const (
	PresetNormal   EmotionPreset = "normal"
	PresetHappy    EmotionPreset = "happy"
	PresetSad      EmotionPreset = "sad"
	PresetAngry    EmotionPreset = "angry"
	PresetRegret   EmotionPreset = "regret"
	PresetUrgent   EmotionPreset = "urgent"
	PresetWhisper  EmotionPreset = "whisper"
	PresetScream   EmotionPreset = "scream"
	PresetShout    EmotionPreset = "shout"
	PresetTrustful EmotionPreset = "trustful"
	PresetSoft     EmotionPreset = "soft"
	PresetCold     EmotionPreset = "cold"
	PresetSarcasm  EmotionPreset = "sarcasm"
	PresetInspire  EmotionPreset = "inspire"
	PresetCute     EmotionPreset = "cute"
	PresetCheer    EmotionPreset = "cheer"
	PresetCasual   EmotionPreset = "casual"
	PresetTunelV1  EmotionPreset = "tunelv1"
	PresetTunelV2  EmotionPreset = "tunelv2"
	PresetToneMid  EmotionPreset = "tonemid"
	PresetToneUp   EmotionPreset = "toneup"
	PresetToneDown EmotionPreset = "tonedown"
)

var legacyPresetOrder = []EmotionPreset{
	PresetNormal, PresetHappy, PresetSad, PresetAngry, PresetRegret, PresetUrgent,
}

var presetOrder = []EmotionPreset{
	PresetNormal, PresetHappy, PresetSad, PresetAngry, PresetRegret, PresetUrgent,
	PresetWhisper, PresetScream, PresetShout, PresetTrustful, PresetSoft,
	PresetCold, PresetSarcasm, PresetInspire, PresetCute, PresetCheer,
	PresetCasual, PresetTunelV1, PresetTunelV2, PresetToneMid, PresetToneUp,
	PresetToneDown,
}

var legacyPresets = presetSet(legacyPresetOrder)
var allPresets = presetSet(presetOrder)

func presetSet(presets []EmotionPreset) map[EmotionPreset]struct{} {
	out := make(map[EmotionPreset]struct{}, len(presets))
	for _, p := range presets {
		out[p] = struct{}{}
	}
	return out
}

// ParseEmotionPreset validates a raw preset string against the full preset
// set. Model-specific availability is checked when the prompt is built.
func ParseEmotionPreset(s string) (EmotionPreset, error) {
	if s == "" {
		return PresetNormal, nil
	}
	p := EmotionPreset(s)
	if _, ok := allPresets[p]; !ok {
		return "", enumErr("emotion_preset", s, (ModelSSFMv30).PresetNames())
	}
	return p, nil
}

// AudioFormat is the container format of the generated audio.
type AudioFormat string

const (
	FormatWAV AudioFormat = "wav"
	FormatMP3 AudioFormat = "mp3"
)

// ParseAudioFormat validates a raw format string, defaulting to wav.
func ParseAudioFormat(s string) (AudioFormat, error) {
	switch s {
	case "", string(FormatWAV):
		return FormatWAV, nil
	case string(FormatMP3):
		return FormatMP3, nil
	default:
		return "", enumErr("audio_format", s, []string{"wav", "mp3"})
	}
}
