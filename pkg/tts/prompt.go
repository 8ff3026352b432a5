package tts

import "encoding/json"

// Prompt modes for models that support the extended prompt shape.
const (
	PromptModePreset = "preset"
	PromptModeSmart  = "smart"
)

type promptKind int

const (
	promptLegacy promptKind = iota
	promptPreset
	promptSmart
)

// Prompt is the emotion expression of one synthesis request. Exactly one
// variant is active: the flat legacy shape, an explicit preset, or a
// context-aware smart prompt. Construct it with NewPrompt; the zero value
// marshals as a legacy normal prompt at zero intensity and should not be
// sent.
type Prompt struct {
	kind         promptKind
	preset       EmotionPreset
	intensity    float64
	previousText string
	nextText     string
}

// PromptParams are the raw prompt inputs supplied by the caller.
type PromptParams struct {
	// Mode selects preset or smart expression on models that support
	// both. Empty means preset. Ignored shapes are rejected, not coerced.
	Mode             string
	EmotionPreset    string
	EmotionIntensity *float64
	PreviousText     string
	NextText         string
}

// NewPrompt builds the prompt variant valid for the target model.
// Legacy models get the flat preset shape restricted to the legacy preset
// set; extended models choose between preset and smart by Mode.
func NewPrompt(model Model, p PromptParams) (Prompt, error) {
	intensity := 1.0
	if p.EmotionIntensity != nil {
		intensity = *p.EmotionIntensity
	}
	if intensity < 0.0 || intensity > 2.0 {
		return Prompt{}, validationErr("emotion_intensity", "must be in [0.0, 2.0]")
	}

	mode := p.Mode
	if mode == "" {
		mode = PromptModePreset
	}

	if !model.SupportsSmartPrompt() {
		if mode != PromptModePreset {
			return Prompt{}, validationErr("prompt.mode", "model "+string(model)+" supports preset prompts only")
		}
		preset, err := ParseEmotionPreset(p.EmotionPreset)
		if err != nil {
			return Prompt{}, err
		}
		if !model.SupportsPreset(preset) {
			return Prompt{}, enumErr("emotion_preset", string(preset), model.PresetNames())
		}
		return Prompt{kind: promptLegacy, preset: preset, intensity: intensity}, nil
	}

	switch mode {
	case PromptModePreset:
		preset, err := ParseEmotionPreset(p.EmotionPreset)
		if err != nil {
			return Prompt{}, err
		}
		return Prompt{kind: promptPreset, preset: preset, intensity: intensity}, nil
	case PromptModeSmart:
		return Prompt{kind: promptSmart, previousText: p.PreviousText, nextText: p.NextText}, nil
	default:
		return Prompt{}, enumErr("prompt.mode", mode, []string{PromptModePreset, PromptModeSmart})
	}
}

// Mode returns the active variant name: "legacy", "preset" or "smart".
func (p Prompt) Mode() string {
	switch p.kind {
	case promptPreset:
		return PromptModePreset
	case promptSmart:
		return PromptModeSmart
	default:
		return "legacy"
	}
}

// Preset returns the emotion preset for legacy and preset prompts.
func (p Prompt) Preset() EmotionPreset { return p.preset }

// Intensity returns the emotion intensity for legacy and preset prompts.
func (p Prompt) Intensity() float64 { return p.intensity }

func (p Prompt) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case promptSmart:
		return json.Marshal(struct {
			Mode         string `json:"mode"`
			PreviousText string `json:"previous_text,omitempty"`
			NextText     string `json:"next_text,omitempty"`
		}{PromptModeSmart, p.previousText, p.nextText})
	case promptPreset:
		return json.Marshal(struct {
			Mode             string        `json:"mode"`
			EmotionPreset    EmotionPreset `json:"emotion_preset"`
			EmotionIntensity float64       `json:"emotion_intensity"`
		}{PromptModePreset, p.preset, p.intensity})
	default:
		// Legacy model body carries no discriminant, matching /v1.
		return json.Marshal(struct {
			EmotionPreset    EmotionPreset `json:"emotion_preset"`
			EmotionIntensity float64       `json:"emotion_intensity"`
		}{p.preset, p.intensity})
	}
}
