package tts

import (
	"strconv"
	"unicode/utf8"
)

const (
	// MaxTextLength is the remote API's per-request character limit.
	MaxTextLength = 5000
	// MaxSeed is the largest accepted generation seed.
	MaxSeed = 1<<31 - 1
)

// Output holds the audio shaping parameters of one request.
type Output struct {
	Volume      int         `json:"volume"`
	AudioPitch  int         `json:"audio_pitch"`
	AudioTempo  float64     `json:"audio_tempo"`
	AudioFormat AudioFormat `json:"audio_format"`
}

// OutputParams are the raw output inputs; nil fields take the defaults
// (volume 100, pitch 0, tempo 1.0, format wav).
type OutputParams struct {
	Volume      *int
	AudioPitch  *int
	AudioTempo  *float64
	AudioFormat string
}

// DefaultOutput returns the output configuration the remote API assumes.
func DefaultOutput() Output {
	return Output{Volume: 100, AudioPitch: 0, AudioTempo: 1.0, AudioFormat: FormatWAV}
}

// NewOutput applies defaults and range-checks every field.
func NewOutput(p OutputParams) (Output, error) {
	out := DefaultOutput()
	if p.Volume != nil {
		out.Volume = *p.Volume
	}
	if p.AudioPitch != nil {
		out.AudioPitch = *p.AudioPitch
	}
	if p.AudioTempo != nil {
		out.AudioTempo = *p.AudioTempo
	}
	if out.Volume < 0 || out.Volume > 200 {
		return Output{}, validationErr("volume", "must be in [0, 200]")
	}
	if out.AudioPitch < -12 || out.AudioPitch > 12 {
		return Output{}, validationErr("audio_pitch", "must be in [-12, 12]")
	}
	if out.AudioTempo < 0.5 || out.AudioTempo > 2.0 {
		return Output{}, validationErr("audio_tempo", "must be in [0.5, 2.0]")
	}
	format, err := ParseAudioFormat(p.AudioFormat)
	if err != nil {
		return Output{}, err
	}
	out.AudioFormat = format
	return out, nil
}

// Request is one validated synthesis request. It is request-scoped:
// built per call, serialized once, never persisted.
type Request struct {
	VoiceID  string `json:"voice_id"`
	Text     string `json:"text"`
	Model    Model  `json:"model"`
	Language string `json:"language,omitempty"`
	Prompt   Prompt `json:"prompt"`
	Output   Output `json:"output"`
	Seed     *int64 `json:"seed,omitempty"`
}

// RequestParams are the raw primitive inputs of one synthesis call.
type RequestParams struct {
	VoiceID  string
	Text     string
	Model    string
	Language string
	Prompt   PromptParams
	Output   OutputParams
	Seed     *int64
}

// NewRequest validates and normalizes raw inputs into a Request, or fails
// with a ValidationError / InvalidEnumValueError naming the offending field.
func NewRequest(p RequestParams) (Request, error) {
	if p.VoiceID == "" {
		return Request{}, validationErr("voice_id", "must not be empty")
	}
	if p.Text == "" {
		return Request{}, validationErr("text", "must not be empty")
	}
	if utf8.RuneCountInString(p.Text) > MaxTextLength {
		return Request{}, validationErr("text", "must be at most "+strconv.Itoa(MaxTextLength)+" characters")
	}
	model, err := ParseModel(p.Model)
	if err != nil {
		return Request{}, err
	}
	prompt, err := NewPrompt(model, p.Prompt)
	if err != nil {
		return Request{}, err
	}
	output, err := NewOutput(p.Output)
	if err != nil {
		return Request{}, err
	}
	if p.Seed != nil && (*p.Seed < 0 || *p.Seed > MaxSeed) {
		return Request{}, validationErr("seed", "must be in [0, 2147483647]")
	}
	return Request{
		VoiceID:  p.VoiceID,
		Text:     p.Text,
		Model:    model,
		Language: p.Language,
		Prompt:   prompt,
		Output:   output,
		Seed:     p.Seed,
	}, nil
}
