package tts

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/neosapience/typecast-mcp/pkg/errorsx"
)

func intPtr(v int) *int           { return &v }
func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }

func validParams() RequestParams {
	return RequestParams{
		VoiceID: "tc_62a8975e695ad26f7fb514d1",
		Text:    "Hello there!",
		Model:   string(ModelSSFMv21),
	}
}

func TestNewRequestDefaults(t *testing.T) {
	req, err := NewRequest(validParams())
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if req.Output != DefaultOutput() {
		t.Fatalf("expected default output, got %+v", req.Output)
	}
	if req.Prompt.Preset() != PresetNormal || req.Prompt.Intensity() != 1.0 {
		t.Fatalf("expected default prompt, got %s/%v", req.Prompt.Preset(), req.Prompt.Intensity())
	}
}

func TestOutputBounds(t *testing.T) {
	cases := []struct {
		name   string
		params OutputParams
		field  string
		ok     bool
	}{
		{"volume low edge", OutputParams{Volume: intPtr(0)}, "", true},
		{"volume high edge", OutputParams{Volume: intPtr(200)}, "", true},
		{"volume below", OutputParams{Volume: intPtr(-1)}, "volume", false},
		{"volume above", OutputParams{Volume: intPtr(201)}, "volume", false},
		{"pitch low edge", OutputParams{AudioPitch: intPtr(-12)}, "", true},
		{"pitch high edge", OutputParams{AudioPitch: intPtr(12)}, "", true},
		{"pitch below", OutputParams{AudioPitch: intPtr(-13)}, "audio_pitch", false},
		{"pitch above", OutputParams{AudioPitch: intPtr(13)}, "audio_pitch", false},
		{"tempo low edge", OutputParams{AudioTempo: floatPtr(0.5)}, "", true},
		{"tempo high edge", OutputParams{AudioTempo: floatPtr(2.0)}, "", true},
		{"tempo below", OutputParams{AudioTempo: floatPtr(0.4)}, "audio_tempo", false},
		{"tempo above", OutputParams{AudioTempo: floatPtr(2.1)}, "audio_tempo", false},
	}
	for _, tc := range cases {
		_, err := NewOutput(tc.params)
		if tc.ok {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if verr.Field != tc.field {
			t.Fatalf("%s: expected field %q, got %q", tc.name, tc.field, verr.Field)
		}
		if !errorsx.HasReason(err, errorsx.ReasonValidation) {
			t.Fatalf("%s: expected validation reason", tc.name)
		}
	}
}

func TestEmotionIntensityBounds(t *testing.T) {
	for _, v := range []float64{0.0, 1.0, 2.0} {
		if _, err := NewPrompt(ModelSSFMv21, PromptParams{EmotionIntensity: floatPtr(v)}); err != nil {
			t.Fatalf("intensity %v: unexpected error %v", v, err)
		}
	}
	for _, v := range []float64{-0.1, 2.1} {
		_, err := NewPrompt(ModelSSFMv21, PromptParams{EmotionIntensity: floatPtr(v)})
		var verr ValidationError
		if !errors.As(err, &verr) || verr.Field != "emotion_intensity" {
			t.Fatalf("intensity %v: expected emotion_intensity ValidationError, got %v", v, err)
		}
	}
}

func TestLegacyModelRejectsExtendedPreset(t *testing.T) {
	_, err := NewPrompt(ModelSSFMv21, PromptParams{EmotionPreset: "whisper"})
	var eerr InvalidEnumValueError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected InvalidEnumValueError, got %v", err)
	}
	if eerr.Field != "emotion_preset" || eerr.Value != "whisper" {
		t.Fatalf("unexpected enum error %+v", eerr)
	}
	if !errorsx.HasReason(err, errorsx.ReasonInvalidEnum) {
		t.Fatalf("expected invalid enum reason")
	}
}

func TestExtendedModelAcceptsExtendedPreset(t *testing.T) {
	p, err := NewPrompt(ModelSSFMv30, PromptParams{EmotionPreset: "whisper"})
	if err != nil {
		t.Fatalf("whisper on extended model: %v", err)
	}
	if p.Mode() != PromptModePreset || p.Preset() != PresetWhisper {
		t.Fatalf("unexpected prompt %s/%s", p.Mode(), p.Preset())
	}
}

func TestUnknownPresetFails(t *testing.T) {
	_, err := NewPrompt(ModelSSFMv30, PromptParams{EmotionPreset: "gleeful"})
	var eerr InvalidEnumValueError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected InvalidEnumValueError, got %v", err)
	}
}

func TestSmartPromptWithPreviousTextOnly(t *testing.T) {
	p, err := NewPrompt(ModelSSFMv30, PromptParams{
		Mode:         PromptModeSmart,
		PreviousText: "I just got great news!",
	})
	if err != nil {
		t.Fatalf("smart prompt: %v", err)
	}
	if p.Mode() != PromptModeSmart {
		t.Fatalf("expected smart mode, got %s", p.Mode())
	}
}

func TestSmartPromptRejectedOnLegacyModel(t *testing.T) {
	_, err := NewPrompt(ModelSSFMv21, PromptParams{Mode: PromptModeSmart})
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Field != "prompt.mode" {
		t.Fatalf("expected prompt.mode ValidationError, got %v", err)
	}
}

func TestUnknownPromptModeFails(t *testing.T) {
	_, err := NewPrompt(ModelSSFMv30, PromptParams{Mode: "contextual"})
	var eerr InvalidEnumValueError
	if !errors.As(err, &eerr) || eerr.Field != "prompt.mode" {
		t.Fatalf("expected prompt.mode enum error, got %v", err)
	}
}

func TestPromptWireShapes(t *testing.T) {
	legacy, err := NewPrompt(ModelSSFMv21, PromptParams{EmotionPreset: "happy"})
	if err != nil {
		t.Fatalf("legacy prompt: %v", err)
	}
	b, err := json.Marshal(legacy)
	if err != nil {
		t.Fatalf("marshal legacy: %v", err)
	}
	if strings.Contains(string(b), "mode") {
		t.Fatalf("legacy prompt must not carry a discriminant, got %s", b)
	}
	if !strings.Contains(string(b), `"emotion_preset":"happy"`) {
		t.Fatalf("legacy prompt missing preset, got %s", b)
	}

	preset, _ := NewPrompt(ModelSSFMv30, PromptParams{EmotionPreset: "whisper"})
	b, _ = json.Marshal(preset)
	if !strings.Contains(string(b), `"mode":"preset"`) {
		t.Fatalf("preset prompt missing discriminant, got %s", b)
	}

	smart, _ := NewPrompt(ModelSSFMv30, PromptParams{Mode: PromptModeSmart, PreviousText: "I just got great news!"})
	b, _ = json.Marshal(smart)
	if !strings.Contains(string(b), `"mode":"smart"`) || !strings.Contains(string(b), `"previous_text"`) {
		t.Fatalf("smart prompt wire shape wrong, got %s", b)
	}
	if strings.Contains(string(b), "next_text") {
		t.Fatalf("unset next_text must be omitted, got %s", b)
	}
}

func TestRequestFieldValidation(t *testing.T) {
	p := validParams()
	p.VoiceID = ""
	if _, err := NewRequest(p); err == nil {
		t.Fatalf("expected empty voice_id to fail")
	}

	p = validParams()
	p.Text = ""
	if _, err := NewRequest(p); err == nil {
		t.Fatalf("expected empty text to fail")
	}

	p = validParams()
	p.Text = strings.Repeat("a", MaxTextLength+1)
	_, err := NewRequest(p)
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Field != "text" {
		t.Fatalf("expected text length ValidationError, got %v", err)
	}

	p = validParams()
	p.Model = "ssfm-v99"
	var eerr InvalidEnumValueError
	if _, err := NewRequest(p); !errors.As(err, &eerr) || eerr.Field != "model" {
		t.Fatalf("expected model enum error, got %v", err)
	}
}

func TestSeedBounds(t *testing.T) {
	p := validParams()
	p.Seed = int64Ptr(0)
	if _, err := NewRequest(p); err != nil {
		t.Fatalf("seed 0: %v", err)
	}
	p.Seed = int64Ptr(MaxSeed)
	if _, err := NewRequest(p); err != nil {
		t.Fatalf("seed max: %v", err)
	}
	for _, s := range []int64{-1, MaxSeed + 1} {
		p.Seed = int64Ptr(s)
		_, err := NewRequest(p)
		var verr ValidationError
		if !errors.As(err, &verr) || verr.Field != "seed" {
			t.Fatalf("seed %d: expected seed ValidationError, got %v", s, err)
		}
	}
}
