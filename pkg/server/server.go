package server

import (
	"context"
	"log/slog"

	"github.com/neosapience/typecast-mcp/pkg/audiofile"
	"github.com/neosapience/typecast-mcp/pkg/providers/typecast"
	"github.com/neosapience/typecast-mcp/pkg/redact"
	"github.com/neosapience/typecast-mcp/pkg/tts"
)

// VoiceAPI is the remote TTS capability the tools are built on.
type VoiceAPI interface {
	ListVoices(ctx context.Context, filter typecast.VoiceFilter) ([]typecast.Voice, error)
	GetVoice(ctx context.Context, voiceID string) (typecast.Voice, error)
	Synthesize(ctx context.Context, req tts.Request) ([]byte, error)
}

// AudioPlayer is the local playback capability. Play returns the name of
// the implementation that ended up playing the file.
type AudioPlayer interface {
	Play(ctx context.Context, path string) (string, error)
}

// Server implements the tool surface. It carries no state across calls;
// every handler is a pure function of its inputs plus the environment.
type Server struct {
	api    VoiceAPI
	store  *audiofile.Store
	player AudioPlayer
	log    *slog.Logger
}

// New wires the tool surface from its collaborators.
func New(api VoiceAPI, store *audiofile.Store, player AudioPlayer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{api: api, store: store, player: player, log: log}
}

// GetVoicesParams filters the voice listing.
type GetVoicesParams struct {
	Model  string `json:"model,omitempty"`
	Gender string `json:"gender,omitempty"`
	Age    string `json:"age,omitempty"`
}

// GetVoiceParams identifies one voice.
type GetVoiceParams struct {
	VoiceID string `json:"voice_id"`
}

// TextToSpeechParams are the raw synthesis inputs as the agent host
// supplies them. Optional numeric fields are pointers so "unset" and
// "zero" stay distinguishable and defaults can apply.
type TextToSpeechParams struct {
	VoiceID          string   `json:"voice_id"`
	Text             string   `json:"text"`
	Model            string   `json:"model"`
	Language         string   `json:"language,omitempty"`
	PromptMode       string   `json:"prompt_mode,omitempty"`
	EmotionPreset    string   `json:"emotion_preset,omitempty"`
	EmotionIntensity *float64 `json:"emotion_intensity,omitempty"`
	PreviousText     string   `json:"previous_text,omitempty"`
	NextText         string   `json:"next_text,omitempty"`
	Volume           *int     `json:"volume,omitempty"`
	AudioPitch       *int     `json:"audio_pitch,omitempty"`
	AudioTempo       *float64 `json:"audio_tempo,omitempty"`
	AudioFormat      string   `json:"audio_format,omitempty"`
	Seed             *int64   `json:"seed,omitempty"`
}

// PlayAudioParams locate a previously generated file.
type PlayAudioParams struct {
	FilePath string `json:"file_path"`
}

// Voices lists the voices matching the filter.
func (s *Server) Voices(ctx context.Context, p GetVoicesParams) ([]typecast.Voice, error) {
	return s.api.ListVoices(ctx, typecast.VoiceFilter{
		Model:  p.Model,
		Gender: p.Gender,
		Age:    p.Age,
	})
}

// VoiceDetail describes a single voice.
func (s *Server) VoiceDetail(ctx context.Context, voiceID string) (typecast.Voice, error) {
	return s.api.GetVoice(ctx, voiceID)
}

// TextToSpeech validates the inputs, synthesizes once and persists the
// returned audio. It returns the absolute path of the saved file.
func (s *Server) TextToSpeech(ctx context.Context, p TextToSpeechParams) (string, error) {
	req, err := tts.NewRequest(tts.RequestParams{
		VoiceID:  p.VoiceID,
		Text:     p.Text,
		Model:    p.Model,
		Language: p.Language,
		Prompt: tts.PromptParams{
			Mode:             p.PromptMode,
			EmotionPreset:    p.EmotionPreset,
			EmotionIntensity: p.EmotionIntensity,
			PreviousText:     p.PreviousText,
			NextText:         p.NextText,
		},
		Output: tts.OutputParams{
			Volume:      p.Volume,
			AudioPitch:  p.AudioPitch,
			AudioTempo:  p.AudioTempo,
			AudioFormat: p.AudioFormat,
		},
		Seed: p.Seed,
	})
	if err != nil {
		return "", err
	}

	s.log.Info("synthesizing speech",
		slog.String("voice_id", req.VoiceID),
		slog.String("model", string(req.Model)),
		slog.String("text", redact.Text(req.Text)))

	audio, err := s.api.Synthesize(ctx, req)
	if err != nil {
		return "", err
	}
	return s.store.Save(audio, req.VoiceID, req.Text, req.Output.AudioFormat)
}

// PlayAudio plays a local audio file, blocking until done, and reports
// which playback implementation was used.
func (s *Server) PlayAudio(ctx context.Context, p PlayAudioParams) (string, error) {
	return s.player.Play(ctx, p.FilePath)
}
