package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/neosapience/typecast-mcp/pkg/audiofile"
	"github.com/neosapience/typecast-mcp/pkg/providers/typecast"
	"github.com/neosapience/typecast-mcp/pkg/tts"
)

type stubAPI struct {
	voices []typecast.Voice
	audio  []byte
	err    error

	lastFilter  typecast.VoiceFilter
	lastRequest tts.Request
}

func (s *stubAPI) ListVoices(ctx context.Context, filter typecast.VoiceFilter) ([]typecast.Voice, error) {
	s.lastFilter = filter
	return s.voices, s.err
}

func (s *stubAPI) GetVoice(ctx context.Context, voiceID string) (typecast.Voice, error) {
	if s.err != nil {
		return typecast.Voice{}, s.err
	}
	return s.voices[0], nil
}

func (s *stubAPI) Synthesize(ctx context.Context, req tts.Request) ([]byte, error) {
	s.lastRequest = req
	return s.audio, s.err
}

type stubPlayer struct {
	method string
	err    error
	path   string
}

func (s *stubPlayer) Play(ctx context.Context, path string) (string, error) {
	s.path = path
	return s.method, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestTextToSpeechSavesSynthesizedAudio(t *testing.T) {
	api := &stubAPI{audio: []byte{0xDE, 0xAD, 0xBE, 0xEF}}
	store := audiofile.NewStore(t.TempDir(), nil)
	srv := New(api, store, &stubPlayer{}, discardLogger())

	path, err := srv.TextToSpeech(context.Background(), TextToSpeechParams{
		VoiceID: "tc_123",
		Text:    "Hello there!",
		Model:   string(tts.ModelSSFMv21),
	})
	if err != nil {
		t.Fatalf("text_to_speech: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(got) != string(api.audio) {
		t.Fatalf("saved bytes differ from synthesized bytes")
	}
	if api.lastRequest.Model != tts.ModelSSFMv21 {
		t.Fatalf("unexpected request model %s", api.lastRequest.Model)
	}
	if !strings.HasSuffix(path, ".wav") {
		t.Fatalf("expected default wav format, got %q", path)
	}
}

func TestTextToSpeechValidationShortCircuits(t *testing.T) {
	api := &stubAPI{audio: []byte{1}}
	srv := New(api, audiofile.NewStore(t.TempDir(), nil), &stubPlayer{}, discardLogger())

	bad := 3.5
	_, err := srv.TextToSpeech(context.Background(), TextToSpeechParams{
		VoiceID:          "tc_123",
		Text:             "hi",
		Model:            string(tts.ModelSSFMv21),
		EmotionIntensity: &bad,
	})
	var verr tts.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if api.lastRequest.VoiceID != "" {
		t.Fatalf("validation failure must not reach the network")
	}
}

func TestTextToSpeechEndToEndAgainstFakeRemote(t *testing.T) {
	audio := []byte("RIFFfakewavbytes")
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-KEY") != "tk_test" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Write(audio)
	}))
	defer remote.Close()

	client, err := typecast.New(typecast.Config{APIHost: remote.URL, APIKey: "tk_test"}, discardLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	srv := New(client, audiofile.NewStore(t.TempDir(), nil), &stubPlayer{}, discardLogger())

	path, err := srv.TextToSpeech(context.Background(), TextToSpeechParams{
		VoiceID:      "tc_123",
		Text:         "Hello there!",
		Model:        string(tts.ModelSSFMv30),
		PromptMode:   tts.PromptModeSmart,
		PreviousText: "I just got great news!",
		AudioFormat:  "mp3",
	})
	if err != nil {
		t.Fatalf("text_to_speech: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(got) != string(audio) {
		t.Fatalf("round trip mismatch")
	}
	if !strings.HasSuffix(path, "_tc_123_Hellothere.mp3") {
		t.Fatalf("unexpected filename %q", path)
	}
}

func TestVoicesForwardsFilter(t *testing.T) {
	api := &stubAPI{voices: []typecast.Voice{{VoiceID: "tc_1"}}}
	srv := New(api, audiofile.NewStore(t.TempDir(), nil), &stubPlayer{}, discardLogger())

	voices, err := srv.Voices(context.Background(), GetVoicesParams{Model: "ssfm-v21", Gender: "female"})
	if err != nil {
		t.Fatalf("voices: %v", err)
	}
	if len(voices) != 1 {
		t.Fatalf("unexpected voices %+v", voices)
	}
	if api.lastFilter.Model != "ssfm-v21" || api.lastFilter.Gender != "female" {
		t.Fatalf("filter not forwarded, got %+v", api.lastFilter)
	}
}

func TestPlayAudioReportsMethod(t *testing.T) {
	p := &stubPlayer{method: "ffplay"}
	srv := New(&stubAPI{}, audiofile.NewStore(t.TempDir(), nil), p, discardLogger())

	method, err := srv.PlayAudio(context.Background(), PlayAudioParams{FilePath: "/tmp/a.wav"})
	if err != nil {
		t.Fatalf("play_audio: %v", err)
	}
	if method != "ffplay" || p.path != "/tmp/a.wav" {
		t.Fatalf("unexpected playback %q %q", method, p.path)
	}
}
