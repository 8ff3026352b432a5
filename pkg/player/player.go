package player

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/neosapience/typecast-mcp/pkg/configutil"
	"github.com/neosapience/typecast-mcp/pkg/errorsx"
)

// Player is one way of playing a local audio file. Play blocks until
// playback completes or ctx is cancelled.
type Player interface {
	Name() string
	Available() bool
	Play(ctx context.Context, path string) error
}

// PlaybackError is a local decode or device failure.
type PlaybackError struct {
	Player string
	Err    error
}

func (e PlaybackError) Error() string {
	return fmt.Sprintf("playback via %s: %v", e.Player, e.Err)
}

func (e PlaybackError) Unwrap() error {
	return e.Err
}

// Settings is the free-form player configuration block.
type Settings struct {
	Binary   string `mapstructure:"binary"`
	BufferMS int    `mapstructure:"buffer_ms"`
}

var settingsSchema = configutil.Schema{
	Optional: []string{"binary", "buffer_ms"},
}

// Stack tries players in order, preferring the first available one and
// falling back on error. The direct-device player is always placed last
// so a working fallback exists even without external tooling.
type Stack struct {
	players []Player
	log     *slog.Logger
}

// NewStack builds a fallback chain in the given order.
func NewStack(log *slog.Logger, players ...Player) *Stack {
	if log == nil {
		log = slog.Default()
	}
	return &Stack{players: players, log: log}
}

// FromConfig builds the playback chain selected by the config provider:
// "ffplay" or "device" pin one implementation, "auto" (or empty) prefers
// the external player with the device as fallback.
func FromConfig(provider string, settings map[string]any, log *slog.Logger) (*Stack, error) {
	if err := configutil.ValidateSettings(settings, settingsSchema); err != nil {
		return nil, errorsx.Wrap(fmt.Errorf("player settings: %w", err), errorsx.ReasonConfig)
	}
	var s Settings
	if err := configutil.DecodeSettings(settings, &s); err != nil {
		return nil, errorsx.Wrap(fmt.Errorf("player settings: %w", err), errorsx.ReasonConfig)
	}

	switch provider {
	case "", "auto":
		return NewStack(log, NewFFPlay(s.Binary), NewDevice(s.BufferMS)), nil
	case "ffplay":
		ff := NewFFPlay(s.Binary)
		if !ff.Available() {
			return nil, errorsx.New(errorsx.ReasonConfig, "ffplay player requested but no ffplay binary found")
		}
		return NewStack(log, ff), nil
	case "device":
		return NewStack(log, NewDevice(s.BufferMS)), nil
	default:
		return nil, errorsx.New(errorsx.ReasonConfig, "unknown player provider "+provider)
	}
}

// Play plays the file with the first player that succeeds and returns
// the name of the player used.
func (s *Stack) Play(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", errorsx.Wrap(fmt.Errorf("audio file: %w", err), errorsx.ReasonFilesystem)
	}

	var lastErr error
	for _, p := range s.players {
		if !p.Available() {
			s.log.Debug("player unavailable", slog.String("player", p.Name()))
			continue
		}
		err := p.Play(ctx, path)
		if err == nil {
			s.log.Info("playback finished",
				slog.String("player", p.Name()),
				slog.String("path", path))
			return p.Name(), nil
		}
		if ctx.Err() != nil {
			return "", errorsx.Wrap(ctx.Err(), errorsx.ReasonPlayback)
		}
		s.log.Warn("player failed, trying next",
			slog.String("player", p.Name()),
			slog.String("error", err.Error()))
		lastErr = err
	}
	if lastErr == nil {
		lastErr = PlaybackError{Player: "none", Err: fmt.Errorf("no usable audio player")}
	}
	return "", errorsx.Wrap(lastErr, errorsx.ReasonPlayback)
}
