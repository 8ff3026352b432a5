package player

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// FFPlay plays audio through an external ffplay process. It is the
// preferred implementation when the binary is installed because it
// handles every format ffmpeg does.
type FFPlay struct {
	bin string
}

// NewFFPlay resolves the ffplay binary, honoring an explicit override.
func NewFFPlay(binary string) *FFPlay {
	if strings.TrimSpace(binary) != "" {
		return &FFPlay{bin: binary}
	}
	bin, err := exec.LookPath("ffplay")
	if err != nil {
		return &FFPlay{}
	}
	return &FFPlay{bin: bin}
}

func (f *FFPlay) Name() string { return "ffplay" }

func (f *FFPlay) Available() bool { return f.bin != "" }

// Play blocks until ffplay exits. Cancelling ctx kills the process.
func (f *FFPlay) Play(ctx context.Context, path string) error {
	if f.bin == "" {
		return PlaybackError{Player: f.Name(), Err: fmt.Errorf("ffplay binary not found")}
	}
	cmd := exec.CommandContext(ctx, f.bin, "-autoexit", "-nodisp", "-loglevel", "error", path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return PlaybackError{Player: f.Name(), Err: fmt.Errorf("%s", msg)}
	}
	return nil
}
