package player

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const defaultBufferMS = 100

// Device decodes wav/mp3 files and plays them on the default output
// device. It is the guaranteed fallback: always available, no external
// tooling required.
type Device struct {
	bufferMS int
}

// NewDevice builds a device player with the given speaker buffer size in
// milliseconds (0 means the default).
func NewDevice(bufferMS int) *Device {
	if bufferMS <= 0 {
		bufferMS = defaultBufferMS
	}
	return &Device{bufferMS: bufferMS}
}

func (d *Device) Name() string { return "device" }

func (d *Device) Available() bool { return true }

// Play decodes the file, initializes the speaker at the file's sample
// rate and blocks until playback completes or ctx is cancelled.
func (d *Device) Play(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	streamer, format, err := d.decode(f, path)
	if err != nil {
		return PlaybackError{Player: d.Name(), Err: err}
	}
	defer streamer.Close()

	bufSize := format.SampleRate.N(time.Duration(d.bufferMS) * time.Millisecond)
	if err := speaker.Init(format.SampleRate, bufSize); err != nil {
		return PlaybackError{Player: d.Name(), Err: fmt.Errorf("init output device: %w", err)}
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

func (d *Device) decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3.Decode(f)
	case ".wav":
		return wav.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
}
