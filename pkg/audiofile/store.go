package audiofile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode"

	"github.com/neosapience/typecast-mcp/pkg/errorsx"
	"github.com/neosapience/typecast-mcp/pkg/tts"
)

const snippetLen = 10

// Store writes generated audio under a single output directory.
// Files are write-once, read-many; the store keeps no state between calls.
type Store struct {
	dir string
	log *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewStore builds a store rooted at dir. The directory is created lazily
// on the first save.
func NewStore(dir string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{dir: dir, log: log, now: time.Now}
}

// Dir returns the output directory.
func (s *Store) Dir() string { return s.dir }

// Save persists audio bytes as <timestamp>_<voiceID>_<snippet>.<format>
// and returns the absolute path written. The name keeps collisions
// unlikely, not impossible: two saves within the same second with the
// same voice and text prefix overwrite each other, which is accepted.
func (s *Store) Save(audio []byte, voiceID, text string, format tts.AudioFormat) (string, error) {
	// MkdirAll treats an existing directory as success, so concurrent
	// first saves cannot trip over each other.
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errorsx.Wrap(fmt.Errorf("create output dir: %w", err), errorsx.ReasonFilesystem)
	}

	name := fmt.Sprintf("%s_%s_%s.%s", s.now().Format("20060102-150405"), voiceID, snippet(text), format)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", errorsx.Wrap(fmt.Errorf("write audio file: %w", err), errorsx.ReasonFilesystem)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errorsx.Wrap(fmt.Errorf("resolve path: %w", err), errorsx.ReasonFilesystem)
	}
	s.log.Info("audio file saved",
		slog.String("path", abs),
		slog.Int("size_bytes", len(audio)))
	return abs, nil
}

// snippet keeps the first runes of the text, dropping whitespace and
// path-hostile characters so the name stays short and safe.
func snippet(text string) string {
	out := make([]rune, 0, snippetLen)
	for _, r := range text {
		if unicode.IsSpace(r) || r == '/' || r == '\\' || r == ':' {
			continue
		}
		out = append(out, r)
		if len(out) == snippetLen {
			break
		}
	}
	return string(out)
}
