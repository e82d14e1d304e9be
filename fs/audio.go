// Package fs provides file-based storage for synthesized audio.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jayaanth/tweetvoice"
)

// Ensure AudioStore implements tweetvoice.AudioStore at compile time.
var _ tweetvoice.AudioStore = (*AudioStore)(nil)

// AudioStore writes audio artifacts as uniquely named files in a directory.
type AudioStore struct {
	baseDir string
}

// NewAudioStore creates a new AudioStore that writes to the given directory.
func NewAudioStore(baseDir string) *AudioStore {
	return &AudioStore{baseDir: baseDir}
}

// SaveAudio writes the audio to disk and returns its path.
func (s *AudioStore) SaveAudio(ctx context.Context, audio *tweetvoice.Audio) (string, error) {
	if audio == nil || len(audio.Data) == 0 {
		return "", tweetvoice.Errorf(tweetvoice.EINVALID, "audio data required")
	}
	ext := strings.TrimPrefix(audio.Ext, ".")
	if ext == "" {
		return "", tweetvoice.Errorf(tweetvoice.EINVALID, "audio extension required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(s.baseDir, uuid.New().String()+"."+ext)
	if err := os.WriteFile(path, audio.Data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
