package tweetvoice

import (
	"context"
	"strings"
)

// DefaultLanguage is the synthesis language when none is given.
const DefaultLanguage = "en-US"

// Synthesizer turns text into an audio artifact.
type Synthesizer interface {
	// Synthesize renders text as speech and returns the artifact path.
	// Callers must not pass blank text; see Speak.
	Synthesize(ctx context.Context, text, language string) (path string, err error)
}

// Audio is an encoded audio artifact.
type Audio struct {
	Data []byte

	// Ext is the file extension without the dot, e.g. "wav".
	Ext string
}

// AudioStore persists audio artifacts.
type AudioStore interface {
	// SaveAudio writes the audio and returns its path.
	SaveAudio(ctx context.Context, audio *Audio) (path string, err error)
}

// Speak synthesizes text after rejecting blank input with EINVALID.
// An empty language falls back to DefaultLanguage.
func Speak(ctx context.Context, s Synthesizer, text, language string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", Errorf(EINVALID, "no text to synthesize")
	}
	if language == "" {
		language = DefaultLanguage
	}
	return s.Synthesize(ctx, text, language)
}
