package mock

import (
	"context"

	"github.com/jayaanth/tweetvoice"
)

// Compile-time interface verification.
var (
	_ tweetvoice.Synthesizer = (*Synthesizer)(nil)
	_ tweetvoice.AudioStore  = (*AudioStore)(nil)
)

// Synthesizer is a mock implementation of tweetvoice.Synthesizer.
type Synthesizer struct {
	SynthesizeFn func(ctx context.Context, text, language string) (string, error)
}

func (s *Synthesizer) Synthesize(ctx context.Context, text, language string) (string, error) {
	return s.SynthesizeFn(ctx, text, language)
}

// AudioStore is a mock implementation of tweetvoice.AudioStore.
type AudioStore struct {
	SaveAudioFn func(ctx context.Context, audio *tweetvoice.Audio) (string, error)
}

func (s *AudioStore) SaveAudio(ctx context.Context, audio *tweetvoice.Audio) (string, error) {
	return s.SaveAudioFn(ctx, audio)
}
