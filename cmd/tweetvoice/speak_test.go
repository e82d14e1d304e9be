package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jayaanth/tweetvoice"
	main "github.com/jayaanth/tweetvoice/cmd/tweetvoice"
	"github.com/jayaanth/tweetvoice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeakCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("synthesizes extracted body", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(context.Context, tweetvoice.Variant, string) (*tweetvoice.Result, error) {
				return &tweetvoice.Result{Title: "Post", Body: "  Read me  "}, nil
			},
		}
		var gotText, gotLang string
		synth := &mock.Synthesizer{
			SynthesizeFn: func(_ context.Context, text, language string) (string, error) {
				gotText, gotLang = text, language
				return "out/abc.wav", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Extractor:   extractor,
			Synthesizer: synth,
		}

		cmd := &main.SpeakCmd{Mode: "short", URL: "https://x.com/a/status/1"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Read me", gotText)
		assert.Equal(t, tweetvoice.DefaultLanguage, gotLang)
		assert.Equal(t, "Post\nout/abc.wav\n", stdout.String())
	})

	t.Run("does not synthesize when extraction fails", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(context.Context, tweetvoice.Variant, string) (*tweetvoice.Result, error) {
				return nil, tweetvoice.Errorf(tweetvoice.ENAVTIMEOUT, "page did not become ready")
			},
		}
		synth := &mock.Synthesizer{
			SynthesizeFn: func(context.Context, string, string) (string, error) {
				t.Fatal("synthesizer should not be called")
				return "", nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      &bytes.Buffer{},
			Stderr:      stderr,
			Extractor:   extractor,
			Synthesizer: synth,
		}

		cmd := &main.SpeakCmd{Mode: "short", URL: "https://x.com/a/status/1"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, tweetvoice.ENAVTIMEOUT, tweetvoice.ErrorCode(err))
		assert.Contains(t, stderr.String(), "page did not become ready")
	})
}
