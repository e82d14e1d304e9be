package tweetvoice_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jayaanth/tweetvoice"
	"github.com/jayaanth/tweetvoice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := tweetvoice.Errorf(tweetvoice.ENOCONTENT, "nothing matched %q", "div.x")

	assert.Equal(t, tweetvoice.ENOCONTENT, tweetvoice.ErrorCode(err))
	assert.Equal(t, "nothing matched \"div.x\"", tweetvoice.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tweetvoice.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tweetvoice.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, tweetvoice.EINTERNAL, tweetvoice.ErrorCode(err))
	assert.Equal(t, "Internal error.", tweetvoice.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extracting: %w", tweetvoice.Errorf(tweetvoice.EEMPTY, "blank"))

	assert.Equal(t, tweetvoice.EEMPTY, tweetvoice.ErrorCode(err))
	assert.Equal(t, "blank", tweetvoice.ErrorMessage(err))
}

func TestError_IncludesStageAndVariant(t *testing.T) {
	t.Parallel()

	err := &tweetvoice.Error{
		Code:    tweetvoice.ENAVTIMEOUT,
		Message: "page not ready",
		Stage:   tweetvoice.StageNavigate,
		Variant: tweetvoice.LongForm,
	}

	assert.Contains(t, err.Error(), "code=navigation_timeout")
	assert.Contains(t, err.Error(), "stage=navigate")
	assert.Contains(t, err.Error(), "variant=long")
	assert.Contains(t, err.Error(), "message=page not ready")
}

func TestError_UnwrapsCause(t *testing.T) {
	t.Parallel()

	err := &tweetvoice.Error{Code: tweetvoice.EUPSTREAM, Err: context.DeadlineExceeded}

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want tweetvoice.Variant
	}{
		{"short", tweetvoice.ShortForm},
		{"Tweet", tweetvoice.ShortForm},
		{"post", tweetvoice.ShortForm},
		{"long", tweetvoice.LongForm},
		{" ARTICLE ", tweetvoice.LongForm},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := tweetvoice.ParseVariant(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVariant_Unknown(t *testing.T) {
	t.Parallel()

	_, err := tweetvoice.ParseVariant("thread")

	require.Error(t, err)
	assert.Equal(t, tweetvoice.EINVALID, tweetvoice.ErrorCode(err))
}

func TestSettleOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "skipped", tweetvoice.SettleSkipped.String())
	assert.Equal(t, "settled", tweetvoice.Settled.String())
	assert.Equal(t, "timed_out", tweetvoice.TimedOut.String())
}

func TestSpeak(t *testing.T) {
	t.Parallel()

	t.Run("rejects blank text without calling synthesizer", func(t *testing.T) {
		t.Parallel()

		synth := &mock.Synthesizer{
			SynthesizeFn: func(context.Context, string, string) (string, error) {
				t.Fatal("synthesizer should not be called")
				return "", nil
			},
		}

		_, err := tweetvoice.Speak(context.Background(), synth, "  \n ", "en-US")

		require.Error(t, err)
		assert.Equal(t, tweetvoice.EINVALID, tweetvoice.ErrorCode(err))
	})

	t.Run("trims text and defaults language", func(t *testing.T) {
		t.Parallel()

		var gotText, gotLang string
		synth := &mock.Synthesizer{
			SynthesizeFn: func(_ context.Context, text, language string) (string, error) {
				gotText, gotLang = text, language
				return "/tmp/out.wav", nil
			},
		}

		path, err := tweetvoice.Speak(context.Background(), synth, "  hello  ", "")

		require.NoError(t, err)
		assert.Equal(t, "/tmp/out.wav", path)
		assert.Equal(t, "hello", gotText)
		assert.Equal(t, tweetvoice.DefaultLanguage, gotLang)
	})
}
