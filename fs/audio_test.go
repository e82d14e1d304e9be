package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jayaanth/tweetvoice"
	"github.com/jayaanth/tweetvoice/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioStore_SaveAudio(t *testing.T) {
	t.Parallel()

	t.Run("writes file with extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewAudioStore(dir)

		path, err := store.SaveAudio(context.Background(), &tweetvoice.Audio{Data: []byte("RIFF"), Ext: "wav"})

		require.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(path))
		assert.Equal(t, ".wav", filepath.Ext(path))
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "RIFF", string(content))
	})

	t.Run("creates missing directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "audio")
		store := fs.NewAudioStore(dir)

		path, err := store.SaveAudio(context.Background(), &tweetvoice.Audio{Data: []byte{1}, Ext: ".wav"})

		require.NoError(t, err)
		assert.FileExists(t, path)
		assert.Equal(t, ".wav", filepath.Ext(path))
	})

	t.Run("names are unique", func(t *testing.T) {
		t.Parallel()

		store := fs.NewAudioStore(t.TempDir())
		audio := &tweetvoice.Audio{Data: []byte{1}, Ext: "wav"}

		first, err := store.SaveAudio(context.Background(), audio)
		require.NoError(t, err)
		second, err := store.SaveAudio(context.Background(), audio)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("rejects empty audio", func(t *testing.T) {
		t.Parallel()

		store := fs.NewAudioStore(t.TempDir())

		_, err := store.SaveAudio(context.Background(), &tweetvoice.Audio{Ext: "wav"})

		require.Error(t, err)
		assert.Equal(t, tweetvoice.EINVALID, tweetvoice.ErrorCode(err))
	})

	t.Run("rejects missing extension", func(t *testing.T) {
		t.Parallel()

		store := fs.NewAudioStore(t.TempDir())

		_, err := store.SaveAudio(context.Background(), &tweetvoice.Audio{Data: []byte{1}})

		require.Error(t, err)
		assert.Contains(t, tweetvoice.ErrorMessage(err), "extension")
	})
}
