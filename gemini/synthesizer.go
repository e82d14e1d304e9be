// Package gemini synthesizes speech with the Gemini text-to-speech models.
package gemini

import (
	"context"
	"strconv"
	"strings"

	"github.com/jayaanth/tweetvoice"
	"google.golang.org/genai"
)

// Defaults for speech generation.
const (
	DefaultModel = "gemini-2.5-flash-preview-tts"
	DefaultVoice = "Kore"
)

// Gemini TTS returns raw 16-bit mono PCM. The rate is read from the MIME
// type when present.
const (
	defaultSampleRate = 24000
	pcmChannels       = 1
	pcmBitsPerSample  = 16
)

// Ensure Synthesizer implements tweetvoice.Synthesizer at compile time.
var _ tweetvoice.Synthesizer = (*Synthesizer)(nil)

// Synthesizer implements tweetvoice.Synthesizer using Google Gemini.
type Synthesizer struct {
	client *genai.Client
	store  tweetvoice.AudioStore
	model  string
	voice  string
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithModel sets the TTS model name.
func WithModel(model string) Option {
	return func(s *Synthesizer) {
		s.model = model
	}
}

// WithVoice sets the prebuilt voice name.
func WithVoice(voice string) Option {
	return func(s *Synthesizer) {
		s.voice = voice
	}
}

// NewSynthesizer creates a Synthesizer that saves audio to store.
func NewSynthesizer(client *genai.Client, store tweetvoice.AudioStore, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		client: client,
		store:  store,
		model:  DefaultModel,
		voice:  DefaultVoice,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize renders text as WAV audio and returns the saved path.
func (s *Synthesizer) Synthesize(ctx context.Context, text, language string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", tweetvoice.Errorf(tweetvoice.EINVALID, "text required")
	}
	if language == "" {
		language = tweetvoice.DefaultLanguage
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(text), BuildSpeechConfig(language, s.voice))
	if err != nil {
		return "", err
	}

	blob, err := AudioBlob(result)
	if err != nil {
		return "", err
	}

	wav := EncodeWAV(blob.Data, SampleRate(blob.MIMEType), pcmChannels, pcmBitsPerSample)
	return s.store.SaveAudio(ctx, &tweetvoice.Audio{Data: wav, Ext: "wav"})
}

// BuildSpeechConfig returns the GenerateContentConfig for an audio response.
func BuildSpeechConfig(language, voice string) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			LanguageCode: language,
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: voice,
				},
			},
		},
	}
}

// AudioBlob returns the first inline audio part of a response.
func AudioBlob(result *genai.GenerateContentResponse) (*genai.Blob, error) {
	if result == nil {
		return nil, tweetvoice.Errorf(tweetvoice.EINTERNAL, "gemini returned nil result")
	}
	for _, c := range result.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if p != nil && p.InlineData != nil && len(p.InlineData.Data) > 0 {
				return p.InlineData, nil
			}
		}
	}
	return nil, tweetvoice.Errorf(tweetvoice.EINTERNAL, "gemini returned no audio")
}

// SampleRate reads the rate parameter of a MIME type such as
// "audio/L16;codec=pcm;rate=24000".
func SampleRate(mimeType string) int {
	for _, param := range strings.Split(mimeType, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || key != "rate" {
			continue
		}
		if rate, err := strconv.Atoi(value); err == nil && rate > 0 {
			return rate
		}
	}
	return defaultSampleRate
}
