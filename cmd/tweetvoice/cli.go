package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/jayaanth/tweetvoice"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Extractor   tweetvoice.Extractor
	Synthesizer tweetvoice.Synthesizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Enable debug logging"`
	Headless  bool          `default:"true" negatable:"" help:"Run Chrome without a window"`
	Sandbox   bool          `help:"Keep the Chrome sandbox enabled (fails in most containers)"`
	ChromeBin string        `name:"chrome-bin" env:"TWEETVOICE_CHROME_BIN" help:"Path to the Chrome or Chromium binary"`
	Profile   string        `env:"TWEETVOICE_PROFILE" type:"path" help:"Chrome user data directory (reuses a logged-in session)"`
	HTML      string        `name:"html" type:"existingfile" xor:"source" help:"Extract from a saved HTML file instead of a live browser"`
	Static    bool          `xor:"source" help:"Fetch server-rendered HTML over HTTP instead of a live browser"`
	Timeout   time.Duration `default:"20s" help:"HTTP timeout for --static"`

	Extract ExtractCmd `cmd:"" help:"Print the text of X posts or articles"`
	Speak   SpeakCmd   `cmd:"" help:"Extract a post or article and synthesize it to audio"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Mode        string   `short:"m" default:"short" help:"Content variant: short (post) or long (article)"`
	Concurrency int      `short:"c" default:"1" help:"Concurrent extraction limit"`
	URLs        []string `arg:"" name:"url" help:"Page URLs to extract"`
}

// SpeakCmd is the "speak" subcommand.
type SpeakCmd struct {
	Mode  string `short:"m" default:"short" help:"Content variant: short (post) or long (article)"`
	Lang  string `short:"l" default:"en-US" help:"Speech language code"`
	Out   string `short:"o" default:"." type:"path" env:"TWEETVOICE_OUT" help:"Directory for audio files"`
	Voice string `default:"Kore" help:"Prebuilt Gemini voice"`
	Model string `default:"gemini-2.5-flash-preview-tts" help:"Gemini TTS model"`
	URL   string `arg:"" help:"Page URL to read aloud"`
}
