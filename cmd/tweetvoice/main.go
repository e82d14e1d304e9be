package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jayaanth/tweetvoice"
	"github.com/jayaanth/tweetvoice/extract"
	"github.com/jayaanth/tweetvoice/fs"
	"github.com/jayaanth/tweetvoice/gemini"
	"github.com/jayaanth/tweetvoice/goquery"
	tvhttp "github.com/jayaanth/tweetvoice/http"
	"github.com/jayaanth/tweetvoice/rod"
	tvslog "github.com/jayaanth/tweetvoice/slog"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Browser overrides the Chrome browser. Set before calling Run().
	Browser tweetvoice.Browser

	// Synthesizer overrides the Gemini synthesizer. Set before calling Run().
	Synthesizer tweetvoice.Synthesizer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tweetvoice"),
		kong.Description("Extract readable text from X posts and articles and read it aloud"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tweetvoice --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	browser, opts, err := m.openBrowser(cli, stderr)
	if err != nil {
		return err
	}
	defer browser.Close()

	opts = append(opts, extract.WithLogger(deps.Logger))
	deps.Extractor = tvslog.NewLoggingExtractor(
		extract.NewExtractor(tvslog.NewLoggingBrowser(browser, deps.Logger), opts...),
		deps.Logger,
	)

	if strings.HasPrefix(kongCtx.Command(), "speak") {
		synth := m.Synthesizer
		if synth == nil {
			synth, err = newGeminiSynthesizer(ctx, cli.Speak, stderr)
			if err != nil {
				return err
			}
		}
		deps.Synthesizer = tvslog.NewLoggingSynthesizer(synth, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// openBrowser returns the configured browser and any extractor options it
// needs. A saved HTML file or a plain HTTP fetch replaces Chrome.
func (m *Main) openBrowser(cli *CLI, stderr io.Writer) (tweetvoice.Browser, []extract.Option, error) {
	switch {
	case cli.HTML != "":
		return goquery.NewBrowser(goquery.FileLoader(cli.HTML)), snapshotOptions(), nil
	case cli.Static:
		fetcher := tvhttp.NewFetcher(tvhttp.WithTimeout(cli.Timeout))
		return goquery.NewBrowser(fetcher.Fetch), snapshotOptions(), nil
	}

	if m.Browser != nil {
		return m.Browser, nil, nil
	}

	opts := []rod.Option{
		rod.WithHeadless(cli.Headless),
		rod.WithNoSandbox(!cli.Sandbox),
	}
	if cli.ChromeBin != "" {
		opts = append(opts, rod.WithBin(cli.ChromeBin))
	}
	if cli.Profile != "" {
		opts = append(opts, rod.WithUserDataDir(cli.Profile))
	}

	browser, err := rod.NewBrowser(opts...)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or set TWEETVOICE_CHROME_BIN")
		return nil, nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return browser, nil, nil
}

func newGeminiSynthesizer(ctx context.Context, cmd SpeakCmd, stderr io.Writer) (tweetvoice.Synthesizer, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return gemini.NewSynthesizer(client, fs.NewAudioStore(cmd.Out),
		gemini.WithModel(cmd.Model),
		gemini.WithVoice(cmd.Voice),
	), nil
}

// snapshotOptions skips render and settle delays, since snapshots never
// change after loading.
func snapshotOptions() []extract.Option {
	settler := extract.NewSettler()
	settler.Sleep = noSleep
	return []extract.Option{
		extract.WithSettler(settler),
		extract.WithSleep(noSleep),
	}
}

func noSleep(context.Context, time.Duration) error { return nil }
