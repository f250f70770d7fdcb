package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/xpatlat"
	"github.com/fwojciec/xpatlat/fs"
	"github.com/fwojciec/xpatlat/rod"
	xslog "github.com/fwojciec/xpatlat/slog"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPaths are JSON files providing flag defaults. Missing files are
	// ignored. Set before calling Run().
	ConfigPaths []string

	// Services for end-to-end testing. When nil, Run wires the real ones.
	Browser  xpatlat.Browser
	Capturer xpatlat.LoginCapturer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{"~/.config/xpatlat/config.json"},
	}
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
		kong.Name("xpatlat"),
		kong.Description("Collect posts from a logged-in search using a saved browser session"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars(vars()),
		kong.Configuration(kong.JSON, m.ConfigPaths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'xpatlat --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.LogFormat, cli.Verbose).With("run_id", uuid.NewString())
	deps.Credentials = xslog.NewLoggingCredentialStore(fs.NewCredentialStore(cli.Cookies), deps.Logger)

	switch strings.Fields(kongCtx.Command())[0] {
	case "search":
		browser := m.Browser
		if browser == nil {
			browser = rod.NewBrowser(
				rod.WithHeadless(!cli.Search.Headful),
				rod.WithBin(cli.Chrome),
				rod.WithNavigationTimeout(cli.Search.NavTimeout),
			)
		}
		deps.Browser = xslog.NewLoggingBrowser(browser, deps.Logger)
	case "login":
		capturer := m.Capturer
		if capturer == nil {
			capturer = rod.NewBrowser(
				rod.WithHeadless(false),
				rod.WithBin(cli.Chrome),
			)
		}
		deps.Capturer = xslog.NewLoggingCapturer(capturer, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newLogger returns the diagnostics logger. Diagnostics go to stderr so
// stdout carries only results.
func newLogger(w io.Writer, format string, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
