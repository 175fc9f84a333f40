package commands

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/diogo/seodraft/internal/article"
	"github.com/diogo/seodraft/internal/config"
	"github.com/diogo/seodraft/internal/fetch"
	"github.com/diogo/seodraft/internal/logging"
	"github.com/diogo/seodraft/internal/render"
	"github.com/diogo/seodraft/internal/tui"
)

// TUIInterface defines the interactive screens the commands open.
type TUIInterface interface {
	RunPreview(doc *article.Document, opts render.Options, palette render.Palette) error
	RunSettings() error
}

// ImageEmbedder turns a header image URL into a data: URL.
type ImageEmbedder interface {
	EmbedImage(ctx context.Context, url string) (string, error)
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	TUI TUIInterface

	// Stdin is read when no input file is given.
	Stdin io.Reader

	// CopyToClipboard writes text to the system clipboard.
	CopyToClipboard func(text string) error

	// NewEmbedder builds the header image downloader.
	NewEmbedder func(timeout time.Duration, log logging.Logger) (ImageEmbedder, error)

	// LoadConfig reads the user configuration.
	LoadConfig func() (config.Config, error)

	// IsTTY reports whether stdout is a terminal.
	IsTTY func() bool

	// TerminalWidth returns the stdout width in columns.
	TerminalWidth func() int

	logs *logging.Provider
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (DefaultTUI) RunPreview(doc *article.Document, opts render.Options, palette render.Palette) error {
	return tui.RunPreview(doc, opts, palette)
}

func (DefaultTUI) RunSettings() error {
	return tui.RunSettings()
}

// NewDependencies creates a Dependencies with the production implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI:             DefaultTUI{},
		Stdin:           os.Stdin,
		CopyToClipboard: clipboard.WriteAll,
		NewEmbedder: func(timeout time.Duration, log logging.Logger) (ImageEmbedder, error) {
			return fetch.NewClient(timeout, fetch.WithLogger(log))
		},
		LoadConfig:    config.LoadConfig,
		IsTTY:         isStdoutTTY,
		TerminalWidth: getTerminalWidth,
	}
}

// Logger returns the named logger, or a no-op logger before logging is set
// up.
func (d *Dependencies) Logger(name string) logging.Logger {
	if d == nil || d.logs == nil {
		return logging.NoOp()
	}
	return d.logs.GetLogger(name)
}

// loadConfig loads the user configuration, falling back to defaults.
func (d *Dependencies) loadConfig() config.Config {
	cfg, err := d.LoadConfig()
	if err != nil {
		d.Logger("config").Warn("using default configuration", "error", err)
		return config.DefaultConfig()
	}
	return cfg
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
