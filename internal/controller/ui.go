// Package controller renders workflow progress and results for the CLI.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	title string
}

// WithTitle sets the label shown while work is in progress.
func WithTitle(title string) StartOption {
	return func(c *StartConfig) {
		c.title = title
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{title: "Working"}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI displays scan, extraction, translation and injection results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayScan(ctx context.Context, root m.Path, files []m.File)
	DisplayExtraction(ctx context.Context, summary m.ExtractSummary)
	DisplayTranslation(ctx context.Context, status m.TranslationStatus)
	DisplayInjection(ctx context.Context, results []m.InjectResult, dryRun bool)
	DisplayCandidates(ctx context.Context, counts []m.FileCount)
}

// NewUI returns a TUI when useTTY is set and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
