// Package controller provides output adapters for displaying reorder results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "rsort.dev/pkg/rsort/internal/model"
)

// EstimationFormat selects how list output is rendered.
type EstimationFormat string

// Available EstimationFormat values.
const (
	FormatTable EstimationFormat = "table"
	FormatYAML  EstimationFormat = "yaml"
)

// UI defines the interface for displaying run output. Implementations can
// use different output methods (plain text, styled terminal output).
type UI interface {
	DisplayReorderResults(ctx context.Context, results []m.Result, dryRun bool) error
	DisplayEstimation(ctx context.Context, stats []m.FileStats, format EstimationFormat) error
}

// NewUI picks the UI implementation for the current output target.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	return NewSimpleUI(cmd, isTTY)
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
