package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "rsort.dev/pkg/rsort/internal/model"
)

// SimpleUI implements UI using the cobra Command's output stream, with
// lipgloss styling when attached to a terminal.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

var (
	changedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	unchangedStyle = lipgloss.NewStyle().Faint(true)
)

// DisplayReorderResults prints one line per rewritten file and a summary.
func (s *SimpleUI) DisplayReorderResults(ctx context.Context, results []m.Result, dryRun bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	verb := "rewrote"
	if dryRun {
		verb = "would rewrite"
	}

	changed := 0

	for _, result := range results {
		if !result.Changed {
			continue
		}

		changed++
		s.cmd.Println(s.style(changedStyle, fmt.Sprintf("%s %s", verb, result.Path)))
	}

	if changed == 0 {
		s.cmd.Println(s.style(unchangedStyle, fmt.Sprintf("%d file(s) already canonical", len(results))))
		return nil
	}

	s.cmd.Printf("%d of %d file(s) changed\n", changed, len(results))

	return nil
}

// DisplayEstimation renders per-file declaration counts as a table or YAML.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, stats []m.FileStats, format EstimationFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case FormatYAML:
		return s.printYAML(stats)
	case FormatTable:
		s.cmd.Printf("\n%s", renderEstimationTable(stats))
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderEstimationTable(stats []m.FileStats) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Declarations", "Tests"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	totalDecls := 0
	totalTests := 0

	for _, stat := range stats {
		tests := stat.Counts[m.CategoryTests]
		totalDecls += stat.Total()
		totalTests += tests

		table.Append([]string{
			string(stat.Path),
			fmt.Sprintf("%d", stat.Total()),
			fmt.Sprintf("%d", tests),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(stats)),
		fmt.Sprintf("%d", totalDecls),
		fmt.Sprintf("%d", totalTests),
	})

	table.Render()

	return tableBuffer.String()
}

// fileEstimate is the YAML shape for one file; fields mirror the category
// order so the full breakdown stays deterministic.
type fileEstimate struct {
	Path        string `yaml:"path"`
	Total       int    `yaml:"total"`
	Imports     int    `yaml:"imports"`
	TypeAliases int    `yaml:"type_aliases"`
	Constants   int    `yaml:"constants"`
	Traits      int    `yaml:"traits"`
	Types       int    `yaml:"types"`
	Impls       int    `yaml:"impls"`
	Functions   int    `yaml:"functions"`
	Tests       int    `yaml:"tests"`
}

func (s *SimpleUI) printYAML(stats []m.FileStats) error {
	estimates := make([]fileEstimate, 0, len(stats))

	for _, stat := range stats {
		estimates = append(estimates, fileEstimate{
			Path:        string(stat.Path),
			Total:       stat.Total(),
			Imports:     stat.Counts[m.CategoryImports],
			TypeAliases: stat.Counts[m.CategoryTypeAliases],
			Constants:   stat.Counts[m.CategoryConstants],
			Traits:      stat.Counts[m.CategoryTraits],
			Types:       stat.Counts[m.CategoryTypes],
			Impls:       stat.Counts[m.CategoryImpls],
			Functions:   stat.Counts[m.CategoryFunctions],
			Tests:       stat.Counts[m.CategoryTests],
		})
	}

	encoded, err := yaml.Marshal(estimates)
	if err != nil {
		return fmt.Errorf("encode estimation: %w", err)
	}

	s.cmd.Print(string(encoded))

	return nil
}

func (s *SimpleUI) style(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}
