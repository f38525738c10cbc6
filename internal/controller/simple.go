package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
// Display methods may be called from several goroutines.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayScan prints the number of files found under root.
func (s *SimpleUI) DisplayScan(ctx context.Context, root m.Path, files []m.File) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Found %d file(s) in %s\n", len(files), root)
}

// DisplayExtraction prints the extract summary and any key collisions.
func (s *SimpleUI) DisplayExtraction(ctx context.Context, summary m.ExtractSummary) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Extracted %d string(s) into %d key(s)\n", summary.Records, summary.Keys)

	if len(summary.Collisions) > 0 {
		s.printf("\n%s", renderCollisionTable(summary.Collisions))
	}

	s.printf("Saved base locale to %s\n", summary.Output)
}

// DisplayTranslation prints the outcome for one language.
func (s *SimpleUI) DisplayTranslation(ctx context.Context, status m.TranslationStatus) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\n", formatTranslation(status))
}

// DisplayInjection prints per-file results, and unified diffs on dry runs.
func (s *SimpleUI) DisplayInjection(ctx context.Context, results []m.InjectResult, dryRun bool) {
	if ctx.Err() != nil {
		return
	}

	if dryRun {
		for _, result := range results {
			if !result.Changed {
				continue
			}

			diff, err := unifiedDiff(result)
			if err != nil {
				s.printf("diff %s: %v\n", result.Path, err)
				continue
			}

			s.printf("%s", diff)
		}
	}

	s.printf("\n%s", renderInjectionTable(results))

	for _, result := range results {
		if result.Warning != "" {
			s.printf("warning: %s: %s\n", result.Path, result.Warning)
		}
	}
}

// DisplayCandidates prints a table of candidate counts per file.
func (s *SimpleUI) DisplayCandidates(ctx context.Context, counts []m.FileCount) {
	if ctx.Err() != nil {
		return
	}

	s.printf("\n%s", renderCandidateTable(counts))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatTranslation(status m.TranslationStatus) string {
	if status.Err != nil {
		return fmt.Sprintf("Translation to %s failed: %v", status.Lang, status.Err)
	}

	line := fmt.Sprintf("Translated to %s: %d new, %d cached", status.Lang, status.Translated, status.Cached)
	if status.Missing > 0 {
		line += fmt.Sprintf(", %d missing", status.Missing)
	}

	return line + fmt.Sprintf(" (saved to %s)", status.Output)
}

func newTable(buffer *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderCandidateTable(counts []m.FileCount) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Path", "Strings"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, count := range counts {
		table.Append([]string{string(count.Path), fmt.Sprintf("%d", count.Count)})

		total += count.Count
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(counts)),
		fmt.Sprintf("%d", total),
	})

	table.Render()

	return tableBuffer.String()
}

func renderInjectionTable(results []m.InjectResult) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Path", "Replaced", "Import", "Hook"})

	changed := 0
	replaced := 0

	for _, result := range results {
		if !result.Changed {
			continue
		}

		table.Append([]string{
			string(result.Path),
			fmt.Sprintf("%d", result.Replacements),
			importLabel(result),
			yesNo(result.HookInserted),
		})

		changed++
		replaced += result.Replacements
	}

	table.SetFooter([]string{
		fmt.Sprintf("Changed Files %d/%d", changed, len(results)),
		fmt.Sprintf("%d", replaced),
		"",
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func renderCollisionTable(collisions []m.KeyCollision) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Key", "Overwritten", "Kept", "Location"})

	for _, c := range collisions {
		table.Append([]string{c.Key, c.Previous, c.Current, fmt.Sprintf("%s:%d", c.FilePath, c.Line)})
	}

	table.Render()

	return tableBuffer.String()
}

func importLabel(result m.InjectResult) string {
	switch {
	case result.ImportAdded:
		return "added"
	case result.ImportMerged:
		return "merged"
	default:
		return "-"
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "-"
}

func unifiedDiff(result m.InjectResult) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(result.Original)),
		B:        difflib.SplitLines(string(result.Rewritten)),
		FromFile: "a/" + strings.TrimPrefix(string(result.Path), "/"),
		ToFile:   "b/" + strings.TrimPrefix(string(result.Path), "/"),
		Context:  3,
	}

	return difflib.GetUnifiedDiffString(diff)
}
