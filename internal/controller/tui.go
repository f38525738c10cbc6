package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea: a spinner while work runs and
// results printed above it as they arrive.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, options: options}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options...)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	programOptions := append([]tea.ProgramOption{tea.WithOutput(t.output), tea.WithContext(ctx)}, t.options...)
	t.program = tea.NewProgram(newProgressModel(cfg.title), programOptions...)
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = program.Run()
	}(t.program, t.done)

	return nil
}

// Close stops the program and waits for its final render.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishMsg{})
	<-done
}

// DisplayScan reports the number of files found.
func (t *TUI) DisplayScan(ctx context.Context, root m.Path, files []m.File) {
	if ctx.Err() != nil {
		return
	}

	t.send(faintStyle.Render(fmt.Sprintf("Found %d file(s) in %s", len(files), root)))
}

// DisplayExtraction reports the extract summary.
func (t *TUI) DisplayExtraction(ctx context.Context, summary m.ExtractSummary) {
	if ctx.Err() != nil {
		return
	}

	t.send(successStyle.Render(fmt.Sprintf("✔ Extracted %d string(s) into %d key(s)", summary.Records, summary.Keys)))

	if len(summary.Collisions) > 0 {
		t.send(warningStyle.Render(fmt.Sprintf("! %d key collision(s), later values kept", len(summary.Collisions))))
		t.send(strings.TrimRight(renderCollisionTable(summary.Collisions), "\n"))
	}

	t.send(faintStyle.Render("Saved base locale to " + string(summary.Output)))
}

// DisplayTranslation reports the outcome for one language.
func (t *TUI) DisplayTranslation(ctx context.Context, status m.TranslationStatus) {
	if ctx.Err() != nil {
		return
	}

	if status.Err != nil {
		t.send(errorStyle.Render("✘ " + formatTranslation(status)))
		return
	}

	t.send(successStyle.Render("✔ " + formatTranslation(status)))
}

// DisplayInjection reports per-file results. Dry runs include diffs.
func (t *TUI) DisplayInjection(ctx context.Context, results []m.InjectResult, dryRun bool) {
	if ctx.Err() != nil {
		return
	}

	if dryRun {
		for _, result := range results {
			if !result.Changed {
				continue
			}

			if diff, err := unifiedDiff(result); err == nil {
				t.send(strings.TrimRight(diff, "\n"))
			}
		}
	}

	t.send(strings.TrimRight(renderInjectionTable(results), "\n"))

	for _, result := range results {
		if result.Warning != "" {
			t.send(warningStyle.Render(fmt.Sprintf("! %s: %s", result.Path, result.Warning)))
		}
	}
}

// DisplayCandidates reports candidate counts per file.
func (t *TUI) DisplayCandidates(ctx context.Context, counts []m.FileCount) {
	if ctx.Err() != nil {
		return
	}

	t.send(strings.TrimRight(renderCandidateTable(counts), "\n"))
}

// send appends a line to the running program, or writes it directly when
// the program is not running.
func (t *TUI) send(line string) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		_, _ = fmt.Fprintln(t.output, line)
		return
	}

	program.Send(lineMsg(line))
}

type lineMsg string

type finishMsg struct{}

// progressModel shows a spinner under the lines received so far.
type progressModel struct {
	title    string
	spinner  spinner.Model
	lines    []string
	quitting bool
}

func newProgressModel(title string) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = titleStyle

	return progressModel{title: title, spinner: s}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lineMsg:
		pm.lines = append(pm.lines, string(msg))

		return pm, nil

	case finishMsg:
		pm.quitting = true

		return pm, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			pm.quitting = true

			return pm, tea.Quit
		}

		return pm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	var b strings.Builder

	for _, line := range pm.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if !pm.quitting {
		fmt.Fprintf(&b, "%s %s\n", pm.spinner.View(), titleStyle.Render(pm.title))
	}

	return b.String()
}
