package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"autoi18n.dev/pkg/autoi18n/internal/adapter"
	"autoi18n.dev/pkg/autoi18n/internal/controller"
	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

// ScanArgs selects the source files a workflow step works on.
type ScanArgs struct {
	Root    m.Path
	Include []string
	Exclude []string
}

// ExtractArgs contains the arguments for building the base locale table.
type ExtractArgs struct {
	ScanArgs
	LocalesDir m.Path
	SourceLang string
}

// TranslateArgs contains the arguments for translating the base table.
type TranslateArgs struct {
	LocalesDir  m.Path
	SourceLang  string
	TargetLangs []string
	Parallel    int
	Translator  adapter.Translator
	Cache       adapter.TranslationCache
}

// InjectArgs contains the arguments for rewriting source files.
type InjectArgs struct {
	ScanArgs
	DryRun bool
}

// ListArgs contains the arguments for listing candidate counts.
type ListArgs struct {
	ScanArgs
}

// Workflow drives the extract, translate and inject steps.
type Workflow interface {
	Extract(ctx context.Context, args ExtractArgs) error
	Translate(ctx context.Context, args TranslateArgs) error
	Inject(ctx context.Context, args InjectArgs) error
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.SourceFileAdapter
	adapter.LocaleStore
	controller.UI
	matchers []ComponentMatcher
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	fileAdapter adapter.SourceFileAdapter,
	localeStore adapter.LocaleStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter:   fsAdapter,
		SourceFileAdapter: fileAdapter,
		LocaleStore:       localeStore,
		UI:                ui,
		matchers:          DefaultComponentMatchers,
	}
}

func (w *workflow) Extract(ctx context.Context, args ExtractArgs) error {
	if err := w.Start(ctx, controller.WithTitle("Extracting text")); err != nil {
		return err
	}
	defer w.Close(ctx)

	files, err := w.scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	records, err := NewExtractor(w.SourceFileAdapter, w.SourceFSAdapter).Extract(ctx, m.Paths(files))
	if err != nil {
		slog.Error("extraction failed", "error", err)
		return fmt.Errorf("extract: %w", err)
	}

	table, collisions := BuildBaseTable(records)
	for _, c := range collisions {
		slog.Warn("key collision", "key", c.Key, "previous", c.Previous, "current", c.Current, "path", c.FilePath, "line", c.Line)
	}

	output := w.Path(args.LocalesDir, args.SourceLang)
	if err := w.Save(output, table); err != nil {
		return fmt.Errorf("save base locale: %w", err)
	}

	w.DisplayExtraction(ctx, m.ExtractSummary{
		Output:     output,
		Files:      len(files),
		Records:    len(records),
		Keys:       table.Len(),
		Collisions: collisions,
	})

	return nil
}

func (w *workflow) Translate(ctx context.Context, args TranslateArgs) error {
	if args.Translator == nil {
		return fmt.Errorf("translate: no translator configured")
	}

	if len(args.TargetLangs) == 0 {
		return fmt.Errorf("translate: no target language given")
	}

	for _, lang := range args.TargetLangs {
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("translate: invalid language %q: %w", lang, err)
		}
	}

	sourcePath := w.Path(args.LocalesDir, args.SourceLang)

	base, err := w.Load(sourcePath)
	if err != nil {
		if errors.Is(err, adapter.ErrLocaleNotFound) {
			return fmt.Errorf("source locale %s not found, run 'extract' first", sourcePath)
		}

		return fmt.Errorf("load source locale: %w", err)
	}

	if err := w.Start(ctx, controller.WithTitle("Translating")); err != nil {
		return err
	}
	defer w.Close(ctx)

	var (
		group    errgroup.Group
		failures []error
		mu       sync.Mutex
	)

	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for _, lang := range args.TargetLangs {
		lang := lang
		group.Go(func() error {
			status := w.translateLanguage(ctx, args, base, lang)
			w.DisplayTranslation(ctx, status)

			if status.Err != nil {
				slog.Error("translation failed", "lang", lang, "error", status.Err)

				mu.Lock()
				failures = append(failures, fmt.Errorf("%s: %w", lang, status.Err))
				mu.Unlock()
			}

			return nil
		})
	}

	_ = group.Wait()

	return errors.Join(failures...)
}

func (w *workflow) translateLanguage(ctx context.Context, args TranslateArgs, base *m.LocaleTable, lang string) m.TranslationStatus {
	status := m.TranslationStatus{Lang: lang, Output: w.Path(args.LocalesDir, lang)}

	if err := ctx.Err(); err != nil {
		status.Err = err
		return status
	}

	resolved := make(map[string]string, base.Len())
	pending := make(map[string]string)

	base.Each(func(key, text string) {
		if args.Cache != nil {
			if cached, ok := args.Cache.Get(text, lang); ok {
				resolved[key] = cached
				status.Cached++

				return
			}
		}

		pending[key] = text
	})

	if len(pending) > 0 {
		slog.Info("translating", "lang", lang, "keys", len(pending))

		translated, err := args.Translator.Translate(ctx, pending, lang)
		if err != nil {
			status.Err = err
			return status
		}

		fresh := make(map[string]string, len(translated))

		for key, value := range translated {
			text, ok := pending[key]
			if !ok {
				continue
			}

			resolved[key] = value
			fresh[text] = value
			status.Translated++
		}

		status.Missing = len(pending) - status.Translated

		if args.Cache != nil && len(fresh) > 0 {
			if err := args.Cache.SetBatch(lang, fresh); err != nil {
				slog.Warn("cache update failed", "lang", lang, "error", err)
			}
		}
	}

	out := m.NewLocaleTable()

	base.Each(func(key, _ string) {
		if value, ok := resolved[key]; ok {
			out.Set(key, value)
		}
	})

	if err := w.Save(status.Output, out); err != nil {
		status.Err = fmt.Errorf("save: %w", err)
	}

	return status
}

func (w *workflow) Inject(ctx context.Context, args InjectArgs) error {
	if err := w.Start(ctx, controller.WithTitle("Injecting translations")); err != nil {
		return err
	}
	defer w.Close(ctx)

	files, err := w.scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	injector := NewInjector(
		w.SourceFileAdapter,
		w.SourceFSAdapter,
		WithDryRun(args.DryRun),
		WithComponentMatchers(w.matchers...),
	)

	results, err := injector.Inject(ctx, m.Paths(files))
	w.DisplayInjection(ctx, results, args.DryRun)

	if err != nil {
		slog.Error("injection failed", "error", err)
		return fmt.Errorf("inject: %w", err)
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithTitle("Scanning")); err != nil {
		return err
	}
	defer w.Close(ctx)

	files, err := w.scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	records, err := NewExtractor(w.SourceFileAdapter, w.SourceFSAdapter).Extract(ctx, m.Paths(files))
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	w.DisplayCandidates(ctx, countByFile(files, records))

	return nil
}

func (w *workflow) scan(ctx context.Context, args ScanArgs) ([]m.File, error) {
	files, err := w.Scan(args.Root, args.Include, args.Exclude)
	if err != nil {
		slog.Error("scan failed", "root", args.Root, "error", err)
		return nil, fmt.Errorf("scan: %w", err)
	}

	w.DisplayScan(ctx, args.Root, files)

	return files, nil
}

// countByFile returns one entry per file that has candidates, in scan order,
// using the short path for display.
func countByFile(files []m.File, records []m.ExtractedString) []m.FileCount {
	counts := make(map[m.Path]int, len(files))
	for _, r := range records {
		counts[r.FilePath]++
	}

	out := make([]m.FileCount, 0, len(counts))

	for _, f := range files {
		if n := counts[f.FullPath]; n > 0 {
			out = append(out, m.FileCount{Path: f.ShortPath, Count: n})
		}
	}

	return out
}
