package domain

import (
	"context"
	"log/slog"

	"autoi18n.dev/pkg/autoi18n/internal/adapter"
	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

// Extractor discovers translatable text without modifying anything.
type Extractor interface {
	// Extract processes paths in order and returns one record per candidate.
	// The first unreadable or unparsable file aborts the run.
	Extract(ctx context.Context, paths []m.Path) ([]m.ExtractedString, error)
}

type extractor struct {
	adapter.SourceFileAdapter
	adapter.SourceFSAdapter
}

// NewExtractor creates a new Extractor instance.
func NewExtractor(fileAdapter adapter.SourceFileAdapter, fsAdapter adapter.SourceFSAdapter) Extractor {
	return &extractor{
		SourceFileAdapter: fileAdapter,
		SourceFSAdapter:   fsAdapter,
	}
}

func (e *extractor) Extract(ctx context.Context, paths []m.Path) ([]m.ExtractedString, error) {
	extracted := make([]m.ExtractedString, 0)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := e.extractFile(ctx, path)
		if err != nil {
			return nil, err
		}

		extracted = append(extracted, records...)
	}

	return extracted, nil
}

func (e *extractor) extractFile(ctx context.Context, path m.Path) ([]m.ExtractedString, error) {
	content, tree, err := loadTree(ctx, e.SourceFSAdapter, e.SourceFileAdapter, m.StageExtract, path)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	scope := ScopeFromPath(path)
	candidates := FindCandidates(tree.RootNode(), content)
	records := make([]m.ExtractedString, 0, len(candidates))

	for _, c := range candidates {
		records = append(records, m.ExtractedString{
			Key:      GenerateKey(scope, c.Text),
			Value:    c.Text,
			FilePath: path,
			Line:     c.Line,
		})
	}

	slog.Debug("extracted strings", "path", path, "count", len(records))

	return records, nil
}

// BuildBaseTable folds records into a locale table, later records winning,
// and reports every key that was overwritten with a different value.
func BuildBaseTable(records []m.ExtractedString) (*m.LocaleTable, []m.KeyCollision) {
	table := m.NewLocaleTable()

	var collisions []m.KeyCollision

	for _, r := range records {
		prev, existed := table.Set(r.Key, r.Value)
		if existed && prev != r.Value {
			collisions = append(collisions, m.KeyCollision{
				Key:      r.Key,
				Previous: prev,
				Current:  r.Value,
				FilePath: r.FilePath,
				Line:     r.Line,
			})
		}
	}

	return table, collisions
}
