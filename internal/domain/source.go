package domain

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"autoi18n.dev/pkg/autoi18n/internal/adapter"
	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

// loadTree reads and parses path. Failures come back as *m.FileError tagged
// with stage.
func loadTree(
	ctx context.Context,
	fsAdapter adapter.SourceFSAdapter,
	fileAdapter adapter.SourceFileAdapter,
	stage m.Stage,
	path m.Path,
) ([]byte, *sitter.Tree, error) {
	if fsAdapter == nil || fileAdapter == nil {
		return nil, nil, fmt.Errorf("missing adapters")
	}

	content, err := fsAdapter.ReadFile(path)
	if err != nil {
		return nil, nil, &m.FileError{Stage: stage, Op: m.OpRead, Path: path, Err: err}
	}

	tree, err := fileAdapter.Parse(ctx, path, content)
	if err != nil {
		return nil, nil, &m.FileError{Stage: stage, Op: m.OpParse, Path: path, Err: err}
	}

	return content, tree, nil
}
