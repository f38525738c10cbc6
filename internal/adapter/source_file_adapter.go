package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

// SourceFileAdapter encapsulates grammar selection and parsing so the domain
// layer can focus on candidate discovery and rewriting.
type SourceFileAdapter interface {
	// Parse builds a syntax tree for src. A tree containing syntax errors is
	// rejected rather than handed back partially parsed. The caller owns the
	// returned tree and must Close it.
	Parse(ctx context.Context, path m.Path, src []byte) (*sitter.Tree, error)

	// Supports reports whether a grammar is registered for the file extension.
	Supports(path m.Path) bool
}

// LocalSourceFileAdapter provides a SourceFileAdapter backed by tree-sitter.
type LocalSourceFileAdapter struct{}

// NewLocalSourceFileAdapter constructs a LocalSourceFileAdapter.
func NewLocalSourceFileAdapter() *LocalSourceFileAdapter {
	return &LocalSourceFileAdapter{}
}

func languageFor(path m.Path) *sitter.Language {
	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".tsx":
		return tsx.GetLanguage()
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	case ".js", ".jsx", ".mjs", ".cjs":
		// The JavaScript grammar parses JSX as well.
		return javascript.GetLanguage()
	}

	return nil
}

// Supports reports whether path has a parseable extension.
func (a *LocalSourceFileAdapter) Supports(path m.Path) bool {
	return languageFor(path) != nil
}

// Parse selects a grammar from the file extension and parses src.
func (a *LocalSourceFileAdapter) Parse(ctx context.Context, path m.Path, src []byte) (*sitter.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lang := languageFor(path)
	if lang == nil {
		return nil, fmt.Errorf("unsupported file extension %q", filepath.Ext(string(path)))
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}

	root := tree.RootNode()
	if root.HasError() {
		defer tree.Close()

		if bad := firstErrorNode(root); bad != nil {
			pos := bad.StartPoint()
			return nil, fmt.Errorf("syntax error at %d:%d", pos.Row+1, pos.Column+1)
		}

		return nil, fmt.Errorf("syntax error")
	}

	return tree, nil
}

// firstErrorNode returns the first ERROR or MISSING node in document order.
func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}

		if bad := firstErrorNode(child); bad != nil {
			return bad
		}
	}

	return nil
}
