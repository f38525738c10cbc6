package domain

import (
	"context"
	"log/slog"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"autoi18n.dev/pkg/autoi18n/internal/adapter"
	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

const (
	// HookModule is the module that provides the translation hook.
	HookModule = "react-i18next"
	// HookName is the hook called in the component body.
	HookName = "useTranslation"
	// LookupName is the function bound by the hook and used at call sites.
	LookupName = "t"

	hookStatement  = "const { " + LookupName + " } = " + HookName + "();"
	indentUnit     = "  "
	missingWarning = "no component function found, import and hook not added"
)

// Injector rewrites translatable text into lookup calls and makes sure the
// file imports and calls the translation hook.
type Injector interface {
	// Inject processes paths in order. Files without candidates are left
	// untouched. The first read, parse or save failure aborts the run.
	Inject(ctx context.Context, paths []m.Path) ([]m.InjectResult, error)
}

// InjectorOption configures an Injector.
type InjectorOption func(*injector)

// WithDryRun computes rewrites without saving them.
func WithDryRun(dryRun bool) InjectorOption {
	return func(i *injector) {
		i.dryRun = dryRun
	}
}

// WithComponentMatchers replaces the component matcher chain.
func WithComponentMatchers(matchers ...ComponentMatcher) InjectorOption {
	return func(i *injector) {
		i.matchers = matchers
	}
}

type injector struct {
	adapter.SourceFileAdapter
	adapter.SourceFSAdapter

	dryRun   bool
	matchers []ComponentMatcher
}

// NewInjector creates a new Injector instance.
func NewInjector(fileAdapter adapter.SourceFileAdapter, fsAdapter adapter.SourceFSAdapter, opts ...InjectorOption) Injector {
	i := &injector{
		SourceFileAdapter: fileAdapter,
		SourceFSAdapter:   fsAdapter,
		matchers:          DefaultComponentMatchers,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

func (i *injector) Inject(ctx context.Context, paths []m.Path) ([]m.InjectResult, error) {
	results := make([]m.InjectResult, 0, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := i.injectFile(ctx, path)
		if err != nil {
			return results, err
		}

		results = append(results, result)
	}

	return results, nil
}

func (i *injector) injectFile(ctx context.Context, path m.Path) (m.InjectResult, error) {
	result := m.InjectResult{Path: path}

	content, tree, err := loadTree(ctx, i.SourceFSAdapter, i.SourceFileAdapter, m.StageInject, path)
	if err != nil {
		return result, err
	}
	defer tree.Close()

	root := tree.RootNode()
	scope := ScopeFromPath(path)

	candidates := FindCandidates(root, content)
	if len(candidates) == 0 {
		return result, nil
	}

	edits := make([]m.Edit, 0, len(candidates)+3)
	for _, c := range candidates {
		edits = append(edits, m.Edit{
			Start: c.Start,
			End:   c.End,
			Text:  lookupCall(GenerateKey(scope, c.Text)),
		})
	}

	result.Changed = true
	result.Replacements = len(candidates)

	fn, matcher := ResolveComponent(i.matchers, root, content)
	if fn == nil {
		result.Warning = missingWarning
		slog.Warn("component not found", "path", path)
	} else {
		slog.Debug("component resolved", "path", path, "matcher", matcher)

		importEdit, merged, ok := planImport(root, content)
		if ok {
			edits = append(edits, importEdit)
			result.ImportMerged = merged
			result.ImportAdded = !merged
		}

		if !hasHookCall(root, content) {
			edits = append(edits, planHook(fn, content)...)
			result.HookInserted = true
		}
	}

	rewritten, err := ApplyEdits(content, edits)
	if err != nil {
		return result, &m.FileError{Stage: m.StageInject, Op: m.OpRewrite, Path: path, Err: err}
	}

	result.Edits = edits
	result.Original = content
	result.Rewritten = rewritten

	if i.dryRun {
		return result, nil
	}

	if err := i.WriteFile(path, rewritten); err != nil {
		return result, &m.FileError{Stage: m.StageInject, Op: m.OpSave, Path: path, Err: err}
	}

	slog.Info("injected", "path", path, "replacements", result.Replacements)

	return result, nil
}

func lookupCall(key string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(key)

	return "{" + LookupName + "('" + escaped + "')}"
}

// planImport returns the edit that makes HookName importable, whether the
// edit merges into an existing import, and false when nothing is needed.
func planImport(program *sitter.Node, src []byte) (m.Edit, bool, bool) {
	var (
		imports   []*sitter.Node
		mergeable *sitter.Node
	)

	for idx := 0; idx < int(program.NamedChildCount()); idx++ {
		stmt := program.NamedChild(idx)
		if stmt.Type() != "import_statement" {
			continue
		}

		imports = append(imports, stmt)

		if isTypeOnlyImport(stmt) || importSource(stmt, src) != HookModule {
			continue
		}

		if importsHook(stmt, src) {
			return m.Edit{}, false, false
		}

		if mergeable == nil && canMergeImport(stmt) {
			mergeable = stmt
		}
	}

	if mergeable != nil {
		return mergeImport(mergeable, src), true, true
	}

	quote := "'"
	semicolon := ";"

	if len(imports) > 0 {
		last := imports[len(imports)-1]
		if source := last.ChildByFieldName("source"); source != nil {
			quote = source.Content(src)[:1]
		}

		if last.Child(int(last.ChildCount())-1).Type() != ";" {
			semicolon = ""
		}

		return m.Edit{Start: last.EndByte(), End: last.EndByte(), Text: "\n" + importLine(quote, semicolon)}, false, true
	}

	line := importLine(quote, semicolon)

	if directive := lastDirective(program); directive != nil {
		return m.Edit{Start: directive.EndByte(), End: directive.EndByte(), Text: "\n" + line}, false, true
	}

	at := firstStatementStart(program)

	return m.Edit{Start: at, End: at, Text: line + "\n\n"}, false, true
}

func importLine(quote, semicolon string) string {
	return "import { " + HookName + " } from " + quote + HookModule + quote + semicolon
}

func isTypeOnlyImport(stmt *sitter.Node) bool {
	for idx := 0; idx < int(stmt.ChildCount()); idx++ {
		child := stmt.Child(idx)
		if !child.IsNamed() && (child.Type() == "type" || child.Type() == "typeof") {
			return true
		}
	}

	return false
}

func importSource(stmt *sitter.Node, src []byte) string {
	source := stmt.ChildByFieldName("source")
	if source == nil {
		return ""
	}

	raw := source.Content(src)
	if len(raw) < 2 {
		return ""
	}

	return raw[1 : len(raw)-1]
}

func importClause(stmt *sitter.Node) *sitter.Node {
	for idx := 0; idx < int(stmt.NamedChildCount()); idx++ {
		if child := stmt.NamedChild(idx); child.Type() == "import_clause" {
			return child
		}
	}

	return nil
}

func namedImports(clause *sitter.Node) *sitter.Node {
	if clause == nil {
		return nil
	}

	for idx := 0; idx < int(clause.NamedChildCount()); idx++ {
		if child := clause.NamedChild(idx); child.Type() == "named_imports" {
			return child
		}
	}

	return nil
}

// importsHook reports whether stmt binds HookName under its own name.
func importsHook(stmt *sitter.Node, src []byte) bool {
	named := namedImports(importClause(stmt))
	if named == nil {
		return false
	}

	for idx := 0; idx < int(named.NamedChildCount()); idx++ {
		spec := named.NamedChild(idx)
		if spec.Type() != "import_specifier" {
			continue
		}

		name := spec.ChildByFieldName("name")
		if name == nil || name.Content(src) != HookName {
			continue
		}

		alias := spec.ChildByFieldName("alias")
		if alias == nil || alias.Content(src) == HookName {
			return true
		}
	}

	return false
}

// canMergeImport is true for imports with a named import list or a default
// binding only. Namespace and side-effect imports cannot take a named
// specifier.
func canMergeImport(stmt *sitter.Node) bool {
	clause := importClause(stmt)
	if clause == nil {
		return false
	}

	if namedImports(clause) != nil {
		return true
	}

	for idx := 0; idx < int(clause.NamedChildCount()); idx++ {
		if clause.NamedChild(idx).Type() == "namespace_import" {
			return false
		}
	}

	return clause.NamedChildCount() == 1 && clause.NamedChild(0).Type() == "identifier"
}

func mergeImport(stmt *sitter.Node, src []byte) m.Edit {
	clause := importClause(stmt)

	named := namedImports(clause)
	if named == nil {
		def := clause.NamedChild(0)

		return m.Edit{Start: def.EndByte(), End: def.EndByte(), Text: ", { " + HookName + " }"}
	}

	var last *sitter.Node

	for idx := 0; idx < int(named.NamedChildCount()); idx++ {
		if spec := named.NamedChild(idx); spec.Type() == "import_specifier" {
			last = spec
		}
	}

	if last == nil {
		return m.Edit{Start: named.StartByte(), End: named.EndByte(), Text: "{ " + HookName + " }"}
	}

	return m.Edit{Start: last.EndByte(), End: last.EndByte(), Text: ", " + HookName}
}

// lastDirective returns the last statement of the leading directive prologue
// ('use client'; 'use strict'), or nil.
func lastDirective(program *sitter.Node) *sitter.Node {
	var last *sitter.Node

prologue:
	for idx := 0; idx < int(program.NamedChildCount()); idx++ {
		stmt := program.NamedChild(idx)

		switch {
		case stmt.Type() == "comment" || stmt.Type() == "hash_bang_line":
		case stmt.Type() == "expression_statement" && stmt.NamedChildCount() == 1 && stmt.NamedChild(0).Type() == "string":
			last = stmt
		default:
			break prologue
		}
	}

	return last
}

func firstStatementStart(program *sitter.Node) uint32 {
	for idx := 0; idx < int(program.NamedChildCount()); idx++ {
		stmt := program.NamedChild(idx)
		if stmt.Type() != "comment" && stmt.Type() != "hash_bang_line" {
			return stmt.StartByte()
		}
	}

	return program.EndByte()
}

func hasHookCall(root *sitter.Node, src []byte) bool {
	found := false

	walk(root, func(n *sitter.Node) bool {
		if found {
			return false
		}

		if n.Type() == "call_expression" {
			if callee := n.ChildByFieldName("function"); callee != nil && callee.Content(src) == HookName {
				found = true
				return false
			}
		}

		return true
	})

	return found
}

// planHook inserts the hook statement at the top of fn's body. Expression
// bodies are wrapped into a block that returns the original expression.
func planHook(fn *sitter.Node, src []byte) []m.Edit {
	body := fn.ChildByFieldName("body")
	base := lineIndent(src, body.StartByte())

	if body.Type() != "statement_block" {
		indent := base + indentUnit

		return []m.Edit{
			{Start: body.StartByte(), End: body.StartByte(), Text: "{\n" + indent + hookStatement + "\n" + indent + "return "},
			{Start: body.EndByte(), End: body.EndByte(), Text: ";\n" + base + "}"},
		}
	}

	indent := base + indentUnit
	if body.NamedChildCount() > 0 {
		first := body.NamedChild(0)
		if first.StartPoint().Row > body.StartPoint().Row {
			indent = lineIndent(src, first.StartByte())
		}
	}

	at := body.StartByte() + 1

	return []m.Edit{{Start: at, End: at, Text: "\n" + indent + hookStatement}}
}

// lineIndent returns the leading whitespace of the line containing offset.
func lineIndent(src []byte, offset uint32) string {
	start := int(offset)
	for start > 0 && src[start-1] != '\n' {
		start--
	}

	end := start
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}

	return string(src[start:end])
}
