package domain

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// ComponentMatcher locates the primary component function of a file. Match
// returns a function-like node (declaration, expression or arrow function)
// or nil.
type ComponentMatcher interface {
	Name() string
	Match(program *sitter.Node, src []byte) *sitter.Node
}

// DefaultComponentMatchers are tried in order; the first match wins.
var DefaultComponentMatchers = []ComponentMatcher{
	exportedFunctionMatcher{},
	firstFunctionMatcher{},
	exportedVariableMatcher{},
	defaultExportedVariableMatcher{},
}

// ResolveComponent runs matchers in order and returns the first hit along
// with the matcher's name.
func ResolveComponent(matchers []ComponentMatcher, program *sitter.Node, src []byte) (*sitter.Node, string) {
	for _, matcher := range matchers {
		if fn := matcher.Match(program, src); fn != nil {
			return fn, matcher.Name()
		}
	}

	return nil, ""
}

func isFunctionDeclaration(n *sitter.Node) bool {
	if n == nil {
		return false
	}

	switch n.Type() {
	case "function_declaration", "generator_function_declaration":
		return n.ChildByFieldName("body") != nil
	}

	return false
}

func isFunctionExpression(n *sitter.Node) bool {
	if n == nil {
		return false
	}

	switch n.Type() {
	case "arrow_function", "function", "function_expression", "generator_function":
		return n.ChildByFieldName("body") != nil
	}

	return false
}

// exportedFunctionMatcher: export function App() {} / export default function App() {}.
type exportedFunctionMatcher struct{}

func (exportedFunctionMatcher) Name() string { return "exported function" }

func (exportedFunctionMatcher) Match(program *sitter.Node, _ []byte) *sitter.Node {
	for i := 0; i < int(program.NamedChildCount()); i++ {
		stmt := program.NamedChild(i)
		if stmt.Type() != "export_statement" {
			continue
		}

		if decl := stmt.ChildByFieldName("declaration"); isFunctionDeclaration(decl) {
			return decl
		}

		if value := stmt.ChildByFieldName("value"); isFunctionExpression(value) {
			return value
		}
	}

	return nil
}

// firstFunctionMatcher: the first top-level function declaration.
type firstFunctionMatcher struct{}

func (firstFunctionMatcher) Name() string { return "first function" }

func (firstFunctionMatcher) Match(program *sitter.Node, _ []byte) *sitter.Node {
	for i := 0; i < int(program.NamedChildCount()); i++ {
		if stmt := program.NamedChild(i); isFunctionDeclaration(stmt) {
			return stmt
		}
	}

	return nil
}

// exportedVariableMatcher: export const App = () => {}.
type exportedVariableMatcher struct{}

func (exportedVariableMatcher) Name() string { return "exported variable" }

func (exportedVariableMatcher) Match(program *sitter.Node, _ []byte) *sitter.Node {
	for i := 0; i < int(program.NamedChildCount()); i++ {
		stmt := program.NamedChild(i)
		if stmt.Type() != "export_statement" {
			continue
		}

		if fn := firstDeclaratorFunction(stmt.ChildByFieldName("declaration")); fn != nil {
			return fn
		}
	}

	return nil
}

// defaultExportedVariableMatcher: const App = () => {}; export default App.
type defaultExportedVariableMatcher struct{}

func (defaultExportedVariableMatcher) Name() string { return "default-exported variable" }

func (defaultExportedVariableMatcher) Match(program *sitter.Node, src []byte) *sitter.Node {
	var exported string

	for i := 0; i < int(program.NamedChildCount()); i++ {
		stmt := program.NamedChild(i)
		if stmt.Type() != "export_statement" {
			continue
		}

		if value := stmt.ChildByFieldName("value"); value != nil && value.Type() == "identifier" {
			exported = value.Content(src)
		}
	}

	if exported == "" {
		return nil
	}

	for i := 0; i < int(program.NamedChildCount()); i++ {
		stmt := program.NamedChild(i)
		if stmt.Type() != "lexical_declaration" && stmt.Type() != "variable_declaration" {
			continue
		}

		for j := 0; j < int(stmt.NamedChildCount()); j++ {
			decl := stmt.NamedChild(j)
			if decl.Type() != "variable_declarator" {
				continue
			}

			name := decl.ChildByFieldName("name")
			if name == nil || name.Content(src) != exported {
				continue
			}

			if value := decl.ChildByFieldName("value"); isFunctionExpression(value) {
				return value
			}
		}
	}

	return nil
}

// firstDeclaratorFunction returns the initializer of the first declarator of
// a const/let/var statement when it is a function expression.
func firstDeclaratorFunction(decl *sitter.Node) *sitter.Node {
	if decl == nil || decl.Type() != "lexical_declaration" && decl.Type() != "variable_declaration" {
		return nil
	}

	for j := 0; j < int(decl.NamedChildCount()); j++ {
		declarator := decl.NamedChild(j)
		if declarator.Type() != "variable_declarator" {
			continue
		}

		if value := declarator.ChildByFieldName("value"); isFunctionExpression(value) {
			return value
		}

		return nil
	}

	return nil
}
