package domain

import (
	"html"
	"sort"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

// TranslatableAttributes lists the attribute names whose string literal
// values are treated as user-facing text.
var TranslatableAttributes = map[string]struct{}{
	"label":       {},
	"placeholder": {},
	"title":       {},
	"alt":         {},
	"aria-label":  {},
}

// IsValidText filters out empty text and text that looks like an expression
// ("{userName}"). Everything else, numbers and punctuation included, passes.
func IsValidText(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		return false
	}

	return true
}

// FindCandidates walks the tree and returns every translatable markup text run
// and allowlisted string attribute that passes IsValidText, in document order.
// Extraction and injection both rely on it, which keeps their keys in step.
func FindCandidates(root *sitter.Node, src []byte) []m.Candidate {
	var out []m.Candidate

	walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "jsx_element", "jsx_fragment":
			out = append(out, textRunCandidates(n, src)...)
		case "jsx_attribute":
			if c, ok := attributeCandidate(n, src); ok {
				out = append(out, c)
			}
		}

		return true
	})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})

	return out
}

// walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func walk(n *sitter.Node, fn func(*sitter.Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		walk(n.Child(i), fn)
	}
}

func isTextNode(n *sitter.Node) bool {
	switch n.Type() {
	case "jsx_text", "html_character_reference":
		return true
	}

	return false
}

// textRunCandidates groups adjacent text children of an element into runs.
// Depending on the grammar version a visual run may span several jsx_text and
// character-reference nodes, so the run covers first to last.
func textRunCandidates(element *sitter.Node, src []byte) []m.Candidate {
	var (
		out        []m.Candidate
		runStart   *sitter.Node
		runEnd     *sitter.Node
		flushTexts = func() {
			if runStart == nil {
				return
			}

			if c, ok := textRunCandidate(runStart, runEnd, src); ok {
				out = append(out, c)
			}

			runStart, runEnd = nil, nil
		}
	)

	for i := 0; i < int(element.ChildCount()); i++ {
		child := element.Child(i)
		if !isTextNode(child) {
			flushTexts()
			continue
		}

		if runStart == nil {
			runStart = child
		}

		runEnd = child
	}

	flushTexts()

	return out
}

func textRunCandidate(first, last *sitter.Node, src []byte) (m.Candidate, bool) {
	start, end := first.StartByte(), last.EndByte()
	raw := string(src[start:end])

	lead := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
	trail := len(raw) - len(strings.TrimRightFunc(raw, unicode.IsSpace))

	if lead == len(raw) {
		return m.Candidate{}, false
	}

	text := html.UnescapeString(raw[lead : len(raw)-trail])
	if !IsValidText(text) {
		return m.Candidate{}, false
	}

	return m.Candidate{
		Kind:  m.CandidateText,
		Text:  strings.TrimSpace(text),
		Start: start + uint32(lead),
		End:   end - uint32(trail),
		Line:  int(first.StartPoint().Row) + 1 + strings.Count(raw[:lead], "\n"),
	}, true
}

// attributeCandidate matches name="literal" where name is allowlisted.
func attributeCandidate(attr *sitter.Node, src []byte) (m.Candidate, bool) {
	if attr.NamedChildCount() < 2 {
		return m.Candidate{}, false
	}

	name := attr.NamedChild(0).Content(src)
	if _, ok := TranslatableAttributes[name]; !ok {
		return m.Candidate{}, false
	}

	value := attr.NamedChild(int(attr.NamedChildCount()) - 1)
	if value.Type() != "string" {
		return m.Candidate{}, false
	}

	text := html.UnescapeString(stringLiteralValue(value, src))
	if !IsValidText(text) {
		return m.Candidate{}, false
	}

	return m.Candidate{
		Kind:      m.CandidateAttribute,
		Text:      strings.TrimSpace(text),
		Attribute: name,
		Start:     value.StartByte(),
		End:       value.EndByte(),
		Line:      int(attr.StartPoint().Row) + 1,
	}, true
}

// stringLiteralValue strips the quotes of a string node. JSX attribute
// strings carry no backslash escapes.
func stringLiteralValue(n *sitter.Node, src []byte) string {
	raw := n.Content(src)
	if len(raw) < 2 {
		return ""
	}

	return raw[1 : len(raw)-1]
}
