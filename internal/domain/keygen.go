package domain

import (
	"path/filepath"
	"strings"

	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

// maxKeyLabelLen caps the cleaned text before capitalization.
const maxKeyLabelLen = 30

// GenerateKey derives the translation key for text found in scope. Equal
// inputs always produce equal keys; different texts may collide.
func GenerateKey(scope, text string) string {
	return scope + "_" + keyLabel(text)
}

// keyLabel keeps ASCII letters, digits and spaces, truncates, and joins the
// space-separated words capitalized: "Start Course!" -> "StartCourse".
func keyLabel(text string) string {
	var clean strings.Builder

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			clean.WriteByte(c)
		}
	}

	label := strings.Trim(clean.String(), " ")
	if len(label) > maxKeyLabelLen {
		label = label[:maxKeyLabelLen]
	}

	var b strings.Builder

	for _, word := range strings.Split(label, " ") {
		if word == "" {
			continue
		}

		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}

	return b.String()
}

// ScopeFromPath returns the file name without its extension. It namespaces
// every key generated from that file.
func ScopeFromPath(path m.Path) string {
	base := filepath.Base(string(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
