package domain

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoi18n.dev/pkg/autoi18n/internal/adapter"
	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

func parseTSX(t *testing.T, src string) *sitter.Tree {
	t.Helper()

	tree, err := adapter.NewLocalSourceFileAdapter().Parse(context.Background(), "Test.tsx", []byte(src))
	require.NoError(t, err)
	t.Cleanup(tree.Close)

	return tree
}

func candidateTexts(candidates []m.Candidate) []string {
	texts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		texts = append(texts, c.Text)
	}

	return texts
}

func TestIsValidText(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Hello", true},
		{"  Hello  ", true},
		{"", false},
		{"   \n\t ", false},
		{"{userName}", false},
		{"  {a} and {b}  ", false},
		{"{ open only", true},
		{"42", true},
		{"!", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidText(tt.text))
		})
	}
}

func TestFindCandidates_TextRuns(t *testing.T) {
	src := `export default function App() {
  return (
    <main>
      <h1>  Welcome  </h1>
      <p>Hello, {name}! Nice to see you.</p>
      <>Fragment text</>
    </main>
  );
}
`
	tree := parseTSX(t, src)

	candidates := FindCandidates(tree.RootNode(), []byte(src))

	assert.Equal(t, []string{"Welcome", "Hello,", "! Nice to see you.", "Fragment text"}, candidateTexts(candidates))

	welcome := candidates[0]
	assert.Equal(t, m.CandidateText, welcome.Kind)
	assert.Equal(t, "Welcome", src[welcome.Start:welcome.End])
	assert.Equal(t, 4, welcome.Line)
}

func TestFindCandidates_Attributes(t *testing.T) {
	src := `export function Form() {
  return (
    <form>
      <input placeholder="Your email" data-test="email-input" />
      <img alt='Company logo' src="/logo.png" />
      <button aria-label="Close dialog" title={hint} label="">x</button>
    </form>
  );
}
`
	tree := parseTSX(t, src)

	candidates := FindCandidates(tree.RootNode(), []byte(src))

	assert.Equal(t, []string{"Your email", "Company logo", "Close dialog", "x"}, candidateTexts(candidates))

	placeholder := candidates[0]
	assert.Equal(t, m.CandidateAttribute, placeholder.Kind)
	assert.Equal(t, "placeholder", placeholder.Attribute)
	assert.Equal(t, `"Your email"`, src[placeholder.Start:placeholder.End])
	assert.Equal(t, 4, placeholder.Line)
}

func TestFindCandidates_DecodesEntities(t *testing.T) {
	src := "const a = <p>Fish &amp; chips</p>;\n"
	tree := parseTSX(t, src)

	candidates := FindCandidates(tree.RootNode(), []byte(src))

	require.Len(t, candidates, 1)
	assert.Equal(t, "Fish & chips", candidates[0].Text)
	assert.Equal(t, "Fish &amp; chips", src[candidates[0].Start:candidates[0].End])
}

func TestFindCandidates_IgnoresExpressionsAndPlainStrings(t *testing.T) {
	src := `const label = "not markup";
export const View = () => <div>{label}{" "}{t('View_Done')}</div>;
`
	tree := parseTSX(t, src)

	assert.Empty(t, FindCandidates(tree.RootNode(), []byte(src)))
}

func TestFindCandidates_MultilineText(t *testing.T) {
	src := `const a = (
  <p>
    First line
    second line
  </p>
);
`
	tree := parseTSX(t, src)

	candidates := FindCandidates(tree.RootNode(), []byte(src))

	require.Len(t, candidates, 1)
	assert.Equal(t, "First line\n    second line", candidates[0].Text)
	assert.Equal(t, 3, candidates[0].Line)
}
