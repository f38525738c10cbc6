package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autoi18n.dev/pkg/autoi18n/internal/adapter"
	adaptermocks "autoi18n.dev/pkg/autoi18n/internal/adapter/mocks"
	controllermocks "autoi18n.dev/pkg/autoi18n/internal/controller/mocks"
	domain "autoi18n.dev/pkg/autoi18n/internal/domain"
	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

var (
	defaultInclude = []string{"**/*.{js,jsx,ts,tsx}"}
	defaultExclude = []string{"**/node_modules/**"}
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "App.tsx"), "export default function App() {\n  return <h1>Welcome</h1>;\n}\n")
	writeFile(t, filepath.Join(root, "src", "Nav.jsx"), "export function Nav() {\n  return <a title=\"Go home\">Home</a>;\n}\n")
	writeFile(t, filepath.Join(root, "src", "util.ts"), "export const answer = 42;\n")
	writeFile(t, filepath.Join(root, "node_modules", "lib", "Lib.tsx"), "export const L = () => <p>Vendor</p>;\n")

	return root
}

func newWorkflow(ui *controllermocks.MockUI) domain.Workflow {
	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalSourceFileAdapter(),
		adapter.NewLocaleStore(),
		ui,
	)
}

func expectLifecycle(ui *controllermocks.MockUI) {
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()
}

func scanArgs(root string) domain.ScanArgs {
	return domain.ScanArgs{Root: m.Path(root), Include: defaultInclude, Exclude: defaultExclude}
}

func saveBase(t *testing.T, dir string, pairs ...string) {
	t.Helper()

	table := m.NewLocaleTable()
	for i := 0; i+1 < len(pairs); i += 2 {
		table.Set(pairs[i], pairs[i+1])
	}

	store := adapter.NewLocaleStore()
	require.NoError(t, store.Save(store.Path(m.Path(dir), "en"), table))
}

func TestWorkflow_Extract_Success(t *testing.T) {
	root := newProject(t)
	localesDir := filepath.Join(root, "locales")

	mockUI := controllermocks.NewMockUI(t)
	expectLifecycle(mockUI)
	mockUI.EXPECT().DisplayScan(mock.Anything, m.Path(root), mock.MatchedBy(func(files []m.File) bool {
		return len(files) == 3
	})).Return().Once()

	var summary m.ExtractSummary
	mockUI.EXPECT().DisplayExtraction(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s m.ExtractSummary) { summary = s }).
		Return().Once()

	err := newWorkflow(mockUI).Extract(context.Background(), domain.ExtractArgs{
		ScanArgs:   scanArgs(root),
		LocalesDir: m.Path(localesDir),
		SourceLang: "en",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(localesDir, "en.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"App_Welcome\": \"Welcome\",\n  \"Nav_GoHome\": \"Go home\",\n  \"Nav_Home\": \"Home\"\n}\n", string(data))

	assert.Equal(t, 3, summary.Files)
	assert.Equal(t, 3, summary.Records)
	assert.Equal(t, 3, summary.Keys)
	assert.Empty(t, summary.Collisions)
	assert.Equal(t, m.Path(filepath.Join(localesDir, "en.json")), summary.Output)
}

func TestWorkflow_Extract_ReportsCollisions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "Button.tsx"), "export const Button = () => <button>Save</button>;\n")
	writeFile(t, filepath.Join(root, "b", "Button.tsx"), "export const Button = () => <button>Save!</button>;\n")

	mockUI := controllermocks.NewMockUI(t)
	expectLifecycle(mockUI)
	mockUI.EXPECT().DisplayScan(mock.Anything, mock.Anything, mock.Anything).Return().Once()
	mockUI.EXPECT().DisplayExtraction(mock.Anything, mock.MatchedBy(func(s m.ExtractSummary) bool {
		return s.Keys == 1 && len(s.Collisions) == 1 && s.Collisions[0].Current == "Save!"
	})).Return().Once()

	err := newWorkflow(mockUI).Extract(context.Background(), domain.ExtractArgs{
		ScanArgs:   scanArgs(root),
		LocalesDir: m.Path(filepath.Join(root, "locales")),
		SourceLang: "en",
	})
	require.NoError(t, err)
}

func TestWorkflow_Extract_ScanError(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	expectLifecycle(mockUI)

	err := newWorkflow(mockUI).Extract(context.Background(), domain.ExtractArgs{
		ScanArgs:   scanArgs(filepath.Join(t.TempDir(), "missing")),
		LocalesDir: m.Path(t.TempDir()),
		SourceLang: "en",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan")
}

func TestWorkflow_Extract_ParseError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Broken.tsx"), "export default function Broken() {\n  return <div>Unclosed\n}\n")

	mockUI := controllermocks.NewMockUI(t)
	expectLifecycle(mockUI)
	mockUI.EXPECT().DisplayScan(mock.Anything, mock.Anything, mock.Anything).Return().Once()

	localesDir := filepath.Join(root, "locales")
	err := newWorkflow(mockUI).Extract(context.Background(), domain.ExtractArgs{
		ScanArgs:   scanArgs(root),
		LocalesDir: m.Path(localesDir),
		SourceLang: "en",
	})

	var fileErr *m.FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, m.OpParse, fileErr.Op)

	_, statErr := os.Stat(localesDir)
	assert.True(t, os.IsNotExist(statErr), "nothing is written on failure")
}

func TestWorkflow_Translate_UsesCache(t *testing.T) {
	localesDir := t.TempDir()
	saveBase(t, localesDir, "App_Welcome", "Welcome", "App_Save", "Save", "Nav_Save", "Save")

	mockUI := controllermocks.NewMockUI(t)
	expectLifecycle(mockUI)
	mockUI.EXPECT().DisplayTranslation(mock.Anything, mock.MatchedBy(func(s m.TranslationStatus) bool {
		return s.Lang == "fr" && s.Err == nil && s.Cached == 1 && s.Translated == 2 && s.Missing == 0
	})).Return().Once()

	mockCache := adaptermocks.NewMockTranslationCache(t)
	mockCache.EXPECT().Get("Welcome", "fr").Return("Bienvenue", true).Once()
	mockCache.EXPECT().Get("Save", "fr").Return("", false).Twice()
	mockCache.EXPECT().SetBatch("fr", map[string]string{"Save": "Enregistrer"}).Return(nil).Once()

	mockTranslator := adaptermocks.NewMockTranslator(t)
	mockTranslator.EXPECT().
		Translate(mock.Anything, map[string]string{"App_Save": "Save", "Nav_Save": "Save"}, "fr").
		Return(map[string]string{"App_Save": "Enregistrer", "Nav_Save": "Enregistrer", "Extra": "ignored"}, nil).
		Once()

	err := newWorkflow(mockUI).Translate(context.Background(), domain.TranslateArgs{
		LocalesDir:  m.Path(localesDir),
		SourceLang:  "en",
		TargetLangs: []string{"fr"},
		Parallel:    1,
		Translator:  mockTranslator,
		Cache:       mockCache,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(localesDir, "fr.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"App_Welcome\": \"Bienvenue\",\n  \"App_Save\": \"Enregistrer\",\n  \"Nav_Save\": \"Enregistrer\"\n}\n", string(data))
}

func TestWorkflow_Translate_AllCachedSkipsTranslator(t *testing.T) {
	localesDir := t.TempDir()
	saveBase(t, localesDir, "App_Welcome", "Welcome")

	mockUI := controllermocks.NewMockUI(t)
	expectLifecycle(mockUI)
	mockUI.EXPECT().DisplayTranslation(mock.Anything, mock.Anything).Return().Once()

	mockCache := adaptermocks.NewMockTranslationCache(t)
	mockCache.EXPECT().Get("Welcome", "de").Return("Willkommen", true).Once()

	mockTranslator := adaptermocks.NewMockTranslator(t)

	err := newWorkflow(mockUI).Translate(context.Background(), domain.TranslateArgs{
		LocalesDir:  m.Path(localesDir),
		SourceLang:  "en",
		TargetLangs: []string{"de"},
		Translator:  mockTranslator,
		Cache:       mockCache,
	})
	require.NoError(t, err)
	mockTranslator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Translate_PartialFailure(t *testing.T) {
	localesDir := t.TempDir()
	saveBase(t, localesDir, "App_Welcome", "Welcome")

	mockUI := controllermocks.NewMockUI(t)
	expectLifecycle(mockUI)
	mockUI.EXPECT().DisplayTranslation(mock.Anything, mock.Anything).Return().Twice()

	mockTranslator := adaptermocks.NewMockTranslator(t)
	mockTranslator.EXPECT().Translate(mock.Anything, mock.Anything, "fr").
		Return(map[string]string{"App_Welcome": "Bienvenue"}, nil).Once()
	mockTranslator.EXPECT().Translate(mock.Anything, mock.Anything, "de").
		Return(nil, errors.New("rate limited")).Once()

	err := newWorkflow(mockUI).Translate(context.Background(), domain.TranslateArgs{
		LocalesDir:  m.Path(localesDir),
		SourceLang:  "en",
		TargetLangs: []string{"fr", "de"},
		Parallel:    2,
		Translator:  mockTranslator,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "de: rate limited")
	assert.NotContains(t, err.Error(), "fr:")

	assert.FileExists(t, filepath.Join(localesDir, "fr.json"))
	assert.NoFileExists(t, filepath.Join(localesDir, "de.json"))
}

func TestWorkflow_Translate_MissingKeysAreCounted(t *testing.T) {
	localesDir := t.TempDir()
	saveBase(t, localesDir, "A_One", "One", "A_Two", "Two")

	mockUI := controllermocks.NewMockUI(t)
	expectLifecycle(mockUI)
	mockUI.EXPECT().DisplayTranslation(mock.Anything, mock.MatchedBy(func(s m.TranslationStatus) bool {
		return s.Translated == 1 && s.Missing == 1
	})).Return().Once()

	mockTranslator := adaptermocks.NewMockTranslator(t)
	mockTranslator.EXPECT().Translate(mock.Anything, mock.Anything, "es").
		Return(map[string]string{"A_One": "Uno"}, nil).Once()

	err := newWorkflow(mockUI).Translate(context.Background(), domain.TranslateArgs{
		LocalesDir:  m.Path(localesDir),
		SourceLang:  "en",
		TargetLangs: []string{"es"},
		Translator:  mockTranslator,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(localesDir, "es.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"A_One": "Uno"}`, string(data))
}

func TestWorkflow_Translate_Validation(t *testing.T) {
	localesDir := t.TempDir()

	tests := []struct {
		name    string
		args    domain.TranslateArgs
		wantErr string
	}{
		{
			name:    "no translator",
			args:    domain.TranslateArgs{LocalesDir: m.Path(localesDir), SourceLang: "en", TargetLangs: []string{"fr"}},
			wantErr: "no translator",
		},
		{
			name:    "no languages",
			args:    domain.TranslateArgs{LocalesDir: m.Path(localesDir), SourceLang: "en"},
			wantErr: "no target language",
		},
		{
			name:    "invalid language",
			args:    domain.TranslateArgs{LocalesDir: m.Path(localesDir), SourceLang: "en", TargetLangs: []string{"not a tag!"}},
			wantErr: "invalid language",
		},
		{
			name:    "missing base table",
			args:    domain.TranslateArgs{LocalesDir: m.Path(localesDir), SourceLang: "en", TargetLangs: []string{"fr"}},
			wantErr: "run 'extract' first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name != "no translator" {
				tt.args.Translator = adaptermocks.NewMockTranslator(t)
			}

			mockUI := controllermocks.NewMockUI(t)

			err := newWorkflow(mockUI).Translate(context.Background(), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWorkflow_Inject_DryRun(t *testing.T) {
	root := newProject(t)
	appPath := filepath.Join(root, "src", "App.tsx")
	before, err := os.ReadFile(appPath)
	require.NoError(t, err)

	mockUI := controllermocks.NewMockUI(t)
	expectLifecycle(mockUI)
	mockUI.EXPECT().DisplayScan(mock.Anything, mock.Anything, mock.Anything).Return().Once()
	mockUI.EXPECT().DisplayInjection(mock.Anything, mock.MatchedBy(func(results []m.InjectResult) bool {
		changed := 0
		for _, r := range results {
			if r.Changed {
				changed++
			}
		}

		return len(results) == 3 && changed == 2
	}), true).Return().Once()

	err = newWorkflow(mockUI).Inject(context.Background(), domain.InjectArgs{ScanArgs: scanArgs(root), DryRun: true})
	require.NoError(t, err)

	after, err := os.ReadFile(appPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWorkflow_Inject_WritesAndKeysMatchExtract(t *testing.T) {
	root := newProject(t)
	localesDir := filepath.Join(root, "locales")

	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Twice()
	mockUI.EXPECT().Close(mock.Anything).Return().Twice()
	mockUI.EXPECT().DisplayScan(mock.Anything, mock.Anything, mock.Anything).Return().Twice()
	mockUI.EXPECT().DisplayExtraction(mock.Anything, mock.Anything).Return().Once()
	mockUI.EXPECT().DisplayInjection(mock.Anything, mock.Anything, false).Return().Once()

	wf := newWorkflow(mockUI)

	require.NoError(t, wf.Extract(context.Background(), domain.ExtractArgs{
		ScanArgs:   scanArgs(root),
		LocalesDir: m.Path(localesDir),
		SourceLang: "en",
	}))
	require.NoError(t, wf.Inject(context.Background(), domain.InjectArgs{ScanArgs: scanArgs(root)}))

	table, err := adapter.NewLocaleStore().Load(m.Path(filepath.Join(localesDir, "en.json")))
	require.NoError(t, err)

	var sources string
	for _, name := range []string{"App.tsx", "Nav.jsx"} {
		data, err := os.ReadFile(filepath.Join(root, "src", name))
		require.NoError(t, err)

		sources += string(data)
	}

	for _, key := range table.Keys() {
		assert.Contains(t, sources, "t('"+key+"')")
	}

	vendor, err := os.ReadFile(filepath.Join(root, "node_modules", "lib", "Lib.tsx"))
	require.NoError(t, err)
	assert.NotContains(t, string(vendor), "useTranslation")
}

func TestWorkflow_List(t *testing.T) {
	root := newProject(t)

	mockUI := controllermocks.NewMockUI(t)
	expectLifecycle(mockUI)
	mockUI.EXPECT().DisplayScan(mock.Anything, mock.Anything, mock.Anything).Return().Once()
	mockUI.EXPECT().DisplayCandidates(mock.Anything, []m.FileCount{
		{Path: m.Path(filepath.Join("src", "App.tsx")), Count: 1},
		{Path: m.Path(filepath.Join("src", "Nav.jsx")), Count: 2},
	}).Return().Once()

	require.NoError(t, newWorkflow(mockUI).List(context.Background(), domain.ListArgs{ScanArgs: scanArgs(root)}))
}

func TestWorkflow_StartError(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(errors.New("no terminal")).Once()

	err := newWorkflow(mockUI).List(context.Background(), domain.ListArgs{ScanArgs: scanArgs(t.TempDir())})
	assert.EqualError(t, err, "no terminal")
}
