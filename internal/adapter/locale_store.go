package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/tidwall/gjson"

	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

// ErrLocaleNotFound is returned by Load when the locale file does not exist.
var ErrLocaleNotFound = errors.New("locale file not found")

// LocaleStore reads and writes flat <lang>.json translation tables.
type LocaleStore interface {
	// Path returns the file path of a language table inside dir.
	Path(dir m.Path, lang string) m.Path
	// Load reads a table, keeping the key order of the file.
	Load(path m.Path) (*m.LocaleTable, error)
	// Save writes a table, creating parent directories as needed.
	Save(path m.Path, table *m.LocaleTable) error
}

// JSONLocaleStore is the file-backed LocaleStore.
type JSONLocaleStore struct{}

// NewLocaleStore constructs a JSONLocaleStore.
func NewLocaleStore() *JSONLocaleStore {
	return &JSONLocaleStore{}
}

// Path joins dir and "<lang>.json".
func (s *JSONLocaleStore) Path(dir m.Path, lang string) m.Path {
	return m.Path(filepath.Join(string(dir), lang+".json"))
}

// Load parses a flat JSON object. Non-string values are kept in their JSON
// text form.
func (s *JSONLocaleStore) Load(path m.Path) (*m.LocaleTable, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLocaleNotFound, path)
		}

		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON in %s", path)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%s: expected a JSON object", path)
	}

	table := m.NewLocaleTable()

	root.ForEach(func(key, value gjson.Result) bool {
		table.Set(key.String(), value.String())
		return true
	})

	return table, nil
}

// Save writes the table atomically with a trailing newline.
func (s *JSONLocaleStore) Save(path m.Path, table *m.LocaleTable) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o755); err != nil {
		return fmt.Errorf("create locale directory: %w", err)
	}

	data, err := table.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	data = append(data, '\n')

	return atomic.WriteFile(string(path), bytes.NewReader(data))
}
