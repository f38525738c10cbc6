// Package adapter contains the infrastructure adapters used by the workflow:
// parsing, filesystem access, locale files, the translation cache and the
// translation client.
package adapter

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/natefinch/atomic"

	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the workflow relies on
// so the domain logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Scan returns files under root matching any include pattern and no
	// exclude pattern, in lexical order. Patterns are doublestar globs
	// relative to root, e.g. "**/*.{js,jsx,ts,tsx}".
	Scan(root m.Path, include, exclude []string) ([]m.File, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the file content in one step. Readers never observe
	// a partially written file.
	WriteFile(path m.Path, content []byte) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Scan walks root and applies the include/exclude globs. Excluded
// directories are pruned without being descended into.
func (a *LocalSourceFSAdapter) Scan(root m.Path, include, exclude []string) ([]m.File, error) {
	absRoot, err := filepath.Abs(string(root))
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", absRoot)
	}

	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}
	}

	var files []m.File

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == absRoot {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if matchAny(exclude, rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() || !matchAny(include, rel) {
			return nil
		}

		files = append(files, m.File{FullPath: m.Path(path), ShortPath: m.Path(rel)})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	return files, nil
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes through a temporary file renamed over the target.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	return atomic.WriteFile(string(path), bytes.NewReader(content))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// MkdirAll creates path with 0o755 permissions.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o755)
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
