package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
)

const (
	cacheDirName  = "auto-i18n-cli"
	cacheFileName = "cache.json"
)

// TranslationCache remembers translations by source text so identical text
// is never sent to the provider twice, even under different keys.
type TranslationCache interface {
	Get(text, lang string) (string, bool)
	// SetBatch records source text → translation pairs for lang and persists them.
	SetBatch(lang string, pairs map[string]string) error
}

// FileTranslationCache is a JSON-file backed TranslationCache. It is safe for
// concurrent use.
type FileTranslationCache struct {
	path    string
	mu      sync.RWMutex
	entries map[string]string
}

// DefaultCachePath returns ~/.config/auto-i18n-cli/cache.json.
func DefaultCachePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", cacheDirName, cacheFileName), nil
}

// NewFileTranslationCache opens the cache at path. A missing or unreadable
// cache file starts an empty cache.
func NewFileTranslationCache(path string) *FileTranslationCache {
	c := &FileTranslationCache{
		path:    path,
		entries: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read translation cache", "path", path, "error", err)
		}

		return c
	}

	if err := json.Unmarshal(data, &c.entries); err != nil {
		slog.Warn("ignoring corrupt translation cache", "path", path, "error", err)

		c.entries = make(map[string]string)
	}

	return c
}

func cacheKey(text, lang string) string {
	return lang + "." + text
}

// Get returns the cached translation of text into lang.
func (c *FileTranslationCache) Get(text, lang string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[cacheKey(text, lang)]

	return v, ok && v != ""
}

// SetBatch stores pairs and rewrites the cache file once.
func (c *FileTranslationCache) SetBatch(lang string, pairs map[string]string) error {
	if len(pairs) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for text, translated := range pairs {
		c.entries[cacheKey(text, lang)] = translated
	}

	return c.save()
}

func (c *FileTranslationCache) save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	if err := atomic.WriteFile(c.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write cache %s: %w", c.path, err)
	}

	slog.Debug("saved translation cache", "path", c.path, "entries", len(c.entries))

	return nil
}
