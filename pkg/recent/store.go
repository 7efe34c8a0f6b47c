// Package recent tracks the most recently inserted tokens as a bounded
// most-recent-first list, persisted across sessions.
package recent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store is the persistence backend for the recent-tokens list. The
// stored value is a JSON-encoded array of token strings.
type Store interface {
	Load() ([]string, error)
	Save(tokens []string) error
}

// FileStore persists the list to a single JSON file.
type FileStore struct {
	Path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads and decodes the stored list. A missing file is not an
// error; it yields an empty list.
func (s *FileStore) Load() ([]string, error) {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read recent tokens: %w", err)
	}
	if len(content) == 0 {
		return nil, nil
	}

	var tokens []string
	if err := json.Unmarshal(content, &tokens); err != nil {
		return nil, fmt.Errorf("failed to parse recent tokens: %w", err)
	}
	return tokens, nil
}

// Save encodes and writes the list, creating parent directories as
// needed.
func (s *FileStore) Save(tokens []string) error {
	if tokens == nil {
		tokens = []string{}
	}
	content, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to encode recent tokens: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(s.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write recent tokens: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store, used when no project directory
// exists and in tests.
type MemoryStore struct {
	tokens  []string
	LoadErr error
	SaveErr error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the held list or the configured error.
func (s *MemoryStore) Load() ([]string, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out, nil
}

// Save replaces the held list or returns the configured error.
func (s *MemoryStore) Save(tokens []string) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.tokens = make([]string, len(tokens))
	copy(s.tokens, tokens)
	return nil
}
