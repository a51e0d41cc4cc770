// Package store provides interaction-store backends: a JSON file for
// normal operation, an in-memory store for tests, and a Redis-backed
// store for deployments that already run one.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	emotioncalc "github.com/affectkit/emotioncalc-go"
)

// FileStore persists the interaction history as a single pretty-printed
// JSON array on disk. The whole file is rewritten on every Save.
type FileStore struct {
	Path string
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the full history. A missing, unreadable or malformed file
// yields an empty history.
func (s *FileStore) Load() ([]emotioncalc.Interaction, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[Store] unreadable history at %s, starting empty: %v", s.Path, err)
		}
		return nil, nil
	}
	var history []emotioncalc.Interaction
	if err := json.Unmarshal(data, &history); err != nil {
		log.Printf("[Store] corrupted history at %s, starting empty: %v", s.Path, err)
		return nil, nil
	}
	return history, nil
}

// Save rewrites the full history.
func (s *FileStore) Save(history []emotioncalc.Interaction) error {
	if history == nil {
		history = []emotioncalc.Interaction{}
	}
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
