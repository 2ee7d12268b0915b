// Package storage persists exported report documents to the local
// filesystem. Exports are the only artifact the service keeps; analysis
// itself is in-memory only.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/template-insights/internal/config"
)

// Store writes report exports into a local directory.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates the export directory if needed and returns a store.
func New(cfg config.StorageConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.LocalPath, 0755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}
	return &Store{dir: cfg.LocalPath}, nil
}

// SaveExport writes one report document and returns its file name.
// Names embed a timestamp and the analysis ID so repeated exports of the
// same upload never collide.
func (s *Store) SaveExport(analysisID uuid.UUID, data []byte, at time.Time) (string, error) {
	name := fmt.Sprintf("report-%s-%s.json", at.UTC().Format("20060102-150405"), analysisID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("writing export %s: %w", name, err)
	}
	return name, nil
}

// ListExports returns saved export file names, newest first.
func (s *Store) ListExports() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading export directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}
