package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/dockyard/pkg/observability"
)

// FileStore implements a file-based layout store for CLI usage.
// Each layout is stored as a JSON entry file carrying its name, so List
// works without a separate index.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// storeEntry wraps stored data with metadata.
type storeEntry struct {
	Name    string    `json:"name"`
	Data    []byte    `json:"data"`
	SavedAt time.Time `json:"saved_at"`
}

// Get retrieves the layout stored under name.
func (s *FileStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		observability.Store().OnStoreMiss(ctx, "file")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry storeEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// Invalid entry - treat as miss
		_ = os.Remove(s.path(name))
		observability.Store().OnStoreMiss(ctx, "file")
		return nil, false, nil
	}

	observability.Store().OnStoreHit(ctx, "file")
	return entry.Data, true, nil
}

// Set stores a layout under name.
func (s *FileStore) Set(ctx context.Context, name string, data []byte) error {
	entry := storeEntry{
		Name:    name,
		Data:    data,
		SavedAt: time.Now().UTC(),
	}
	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(name), entryData, 0644); err != nil {
		return err
	}
	observability.Store().OnStoreSet(ctx, "file", len(data))
	return nil
}

// Delete removes the layout stored under name.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// List returns the names of all stored layouts.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var entry storeEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			continue
		}
		names = append(names, entry.Name)
	}
	return names, nil
}

// Close does nothing for file store.
func (s *FileStore) Close() error {
	return nil
}

// path converts a layout name to a file path. Names are hashed so arbitrary
// characters never leak into the filesystem.
func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, Hash([]byte(name))+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
