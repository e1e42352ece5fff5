// Package store persists saved documents.
//
// An entry's Text is the raw document text as last beautified; it is the
// canonical persisted representation, no separate serialized value exists.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry is one saved document.
type Entry struct {
	ID      string    `json:"id"`
	SavedAt time.Time `json:"savedAt"`
	Name    string    `json:"name"`
	Text    string    `json:"text"`
}

// NewEntry stamps a fresh id and timestamp.
func NewEntry(name, text string) Entry {
	return Entry{
		ID:      uuid.NewString(),
		SavedAt: time.Now().UTC(),
		Name:    name,
		Text:    text,
	}
}

// Store loads and saves the ordered entry list.
type Store interface {
	Load() ([]Entry, error)
	Save([]Entry) error
}

// FileStore keeps the entry list in a single JSON file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load returns the stored entries, oldest first. A missing file is an empty
// store.
func (s *FileStore) Load() ([]Entry, error) {
	d, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", s.Path, err)
	}
	var entries []Entry
	if err := json.Unmarshal(d, &entries); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", s.Path, err)
	}
	return entries, nil
}

// Save writes the whole list, replacing the file atomically.
func (s *FileStore) Save(entries []Entry) error {
	d, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return err
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, d, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
