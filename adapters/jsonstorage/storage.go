// Package jsonstorage reads and writes the importjson artifact: a JSON
// array of dictionary entries, optionally pretty-printed.
package jsonstorage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/altlab/munge"
)

// WriteFile writes the entry array atomically: the file appears under its
// final name only once encoding succeeded, so an aborted batch commits
// nothing.
func WriteFile(path string, entries []munge.Entry, pretty bool) error {
	if entries == nil {
		entries = []munge.Entry{}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".importjson-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)

	if err := enc.Encode(entries); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func Open(path string, readOnly bool) (*Storage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []munge.Entry
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		return nil, err
	}

	storage := &Storage{
		path:     path,
		readOnly: readOnly,
		bySlug:   make(map[string]int, len(entries)),
		entries:  entries,
	}
	storage.reindex()

	return storage, nil
}

func New(path string) *Storage {
	return &Storage{
		path:   path,
		bySlug: make(map[string]int, 1024),
	}
}

// Storage keeps the entry array in memory and serves the EntryStorage
// interface over it. Entry order is the conversion order.
type Storage struct {
	mu       sync.Mutex
	path     string
	readOnly bool
	entries  []munge.Entry
	bySlug   map[string]int
}

func (s *Storage) EntryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *Storage) FindEntry(ctx context.Context, slug string) (*munge.Entry, error) {
	if !s.readOnly {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	i, ok := s.bySlug[slug]
	if !ok {
		return nil, munge.ErrEntryNotFound
	}

	entry := s.entries[i].Copy()
	return &entry, nil
}

func (s *Storage) ListEntries(ctx context.Context) ([]munge.Entry, error) {
	if !s.readOnly {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	res := make([]munge.Entry, 0, len(s.entries))
	for i := range s.entries {
		res = append(res, s.entries[i].Copy())
	}

	return res, nil
}

func (s *Storage) SearchEntries(ctx context.Context, head string) ([]munge.Entry, error) {
	if !s.readOnly {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	res := make([]munge.Entry, 0, 2)
	for i := range s.entries {
		if s.entries[i].Head == head {
			res = append(res, s.entries[i].Copy())
		}
	}

	return res, nil
}

func (s *Storage) SaveEntries(ctx context.Context, entries []munge.Entry) error {
	if s.readOnly {
		return munge.ErrReadOnly
	}

	s.mu.Lock()
	for _, entry := range entries {
		if i, ok := s.bySlug[entry.Slug]; ok {
			s.entries[i] = entry.Copy()
			continue
		}

		s.bySlug[entry.Slug] = len(s.entries)
		s.entries = append(s.entries, entry.Copy())
	}
	s.mu.Unlock()

	return nil
}

func (s *Storage) WriteToFile(pretty bool) error {
	s.mu.Lock()
	entries := make([]munge.Entry, 0, len(s.entries))
	for i := range s.entries {
		entries = append(entries, s.entries[i].Copy())
	}
	s.mu.Unlock()

	return WriteFile(s.path, entries, pretty)
}

func (s *Storage) reindex() {
	for i := range s.entries {
		s.bySlug[s.entries[i].Slug] = i
	}
}
