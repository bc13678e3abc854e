// Package store persists one holiday dataset per country code as a compact
// JSON file.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cloudeng.io/logging/ctxlog"

	"github.com/klabast/wb-services/holiday-updater/internal/holiday"
)

const (
	FileSuffix      = ".json"
	TmpSuffix       = ".tmp.json"
	FilePermissions = 0644
)

// Store reads and writes per-country dataset files under a single directory.
type Store struct {
	Dir string
}

// New returns a store rooted at dir.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the dataset file path for a country code.
func (s *Store) Path(cc string) string {
	return filepath.Join(s.Dir, cc+FileSuffix)
}

// Exists reports whether a dataset file exists for the country code.
func (s *Store) Exists(cc string) bool {
	_, err := os.Stat(s.Path(cc))
	return err == nil
}

// Keys lists the country codes present in the store directory, sorted.
// Only files named <two-uppercase-letters>.json are considered datasets.
func (s *Store) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, FileSuffix) {
			continue
		}
		cc := strings.TrimSuffix(name, FileSuffix)
		if isCountryCode(cc) {
			keys = append(keys, cc)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func isCountryCode(cc string) bool {
	if len(cc) != 2 {
		return false
	}
	for _, r := range cc {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Load reads the dataset for a country code. A missing file yields an empty
// dataset. Content that is not a well-formed entry list is treated as empty
// and logged as a warning; it is never fatal.
func (s *Store) Load(ctx context.Context, cc string) ([]holiday.Entry, error) {
	data, err := os.ReadFile(s.Path(cc))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []holiday.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		ctxlog.Logger(ctx).Warn("dataset is not a well-formed entry list, treating as empty", "country", cc, "file", s.Path(cc), "err", err)
		return nil, nil
	}
	return entries, nil
}

// Raw returns the stored bytes for a country code without decoding them.
func (s *Store) Raw(cc string) ([]byte, error) {
	return os.ReadFile(s.Path(cc))
}

// Save writes the full entry sequence as the authoritative state for the
// country code, replacing prior content. The encoding is compact JSON and
// the write goes to a temp file first so a concurrent reader never observes
// a half-written dataset.
func (s *Store) Save(cc string, entries []holiday.Entry) error {
	if entries == nil {
		entries = []holiday.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	tmpFile := s.Path(cc) + TmpSuffix
	if err := os.WriteFile(tmpFile, data, FilePermissions); err != nil {
		return err
	}
	return os.Rename(tmpFile, s.Path(cc))
}

// Remove deletes the dataset file for a country code. Removing a dataset
// that does not exist is not an error.
func (s *Store) Remove(cc string) error {
	err := os.Remove(s.Path(cc))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
