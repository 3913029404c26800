// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package artifact lays out and writes the JSON files produced by a
// collection run. Every fetched response is persisted as one file: seed
// metadata under the seed-papers directory, one-hop neighbor metadata under
// the snowballing-papers directory, and the raw search result under a name
// describing the query.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Directory names kept verbatim from the collection layout, embedded
// spaces included.
const (
	seedDir     = "seed papers"
	snowballDir = "snowballing papers"
)

// Store resolves artifact paths under a run's output root. The root and
// its subdirectories must already exist; nothing in this package creates
// directories.
type Store struct {
	Root string
}

// SeedPath returns the artifact path for a seed paper's metadata.
func (s *Store) SeedPath(id string) string {
	return filepath.Join(s.Root, seedDir, id+".json")
}

// SnowballPath returns the artifact path for a one-hop neighbor's metadata.
func (s *Store) SnowballPath(id string) string {
	return filepath.Join(s.Root, snowballDir, id+".json")
}

// SearchPath returns the artifact path for a top-n search result. The name
// embeds the requested count and the keyword list.
func (s *Store) SearchPath(n int, keywords []string) string {
	name := fmt.Sprintf("top_%d_papers_about_%s.json", n, strings.Join(keywords, "_"))
	return filepath.Join(s.Root, name)
}

// Dirs returns the directories a collection run writes into, for use by
// init tooling.
func Dirs(root string) []string {
	return []string{
		filepath.Join(root, seedDir),
		filepath.Join(root, snowballDir),
	}
}

// Write stores body at path, replacing any existing file. The body goes to
// a temporary file first and is renamed into place, so a partial write is
// never observed at path. The parent directory must exist.
func Write(path string, body []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".snowball-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(body)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing artifact: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
