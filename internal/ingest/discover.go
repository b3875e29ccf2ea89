// Package ingest discovers datasheet source documents on the filesystem and
// resolves index-list selections over them.
package ingest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DangerDawgAU/cable-datasheet-extractor/constants"
)

// DirStats summarizes one discovery walk.
type DirStats struct {
	Scanned uint32
	Matched uint32
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// DiscoverSources walks root and returns the sorted paths of every
// ingestible datasheet file (allowed extension, not hidden).
func DiscoverSources(root string) ([]string, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var files []string
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if IsHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		stats.Scanned++
		if !constants.IsAllowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	sort.Strings(files)
	return files, stats, nil
}
