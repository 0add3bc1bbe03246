package storage

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/reservemate/reservation"
)

// ImportedFile is one data file found by ImportGlob.
type ImportedFile struct {
	Path         string
	Reservations []reservation.Reservation
}

// ExpandPatterns resolves doublestar patterns ("backups/**/*.json") to
// regular files, sorted and without repeats. A pattern that matches
// nothing is an error.
func ExpandPatterns(patterns ...string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob error: %w", err)
		}

		found := 0
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			found++
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
		if found == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
		}
	}
	sort.Strings(files)
	return files, nil
}

// ImportGlob loads every data file matching patterns. Any file that fails
// to load aborts the import.
func ImportGlob(patterns ...string) ([]ImportedFile, error) {
	files, err := ExpandPatterns(patterns...)
	if err != nil {
		return nil, err
	}

	out := make([]ImportedFile, 0, len(files))
	for _, path := range files {
		rs, err := NewJSONStore(path).Load()
		if err != nil {
			return nil, err
		}
		out = append(out, ImportedFile{Path: path, Reservations: rs})
	}
	return out, nil
}
