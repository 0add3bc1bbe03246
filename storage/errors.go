package storage

import "errors"

// Common storage errors.
var (
	// ErrDataLoading is returned when the data file exists but cannot be
	// read or contains invalid reservations.
	ErrDataLoading = errors.New("data loading failed")

	// ErrNoMatches is returned when an import pattern matches no files.
	ErrNoMatches = errors.New("no files match pattern")
)
