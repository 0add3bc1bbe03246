package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/reservemate/reservation"
	"github.com/c360studio/reservemate/reservation/reservationtest"
)

func TestImportGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewJSONStore(filepath.Join(dir, "a", "one.json")).Save([]reservation.Reservation{reservationtest.Amy().Build()}))
	require.NoError(t, NewJSONStore(filepath.Join(dir, "a", "b", "two.json")).Save([]reservation.Reservation{reservationtest.Bob().Build(), reservationtest.Carl().Build()}))
	writeFile(t, filepath.Join(dir, "a", "notes.txt"), "ignored")

	files, err := ImportGlob(filepath.Join(dir, "**", "*.json"))
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, filepath.Join(dir, "a", "b", "two.json"), files[0].Path)
	assert.Len(t, files[0].Reservations, 2)
	assert.Equal(t, filepath.Join(dir, "a", "one.json"), files[1].Path)
	assert.Len(t, files[1].Reservations, 1)
}

func TestImportGlob_NoMatches(t *testing.T) {
	_, err := ImportGlob(filepath.Join(t.TempDir(), "*.json"))
	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestImportGlob_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.json"), "[]")

	_, err := ImportGlob(filepath.Join(dir, "*.json"))
	assert.ErrorIs(t, err, ErrDataLoading)
}

func TestExpandPatterns_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x.json"), "{}")

	files, err := ExpandPatterns(filepath.Join(dir, "*.json"), filepath.Join(dir, "x.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "x.json")}, files)
}
