// Package storage persists reservations as JSON and watches the data file
// for edits made outside the application.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/c360studio/reservemate/reservation"
)

// MessageDuplicateReservation is reported when a file lists the same
// reservation twice.
const MessageDuplicateReservation = "Reservations list contains duplicate reservation(s)."

// JSONStore reads and writes the whole reservation list to one file.
type JSONStore struct {
	path string

	mu       sync.RWMutex
	lastHash string
}

// NewJSONStore creates a store backed by path. The file is not touched
// until Load or Save is called.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: filepath.Clean(path)}
}

// Path returns the data file location.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads every reservation from the data file. A missing file yields
// an empty list. Unreadable or invalid content wraps ErrDataLoading.
func (s *JSONStore) Load() ([]reservation.Reservation, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrDataLoading, s.path, err)
	}

	rs, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDataLoading, s.path, err)
	}

	s.setLastHash(ContentHash(data))
	return rs, nil
}

// Save overwrites the data file with rs, creating parent directories.
func (s *JSONStore) Save(rs []reservation.Reservation) error {
	data, err := Encode(rs)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}

	s.setLastHash(ContentHash(data))
	return nil
}

// LastHash returns the content hash of the last file contents this store
// read or wrote.
func (s *JSONStore) LastHash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastHash
}

func (s *JSONStore) setLastHash(h string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastHash = h
}

// ContentHash returns the hex SHA-256 of content.
func ContentHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

type jsonFile struct {
	Reservations []jsonReservation `json:"reservations"`
}

type jsonReservation struct {
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Diners     string   `json:"diners"`
	DateTime   string   `json:"dateTime"`
	Occasions  []string `json:"occasions"`
	Preference string   `json:"preference"`
}

func fromReservation(r reservation.Reservation) jsonReservation {
	occasions := make([]string, 0, len(r.Occasions()))
	for _, o := range r.Occasions() {
		occasions = append(occasions, o.String())
	}
	return jsonReservation{
		Name:       r.Name().String(),
		Phone:      r.Phone().String(),
		Email:      r.Email().String(),
		Diners:     r.Diners().String(),
		DateTime:   r.DateTime().FileString(),
		Occasions:  occasions,
		Preference: r.Preference().String(),
	}
}

// toReservation validates each field the same way user input is
// validated, except that past date-times are allowed.
func (j jsonReservation) toReservation() (reservation.Reservation, error) {
	name, err := reservation.NewName(j.Name)
	if err != nil {
		return reservation.Reservation{}, err
	}
	phone, err := reservation.NewPhone(j.Phone)
	if err != nil {
		return reservation.Reservation{}, err
	}
	email, err := reservation.NewEmail(j.Email)
	if err != nil {
		return reservation.Reservation{}, err
	}
	diners, err := reservation.NewDiners(j.Diners)
	if err != nil {
		return reservation.Reservation{}, err
	}
	dateTime, err := reservation.ParseDateTime(j.DateTime)
	if err != nil {
		return reservation.Reservation{}, err
	}
	occasions := make([]reservation.Occasion, 0, len(j.Occasions))
	for _, raw := range j.Occasions {
		o, err := reservation.NewOccasion(raw)
		if err != nil {
			return reservation.Reservation{}, err
		}
		occasions = append(occasions, o)
	}
	preference, err := reservation.NewPreference(j.Preference)
	if err != nil {
		return reservation.Reservation{}, err
	}
	return reservation.New(name, phone, email, diners, dateTime, occasions, preference), nil
}

// Encode renders rs in the data file format.
func Encode(rs []reservation.Reservation) ([]byte, error) {
	file := jsonFile{Reservations: make([]jsonReservation, 0, len(rs))}
	for _, r := range rs {
		file.Reservations = append(file.Reservations, fromReservation(r))
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal reservations: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses the data file format. Every record must be valid and no
// two records may be the same reservation.
func Decode(data []byte) ([]reservation.Reservation, error) {
	var file jsonFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	rs := make([]reservation.Reservation, 0, len(file.Reservations))
	for i, j := range file.Reservations {
		r, err := j.toReservation()
		if err != nil {
			return nil, fmt.Errorf("reservation %d: %w", i+1, err)
		}
		for _, existing := range rs {
			if existing.IsSameReservation(r) {
				return nil, errors.New(MessageDuplicateReservation)
			}
		}
		rs = append(rs, r)
	}
	return rs, nil
}
