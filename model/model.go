// Package model holds the in-memory reservation list and the filtered view
// shown to the user. The full list is the source of truth; the filtered view
// is derived from it and the active predicate on every read.
package model

import (
	"errors"
	"sync"

	"github.com/c360studio/reservemate/reservation"
)

// Errors returned by list mutations.
var (
	// ErrDuplicateReservation is returned when a reservation with the same
	// name, phone and date-time is already present.
	ErrDuplicateReservation = errors.New("reservation already exists")

	// ErrReservationNotFound is returned when the target of a delete or
	// replace is not in the list.
	ErrReservationNotFound = errors.New("reservation not found")
)

// Listener receives a snapshot of the full list after every change.
type Listener func(all []reservation.Reservation)

// Model owns the reservation list and the active filter.
type Model struct {
	mu           sync.RWMutex
	reservations []reservation.Reservation
	predicate    Predicate

	listenerMu sync.Mutex
	listeners  map[int]Listener
	nextID     int
}

// New creates a Model holding a copy of initial.
func New(initial []reservation.Reservation) *Model {
	m := &Model{
		predicate: PredicateShowAll,
		listeners: make(map[int]Listener),
	}
	m.reservations = append(m.reservations, initial...)
	return m
}

// Reservations returns a snapshot of the full list.
func (m *Model) Reservations() []reservation.Reservation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Len returns the size of the full list.
func (m *Model) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.reservations)
}

// HasReservation reports whether a reservation with the same identity as r
// is present.
func (m *Model) HasReservation(r reservation.Reservation) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.indexOfSameLocked(r) >= 0
}

// AddReservation appends r. It fails without mutating if a reservation with
// the same identity already exists.
func (m *Model) AddReservation(r reservation.Reservation) error {
	m.mu.Lock()
	if m.indexOfSameLocked(r) >= 0 {
		m.mu.Unlock()
		return ErrDuplicateReservation
	}
	m.reservations = append(m.reservations, r)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snapshot)
	return nil
}

// DeleteReservation removes the entry fully equal to target.
func (m *Model) DeleteReservation(target reservation.Reservation) error {
	m.mu.Lock()
	idx := m.indexOfEqualLocked(target)
	if idx < 0 {
		m.mu.Unlock()
		return ErrReservationNotFound
	}
	m.reservations = append(m.reservations[:idx:idx], m.reservations[idx+1:]...)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snapshot)
	return nil
}

// SetReservation replaces target with edited in place, keeping list order.
// It fails if target is absent, or if edited collides with an entry other
// than target.
func (m *Model) SetReservation(target, edited reservation.Reservation) error {
	m.mu.Lock()
	idx := m.indexOfEqualLocked(target)
	if idx < 0 {
		m.mu.Unlock()
		return ErrReservationNotFound
	}
	for i, r := range m.reservations {
		if i != idx && r.IsSameReservation(edited) {
			m.mu.Unlock()
			return ErrDuplicateReservation
		}
	}
	m.reservations[idx] = edited
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snapshot)
	return nil
}

// SetReservations replaces the whole list. Entries sharing an identity with
// an earlier entry are rejected.
func (m *Model) SetReservations(all []reservation.Reservation) error {
	for i := range all {
		for j := 0; j < i; j++ {
			if all[i].IsSameReservation(all[j]) {
				return ErrDuplicateReservation
			}
		}
	}

	m.mu.Lock()
	m.reservations = append([]reservation.Reservation(nil), all...)
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snapshot)
	return nil
}

// UpdateFilteredList sets the active predicate. A nil predicate shows all.
func (m *Model) UpdateFilteredList(p Predicate) {
	if p == nil {
		p = PredicateShowAll
	}
	m.mu.Lock()
	m.predicate = p
	m.mu.Unlock()
}

// FilteredList returns the reservations matching the active predicate, in
// list order.
func (m *Model) FilteredList() []reservation.Reservation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]reservation.Reservation, 0, len(m.reservations))
	for _, r := range m.reservations {
		if m.predicate(r) {
			out = append(out, r)
		}
	}
	return out
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (m *Model) Subscribe(fn Listener) (unsubscribe func()) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()

	id := m.nextID
	m.nextID++
	m.listeners[id] = fn

	return func() {
		m.listenerMu.Lock()
		defer m.listenerMu.Unlock()
		delete(m.listeners, id)
	}
}

func (m *Model) notify(snapshot []reservation.Reservation) {
	m.listenerMu.Lock()
	listeners := make([]Listener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.listenerMu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (m *Model) snapshotLocked() []reservation.Reservation {
	out := make([]reservation.Reservation, len(m.reservations))
	copy(out, m.reservations)
	return out
}

func (m *Model) indexOfSameLocked(r reservation.Reservation) int {
	for i, have := range m.reservations {
		if have.IsSameReservation(r) {
			return i
		}
	}
	return -1
}

func (m *Model) indexOfEqualLocked(r reservation.Reservation) int {
	for i, have := range m.reservations {
		if have.Equal(r) {
			return i
		}
	}
	return -1
}
