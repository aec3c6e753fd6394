package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/weather-flight/internal/trip"
)

var (
	// ErrNotFound is returned when no trip exists for a given id.
	ErrNotFound = errors.New("trip not found")
	// ErrFull is returned when saving a new trip would exceed the configured capacity.
	ErrFull = errors.New("trip store is full")
)

// MemoryStore is a concurrency-safe in-memory implementation of trip.Store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: trip id
	data map[string]trip.Trip

	// maxTrips caps the number of stored trips (<= 0 = unlimited)
	maxTrips int
}

// NewMemoryStore creates a new MemoryStore.
// If maxTrips is <= 0, it is treated as unlimited.
func NewMemoryStore(maxTrips int) *MemoryStore {
	return &MemoryStore{
		data:     make(map[string]trip.Trip),
		maxTrips: maxTrips,
	}
}

// Save inserts or replaces a trip.
func (s *MemoryStore) Save(t trip.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[t.ID]; !exists && s.maxTrips > 0 && len(s.data) >= s.maxTrips {
		return ErrFull
	}
	s.data[t.ID] = t.Clone()
	return nil
}

// Get returns a copy of the trip with the given id.
func (s *MemoryStore) Get(id string) (trip.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.data[id]
	if !ok {
		return trip.Trip{}, ErrNotFound
	}
	return t.Clone(), nil
}

// List returns copies of every stored trip in no particular order.
func (s *MemoryStore) List() []trip.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]trip.Trip, 0, len(s.data))
	for _, t := range s.data {
		out = append(out, t.Clone())
	}
	return out
}

// Delete removes a trip.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return ErrNotFound
	}
	delete(s.data, id)
	return nil
}

// Update runs fn on a copy of the stored trip under the write lock and stores
// the result unless fn fails.
func (s *MemoryStore) Update(id string, fn func(*trip.Trip) error) (trip.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.data[id]
	if !ok {
		return trip.Trip{}, ErrNotFound
	}
	working := t.Clone()
	if err := fn(&working); err != nil {
		return trip.Trip{}, err
	}
	working.ID = id
	s.data[id] = working
	return working.Clone(), nil
}

// DeleteEndedBefore enforces retention by age: trips whose last agenda item
// ended before cutoff are dropped.
func (s *MemoryStore) DeleteEndedBefore(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, t := range s.data {
		if t.EndsAt().Before(cutoff) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}
