// File: store/memory.go
package store

import (
	"context"
	"sync"
)

// MemoryStore keeps one collection in process memory, in insertion order.
// Data is lost on restart. All mutations are serialized by mu and reads
// return copies.
type MemoryStore[T any, P Record[T]] struct {
	mu      sync.RWMutex
	records []T
	lastID  int64
}

// NewMemoryStore creates an empty collection.
func NewMemoryStore[T any, P Record[T]]() *MemoryStore[T, P] {
	return &MemoryStore[T, P]{records: []T{}}
}

// List returns copies of every record in insertion order.
func (s *MemoryStore[T, P]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, clone(rec))
	}
	return out, nil
}

// Get returns a copy of the record with id.
func (s *MemoryStore[T, P]) Get(_ context.Context, id int64) (T, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return clone(s.records[i]), true, nil
	}
	var zero T
	return zero, false, nil
}

// Create stores a copy of rec under a fresh id.
func (s *MemoryStore[T, P]) Create(_ context.Context, rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := timeNow()
	created := clone(rec)
	P(&created).ApplyDefaults(now)
	P(&created).Assign(s.nextID(now.UnixMilli()), now)

	s.records = append(s.records, created)
	return clone(created), nil
}

// Update merges patch onto the record with id.
func (s *MemoryStore[T, P]) Update(_ context.Context, id int64, patch Patch) (bool, error) {
	if _, err := decodePatch[T](patch); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	merged, err := merge(s.records[i], patch)
	if err != nil {
		return false, err
	}
	P(&merged).Touch(timeNow())
	s.records[i] = merged
	return true, nil
}

// Delete removes the record with id.
func (s *MemoryStore[T, P]) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return true, nil
}

// nextID derives an id from the creation time in milliseconds, bumped past
// the previous id so ids stay unique and increasing within a millisecond.
// Caller holds mu.
func (s *MemoryStore[T, P]) nextID(candidate int64) int64 {
	if candidate <= s.lastID {
		candidate = s.lastID + 1
	}
	s.lastID = candidate
	return candidate
}

// indexOf returns the position of id, or -1. Caller holds mu.
func (s *MemoryStore[T, P]) indexOf(id int64) int {
	for i := range s.records {
		if P(&s.records[i]).Key() == id {
			return i
		}
	}
	return -1
}
