// File: store/memory_settings.go
package store

import (
	"context"
	"sync"

	"go-clan-admin/models"
)

// MemorySettings holds the singleton settings in process memory.
type MemorySettings struct {
	mu       sync.RWMutex
	settings models.Settings
}

// NewMemorySettings starts from initial.
func NewMemorySettings(initial models.Settings) *MemorySettings {
	return &MemorySettings{settings: clone(initial)}
}

// Get returns a copy of the current settings.
func (s *MemorySettings) Get(_ context.Context) (models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.settings), nil
}

// Update merges patch onto the settings. It always reports true.
func (s *MemorySettings) Update(_ context.Context, patch Patch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged, err := merge(s.settings, patch)
	if err != nil {
		return false, err
	}
	merged.UpdatedAt = timeNow()
	s.settings = merged
	return true, nil
}
