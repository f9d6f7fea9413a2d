// Package store holds the CRUD backends shared by every record type: an
// in-process collection and a relational implementation. Both satisfy Store.
// File: store/store.go
package store

import (
	"context"
	"errors"
	"time"

	"go-clan-admin/models"
)

// ErrInvalidPatch is returned when a patch does not decode into the record type.
var ErrInvalidPatch = errors.New("invalid patch")

// Record is satisfied by pointers to every stored model. Meta supplies Key,
// Assign and Touch; each model supplies its own ApplyDefaults.
type Record[T any] interface {
	*T
	Key() int64
	Assign(id int64, now time.Time)
	Touch(now time.Time)
	ApplyDefaults(now time.Time)
}

// Store is the CRUD contract of one collection.
type Store[T any] interface {
	// List returns every record; never nil.
	List(ctx context.Context) ([]T, error)
	// Get returns the record with id, or false if there is none.
	Get(ctx context.Context, id int64) (T, bool, error)
	// Create assigns an id, applies defaults and stores rec.
	Create(ctx context.Context, rec T) (T, error)
	// Update merges patch onto the record with id. It reports false, with
	// nothing changed, when the id does not exist.
	Update(ctx context.Context, id int64, patch Patch) (bool, error)
	// Delete removes the record with id, reporting false if it was absent.
	Delete(ctx context.Context, id int64) (bool, error)
}

// SettingsStore holds the singleton site settings.
type SettingsStore interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, patch Patch) (bool, error)
}

// timeNow is swapped in tests.
var timeNow = func() time.Time { return time.Now().UTC() }
