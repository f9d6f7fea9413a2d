// File: models/meta.go
package models

import "time"

// DateLayout is the calendar-date format used by every date field.
const DateLayout = "2006-01-02"

// Meta carries the server-assigned fields shared by every record.
type Meta struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Key returns the record identifier.
func (m *Meta) Key() int64 { return m.ID }

// Assign sets the identifier and creation stamps of a new record.
func (m *Meta) Assign(id int64, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

// Touch records a modification.
func (m *Meta) Touch(now time.Time) { m.UpdatedAt = now }

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
