// File: models/training.go
package models

import "time"

// TrainingSession is a scheduled practice.
type TrainingSession struct {
	Meta
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Duration    int      `json:"duration"`
	Type        string   `json:"type"`
	Location    string   `json:"location,omitempty"`
	Coach       string   `json:"coach"`
	Attendees   []int64  `json:"attendees,omitempty"`
	Description string   `json:"description,omitempty"`
	Objectives  []string `json:"objectives,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
	Status      string   `json:"status"`
}

// ApplyDefaults fills the optional fields a new session was created without.
func (s *TrainingSession) ApplyDefaults(time.Time) {
	s.Status = orDefault(s.Status, "scheduled")
}
