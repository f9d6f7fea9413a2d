// File: models/achievement.go
package models

import "time"

// Achievement is a trophy or milestone in the clan's history.
type Achievement struct {
	Meta
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Date             string   `json:"date"`
	Type             string   `json:"type"`
	Image            string   `json:"image,omitempty"`
	Importance       string   `json:"importance"`
	Competition      string   `json:"competition,omitempty"`
	Prize            string   `json:"prize,omitempty"`
	Participants     []string `json:"participants,omitempty"`
	Proof            string   `json:"proof,omitempty"`
	CelebrationVideo string   `json:"celebrationVideo,omitempty"`
}

// ApplyDefaults fills the optional fields a new achievement was created without.
func (a *Achievement) ApplyDefaults(now time.Time) {
	a.Importance = orDefault(a.Importance, "bronze")
	a.Date = orDefault(a.Date, now.Format(DateLayout))
}
