// File: models/tournament.go
package models

import "time"

// Tournament statuses.
const (
	TournamentUpcoming  = "upcoming"
	TournamentOngoing   = "ongoing"
	TournamentCompleted = "completed"
)

// Tournament is a competition the clan enters.
type Tournament struct {
	Meta
	Name                 string  `json:"name"`
	Type                 string  `json:"type"`
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	Status               string  `json:"status"`
	Participants         int     `json:"participants"`
	PrizePool            string  `json:"prizePool,omitempty"`
	Format               string  `json:"format"`
	Rules                string  `json:"rules,omitempty"`
	RegistrationDeadline string  `json:"registrationDeadline,omitempty"`
	EntryFee             float64 `json:"entryFee,omitempty"`
	ContactPerson        string  `json:"contactPerson,omitempty"`
}

// ApplyDefaults fills the optional fields a new tournament was created without.
func (t *Tournament) ApplyDefaults(time.Time) {
	t.Status = orDefault(t.Status, TournamentUpcoming)
}
