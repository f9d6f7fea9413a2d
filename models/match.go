// File: models/match.go
package models

import "time"

// ----------------------- match -----------------------

// Match statuses.
const (
	MatchUpcoming  = "upcoming"
	MatchLive      = "live"
	MatchCompleted = "completed"
	MatchPostponed = "postponed"
	MatchCancelled = "cancelled"
)

// Formations holds both line-ups of a match.
type Formations struct {
	Our      string `json:"our"`
	Opponent string `json:"opponent"`
}

// MatchStatistics are the team totals of a played match.
type MatchStatistics struct {
	Possession    int `json:"possession"`
	Shots         int `json:"shots"`
	ShotsOnTarget int `json:"shotsOnTarget"`
	Corners       int `json:"corners"`
	Fouls         int `json:"fouls"`
	YellowCards   int `json:"yellowCards"`
	RedCards      int `json:"redCards"`
}

// Match is a fixture against another club.
type Match struct {
	Meta
	Opponent      string             `json:"opponent"`
	OpponentLogo  string             `json:"opponentLogo,omitempty"`
	Date          string             `json:"date"`
	Time          string             `json:"time,omitempty"`
	Result        string             `json:"result,omitempty"`
	Score         string             `json:"score,omitempty"`
	Competition   string             `json:"competition"`
	Status        string             `json:"status"`
	Venue         string             `json:"venue,omitempty"`
	Importance    string             `json:"importance,omitempty"`
	LiveStream    string             `json:"liveStream,omitempty"`
	TicketInfo    string             `json:"ticketInfo,omitempty"`
	Weather       string             `json:"weather,omitempty"`
	Attendance    int                `json:"attendance,omitempty"`
	Highlights    string             `json:"highlights,omitempty"`
	MatchReport   string             `json:"matchReport,omitempty"`
	PlayerRatings map[string]float64 `json:"playerRatings,omitempty"`
	Formations    *Formations        `json:"formations,omitempty"`
	Statistics    *MatchStatistics   `json:"statistics,omitempty"`
}

// ApplyDefaults fills the optional fields a new match was created without.
func (m *Match) ApplyDefaults(time.Time) {
	m.Status = orDefault(m.Status, MatchUpcoming)
	m.Importance = orDefault(m.Importance, "friendly")
}
