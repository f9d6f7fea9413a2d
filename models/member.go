// File: models/member.go
package models

import "time"

// ----------------------- roster member -----------------------

// Member statuses.
const (
	MemberActive    = "active"
	MemberInactive  = "inactive"
	MemberInjured   = "injured"
	MemberSuspended = "suspended"
)

// MemberStats are the per-player counters shown on the roster.
type MemberStats struct {
	Goals       int     `json:"goals"`
	Assists     int     `json:"assists"`
	Matches     int     `json:"matches"`
	Rating      float64 `json:"rating"`
	YellowCards int     `json:"yellowCards"`
	RedCards    int     `json:"redCards"`
	Playtime    int     `json:"playtime"`
}

// Member is a player on the clan roster.
type Member struct {
	Meta
	Name              string            `json:"name"`
	Position          string            `json:"position"`
	Status            string            `json:"status"`
	JoinDate          string            `json:"joinDate"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Avatar            string            `json:"avatar,omitempty"`
	Bio               string            `json:"bio,omitempty"`
	Nationality       string            `json:"nationality,omitempty"`
	Age               int               `json:"age,omitempty"`
	Stats             MemberStats       `json:"stats"`
	SocialLinks       map[string]string `json:"socialLinks,omitempty"`
	Achievements      []string          `json:"achievements,omitempty"`
	PreferredPosition string            `json:"preferredPosition,omitempty"`
	ContractEndDate   string            `json:"contractEndDate,omitempty"`
	Salary            float64           `json:"salary,omitempty"`
}

// ApplyDefaults fills the optional fields a new member was created without.
func (m *Member) ApplyDefaults(now time.Time) {
	m.Position = orDefault(m.Position, "Player")
	m.Status = orDefault(m.Status, MemberActive)
	m.JoinDate = orDefault(m.JoinDate, now.Format(DateLayout))
	m.PreferredPosition = orDefault(m.PreferredPosition, m.Position)
}
