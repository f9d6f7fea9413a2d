// File: models/join_request.go
package models

import "time"

// ----------------------- join request -----------------------

// Join request statuses.
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// JoinRequest is an application submitted through the public join form.
type JoinRequest struct {
	Meta
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Age           int      `json:"age,omitempty"`
	Position      string   `json:"position"`
	Experience    string   `json:"experience"`
	Gamertag      string   `json:"gamertag,omitempty"`
	Platform      string   `json:"platform,omitempty"`
	Message       string   `json:"message"`
	Status        string   `json:"status"`
	Date          string   `json:"date"`
	SkillLevel    string   `json:"skillLevel,omitempty"`
	Timezone      string   `json:"timezone,omitempty"`
	Languages     []string `json:"languages,omitempty"`
	AvailableDays []string `json:"availableDays,omitempty"`
	Nationality   string   `json:"nationality,omitempty"`
	PhoneNumber   string   `json:"phoneNumber,omitempty"`
	PreviousTeams []string `json:"previousTeams,omitempty"`
	PreferredRole string   `json:"preferredRole,omitempty"`
	Motivation    string   `json:"motivation,omitempty"`
	VideoLink     string   `json:"videoLink,omitempty"`
	SocialProof   string   `json:"socialProof,omitempty"`
}

// ApplyDefaults fills the optional fields a new request was created without.
func (r *JoinRequest) ApplyDefaults(now time.Time) {
	r.Status = orDefault(r.Status, RequestPending)
	r.Date = orDefault(r.Date, now.Format(DateLayout))
}

// ToMember builds the roster entry for an accepted request.
func (r *JoinRequest) ToMember() Member {
	return Member{
		Name:        r.Name,
		Position:    r.Position,
		Status:      MemberActive,
		Email:       r.Email,
		Phone:       r.PhoneNumber,
		Nationality: r.Nationality,
		Age:         r.Age,
	}
}
