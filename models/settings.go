// File: models/settings.go
package models

import "time"

// ----------------------- site settings -----------------------

// Sponsor is a partner shown on the public site.
type Sponsor struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Logo            string  `json:"logo"`
	Website         string  `json:"website"`
	Type            string  `json:"type"`
	ContractValue   float64 `json:"contractValue,omitempty"`
	ContractEndDate string  `json:"contractEndDate,omitempty"`
}

// Notifications toggles the admin notification channels.
type Notifications struct {
	EmailNotifications bool `json:"emailNotifications"`
	DiscordIntegration bool `json:"discordIntegration"`
	AutoAcceptRequests bool `json:"autoAcceptRequests"`
}

// GameSettings describes what and where the clan plays.
type GameSettings struct {
	PrimaryGame      string   `json:"primaryGame"`
	Platforms        []string `json:"platforms"`
	CompetitionLevel string   `json:"competitionLevel"`
	TrainingSchedule string   `json:"trainingSchedule"`
}

// Settings is the singleton site configuration edited from the dashboard.
type Settings struct {
	TeamName        string            `json:"teamName"`
	TeamLogo        string            `json:"teamLogo,omitempty"`
	PrimaryColor    string            `json:"primaryColor"`
	SecondaryColor  string            `json:"secondaryColor"`
	AccentColor     string            `json:"accentColor,omitempty"`
	Description     string            `json:"description"`
	Founded         string            `json:"founded,omitempty"`
	Headquarters    string            `json:"headquarters,omitempty"`
	Website         string            `json:"website,omitempty"`
	SocialLinks     map[string]string `json:"socialLinks"`
	RecruitmentOpen bool              `json:"recruitmentOpen"`
	MaxTeamSize     int               `json:"maxTeamSize"`
	ContactEmail    string            `json:"contactEmail,omitempty"`
	Motto           string            `json:"motto,omitempty"`
	Achievements    []string          `json:"achievements,omitempty"`
	Sponsors        []Sponsor         `json:"sponsors,omitempty"`
	Theme           string            `json:"theme,omitempty"`
	CustomCSS       string            `json:"customCSS,omitempty"`
	Notifications   *Notifications    `json:"notifications,omitempty"`
	GameSettings    *GameSettings     `json:"gameSettings,omitempty"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// DefaultSettings returns the settings a fresh installation starts with.
func DefaultSettings() Settings {
	return Settings{
		TeamName:       "Barba Blanca FC",
		PrimaryColor:   "#dc2626",
		SecondaryColor: "#000000",
		AccentColor:    "#ffffff",
		Description:    "Elite e-sports football club dedicated to excellence and teamwork",
		Founded:        "2023",
		Headquarters:   "Madrid, Spain",
		Motto:          "Unity, Strength, Victory",
		SocialLinks: map[string]string{
			"discord":   "https://discord.gg/barbablanca",
			"twitter":   "https://twitter.com/barbablancafc",
			"youtube":   "https://youtube.com/@barbablancafc",
			"instagram": "https://instagram.com/barbablancafc",
		},
		RecruitmentOpen: true,
		MaxTeamSize:     25,
		ContactEmail:    "contact@barbablanca.com",
		Theme:           "dark",
		Notifications: &Notifications{
			EmailNotifications: true,
			DiscordIntegration: true,
		},
		GameSettings: &GameSettings{
			PrimaryGame:      "FIFA 24",
			Platforms:        []string{"PlayStation 5", "Xbox Series X", "PC"},
			CompetitionLevel: "Professional",
			TrainingSchedule: "Tuesday & Thursday 18:00 UTC",
		},
	}
}
