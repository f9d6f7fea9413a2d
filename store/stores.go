// File: store/stores.go
package store

import "go-clan-admin/models"

// Stores bundles one store per collection plus the settings singleton.
type Stores struct {
	Members      Store[models.Member]
	News         Store[models.NewsArticle]
	Requests     Store[models.JoinRequest]
	Matches      Store[models.Match]
	Achievements Store[models.Achievement]
	Tournaments  Store[models.Tournament]
	Training     Store[models.TrainingSession]
	Settings     SettingsStore
}

// NewMemoryStores returns empty in-process collections and default settings.
func NewMemoryStores() *Stores {
	return &Stores{
		Members:      NewMemoryStore[models.Member](),
		News:         NewMemoryStore[models.NewsArticle](),
		Requests:     NewMemoryStore[models.JoinRequest](),
		Matches:      NewMemoryStore[models.Match](),
		Achievements: NewMemoryStore[models.Achievement](),
		Tournaments:  NewMemoryStore[models.Tournament](),
		Training:     NewMemoryStore[models.TrainingSession](),
		Settings:     NewMemorySettings(models.DefaultSettings()),
	}
}

// NewSQLStores binds every collection to its table in db.
func NewSQLStores(db *DB) *Stores {
	return &Stores{
		Members:      NewSQLStore[models.Member](db, MembersTable),
		News:         NewSQLStore[models.NewsArticle](db, NewsTable),
		Requests:     NewSQLStore[models.JoinRequest](db, RequestsTable),
		Matches:      NewSQLStore[models.Match](db, MatchesTable),
		Achievements: NewSQLStore[models.Achievement](db, AchievementsTable),
		Tournaments:  NewSQLStore[models.Tournament](db, TournamentsTable),
		Training:     NewSQLStore[models.TrainingSession](db, TrainingTable),
		Settings:     NewSQLSettings(db),
	}
}
