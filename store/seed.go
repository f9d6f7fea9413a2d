// File: store/seed.go
package store

import (
	"context"
	"fmt"

	"go-clan-admin/logger"
	"go-clan-admin/models"
)

func sampleMembers() []models.Member {
	return []models.Member{
		{
			Name:         "CAPTAIN WHITEBEARD",
			Position:     "Captain",
			Email:        "captain@barbablanca.com",
			Bio:          "Legendary captain with exceptional leadership skills",
			Nationality:  "Spain",
			Age:          28,
			Stats:        models.MemberStats{Goals: 45, Assists: 32, Matches: 120, Rating: 9.2, YellowCards: 8, Playtime: 10800},
			Achievements: []string{"Champion 2023", "Best Captain Award"},
		},
		{
			Name:         "RED DEMON",
			Position:     "Striker",
			Email:        "striker@barbablanca.com",
			Bio:          "Fierce striker known for powerful shots",
			Nationality:  "Brazil",
			Age:          25,
			Stats:        models.MemberStats{Goals: 67, Assists: 18, Matches: 98, Rating: 8.9, YellowCards: 12, RedCards: 1, Playtime: 8820},
			Achievements: []string{"Top Scorer 2023"},
		},
	}
}

func sampleNews() []models.NewsArticle {
	return []models.NewsArticle{
		{
			Title:       "Championship Final Victory",
			Description: "Barba Blanca FC dominates the championship final with a spectacular victory",
			Excerpt:     "Historic victory in the championship final",
			Content:     "We dominated the championship final with a spectacular 3-1 victory against our rivals.",
			Category:    "Tournament",
			Status:      models.NewsPublished,
			Views:       2500,
			Tags:        []string{"championship", "victory", "tournament"},
			Featured:    true,
			Priority:    "high",
		},
		{
			Title:       "New Player Recruitment Open",
			Description: "We are looking for skilled warriors to join our ranks",
			Content:     "Applications are now open for dedicated players who want to dominate the field with us.",
			Category:    "Recruitment",
			Status:      models.NewsPublished,
			Views:       1200,
			Tags:        []string{"recruitment", "players"},
			Priority:    "medium",
		},
	}
}

// SeedSampleData adds a starter roster and news feed to empty collections.
func SeedSampleData(ctx context.Context, s *Stores) error {
	if err := seedIfEmpty(ctx, s.Members, sampleMembers()); err != nil {
		return fmt.Errorf("seed members: %w", err)
	}
	if err := seedIfEmpty(ctx, s.News, sampleNews()); err != nil {
		return fmt.Errorf("seed news: %w", err)
	}
	return nil
}

func seedIfEmpty[T any](ctx context.Context, st Store[T], records []T) error {
	existing, err := st.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, rec := range records {
		if _, err := st.Create(ctx, rec); err != nil {
			return err
		}
	}
	logger.Info.Printf("Seeded %d sample records", len(records))
	return nil
}
