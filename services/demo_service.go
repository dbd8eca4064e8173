package services

import (
	"context"
	"fmt"
	"math/rand"

	"waymark_server/models"
)

// DemoService seeds random activity so achievements can be exercised quickly.
type DemoService struct {
	Pins         *PinService
	Achievements *AchievementService
}

// SeedSummary is the outcome of one demo seeding run.
type SeedSummary struct {
	PinsAdded   int      `json:"pinsAdded"`
	SharesAdded int      `json:"sharesAdded"`
	NewlyEarned []string `json:"newlyEarned"`
}

var demoCategories = []string{
	models.PinCategoryGeneral,
	models.PinCategoryBeach,
	models.PinCategoryLandmark,
}

// SeedActivity creates pins with random categories near a base coordinate
// and a round-robin set of shares, then evaluates achievements for the owner.
func (s *DemoService) SeedActivity(ctx context.Context, ownerID string, pinsToAdd, sharesToAdd int) (SeedSummary, error) {
	if pinsToAdd <= 0 {
		pinsToAdd = 12
	}
	if sharesToAdd <= 0 {
		sharesToAdd = 3
	}

	for i := 0; i < pinsToAdd; i++ {
		category := demoCategories[rand.Intn(len(demoCategories))]
		_, err := s.Pins.CreatePin(ctx, ownerID,
			fmt.Sprintf("Demo Pin #%d", i+1),
			fmt.Sprintf("Seeded pin for testing achievements (%s).", category),
			33.7701+rand.Float64()*0.02,
			-118.1937+rand.Float64()*0.02,
			category,
		)
		if err != nil {
			return SeedSummary{}, err
		}
	}

	for i := 0; i < sharesToAdd; i++ {
		recipient := fmt.Sprintf("friend_%d", (i%6)+1)
		if _, err := s.Pins.SharePin(ctx, ownerID, recipient, fmt.Sprintf("demo-pin-%d", i+1)); err != nil {
			return SeedSummary{}, err
		}
	}

	newlyEarned, err := s.Achievements.EvaluateAndAward(ctx, ownerID)
	if err != nil {
		return SeedSummary{}, err
	}

	return SeedSummary{
		PinsAdded:   pinsToAdd,
		SharesAdded: sharesToAdd,
		NewlyEarned: newlyEarned,
	}, nil
}
