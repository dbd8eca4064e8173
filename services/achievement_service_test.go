package services

import (
	"context"
	"testing"

	"waymark_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAchievementFixture() (*AchievementService, *PinService, *fakeDynamo) {
	fake := newFakeDynamo()
	return &AchievementService{Dynamo: fake}, &PinService{Dynamo: fake}, fake
}

func createPins(t *testing.T, pins *PinService, ownerID, category string, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		_, err := pins.CreatePin(context.Background(), ownerID, "Pin", "", 33.77, -118.19, category)
		require.NoError(t, err)
	}
}

func TestComputeProgress(t *testing.T) {
	stats := models.ActivityStats{
		PinsTotal:              7,
		SharesTotal:            2,
		SharesUniqueRecipients: 1,
		PinsByCategory:         map[string]int{"beach": 4},
	}

	tests := []struct {
		name         string
		achievement  models.AchievementDefinition
		wantCurrent  int
		wantRatio    float64
		wantComplete bool
	}{
		{
			name:         "pins total above threshold",
			achievement:  models.AchievementDefinition{RequirementType: models.RequirementPinsTotal, Threshold: 5},
			wantCurrent:  7,
			wantRatio:    1,
			wantComplete: true,
		},
		{
			name:         "pins total below threshold",
			achievement:  models.AchievementDefinition{RequirementType: models.RequirementPinsTotal, Threshold: 25},
			wantCurrent:  7,
			wantRatio:    7.0 / 25.0,
			wantComplete: false,
		},
		{
			name:         "shares total",
			achievement:  models.AchievementDefinition{RequirementType: models.RequirementSharesTotal, Threshold: 10},
			wantCurrent:  2,
			wantRatio:    0.2,
			wantComplete: false,
		},
		{
			name:         "unique recipients",
			achievement:  models.AchievementDefinition{RequirementType: models.RequirementSharesUniqueRecipients, Threshold: 5},
			wantCurrent:  1,
			wantRatio:    0.2,
			wantComplete: false,
		},
		{
			name:         "category hit",
			achievement:  models.AchievementDefinition{RequirementType: models.RequirementPinsCategory, CategoryValue: "beach", Threshold: 3},
			wantCurrent:  4,
			wantRatio:    1,
			wantComplete: true,
		},
		{
			name:         "category miss defaults to zero",
			achievement:  models.AchievementDefinition{RequirementType: models.RequirementPinsCategory, CategoryValue: "landmark", Threshold: 5},
			wantCurrent:  0,
			wantRatio:    0,
			wantComplete: false,
		},
		{
			name:         "unknown requirement type defaults to zero",
			achievement:  models.AchievementDefinition{RequirementType: "pins_weekly", Threshold: 5},
			wantCurrent:  0,
			wantRatio:    0,
			wantComplete: false,
		},
		{
			name:         "zero threshold is always complete",
			achievement:  models.AchievementDefinition{RequirementType: models.RequirementPinsTotal, Threshold: 0},
			wantCurrent:  7,
			wantRatio:    1,
			wantComplete: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := ComputeProgress(stats, tt.achievement)
			assert.Equal(t, tt.wantCurrent, progress.Current)
			assert.Equal(t, tt.achievement.Threshold, progress.Target)
			assert.InDelta(t, tt.wantRatio, progress.Ratio, 1e-9)
			assert.Equal(t, tt.wantComplete, progress.Complete)
			assert.GreaterOrEqual(t, progress.Ratio, 0.0)
			assert.LessOrEqual(t, progress.Ratio, 1.0)
		})
	}
}

func TestCatalogIsWellFormed(t *testing.T) {
	known := map[string]bool{
		models.RequirementPinsTotal:              true,
		models.RequirementSharesTotal:            true,
		models.RequirementSharesUniqueRecipients: true,
		models.RequirementPinsCategory:           true,
	}

	keys := map[string]bool{}
	for _, a := range Achievements {
		assert.NotEmpty(t, a.Key)
		assert.False(t, keys[a.Key], "duplicate key %q", a.Key)
		keys[a.Key] = true

		assert.True(t, known[a.RequirementType], "unknown requirement type %q on %q", a.RequirementType, a.Key)
		assert.Greater(t, a.Threshold, 0, "threshold must be positive on %q", a.Key)

		if a.RequirementType == models.RequirementPinsCategory {
			assert.NotEmpty(t, a.CategoryValue, "categoryValue required on %q", a.Key)
		} else {
			assert.Empty(t, a.CategoryValue, "categoryValue must be empty on %q", a.Key)
		}
	}
}

func TestGetStatsAggregation(t *testing.T) {
	ctx := context.Background()
	achievements, pins, _ := newAchievementFixture()

	createPins(t, pins, "alice", models.PinCategoryBeach, 3)
	createPins(t, pins, "alice", models.PinCategoryGeneral, 2)
	createPins(t, pins, "bob", models.PinCategoryBeach, 4)

	// Three shares, two unique recipients; bob's shares must not count.
	for _, to := range []string{"bob", "bob", "carol"} {
		_, err := pins.SharePin(ctx, "alice", to, "pin-1")
		require.NoError(t, err)
	}
	_, err := pins.SharePin(ctx, "bob", "alice", "pin-2")
	require.NoError(t, err)

	stats, err := achievements.GetStats(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, 5, stats.PinsTotal)
	assert.Equal(t, 3, stats.SharesTotal)
	assert.Equal(t, 2, stats.SharesUniqueRecipients)
	assert.Equal(t, map[string]int{"beach": 3, "general": 2}, stats.PinsByCategory)
}

func TestGetOverviewWithNoActivity(t *testing.T) {
	achievements, _, _ := newAchievementFixture()

	overview, err := achievements.GetOverview(context.Background(), "nobody")
	require.NoError(t, err)

	assert.Equal(t, 0, overview.Stats.PinsTotal)
	assert.Empty(t, overview.EarnedBadges)
	require.Len(t, overview.Achievements, len(Achievements))
	for _, status := range overview.Achievements {
		assert.Equal(t, 0, status.Progress.Current)
		assert.False(t, status.Progress.Complete)
		assert.False(t, status.Earned)
	}
}

func TestEvaluateAndAwardLadder(t *testing.T) {
	ctx := context.Background()
	achievements, pins, _ := newAchievementFixture()

	createPins(t, pins, "alice", models.PinCategoryGeneral, 1)

	newlyEarned, err := achievements.EvaluateAndAward(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"pins_1"}, newlyEarned)

	// Four more pins: pins_5 unlocks, pins_1 is not re-awarded.
	createPins(t, pins, "alice", models.PinCategoryGeneral, 4)

	newlyEarned, err = achievements.EvaluateAndAward(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"pins_5"}, newlyEarned)
}

func TestEvaluateAndAwardIsIdempotent(t *testing.T) {
	ctx := context.Background()
	achievements, pins, fake := newAchievementFixture()

	createPins(t, pins, "alice", models.PinCategoryBeach, 3)

	first, err := achievements.EvaluateAndAward(ctx, "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"pins_1", "beach_3"}, first)

	second, err := achievements.EvaluateAndAward(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Equal(t, 2, fake.count(models.UserBadgesTable))
}

func TestEvaluateAndAwardCatalogOrder(t *testing.T) {
	ctx := context.Background()
	achievements, pins, _ := newAchievementFixture()

	createPins(t, pins, "alice", models.PinCategoryBeach, 5)
	for _, to := range []string{"bob", "carol"} {
		_, err := pins.SharePin(ctx, "alice", to, "pin-1")
		require.NoError(t, err)
	}

	newlyEarned, err := achievements.EvaluateAndAward(ctx, "alice")
	require.NoError(t, err)

	// pins_1, pins_5 before shares_1 before beach_3, as defined in the catalog.
	assert.Equal(t, []string{"pins_1", "pins_5", "shares_1", "beach_3"}, newlyEarned)
}

func TestBadgesAreMonotonic(t *testing.T) {
	ctx := context.Background()
	achievements, pins, fake := newAchievementFixture()

	createPins(t, pins, "alice", models.PinCategoryGeneral, 1)
	_, err := achievements.EvaluateAndAward(ctx, "alice")
	require.NoError(t, err)

	// No sequence of further evaluations or overviews revokes a badge.
	for i := 0; i < 3; i++ {
		_, err := achievements.EvaluateAndAward(ctx, "alice")
		require.NoError(t, err)
		overview, err := achievements.GetOverview(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, overview.Achievements[0].Earned)
	}
	assert.Equal(t, 1, fake.count(models.UserBadgesTable))
}

func TestResetBadges(t *testing.T) {
	ctx := context.Background()
	achievements, pins, fake := newAchievementFixture()

	createPins(t, pins, "alice", models.PinCategoryGeneral, 5)
	_, err := achievements.EvaluateAndAward(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 2, fake.count(models.UserBadgesTable))

	removed, err := achievements.ResetBadges(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, fake.count(models.UserBadgesTable))

	// Earned again on the next evaluation: reset clears, activity remains.
	newlyEarned, err := achievements.EvaluateAndAward(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"pins_1", "pins_5"}, newlyEarned)
}
