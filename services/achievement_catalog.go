package services

import "waymark_server/models"

// Achievements is the rules table. It is loaded once and never mutated.
// Keys must remain stable once shipped: they are stored in UserBadges.badgeKey.
var Achievements = []models.AchievementDefinition{
	// Pin count ladder
	{
		Key:             "pins_1",
		Name:            "First Drop",
		Description:     "Create your first pin.",
		Category:        "Pinning",
		RequirementType: models.RequirementPinsTotal,
		Threshold:       1,
	},
	{
		Key:             "pins_5",
		Name:            "Trail Starter",
		Description:     "Drop 5 pins.",
		Category:        "Pinning",
		RequirementType: models.RequirementPinsTotal,
		Threshold:       5,
	},
	{
		Key:             "pins_25",
		Name:            "Local Legend",
		Description:     "Drop 25 pins.",
		Category:        "Pinning",
		RequirementType: models.RequirementPinsTotal,
		Threshold:       25,
	},
	{
		Key:             "pins_100",
		Name:            "Cartographer",
		Description:     "Drop 100 pins.",
		Category:        "Pinning",
		RequirementType: models.RequirementPinsTotal,
		Threshold:       100,
	},

	// Sharing ladder
	{
		Key:             "shares_1",
		Name:            "Pass It On",
		Description:     "Share a pin with a friend.",
		Category:        "Sharing",
		RequirementType: models.RequirementSharesTotal,
		Threshold:       1,
	},
	{
		Key:             "shares_10",
		Name:            "Social Scout",
		Description:     "Share 10 pins.",
		Category:        "Sharing",
		RequirementType: models.RequirementSharesTotal,
		Threshold:       10,
	},
	{
		Key:             "shares_unique_5",
		Name:            "Connector",
		Description:     "Share pins with 5 different friends.",
		Category:        "Sharing",
		RequirementType: models.RequirementSharesUniqueRecipients,
		Threshold:       5,
	},

	// Category-based ladders
	{
		Key:             "beach_3",
		Name:            "Beach Day",
		Description:     "Drop 3 beach pins.",
		Category:        "Explorer",
		RequirementType: models.RequirementPinsCategory,
		CategoryValue:   models.PinCategoryBeach,
		Threshold:       3,
	},
	{
		Key:             "beach_15",
		Name:            "Coastline Collector",
		Description:     "Drop 15 beach pins.",
		Category:        "Explorer",
		RequirementType: models.RequirementPinsCategory,
		CategoryValue:   models.PinCategoryBeach,
		Threshold:       15,
	},
	{
		Key:             "landmark_5",
		Name:            "Postcard Hunter",
		Description:     "Drop 5 landmark pins.",
		Category:        "Explorer",
		RequirementType: models.RequirementPinsCategory,
		CategoryValue:   models.PinCategoryLandmark,
		Threshold:       5,
	},
	{
		Key:             "landmark_25",
		Name:            "Landmark Legend",
		Description:     "Drop 25 landmark pins.",
		Category:        "Explorer",
		RequirementType: models.RequirementPinsCategory,
		CategoryValue:   models.PinCategoryLandmark,
		Threshold:       25,
	},
}
