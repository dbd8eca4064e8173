package models

// AchievementDefinition is a static rule describing how progress toward one
// badge is measured. Definitions live in an in-process catalog, not the
// database; Key is the join key stored in UserBadges.
type AchievementDefinition struct {
	Key             string `json:"key"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	RequirementType string `json:"requirementType"`
	CategoryValue   string `json:"categoryValue,omitempty"` // only for pins_category
	Threshold       int    `json:"threshold"`
}

// ActivityStats is a snapshot of one owner's pin/share activity.
type ActivityStats struct {
	PinsTotal              int            `json:"pinsTotal"`
	SharesTotal            int            `json:"sharesTotal"`
	SharesUniqueRecipients int            `json:"sharesUniqueRecipients"`
	PinsByCategory         map[string]int `json:"pinsByCategory"`
}

// Progress is the live progress toward one achievement.
type Progress struct {
	Current  int     `json:"current"`
	Target   int     `json:"target"`
	Ratio    float64 `json:"ratio"` // clamped to [0, 1]
	Complete bool    `json:"complete"`
}

// AchievementStatus is a catalog entry annotated with an owner's progress.
type AchievementStatus struct {
	AchievementDefinition
	Progress Progress `json:"progress"`
	Earned   bool     `json:"earned"`
}

// AchievementOverview is the full gamification view for one owner.
type AchievementOverview struct {
	Stats        ActivityStats       `json:"stats"`
	EarnedBadges []UserBadge         `json:"earnedBadges"`
	Achievements []AchievementStatus `json:"achievements"`
}
