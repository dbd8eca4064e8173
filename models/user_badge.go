package models

// UserBadge records that a user satisfied an achievement. The (ownerId,
// badgeKey) composite key makes awarding idempotent at the storage level.
// Badge keys are permanent external identifiers: never rename a shipped key.
type UserBadge struct {
	OwnerID  string `dynamodbav:"ownerId" json:"ownerId"`   // partition key
	BadgeKey string `dynamodbav:"badgeKey" json:"badgeKey"` // sort key
	EarnedAt int64  `dynamodbav:"earnedAt" json:"earnedAt"` // epoch millis
}

const UserBadgesTable = "UserBadges"
