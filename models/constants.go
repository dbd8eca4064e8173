package models

// Friend request statuses
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// Achievement requirement types
const (
	RequirementPinsTotal              = "pins_total"
	RequirementSharesTotal            = "shares_total"
	RequirementSharesUniqueRecipients = "shares_unique_recipients"
	RequirementPinsCategory           = "pins_category"
)

// Pin categories used by seeded/demo data
const (
	PinCategoryGeneral  = "general"
	PinCategoryBeach    = "beach"
	PinCategoryLandmark = "landmark"
)
