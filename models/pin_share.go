package models

// PinShare is one directed share event. Append-only; never mutated.
type PinShare struct {
	ShareID     string `dynamodbav:"shareId" json:"shareId"`
	PinID       string `dynamodbav:"pinId" json:"pinId"`
	FromOwnerID string `dynamodbav:"fromOwnerId" json:"fromOwnerId"` // GSI partition key
	ToOwnerID   string `dynamodbav:"toOwnerId" json:"toOwnerId"`
	CreatedAt   int64  `dynamodbav:"createdAt" json:"createdAt"`
}

const PinSharesTable = "PinShares"

const FromOwnerIDIndex = "fromOwnerId-index"
