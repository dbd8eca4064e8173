package models

// Pin is a user-created geotagged record of a place/memory.
type Pin struct {
	PinID       string  `dynamodbav:"pinId" json:"pinId"`
	OwnerID     string  `dynamodbav:"ownerId" json:"ownerId"` // GSI partition key
	Title       string  `dynamodbav:"title" json:"title"`
	Description string  `dynamodbav:"description" json:"description"`
	Lat         float64 `dynamodbav:"lat" json:"lat"`
	Lng         float64 `dynamodbav:"lng" json:"lng"`
	Category    string  `dynamodbav:"category" json:"category"`
	CreatedAt   int64   `dynamodbav:"createdAt" json:"createdAt"` // epoch millis
}

const PinsTable = "Pins"

const OwnerIDIndex = "ownerId-index"
