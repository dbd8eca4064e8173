package models

// Friendship is one direction of an accepted friend pair. Both directions are
// written transactionally when a request is accepted, so listing a user's
// friends is a single partition query instead of a table scan.
type Friendship struct {
	UserID    string `dynamodbav:"userId" json:"userId"`     // partition key
	FriendID  string `dynamodbav:"friendId" json:"friendId"` // sort key
	CreatedAt int64  `dynamodbav:"createdAt" json:"createdAt"`
}

const FriendshipsTable = "Friendships"
