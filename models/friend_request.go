package models

// FriendRequest is a directed proposal to become friends. The table is keyed
// by (senderId, receiverId) so there is at most one live request per ordered
// pair; requestId is carried for lookup by the respond mutation.
type FriendRequest struct {
	SenderID   string `dynamodbav:"senderId" json:"senderId"`     // partition key
	ReceiverID string `dynamodbav:"receiverId" json:"receiverId"` // sort key
	RequestID  string `dynamodbav:"requestId" json:"requestId"`   // GSI partition key
	Status     string `dynamodbav:"status" json:"status"`         // pending, accepted, rejected
	CreatedAt  int64  `dynamodbav:"createdAt" json:"createdAt"`
}

// IncomingRequest is a pending request joined with the sender's display name.
type IncomingRequest struct {
	RequestID  string `json:"requestId"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
}

const FriendRequestsTable = "FriendRequests"

const (
	RequestIDIndex  = "requestId-index"
	ReceiverIDIndex = "receiverId-index"
)
