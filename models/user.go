package models

// User is the identity record. Email and username are trimmed and lowercased
// before storage; userId is the one canonical identity field everywhere else.
type User struct {
	UserID          string `dynamodbav:"userId" json:"userId"`
	Email           string `dynamodbav:"email" json:"email"`       // GSI partition key
	Username        string `dynamodbav:"username" json:"username"` // GSI partition key
	FirstName       string `dynamodbav:"firstName,omitempty" json:"firstName,omitempty"`
	LastName        string `dynamodbav:"lastName,omitempty" json:"lastName,omitempty"`
	Age             int    `dynamodbav:"age,omitempty" json:"age,omitempty"`
	Ethnicity       string `dynamodbav:"ethnicity,omitempty" json:"ethnicity,omitempty"`
	ProfileComplete bool   `dynamodbav:"profileComplete" json:"profileComplete"`
	CreatedAt       int64  `dynamodbav:"createdAt" json:"createdAt"`
}

// UserSummary is the subset of User returned by friend search and friend
// lists. Nothing beyond what a result row needs to render.
type UserSummary struct {
	UserID    string `json:"userId"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

const UsersTable = "Users"

const (
	EmailIndex    = "email-index"
	UsernameIndex = "username-index"
)
