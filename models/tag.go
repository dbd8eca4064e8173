package models

// Tag groups pins. Names are unique and lowercase-normalized. Default tags
// are seeded by the system and cannot be deleted.
type Tag struct {
	TagID     string `dynamodbav:"tagId" json:"tagId"`
	Name      string `dynamodbav:"name" json:"name"` // GSI partition key
	Color     string `dynamodbav:"color,omitempty" json:"color,omitempty"`
	Category  string `dynamodbav:"category,omitempty" json:"category,omitempty"` // GSI partition key
	IsDefault bool   `dynamodbav:"isDefault" json:"isDefault"`
	CreatedBy string `dynamodbav:"createdBy,omitempty" json:"createdBy,omitempty"`
}

const TagsTable = "Tags"

const (
	TagNameIndex     = "name-index"
	TagCategoryIndex = "category-index"
)
