package models

// PinTag links a Pin to a Tag. The (pinId, tagId) composite key keeps the
// pair unique; pinTitle/tagName/tagColor are denormalized for read paths.
type PinTag struct {
	PinID    string `dynamodbav:"pinId" json:"pinId"`  // partition key
	TagID    string `dynamodbav:"tagId" json:"tagId"`  // sort key, also GSI partition key
	PinTitle string `dynamodbav:"pinTitle" json:"pinTitle"`
	TagName  string `dynamodbav:"tagName" json:"tagName"`
	TagColor string `dynamodbav:"tagColor,omitempty" json:"tagColor,omitempty"`
}

const PinTagsTable = "PinTags"

const TagIDIndex = "tagId-index"
