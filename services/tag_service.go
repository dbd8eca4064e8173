package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"waymark_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type TagService struct {
	Dynamo DynamoAPI
}

// SeedResult reports what a default-tag seeding run did.
type SeedResult struct {
	Message string `json:"message"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

type defaultTag struct {
	name     string
	category string
	color    string
}

// System-seeded tags. Names are stored lowercase; seeding is idempotent.
var defaultTags = []defaultTag{
	// Celebration category
	{"promotion", "Celebration", "#22c55e"},
	{"engagement", "Celebration", "#f59e0b"},
	{"milestone", "Celebration", "#8b5cf6"},
	{"retirement", "Celebration", "#ef4444"},

	// Events category
	{"festival", "Events", "#f59e0b"},
	{"conference", "Events", "#3b82f6"},
	{"meetup", "Events", "#06b6d4"},
	{"sports event", "Events", "#ef4444"},
	{"convention", "Events", "#8b5cf6"},
	{"rally", "Events", "#f97316"},
	{"parade", "Events", "#eab308"},

	// Food category
	{"seafood", "Food", "#06b6d4"},
	{"vegetarian", "Food", "#22c55e"},
	{"baking", "Food", "#fbbf24"},

	// Lifestyle category
	{"home decor", "Lifestyle", "#f59e0b"},
	{"study", "Lifestyle", "#a16207"},
	{"meditation", "Lifestyle", "#8b5cf6"},
	{"spa", "Lifestyle", "#ec4899"},

	// My Relationships category
	{"partner", "My Relationships", "#ec4899"},
	{"colleague", "My Relationships", "#06b6d4"},
	{"mentor", "My Relationships", "#f59e0b"},
	{"love", "My Relationships", "#ef4444"},
	{"quality time", "Themes", "#8b5cf6"},
	{"family gathering", "My Relationships", "#22c55e"},
	{"friend group", "My Relationships", "#3b82f6"},

	// Themes category
	{"sunset", "Themes", "#f97316"},
	{"adventure", "Themes", "#ef4444"},
	{"nature", "Themes", "#22c55e"},
	{"urban", "Themes", "#6b7280"},
	{"retro", "Themes", "#f59e0b"},
	{"vintage", "Themes", "#a16207"},
	{"modern", "Themes", "#3b82f6"},
	{"seasonal", "Themes", "#eab308"},
	{"nostalgic", "Themes", "#a16207"},
	{"dreamy", "Themes", "#8b5cf6"},
}

// GetAllTags returns every tag, default and user-created.
func (s *TagService) GetAllTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.Dynamo.ScanWithFilter(ctx, models.TagsTable, nil, nil, &tags); err != nil {
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

// GetTagsByCategory returns the tags in one grouping category.
func (s *TagService) GetTagsByCategory(ctx context.Context, category string) ([]models.Tag, error) {
	keyCondition := "category = :category"
	values := map[string]types.AttributeValue{
		":category": &types.AttributeValueMemberS{Value: category},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.TagsTable, models.TagCategoryIndex, keyCondition, values, nil, queryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tags by category: %w", err)
	}

	tags := []models.Tag{}
	if err := attributevalue.UnmarshalListOfMaps(items, &tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}
	return tags, nil
}

// GetAllCategories returns the unique tag categories, sorted.
func (s *TagService) GetAllCategories(ctx context.Context) ([]string, error) {
	tags, err := s.GetAllTags(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	categories := []string{}
	for _, tag := range tags {
		if tag.Category == "" {
			continue
		}
		if _, ok := seen[tag.Category]; ok {
			continue
		}
		seen[tag.Category] = struct{}{}
		categories = append(categories, tag.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// CreateTag creates a user tag, normalizing the name to lowercase. If a tag
// with the same name already exists, its id is returned instead of an error.
func (s *TagService) CreateTag(ctx context.Context, name, color, createdBy string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", validationErrorf("tag name is required")
	}

	if existing, err := s.getTagByName(ctx, name); err == nil {
		return existing.TagID, nil
	} else if !errors.Is(err, ErrTagNotFound) {
		return "", err
	}

	tag := models.Tag{
		TagID:     uuid.New().String(),
		Name:      name,
		Color:     color,
		IsDefault: false,
		CreatedBy: createdBy,
	}
	if err := s.Dynamo.PutItem(ctx, models.TagsTable, tag); err != nil {
		return "", fmt.Errorf("failed to create tag: %w", err)
	}
	return tag.TagID, nil
}

// DeleteTag removes a user-created tag and all of its pin associations.
// Default tags are immutable.
func (s *TagService) DeleteTag(ctx context.Context, tagID string) error {
	tag, err := s.getTag(ctx, tagID)
	if err != nil {
		return err
	}
	if tag.IsDefault {
		return ErrDefaultTag
	}

	// Cascade the pinTag associations first.
	keyCondition := "tagId = :tag"
	values := map[string]types.AttributeValue{
		":tag": &types.AttributeValueMemberS{Value: tagID},
	}
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.PinTagsTable, models.TagIDIndex, keyCondition, values, nil, queryLimit)
	if err != nil {
		return fmt.Errorf("failed to fetch pin tags for cascade: %w", err)
	}

	var pinTags []models.PinTag
	if err := attributevalue.UnmarshalListOfMaps(items, &pinTags); err != nil {
		return fmt.Errorf("failed to unmarshal pin tags: %w", err)
	}

	if len(pinTags) > 0 {
		writes := make([]types.WriteRequest, 0, len(pinTags))
		for _, pt := range pinTags {
			writes = append(writes, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"pinId": &types.AttributeValueMemberS{Value: pt.PinID},
						"tagId": &types.AttributeValueMemberS{Value: pt.TagID},
					},
				},
			})
		}
		if err := s.Dynamo.BatchWriteItems(ctx, models.PinTagsTable, writes); err != nil {
			return fmt.Errorf("failed to delete pin tag associations: %w", err)
		}
	}

	key := map[string]types.AttributeValue{
		"tagId": &types.AttributeValueMemberS{Value: tagID},
	}
	if err := s.Dynamo.DeleteItem(ctx, models.TagsTable, key); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	log.Printf("🗑️ Tag deleted: %s (%s), %d association(s) removed", tag.Name, tagID, len(pinTags))
	return nil
}

// AddTagToPin links a tag to a pin, denormalizing the pin title and tag
// name/color into the join row. The conditional put keeps the (pinId, tagId)
// pair unique even under concurrent adds.
func (s *TagService) AddTagToPin(ctx context.Context, pinID, tagID string) error {
	pinItem, err := s.Dynamo.GetItem(ctx, models.PinsTable, map[string]types.AttributeValue{
		"pinId": &types.AttributeValueMemberS{Value: pinID},
	})
	if errors.Is(err, ErrItemNotFound) {
		return ErrPinNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to fetch pin: %w", err)
	}
	var pin models.Pin
	if err := attributevalue.UnmarshalMap(pinItem, &pin); err != nil {
		return fmt.Errorf("failed to unmarshal pin: %w", err)
	}

	tag, err := s.getTag(ctx, tagID)
	if err != nil {
		return err
	}

	pinTag := models.PinTag{
		PinID:    pinID,
		TagID:    tagID,
		PinTitle: pin.Title,
		TagName:  tag.Name,
		TagColor: tag.Color,
	}

	err = s.Dynamo.PutItemWithCondition(ctx, models.PinTagsTable, pinTag, "attribute_not_exists(tagId)", nil, nil)
	if errors.Is(err, ErrConditionFailed) {
		return ErrTagAlreadyOnPin
	}
	if err != nil {
		return fmt.Errorf("failed to add tag to pin: %w", err)
	}
	return nil
}

// RemoveTagFromPin unlinks a tag from a pin.
func (s *TagService) RemoveTagFromPin(ctx context.Context, pinID, tagID string) error {
	key := map[string]types.AttributeValue{
		"pinId": &types.AttributeValueMemberS{Value: pinID},
		"tagId": &types.AttributeValueMemberS{Value: tagID},
	}

	if _, err := s.Dynamo.GetItem(ctx, models.PinTagsTable, key); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return ErrTagNotOnPin
		}
		return fmt.Errorf("failed to fetch pin tag: %w", err)
	}

	if err := s.Dynamo.DeleteItem(ctx, models.PinTagsTable, key); err != nil {
		return fmt.Errorf("failed to remove tag from pin: %w", err)
	}
	return nil
}

// GetPinTagsForPin returns a pin's tag associations with denormalized details.
func (s *TagService) GetPinTagsForPin(ctx context.Context, pinID string) ([]models.PinTag, error) {
	keyCondition := "pinId = :pin"
	values := map[string]types.AttributeValue{
		":pin": &types.AttributeValueMemberS{Value: pinID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.PinTagsTable, keyCondition, values, nil, queryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pin tags: %w", err)
	}

	pinTags := []models.PinTag{}
	if err := attributevalue.UnmarshalListOfMaps(items, &pinTags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pin tags: %w", err)
	}
	return pinTags, nil
}

// GetPinTagsForOwner returns the tag associations across all of a user's pins.
func (s *TagService) GetPinTagsForOwner(ctx context.Context, ownerID string) ([]models.PinTag, error) {
	keyCondition := "ownerId = :owner"
	values := map[string]types.AttributeValue{
		":owner": &types.AttributeValueMemberS{Value: ownerID},
	}
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.PinsTable, models.OwnerIDIndex, keyCondition, values, nil, queryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pins: %w", err)
	}

	var pins []models.Pin
	if err := attributevalue.UnmarshalListOfMaps(items, &pins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pins: %w", err)
	}

	result := []models.PinTag{}
	for _, pin := range pins {
		pinTags, err := s.GetPinTagsForPin(ctx, pin.PinID)
		if err != nil {
			return nil, err
		}
		result = append(result, pinTags...)
	}
	return result, nil
}

// SeedDefaultTags inserts the default tag catalog, skipping names that
// already exist. Safe to run repeatedly.
func (s *TagService) SeedDefaultTags(ctx context.Context) (SeedResult, error) {
	created, skipped := 0, 0

	for _, dt := range defaultTags {
		name := strings.ToLower(dt.name)

		_, err := s.getTagByName(ctx, name)
		if err == nil {
			skipped++
			continue
		}
		if !errors.Is(err, ErrTagNotFound) {
			return SeedResult{}, err
		}

		tag := models.Tag{
			TagID:     uuid.New().String(),
			Name:      name,
			Category:  dt.category,
			Color:     dt.color,
			IsDefault: true,
		}
		if err := s.Dynamo.PutItem(ctx, models.TagsTable, tag); err != nil {
			return SeedResult{}, fmt.Errorf("failed to seed tag '%s': %w", name, err)
		}
		created++
	}

	return SeedResult{
		Message: fmt.Sprintf("Seeding complete: %d tags created, %d skipped (already exist)", created, skipped),
		Created: created,
		Skipped: skipped,
	}, nil
}

func (s *TagService) getTag(ctx context.Context, tagID string) (models.Tag, error) {
	var tag models.Tag
	key := map[string]types.AttributeValue{
		"tagId": &types.AttributeValueMemberS{Value: tagID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.TagsTable, key)
	if errors.Is(err, ErrItemNotFound) {
		return tag, ErrTagNotFound
	}
	if err != nil {
		return tag, fmt.Errorf("failed to fetch tag: %w", err)
	}
	if err := attributevalue.UnmarshalMap(item, &tag); err != nil {
		return tag, fmt.Errorf("failed to unmarshal tag: %w", err)
	}
	return tag, nil
}

func (s *TagService) getTagByName(ctx context.Context, name string) (models.Tag, error) {
	var tag models.Tag

	keyCondition := "#n = :name"
	names := map[string]string{"#n": "name"}
	values := map[string]types.AttributeValue{
		":name": &types.AttributeValueMemberS{Value: name},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.TagsTable, models.TagNameIndex, keyCondition, values, names, 1)
	if err != nil {
		return tag, fmt.Errorf("failed to look up tag by name: %w", err)
	}
	if len(items) == 0 {
		return tag, ErrTagNotFound
	}
	if err := attributevalue.UnmarshalMap(items[0], &tag); err != nil {
		return tag, fmt.Errorf("failed to unmarshal tag: %w", err)
	}
	return tag, nil
}
