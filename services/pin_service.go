package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"waymark_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// MaxCaptionLength bounds pin descriptions/captions.
const MaxCaptionLength = 500

type PinService struct {
	Dynamo DynamoAPI
}

// CreatePin validates and stores a new pin, returning its id.
func (s *PinService) CreatePin(ctx context.Context, ownerID, title, description string, lat, lng float64, category string) (string, error) {
	if ownerID == "" {
		return "", validationErrorf("ownerId is required")
	}
	if strings.TrimSpace(title) == "" {
		return "", validationErrorf("title is required")
	}
	if len(description) > MaxCaptionLength {
		return "", validationErrorf(fmt.Sprintf("caption exceeds %d characters", MaxCaptionLength))
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return "", validationErrorf("coordinates out of range")
	}
	if category == "" {
		category = models.PinCategoryGeneral
	}

	pin := models.Pin{
		PinID:       uuid.New().String(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Lat:         lat,
		Lng:         lng,
		Category:    category,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := s.Dynamo.PutItem(ctx, models.PinsTable, pin); err != nil {
		return "", fmt.Errorf("failed to create pin: %w", err)
	}

	log.Printf("📍 Pin created: %s (%s) by %s", pin.PinID, pin.Category, ownerID)
	return pin.PinID, nil
}

// GetPinsByOwner returns all pins owned by a user.
func (s *PinService) GetPinsByOwner(ctx context.Context, ownerID string) ([]models.Pin, error) {
	keyCondition := "ownerId = :owner"
	values := map[string]types.AttributeValue{
		":owner": &types.AttributeValueMemberS{Value: ownerID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.PinsTable, models.OwnerIDIndex, keyCondition, values, nil, queryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pins: %w", err)
	}

	pins := []models.Pin{}
	if err := attributevalue.UnmarshalListOfMaps(items, &pins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pins: %w", err)
	}
	return pins, nil
}

// GetPinByID fetches a single pin.
func (s *PinService) GetPinByID(ctx context.Context, pinID string) (models.Pin, error) {
	var pin models.Pin

	key := map[string]types.AttributeValue{
		"pinId": &types.AttributeValueMemberS{Value: pinID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.PinsTable, key)
	if errors.Is(err, ErrItemNotFound) {
		return pin, ErrPinNotFound
	}
	if err != nil {
		return pin, fmt.Errorf("failed to fetch pin: %w", err)
	}

	if err := attributevalue.UnmarshalMap(item, &pin); err != nil {
		return pin, fmt.Errorf("failed to unmarshal pin: %w", err)
	}
	return pin, nil
}

// UpdateCaption edits a pin's description. Only the owner may edit, and the
// same caption bounds as creation apply.
func (s *PinService) UpdateCaption(ctx context.Context, ownerID, pinID, description string) error {
	if strings.TrimSpace(description) == "" {
		return validationErrorf("caption cannot be empty")
	}
	if len(description) > MaxCaptionLength {
		return validationErrorf(fmt.Sprintf("caption exceeds %d characters", MaxCaptionLength))
	}

	pin, err := s.GetPinByID(ctx, pinID)
	if err != nil {
		return err
	}
	if pin.OwnerID != ownerID {
		return ErrNotAuthorized
	}

	key := map[string]types.AttributeValue{
		"pinId": &types.AttributeValueMemberS{Value: pinID},
	}
	names := map[string]string{"#d": "description"}
	values := map[string]types.AttributeValue{
		":description": &types.AttributeValueMemberS{Value: description},
	}

	_, err = s.Dynamo.UpdateItemWithCondition(ctx, models.PinsTable, key, "SET #d = :description", "", names, values)
	if err != nil {
		return fmt.Errorf("failed to update caption: %w", err)
	}
	return nil
}

// DeletePin removes a pin after an ownership check.
func (s *PinService) DeletePin(ctx context.Context, ownerID, pinID string) error {
	pin, err := s.GetPinByID(ctx, pinID)
	if err != nil {
		return err
	}
	if pin.OwnerID != ownerID {
		return ErrNotAuthorized
	}

	key := map[string]types.AttributeValue{
		"pinId": &types.AttributeValueMemberS{Value: pinID},
	}
	if err := s.Dynamo.DeleteItem(ctx, models.PinsTable, key); err != nil {
		return fmt.Errorf("failed to delete pin: %w", err)
	}

	log.Printf("🗑️ Pin deleted: %s by %s", pinID, ownerID)
	return nil
}

// SharePin records one directed share event. Shares are append-only and feed
// the sharing achievement counters.
func (s *PinService) SharePin(ctx context.Context, fromOwnerID, toOwnerID, pinID string) (string, error) {
	if fromOwnerID == "" || toOwnerID == "" || pinID == "" {
		return "", validationErrorf("fromOwnerId, toOwnerId and pinId are required")
	}
	if fromOwnerID == toOwnerID {
		return "", validationErrorf("cannot share a pin with yourself")
	}

	share := models.PinShare{
		ShareID:     uuid.New().String(),
		PinID:       pinID,
		FromOwnerID: fromOwnerID,
		ToOwnerID:   toOwnerID,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := s.Dynamo.PutItem(ctx, models.PinSharesTable, share); err != nil {
		return "", fmt.Errorf("failed to share pin: %w", err)
	}

	log.Printf("📤 Pin %s shared: %s -> %s", pinID, fromOwnerID, toOwnerID)
	return share.ShareID, nil
}
