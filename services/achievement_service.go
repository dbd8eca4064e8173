package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"waymark_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const queryLimit = 1000

type AchievementService struct {
	Dynamo DynamoAPI
}

// ComputeProgress measures stats against one achievement definition. Pure and
// total: an unknown requirement type counts as zero progress rather than
// failing, and the ratio is clamped to [0, 1].
func ComputeProgress(stats models.ActivityStats, achievement models.AchievementDefinition) models.Progress {
	current := 0
	switch achievement.RequirementType {
	case models.RequirementPinsTotal:
		current = stats.PinsTotal
	case models.RequirementSharesTotal:
		current = stats.SharesTotal
	case models.RequirementSharesUniqueRecipients:
		current = stats.SharesUniqueRecipients
	case models.RequirementPinsCategory:
		current = stats.PinsByCategory[achievement.CategoryValue]
	default:
		current = 0
	}

	target := achievement.Threshold
	clamped := current
	if clamped > target {
		clamped = target
	}

	ratio := 1.0
	if target != 0 {
		ratio = float64(clamped) / float64(target)
	}

	return models.Progress{
		Current:  current,
		Target:   target,
		Ratio:    ratio,
		Complete: current >= target,
	}
}

// ListDefinitions returns the full achievement catalog.
func (s *AchievementService) ListDefinitions() []models.AchievementDefinition {
	return Achievements
}

// GetStats aggregates an owner's activity counters from their pins and
// shares. Queries scoped by the owner GSIs, so it always reflects the latest
// committed writes.
func (s *AchievementService) GetStats(ctx context.Context, ownerID string) (models.ActivityStats, error) {
	stats := models.ActivityStats{PinsByCategory: map[string]int{}}

	keyCondition := "ownerId = :owner"
	expressionValues := map[string]types.AttributeValue{
		":owner": &types.AttributeValueMemberS{Value: ownerID},
	}
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.PinsTable, models.OwnerIDIndex, keyCondition, expressionValues, nil, queryLimit)
	if err != nil {
		return stats, fmt.Errorf("failed to fetch pins for stats: %w", err)
	}

	var pins []models.Pin
	if err := attributevalue.UnmarshalListOfMaps(items, &pins); err != nil {
		return stats, fmt.Errorf("failed to unmarshal pins: %w", err)
	}

	keyCondition = "fromOwnerId = :owner"
	items, err = s.Dynamo.QueryItemsWithIndex(ctx, models.PinSharesTable, models.FromOwnerIDIndex, keyCondition, expressionValues, nil, queryLimit)
	if err != nil {
		return stats, fmt.Errorf("failed to fetch shares for stats: %w", err)
	}

	var shares []models.PinShare
	if err := attributevalue.UnmarshalListOfMaps(items, &shares); err != nil {
		return stats, fmt.Errorf("failed to unmarshal shares: %w", err)
	}

	stats.PinsTotal = len(pins)
	stats.SharesTotal = len(shares)

	recipients := map[string]struct{}{}
	for _, share := range shares {
		recipients[share.ToOwnerID] = struct{}{}
	}
	stats.SharesUniqueRecipients = len(recipients)

	for _, pin := range pins {
		stats.PinsByCategory[pin.Category]++
	}

	return stats, nil
}

// GetOverview returns the owner's stats, earned badges, and every catalog
// entry annotated with live progress. Read-only; safe with zero activity.
func (s *AchievementService) GetOverview(ctx context.Context, ownerID string) (models.AchievementOverview, error) {
	var overview models.AchievementOverview

	stats, err := s.GetStats(ctx, ownerID)
	if err != nil {
		return overview, err
	}

	earned, err := s.loadBadges(ctx, ownerID)
	if err != nil {
		return overview, err
	}

	earnedKeys := make(map[string]struct{}, len(earned))
	for _, badge := range earned {
		earnedKeys[badge.BadgeKey] = struct{}{}
	}

	achievements := make([]models.AchievementStatus, 0, len(Achievements))
	for _, a := range Achievements {
		_, has := earnedKeys[a.Key]
		achievements = append(achievements, models.AchievementStatus{
			AchievementDefinition: a,
			Progress:              ComputeProgress(stats, a),
			Earned:                has,
		})
	}

	overview.Stats = stats
	overview.EarnedBadges = earned
	overview.Achievements = achievements
	return overview, nil
}

// EvaluateAndAward awards every achievement the owner has newly completed.
// All new badges for one call commit in a single transaction, each guarded by
// attribute_not_exists(badgeKey), so a badge is awarded at most once per
// owner even under concurrent evaluations. Returns the newly earned keys in
// catalog order; a repeat call with no new activity returns an empty list.
func (s *AchievementService) EvaluateAndAward(ctx context.Context, ownerID string) ([]string, error) {
	for attempt := 0; ; attempt++ {
		stats, err := s.GetStats(ctx, ownerID)
		if err != nil {
			return nil, err
		}

		existing, err := s.loadBadges(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		existingKeys := make(map[string]struct{}, len(existing))
		for _, badge := range existing {
			existingKeys[badge.BadgeKey] = struct{}{}
		}

		now := time.Now().UnixMilli()
		newlyEarned := []string{}
		var writes []types.TransactWriteItem

		for _, a := range Achievements {
			progress := ComputeProgress(stats, a)
			if !progress.Complete {
				continue
			}
			if _, has := existingKeys[a.Key]; has {
				continue
			}

			item, err := attributevalue.MarshalMap(models.UserBadge{
				OwnerID:  ownerID,
				BadgeKey: a.Key,
				EarnedAt: now,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to marshal badge '%s': %w", a.Key, err)
			}

			writes = append(writes, types.TransactWriteItem{
				Put: &types.Put{
					TableName:           aws.String(models.UserBadgesTable),
					Item:                item,
					ConditionExpression: aws.String("attribute_not_exists(badgeKey)"),
				},
			})
			newlyEarned = append(newlyEarned, a.Key)
		}

		if len(writes) == 0 {
			return newlyEarned, nil
		}

		err = s.Dynamo.TransactWriteItems(ctx, writes)
		if err == nil {
			log.Printf("✅ Awarded %d badge(s) to %s: %v", len(newlyEarned), ownerID, newlyEarned)
			return newlyEarned, nil
		}
		if errors.Is(err, ErrConditionFailed) && attempt == 0 {
			// A concurrent evaluation for the same owner beat us to one of
			// the badges. Re-read and settle what is actually still new.
			log.Printf("⚠️ Badge award transaction lost a condition for %s, retrying", ownerID)
			continue
		}
		return nil, fmt.Errorf("failed to award badges: %w", err)
	}
}

// ResetBadges clears all of an owner's badges. Demo/test utility.
func (s *AchievementService) ResetBadges(ctx context.Context, ownerID string) (int, error) {
	badges, err := s.loadBadges(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	if len(badges) == 0 {
		return 0, nil
	}

	writes := make([]types.WriteRequest, 0, len(badges))
	for _, badge := range badges {
		writes = append(writes, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"ownerId":  &types.AttributeValueMemberS{Value: badge.OwnerID},
					"badgeKey": &types.AttributeValueMemberS{Value: badge.BadgeKey},
				},
			},
		})
	}

	if err := s.Dynamo.BatchWriteItems(ctx, models.UserBadgesTable, writes); err != nil {
		return 0, fmt.Errorf("failed to reset badges: %w", err)
	}
	return len(badges), nil
}

func (s *AchievementService) loadBadges(ctx context.Context, ownerID string) ([]models.UserBadge, error) {
	keyCondition := "ownerId = :owner"
	expressionValues := map[string]types.AttributeValue{
		":owner": &types.AttributeValueMemberS{Value: ownerID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.UserBadgesTable, keyCondition, expressionValues, nil, queryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch badges: %w", err)
	}

	badges := []models.UserBadge{}
	if err := attributevalue.UnmarshalListOfMaps(items, &badges); err != nil {
		return nil, fmt.Errorf("failed to unmarshal badges: %w", err)
	}
	return badges, nil
}
