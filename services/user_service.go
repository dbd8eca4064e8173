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

type UserService struct {
	Dynamo DynamoAPI
}

// CreateUser registers a new identity record. Email and username are trimmed
// and lowercased; both must be unique.
func (s *UserService) CreateUser(ctx context.Context, email, username, firstName, lastName string) (models.User, error) {
	var user models.User

	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.ToLower(strings.TrimSpace(username))
	if email == "" {
		return user, validationErrorf("email is required")
	}
	if username == "" {
		return user, validationErrorf("username is required")
	}
	if strings.Contains(username, "@") {
		return user, validationErrorf("username cannot include '@'")
	}

	if _, err := s.findByIndex(ctx, models.EmailIndex, "email", email); err == nil {
		return user, ErrEmailInUse
	} else if !errors.Is(err, ErrUserNotFound) {
		return user, err
	}
	if _, err := s.findByIndex(ctx, models.UsernameIndex, "username", username); err == nil {
		return user, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return user, err
	}

	user = models.User{
		UserID:          uuid.New().String(),
		Email:           email,
		Username:        username,
		FirstName:       firstName,
		LastName:        lastName,
		ProfileComplete: false,
		CreatedAt:       time.Now().UnixMilli(),
	}

	if err := s.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("✅ User created: %s (%s)", username, user.UserID)
	return user, nil
}

// GetUser fetches one identity record.
func (s *UserService) GetUser(ctx context.Context, userID string) (models.User, error) {
	var user models.User

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.UsersTable, key)
	if errors.Is(err, ErrItemNotFound) {
		return user, ErrUserNotFound
	}
	if err != nil {
		return user, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return user, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return user, nil
}

// ProfileUpdate carries the optional profile fields of an update call.
type ProfileUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Ethnicity string `json:"ethnicity"`
}

// UpdateProfile fills in profile fields and marks the profile complete.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return user, err
	}

	if update.FirstName != "" {
		user.FirstName = strings.TrimSpace(update.FirstName)
	}
	if update.LastName != "" {
		user.LastName = strings.TrimSpace(update.LastName)
	}
	if update.Age != 0 {
		if update.Age < 0 || update.Age > 150 {
			return models.User{}, validationErrorf("age out of range")
		}
		user.Age = update.Age
	}
	if update.Ethnicity != "" {
		user.Ethnicity = update.Ethnicity
	}
	user.ProfileComplete = true

	if err := s.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return models.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes an identity record.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	if err := s.Dynamo.DeleteItem(ctx, models.UsersTable, key); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) findByIndex(ctx context.Context, index, field, value string) (models.User, error) {
	var user models.User

	keyCondition := fmt.Sprintf("%s = :value", field)
	values := map[string]types.AttributeValue{
		":value": &types.AttributeValueMemberS{Value: value},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.UsersTable, index, keyCondition, values, nil, 1)
	if err != nil {
		return user, fmt.Errorf("failed to query %s: %w", index, err)
	}
	if len(items) == 0 {
		return user, ErrUserNotFound
	}
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return user, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return user, nil
}
