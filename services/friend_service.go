package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"waymark_server/models"
	"waymark_server/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type FriendService struct {
	Dynamo DynamoAPI
}

// SendRequestResult mirrors the two benign outcomes of a send: a fresh
// pending request, or a short-circuit because one is already live.
type SendRequestResult struct {
	Success     bool `json:"success,omitempty"`
	AlreadySent bool `json:"alreadySent,omitempty"`
}

// Friend is one entry of a user's friend list.
type Friend struct {
	UserID   string `json:"userId"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name"`
}

// DisplayName derives the name shown for a user: username if present, else
// "firstName lastName" trimmed, else "Unknown".
func DisplayName(user models.User) string {
	if user.Username != "" {
		return user.Username
	}
	full := strings.TrimSpace(strings.TrimSpace(user.FirstName) + " " + strings.TrimSpace(user.LastName))
	if full != "" {
		return full
	}
	return "Unknown"
}

// SearchUsers matches a case-insensitive substring against username, first
// name, and last name, excluding the caller. A blank search returns nothing;
// there is no browse-all fallback.
func (s *FriendService) SearchUsers(ctx context.Context, search, currentUserID string) ([]models.UserSummary, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return []models.UserSummary{}, nil
	}
	needle := strings.ToLower(search)

	var users []models.User
	err := s.Dynamo.ScanWithFilter(ctx, models.UsersTable, nil, map[string]string{"userId": currentUserID}, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	results := []models.UserSummary{}
	for _, user := range users {
		if !strings.Contains(strings.ToLower(user.Username), needle) &&
			!strings.Contains(strings.ToLower(user.FirstName), needle) &&
			!strings.Contains(strings.ToLower(user.LastName), needle) {
			continue
		}
		results = append(results, models.UserSummary{
			UserID:    user.UserID,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
	}
	return results, nil
}

// SendFriendRequest creates a pending request from sender to receiver.
// Self-requests are rejected before any write. The insert is conditional:
// it only succeeds if no request exists for the ordered pair or the previous
// one was rejected, so a duplicate pending request cannot be created even
// under concurrent double-submission.
func (s *FriendService) SendFriendRequest(ctx context.Context, senderID, receiverID string) (SendRequestResult, error) {
	if senderID == receiverID {
		return SendRequestResult{}, ErrSelfRequest
	}
	if senderID == "" || receiverID == "" {
		return SendRequestResult{}, validationErrorf("senderId and receiverId are required")
	}

	request := models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		RequestID:  uuid.New().String(),
		Status:     models.RequestStatusPending,
		CreatedAt:  time.Now().UnixMilli(),
	}

	condition := "attribute_not_exists(receiverId) OR #st = :rejected"
	names := map[string]string{"#st": "status"}
	values := map[string]types.AttributeValue{
		":rejected": &types.AttributeValueMemberS{Value: models.RequestStatusRejected},
	}

	err := s.Dynamo.PutItemWithCondition(ctx, models.FriendRequestsTable, request, condition, names, values)
	if errors.Is(err, ErrConditionFailed) {
		return SendRequestResult{AlreadySent: true}, nil
	}
	if err != nil {
		return SendRequestResult{}, fmt.Errorf("failed to send friend request: %w", err)
	}

	log.Printf("✅ Friend request sent: %s -> %s", senderID, receiverID)
	return SendRequestResult{Success: true}, nil
}

// GetIncomingRequests returns the pending requests addressed to a user, each
// joined with the sender's display name. The pending filter runs at the
// storage layer, not after the fetch.
func (s *FriendService) GetIncomingRequests(ctx context.Context, userID string) ([]models.IncomingRequest, error) {
	keyCondition := "receiverId = :receiver"
	values := map[string]types.AttributeValue{
		":receiver": &types.AttributeValueMemberS{Value: userID},
		":pending":  &types.AttributeValueMemberS{Value: models.RequestStatusPending},
	}
	names := map[string]string{"#st": "status"}

	items, err := s.Dynamo.QueryItemsWithFilters(ctx, models.FriendRequestsTable, models.ReceiverIDIndex, keyCondition, values, names, "#st = :pending")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch incoming requests: %w", err)
	}

	var requests []models.FriendRequest
	if err := attributevalue.UnmarshalListOfMaps(items, &requests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incoming requests: %w", err)
	}

	incoming := []models.IncomingRequest{}
	for _, request := range requests {
		senderName := "Unknown"
		sender, err := s.getUser(ctx, request.SenderID)
		if err == nil {
			senderName = DisplayName(sender)
		}
		incoming = append(incoming, models.IncomingRequest{
			RequestID:  request.RequestID,
			SenderID:   request.SenderID,
			SenderName: senderName,
		})
	}
	return incoming, nil
}

// RespondToRequest transitions a pending request to accepted or rejected.
// Both outcomes are terminal: responding to a non-pending request returns
// ErrRequestNotPending and changes nothing. Accepting also writes both
// directions of the friendship, in the same transaction as the status flip.
func (s *FriendService) RespondToRequest(ctx context.Context, requestID, action string) (models.FriendRequest, error) {
	if action != models.RequestStatusAccepted && action != models.RequestStatusRejected {
		return models.FriendRequest{}, validationErrorf(fmt.Sprintf("invalid action: %q", action))
	}

	request, err := s.getRequestByID(ctx, requestID)
	if err != nil {
		return models.FriendRequest{}, err
	}
	if request.Status != models.RequestStatusPending {
		return models.FriendRequest{}, ErrRequestNotPending
	}

	key := map[string]types.AttributeValue{
		"senderId":   &types.AttributeValueMemberS{Value: request.SenderID},
		"receiverId": &types.AttributeValueMemberS{Value: request.ReceiverID},
	}
	names := map[string]string{"#st": "status"}
	values := map[string]types.AttributeValue{
		":action":  &types.AttributeValueMemberS{Value: action},
		":pending": &types.AttributeValueMemberS{Value: models.RequestStatusPending},
	}

	request.Status = action

	if action == models.RequestStatusRejected {
		_, err = s.Dynamo.UpdateItemWithCondition(ctx, models.FriendRequestsTable, key, "SET #st = :action", "#st = :pending", names, values)
		if errors.Is(err, ErrConditionFailed) {
			return models.FriendRequest{}, ErrRequestNotPending
		}
		if err != nil {
			return models.FriendRequest{}, fmt.Errorf("failed to reject friend request: %w", err)
		}
		log.Printf("✅ Friend request rejected: %s -> %s", request.SenderID, request.ReceiverID)
		return request, nil
	}

	// Accept: flip the status and write both friendship directions atomically.
	now := time.Now().UnixMilli()
	forward, err := attributevalue.MarshalMap(models.Friendship{UserID: request.SenderID, FriendID: request.ReceiverID, CreatedAt: now})
	if err != nil {
		return models.FriendRequest{}, fmt.Errorf("failed to marshal friendship: %w", err)
	}
	backward, err := attributevalue.MarshalMap(models.Friendship{UserID: request.ReceiverID, FriendID: request.SenderID, CreatedAt: now})
	if err != nil {
		return models.FriendRequest{}, fmt.Errorf("failed to marshal friendship: %w", err)
	}

	writes := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName:                 aws.String(models.FriendRequestsTable),
				Key:                       key,
				UpdateExpression:          aws.String("SET #st = :action"),
				ConditionExpression:       aws.String("#st = :pending"),
				ExpressionAttributeNames:  names,
				ExpressionAttributeValues: values,
			},
		},
		{Put: &types.Put{TableName: aws.String(models.FriendshipsTable), Item: forward}},
		{Put: &types.Put{TableName: aws.String(models.FriendshipsTable), Item: backward}},
	}

	err = s.Dynamo.TransactWriteItems(ctx, writes)
	if errors.Is(err, ErrConditionFailed) {
		return models.FriendRequest{}, ErrRequestNotPending
	}
	if err != nil {
		return models.FriendRequest{}, fmt.Errorf("failed to accept friend request: %w", err)
	}

	log.Printf("🎉 Friends: %s and %s", request.SenderID, request.ReceiverID)
	return request, nil
}

// ListFriends returns a user's friends from the denormalized friendships
// table, resolved to display names. One partition query, no table scan.
func (s *FriendService) ListFriends(ctx context.Context, userID string) ([]Friend, error) {
	keyCondition := "userId = :user"
	values := map[string]types.AttributeValue{
		":user": &types.AttributeValueMemberS{Value: userID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.FriendshipsTable, keyCondition, values, nil, queryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch friendships: %w", err)
	}

	var friendships []models.Friendship
	if err := attributevalue.UnmarshalListOfMaps(items, &friendships); err != nil {
		return nil, fmt.Errorf("failed to unmarshal friendships: %w", err)
	}

	friends := []Friend{}
	for _, friendship := range friendships {
		friend := Friend{UserID: friendship.FriendID, Name: "Unknown"}
		if user, err := s.getUser(ctx, friendship.FriendID); err == nil {
			friend.Username = user.Username
			friend.Name = DisplayName(user)
		}
		friends = append(friends, friend)
	}
	return friends, nil
}

func (s *FriendService) getUser(ctx context.Context, userID string) (models.User, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		UserID:    utils.ExtractString(item, "userId"),
		Username:  utils.ExtractString(item, "username"),
		FirstName: utils.ExtractString(item, "firstName"),
		LastName:  utils.ExtractString(item, "lastName"),
	}, nil
}

func (s *FriendService) getRequestByID(ctx context.Context, requestID string) (models.FriendRequest, error) {
	var request models.FriendRequest

	keyCondition := "requestId = :request"
	values := map[string]types.AttributeValue{
		":request": &types.AttributeValueMemberS{Value: requestID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.FriendRequestsTable, models.RequestIDIndex, keyCondition, values, nil, 1)
	if err != nil {
		return request, fmt.Errorf("failed to look up friend request: %w", err)
	}
	if len(items) == 0 {
		return request, ErrRequestNotFound
	}
	if err := attributevalue.UnmarshalMap(items[0], &request); err != nil {
		return request, fmt.Errorf("failed to unmarshal friend request: %w", err)
	}
	return request, nil
}
