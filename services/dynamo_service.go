package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrItemNotFound is returned by GetItem when no item matches the key.
var ErrItemNotFound = errors.New("item not found")

// ErrConditionFailed is returned when a conditional put/update loses to an
// existing item (duplicate badge, duplicate pending request, duplicate
// pin-tag). Callers treat it as "already done", not as a failure.
var ErrConditionFailed = errors.New("conditional check failed")

// DynamoAPI is the storage surface the services program against. Implemented
// by DynamoService in production and by an in-memory fake in tests.
type DynamoAPI interface {
	PutItem(ctx context.Context, tableName string, item interface{}) error
	PutItemWithCondition(ctx context.Context, tableName string, item interface{}, conditionExpression string, expressionAttributeNames map[string]string, expressionAttributeValues map[string]types.AttributeValue) error
	GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	QueryItems(ctx context.Context, tableName string, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error)
	QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error)
	QueryItemsWithFilters(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, filterExpression string) ([]map[string]types.AttributeValue, error)
	UpdateItemWithCondition(ctx context.Context, tableName string, key map[string]types.AttributeValue, updateExpression, conditionExpression string, expressionAttributeNames map[string]string, expressionAttributeValues map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error
	ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, excludeFields map[string]string, result interface{}) error
	BatchWriteItems(ctx context.Context, tableName string, writeRequests []types.WriteRequest) error
	TransactWriteItems(ctx context.Context, items []types.TransactWriteItem) error
}

type DynamoService struct {
	Client *dynamodb.Client
}

var _ DynamoAPI = (*DynamoService)(nil)

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient() *dynamodb.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// PutItem writes an item unconditionally.
func (ds *DynamoService) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaledItem, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &tableName,
		Item:      marshaledItem,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// PutItemWithCondition writes an item only if the condition expression holds.
// A lost condition surfaces as ErrConditionFailed.
func (ds *DynamoService) PutItemWithCondition(
	ctx context.Context,
	tableName string,
	item interface{},
	conditionExpression string,
	expressionAttributeNames map[string]string,
	expressionAttributeValues map[string]types.AttributeValue,
) error {
	marshaledItem, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           &tableName,
		Item:                marshaledItem,
		ConditionExpression: &conditionExpression,
	}
	if len(expressionAttributeNames) > 0 {
		input.ExpressionAttributeNames = expressionAttributeNames
	}
	if len(expressionAttributeValues) > 0 {
		input.ExpressionAttributeValues = expressionAttributeValues
	}

	_, err = ds.Client.PutItem(ctx, input)
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrConditionFailed
		}
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// GetItem retrieves an item from DynamoDB
func (ds *DynamoService) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &tableName,
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}

	if output.Item == nil {
		return nil, ErrItemNotFound
	}

	return output.Item, nil
}

// QueryItems queries items from DynamoDB using a KeyConditionExpression
func (ds *DynamoService) QueryItems(
	ctx context.Context,
	tableName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	limit int32,
) ([]map[string]types.AttributeValue, error) {
	output, err := ds.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 &tableName,
		KeyConditionExpression:    &keyConditionExpression,
		ExpressionAttributeValues: expressionAttributeValues,
		ExpressionAttributeNames:  expressionAttributeNames,
		Limit:                     &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query items from table '%s': %w", tableName, err)
	}

	return output.Items, nil
}

// QueryItemsWithIndex queries items from DynamoDB using a Global Secondary Index (GSI)
func (ds *DynamoService) QueryItemsWithIndex(
	ctx context.Context,
	tableName string,
	indexName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	limit int32,
) ([]map[string]types.AttributeValue, error) {
	output, err := ds.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 &tableName,
		IndexName:                 &indexName,
		KeyConditionExpression:    &keyConditionExpression,
		ExpressionAttributeValues: expressionAttributeValues,
		ExpressionAttributeNames:  expressionAttributeNames,
		Limit:                     &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query GSI '%s': %w", indexName, err)
	}
	return output.Items, nil
}

// QueryItemsWithFilters queries a GSI with an additional FilterExpression
// applied server-side (e.g. status = pending on incoming friend requests).
func (ds *DynamoService) QueryItemsWithFilters(
	ctx context.Context,
	tableName string,
	indexName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	filterExpression string,
) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(tableName),
		KeyConditionExpression:    aws.String(keyConditionExpression),
		ExpressionAttributeValues: expressionAttributeValues,
	}
	if indexName != "" {
		input.IndexName = aws.String(indexName)
	}
	if len(expressionAttributeNames) > 0 {
		input.ExpressionAttributeNames = expressionAttributeNames
	}
	if filterExpression != "" {
		input.FilterExpression = aws.String(filterExpression)
	}

	result, err := ds.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}

	return result.Items, nil
}

// UpdateItemWithCondition applies an update expression guarded by a condition
// expression. A lost condition surfaces as ErrConditionFailed.
func (ds *DynamoService) UpdateItemWithCondition(
	ctx context.Context,
	tableName string,
	key map[string]types.AttributeValue,
	updateExpression string,
	conditionExpression string,
	expressionAttributeNames map[string]string,
	expressionAttributeValues map[string]types.AttributeValue,
) (map[string]types.AttributeValue, error) {
	if len(key) == 0 {
		return nil, errors.New("update failed: key cannot be empty")
	}
	if updateExpression == "" {
		return nil, errors.New("update failed: updateExpression cannot be empty")
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 &tableName,
		Key:                       key,
		UpdateExpression:          &updateExpression,
		ExpressionAttributeValues: expressionAttributeValues,
		ExpressionAttributeNames:  expressionAttributeNames,
		ReturnValues:              types.ReturnValueAllNew,
	}
	if conditionExpression != "" {
		input.ConditionExpression = &conditionExpression
	}

	output, err := ds.Client.UpdateItem(ctx, input)
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, ErrConditionFailed
		}
		return nil, fmt.Errorf("failed to update item in table '%s': %w", tableName, err)
	}

	if output.Attributes == nil {
		return map[string]types.AttributeValue{}, nil
	}
	return output.Attributes, nil
}

// DeleteItem removes an item from DynamoDB
func (ds *DynamoService) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	_, err := ds.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &tableName,
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete item from table '%s': %w", tableName, err)
	}
	return nil
}

// ScanWithFilter scans a table, excluding items whose fields match
// excludeFields, applying filterFunc to the remainder, and unmarshalling the
// survivors into result (a pointer to a slice of structs).
func (ds *DynamoService) ScanWithFilter(
	ctx context.Context,
	tableName string,
	filterFunc func(map[string]types.AttributeValue) bool,
	excludeFields map[string]string,
	result interface{},
) error {
	var filterExpressions []string
	expressionAttributeNames := map[string]string{}
	expressionAttributeValues := map[string]types.AttributeValue{}

	for key, value := range excludeFields {
		expressionAttributeNames["#"+key] = key
		expressionAttributeValues[":"+key] = &types.AttributeValueMemberS{Value: value}
		filterExpressions = append(filterExpressions, fmt.Sprintf("#%s <> :%s", key, key))
	}

	scanInput := &dynamodb.ScanInput{
		TableName: &tableName,
	}
	if len(filterExpressions) > 0 {
		filterExpression := stringJoin(filterExpressions, " AND ")
		scanInput.FilterExpression = &filterExpression
		scanInput.ExpressionAttributeNames = expressionAttributeNames
		scanInput.ExpressionAttributeValues = expressionAttributeValues
	}

	output, err := ds.Client.Scan(ctx, scanInput)
	if err != nil {
		return fmt.Errorf("failed to scan table '%s': %w", tableName, err)
	}

	var filteredItems []map[string]types.AttributeValue
	for _, item := range output.Items {
		if filterFunc == nil || filterFunc(item) {
			filteredItems = append(filteredItems, item)
		}
	}

	if err := attributevalue.UnmarshalListOfMaps(filteredItems, result); err != nil {
		return fmt.Errorf("failed to unmarshal scan result: %w", err)
	}

	return nil
}

// Utility function to join strings
func stringJoin(parts []string, delimiter string) string {
	result := ""
	for i, part := range parts {
		if i > 0 {
			result += delimiter
		}
		result += part
	}
	return result
}

// BatchWriteItems writes multiple items to DynamoDB in batches
func (ds *DynamoService) BatchWriteItems(
	ctx context.Context,
	tableName string,
	writeRequests []types.WriteRequest,
) error {
	const maxBatchSize = 25

	for i := 0; i < len(writeRequests); i += maxBatchSize {
		end := i + maxBatchSize
		if end > len(writeRequests) {
			end = len(writeRequests)
		}

		batchInput := &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				tableName: writeRequests[i:end],
			},
		}

		_, err := ds.Client.BatchWriteItem(ctx, batchInput)
		if err != nil {
			return fmt.Errorf("failed to batch write items to table '%s': %w", tableName, err)
		}
	}

	return nil
}

// TransactWriteItems commits up to 100 writes atomically. A cancellation
// caused by a lost condition surfaces as ErrConditionFailed so callers can
// re-read and decide.
func (ds *DynamoService) TransactWriteItems(ctx context.Context, items []types.TransactWriteItem) error {
	if len(items) == 0 {
		return nil
	}

	_, err := ds.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return ErrConditionFailed
				}
			}
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
