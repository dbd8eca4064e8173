package services

import (
	"context"
	"fmt"
	"strings"

	"waymark_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI used by the service tests. It
// interprets only the expression shapes the services actually issue:
// "a = :x [AND b = :y]" key conditions, "SET #a = :v" updates, and
// "attribute_not_exists(k) [OR #a = :v]" / "#a = :v" conditions.
type fakeDynamo struct {
	tables map[string][]map[string]types.AttributeValue
}

// Primary key schema per table: partition key, optional sort key.
var fakeKeySchemas = map[string][2]string{
	models.PinsTable:           {"pinId", ""},
	models.PinSharesTable:      {"shareId", ""},
	models.TagsTable:           {"tagId", ""},
	models.PinTagsTable:        {"pinId", "tagId"},
	models.UsersTable:          {"userId", ""},
	models.FriendRequestsTable: {"senderId", "receiverId"},
	models.FriendshipsTable:    {"userId", "friendId"},
	models.UserBadgesTable:     {"ownerId", "badgeKey"},
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string][]map[string]types.AttributeValue{}}
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func attrString(item map[string]types.AttributeValue, field string) string {
	switch v := item[field].(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	default:
		return ""
	}
}

func (f *fakeDynamo) keyOf(tableName string, item map[string]types.AttributeValue) string {
	schema, ok := fakeKeySchemas[tableName]
	if !ok {
		panic(fmt.Sprintf("fakeDynamo: unknown table %q", tableName))
	}
	return attrString(item, schema[0]) + "|" + attrString(item, schema[1])
}

func (f *fakeDynamo) findIndex(tableName string, key map[string]types.AttributeValue) int {
	want := f.keyOf(tableName, key)
	for i, item := range f.tables[tableName] {
		if f.keyOf(tableName, item) == want {
			return i
		}
	}
	return -1
}

// resolveName maps "#x" placeholders through the names map.
func resolveName(field string, names map[string]string) string {
	if strings.HasPrefix(field, "#") {
		if resolved, ok := names[field]; ok {
			return resolved
		}
	}
	return field
}

type equalityClause struct {
	field string
	value types.AttributeValue
}

// parseEqualities parses "a = :x AND b = :y" into clauses.
func parseEqualities(expression string, names map[string]string, values map[string]types.AttributeValue) []equalityClause {
	var clauses []equalityClause
	for _, part := range strings.Split(expression, " AND ") {
		fields := strings.Split(part, " = ")
		if len(fields) != 2 {
			panic(fmt.Sprintf("fakeDynamo: unsupported expression %q", expression))
		}
		clauses = append(clauses, equalityClause{
			field: resolveName(strings.TrimSpace(fields[0]), names),
			value: values[strings.TrimSpace(fields[1])],
		})
	}
	return clauses
}

func attrEqual(a, b types.AttributeValue) bool {
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value
	}
	return false
}

func matches(item map[string]types.AttributeValue, clauses []equalityClause) bool {
	for _, clause := range clauses {
		if !attrEqual(item[clause.field], clause.value) {
			return false
		}
	}
	return true
}

// evalCondition checks a condition expression against the existing item with
// the same key (nil if absent). OR-joined clauses; each clause is either
// attribute_not_exists(...) or an equality.
func evalCondition(condition string, existing map[string]types.AttributeValue, names map[string]string, values map[string]types.AttributeValue) bool {
	if condition == "" {
		return true
	}
	for _, clause := range strings.Split(condition, " OR ") {
		clause = strings.TrimSpace(clause)
		if strings.HasPrefix(clause, "attribute_not_exists(") {
			if existing == nil {
				return true
			}
			continue
		}
		if existing == nil {
			continue
		}
		if matches(existing, parseEqualities(clause, names, values)) {
			return true
		}
	}
	return false
}

func (f *fakeDynamo) putMarshaled(tableName string, item map[string]types.AttributeValue) {
	if i := f.findIndex(tableName, item); i >= 0 {
		f.tables[tableName][i] = item
		return
	}
	f.tables[tableName] = append(f.tables[tableName], item)
}

func (f *fakeDynamo) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	f.putMarshaled(tableName, marshaled)
	return nil
}

func (f *fakeDynamo) PutItemWithCondition(ctx context.Context, tableName string, item interface{}, conditionExpression string, names map[string]string, values map[string]types.AttributeValue) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	var existing map[string]types.AttributeValue
	if i := f.findIndex(tableName, marshaled); i >= 0 {
		existing = f.tables[tableName][i]
	}
	if !evalCondition(conditionExpression, existing, names, values) {
		return ErrConditionFailed
	}
	f.putMarshaled(tableName, marshaled)
	return nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	if i := f.findIndex(tableName, key); i >= 0 {
		return f.tables[tableName][i], nil
	}
	return nil, ErrItemNotFound
}

func (f *fakeDynamo) query(tableName, keyCondition string, values map[string]types.AttributeValue, names map[string]string) []map[string]types.AttributeValue {
	clauses := parseEqualities(keyCondition, names, values)
	var result []map[string]types.AttributeValue
	for _, item := range f.tables[tableName] {
		if matches(item, clauses) {
			result = append(result, item)
		}
	}
	return result
}

func (f *fakeDynamo) QueryItems(ctx context.Context, tableName, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	return f.query(tableName, keyCondition, values, names), nil
}

func (f *fakeDynamo) QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyCondition string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	return f.query(tableName, keyCondition, values, names), nil
}

func (f *fakeDynamo) QueryItemsWithFilters(ctx context.Context, tableName, indexName, keyCondition string, values map[string]types.AttributeValue, names map[string]string, filterExpression string) ([]map[string]types.AttributeValue, error) {
	items := f.query(tableName, keyCondition, values, names)
	if filterExpression == "" {
		return items, nil
	}
	clauses := parseEqualities(filterExpression, names, values)
	var result []map[string]types.AttributeValue
	for _, item := range items {
		if matches(item, clauses) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *fakeDynamo) applyUpdate(item map[string]types.AttributeValue, updateExpression string, names map[string]string, values map[string]types.AttributeValue) {
	expression := strings.TrimPrefix(updateExpression, "SET ")
	for _, assignment := range strings.Split(expression, ", ") {
		fields := strings.Split(assignment, " = ")
		if len(fields) != 2 {
			panic(fmt.Sprintf("fakeDynamo: unsupported update %q", updateExpression))
		}
		item[resolveName(strings.TrimSpace(fields[0]), names)] = values[strings.TrimSpace(fields[1])]
	}
}

func (f *fakeDynamo) UpdateItemWithCondition(ctx context.Context, tableName string, key map[string]types.AttributeValue, updateExpression, conditionExpression string, names map[string]string, values map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	i := f.findIndex(tableName, key)
	var existing map[string]types.AttributeValue
	if i >= 0 {
		existing = f.tables[tableName][i]
	}
	if !evalCondition(conditionExpression, existing, names, values) {
		return nil, ErrConditionFailed
	}
	if existing == nil {
		return nil, ErrItemNotFound
	}
	f.applyUpdate(existing, updateExpression, names, values)
	return existing, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	if i := f.findIndex(tableName, key); i >= 0 {
		f.tables[tableName] = append(f.tables[tableName][:i], f.tables[tableName][i+1:]...)
	}
	return nil
}

func (f *fakeDynamo) ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, excludeFields map[string]string, result interface{}) error {
	var filtered []map[string]types.AttributeValue
	for _, item := range f.tables[tableName] {
		excluded := false
		for field, value := range excludeFields {
			if attrString(item, field) == value {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}
	return attributevalue.UnmarshalListOfMaps(filtered, result)
}

func (f *fakeDynamo) BatchWriteItems(ctx context.Context, tableName string, writeRequests []types.WriteRequest) error {
	for _, request := range writeRequests {
		if request.DeleteRequest != nil {
			if err := f.DeleteItem(ctx, tableName, request.DeleteRequest.Key); err != nil {
				return err
			}
		}
		if request.PutRequest != nil {
			f.putMarshaled(tableName, request.PutRequest.Item)
		}
	}
	return nil
}

func (f *fakeDynamo) TransactWriteItems(ctx context.Context, items []types.TransactWriteItem) error {
	// All-or-nothing: validate every condition before applying anything.
	for _, item := range items {
		if put := item.Put; put != nil {
			condition := ""
			if put.ConditionExpression != nil {
				condition = *put.ConditionExpression
			}
			var existing map[string]types.AttributeValue
			if i := f.findIndex(*put.TableName, put.Item); i >= 0 {
				existing = f.tables[*put.TableName][i]
			}
			if !evalCondition(condition, existing, put.ExpressionAttributeNames, put.ExpressionAttributeValues) {
				return ErrConditionFailed
			}
		}
		if update := item.Update; update != nil {
			condition := ""
			if update.ConditionExpression != nil {
				condition = *update.ConditionExpression
			}
			var existing map[string]types.AttributeValue
			if i := f.findIndex(*update.TableName, update.Key); i >= 0 {
				existing = f.tables[*update.TableName][i]
			}
			if !evalCondition(condition, existing, update.ExpressionAttributeNames, update.ExpressionAttributeValues) {
				return ErrConditionFailed
			}
		}
	}

	for _, item := range items {
		if put := item.Put; put != nil {
			f.putMarshaled(*put.TableName, put.Item)
		}
		if update := item.Update; update != nil {
			i := f.findIndex(*update.TableName, update.Key)
			if i < 0 {
				return ErrItemNotFound
			}
			f.applyUpdate(f.tables[*update.TableName][i], *update.UpdateExpression, update.ExpressionAttributeNames, update.ExpressionAttributeValues)
		}
	}
	return nil
}

func (f *fakeDynamo) count(tableName string) int {
	return len(f.tables[tableName])
}
