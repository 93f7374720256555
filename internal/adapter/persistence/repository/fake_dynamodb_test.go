package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a single-table in-memory DynamoDBAPI keyed by the "id"
// attribute. Query supports one equality key condition; pageSize > 0 splits
// Query and Scan results into pages.
type fakeDynamo struct {
	mu       sync.Mutex
	items    map[string]map[string]types.AttributeValue
	pageSize int
	err      error

	queries int
	scans   int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) put(item map[string]types.AttributeValue) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[keyOf(item)] = item
}

func keyOf(item map[string]types.AttributeValue) string {
	switch v := item["id"].(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	key := keyOf(in.Item)
	if _, exists := f.items[key]; exists && aws.ToString(in.ConditionExpression) == "attribute_not_exists(#id)" {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++
	if f.err != nil {
		return nil, f.err
	}
	if len(in.ExpressionAttributeNames) != 1 || len(in.ExpressionAttributeValues) != 1 {
		return nil, errors.New("fake supports a single equality condition")
	}
	var attr, want string
	for _, name := range in.ExpressionAttributeNames {
		attr = name
	}
	for _, v := range in.ExpressionAttributeValues {
		want = v.(*types.AttributeValueMemberS).Value
	}
	var matched []map[string]types.AttributeValue
	for _, it := range f.sorted() {
		if s, ok := it[attr].(*types.AttributeValueMemberS); ok && s.Value == want {
			matched = append(matched, it)
		}
	}
	page, last := f.page(matched, in.ExclusiveStartKey)
	return &dynamodb.QueryOutput{Items: page, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans++
	if f.err != nil {
		return nil, f.err
	}
	page, last := f.page(f.sorted(), in.ExclusiveStartKey)
	return &dynamodb.ScanOutput{Items: page, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) sorted() []map[string]types.AttributeValue {
	keys := make([]string, 0, len(f.items))
	for k := range f.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, f.items[k])
	}
	return out
}

func (f *fakeDynamo) page(all []map[string]types.AttributeValue, start map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue) {
	from := 0
	if start != nil {
		startKey := keyOf(start)
		for i, it := range all {
			if keyOf(it) == startKey {
				from = i + 1
				break
			}
		}
	}
	rest := all[from:]
	if f.pageSize <= 0 || len(rest) <= f.pageSize {
		return rest, nil
	}
	page := rest[:f.pageSize]
	return page, map[string]types.AttributeValue{"id": page[len(page)-1]["id"]}
}
