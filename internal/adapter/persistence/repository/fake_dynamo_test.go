package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var errConditionFailed = &types.ConditionalCheckFailedException{Message: strPtr("conditional check failed")}

func strPtr(s string) *string { return &s }

// fakeDynamo is a single-table stand-in keyed by the "id" attribute. Scan
// returns one item per page.
type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue
	err   error

	scans int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func idOf(item map[string]types.AttributeValue) string {
	if s, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := idOf(in.Item)
	if _, exists := f.items[id]; exists && in.ConditionExpression != nil {
		return nil, errConditionFailed
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[idOf(in.Key)]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	want, _ := in.ExpressionAttributeValues[":rid"].(*types.AttributeValueMemberS)
	if want == nil {
		return nil, errors.New("missing :rid")
	}
	var out []map[string]types.AttributeValue
	for _, id := range f.sortedIDs() {
		item := f.items[id]
		if s, ok := item["request_id"].(*types.AttributeValueMemberS); ok && s.Value == want.Value {
			out = append(out, item)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.scans++
	ids := f.sortedIDs()
	start := 0
	if in.ExclusiveStartKey != nil {
		last := idOf(in.ExclusiveStartKey)
		for i, id := range ids {
			if id == last {
				start = i + 1
			}
		}
	}
	if start >= len(ids) {
		return &dynamodb.ScanOutput{}, nil
	}
	item := f.items[ids[start]]
	out := &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{item}}
	if start+1 < len(ids) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": item["id"]}
	}
	return out, nil
}

func (f *fakeDynamo) sortedIDs() []string {
	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
