package repository

import (
	"context"
	"sort"

	"ecotech/internal/domain/entities"
	"ecotech/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type reportItem struct {
	ID               string  `dynamodbav:"id"`
	Title            string  `dynamodbav:"title"`
	GeneratedAt      string  `dynamodbav:"generated_at"`
	RequestCount     int     `dynamodbav:"request_count"`
	WeightRecycledKg float64 `dynamodbav:"weight_recycled_kg"`
	WeightReusedKg   float64 `dynamodbav:"weight_reused_kg"`
	WeightDisposedKg float64 `dynamodbav:"weight_disposed_kg"`
	ImpactAvoided    float64 `dynamodbav:"impact_avoided"`
}

// ReportDynamoRepository archives generated reports in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ReportDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IReportRepository = (*ReportDynamoRepository)(nil)

func NewReportDynamoRepository(ddb DynamoAPI, tableName string) *ReportDynamoRepository {
	return &ReportDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ReportDynamoRepository) Create(ctx context.Context, rep entities.Report) (entities.Report, error) {
	av, err := attributevalue.MarshalMap(toReportItem(rep))
	if err != nil {
		return entities.Report{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Report{}, err
	}
	return rep, nil
}

func (r *ReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.Report, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Report{}, err
	}
	if len(out.Item) == 0 {
		return entities.Report{}, nil
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Report{}, err
	}
	return fromReportItem(it), nil
}

// List scans the whole table, oldest report first.
func (r *ReportDynamoRepository) List(ctx context.Context) ([]entities.Report, error) {
	var (
		reports []entities.Report
		start   map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it reportItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			reports = append(reports, fromReportItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		start = out.LastEvaluatedKey
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].GeneratedAt.Before(reports[j].GeneratedAt)
	})
	return reports, nil
}

func toReportItem(r entities.Report) reportItem {
	return reportItem{
		ID:               r.ID,
		Title:            r.Title,
		GeneratedAt:      formatTime(r.GeneratedAt),
		RequestCount:     r.RequestCount,
		WeightRecycledKg: r.WeightRecycledKg,
		WeightReusedKg:   r.WeightReusedKg,
		WeightDisposedKg: r.WeightDisposedKg,
		ImpactAvoided:    r.ImpactAvoided,
	}
}

func fromReportItem(it reportItem) entities.Report {
	return entities.Report{
		ID:               it.ID,
		Title:            it.Title,
		GeneratedAt:      parseTime(it.GeneratedAt),
		RequestCount:     it.RequestCount,
		WeightRecycledKg: it.WeightRecycledKg,
		WeightReusedKg:   it.WeightReusedKg,
		WeightDisposedKg: it.WeightDisposedKg,
		ImpactAvoided:    it.ImpactAvoided,
	}
}
