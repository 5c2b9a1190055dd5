package repository

import (
	"context"

	"ecotech/internal/domain/entities"
	"ecotech/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsRequestIDIndex = "request_id-index"

type treatmentPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	RequestID    string                 `dynamodbav:"request_id"`
	Amount       float64                `dynamodbav:"amount"`
	Policy       string                 `dynamodbav:"policy"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// TreatmentPaymentDynamoRepository persists treatment payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id)
type TreatmentPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITreatmentPaymentRepository = (*TreatmentPaymentDynamoRepository)(nil)

func NewTreatmentPaymentDynamoRepository(ddb DynamoAPI, tableName string) *TreatmentPaymentDynamoRepository {
	return &TreatmentPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TreatmentPaymentDynamoRepository) Create(ctx context.Context, p entities.TreatmentPayment) (entities.TreatmentPayment, error) {
	av, err := attributevalue.MarshalMap(toTreatmentPaymentItem(p))
	if err != nil {
		return entities.TreatmentPayment{}, err
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
		return entities.TreatmentPayment{}, err
	}
	return p, nil
}

func (r *TreatmentPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.TreatmentPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TreatmentPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.TreatmentPayment{}, nil
	}

	var it treatmentPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TreatmentPayment{}, err
	}
	return fromTreatmentPaymentItem(it), nil
}

func (r *TreatmentPaymentDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.TreatmentPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsRequestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.TreatmentPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it treatmentPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTreatmentPaymentItem(it))
	}
	return items, nil
}

func toTreatmentPaymentItem(p entities.TreatmentPayment) treatmentPaymentItem {
	return treatmentPaymentItem{
		ID:           p.ID,
		RequestID:    p.RequestID,
		Amount:       p.Amount,
		Policy:       string(p.Policy),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromTreatmentPaymentItem(it treatmentPaymentItem) entities.TreatmentPayment {
	p := entities.TreatmentPayment{
		ID:        it.ID,
		RequestID: it.RequestID,
		Amount:    it.Amount,
		Policy:    entities.CostPolicy(it.Policy),
		Date:      parseTime(it.Date),
		Status:    entities.PaymentStatus(it.Status),
		MPPayload: it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		p.MPPayloadRaw = []byte(it.MPPayloadRaw)
	}
	return p
}
