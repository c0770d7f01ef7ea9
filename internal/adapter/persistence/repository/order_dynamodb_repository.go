package repository

import (
	"context"
	"time"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/infrastructure/database"
	"khadamat_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersProviderIDIndex  = "provider_id-index"
	ordersRequestIDIndex   = "request_id-index"
	ordersStatusIndex      = "status-index"
)

type orderItem struct {
	ID          string `dynamodbav:"id"`
	RequestID   string `dynamodbav:"request_id"`
	ProviderID  string `dynamodbav:"provider_id"`
	Status      string `dynamodbav:"status"`
	StartDate   string `dynamodbav:"start_date,omitempty"`
	DueDate     string `dynamodbav:"due_date,omitempty"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: provider_id-index (PK: provider_id)
//   - GSI: request_id-index (PK: request_id)
//   - GSI: status-index (PK: status)

type OrderDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb database.DynamoDBAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.Order{}, interfaces.ErrConflict
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersRequestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByProvider(ctx context.Context, providerID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersProviderIDIndex),
		KeyConditionExpression: aws.String("provider_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: providerID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) CountByStatus(ctx context.Context) (map[entities.OrderStatus]int, error) {
	statuses := []entities.OrderStatus{
		entities.OrderStatusWaitingApproval,
		entities.OrderStatusWaitingStart,
		entities.OrderStatusProcessing,
		entities.OrderStatusCompleted,
		entities.OrderStatusRejected,
		entities.OrderStatusCancelled,
	}

	counts := make(map[entities.OrderStatus]int, len(statuses))
	for _, status := range statuses {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersStatusIndex),
			KeyConditionExpression: aws.String("#st = :v"),
			ExpressionAttributeNames: map[string]string{
				"#st": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: string(status)},
			},
			Select: types.SelectCount,
		})
		if err != nil {
			return nil, err
		}
		counts[status] = int(out.Count)
	}
	return counts, nil
}

// UpdateStatus is a compare-and-set on the stored status. A concurrent
// transition that already moved the order surfaces as ErrConflict.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.OrderStatus, patch interfaces.OrderPatch) (entities.Order, error) {
	now := time.Now().UTC()

	updateExpr := "SET #st = :next, updated_at = :ua"
	values := map[string]types.AttributeValue{
		":next":     &types.AttributeValueMemberS{Value: string(next)},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
		":ua":       &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
	}
	if patch.StartDate != nil {
		updateExpr += ", start_date = :sd"
		values[":sd"] = &types.AttributeValueMemberS{Value: patch.StartDate.UTC().Format(time.RFC3339Nano)}
	}
	if patch.DueDate != nil {
		updateExpr += ", due_date = :dd"
		values[":dd"] = &types.AttributeValueMemberS{Value: patch.DueDate.UTC().Format(time.RFC3339Nano)}
	}
	if patch.CompletedAt != nil {
		updateExpr += ", completed_at = :ca"
		values[":ca"] = &types.AttributeValueMemberS{Value: patch.CompletedAt.UTC().Format(time.RFC3339Nano)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String(updateExpr),
		ConditionExpression: aws.String("#st = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, interfaces.ErrConflict
		}
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:         o.ID,
		RequestID:  o.RequestID,
		ProviderID: o.ProviderID,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.StartDate != nil {
		it.StartDate = o.StartDate.UTC().Format(time.RFC3339Nano)
	}
	if o.DueDate != nil {
		it.DueDate = o.DueDate.UTC().Format(time.RFC3339Nano)
	}
	if o.CompletedAt != nil {
		it.CompletedAt = o.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	o := entities.Order{
		ID:         it.ID,
		RequestID:  it.RequestID,
		ProviderID: it.ProviderID,
		Status:     entities.OrderStatus(it.Status),
		CreatedAt:  created,
		UpdatedAt:  updated,
	}
	if it.StartDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.StartDate); err == nil {
			o.StartDate = &t
		}
	}
	if it.DueDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.DueDate); err == nil {
			o.DueDate = &t
		}
	}
	if it.CompletedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			o.CompletedAt = &t
		}
	}
	return o
}
