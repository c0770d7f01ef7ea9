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
	defaultRequestsTableName = "requests"
	requestsRequesterIDIndex = "requester_id-index"
	requestsStatusIndex      = "status-index"
)

type requestItem struct {
	ID                 string   `dynamodbav:"id"`
	RequesterID        string   `dynamodbav:"requester_id"`
	ServiceID          string   `dynamodbav:"service_id"`
	ServiceIDs         []string `dynamodbav:"service_ids,omitempty"`
	Title              string   `dynamodbav:"title"`
	Description        string   `dynamodbav:"description"`
	Status             string   `dynamodbav:"status"`
	Amount             float64  `dynamodbav:"amount"`
	Currency           string   `dynamodbav:"currency"`
	AttachmentGroupKey string   `dynamodbav:"attachment_group_key,omitempty"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// RequestDynamoRepository persists Request entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: requester_id-index (PK: requester_id)
//   - GSI: status-index (PK: status)

type RequestDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb database.DynamoDBAPI) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.Request) (entities.Request, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.Request{}, err
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
			return entities.Request{}, interfaces.ErrConflict
		}
		return entities.Request{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.Request, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Request{}, err
	}
	if len(out.Item) == 0 {
		return entities.Request{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Request{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RequestDynamoRepository) ListByRequester(ctx context.Context, requesterID string) ([]entities.Request, error) {
	return r.queryIndex(ctx, requestsRequesterIDIndex, "requester_id = :v", requesterID)
}

func (r *RequestDynamoRepository) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.Request, error) {
	return r.queryIndex(ctx, requestsStatusIndex, "#st = :v", string(status))
}

func (r *RequestDynamoRepository) queryIndex(ctx context.Context, index, keyCond, value string) ([]entities.Request, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
	if index == requestsStatusIndex {
		input.ExpressionAttributeNames = map[string]string{"#st": "status"}
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	requests := make([]entities.Request, 0, len(out.Items))
	for _, raw := range out.Items {
		var it requestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		requests = append(requests, fromRequestItem(it))
	}
	return requests, nil
}

func (r *RequestDynamoRepository) CountByStatus(ctx context.Context) (map[entities.RequestStatus]int, error) {
	counts := make(map[entities.RequestStatus]int)
	for _, status := range []entities.RequestStatus{entities.RequestStatusPending, entities.RequestStatusPriced} {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(requestsStatusIndex),
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

func toRequestItem(req entities.Request) requestItem {
	return requestItem{
		ID:                 req.ID,
		RequesterID:        req.RequesterID,
		ServiceID:          req.ServiceID,
		ServiceIDs:         req.ServiceIDs,
		Title:              req.Title,
		Description:        req.Description,
		Status:             string(req.Status),
		Amount:             req.Amount,
		Currency:           req.Currency,
		AttachmentGroupKey: req.AttachmentGroupKey,
		CreatedAt:          req.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          req.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRequestItem(it requestItem) entities.Request {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Request{
		ID:                 it.ID,
		RequesterID:        it.RequesterID,
		ServiceID:          it.ServiceID,
		ServiceIDs:         it.ServiceIDs,
		Title:              it.Title,
		Description:        it.Description,
		Status:             entities.RequestStatus(it.Status),
		Amount:             it.Amount,
		Currency:           it.Currency,
		AttachmentGroupKey: it.AttachmentGroupKey,
		CreatedAt:          created,
		UpdatedAt:          updated,
	}
}
