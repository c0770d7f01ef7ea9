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

const defaultOfferingsTableName = "service_offerings"

type serviceOfferingItem struct {
	ID         string   `dynamodbav:"id"`
	TitleAr    string   `dynamodbav:"title_ar"`
	TitleEn    string   `dynamodbav:"title_en"`
	Price      *float64 `dynamodbav:"price,omitempty"`
	Priced     bool     `dynamodbav:"priced"`
	Selectable bool     `dynamodbav:"selectable"`
	Active     bool     `dynamodbav:"active"`
	CreatedAt  string   `dynamodbav:"created_at"`
}

// CatalogDynamoRepository reads ServiceOffering rows.
//
// Table requirements:
//   - PK: id (string)

type CatalogDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb database.DynamoDBAPI) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OFFERINGS_TABLE", defaultOfferingsTableName),
	}
}

func (r *CatalogDynamoRepository) ListActive(ctx context.Context) ([]entities.ServiceOffering, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	offerings := make([]entities.ServiceOffering, 0, len(out.Items))
	for _, raw := range out.Items {
		var it serviceOfferingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		offerings = append(offerings, fromServiceOfferingItem(it))
	}
	return offerings, nil
}

func (r *CatalogDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.ServiceOffering, error) {
	offerings := make([]entities.ServiceOffering, 0, len(ids))
	for _, id := range ids {
		out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
		})
		if err != nil {
			return nil, err
		}
		if len(out.Item) == 0 {
			continue
		}
		var it serviceOfferingItem
		if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
			return nil, err
		}
		offerings = append(offerings, fromServiceOfferingItem(it))
	}
	return offerings, nil
}

func fromServiceOfferingItem(it serviceOfferingItem) entities.ServiceOffering {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ServiceOffering{
		ID:         it.ID,
		TitleAr:    it.TitleAr,
		TitleEn:    it.TitleEn,
		Price:      it.Price,
		Priced:     it.Priced,
		Selectable: it.Selectable,
		Active:     it.Active,
		CreatedAt:  created,
	}
}
