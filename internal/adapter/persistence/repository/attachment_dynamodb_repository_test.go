package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a minimal in-memory stand-in for the DynamoDB calls the
// attachment repository makes: conditional puts keyed by table, key lookups
// and a group_key index query.
type fakeDynamo struct {
	groups      map[string]map[string]types.AttributeValue
	attachments map[string]map[string]types.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		groups:      map[string]map[string]types.AttributeValue{},
		attachments: map[string]map[string]types.AttributeValue{},
	}
}

func strAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	switch {
	case strings.Contains(*params.TableName, "group"):
		key := strAttr(params.Item, "parent_ref")
		if _, exists := f.groups[key]; exists && params.ConditionExpression != nil {
			return nil, &types.ConditionalCheckFailedException{}
		}
		f.groups[key] = params.Item
	default:
		key := strAttr(params.Item, "id")
		if _, exists := f.attachments[key]; exists && params.ConditionExpression != nil {
			return nil, &types.ConditionalCheckFailedException{}
		}
		f.attachments[key] = params.Item
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	item := f.groups[strAttr(params.Key, "parent_ref")]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	var items []map[string]types.AttributeValue
	switch {
	case params.IndexName != nil && *params.IndexName == groupsGroupKeyIndex:
		want := strAttr(params.ExpressionAttributeValues, ":gk")
		for _, item := range f.groups {
			if strAttr(item, "group_key") == want {
				items = append(items, item)
			}
		}
	case params.IndexName != nil && *params.IndexName == attachmentsGroupIDIndex:
		want := strAttr(params.ExpressionAttributeValues, ":gid")
		for _, item := range f.attachments {
			if strAttr(item, "group_id") == want {
				items = append(items, item)
			}
		}
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, _ *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return nil, errors.New("not supported by the fake")
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return nil, errors.New("not supported by the fake")
}

func TestAttachmentDynamoRepository_CreateGroup(t *testing.T) {
	repo := NewAttachmentDynamoRepository(newFakeDynamo())

	group := entities.AttachmentGroup{
		ID:        "grp-1",
		GroupKey:  "key-1",
		ParentRef: "request:req-1",
		CreatedBy: "user-1",
		CreatedAt: time.Now().UTC(),
	}

	created, err := repo.CreateGroup(context.Background(), group)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "grp-1" {
		t.Fatalf("unexpected group: %+v", created)
	}

	// The second writer for the same parent loses the race.
	loser := group
	loser.ID = "grp-2"
	loser.GroupKey = "key-2"
	if _, err := repo.CreateGroup(context.Background(), loser); !errors.Is(err, interfaces.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// The loser re-reads and converges on the winner.
	winner, err := repo.GetGroupByParentRef(context.Background(), "request:req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if winner.ID != "grp-1" || winner.GroupKey != "key-1" {
		t.Fatalf("expected the winner's group, got %+v", winner)
	}
}

func TestAttachmentDynamoRepository_GetGroupByKey(t *testing.T) {
	repo := NewAttachmentDynamoRepository(newFakeDynamo())

	group := entities.AttachmentGroup{
		ID:        "grp-1",
		GroupKey:  "key-1",
		ParentRef: "request:req-1",
		CreatedBy: "user-1",
		CreatedAt: time.Now().UTC(),
	}
	if _, err := repo.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetGroupByKey(context.Background(), "key-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "grp-1" || got.ParentRef != "request:req-1" {
		t.Fatalf("unexpected group: %+v", got)
	}

	miss, err := repo.GetGroupByKey(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if miss.ID != "" {
		t.Fatalf("expected a zero group on miss, got %+v", miss)
	}
}

func TestAttachmentDynamoRepository_Attachments(t *testing.T) {
	repo := NewAttachmentDynamoRepository(newFakeDynamo())

	a := entities.Attachment{
		ID:           "att-1",
		GroupID:      "grp-1",
		FilePath:     "uploads/att-1/receipt.pdf",
		FileName:     "receipt.pdf",
		ContentType:  "application/pdf",
		SizeBytes:    42,
		UploaderRole: entities.RoleRequester,
		Phase:        entities.PhasePaymentReceipt,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := repo.CreateAttachment(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.CreateAttachment(context.Background(), a); !errors.Is(err, interfaces.ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate id, got %v", err)
	}

	b := a
	b.ID = "att-2"
	b.GroupID = "grp-2"
	if _, err := repo.CreateAttachment(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := repo.ListByGroupID(context.Background(), "grp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].FileName != "receipt.pdf" || list[0].Phase != entities.PhasePaymentReceipt {
		t.Fatalf("unexpected attachments: %+v", list)
	}
}
