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
	defaultGroupsTableName      = "attachment_groups"
	defaultAttachmentsTableName = "attachments"
	groupsGroupKeyIndex         = "group_key-index"
	attachmentsGroupIDIndex     = "group_id-index"
)

type attachmentGroupItem struct {
	ParentRef string `dynamodbav:"parent_ref"`
	ID        string `dynamodbav:"id"`
	GroupKey  string `dynamodbav:"group_key"`
	CreatedBy string `dynamodbav:"created_by"`
	CreatedAt string `dynamodbav:"created_at"`
}

type attachmentItem struct {
	ID           string `dynamodbav:"id"`
	GroupID      string `dynamodbav:"group_id"`
	FilePath     string `dynamodbav:"file_path"`
	FileName     string `dynamodbav:"file_name"`
	ContentType  string `dynamodbav:"content_type"`
	SizeBytes    int64  `dynamodbav:"size_bytes"`
	UploaderRole string `dynamodbav:"uploader_role"`
	Phase        string `dynamodbav:"phase"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// AttachmentDynamoRepository persists attachment groups and attachments.
//
// Table requirements:
//   - attachment_groups: PK parent_ref (string), GSI group_key-index
//     (PK: group_key). Keying the group table by parent reference is what
//     makes first creation race-safe: the conditional put admits exactly
//     one group per parent.
//   - attachments: PK id (string), GSI group_id-index (PK: group_id)

type AttachmentDynamoRepository struct {
	ddb              database.DynamoDBAPI
	groupsTable      string
	attachmentsTable string
}

var _ interfaces.IAttachmentRepository = (*AttachmentDynamoRepository)(nil)

func NewAttachmentDynamoRepository(ddb database.DynamoDBAPI) *AttachmentDynamoRepository {
	return &AttachmentDynamoRepository{
		ddb:              ddb,
		groupsTable:      getenvDefault("ATTACHMENT_GROUPS_TABLE", defaultGroupsTableName),
		attachmentsTable: getenvDefault("ATTACHMENTS_TABLE", defaultAttachmentsTableName),
	}
}

// CreateGroup writes the group only when its parent has none yet; a loser
// of the race gets ErrConflict and is expected to re-read the winner.
func (r *AttachmentDynamoRepository) CreateGroup(ctx context.Context, g entities.AttachmentGroup) (entities.AttachmentGroup, error) {
	av, err := attributevalue.MarshalMap(toAttachmentGroupItem(g))
	if err != nil {
		return entities.AttachmentGroup{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.groupsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(parent_ref)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.AttachmentGroup{}, interfaces.ErrConflict
		}
		return entities.AttachmentGroup{}, err
	}
	return g, nil
}

func (r *AttachmentDynamoRepository) GetGroupByParentRef(ctx context.Context, parentRef string) (entities.AttachmentGroup, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.groupsTable),
		Key: map[string]types.AttributeValue{
			"parent_ref": &types.AttributeValueMemberS{Value: parentRef},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AttachmentGroup{}, err
	}
	if len(out.Item) == 0 {
		return entities.AttachmentGroup{}, nil
	}

	var it attachmentGroupItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AttachmentGroup{}, err
	}
	return fromAttachmentGroupItem(it), nil
}

func (r *AttachmentDynamoRepository) GetGroupByKey(ctx context.Context, groupKey string) (entities.AttachmentGroup, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.groupsTable),
		IndexName:              aws.String(groupsGroupKeyIndex),
		KeyConditionExpression: aws.String("group_key = :gk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gk": &types.AttributeValueMemberS{Value: groupKey},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.AttachmentGroup{}, err
	}
	if len(out.Items) == 0 {
		return entities.AttachmentGroup{}, nil
	}

	var it attachmentGroupItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.AttachmentGroup{}, err
	}
	return fromAttachmentGroupItem(it), nil
}

func (r *AttachmentDynamoRepository) CreateAttachment(ctx context.Context, a entities.Attachment) (entities.Attachment, error) {
	av, err := attributevalue.MarshalMap(toAttachmentItem(a))
	if err != nil {
		return entities.Attachment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.attachmentsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Attachment{}, interfaces.ErrConflict
		}
		return entities.Attachment{}, err
	}
	return a, nil
}

func (r *AttachmentDynamoRepository) ListByGroupID(ctx context.Context, groupID string) ([]entities.Attachment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.attachmentsTable),
		IndexName:              aws.String(attachmentsGroupIDIndex),
		KeyConditionExpression: aws.String("group_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: groupID},
		},
	})
	if err != nil {
		return nil, err
	}

	attachments := make([]entities.Attachment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it attachmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		attachments = append(attachments, fromAttachmentItem(it))
	}
	return attachments, nil
}

func toAttachmentGroupItem(g entities.AttachmentGroup) attachmentGroupItem {
	return attachmentGroupItem{
		ParentRef: g.ParentRef,
		ID:        g.ID,
		GroupKey:  g.GroupKey,
		CreatedBy: g.CreatedBy,
		CreatedAt: g.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAttachmentGroupItem(it attachmentGroupItem) entities.AttachmentGroup {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.AttachmentGroup{
		ParentRef: it.ParentRef,
		ID:        it.ID,
		GroupKey:  it.GroupKey,
		CreatedBy: it.CreatedBy,
		CreatedAt: created,
	}
}

func toAttachmentItem(a entities.Attachment) attachmentItem {
	return attachmentItem{
		ID:           a.ID,
		GroupID:      a.GroupID,
		FilePath:     a.FilePath,
		FileName:     a.FileName,
		ContentType:  a.ContentType,
		SizeBytes:    a.SizeBytes,
		UploaderRole: string(a.UploaderRole),
		Phase:        string(a.Phase),
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAttachmentItem(it attachmentItem) entities.Attachment {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Attachment{
		ID:           it.ID,
		GroupID:      it.GroupID,
		FilePath:     it.FilePath,
		FileName:     it.FileName,
		ContentType:  it.ContentType,
		SizeBytes:    it.SizeBytes,
		UploaderRole: entities.Role(it.UploaderRole),
		Phase:        entities.Phase(it.Phase),
		CreatedAt:    created,
	}
}
