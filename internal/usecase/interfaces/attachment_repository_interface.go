package interfaces

import (
	"context"

	"khadamat_hub/internal/domain/entities"
)

// IAttachmentRepository abstracts DynamoDB persistence for attachment
// groups and attachments.
//
// CreateGroup is conditional on the parent reference not already owning a
// group; when it does, ErrConflict is returned and the caller re-reads the
// winner so concurrent first creation converges on one group.

type IAttachmentRepository interface {
	CreateGroup(ctx context.Context, g entities.AttachmentGroup) (entities.AttachmentGroup, error)
	GetGroupByParentRef(ctx context.Context, parentRef string) (entities.AttachmentGroup, error)
	GetGroupByKey(ctx context.Context, groupKey string) (entities.AttachmentGroup, error)
	CreateAttachment(ctx context.Context, a entities.Attachment) (entities.Attachment, error)
	ListByGroupID(ctx context.Context, groupID string) ([]entities.Attachment, error)
}
