package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrParentRefRequired = errors.New("attachment group needs a parent reference")
	ErrGroupNotFound     = errors.New("attachment group not found")
)

// IAttachmentUseCase manages attachment groups and their files. A group is
// resolved at most once per parent entity; repeated resolutions for the same
// parent always land on the same group.

type IAttachmentUseCase interface {
	ResolveOrCreateGroup(ctx context.Context, groupKey, parentRef, creatorID string) (entities.AttachmentGroup, error)
	AppendBatch(ctx context.Context, groupID string, files []entities.FileUpload, role entities.Role, phase entities.Phase) entities.UploadBatchResult
	ListByGroupKey(ctx context.Context, groupKey string) ([]entities.Attachment, error)
	ListByParentRef(ctx context.Context, parentRef string) ([]entities.Attachment, error)
}

type AttachmentUseCase struct {
	attachments interfaces.IAttachmentRepository
	store       interfaces.IContentStore
}

var _ IAttachmentUseCase = (*AttachmentUseCase)(nil)

func NewAttachmentUseCase(attachments interfaces.IAttachmentRepository, store interfaces.IContentStore) *AttachmentUseCase {
	return &AttachmentUseCase{attachments: attachments, store: store}
}

// ResolveOrCreateGroup returns the existing group for the given key or
// parent reference, creating one when neither finds a match. Creation is a
// conditional write keyed by parent reference, so two concurrent callers
// for the same parent converge on a single group: the loser re-reads the
// winner's row instead of erroring out.
func (u *AttachmentUseCase) ResolveOrCreateGroup(ctx context.Context, groupKey, parentRef, creatorID string) (entities.AttachmentGroup, error) {
	if groupKey != "" {
		group, err := u.attachments.GetGroupByKey(ctx, groupKey)
		if err != nil {
			return entities.AttachmentGroup{}, err
		}
		if group.ID != "" {
			return group, nil
		}
	}

	if parentRef == "" {
		return entities.AttachmentGroup{}, ErrParentRefRequired
	}

	group, err := u.attachments.GetGroupByParentRef(ctx, parentRef)
	if err != nil {
		return entities.AttachmentGroup{}, err
	}
	if group.ID != "" {
		return group, nil
	}

	candidate := entities.AttachmentGroup{
		ID:        uuid.NewString(),
		GroupKey:  uuid.NewString(),
		ParentRef: parentRef,
		CreatedBy: creatorID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := u.attachments.CreateGroup(ctx, candidate)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, interfaces.ErrConflict) {
		return entities.AttachmentGroup{}, err
	}

	// Lost the creation race; the winner's group is authoritative.
	log.Printf("[attachments][usecase] group creation raced for parent %s, re-reading winner", parentRef)
	group, err = u.attachments.GetGroupByParentRef(ctx, parentRef)
	if err != nil {
		return entities.AttachmentGroup{}, err
	}
	if group.ID == "" {
		return entities.AttachmentGroup{}, ErrGroupNotFound
	}
	return group, nil
}

// AppendBatch stores each file and records its metadata, independently per
// file. One bad file never aborts the batch; it is reported in the result
// and the rest proceed.
func (u *AttachmentUseCase) AppendBatch(ctx context.Context, groupID string, files []entities.FileUpload, role entities.Role, phase entities.Phase) entities.UploadBatchResult {
	var result entities.UploadBatchResult

	for _, file := range files {
		path, err := u.store.Put(ctx, file, string(phase))
		if err != nil {
			log.Printf("[attachments][usecase] upload failed for %s: %v", file.Name, err)
			result.Failed = append(result.Failed, entities.FailedUpload{FileName: file.Name, Reason: "upload failed"})
			continue
		}

		attachment := entities.Attachment{
			ID:           uuid.NewString(),
			GroupID:      groupID,
			FilePath:     path,
			FileName:     file.Name,
			ContentType:  file.ContentType,
			SizeBytes:    file.SizeBytes,
			UploaderRole: role,
			Phase:        phase,
			CreatedAt:    time.Now().UTC(),
		}
		saved, err := u.attachments.CreateAttachment(ctx, attachment)
		if err != nil {
			log.Printf("[attachments][usecase] metadata write failed for %s: %v", file.Name, err)
			result.Failed = append(result.Failed, entities.FailedUpload{FileName: file.Name, Reason: "metadata write failed"})
			continue
		}
		result.Succeeded = append(result.Succeeded, saved)
	}

	return result
}

func (u *AttachmentUseCase) ListByGroupKey(ctx context.Context, groupKey string) ([]entities.Attachment, error) {
	group, err := u.attachments.GetGroupByKey(ctx, groupKey)
	if err != nil {
		return nil, err
	}
	if group.ID == "" {
		return nil, ErrGroupNotFound
	}
	return u.attachments.ListByGroupID(ctx, group.ID)
}

func (u *AttachmentUseCase) ListByParentRef(ctx context.Context, parentRef string) ([]entities.Attachment, error) {
	group, err := u.attachments.GetGroupByParentRef(ctx, parentRef)
	if err != nil {
		return nil, err
	}
	if group.ID == "" {
		return nil, ErrGroupNotFound
	}
	return u.attachments.ListByGroupID(ctx, group.ID)
}
