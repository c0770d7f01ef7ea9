package usecase

import (
	"context"

	"khadamat_hub/internal/domain/entities"
)

// fakeAttachmentUseCase stands in for IAttachmentUseCase inside this
// package's tests; the gomock variant lives in a package that imports this
// one, so a hand-rolled fake avoids the cycle.
type fakeAttachmentUseCase struct {
	group    entities.AttachmentGroup
	groupErr error
	batch    entities.UploadBatchResult

	resolvedKeys    []string
	resolvedParents []string
	batchGroupIDs   []string
	batchPhases     []entities.Phase
	batchFileCounts []int
}

var _ IAttachmentUseCase = (*fakeAttachmentUseCase)(nil)

func (f *fakeAttachmentUseCase) ResolveOrCreateGroup(_ context.Context, groupKey, parentRef, _ string) (entities.AttachmentGroup, error) {
	f.resolvedKeys = append(f.resolvedKeys, groupKey)
	f.resolvedParents = append(f.resolvedParents, parentRef)
	if f.groupErr != nil {
		return entities.AttachmentGroup{}, f.groupErr
	}
	return f.group, nil
}

func (f *fakeAttachmentUseCase) AppendBatch(_ context.Context, groupID string, files []entities.FileUpload, _ entities.Role, phase entities.Phase) entities.UploadBatchResult {
	f.batchGroupIDs = append(f.batchGroupIDs, groupID)
	f.batchPhases = append(f.batchPhases, phase)
	f.batchFileCounts = append(f.batchFileCounts, len(files))
	return f.batch
}

func (f *fakeAttachmentUseCase) ListByGroupKey(context.Context, string) ([]entities.Attachment, error) {
	return nil, nil
}

func (f *fakeAttachmentUseCase) ListByParentRef(context.Context, string) ([]entities.Attachment, error) {
	return nil, nil
}
