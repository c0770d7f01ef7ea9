package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/usecase/interfaces"
	mock_interfaces "khadamat_hub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAttachmentUseCase_ResolveOrCreateGroup(t *testing.T) {
	existing := entities.AttachmentGroup{
		ID:        "grp-1",
		GroupKey:  "key-1",
		ParentRef: "request:req-1",
		CreatedBy: "user-1",
		CreatedAt: time.Now().UTC(),
	}

	t.Run("resolves by group key first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		uc := NewAttachmentUseCase(repo, nil)

		repo.EXPECT().GetGroupByKey(gomock.Any(), "key-1").Return(existing, nil)

		got, err := uc.ResolveOrCreateGroup(context.Background(), "key-1", "request:req-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "grp-1" {
			t.Fatalf("expected existing group, got %+v", got)
		}
	})

	t.Run("resolves by parent ref when key misses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		uc := NewAttachmentUseCase(repo, nil)

		repo.EXPECT().GetGroupByKey(gomock.Any(), "stale-key").Return(entities.AttachmentGroup{}, nil)
		repo.EXPECT().GetGroupByParentRef(gomock.Any(), "request:req-1").Return(existing, nil)

		got, err := uc.ResolveOrCreateGroup(context.Background(), "stale-key", "request:req-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "grp-1" {
			t.Fatalf("expected existing group, got %+v", got)
		}
	})

	t.Run("creates when parent has no group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		uc := NewAttachmentUseCase(repo, nil)

		repo.EXPECT().GetGroupByParentRef(gomock.Any(), "request:req-2").Return(entities.AttachmentGroup{}, nil)
		repo.EXPECT().CreateGroup(gomock.Any(), gomock.AssignableToTypeOf(entities.AttachmentGroup{})).DoAndReturn(
			func(_ context.Context, g entities.AttachmentGroup) (entities.AttachmentGroup, error) {
				if g.ID == "" || g.GroupKey == "" {
					t.Fatalf("expected generated ids, got %+v", g)
				}
				if g.ParentRef != "request:req-2" || g.CreatedBy != "user-1" {
					t.Fatalf("unexpected group: %+v", g)
				}
				return g, nil
			},
		)

		got, err := uc.ResolveOrCreateGroup(context.Background(), "", "request:req-2", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ParentRef != "request:req-2" {
			t.Fatalf("unexpected group: %+v", got)
		}
	})

	t.Run("conflict converges on the winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		uc := NewAttachmentUseCase(repo, nil)

		gomock.InOrder(
			repo.EXPECT().GetGroupByParentRef(gomock.Any(), "request:req-1").Return(entities.AttachmentGroup{}, nil),
			repo.EXPECT().CreateGroup(gomock.Any(), gomock.Any()).Return(entities.AttachmentGroup{}, interfaces.ErrConflict),
			repo.EXPECT().GetGroupByParentRef(gomock.Any(), "request:req-1").Return(existing, nil),
		)

		got, err := uc.ResolveOrCreateGroup(context.Background(), "", "request:req-1", "user-2")
		if err != nil {
			t.Fatalf("expected convergence, got %v", err)
		}
		if got.ID != "grp-1" {
			t.Fatalf("expected the winner's group, got %+v", got)
		}
	})

	t.Run("parent ref required", func(t *testing.T) {
		uc := NewAttachmentUseCase(nil, nil)
		_, err := uc.ResolveOrCreateGroup(context.Background(), "", "", "user-1")
		if !errors.Is(err, ErrParentRefRequired) {
			t.Fatalf("expected ErrParentRefRequired, got %v", err)
		}
	})
}

func TestAttachmentUseCase_AppendBatch(t *testing.T) {
	files := []entities.FileUpload{
		{Name: "a.pdf", ContentType: "application/pdf", SizeBytes: 10, Data: []byte("aa")},
		{Name: "b.png", ContentType: "image/png", SizeBytes: 20, Data: []byte("bb")},
		{Name: "c.jpg", ContentType: "image/jpeg", SizeBytes: 30, Data: []byte("cc")},
	}

	t.Run("stores every file and records metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		store := mock_interfaces.NewMockIContentStore(ctrl)
		uc := NewAttachmentUseCase(repo, store)

		for _, f := range files {
			store.EXPECT().Put(gomock.Any(), f, string(entities.PhaseRequestSubmission)).Return("https://cdn/"+f.Name, nil)
		}
		repo.EXPECT().CreateAttachment(gomock.Any(), gomock.AssignableToTypeOf(entities.Attachment{})).DoAndReturn(
			func(_ context.Context, a entities.Attachment) (entities.Attachment, error) {
				if a.GroupID != "grp-1" || a.Phase != entities.PhaseRequestSubmission {
					t.Fatalf("unexpected attachment: %+v", a)
				}
				return a, nil
			},
		).Times(3)

		result := uc.AppendBatch(context.Background(), "grp-1", files, entities.RoleRequester, entities.PhaseRequestSubmission)
		if len(result.Succeeded) != 3 || len(result.Failed) != 0 {
			t.Fatalf("expected 3 successes, got %+v", result)
		}
	})

	t.Run("one bad file never aborts the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		store := mock_interfaces.NewMockIContentStore(ctrl)
		uc := NewAttachmentUseCase(repo, store)

		store.EXPECT().Put(gomock.Any(), files[0], gomock.Any()).Return("", errors.New("storage down"))
		store.EXPECT().Put(gomock.Any(), files[1], gomock.Any()).Return("https://cdn/b.png", nil)
		store.EXPECT().Put(gomock.Any(), files[2], gomock.Any()).Return("https://cdn/c.jpg", nil)

		repo.EXPECT().CreateAttachment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Attachment) (entities.Attachment, error) {
				if a.FileName == "b.png" {
					return entities.Attachment{}, errors.New("db down")
				}
				return a, nil
			},
		).Times(2)

		result := uc.AppendBatch(context.Background(), "grp-1", files, entities.RoleRequester, entities.PhasePaymentReceipt)
		if len(result.Succeeded) != 1 || result.Succeeded[0].FileName != "c.jpg" {
			t.Fatalf("expected only c.jpg to succeed, got %+v", result.Succeeded)
		}
		if len(result.Failed) != 2 {
			t.Fatalf("expected 2 failures, got %+v", result.Failed)
		}
		if !result.Partial() {
			t.Fatal("expected a partial result")
		}
	})

	t.Run("all failed is reported as such", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAttachmentRepository(ctrl)
		store := mock_interfaces.NewMockIContentStore(ctrl)
		uc := NewAttachmentUseCase(repo, store)

		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("storage down")).Times(3)

		result := uc.AppendBatch(context.Background(), "grp-1", files, entities.RoleRequester, entities.PhasePaymentReceipt)
		if !result.AllFailed() {
			t.Fatalf("expected AllFailed, got %+v", result)
		}
	})
}
