package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/events"
	mock_interfaces "khadamat_hub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRequestUseCase_Submit(t *testing.T) {
	requester := entities.Actor{ID: "user-1", Role: entities.RoleRequester}

	t.Run("only requesters can submit", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, events.NewBus())
		_, err := uc.Submit(context.Background(), entities.Actor{ID: "p-1", Role: entities.RoleProvider}, SubmitRequestInput{Title: "x"})
		if !errors.Is(err, ErrRoleNotAllowed) {
			t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
		}
	})

	t.Run("title required", func(t *testing.T) {
		uc := NewRequestUseCase(nil, nil, nil, events.NewBus())
		_, err := uc.Submit(context.Background(), requester, SubmitRequestInput{Title: "   ", ServiceIDs: []string{"sel-1"}})
		if !errors.Is(err, ErrMissingTitle) {
			t.Fatalf("expected ErrMissingTitle, got %v", err)
		}
	})

	t.Run("invalid selection aborts before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalogRepo := mock_interfaces.NewMockICatalogRepository(ctrl)
		attachments := &fakeAttachmentUseCase{}
		uc := NewRequestUseCase(nil, NewCatalogUseCase(catalogRepo), attachments, events.NewBus())

		catalogRepo.EXPECT().GetByIDs(gomock.Any(), []string{"sel-1", "plain-1"}).Return([]entities.ServiceOffering{
			{ID: "sel-1", Selectable: true, Active: true},
			{ID: "plain-1", Active: true},
		}, nil)

		_, err := uc.Submit(context.Background(), requester, SubmitRequestInput{
			Title:      "leaky faucet",
			ServiceIDs: []string{"sel-1", "plain-1"},
		})
		if !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("expected ErrInvalidSelection, got %v", err)
		}
		if len(attachments.resolvedParents) != 0 {
			t.Fatal("no group may be resolved for an invalid selection")
		}
	})

	t.Run("group resolution failure aborts the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalogRepo := mock_interfaces.NewMockICatalogRepository(ctrl)
		attachments := &fakeAttachmentUseCase{groupErr: errors.New("ddb down")}
		uc := NewRequestUseCase(nil, NewCatalogUseCase(catalogRepo), attachments, events.NewBus())

		catalogRepo.EXPECT().GetByIDs(gomock.Any(), []string{"sel-1"}).
			Return([]entities.ServiceOffering{{ID: "sel-1", Selectable: true, Active: true}}, nil)

		_, err := uc.Submit(context.Background(), requester, SubmitRequestInput{
			Title:      "leaky faucet",
			ServiceIDs: []string{"sel-1"},
		})
		if err == nil {
			t.Fatal("expected the submission to fail")
		}
	})

	t.Run("priced submission wires group, uploads and row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIRequestRepository(ctrl)
		catalogRepo := mock_interfaces.NewMockICatalogRepository(ctrl)
		attachments := &fakeAttachmentUseCase{
			group: entities.AttachmentGroup{ID: "grp-1", GroupKey: "key-1"},
			batch: entities.UploadBatchResult{
				Succeeded: []entities.Attachment{{ID: "att-1", FileName: "photo.jpg"}},
				Failed:    []entities.FailedUpload{{FileName: "broken.bin", Reason: "upload failed"}},
			},
		}
		bus := events.NewBus()
		var published []events.RowChanged
		bus.Subscribe(func(evt events.RowChanged) { published = append(published, evt) })

		uc := NewRequestUseCase(requestRepo, NewCatalogUseCase(catalogRepo), attachments, bus)

		catalogRepo.EXPECT().GetByIDs(gomock.Any(), []string{"priced-1"}).
			Return([]entities.ServiceOffering{{ID: "priced-1", Priced: true, Price: price(300), Active: true}}, nil)
		requestRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Request{})).DoAndReturn(
			func(_ context.Context, r entities.Request) (entities.Request, error) {
				if r.ID == "" || r.RequesterID != "user-1" {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.Status != entities.RequestStatusPriced || r.Amount != 300 || r.Currency != "SAR" {
					t.Fatalf("expected priced request at 300 SAR, got %+v", r)
				}
				if r.ServiceID != "priced-1" || !reflect.DeepEqual(r.ServiceIDs, []string{"priced-1"}) {
					t.Fatalf("unexpected services: %+v", r)
				}
				if r.AttachmentGroupKey != "key-1" {
					t.Fatalf("expected the group key to be stamped, got %q", r.AttachmentGroupKey)
				}
				return r, nil
			},
		)

		result, err := uc.Submit(context.Background(), requester, SubmitRequestInput{
			Title:      "  deep clean  ",
			ServiceIDs: []string{"priced-1"},
			Files:      []entities.FileUpload{{Name: "photo.jpg"}, {Name: "broken.bin"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Request.Title != "deep clean" {
			t.Fatalf("expected trimmed title, got %q", result.Request.Title)
		}
		if len(result.Uploads.Succeeded) != 1 || len(result.Uploads.Failed) != 1 {
			t.Fatalf("expected the partial batch to be reported, got %+v", result.Uploads)
		}

		// The group references the request id minted before the row exists.
		if len(attachments.resolvedParents) != 1 || attachments.resolvedParents[0] != "request:"+result.Request.ID {
			t.Fatalf("unexpected parent refs: %v", attachments.resolvedParents)
		}
		if len(attachments.batchPhases) != 1 || attachments.batchPhases[0] != entities.PhaseRequestSubmission {
			t.Fatalf("expected request-submission phase, got %v", attachments.batchPhases)
		}

		if len(published) != 1 || published[0].Table != "requests" || published[0].Op != events.OpInsert {
			t.Fatalf("expected one requests insert event, got %v", published)
		}
	})

	t.Run("selectable submission stays pending without files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIRequestRepository(ctrl)
		catalogRepo := mock_interfaces.NewMockICatalogRepository(ctrl)
		attachments := &fakeAttachmentUseCase{group: entities.AttachmentGroup{ID: "grp-2", GroupKey: "key-2"}}
		uc := NewRequestUseCase(requestRepo, NewCatalogUseCase(catalogRepo), attachments, events.NewBus())

		catalogRepo.EXPECT().GetByIDs(gomock.Any(), []string{"sel-1", "sel-2"}).Return([]entities.ServiceOffering{
			{ID: "sel-1", Selectable: true, Active: true},
			{ID: "sel-2", Selectable: true, Active: true},
		}, nil)
		requestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Request) (entities.Request, error) {
				if r.Status != entities.RequestStatusPending || r.Amount != 0 {
					t.Fatalf("expected pending unpriced request, got %+v", r)
				}
				return r, nil
			},
		)

		_, err := uc.Submit(context.Background(), requester, SubmitRequestInput{
			Title:      "weekly gardening",
			ServiceIDs: []string{"sel-1", "sel-2"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(attachments.batchPhases) != 0 {
			t.Fatal("no batch should run without files")
		}
	})
}

func TestRequestUseCase_AddAttachments(t *testing.T) {
	provider := entities.Actor{ID: "prov-1", Role: entities.RoleProvider}

	t.Run("converges on the request's group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIRequestRepository(ctrl)
		attachments := &fakeAttachmentUseCase{
			group: entities.AttachmentGroup{ID: "grp-1", GroupKey: "key-1"},
			batch: entities.UploadBatchResult{Succeeded: []entities.Attachment{{ID: "att-9", FileName: "report.pdf"}}},
		}
		uc := NewRequestUseCase(requestRepo, nil, attachments, events.NewBus())

		requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.Request{ID: "req-1", AttachmentGroupKey: "key-1"}, nil)

		result, err := uc.AddAttachments(context.Background(), provider, "req-1", entities.PhaseProfileDocument,
			[]entities.FileUpload{{Name: "report.pdf"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Succeeded) != 1 {
			t.Fatalf("unexpected batch: %+v", result)
		}
		if len(attachments.resolvedKeys) != 1 || attachments.resolvedKeys[0] != "key-1" {
			t.Fatalf("expected resolution by the stored group key, got %v", attachments.resolvedKeys)
		}
		if len(attachments.batchPhases) != 1 || attachments.batchPhases[0] != entities.PhaseProfileDocument {
			t.Fatalf("expected the caller's phase, got %v", attachments.batchPhases)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requestRepo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(requestRepo, nil, nil, events.NewBus())

		requestRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Request{}, nil)

		_, err := uc.AddAttachments(context.Background(), provider, "ghost", entities.PhaseRequestSubmission, nil)
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})
}

func TestRequestUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	requestRepo := mock_interfaces.NewMockIRequestRepository(ctrl)
	uc := NewRequestUseCase(requestRepo, nil, nil, events.NewBus())

	requestRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Request{}, nil)

	_, err := uc.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}
