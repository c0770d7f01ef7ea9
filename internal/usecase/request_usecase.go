package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/events"
	"khadamat_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRoleNotAllowed  = errors.New("actor role is not allowed to perform this action")
	ErrMissingTitle    = errors.New("request title is required")
	ErrRequestNotFound = errors.New("request not found")
)

const defaultCurrency = "SAR"

type SubmitRequestInput struct {
	Title       string
	Description string
	ServiceIDs  []string
	Currency    string
	Files       []entities.FileUpload
}

// SubmitRequestResult carries the created request together with the
// per-file outcome of the attachment batch.
type SubmitRequestResult struct {
	Request entities.Request
	Uploads entities.UploadBatchResult
}

type IRequestUseCase interface {
	Submit(ctx context.Context, actor entities.Actor, in SubmitRequestInput) (SubmitRequestResult, error)
	GetByID(ctx context.Context, id string) (entities.Request, error)
	ListByRequester(ctx context.Context, requesterID string) ([]entities.Request, error)
	ListAttachments(ctx context.Context, requestID string) ([]entities.Attachment, error)
	AddAttachments(ctx context.Context, actor entities.Actor, requestID string, phase entities.Phase, files []entities.FileUpload) (entities.UploadBatchResult, error)
}

type RequestUseCase struct {
	requests    interfaces.IRequestRepository
	catalog     ICatalogUseCase
	attachments IAttachmentUseCase
	bus         *events.Bus
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(requests interfaces.IRequestRepository, catalog ICatalogUseCase, attachments IAttachmentUseCase, bus *events.Bus) *RequestUseCase {
	return &RequestUseCase{
		requests:    requests,
		catalog:     catalog,
		attachments: attachments,
		bus:         bus,
	}
}

// Submit validates the selection, resolves the request's attachment group,
// uploads the submitted files, and only then persists the request row. The
// request id is generated up front so the group can reference its parent
// before the row exists. A group resolution failure aborts the submission;
// individual file failures do not.
func (u *RequestUseCase) Submit(ctx context.Context, actor entities.Actor, in SubmitRequestInput) (SubmitRequestResult, error) {
	if actor.Role != entities.RoleRequester {
		return SubmitRequestResult{}, ErrRoleNotAllowed
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return SubmitRequestResult{}, ErrMissingTitle
	}

	selection, err := u.catalog.ResolveSelection(ctx, in.ServiceIDs)
	if err != nil {
		return SubmitRequestResult{}, err
	}

	requestID := uuid.NewString()

	group, err := u.attachments.ResolveOrCreateGroup(ctx, "", requestParentRef(requestID), actor.ID)
	if err != nil {
		log.Printf("[request][usecase] attachment group resolution failed: %v", err)
		return SubmitRequestResult{}, err
	}

	var uploads entities.UploadBatchResult
	if len(in.Files) > 0 {
		uploads = u.attachments.AppendBatch(ctx, group.ID, in.Files, actor.Role, entities.PhaseRequestSubmission)
	}

	status := entities.RequestStatusPending
	if selection.Kind == entities.SelectionPriced {
		status = entities.RequestStatusPriced
	}
	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now().UTC()
	req := entities.Request{
		ID:                 requestID,
		RequesterID:        actor.ID,
		ServiceID:          selection.Set[0],
		ServiceIDs:         selection.Set,
		Title:              title,
		Description:        strings.TrimSpace(in.Description),
		Status:             status,
		Amount:             selection.Amount,
		Currency:           currency,
		AttachmentGroupKey: group.GroupKey,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.requests.Create(ctx, req)
	if err != nil {
		return SubmitRequestResult{}, err
	}

	u.bus.Publish(events.RowChanged{Table: "requests", Key: created.ID, Op: events.OpInsert})
	log.Printf("[request][usecase] request %s submitted by %s status=%s amount=%.2f", created.ID, actor.ID, created.Status, created.Amount)

	return SubmitRequestResult{Request: created, Uploads: uploads}, nil
}

func (u *RequestUseCase) GetByID(ctx context.Context, id string) (entities.Request, error) {
	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.Request{}, err
	}
	if req.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	return req, nil
}

func (u *RequestUseCase) ListByRequester(ctx context.Context, requesterID string) ([]entities.Request, error) {
	return u.requests.ListByRequester(ctx, requesterID)
}

func (u *RequestUseCase) ListAttachments(ctx context.Context, requestID string) ([]entities.Attachment, error) {
	req, err := u.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return u.attachments.ListByParentRef(ctx, requestParentRef(req.ID))
}

// AddAttachments appends follow-on files to the request's group. Uploads
// from any later phase converge on the group created at submission.
func (u *RequestUseCase) AddAttachments(ctx context.Context, actor entities.Actor, requestID string, phase entities.Phase, files []entities.FileUpload) (entities.UploadBatchResult, error) {
	req, err := u.GetByID(ctx, requestID)
	if err != nil {
		return entities.UploadBatchResult{}, err
	}

	group, err := u.attachments.ResolveOrCreateGroup(ctx, req.AttachmentGroupKey, requestParentRef(req.ID), actor.ID)
	if err != nil {
		return entities.UploadBatchResult{}, err
	}

	return u.attachments.AppendBatch(ctx, group.ID, files, actor.Role, phase), nil
}

func requestParentRef(requestID string) string {
	return "request:" + requestID
}
