package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/events"
	"khadamat_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotPriced    = errors.New("request has no amount to pay")
	ErrAlreadyPaid         = errors.New("request already has a settled payment")
	ErrUnsupportedMethod   = errors.New("unsupported payment method")
	ErrReceiptRequired     = errors.New("bank transfer needs at least one receipt file")
	ErrNotesRequired       = errors.New("payment notes are required for this method")
	ErrReceiptUploadFailed = errors.New("no receipt file could be stored")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
	ErrSettledUnrecorded   = errors.New("payment settled at the gateway but could not be recorded")
	ErrPaymentNotFound     = errors.New("payment not found")
)

type InitiatePaymentInput struct {
	Reference string
	Method    entities.PaymentMethod
	Notes     string
	Files     []entities.FileUpload
}

// InitiatePaymentResult is the outcome of one payment attempt. RedirectURL
// is set for the invoice flow only; Uploads reports per-receipt outcomes
// for the bank flow.
type InitiatePaymentResult struct {
	Payment     entities.Payment
	RedirectURL string
	Uploads     entities.UploadBatchResult
}

type IPaymentUseCase interface {
	Initiate(ctx context.Context, actor entities.Actor, in InitiatePaymentInput) (InitiatePaymentResult, error)
	ConfirmInvoice(ctx context.Context, reference, gatewayRef string) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByReference(ctx context.Context, reference string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	payments    interfaces.IPaymentRepository
	requests    interfaces.IRequestRepository
	cards       interfaces.ICardGateway
	invoices    interfaces.IInvoiceGateway
	attachments IAttachmentUseCase
	bus         *events.Bus
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	payments interfaces.IPaymentRepository,
	requests interfaces.IRequestRepository,
	cards interfaces.ICardGateway,
	invoices interfaces.IInvoiceGateway,
	attachments IAttachmentUseCase,
	bus *events.Bus,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments:    payments,
		requests:    requests,
		cards:       cards,
		invoices:    invoices,
		attachments: attachments,
		bus:         bus,
	}
}

// Initiate runs one of the four payment flows against a priced request.
// The amount always comes from the request row, never from the caller.
//
//   - card: reserve and settle synchronously; the row is written only after
//     the gateway settled, so a gateway failure leaves nothing behind.
//   - invoice: create a hosted invoice, record a pending row, hand the
//     redirect URL back; settlement arrives later via ConfirmInvoice.
//   - bank: store the receipt files first, then record a submitted row for
//     manual review. No receipt stored means no row.
//   - cash: record a submitted row carrying the notes.
func (u *PaymentUseCase) Initiate(ctx context.Context, actor entities.Actor, in InitiatePaymentInput) (InitiatePaymentResult, error) {
	if actor.Role != entities.RoleRequester {
		return InitiatePaymentResult{}, ErrRoleNotAllowed
	}

	req, err := u.requests.GetByID(ctx, in.Reference)
	if err != nil {
		return InitiatePaymentResult{}, err
	}
	if req.ID == "" {
		return InitiatePaymentResult{}, ErrRequestNotFound
	}
	if req.Status != entities.RequestStatusPriced || req.Amount <= 0 {
		return InitiatePaymentResult{}, ErrRequestNotPriced
	}

	existing, err := u.payments.ListByReference(ctx, req.ID)
	if err != nil {
		return InitiatePaymentResult{}, err
	}
	for _, p := range existing {
		if p.Status == entities.PaymentStatusSucceeded {
			return InitiatePaymentResult{}, ErrAlreadyPaid
		}
	}

	switch in.Method {
	case entities.PaymentMethodCard:
		return u.initiateCard(ctx, req)
	case entities.PaymentMethodInvoice:
		return u.initiateInvoice(ctx, req)
	case entities.PaymentMethodBank:
		return u.initiateBank(ctx, actor, req, in)
	case entities.PaymentMethodCash:
		return u.initiateCash(ctx, req, in)
	default:
		return InitiatePaymentResult{}, ErrUnsupportedMethod
	}
}

func (u *PaymentUseCase) initiateCard(ctx context.Context, req entities.Request) (InitiatePaymentResult, error) {
	token, err := u.cards.CreateIntent(ctx, req.Amount, req.Currency, req.ID)
	if err != nil {
		log.Printf("[payment][usecase] card intent failed for request %s: %v", req.ID, err)
		return InitiatePaymentResult{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	gatewayRef, err := u.cards.Confirm(ctx, token)
	if err != nil {
		log.Printf("[payment][usecase] card confirmation failed for request %s: %v", req.ID, err)
		return InitiatePaymentResult{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	payment, err := u.record(ctx, req, entities.PaymentMethodCard, entities.PaymentStatusSucceeded, gatewayRef, "")
	if err != nil {
		// The charge settled remotely. Nothing to roll back here; the
		// reconciliation sweep recovers the missing row from the gateway.
		log.Printf("[payment][usecase] settled charge %s for request %s has no local row: %v", gatewayRef, req.ID, err)
		return InitiatePaymentResult{}, fmt.Errorf("%w: %v", ErrSettledUnrecorded, err)
	}
	return InitiatePaymentResult{Payment: payment}, nil
}

func (u *PaymentUseCase) initiateInvoice(ctx context.Context, req entities.Request) (InitiatePaymentResult, error) {
	invoiceRef, redirectURL, err := u.invoices.CreateInvoice(ctx, req.Amount, req.Currency, req.ID)
	if err != nil {
		log.Printf("[payment][usecase] invoice creation failed for request %s: %v", req.ID, err)
		return InitiatePaymentResult{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	payment, err := u.record(ctx, req, entities.PaymentMethodInvoice, entities.PaymentStatusPending, invoiceRef, "")
	if err != nil {
		return InitiatePaymentResult{}, err
	}
	return InitiatePaymentResult{Payment: payment, RedirectURL: redirectURL}, nil
}

func (u *PaymentUseCase) initiateBank(ctx context.Context, actor entities.Actor, req entities.Request, in InitiatePaymentInput) (InitiatePaymentResult, error) {
	if len(in.Files) == 0 {
		return InitiatePaymentResult{}, ErrReceiptRequired
	}
	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		return InitiatePaymentResult{}, ErrNotesRequired
	}

	group, err := u.attachments.ResolveOrCreateGroup(ctx, req.AttachmentGroupKey, requestParentRef(req.ID), actor.ID)
	if err != nil {
		return InitiatePaymentResult{}, err
	}

	uploads := u.attachments.AppendBatch(ctx, group.ID, in.Files, actor.Role, entities.PhasePaymentReceipt)
	if uploads.AllFailed() {
		return InitiatePaymentResult{Uploads: uploads}, ErrReceiptUploadFailed
	}
	if uploads.Partial() {
		log.Printf("[payment][usecase] bank receipts for request %s partially stored: %d ok, %d failed", req.ID, len(uploads.Succeeded), len(uploads.Failed))
	}

	payment, err := u.record(ctx, req, entities.PaymentMethodBank, entities.PaymentStatusSubmitted, "", notes)
	if err != nil {
		return InitiatePaymentResult{Uploads: uploads}, err
	}
	return InitiatePaymentResult{Payment: payment, Uploads: uploads}, nil
}

func (u *PaymentUseCase) initiateCash(ctx context.Context, req entities.Request, in InitiatePaymentInput) (InitiatePaymentResult, error) {
	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		return InitiatePaymentResult{}, ErrNotesRequired
	}

	payment, err := u.record(ctx, req, entities.PaymentMethodCash, entities.PaymentStatusSubmitted, "", notes)
	if err != nil {
		return InitiatePaymentResult{}, err
	}
	return InitiatePaymentResult{Payment: payment}, nil
}

// ConfirmInvoice is called from the webhook seam when the hosted invoice
// was paid. It settles the matching pending invoice payment.
func (u *PaymentUseCase) ConfirmInvoice(ctx context.Context, reference, gatewayRef string) (entities.Payment, error) {
	payments, err := u.payments.ListByReference(ctx, reference)
	if err != nil {
		return entities.Payment{}, err
	}

	for _, p := range payments {
		if p.Method != entities.PaymentMethodInvoice {
			continue
		}
		if gatewayRef != "" && p.GatewayRef != gatewayRef {
			continue
		}
		if p.Status == entities.PaymentStatusSucceeded {
			// Webhook retries are expected; confirming twice is a no-op.
			return p, nil
		}
		if p.Status != entities.PaymentStatusPending {
			continue
		}

		updated, err := u.payments.UpdateStatus(ctx, p.ID, entities.PaymentStatusSucceeded, gatewayRef)
		if err != nil {
			return entities.Payment{}, err
		}
		u.bus.Publish(events.RowChanged{Table: "payments", Key: updated.ID, Op: events.OpUpdate})
		log.Printf("[payment][usecase] invoice payment %s settled for request %s", updated.ID, reference)
		return updated, nil
	}

	return entities.Payment{}, ErrPaymentNotFound
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	payment, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if payment.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return payment, nil
}

func (u *PaymentUseCase) ListByReference(ctx context.Context, reference string) ([]entities.Payment, error) {
	return u.payments.ListByReference(ctx, reference)
}

func (u *PaymentUseCase) record(ctx context.Context, req entities.Request, method entities.PaymentMethod, status entities.PaymentStatus, gatewayRef, notes string) (entities.Payment, error) {
	now := time.Now().UTC()
	payment := entities.Payment{
		ID:         uuid.NewString(),
		Reference:  req.ID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Method:     method,
		Status:     status,
		GatewayRef: gatewayRef,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.payments.Create(ctx, payment)
	if err != nil {
		return entities.Payment{}, err
	}
	u.bus.Publish(events.RowChanged{Table: "payments", Key: created.ID, Op: events.OpInsert})
	return created, nil
}
