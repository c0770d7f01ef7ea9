package usecase

import (
	"context"
	"log"
	"time"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/events"
	"khadamat_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IReconciliationUseCase recovers card charges that settled at the gateway
// but never got a local payment row, which happens when the local write
// after settlement fails.

type IReconciliationUseCase interface {
	ReconcileOnce(ctx context.Context) (recovered int, err error)
}

type ReconciliationUseCase struct {
	requests interfaces.IRequestRepository
	payments interfaces.IPaymentRepository
	cards    interfaces.ICardGateway
	bus      *events.Bus
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(requests interfaces.IRequestRepository, payments interfaces.IPaymentRepository, cards interfaces.ICardGateway, bus *events.Bus) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		requests: requests,
		payments: payments,
		cards:    cards,
		bus:      bus,
	}
}

// ReconcileOnce sweeps priced requests with no locally settled payment and
// asks the card gateway whether a charge for them settled anyway. Each hit
// gets its missing payment row written back. Per-request failures are
// logged and skipped so one bad lookup never stalls the sweep.
func (u *ReconciliationUseCase) ReconcileOnce(ctx context.Context) (int, error) {
	priced, err := u.requests.ListByStatus(ctx, entities.RequestStatusPriced)
	if err != nil {
		return 0, err
	}

	recovered := 0
	for _, req := range priced {
		settled, err := u.locallySettled(ctx, req.ID)
		if err != nil {
			log.Printf("[reconciliation][usecase] payment lookup failed for request %s: %v", req.ID, err)
			continue
		}
		if settled {
			continue
		}

		gatewayRef, found, err := u.cards.FindSettledByReference(ctx, req.ID)
		if err != nil {
			log.Printf("[reconciliation][usecase] gateway lookup failed for request %s: %v", req.ID, err)
			continue
		}
		if !found {
			continue
		}

		now := time.Now().UTC()
		payment := entities.Payment{
			ID:         uuid.NewString(),
			Reference:  req.ID,
			Amount:     req.Amount,
			Currency:   req.Currency,
			Method:     entities.PaymentMethodCard,
			Status:     entities.PaymentStatusSucceeded,
			GatewayRef: gatewayRef,
			Notes:      "recovered by reconciliation",
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		created, err := u.payments.Create(ctx, payment)
		if err != nil {
			log.Printf("[reconciliation][usecase] recovery write failed for request %s: %v", req.ID, err)
			continue
		}

		u.bus.Publish(events.RowChanged{Table: "payments", Key: created.ID, Op: events.OpInsert})
		log.Printf("[reconciliation][usecase] recovered settled charge %s for request %s", gatewayRef, req.ID)
		recovered++
	}

	return recovered, nil
}

// Run sweeps on the given interval until the context is cancelled.
func (u *ReconciliationUseCase) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[reconciliation][usecase] sweep every %s", interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := u.ReconcileOnce(ctx); err != nil {
				log.Printf("[reconciliation][usecase] sweep failed: %v", err)
			}
		}
	}
}

func (u *ReconciliationUseCase) locallySettled(ctx context.Context, requestID string) (bool, error) {
	payments, err := u.payments.ListByReference(ctx, requestID)
	if err != nil {
		return false, err
	}
	for _, p := range payments {
		if p.Status == entities.PaymentStatusSucceeded {
			return true, nil
		}
	}
	return false, nil
}
