package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/events"
	"khadamat_hub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderAlreadyExists  = errors.New("request already has an order")
	ErrPaymentRequired     = errors.New("priced request has no accepted payment")
	ErrNotAssignedProvider = errors.New("actor is not the provider assigned to this order")
	ErrOrderStateChanged   = errors.New("order state changed concurrently, retry with fresh state")
)

type MaterializeOrderInput struct {
	RequestID  string
	ProviderID string
	DueDate    *time.Time
}

type ApplyActionInput struct {
	Action  entities.OrderAction
	DueDate *time.Time
}

type IOrderUseCase interface {
	Materialize(ctx context.Context, actor entities.Actor, in MaterializeOrderInput) (entities.Order, error)
	Apply(ctx context.Context, actor entities.Actor, orderID string, in ApplyActionInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByProvider(ctx context.Context, providerID string) ([]entities.Order, error)
}

type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	requests interfaces.IRequestRepository
	payments interfaces.IPaymentRepository
	bus      *events.Bus
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, requests interfaces.IRequestRepository, payments interfaces.IPaymentRepository, bus *events.Bus) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		requests: requests,
		payments: payments,
		bus:      bus,
	}
}

// Materialize turns a viable request into its single work order. A priced
// request is viable once a payment for it was settled or handed in for
// review; a free request is viable immediately. The one-to-one link is
// enforced both by the pre-check and by the conditional insert underneath.
func (u *OrderUseCase) Materialize(ctx context.Context, actor entities.Actor, in MaterializeOrderInput) (entities.Order, error) {
	if actor.Role != entities.RoleAdmin {
		return entities.Order{}, ErrRoleNotAllowed
	}

	req, err := u.requests.GetByID(ctx, in.RequestID)
	if err != nil {
		return entities.Order{}, err
	}
	if req.ID == "" {
		return entities.Order{}, ErrRequestNotFound
	}

	if req.Status == entities.RequestStatusPriced {
		accepted, err := u.hasAcceptedPayment(ctx, req.ID)
		if err != nil {
			return entities.Order{}, err
		}
		if !accepted {
			return entities.Order{}, ErrPaymentRequired
		}
	}

	existing, err := u.orders.GetByRequestID(ctx, req.ID)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.ID != "" {
		return entities.Order{}, ErrOrderAlreadyExists
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:         uuid.NewString(),
		RequestID:  req.ID,
		ProviderID: in.ProviderID,
		Status:     entities.OrderStatusWaitingApproval,
		DueDate:    in.DueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Order{}, ErrOrderAlreadyExists
		}
		return entities.Order{}, err
	}

	u.bus.Publish(events.RowChanged{Table: "orders", Key: created.ID, Op: events.OpInsert})
	log.Printf("[order][usecase] order %s materialized from request %s for provider %s", created.ID, req.ID, in.ProviderID)
	return created, nil
}

// Apply runs one lifecycle action through the transition table. The write
// is a compare-and-set against the status the actor saw, so two concurrent
// actions cannot both land.
func (u *OrderUseCase) Apply(ctx context.Context, actor entities.Actor, orderID string, in ApplyActionInput) (entities.Order, error) {
	order, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	required, ok := entities.RoleForAction(in.Action)
	if !ok || actor.Role != required {
		return entities.Order{}, ErrRoleNotAllowed
	}
	if required == entities.RoleProvider && actor.ID != order.ProviderID {
		return entities.Order{}, ErrNotAssignedProvider
	}

	next, err := entities.NextOrderStatus(order.Status, in.Action)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	var patch interfaces.OrderPatch
	switch in.Action {
	case entities.OrderActionStart:
		patch.StartDate = &now
		if in.DueDate != nil {
			patch.DueDate = in.DueDate
		}
	case entities.OrderActionComplete:
		patch.CompletedAt = &now
	}

	updated, err := u.orders.UpdateStatus(ctx, order.ID, order.Status, next, patch)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Order{}, ErrOrderStateChanged
		}
		return entities.Order{}, err
	}

	u.bus.Publish(events.RowChanged{Table: "orders", Key: updated.ID, Op: events.OpUpdate})
	log.Printf("[order][usecase] order %s %s -> %s by %s", updated.ID, order.Status, updated.Status, actor.ID)
	return updated, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *OrderUseCase) ListByProvider(ctx context.Context, providerID string) ([]entities.Order, error) {
	return u.orders.ListByProvider(ctx, providerID)
}

func (u *OrderUseCase) hasAcceptedPayment(ctx context.Context, requestID string) (bool, error) {
	payments, err := u.payments.ListByReference(ctx, requestID)
	if err != nil {
		return false, err
	}
	for _, p := range payments {
		if p.Status == entities.PaymentStatusSucceeded || p.Status == entities.PaymentStatusSubmitted {
			return true, nil
		}
	}
	return false, nil
}
