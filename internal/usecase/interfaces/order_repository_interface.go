package interfaces

import (
	"context"
	"time"

	"khadamat_hub/internal/domain/entities"
)

// OrderPatch carries the optional date fields a transition may stamp.
type OrderPatch struct {
	StartDate   *time.Time
	DueDate     *time.Time
	CompletedAt *time.Time
}

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// UpdateStatus is a compare-and-set: the write only lands when the stored
// status still equals expected, otherwise ErrConflict is returned. This is
// what keeps two racing actions from both "winning" a transition.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Order, error)
	ListByProvider(ctx context.Context, providerID string) ([]entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatus]int, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.OrderStatus, patch OrderPatch) (entities.Order, error)
}
