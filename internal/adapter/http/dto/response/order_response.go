package response

import (
	"time"

	"khadamat_hub/internal/domain/entities"
)

type OrderResponse struct {
	ID          string     `json:"id"`
	RequestID   string     `json:"request_id"`
	ProviderID  string     `json:"provider_id"`
	Status      string     `json:"status"`
	Expired     bool       `json:"expired"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// FromOrder renders an order with its expiry derived at read time; expiry
// is never a stored status.
func FromOrder(o entities.Order, now time.Time) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		RequestID:   o.RequestID,
		ProviderID:  o.ProviderID,
		Status:      string(o.Status),
		Expired:     o.Expired(now),
		StartDate:   o.StartDate,
		DueDate:     o.DueDate,
		CompletedAt: o.CompletedAt,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order, now time.Time) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o, now))
	}
	return out
}
