package request

import "time"

type MaterializeOrderRequest struct {
	RequestID  string     `json:"request_id" binding:"required"`
	ProviderID string     `json:"provider_id" binding:"required"`
	DueDate    *time.Time `json:"due_date"`
}

// OrderActionRequest is the optional body of a lifecycle action. Only the
// start action reads the due date.
type OrderActionRequest struct {
	DueDate *time.Time `json:"due_date"`
}
