package entities

import "time"

// PaymentMethod selects the settlement branch. Card settles synchronously;
// invoice confirms out-of-band; bank and cash stay submitted until a human
// reviewer moves them.

type PaymentMethod string

const (
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodInvoice PaymentMethod = "invoice"
	PaymentMethodBank    PaymentMethod = "bank"
	PaymentMethodCash    PaymentMethod = "cash"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSubmitted PaymentStatus = "submitted"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is one settlement attempt against a request (or its order).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reference-index): reference
//
// GatewayRef holds the external processor's transaction id (card/invoice
// methods only). Notes carry the requester's free text for manual methods.
type Payment struct {
	ID         string        `json:"id"`
	Reference  string        `json:"reference"`
	Amount     float64       `json:"amount"`
	Currency   string        `json:"currency"`
	Method     PaymentMethod `json:"method"`
	Status     PaymentStatus `json:"status"`
	GatewayRef string        `json:"gateway_ref,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
