package entities

import "time"

// RequestStatus is fixed at creation time by the selection kind. It is not a
// state machine: Priced only gates whether the payment flow runs before an
// order can be materialized.

type RequestStatus string

const (
	RequestStatusPending RequestStatus = "pending"
	RequestStatusPriced  RequestStatus = "priced"
)

// Request is a requester submission persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (requester_id-index): requester_id
//   - GSI2 (status-index): status
//
// ServiceID is the primary offering (the priced one, or the first selected);
// ServiceIDs carries the full ordered selection for bundled submissions.
// AttachmentGroupKey is owned exclusively by the request and correlates all
// evidence uploads across submission phases.
type Request struct {
	ID                 string        `json:"id"`
	RequesterID        string        `json:"requester_id"`
	ServiceID          string        `json:"service_id"`
	ServiceIDs         []string      `json:"service_ids"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	Status             RequestStatus `json:"status"`
	Amount             float64       `json:"amount"`
	Currency           string        `json:"currency"`
	AttachmentGroupKey string        `json:"attachment_group_key"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
