package response

import (
	"time"

	"khadamat_hub/internal/domain/entities"
)

type RequestResponse struct {
	ID                 string    `json:"id"`
	RequesterID        string    `json:"requester_id"`
	ServiceID          string    `json:"service_id"`
	ServiceIDs         []string  `json:"service_ids"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	Status             string    `json:"status"`
	Amount             float64   `json:"amount"`
	Currency           string    `json:"currency"`
	AttachmentGroupKey string    `json:"attachment_group_key,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromRequest(r entities.Request) RequestResponse {
	return RequestResponse{
		ID:                 r.ID,
		RequesterID:        r.RequesterID,
		ServiceID:          r.ServiceID,
		ServiceIDs:         r.ServiceIDs,
		Title:              r.Title,
		Description:        r.Description,
		Status:             string(r.Status),
		Amount:             r.Amount,
		Currency:           r.Currency,
		AttachmentGroupKey: r.AttachmentGroupKey,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func FromRequests(requests []entities.Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromRequest(r))
	}
	return out
}

// SubmitRequestResponse pairs the created request with the per-file
// outcome of its attachment batch.
type SubmitRequestResponse struct {
	Request RequestResponse     `json:"request"`
	Uploads UploadBatchResponse `json:"uploads"`
}
