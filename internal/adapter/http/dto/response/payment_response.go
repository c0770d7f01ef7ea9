package response

import (
	"time"

	"khadamat_hub/internal/domain/entities"
)

type PaymentResponse struct {
	ID         string    `json:"id"`
	Reference  string    `json:"reference"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Method     string    `json:"method"`
	Status     string    `json:"status"`
	GatewayRef string    `json:"gateway_ref,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		Reference:  p.Reference,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Method:     string(p.Method),
		Status:     string(p.Status),
		GatewayRef: p.GatewayRef,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// InitiatePaymentResponse carries the recorded payment plus flow-specific
// extras: the invoice redirect URL, or the receipt upload outcomes.
type InitiatePaymentResponse struct {
	Payment     PaymentResponse      `json:"payment"`
	RedirectURL string               `json:"redirect_url,omitempty"`
	Uploads     *UploadBatchResponse `json:"uploads,omitempty"`
}
