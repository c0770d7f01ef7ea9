package request

// InitiatePaymentForm is the non-file part of the multipart payment
// initiation. Bank transfers carry receipt files under the "files" field.
type InitiatePaymentForm struct {
	Reference string `form:"reference" validate:"required"`
	Method    string `form:"method" validate:"required,oneof=card invoice bank cash"`
	Notes     string `form:"notes" validate:"max=2000"`
}

// InvoiceWebhookRequest is the callback posted by the invoice processor
// when a hosted invoice changes state.
type InvoiceWebhookRequest struct {
	ExternalReference string `json:"external_reference" binding:"required"`
	GatewayRef        string `json:"gateway_ref"`
	Status            string `json:"status" binding:"required"`
}

// Settled reports whether the webhook announces a completed payment.
// Anything else is acknowledged and ignored.
func (r InvoiceWebhookRequest) Settled() bool {
	return r.Status == "approved" || r.Status == "paid"
}
