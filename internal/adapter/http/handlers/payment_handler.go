package handlers

import (
	"errors"
	"net/http"

	request "khadamat_hub/internal/adapter/http/dto/request"
	response "khadamat_hub/internal/adapter/http/dto/response"
	"khadamat_hub/internal/adapter/http/middleware"
	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/usecase"
	"khadamat_hub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
	errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_INPUT", "Invalid webhook payload", http.StatusBadRequest)
	errMissingReference      = pkg.NewDomainErrorSimple("MISSING_REFERENCE", "Query parameter 'reference' is required", http.StatusBadRequest)
)

// PaymentHandler handles payment initiation, reads, and the invoice
// settlement webhook.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// InitiatePayment godoc
// @Summary Pay a priced request via card, invoice, bank transfer or cash
// @Tags payments
// @Accept mpfd
// @Produce json
// @Success 201 {object} response.InitiatePaymentResponse
// @Security Bearer
// @Router /payments [post]
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var form request.InitiatePaymentForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	if err := request.Validate(form); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	files, err := readUploads(c)
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Initiate(c.Request.Context(), actor, usecase.InitiatePaymentInput{
		Reference: form.Reference,
		Method:    entities.PaymentMethod(form.Method),
		Notes:     form.Notes,
		Files:     files,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.InitiatePaymentResponse{
		Payment:     response.FromPayment(result.Payment),
		RedirectURL: result.RedirectURL,
	}
	if len(result.Uploads.Succeeded) > 0 || len(result.Uploads.Failed) > 0 {
		uploads := response.FromUploadBatch(result.Uploads)
		resp.Uploads = &uploads
	}
	c.JSON(http.StatusCreated, resp)
}

// InvoiceWebhook godoc
// @Summary Settlement callback from the invoice processor
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} response.PaymentResponse
// @Router /payments/webhook/invoice [post]
func (h *PaymentHandler) InvoiceWebhook(c *gin.Context) {
	var payload request.InvoiceWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	if !payload.Settled() {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	payment, err := h.usecase.ConfirmInvoice(c.Request.Context(), payload.ExternalReference, payload.GatewayRef)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// GetPayment godoc
// @Summary Fetch one payment
// @Tags payments
// @Produce json
// @Success 200 {object} response.PaymentResponse
// @Security Bearer
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// ListPayments godoc
// @Summary List the payments recorded against a request
// @Tags payments
// @Produce json
// @Success 200 {array} response.PaymentResponse
// @Security Bearer
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.JSON(errMissingReference.HTTPStatus, errMissingReference.ToHTTPError())
		return
	}

	payments, err := h.usecase.ListByReference(c.Request.Context(), reference)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRoleNotAllowed):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only requesters can initiate payments", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotPriced):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_PRICED", "Request has no amount to pay", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Request already has a settled payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnsupportedMethod):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_METHOD", "Unsupported payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReceiptRequired):
		return pkg.NewDomainErrorSimple("RECEIPT_REQUIRED", "Bank transfer needs at least one receipt file", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotesRequired):
		return pkg.NewDomainErrorSimple("NOTES_REQUIRED", "Payment notes are required for this method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReceiptUploadFailed):
		return pkg.NewDomainErrorSimple("RECEIPT_UPLOAD_FAILED", "No receipt file could be stored", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway unavailable", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSettledUnrecorded):
		return pkg.NewDomainErrorSimple("PAYMENT_RECONCILIATION_PENDING", "Payment settled but is pending reconciliation", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
