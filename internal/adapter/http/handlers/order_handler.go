package handlers

import (
	"errors"
	"net/http"
	"time"

	request "khadamat_hub/internal/adapter/http/dto/request"
	response "khadamat_hub/internal/adapter/http/dto/response"
	"khadamat_hub/internal/adapter/http/middleware"
	"khadamat_hub/internal/domain/entities"
	"khadamat_hub/internal/usecase"
	"khadamat_hub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles order materialization and lifecycle actions.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// MaterializeOrder godoc
// @Summary Create the work order for a viable request
// @Tags orders
// @Accept json
// @Produce json
// @Success 201 {object} response.OrderResponse
// @Security Bearer
// @Router /orders [post]
func (h *OrderHandler) MaterializeOrder(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var payload request.MaterializeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Materialize(c.Request.Context(), actor, usecase.MaterializeOrderInput{
		RequestID:  payload.RequestID,
		ProviderID: payload.ProviderID,
		DueDate:    payload.DueDate,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order, time.Now().UTC()))
}

func (h *OrderHandler) AcceptOrder(c *gin.Context)   { h.applyAction(c, entities.OrderActionAccept) }
func (h *OrderHandler) RejectOrder(c *gin.Context)   { h.applyAction(c, entities.OrderActionReject) }
func (h *OrderHandler) StartOrder(c *gin.Context)    { h.applyAction(c, entities.OrderActionStart) }
func (h *OrderHandler) CompleteOrder(c *gin.Context) { h.applyAction(c, entities.OrderActionComplete) }
func (h *OrderHandler) CancelOrder(c *gin.Context)   { h.applyAction(c, entities.OrderActionCancel) }

func (h *OrderHandler) applyAction(c *gin.Context, action entities.OrderAction) {
	actor := middleware.ActorFromContext(c)

	// The body is optional; only start reads a due date from it.
	var payload request.OrderActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
			return
		}
	}

	order, err := h.usecase.Apply(c.Request.Context(), actor, c.Param("id"), usecase.ApplyActionInput{
		Action:  action,
		DueDate: payload.DueDate,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order, time.Now().UTC()))
}

// GetOrder godoc
// @Summary Fetch one order
// @Tags orders
// @Produce json
// @Success 200 {object} response.OrderResponse
// @Security Bearer
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order, time.Now().UTC()))
}

// ListMyOrders godoc
// @Summary List the authenticated provider's orders
// @Tags orders
// @Produce json
// @Success 200 {array} response.OrderResponse
// @Security Bearer
// @Router /orders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	orders, err := h.usecase.ListByProvider(c.Request.Context(), actor.ID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders, time.Now().UTC()))
}

func mapOrderError(err error) *pkg.AppError {
	var transition *entities.InvalidTransitionError
	switch {
	case errors.As(err, &transition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", transition.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrRoleNotAllowed):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor role cannot perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotAssignedProvider):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Order is assigned to another provider", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUIRED", "Priced request has no accepted payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "Request already has an order", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderStateChanged):
		return pkg.NewDomainErrorSimple("ORDER_STATE_CHANGED", "Order changed concurrently, retry with fresh state", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
