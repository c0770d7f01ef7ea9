package handlers

import (
	"errors"
	"net/http"

	request "khadamat_hub/internal/adapter/http/dto/request"
	response "khadamat_hub/internal/adapter/http/dto/response"
	"khadamat_hub/internal/usecase"
	"khadamat_hub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPreviewPayload = pkg.NewDomainErrorSimple("INVALID_PREVIEW_INPUT", "Invalid selection preview payload", http.StatusBadRequest)

// CatalogHandler serves the service catalog and the selection preview.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListCatalog godoc
// @Summary List active service offerings
// @Tags catalog
// @Produce json
// @Success 200 {array} response.ServiceOfferingResponse
// @Router /catalog [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	offerings, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		appErr := mapSelectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOfferings(offerings))
}

// PreviewSelection godoc
// @Summary Replay a click sequence through the selection policy
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} response.SelectionPreviewResponse
// @Router /selection/preview [post]
func (h *CatalogHandler) PreviewSelection(c *gin.Context) {
	var payload request.SelectionPreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPreviewPayload.HTTPStatus, errInvalidPreviewPayload.ToHTTPError())
		return
	}

	clicks := make([]usecase.SelectionClick, 0, len(payload.Clicks))
	for _, click := range payload.Clicks {
		clicks = append(clicks, usecase.SelectionClick{OfferingID: click.OfferingID, Checked: click.Checked})
	}

	result, err := h.usecase.PreviewSelection(c.Request.Context(), clicks)
	if err != nil {
		appErr := mapSelectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SelectionPreviewResponse{
		Selection: result.Set,
		Kind:      string(result.Kind),
		Amount:    result.Amount,
		Offerings: response.FromOfferings(result.Offerings),
	})
}

func mapSelectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptySelection):
		return pkg.NewDomainErrorSimple("EMPTY_SELECTION", "At least one service must be selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSelection):
		return pkg.NewDomainErrorSimple("INVALID_SELECTION", "Selected services cannot be combined", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownOffering):
		return pkg.NewDomainErrorSimple("UNKNOWN_OFFERING", "Selection references an unknown or inactive service", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
