package handlers

import (
	"net/http"

	response "khadamat_hub/internal/adapter/http/dto/response"
	"khadamat_hub/internal/usecase"
	"khadamat_hub/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the cached status breakdown.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard godoc
// @Summary Status counts for requests and orders
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.DashboardResponse
// @Security Bearer
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snap, err := h.usecase.Snapshot(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(snap))
}
