package handlers

import (
	"net/http"

	"khadamat_hub/internal/usecase"
	"khadamat_hub/pkg"

	"github.com/gin-gonic/gin"
)

// ReconciliationHandler exposes the manual reconciliation trigger; the
// same sweep also runs on a timer.

type ReconciliationHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewReconciliationHandler(uc usecase.IReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc}
}

// Reconcile godoc
// @Summary Recover settled card charges missing a local payment row
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]int
// @Security Bearer
// @Router /admin/reconcile [post]
func (h *ReconciliationHandler) Reconcile(c *gin.Context) {
	recovered, err := h.usecase.ReconcileOnce(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"recovered": recovered})
}
