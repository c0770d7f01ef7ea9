package routes

import (
	"khadamat_hub/internal/adapter/http/handlers"
	"khadamat_hub/internal/adapter/http/middleware"
	"khadamat_hub/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog   = "/catalog"
	PathSelection = "/selection"
	PathRequests  = "/requests"
	PathOrders    = "/orders"
	PathPayments  = "/payments"
	PathDashboard = "/dashboard"
	PathAdmin     = "/admin"
)

type workflowHandlers struct {
	catalog        *handlers.CatalogHandler
	request        *handlers.RequestHandler
	order          *handlers.OrderHandler
	payment        *handlers.PaymentHandler
	dashboard      *handlers.DashboardHandler
	reconciliation *handlers.ReconciliationHandler
}

func addWorkflowRoutes(rg *gin.RouterGroup, h workflowHandlers) {
	// Catalog and preview are public; the preview only replays policy.
	rg.GET(PathCatalog, h.catalog.ListCatalog)
	rg.POST(PathSelection+"/preview", h.catalog.PreviewSelection)

	// The invoice processor calls back unauthenticated; the handler only
	// settles payments it already knows about.
	rg.POST(PathPayments+"/webhook/invoice", h.payment.InvoiceWebhook)

	authed := rg.Group("", middleware.RequireAuth())

	requests := authed.Group(PathRequests)
	{
		requests.POST("", h.request.SubmitRequest)
		requests.GET("", h.request.ListMyRequests)
		requests.GET("/:id", h.request.GetRequest)
		requests.GET("/:id/attachments", h.request.ListRequestAttachments)
		requests.POST("/:id/attachments", h.request.UploadRequestAttachments)
	}

	orders := authed.Group(PathOrders)
	{
		orders.POST("", middleware.RequireRole(entities.RoleAdmin), h.order.MaterializeOrder)
		orders.GET("", h.order.ListMyOrders)
		orders.GET("/:id", h.order.GetOrder)
		orders.POST("/:id/accept", h.order.AcceptOrder)
		orders.POST("/:id/reject", h.order.RejectOrder)
		orders.POST("/:id/start", h.order.StartOrder)
		orders.POST("/:id/complete", h.order.CompleteOrder)
		orders.POST("/:id/cancel", h.order.CancelOrder)
	}

	payments := authed.Group(PathPayments)
	{
		payments.POST("", h.payment.InitiatePayment)
		payments.GET("", h.payment.ListPayments)
		payments.GET("/:id", h.payment.GetPayment)
	}

	authed.GET(PathDashboard, middleware.RequireRole(entities.RoleAdmin), h.dashboard.GetDashboard)

	admin := authed.Group(PathAdmin, middleware.RequireRole(entities.RoleAdmin))
	{
		admin.POST("/reconcile", h.reconciliation.Reconcile)
	}
}
