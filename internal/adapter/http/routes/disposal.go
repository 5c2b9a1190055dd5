package routes

import (
	"ecotech/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog  = "/catalog"
	PathUsers    = "/users"
	PathPoints   = "/points"
	PathRequests = "/requests"
	PathReports  = "/reports"
	PathPayments = "/payments"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/categories", h.ListCategories)
		catalog.GET("/treatments", h.ListTreatments)
	}
}

func addUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.GET("/:id/notifications", h.Notifications)
		users.PATCH("/:id/active", h.SetActive)
		users.PATCH("/:id/quota/reset", h.ResetMonthlyQuota)
	}
}

func addPointRoutes(rg *gin.RouterGroup, h *handlers.PointHandler) {
	points := rg.Group(PathPoints)
	{
		points.POST("", h.CreatePoint)
		points.GET("", h.ListPoints)
		points.GET("/:id", h.FindPoint)
		points.PATCH("/:id/active", h.SetActive)
	}
}

func addRequestRoutes(rg *gin.RouterGroup, h *handlers.DisposalRequestHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListRequests)
		requests.GET("/:id", h.GetRequest)
		requests.GET("/:id/cost", h.TreatmentCost)

		requests.POST("/:id/items", h.AddItem)
		requests.PATCH("/:id/items/:item_id", h.SetItemQuantity)
		requests.DELETE("/:id/items/:item_id", h.RemoveItem)

		requests.PATCH("/:id/point", h.AssignPoint)
		requests.PATCH("/:id/treatment", h.AssignTreatment)
		requests.PATCH("/:id/schedule", h.SchedulePickup)
		requests.PATCH("/:id/advance", h.Advance)
		requests.PATCH("/:id/cancel", h.Cancel)
	}
}

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.POST("", h.BuildReport)
		reports.GET("", h.ListReports)
		reports.GET("/:id", h.GetReport)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.TreatmentPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:request_id", h.CreatePaymentByRequestID)
		payments.GET("/:request_id", h.GetPaymentByRequestID)
	}
}
