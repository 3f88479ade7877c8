package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "finance-dashboard-backend/internal/handlers"
	"finance-dashboard-backend/internal/repository"
	"finance-dashboard-backend/internal/services/dashboard"
	"finance-dashboard-backend/internal/viewcache"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	views := viewcache.New()

	dashboardService := dashboard.NewService(invoiceRepo, customerRepo, revenueRepo, views)

	h := handler.NewDashboardHandler(dashboardService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	revenues := api.Group("/revenues")
	revenues.GET("", h.GetRevenues)
	revenues.GET("/months", h.GetRevenueMonths)

	invoices := api.Group("/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.GET("/latest", h.GetLatestInvoices)
		invoices.GET("/pages", h.GetInvoicePages)
		invoices.GET("/:id", h.GetInvoiceByID)
		invoices.POST("", h.CreateInvoice)
		invoices.PUT("/:id", h.UpdateInvoice)
		invoices.DELETE("/:id", h.DeleteInvoice)
	}

	customers := api.Group("/customers")
	customers.GET("", h.GetCustomers)
	customers.GET("/filtered", h.GetFilteredCustomers)

	api.GET("/dashboard/cards", h.GetCardData)
}
