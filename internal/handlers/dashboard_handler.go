package handler

import (
	"errors"
	"net/http"

	"finance-dashboard-backend/internal/apperr"
	"finance-dashboard-backend/internal/services/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(s *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// fail translates a repository/service failure into the JSON error
// envelope: 404 for a missing row, otherwise a generic 500 with no
// internal detail.
func fail(c *gin.Context, err error, title string) {
	status := http.StatusInternalServerError
	if errors.Is(err, apperr.ErrNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"statusCode": status, "title": title})
}

func (h *DashboardHandler) GetRevenues(c *gin.Context) {
	revenues, err := h.service.FetchRevenue(c.Request.Context())
	if err != nil {
		fail(c, err, "Error getting the revenues")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": revenues})
}

// GetRevenueMonths projects only the month labels and clears the session
// cookie alongside the response.
func (h *DashboardHandler) GetRevenueMonths(c *gin.Context) {
	months, err := h.service.FetchRevenueMonths(c.Request.Context())
	if err != nil {
		fail(c, err, "Error getting the revenues")
		return
	}
	c.SetCookie("session", "", 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"data": months})
}

func (h *DashboardHandler) GetLatestInvoices(c *gin.Context) {
	latest, err := h.service.FetchLatestInvoices(c.Request.Context())
	if err != nil {
		fail(c, err, "Error getting the latest invoices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": latest})
}

func (h *DashboardHandler) GetCardData(c *gin.Context) {
	cards, err := h.service.FetchCardData(c.Request.Context())
	if err != nil {
		fail(c, err, "Error getting the card data")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cards})
}

// listParams is the explicit allow-list of filter/pagination parameters.
// Anything else on the query string is ignored.
type listParams struct {
	Query string `form:"query"`
	Page  int    `form:"page,default=1"`
}

func (h *DashboardHandler) ListInvoices(c *gin.Context) {
	var params listParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if params.Page < 1 {
		params.Page = 1
	}

	invoices, err := h.service.FetchFilteredInvoices(c.Request.Context(), params.Query, params.Page)
	if err != nil {
		fail(c, err, "Error getting the invoices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoices})
}

func (h *DashboardHandler) GetInvoicePages(c *gin.Context) {
	pages, err := h.service.FetchInvoicesPages(c.Request.Context(), c.Query("query"))
	if err != nil {
		fail(c, err, "Error getting the total number of invoices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pages})
}

func (h *DashboardHandler) GetInvoiceByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	invoice, err := h.service.FetchInvoiceByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err, "Error getting the invoice")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": invoice})
}

func (h *DashboardHandler) GetCustomers(c *gin.Context) {
	customers, err := h.service.FetchCustomers(c.Request.Context())
	if err != nil {
		fail(c, err, "Error getting the customers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customers})
}

func (h *DashboardHandler) GetFilteredCustomers(c *gin.Context) {
	customers, err := h.service.FetchFilteredCustomers(c.Request.Context(), c.Query("query"))
	if err != nil {
		fail(c, err, "Error getting the customer table")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customers})
}
