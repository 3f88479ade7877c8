package handler

import (
	"errors"
	"net/http"

	"finance-dashboard-backend/internal/apperr"
	"finance-dashboard-backend/internal/services/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// bindFields maps a gin binding failure onto per-field messages so the form
// can display them next to the offending inputs.
func bindFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "is required"
		default:
			fields[fe.Field()] = "is invalid"
		}
	}
	return fields
}

// actionError answers a failed form action: 400 with field detail for
// validation failures, 404 for a missing invoice, 500 otherwise.
func actionError(c *gin.Context, err error, title string) {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
		return
	}
	fail(c, err, title)
}

// CreateInvoice handles the create form action: validate, persist, then
// redirect to the invoices list.
func (h *DashboardHandler) CreateInvoice(c *gin.Context) {
	var in dashboard.InvoiceInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": bindFields(err)})
		return
	}

	if _, err := h.service.CreateInvoice(c.Request.Context(), in); err != nil {
		actionError(c, err, "Error creating the invoice")
		return
	}

	c.Redirect(http.StatusSeeOther, dashboard.InvoicesViewPath)
}

// UpdateInvoice handles the update form action: full replace of customer,
// amount and status on the identified invoice.
func (h *DashboardHandler) UpdateInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	var in dashboard.InvoiceInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": bindFields(err)})
		return
	}

	if err := h.service.UpdateInvoice(c.Request.Context(), id, in); err != nil {
		actionError(c, err, "Error updating the invoice")
		return
	}

	c.Redirect(http.StatusSeeOther, dashboard.InvoicesViewPath)
}

// DeleteInvoice removes the invoice and invalidates the list view; no
// redirect on delete.
func (h *DashboardHandler) DeleteInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	if err := h.service.DeleteInvoice(c.Request.Context(), id); err != nil {
		actionError(c, err, "Error deleting the invoice")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}
