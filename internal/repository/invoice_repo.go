package repository

import (
	"context"
	"errors"
	"log/slog"

	"finance-dashboard-backend/internal/apperr"
	"finance-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// dataErr logs the underlying failure and re-signals it as a DataAccessError
// so callers see a domain message rather than driver internals.
func dataErr(op string, err error) error {
	slog.Error("database query failed", "op", op, "error", err)
	return &apperr.DataAccessError{Op: op, Err: err}
}

// Latest returns the n most recently dated invoices with their customers.
func (r *InvoiceRepository) Latest(ctx context.Context, n int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("date DESC").
		Limit(n).
		Find(&invoices).Error
	if err != nil {
		return nil, dataErr("fetch latest invoices", err)
	}
	return invoices, nil
}

// FetchFiltered returns one page of invoices matching the search query,
// joined with their customers, newest first.
func (r *InvoiceRepository) FetchFiltered(ctx context.Context, query string, page int) ([]models.Invoice, error) {
	f := invoiceSearchFilter(query)
	offset := (page - 1) * InvoicesPerPage

	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where(f.cond, f.args...).
		Order("invoices.date DESC").
		Limit(InvoicesPerPage).
		Offset(offset).
		Find(&invoices).Error
	if err != nil {
		return nil, dataErr("fetch filtered invoices", err)
	}
	return invoices, nil
}

// CountFiltered counts the rows the same filter matches.
func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	f := invoiceSearchFilter(query)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where(f.cond, f.args...).
		Count(&count).Error
	if err != nil {
		return 0, dataErr("count filtered invoices", err)
	}
	return count, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, dataErr("fetch invoice by id", err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return dataErr("create invoice", err)
	}
	return nil
}

// Update replaces customer, amount and status on the matching row. ID and
// date are immutable after creation.
func (r *InvoiceRepository) Update(ctx context.Context, id, customerID uuid.UUID, amount int64, status string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amount,
			"status":      status,
		})
	if res.Error != nil {
		return dataErr("update invoice", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return dataErr("delete invoice", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Invoice{}).Count(&count).Error
	if err != nil {
		return 0, dataErr("count invoices", err)
	}
	return count, nil
}

// SumAmountByStatus totals invoice amounts (cents) for one status,
// defaulting to 0 when no rows match.
func (r *InvoiceRepository) SumAmountByStatus(ctx context.Context, status string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, dataErr("sum invoice amounts", err)
	}
	return sum, nil
}
