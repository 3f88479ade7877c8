package repository

import (
	"context"

	"finance-dashboard-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// All returns every customer's id and name, ordered by name.
func (r *CustomerRepository) All(ctx context.Context) ([]models.CustomerField, error) {
	var fields []models.CustomerField
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("id, name").
		Order("name ASC").
		Scan(&fields).Error
	if err != nil {
		return nil, dataErr("fetch customers", err)
	}
	return fields, nil
}

// FilteredWithTotals returns customers whose name or email contains the
// query, each with invoice count and pending/paid amount sums. Customers
// with no invoices get zero sums via the left join.
func (r *CustomerRepository) FilteredWithTotals(ctx context.Context, query string) ([]models.CustomerTotals, error) {
	like := "%" + query + "%"

	var rows []models.CustomerTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT
		  customers.id,
		  customers.name,
		  customers.email,
		  customers.image_url,
		  COUNT(invoices.id) AS total_invoices,
		  COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
		  COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE customers.name ILIKE ? OR customers.email ILIKE ?
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC`, like, like).
		Scan(&rows).Error
	if err != nil {
		return nil, dataErr("fetch filtered customers", err)
	}
	return rows, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error
	if err != nil {
		return 0, dataErr("count customers", err)
	}
	return count, nil
}

// UpsertByEmail inserts the customer, leaving any existing row with the
// same email untouched. Used by the seed tool.
func (r *CustomerRepository) UpsertByEmail(ctx context.Context, customer *models.Customer) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(customer).Error
	if err != nil {
		return dataErr("upsert customer", err)
	}
	return nil
}
