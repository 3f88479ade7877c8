package models

import "github.com/google/uuid"

type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"index" json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	ImageURL string    `json:"image_url"`
}

// CustomerField is the projection used to populate selection lists.
type CustomerField struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CustomerTotals is one row of the customers table aggregate: a customer
// joined against its invoices with per-status amount sums in cents.
type CustomerTotals struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  int64     `json:"total_pending"`
	TotalPaid     int64     `json:"total_paid"`
}
