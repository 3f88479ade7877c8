package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

type Invoice struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;index" json:"customer_id"`
	Customer   Customer       `gorm:"foreignKey:CustomerID" json:"customer"`
	Amount     int64          `gorm:"index" json:"amount"` // cents
	Status     string         `gorm:"index" json:"status"`
	Date       datatypes.Date `json:"date"`
	CreatedAt  time.Time      `json:"created_at"`
}
