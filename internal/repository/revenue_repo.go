package repository

import (
	"context"

	"finance-dashboard-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

func (r *RevenueRepository) All(ctx context.Context) ([]models.Revenue, error) {
	var revenues []models.Revenue
	if err := r.db.WithContext(ctx).Find(&revenues).Error; err != nil {
		return nil, dataErr("fetch revenues", err)
	}
	return revenues, nil
}

// Months returns only the month labels, for the projection route.
func (r *RevenueRepository) Months(ctx context.Context) ([]string, error) {
	var months []string
	err := r.db.WithContext(ctx).
		Model(&models.Revenue{}).
		Pluck("month", &months).Error
	if err != nil {
		return nil, dataErr("fetch revenue months", err)
	}
	return months, nil
}

// UpsertByMonth inserts the row, leaving an existing month untouched.
func (r *RevenueRepository) UpsertByMonth(ctx context.Context, revenue *models.Revenue) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "month"}},
			DoNothing: true,
		}).
		Create(revenue).Error
	if err != nil {
		return dataErr("upsert revenue", err)
	}
	return nil
}
