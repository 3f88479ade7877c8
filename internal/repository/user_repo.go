package repository

import (
	"context"

	"finance-dashboard-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// UpsertByEmail inserts the user, leaving any existing row with the same
// email untouched. The password must already be hashed.
func (r *UserRepository) UpsertByEmail(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(user).Error
	if err != nil {
		return dataErr("upsert user", err)
	}
	return nil
}
