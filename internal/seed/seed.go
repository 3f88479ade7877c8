// Package seed provisions a demo database: users, customers and revenue
// are upserted by their natural keys so re-running is safe; invoices are
// only inserted into an empty table to avoid duplicating rows on re-seed.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"finance-dashboard-backend/internal/models"
	"finance-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run(ctx context.Context, db *gorm.DB) error {
	if err := seedUsers(ctx, repository.NewUserRepository(db)); err != nil {
		return err
	}
	if err := seedCustomers(ctx, repository.NewCustomerRepository(db)); err != nil {
		return err
	}
	if err := seedInvoices(ctx, db); err != nil {
		return err
	}
	if err := seedRevenue(ctx, repository.NewRevenueRepository(db)); err != nil {
		return err
	}
	return nil
}

func seedUsers(ctx context.Context, repo *repository.UserRepository) error {
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), 10)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", u.Email, err)
		}
		user := &models.User{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Password: string(hash),
		}
		if err := repo.UpsertByEmail(ctx, user); err != nil {
			return err
		}
	}
	slog.Info("seeded users", "count", len(users))
	return nil
}

func seedCustomers(ctx context.Context, repo *repository.CustomerRepository) error {
	for _, c := range customers {
		customer := c
		if err := repo.UpsertByEmail(ctx, &customer); err != nil {
			return err
		}
	}
	slog.Info("seeded customers", "count", len(customers))
	return nil
}

func seedInvoices(ctx context.Context, db *gorm.DB) error {
	repo := repository.NewInvoiceRepository(db)

	// Invoices have no natural key to upsert on; seeding a non-empty table
	// would duplicate rows, so skip instead.
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("invoices table not empty, skipping invoice seed", "existing", count)
		return nil
	}

	for _, inv := range invoices {
		invoice := &models.Invoice{
			ID:         uuid.New(),
			CustomerID: customers[inv.CustomerIndex].ID,
			Amount:     inv.AmountCents,
			Status:     inv.Status,
			Date:       mustDate(inv.Date),
		}
		if err := repo.Create(ctx, invoice); err != nil {
			return err
		}
	}
	slog.Info("seeded invoices", "count", len(invoices))
	return nil
}

func seedRevenue(ctx context.Context, repo *repository.RevenueRepository) error {
	for _, rev := range revenues {
		revenue := rev
		if err := repo.UpsertByMonth(ctx, &revenue); err != nil {
			return err
		}
	}
	slog.Info("seeded revenue", "count", len(revenues))
	return nil
}
