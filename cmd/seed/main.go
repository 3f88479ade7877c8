package main

import (
	"context"
	"log/slog"
	"os"

	"finance-dashboard-backend/internal/config"
	"finance-dashboard-backend/internal/models"
	"finance-dashboard-backend/internal/seed"

	"github.com/joho/godotenv"
)

// One-shot provisioning tool. Exits non-zero on any failure.
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.Revenue{},
		&models.User{},
	); err != nil {
		slog.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	if err := seed.Run(context.Background(), db); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seed completed")
}
