package main

import (
	"log/slog"
	"os"

	"github.com/socialevents/social-events-backend/internal/config"
	"github.com/socialevents/social-events-backend/internal/database"
	"github.com/socialevents/social-events-backend/internal/logging"
	"github.com/socialevents/social-events-backend/internal/seed"
)

// Offline utility: wipes the event catalog and loads the sample data set.
// Not part of the runtime service.
func main() {
	logging.Setup()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := seed.Run(db); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("database seeded")
}
