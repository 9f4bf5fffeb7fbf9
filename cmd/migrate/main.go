package main

import (
	"delivery_tracker/internal/config" // Custom package for configuration
	"delivery_tracker/internal/db"     // Custom package for database setup

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to run database migration on its own
func main() {
	cfg := config.LoadConfig() // Load configuration

	gdb, err := db.Open(cfg.DBPath, true)
	if err != nil {
		logrus.Fatalf("failed to open DB: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
