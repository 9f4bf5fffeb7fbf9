package db

import (
	"fmt"           // Error wrapping
	"os"            // Directory creation
	"path/filepath" // Path handling

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
	"gorm.io/gorm/logger"   // GORM query logger
)

// Open creates the SQLite database connection backing the whole dataset
func Open(path string, logQueries bool) (*gorm.DB, error) {
	// Ensure the data directory exists before SQLite creates the file
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	gormLogger := logger.Default
	if !logQueries {
		gormLogger = gormLogger.LogMode(logger.Silent)
	}

	// TranslateError turns the unique-index violation on username into
	// gorm.ErrDuplicatedKey, which is the authoritative conflict signal
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	// Durability and reliability tuning: every committed mutation must
	// survive a crash, and a failed write must leave the file intact
	_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
	_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")
	_, _ = sqlDB.Exec("PRAGMA foreign_keys = ON;")

	return gdb, nil
}
