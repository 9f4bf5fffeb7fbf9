package db

import (
	"delivery_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(gdb *gorm.DB) error {
	// AutoMigrate will create tables, missing constraints, columns and indexes
	return gdb.AutoMigrate(&domain.User{}, &domain.Entry{})
}
