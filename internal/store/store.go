package store

import (
	"errors" // Sentinel errors
	"sync"   // Exclusive access to the dataset
	"time"   // Day boundary computation

	"gorm.io/gorm" // GORM ORM library
)

// Sentinel errors surfaced to the HTTP layer
var (
	ErrConflict   = errors.New("store: duplicate username")       // Unique-index violation on username
	ErrNotFound   = errors.New("store: no matching row")          // Referenced row absent or owned by someone else
	ErrValidation = errors.New("store: missing required argument") // Required argument absent or malformed
)

// Store owns all access to the persisted dataset. Every method takes the
// exclusive mutex: the dataset is a single serialized mutable store, one
// reader/writer at a time, so a read never observes a half-applied write.
type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

// New wraps an open database handle in a Store
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// dayBounds returns the half-open local-time interval [00:00 of day,
// 00:00 of the next day) covering one server-local calendar day.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}
