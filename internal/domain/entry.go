package domain

import "time"

// Entry Model
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`    // Primary key
	UserID    uint      `gorm:"index;not null" json:"user_id"` // Owning user
	Code      string    `gorm:"not null" json:"code"`    // Free-form category code
	Count     int       `json:"count"`                   // Delivered count, the store defaults it to 1
	Comment   *string   `json:"comment"`                 // Optional note, nullable
	CreatedAt time.Time `gorm:"index" json:"created_at"` // Sole time dimension for filtering and stats
}

// EntryWithUser is an entry row joined with the owner's display name
type EntryWithUser struct {
	ID        uint      `json:"id"`         // Entry ID
	UserID    uint      `json:"user_id"`    // Owning user
	Code      string    `json:"code"`       // Category code
	Count     int       `json:"count"`      // Delivered count
	Comment   *string   `json:"comment"`    // Optional note
	CreatedAt time.Time `json:"created_at"` // Creation time
	UserName  string    `json:"user_name"`  // Owner display name
}
