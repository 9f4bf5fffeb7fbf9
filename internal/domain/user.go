package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                 // Primary key
	Name      string    `gorm:"not null" json:"name"`                 // Display name
	Username  string    `gorm:"uniqueIndex;not null" json:"username"` // Unique login, immutable after creation
	Password  string    `gorm:"not null" json:"password"`             // Bcrypt hash, never the plaintext
	CreatedAt time.Time `json:"created_at"`                           // Set once at registration
}

// PublicUser is the credential-free view returned by user listings
type PublicUser struct {
	ID       uint   `json:"id"`       // User ID
	Name     string `json:"name"`     // Display name
	Username string `json:"username"` // Login name
}
