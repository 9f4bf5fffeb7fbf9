package store

import (
	"errors" // Error matching
	"fmt"    // Error wrapping

	"delivery_tracker/internal/domain" // Importing domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// CreateUser hashes the password and inserts a new user. The unique index
// on username is the authoritative uniqueness check: a duplicate insert
// fails with ErrConflict regardless of any pre-check the caller did.
func (s *Store) CreateUser(name, username, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{Name: name, Username: username, Password: string(hash)}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// FindUserByUsername returns the user including the credential hash, or
// (nil, nil) when no such username exists. The caller needs the hash for
// login verification; it must never travel back to a client.
func (s *Store) FindUserByUsername(username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user domain.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// VerifyPassword checks a plaintext password against a stored bcrypt hash
func (s *Store) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ListUsers returns all users without their credential, in storage order
func (s *Store) ListUsers() ([]domain.PublicUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []domain.PublicUser
	err := s.db.Model(&domain.User{}).
		Select("id, name, username").
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
