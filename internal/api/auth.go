package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"delivery_tracker/internal/store" // Data access layer
	"delivery_tracker/internal/utils" // Utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`     // Display name must be provided
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// UserResponse is the public user shape returned after register/login
type UserResponse struct {
	ID       uint   `json:"id"`       // User ID
	Name     string `json:"name"`     // Display name
	Username string `json:"username"` // Username
}

// RegisterHandler creates a new user account
func RegisterHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, username and password are required"})
			return
		}
		// The original deployment accepts short logins but insists on
		// at least four password characters
		if len(req.Password) < 4 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 4 characters"})
			return
		}
		// Pre-check the username so the common case gets a clean message
		existing, err := s.FindUserByUsername(req.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
			return
		}
		user, err := s.CreateUser(req.Name, req.Username, req.Password)
		if err != nil {
			// The unique index can still fire under a concurrent register
			if errors.Is(err, store.ErrConflict) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": UserResponse{ID: user.ID, Name: user.Name, Username: user.Username}})
	}
}

// LoginHandler verifies credentials and returns the user plus a JWT token
func LoginHandler(s *store.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := s.FindUserByUsername(req.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		// One message for both unknown user and wrong password
		if user == nil || !s.VerifyPassword(req.Password, user.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user":  UserResponse{ID: user.ID, Name: user.Name, Username: user.Username},
			"token": token,
		})
	}
}
