package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"delivery_tracker/internal/domain" // Importing domain models
	"delivery_tracker/internal/store"  // Data access layer
	"delivery_tracker/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// ListUsersHandler returns every registered user without credentials
func ListUsersHandler(s *store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		cacheKey := "users:list"    // Single key, the list has no parameters
		var cached []domain.PublicUser
		// Serve from cache when a fresh copy exists
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"users": cached, "cached": true})
			return
		}
		users, err := s.ListUsers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		// Cache the list briefly; registrations are rare on a small team
		_ = utils.SetCache(ctx, rdb, cacheKey, users, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"users": users, "cached": false})
	}
}
