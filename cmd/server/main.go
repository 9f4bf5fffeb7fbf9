package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"delivery_tracker/internal/api"        // Custom package for API handlers
	"delivery_tracker/internal/config"     // Custom package for configuration
	"delivery_tracker/internal/db"         // Custom package for database setup
	"delivery_tracker/internal/middleware" // Custom package for middleware
	"delivery_tracker/internal/store"      // Custom package for data access

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Open the SQLite database file holding the whole dataset
	gdb, err := db.Open(cfg.DBPath, !cfg.IsProd)
	if err != nil {
		logrus.Fatalf("failed to open DB: %v", err)
	}

	// Ensure the schema is up to date
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	s := store.New(gdb) // Data access layer over the open database

	// Setup Gin
	r := gin.New()
	r.Use(middleware.RequestLogMiddleware(), gin.Recovery())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/api/auth/register", api.RegisterHandler(s))          // Registration endpoint
	r.POST("/api/auth/login", api.LoginHandler(s, cfg.JWTSecret)) // Login endpoint
	r.GET("/api/users", api.ListUsersHandler(s, redisClient))     // List users endpoint

	// Everything below requires a valid token
	authed := r.Group("/api")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	// Entry routes
	authed.GET("/entries", api.ListEntriesHandler(s))               // Filtered entry listing
	authed.POST("/entries", api.CreateEntryHandler(s))              // Create entry endpoint
	authed.PUT("/entries/:id", api.UpdateEntryHandler(s))           // Update entry endpoint
	authed.DELETE("/entries/today/:userId", api.DeleteTodayHandler(s)) // Bulk delete today's entries
	authed.DELETE("/entries/:id", api.DeleteEntryHandler(s))        // Delete entry endpoint

	// Stats and notification routes
	authed.GET("/stats/days", api.DayStatsHandler(s, redisClient))           // Per-day per-code totals
	authed.GET("/stats/summary/:date", api.DaySummaryHandler(s, redisClient)) // Team day summary
	authed.GET("/notifications", api.NotificationsHandler(s))                // Polling feed

	// Backup routes
	authed.GET("/backup/export", api.ExportHandler(s)) // Full dataset export
	authed.POST("/backup/import", api.ImportHandler(s)) // Reconciling import

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
