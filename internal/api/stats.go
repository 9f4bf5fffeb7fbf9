package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Date parsing and cache TTL

	"delivery_tracker/internal/store" // Data access layer
	"delivery_tracker/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// statsCacheTTL keeps stats responses hot for dashboard polling without
// invalidation bookkeeping; a slightly stale total is acceptable
const statsCacheTTL = 30 * time.Second

// DayStatsHandler returns per-day per-code totals over a date range
func DayStatsHandler(s *store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		startStr := c.Query("startDate")
		endStr := c.Query("endDate")
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate is required as YYYY-MM-DD"})
			return
		}
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate is required as YYYY-MM-DD"})
			return
		}
		var userID *uint // Optional restriction to one user
		if v := c.Query("userId"); v != "" {
			id, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
				return
			}
			u := uint(id)
			userID = &u
		}

		ctx := context.Background() // Use background context for Redis
		cacheKey := "stats:days:" + startStr + ":" + endStr + ":" + c.Query("userId")
		var cached []store.DayCodeTotal
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"stats": cached, "cached": true})
			return
		}

		stats, err := s.StatsByDays(start, end, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, stats, statsCacheTTL)
		c.JSON(http.StatusOK, gin.H{"stats": stats, "cached": false})
	}
}

// DaySummaryHandler returns the per-user per-code team summary for a day
func DaySummaryHandler(s *store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		dateStr := c.Param("date")
		day, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be YYYY-MM-DD"})
			return
		}

		ctx := context.Background() // Use background context for Redis
		cacheKey := "stats:summary:" + dateStr
		var cached []store.UserCodeTotal
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"summary": cached, "cached": true})
			return
		}

		summary, err := s.DaySummary(day)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, summary, statsCacheTTL)
		c.JSON(http.StatusOK, gin.H{"summary": summary, "cached": false})
	}
}

// NotificationsHandler is the polling feed of teammates' recent entries.
// It is never cached: the whole point of the endpoint is freshness.
func NotificationsHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sinceID, _ := strconv.ParseUint(c.Query("sinceId"), 10, 32) // 0 means from the beginning
		userID, err := strconv.ParseUint(c.Query("userId"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}
		entries, err := s.RecentEntries(uint(sinceID), uint(userID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
