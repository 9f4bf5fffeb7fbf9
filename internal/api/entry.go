package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Date parsing

	"delivery_tracker/internal/store" // Data access layer

	"github.com/gin-gonic/gin" // Gin web framework
)

// dateLayout is the wire format for all calendar-day parameters
const dateLayout = "2006-01-02"

// Request struct for creating and updating entries
type EntryRequest struct {
	UserID  uint    `json:"userId" binding:"required"` // Owning user must be provided
	Code    string  `json:"code" binding:"required"`   // Category code must be provided
	Count   int     `json:"count"`                     // Zero falls back to the default of 1
	Comment *string `json:"comment"`                   // Optional note
}

// parseFilter builds the entry listing filter from query parameters
func parseFilter(c *gin.Context) (store.Filter, error) {
	var f store.Filter
	if v := c.Query("userId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return f, err
		}
		f.UserID = uint(id)
	}
	f.Code = c.Query("code")
	f.Search = c.Query("search")
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return f, err
		}
		f.StartDate = t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return f, err
		}
		f.EndDate = t
	}
	return f, nil
}

// ListEntriesHandler returns entries matching the query filters
func ListEntriesHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := parseFilter(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters"})
			return
		}
		entries, err := s.ListEntries(filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

// CreateEntryHandler records a new delivery entry
func CreateEntryHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EntryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and code are required"})
			return
		}
		entry, err := s.CreateEntry(req.UserID, req.Code, req.Count, req.Comment)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

// UpdateEntryHandler rewrites an entry, only for its owner
func UpdateEntryHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry id"})
			return
		}
		var req EntryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and code are required"})
			return
		}
		entry, err := s.UpdateEntry(uint(id), req.UserID, req.Code, req.Count, req.Comment)
		if err != nil {
			// Unknown id and foreign owner look the same to the caller
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

// Request struct for deleting an entry
type DeleteEntryRequest struct {
	UserID uint `json:"userId" binding:"required"` // Owning user must be provided
}

// DeleteEntryHandler removes one entry, only for its owner
func DeleteEntryHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry id"})
			return
		}
		var req DeleteEntryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}
		deleted, err := s.DeleteEntry(uint(id), req.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": deleted})
	}
}

// DeleteTodayHandler bulk-removes a user's entries dated today
func DeleteTodayHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		if err := s.DeleteTodayEntries(uint(userID)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entries"})
			return
		}
		// Matching zero rows still counts as success
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
