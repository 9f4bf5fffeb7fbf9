package api

import (
	"net/http" // HTTP status codes
	"time"     // Backup file name date

	"delivery_tracker/internal/domain" // Importing domain models
	"delivery_tracker/internal/store"  // Data access layer

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for importing a backup document
type ImportRequest struct {
	Users   []domain.User  `json:"users"`   // Users array, may be empty but not absent
	Entries []domain.Entry `json:"entries"` // Entries array, may be empty but not absent
}

// ExportHandler streams the full dataset as a downloadable JSON backup
func ExportHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := s.ExportAll()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
			return
		}
		// Serve as an attachment named after the export day
		c.Header("Content-Disposition", `attachment; filename=delivery-backup-`+time.Now().Format(dateLayout)+`.json`)
		c.JSON(http.StatusOK, snap)
	}
}

// ImportHandler merges an uploaded backup document into the live dataset
func ImportHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ImportRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Users == nil || req.Entries == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Backup document must contain users and entries"})
			return
		}
		result, err := s.ImportAll(req.Users, req.Entries)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
