package store

import (
	"errors" // Error matching
	"fmt"    // Error wrapping
	"time"   // Export timestamp

	"delivery_tracker/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Structured logging for skipped records
	"gorm.io/gorm"               // GORM ORM library
)

// snapshotVersion tags the backup document schema
const snapshotVersion = 1

// Snapshot is the full-dataset backup document. It is a raw backup, not
// a sanitized export: user rows carry the stored credential hash.
type Snapshot struct {
	Version    int            `json:"version"`    // Schema version tag
	ExportDate string         `json:"exportDate"` // Wall-clock export time, RFC 3339
	Users      []domain.User  `json:"users"`      // Every user row
	Entries    []domain.Entry `json:"entries"`    // Every entry row
}

// ImportResult counts rows that were actually inserted. Rows skipped by
// the dedup check or dropped on a per-record failure are not counted.
type ImportResult struct {
	UsersImported   int `json:"usersImported"`   // Newly inserted users
	EntriesImported int `json:"entriesImported"` // Newly inserted entries
}

// ExportAll snapshots every user and entry row in primary-key order
func (s *Store) ExportAll() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Version:    snapshotVersion,
		ExportDate: time.Now().Format(time.RFC3339),
		Users:      []domain.User{},
		Entries:    []domain.Entry{},
	}
	if err := s.db.Order("id").Find(&snap.Users).Error; err != nil {
		return nil, fmt.Errorf("export users: %w", err)
	}
	if err := s.db.Order("id").Find(&snap.Entries).Error; err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}
	return &snap, nil
}

// ImportAll merges an exported dataset into the live store. Users dedup
// by username, entries by primary id; rows that survive the check are
// inserted with their supplied fields as-is, the credential included,
// with no re-hashing. A failing record is logged and skipped without
// aborting the batch, so re-importing the same snapshot inserts nothing.
func (s *Store) ImportAll(users []domain.User, entries []domain.Entry) (*ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := &ImportResult{}

	for _, u := range users {
		var existing domain.User
		err := s.db.Select("id").Where("username = ?", u.Username).First(&existing).Error
		if err == nil {
			continue // Username already present, skip
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.Warnf("import: check user %q: %v", u.Username, err)
			continue
		}
		// Fresh row keeps the supplied fields but takes a new id
		row := domain.User{Name: u.Name, Username: u.Username, Password: u.Password, CreatedAt: u.CreatedAt}
		if err := s.db.Create(&row).Error; err != nil {
			logrus.Warnf("import: insert user %q: %v", u.Username, err)
			continue
		}
		res.UsersImported++
	}

	for _, e := range entries {
		var existing domain.Entry
		err := s.db.Select("id").Where("id = ?", e.ID).First(&existing).Error
		if err == nil {
			continue // Entry id already present, skip
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.Warnf("import: check entry %d: %v", e.ID, err)
			continue
		}
		// Entries keep every supplied field, the primary id included
		row := domain.Entry{ID: e.ID, UserID: e.UserID, Code: e.Code, Count: e.Count, Comment: e.Comment, CreatedAt: e.CreatedAt}
		if err := s.db.Create(&row).Error; err != nil {
			logrus.Warnf("import: insert entry %d: %v", e.ID, err)
			continue
		}
		res.EntriesImported++
	}

	return res, nil
}
