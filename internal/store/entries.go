package store

import (
	"errors" // Error matching
	"fmt"    // Error wrapping
	"time"   // Day boundaries

	"delivery_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Filter narrows ListEntries. Zero-valued fields impose no constraint.
type Filter struct {
	UserID    uint      // Exact owner match
	Code      string    // Exact code match
	StartDate time.Time // Inclusive first calendar day
	EndDate   time.Time // Inclusive last calendar day
	Search    string    // Substring match against comment
}

// entryColumns is the joined projection shared by every entry read
const entryColumns = "entries.id, entries.user_id, entries.code, entries.count, entries.comment, entries.created_at, users.name AS user_name"

// joined starts a query over entries joined with their owner
func (s *Store) joined() *gorm.DB {
	return s.db.Table("entries").
		Select(entryColumns).
		Joins("JOIN users ON users.id = entries.user_id")
}

// CreateEntry inserts a new entry for userID. A zero count falls back to
// the default of 1; any other value, negative included, is kept as given.
func (s *Store) CreateEntry(userID uint, code string, count int, comment *string) (*domain.EntryWithUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if count == 0 {
		count = 1
	}
	entry := domain.Entry{UserID: userID, Code: code, Count: count, Comment: comment}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return s.getEntryByID(entry.ID)
}

// GetEntryByID returns one entry joined with its owner's name, or
// (nil, nil) when the id does not exist.
func (s *Store) GetEntryByID(id uint) (*domain.EntryWithUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getEntryByID(id)
}

// getEntryByID is GetEntryByID without the lock, for use inside mutations
func (s *Store) getEntryByID(id uint) (*domain.EntryWithUser, error) {
	var row domain.EntryWithUser
	err := s.joined().Where("entries.id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return &row, nil
}

// UpdateEntry rewrites code, count and comment of the entry matching both
// id and userID. When no row matches, either because the id is unknown or
// the entry belongs to another user, nothing changes and ErrNotFound is
// returned; callers can rely on a non-nil result meaning the update stuck.
func (s *Store) UpdateEntry(id, userID uint, code string, count int, comment *string) (*domain.EntryWithUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.db.Model(&domain.Entry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"code": code, "count": count, "comment": comment})
	if res.Error != nil {
		return nil, fmt.Errorf("update entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.getEntryByID(id)
}

// DeleteEntry removes the entry matching both id and userID and reports
// whether such a row existed. The affected-row count is the authoritative
// answer; there is no separate existence check to race against.
func (s *Store) DeleteEntry(id, userID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Entry{})
	if res.Error != nil {
		return false, fmt.Errorf("delete entry: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteTodayEntries removes all of the user's entries dated today in
// server-local time. Matching zero rows is not an error.
func (s *Store) DeleteTodayEntries(userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, end := dayBounds(time.Now())
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Delete(&domain.Entry{}).Error
	if err != nil {
		return fmt.Errorf("delete today entries: %w", err)
	}
	return nil
}

// ListEntries returns entries matching every supplied filter field,
// joined with owner names, newest first. Date bounds compare on the
// server-local calendar day of created_at, both ends inclusive.
func (s *Store) ListEntries(f Filter) ([]domain.EntryWithUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.joined()
	if f.UserID != 0 {
		q = q.Where("entries.user_id = ?", f.UserID)
	}
	if f.Code != "" {
		q = q.Where("entries.code = ?", f.Code)
	}
	if !f.StartDate.IsZero() {
		start, _ := dayBounds(f.StartDate)
		q = q.Where("entries.created_at >= ?", start)
	}
	if !f.EndDate.IsZero() {
		_, end := dayBounds(f.EndDate)
		q = q.Where("entries.created_at < ?", end)
	}
	if f.Search != "" {
		// NULL comments never match a LIKE, which is exactly the contract
		q = q.Where("entries.comment LIKE ?", "%"+f.Search+"%")
	}

	rows := []domain.EntryWithUser{}
	if err := q.Order("entries.created_at DESC, entries.id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return rows, nil
}
