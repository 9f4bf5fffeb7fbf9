package store

import (
	"fmt"  // Error wrapping
	"sort" // Summary ordering
	"time" // Day boundaries

	"delivery_tracker/internal/domain" // Importing domain models
)

// DayCodeTotal is one (date, code) group in the per-day statistics
type DayCodeTotal struct {
	Date  string `json:"date"`  // Calendar day, YYYY-MM-DD
	Code  string `json:"code"`  // Category code
	Total int    `json:"total"` // Summed count
}

// UserCodeTotal is one (user, code) group in the team day summary
type UserCodeTotal struct {
	Name  string `json:"name"`  // Owner display name
	Code  string `json:"code"`  // Category code
	Total int    `json:"total"` // Summed count
}

// StatsByDays sums entry counts grouped by (calendar day, code) over the
// inclusive day range [start, end], optionally restricted to one user.
// Grouping happens here rather than in SQL so the day boundary is the
// server-local one regardless of how the driver stores timestamps.
// Days come back ascending; codes within a day keep first-seen order.
func (s *Store) StatsByDays(start, end time.Time, userID *uint) ([]DayCodeTotal, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lo, _ := dayBounds(start)
	_, hi := dayBounds(end)

	q := s.db.Model(&domain.Entry{}).
		Where("created_at >= ? AND created_at < ?", lo, hi)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var entries []domain.Entry
	if err := q.Order("created_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("stats by days: %w", err)
	}

	// Entries arrive in day order, so appending on first sight of a
	// (date, code) pair yields date-ascending, stably grouped output
	totals := []DayCodeTotal{}
	index := map[string]int{}
	for _, e := range entries {
		day := e.CreatedAt.In(time.Local).Format("2006-01-02")
		key := day + "\x00" + e.Code
		i, ok := index[key]
		if !ok {
			i = len(totals)
			index[key] = i
			totals = append(totals, DayCodeTotal{Date: day, Code: e.Code})
		}
		totals[i].Total += e.Count
	}
	return totals, nil
}

// DaySummary sums entry counts for exactly one calendar day, grouped by
// (owning user, code) and sorted by owner name then code.
func (s *Store) DaySummary(day time.Time) ([]UserCodeTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lo, hi := dayBounds(day)
	var rows []domain.EntryWithUser
	err := s.joined().
		Where("entries.created_at >= ? AND entries.created_at < ?", lo, hi).
		Order("entries.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("day summary: %w", err)
	}

	totals := []UserCodeTotal{}
	index := map[uint]map[string]int{}
	for _, r := range rows {
		byCode, ok := index[r.UserID]
		if !ok {
			byCode = map[string]int{}
			index[r.UserID] = byCode
		}
		i, ok := byCode[r.Code]
		if !ok {
			i = len(totals)
			byCode[r.Code] = i
			totals = append(totals, UserCodeTotal{Name: r.UserName, Code: r.Code})
		}
		totals[i].Total += r.Count
	}

	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Name != totals[j].Name {
			return totals[i].Name < totals[j].Name
		}
		return totals[i].Code < totals[j].Code
	})
	return totals, nil
}

// RecentEntries is the notification cursor read: at most 10 entries with
// id greater than sinceID, newest id first, skipping the polling user's
// own rows. A sinceID of 0 means "from the beginning".
func (s *Store) RecentEntries(sinceID, excludeUserID uint) ([]domain.EntryWithUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := []domain.EntryWithUser{}
	err := s.joined().
		Where("entries.id > ? AND entries.user_id != ?", sinceID, excludeUserID).
		Order("entries.id DESC").
		Limit(10).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("recent entries: %w", err)
	}
	return rows, nil
}
