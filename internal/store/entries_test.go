package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEntry_JoinsOwnerName(t *testing.T) {
	s := setupTestStore(t)
	alice := mustUser(t, s, "Alice", "alice")

	entry, err := s.CreateEntry(alice.ID, "X", 3, strptr("first batch"))
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, alice.ID, entry.UserID)
	assert.Equal(t, "X", entry.Code)
	assert.Equal(t, 3, entry.Count)
	require.NotNil(t, entry.Comment)
	assert.Equal(t, "first batch", *entry.Comment)
	assert.Equal(t, "Alice", entry.UserName)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestCreateEntry_DefaultCount(t *testing.T) {
	s := setupTestStore(t)
	alice := mustUser(t, s, "Alice", "alice")

	entry, err := s.CreateEntry(alice.ID, "A", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Count, "zero count falls back to 1")
	assert.Nil(t, entry.Comment)

	// A negative count is not falsy and must be kept as supplied
	entry, err = s.CreateEntry(alice.ID, "A", -2, nil)
	require.NoError(t, err)
	assert.Equal(t, -2, entry.Count)
}

func TestGetEntryByID_Missing(t *testing.T) {
	s := setupTestStore(t)

	entry, err := s.GetEntryByID(12345)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestUpdateEntry_Owner(t *testing.T) {
	s := setupTestStore(t)
	alice := mustUser(t, s, "Alice", "alice")
	created, err := s.CreateEntry(alice.ID, "X", 3, strptr("before"))
	require.NoError(t, err)

	updated, err := s.UpdateEntry(created.ID, alice.ID, "Y", 5, nil)
	require.NoError(t, err)
	assert.Equal(t, "Y", updated.Code)
	assert.Equal(t, 5, updated.Count)
	assert.Nil(t, updated.Comment, "update clears the comment when none is supplied")
}

func TestUpdateEntry_WrongOwner(t *testing.T) {
	s := setupTestStore(t)
	alice := mustUser(t, s, "Alice", "alice")
	bob := mustUser(t, s, "Bob", "bob")
	created, err := s.CreateEntry(alice.ID, "X", 3, strptr("alice's"))
	require.NoError(t, err)

	_, err = s.UpdateEntry(created.ID, bob.ID, "Z", 99, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	// The row must be untouched
	current, err := s.GetEntryByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "X", current.Code)
	assert.Equal(t, 3, current.Count)
}

func TestUpdateEntry_MissingID(t *testing.T) {
	s := setupTestStore(t)
	alice := mustUser(t, s, "Alice", "alice")

	_, err := s.UpdateEntry(999, alice.ID, "X", 1, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEntry(t *testing.T) {
	s := setupTestStore(t)
	alice := mustUser(t, s, "Alice", "alice")
	bob := mustUser(t, s, "Bob", "bob")
	created, err := s.CreateEntry(alice.ID, "X", 1, nil)
	require.NoError(t, err)

	// Wrong owner deletes nothing
	deleted, err := s.DeleteEntry(created.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = s.DeleteEntry(created.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete reports the row as already gone
	deleted, err = s.DeleteEntry(created.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteTodayEntries_Scope(t *testing.T) {
	s := setupTestStore(t)
	alice := mustUser(t, s, "Alice", "alice")
	bob := mustUser(t, s, "Bob", "bob")

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	aliceToday := seedEntry(t, s, alice.ID, "X", 1, nil, now)
	aliceOld := seedEntry(t, s, alice.ID, "X", 1, nil, yesterday)
	bobToday := seedEntry(t, s, bob.ID, "X", 1, nil, now)

	require.NoError(t, s.DeleteTodayEntries(alice.ID))

	gone, err := s.GetEntryByID(aliceToday.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "alice's entry from today is removed")

	kept, err := s.GetEntryByID(aliceOld.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept, "alice's entry from yesterday survives")

	kept, err = s.GetEntryByID(bobToday.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept, "bob's entry from today survives")

	// Running it again with nothing left to match is still fine
	require.NoError(t, s.DeleteTodayEntries(alice.ID))
}

func TestListEntries_NoFilter(t *testing.T) {
	s := setupTestStore(t)
	alice := mustUser(t, s, "Alice", "alice")

	seedEntry(t, s, alice.ID, "X", 1, nil, localDay(2024, 3, 1, 9))
	seedEntry(t, s, alice.ID, "Y", 2, nil, localDay(2024, 3, 2, 9))
	seedEntry(t, s, alice.ID, "Z", 3, nil, localDay(2024, 3, 3, 9))

	entries, err := s.ListEntries(Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Newest first
	assert.Equal(t, "Z", entries[0].Code)
	assert.Equal(t, "Y", entries[1].Code)
	assert.Equal(t, "X", entries[2].Code)
	assert.Equal(t, "Alice", entries[0].UserName)
}

func TestListEntries_Filters(t *testing.T) {
	s := setupTestStore(t)
	alice := mustUser(t, s, "Alice", "alice")
	bob := mustUser(t, s, "Bob", "bob")

	seedEntry(t, s, alice.ID, "X", 1, strptr("morning run"), localDay(2024, 3, 1, 9))
	seedEntry(t, s, alice.ID, "Y", 2, nil, localDay(2024, 3, 2, 9))
	seedEntry(t, s, bob.ID, "X", 5, strptr("evening run"), localDay(2024, 3, 3, 19))

	byUser, err := s.ListEntries(Filter{UserID: alice.ID})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byCode, err := s.ListEntries(Filter{Code: "X"})
	require.NoError(t, err)
	assert.Len(t, byCode, 2)

	// Inclusive day range
	ranged, err := s.ListEntries(Filter{
		StartDate: localDay(2024, 3, 2, 0),
		EndDate:   localDay(2024, 3, 3, 0),
	})
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, "X", ranged[0].Code)
	assert.Equal(t, "Y", ranged[1].Code)

	// Combined filters narrow further
	combined, err := s.ListEntries(Filter{UserID: bob.ID, Code: "X"})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, 5, combined[0].Count)
}

func TestListEntries_SearchSkipsNilComments(t *testing.T) {
	s := setupTestStore(t)
	alice := mustUser(t, s, "Alice", "alice")

	seedEntry(t, s, alice.ID, "X", 1, strptr("morning run"), localDay(2024, 3, 1, 9))
	seedEntry(t, s, alice.ID, "Y", 1, nil, localDay(2024, 3, 1, 10))

	found, err := s.ListEntries(Filter{Search: "run"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "X", found[0].Code)

	none, err := s.ListEntries(Filter{Search: "nothing like this"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListEntries_SameDayTieBreak(t *testing.T) {
	s := setupTestStore(t)
	alice := mustUser(t, s, "Alice", "alice")

	at := localDay(2024, 3, 1, 9)
	first := seedEntry(t, s, alice.ID, "X", 1, nil, at)
	second := seedEntry(t, s, alice.ID, "Y", 1, nil, at)

	entries, err := s.ListEntries(Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Equal timestamps fall back to insertion order, newest id first
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}
