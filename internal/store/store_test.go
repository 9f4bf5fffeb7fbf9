package store

import (
	"fmt"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"delivery_tracker/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testStoreSeq distinguishes multiple stores opened within one test
var testStoreSeq atomic.Uint64

// setupTestStore opens a named shared in-memory SQLite database and
// migrates the schema. The name is derived from t.Name() plus a
// per-call sequence number so every store gets its own database while
// the connection pool shares one database per store.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s-%d?mode=memory&cache=shared", url.PathEscape(t.Name()), testStoreSeq.Add(1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(&domain.User{}, &domain.Entry{}))
	return New(gdb)
}

// mustUser registers a user directly through the store
func mustUser(t *testing.T, s *Store, name, username string) *domain.User {
	t.Helper()
	u, err := s.CreateUser(name, username, "password")
	require.NoError(t, err)
	return u
}

// seedEntry inserts an entry with a fixed creation time, bypassing the
// store so tests can place rows on specific calendar days
func seedEntry(t *testing.T, s *Store, userID uint, code string, count int, comment *string, at time.Time) *domain.Entry {
	t.Helper()
	e := domain.Entry{UserID: userID, Code: code, Count: count, Comment: comment, CreatedAt: at}
	require.NoError(t, s.db.Create(&e).Error)
	return &e
}

// strptr returns a pointer to its argument
func strptr(v string) *string { return &v }

// localDay builds a timestamp within the given server-local calendar day
func localDay(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}
