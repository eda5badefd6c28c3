// Package dbtest opens throwaway in-memory databases for package tests.
package dbtest

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sitekit-io/sitekit/internal/infra/db"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seq int64

// New returns a migrated sqlite database private to t.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	id := atomic.AddInt64(&seq, 1)
	dsn := fmt.Sprintf("file:sitekit_test_%d_%d?mode=memory&cache=shared", time.Now().UnixNano(), id)

	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := d.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// a shared-cache memory db vanishes with its last connection
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(d); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return d
}
