// Package dbtest opens a migrated throwaway SQLite database for tests.
package dbtest

import (
	"BookBridge/config"
	"BookBridge/pkg/database"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func New(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bookbridge.db")
	db, err := database.Open(config.DriverSQLite, path+"?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
