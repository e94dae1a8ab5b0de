// Package testutil opens throwaway stores for package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/staffhq/staff-bot/internal/config"
	"github.com/staffhq/staff-bot/internal/persistence"
)

// NewDatabase opens a migrated SQLite database in a temp dir and closes it
// when the test ends.
func NewDatabase(t testing.TB) *persistence.Database {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "staff.db") + "?_foreign_keys=on",
	}
	logger := zap.NewNop()

	db, err := persistence.Open(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(db.Close)

	if err := persistence.Migrate(context.Background(), db, logger); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// NewGorm is NewDatabase for callers that only need the gorm handle.
func NewGorm(t testing.TB) *gorm.DB {
	t.Helper()
	return NewDatabase(t).Gorm
}
