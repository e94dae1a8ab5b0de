package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/staffhq/staff-bot/internal/config"
	"github.com/staffhq/staff-bot/internal/domain"
)

// Database is the shared store handle used by both the bot and the HTTP surface.
type Database struct {
	Driver string
	Gorm   *gorm.DB
	pool   *pgxpool.Pool
}

// Open connects to the configured store and binds the junction tables.
// Any failure here is startup-fatal.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Database, error) {
	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	}

	db := &Database{Driver: cfg.Driver}
	switch cfg.Driver {
	case config.DriverPostgres:
		gdb, pool, err := openPostgres(ctx, cfg, gormCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		db.Gorm, db.pool = gdb, pool
	case config.DriverSQLite:
		gdb, err := gorm.Open(sqlite.Open(cfg.DSN), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		// foreign_keys is a per-connection pragma.
		sqlDB.SetMaxOpenConns(1)
		if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
		db.Gorm = gdb
		logger.Info("opened sqlite database")
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	if err := domain.SetupJoinTables(db.Gorm); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Ping verifies the store is reachable.
func (d *Database) Ping(ctx context.Context) error {
	if d == nil || d.Gorm == nil {
		return fmt.Errorf("database not configured")
	}
	if d.pool != nil {
		return d.pool.Ping(ctx)
	}
	sqlDB, err := d.Gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connections.
func (d *Database) Close() {
	if d == nil {
		return
	}
	if d.Gorm != nil {
		if sqlDB, err := d.Gorm.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if d.pool != nil {
		d.pool.Close()
	}
}
