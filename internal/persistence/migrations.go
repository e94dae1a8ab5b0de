package persistence

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/staffhq/staff-bot/internal/config"
	"github.com/staffhq/staff-bot/internal/domain"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

// Migrate materializes the schema. Postgres runs the embedded goose
// migrations; SQLite, used for local runs and tests, syncs from the models.
func Migrate(ctx context.Context, db *Database, logger *zap.Logger) error {
	switch db.Driver {
	case config.DriverPostgres:
		sqlDB, err := db.Gorm.DB()
		if err != nil {
			return err
		}
		goose.SetBaseFS(embedMigrations)
		goose.SetLogger(zap.NewStdLog(logger.Named("goose")))
		if err := goose.SetDialect("postgres"); err != nil {
			return fmt.Errorf("set goose dialect: %w", err)
		}
		if err := goose.UpContext(ctx, sqlDB, migrationsDir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	case config.DriverSQLite:
		if err := db.Gorm.WithContext(ctx).AutoMigrate(domain.Models()...); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	default:
		return fmt.Errorf("unsupported database driver %q", db.Driver)
	}

	logger.Info("schema ready", zap.String("driver", db.Driver), zap.Int("models", len(domain.Models())))
	return nil
}
