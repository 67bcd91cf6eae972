package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"koostory/internal/errors"
	"koostory/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, sqlDB *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return errors.Wrap(err, "failed to read migration version")
	}

	logger.Info("Database migrations applied", slog.Int64("version", version))

	return nil
}
