package postgres

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"biofit/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies every pending schema migration on a single connection borrowed from the pool.
// Closing the migrator releases that connection and leaves the pool open.
func Migrate(ctx context.Context, sqlDB *sql.DB, logger *slog.Logger) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire migration connection")
	}

	// WithInstance would take ownership of sqlDB and close it with the migrator.
	driver, err := migratepostgres.WithConnection(ctx, conn, &migratepostgres.Config{})
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()

		return errors.Wrap(err, "failed to create migrator")
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator", slog.Any("sourceError", srcErr), slog.Any("dbError", dbErr))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("Database schema is up to date")

			return nil
		}

		return errors.Wrap(err, "failed to apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}

	logger.Info("Database migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}
