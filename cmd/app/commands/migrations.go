package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/fraservotes/console/internal/database"
)

// migrationsSource returns the file:// source URL for the driver's migration folder.
func migrationsSource(basePath, driver string) (string, error) {
	switch driver {
	case database.DriverPostgres:
		return "file://" + filepath.ToSlash(filepath.Join(basePath, "postgresql")), nil
	case database.DriverMySQL:
		return "file://" + filepath.ToSlash(filepath.Join(basePath, "mysql")), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// RunMigrations applies all pending migrations for the configured driver.
// Returns nil if there is nothing to apply.
func RunMigrations(logger *slog.Logger, basePath, driver, connectionString string) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	source, err := migrationsSource(basePath, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	m, err := migrate.New(source, connectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
