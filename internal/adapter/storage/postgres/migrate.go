package postgres

import (
	"errors"
	"fmt"
	"strings"

	"oyunfor-gateway/config"
	"oyunfor-gateway/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
)

// MigrationURL converts the pool DSN to the pgx5:// scheme expected by golang-migrate.
func MigrationURL(cfg config.DatabaseConfig) string {
	return "pgx5://" + strings.TrimPrefix(cfg.DSN(), "postgres://")
}

// Migrate applies every pending embedded migration.
func Migrate(cfg config.DatabaseConfig, log zerolog.Logger) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("opening embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, MigrationURL(cfg))
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("reading migration version: %w", err)
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("database schema up to date")
	return nil
}
