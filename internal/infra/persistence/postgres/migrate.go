package postgres

import (
	"database/sql"
	"embed"
	"log/slog"

	"ogfinder/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrator applies the embedded schema migrations. The unique index on
// users.email is created here.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrator wraps an open connection pool.
func NewMigrator(db *sql.DB, logger *slog.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

func (m *Migrator) instance() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	driver, err := migratepostgres.WithInstance(m.db, &migratepostgres.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration driver")
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}

	return migrator, nil
}

// Up applies every pending migration.
func (m *Migrator) Up() error {
	migrator, err := m.instance()
	if err != nil {
		return err
	}

	err = migrator.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	m.logger.Info("Migrations applied successfully")

	return nil
}

// Down rolls back every applied migration.
func (m *Migrator) Down() error {
	migrator, err := m.instance()
	if err != nil {
		return err
	}

	err = migrator.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to roll back")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to roll back migrations")
	}

	m.logger.Info("Migrations rolled back successfully")

	return nil
}

// Version reports the applied schema version. A fresh database reports 0.
func (m *Migrator) Version() (version uint, dirty bool, err error) {
	migrator, err := m.instance()
	if err != nil {
		return 0, false, err
	}

	version, dirty, err = migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to read migration version")
	}

	return version, dirty, nil
}
