package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"todoapp/config"
	sqliteInfra "todoapp/infras/sqlite"
	"todoapp/migrations"
)

const (
	ActionUp     = "up"
	ActionStepUp = "step-up"
)

var errUnknownAction = errors.New("unknown migration action")

// Migrator applies the embedded forward-only migrations to the write pool.
// Every action is idempotent: a database already at the latest version is left untouched.
type Migrator struct {
	db    *sqlx.DB
	table string
}

func NewMigrator(conn *sqliteInfra.Connection, cfg *config.Config) *Migrator {
	return &Migrator{
		db:    conn.Write,
		table: cfg.DB.SQLite.MigrationTable,
	}
}

type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...any) {
	log.Debug().Str("component", "migrate").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (migrateLogger) Verbose() bool {
	return false
}

// getInstance binds golang-migrate to the existing pool. The returned source must
// be closed by the caller; the Migrate itself is never closed because that would
// close the shared pool.
func (m *Migrator) getInstance() (*migrate.Migrate, source.Driver, error) {
	src, err := iofs.New(migrations.SQLite, migrations.SQLiteDir)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening migration source: %w", err)
	}

	driver, err := sqlite.WithInstance(m.db.DB, &sqlite.Config{MigrationsTable: m.table})
	if err != nil {
		_ = src.Close()

		return nil, nil, fmt.Errorf("error creating migration driver: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		_ = src.Close()

		return nil, nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	mig.Log = migrateLogger{}

	return mig, src, nil
}

func (m *Migrator) Runner(action string) error {
	mig, src, err := m.getInstance()
	if err != nil {
		return err
	}

	defer func() {
		if err := src.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close migration source")
		}
	}()

	switch action {
	case ActionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}
	case ActionStepUp:
		// Steps reports fs.ErrNotExist when no newer migration is left.
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error running migrations: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", errUnknownAction, action)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading schema version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations completed successfully")

	return nil
}

func (m *Migrator) Up() error {
	return m.Runner(ActionUp)
}

func (m *Migrator) StepUp() error {
	return m.Runner(ActionStepUp)
}

// Version reports the applied schema version; zero means nothing was applied yet.
func (m *Migrator) Version() (uint, bool, error) {
	mig, src, err := m.getInstance()
	if err != nil {
		return 0, false, err
	}
	defer src.Close()

	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("error reading schema version: %w", err)
	}

	return version, dirty, nil
}
