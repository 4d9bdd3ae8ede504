// Package sqlite opens the application's single database file and hands out the
// pools every repository borrows connections from.
package sqlite

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	driver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"todoapp/config"
	"todoapp/shared/constant"
)

const (
	// One writer connection; SQLite serializes writers anyway and a single
	// connection keeps writes from failing with SQLITE_BUSY.
	sqliteMaxWriteConnection = 1
	sqliteDefaultReadConns   = 4
	sqliteDirPermission      = 0o755
)

func init() {
	sqlx.BindDriver(constant.SQLiteDriverName, sqlx.QUESTION)
}

// Connection owns both pools for the lifetime of the process.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB

	// Path is the resolved database file.
	Path string
	// Created reports that the file did not exist before New opened it.
	Created bool
}

// Options tune how the pools are opened.
type Options struct {
	BusyTimeoutMS int
	MaxReadConns  int
}

// New opens the database described by the configuration and returns a cleanup
// that closes both pools.
func New(cfg *config.Config) (*Connection, func(), error) {
	conn, err := Open(context.Background(), cfg.DatabasePath(), Options{
		BusyTimeoutMS: cfg.DB.SQLite.BusyTimeoutMS,
		MaxReadConns:  cfg.DB.SQLite.MaxReadConns,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Str("path", conn.Path).Msg("Failed to close database")
		}
	}

	return conn, cleanup, nil
}

// Open creates the file if it is missing and opens the write and read pools on it.
func Open(ctx context.Context, path string, opts Options) (*Connection, error) {
	if path == "" {
		return nil, errors.New("database path is empty")
	}

	created, err := prepareFile(path)
	if err != nil {
		return nil, err
	}

	write, err := connect(ctx, "write", dataSourceName(path, opts.BusyTimeoutMS, true))
	if err != nil {
		return nil, err
	}

	write.SetMaxOpenConns(sqliteMaxWriteConnection)
	write.SetMaxIdleConns(sqliteMaxWriteConnection)
	write.SetConnMaxLifetime(0)

	read, err := connect(ctx, "read", dataSourceName(path, opts.BusyTimeoutMS, false))
	if err != nil {
		closeDB(write)

		return nil, err
	}

	readConns := opts.MaxReadConns
	if readConns <= 0 {
		readConns = sqliteDefaultReadConns
	}

	read.SetMaxOpenConns(readConns)
	read.SetMaxIdleConns(readConns)

	log.
		Info().
		Str("path", path).
		Bool("created", created).
		Int("readConns", readConns).
		Msg("Connected to database")

	return &Connection{
		Read:    read,
		Write:   write,
		Path:    path,
		Created: created,
	}, nil
}

// Close closes both pools and reports the first failure.
func (c *Connection) Close() error {
	readErr := c.Read.Close()
	writeErr := c.Write.Close()

	if writeErr != nil {
		return fmt.Errorf("failed to close write pool: %w", writeErr)
	}

	if readErr != nil {
		return fmt.Errorf("failed to close read pool: %w", readErr)
	}

	return nil
}

func prepareFile(path string) (bool, error) {
	info, err := os.Stat(path)

	switch {
	case err == nil:
		if info.IsDir() {
			return false, fmt.Errorf("database path %s is a directory", path)
		}

		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("failed to stat database file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), sqliteDirPermission); err != nil {
		return false, fmt.Errorf("failed to create database directory: %w", err)
	}

	return true, nil
}

// dataSourceName builds a modernc DSN. Pragmas listed here run on every new
// connection in the pool, busy_timeout first so the others can wait on a lock.
func dataSourceName(path string, busyTimeoutMS int, writer bool) string {
	query := url.Values{}
	query.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMS))
	query.Add("_pragma", "journal_mode(WAL)")
	query.Add("_pragma", "synchronous(NORMAL)")
	query.Add("_pragma", "foreign_keys(1)")

	if writer {
		query.Set("_txlock", "immediate")
	}

	return path + "?" + query.Encode()
}

func connect(ctx context.Context, name, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(constant.SQLiteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s pool: %w", name, err)
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)

		return nil, fmt.Errorf("failed to ping %s pool: %w", name, err)
	}

	return db, nil
}

func closeDB(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database")
	}
}

// IsUniqueViolation reports whether err carries SQLite's extended code for a
// UNIQUE constraint failure.
func IsUniqueViolation(err error) bool {
	var sqliteErr *driver.Error

	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
