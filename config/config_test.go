package config_test

import (
	"path/filepath"
	"testing"

	"todoapp/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "1421", cfg.Server.Port)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, ".todoapp", cfg.DB.SQLite.Dir)
	assert.Equal(t, "todos.db", cfg.DB.SQLite.File)
	assert.Equal(t, "schema_migrations", cfg.DB.SQLite.MigrationTable)
	assert.Equal(t, 5000, cfg.DB.SQLite.BusyTimeoutMS)
	assert.Equal(t, 4, cfg.DB.SQLite.MaxReadConns)
	assert.Equal(t, []string{"tauri://localhost", "http://localhost:1420"}, cfg.App.CORS.AllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_SQLITE_PATH", "/tmp/custom.db")
	t.Setenv("DB_SQLITE_MAX_READ_CONNS", "8")
	t.Setenv("EXTERNAL_OTEL_ENDPOINT", "localhost:4317")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "/tmp/custom.db", cfg.DB.SQLite.Path)
	assert.Equal(t, 8, cfg.DB.SQLite.MaxReadConns)
	assert.Equal(t, "localhost:4317", cfg.External.Otel.Endpoint)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("DB_SQLITE_MAX_READ_CONNS", "many")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDatabasePath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.DB.SQLite.Path = "/data/todos.db"
		cfg.DB.SQLite.Dir = ".ignored"

		assert.Equal(t, "/data/todos.db", cfg.DatabasePath())
	})

	t.Run("home directory layout", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		cfg := &config.Config{}
		cfg.DB.SQLite.Dir = ".todoapp"
		cfg.DB.SQLite.File = "todos.db"

		assert.Equal(t, filepath.Join(home, ".todoapp", "todos.db"), cfg.DatabasePath())
	})

	t.Run("working directory fallback", func(t *testing.T) {
		t.Setenv("HOME", "")

		cfg := &config.Config{}
		cfg.DB.SQLite.Dir = ".todoapp"
		cfg.DB.SQLite.File = "todos.db"

		assert.Equal(t, filepath.Join(".", ".todoapp", "todos.db"), cfg.DatabasePath())
	})
}
