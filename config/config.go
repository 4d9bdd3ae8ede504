package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"production"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT" default:"1421"`
		Host     string `envconfig:"HOST" default:"127.0.0.1"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"1"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"1"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"todoapp"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"tauri://localhost,http://localhost:1420"`
			Enable           bool     `envconfig:"ENABLE" default:"true"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
	} `envconfig:"APP"`

	DB struct {
		SQLite struct {
			// Path overrides Dir/File when set.
			Path           string `envconfig:"PATH"`
			Dir            string `envconfig:"DIR" default:".todoapp"`
			File           string `envconfig:"FILE" default:"todos.db"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			BusyTimeoutMS  int    `envconfig:"BUSY_TIMEOUT_MS" default:"5000"`
			MaxReadConns   int    `envconfig:"MAX_READ_CONNS" default:"4"`
		} `envconfig:"SQLITE"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Load reads the process environment into a fresh Config without touching the singleton.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment variables: %w", err)
	}

	return &cfg, nil
}

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		var cfg *Config

		cfg, err = Load()
		if err != nil {
			return
		}

		conf = *cfg
		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("initializing configuration: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

// DatabasePath resolves where the SQLite file lives. Without an explicit path it
// goes under the user's home directory, or the working directory when home is unknown.
func (c *Config) DatabasePath() string {
	if c.DB.SQLite.Path != "" {
		return c.DB.SQLite.Path
	}

	base, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("Could not resolve home directory, using working directory for database")

		base = "."
	}

	return filepath.Join(base, c.DB.SQLite.Dir, c.DB.SQLite.File)
}
