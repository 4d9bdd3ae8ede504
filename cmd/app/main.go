package main

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"todoapp/config"
	"todoapp/di"
	"todoapp/shared/logger"
	"todoapp/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logFile, err := logger.OpenLogFile(filepath.Dir(cfg.DatabasePath()))
	if err != nil {
		log.Warn().Err(err).Msg("Logging to console only")
	} else {
		defer logFile.Close()

		logger.InitLogger(logFile)
	}

	logger.SetLogLevel(cfg)
	timezone.Init(cfg.App.Timezone)

	app, cleanup, err := di.InitializeApp()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer cleanup()

	log.Info().Str("path", app.Connection.Path).Bool("created", app.Connection.Created).Msg("Database ready")

	if err := app.Migrator.Up(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	app.HTTP.Serve()
}
