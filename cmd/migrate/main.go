package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"todoapp/config"
	"todoapp/helper"
	"todoapp/infras/sqlite"
	"todoapp/shared/logger"
)

const (
	argLength     = 2
	actionVersion = "version"
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action (up/step-up/version) is required")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	conn, cleanup, err := sqlite.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer cleanup()

	migrator := helper.NewMigrator(conn, cfg)

	switch action := os.Args[1]; action {
	case helper.ActionUp, helper.ActionStepUp:
		if err := migrator.Runner(action); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
	case actionVersion:
		version, dirty, err := migrator.Version()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read schema version")
		}

		log.Info().Str("path", conn.Path).Uint("version", version).Bool("dirty", dirty).Msg("Schema version")
	default:
		log.Fatal().Str("action", action).Msg("Invalid action. Use 'up', 'step-up' or 'version'")
	}
}
