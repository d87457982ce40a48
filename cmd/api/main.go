package main

import (
	"github.com/kauanferreira/salesdesk/internal/pkg/logger"
	"github.com/kauanferreira/salesdesk/internal/server"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server execution failed or shutdown encountered errors")
	}

	logger.Info().Msg("Application finished gracefully.")
}
