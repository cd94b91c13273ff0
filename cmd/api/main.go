package main

import (
	"os"

	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/logger"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/server"
)

// @title StudentConnect API
// @version 1.0
// @description Job board and reference management backend for students and employers

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
