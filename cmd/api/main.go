package main

import (
	"os"

	"github.com/yigit/registrar/internal/pkg/logger"
)

// @title Registrar API
// @version 1.0
// @description Admin API for colleges, programs and students
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
