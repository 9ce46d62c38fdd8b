package main

import (
	"realestate-listings/pkg/logger"
)

func main() {
	cfg := LoadConfiguration()

	app, err := NewApp(cfg)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to initialize application")
	}
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
