package main

import (
	"os"

	"realestate-listings/pkg/config"
	"realestate-listings/pkg/logger"

	"github.com/joho/godotenv"
)

// load environment variables and configuration
func LoadConfiguration() *config.Config {
	envErr := godotenv.Load()
	cfg := loadConfigFile()
	logger.InitLogger(cfg.Log)
	if envErr != nil {
		logger.L().Debug().Err(envErr).Msg("no .env file found, relying on system environment variables")
	}
	return cfg
}

// load the application configuration from a YAML file
func loadConfigFile() *config.Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.L().Fatal().Err(err).Str("path", configPath).Msg("failed to load config")
	}
	return cfg
}
