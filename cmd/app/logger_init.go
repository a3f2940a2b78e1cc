package main

import (
	"github.com/osse101/GLATools_Go/internal/config"
	"github.com/osse101/GLATools_Go/internal/logger"
)

// initLogger installs the API server's logger from the loaded configuration
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Component:   logger.ComponentAPI,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   cfg.Environment == logger.EnvironmentDev,
	})
}
