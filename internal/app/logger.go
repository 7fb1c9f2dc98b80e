// Package app provides logger initialization.
package app

import (
	"os"

	"github.com/guttosm/boxpack-service/internal/logger"
)

// InitializeLogger initializes the global logger from LOG_LEVEL and LOG_PRETTY.
func InitializeLogger() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	pretty := os.Getenv("LOG_PRETTY") == "true"
	logger.Init(logLevel, pretty)
}
