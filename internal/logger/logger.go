package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the global zap logger for the given environment and installs it
// with zap.ReplaceGlobals, so packages can log via zap.L().
func Init(environment string) error {
	var logger *zap.Logger
	var err error

	switch environment {
	case "production":
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to build zap logger -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
