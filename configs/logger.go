package configs

import (
	"go.uber.org/zap"
)

// NewLogger builds the gateway logger. Debug output is enabled with
// LOG_LEVEL=debug, everything else gets the production config.
func NewLogger() (*zap.Logger, error) {
	if LoadEnvFor("LOG_LEVEL") == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
