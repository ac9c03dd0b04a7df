// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/sourcing-lens/config"
	"github.com/guttosm/sourcing-lens/internal/logger"
)

// InitializeLogger configures the global zerolog logger from cfg.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(logger.Options{
		Level:  cfg.Level,
		Pretty: cfg.Pretty,
	})
}
