package app

import (
	"github.com/guttosm/boltjoint-service/config"
	"github.com/guttosm/boltjoint-service/internal/logger"
)

// InitializeLogger configures the global JSON logger.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
