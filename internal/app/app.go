// Package app wires configuration, services, storage and the HTTP router.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boltjoint-service/config"
	"github.com/guttosm/boltjoint-service/internal/http"
	"github.com/rs/zerolog/log"
)

// App is the wired application.
type App struct {
	Router *gin.Engine

	services *ServiceComponents
	database *DatabaseComponents
	router   *RouterComponents
}

// InitializeApp validates cfg and wires every component.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	services := InitializeServices(cfg.Cache, cfg.Batch)
	database := InitializeDatabase(cfg.Database)
	router := InitializeRouter(services, database, cfg)

	return &App{
		Router:   http.NewRouter(router.Handler, router.HealthHandler, router.Config),
		services: services,
		database: database,
		router:   router,
	}, nil
}

// Close stops background workers, drains the audit log and disconnects from
// MongoDB. The audit logger is stopped before the database is closed.
func (a *App) Close(ctx context.Context) {
	a.router.Stop()
	a.services.Stop()
	if err := a.database.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to close MongoDB connection")
	}
}
