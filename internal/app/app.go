// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/sourcing-lens/config"
	"github.com/guttosm/sourcing-lens/internal/http"
	"github.com/rs/zerolog/log"
)

// App is the wired service: the router plus the resources Close releases.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents

	database *DatabaseComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, err
	}

	database := InitializeDatabase(cfg.Database)
	routerComponents := InitializeRouter(services, database, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config, routerComponents.Groups...),
		Services: services,
		database: database,
		router:   routerComponents,
	}, nil
}

// RunsEnabled reports whether saved runs are backed by MongoDB.
func (a *App) RunsEnabled() bool {
	return a.database != nil
}

// Close stops background workers and disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	a.router.Stop()
	if err := a.database.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close MongoDB connection")
		return err
	}
	return nil
}
