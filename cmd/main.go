// Package main is the entry point for the sourcing-lens API server.
//
// @title           SourcingLens API
// @version         1.0.0
// @description     Directional landed-cost estimates across sourcing countries.
//
//	Ranks lanes for a SKU or a portfolio by cost, nearshore, US or risk-balanced
//	priority, compares two lanes, and stores portfolio runs per user.
//	Figures are heuristic and not customs or freight quotes.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/sourcing-lens
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key. Required when authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>" issued by the identity provider. Required for saved runs.
//
// @tag.name        Analysis
// @tag.description Landed-cost ranking, comparison and portfolio analysis
//
// @tag.name        Runs
// @tag.description Saved portfolio runs
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	_ "github.com/guttosm/sourcing-lens/docs" // swagger docs

	"github.com/guttosm/sourcing-lens/config"
	"github.com/guttosm/sourcing-lens/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server)
	runErr := server.Run(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := application.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Cleanup failed")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
