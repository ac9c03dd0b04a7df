// Package app provides router configuration.
package app

import (
	"github.com/guttosm/sourcing-lens/config"
	"github.com/guttosm/sourcing-lens/internal/http"
	"github.com/guttosm/sourcing-lens/internal/middleware"
	"github.com/guttosm/sourcing-lens/internal/repository"
	"github.com/guttosm/sourcing-lens/internal/service"
	"github.com/rs/zerolog/log"
)

// RouterComponents holds router-related components. The rate limiter and
// idempotency cache run background cleanup and must be stopped.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	Groups        []http.RouteGroup
	RateLimiter   *middleware.RateLimiter
	Idempotency   *middleware.IdempotencyCache
}

// InitializeRouter builds handlers, route groups and router configuration.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	health := http.NewHealthHandler()

	var runsRepo repository.RunsRepositoryInterface
	if db != nil {
		runsRepo = db.RunsRepo
		health.RegisterChecker("mongodb", db.DB)
		health.RegisterCircuitBreaker(db.CircuitBreaker)
	}
	if services.HSBreaker != nil {
		health.RegisterCircuitBreaker(services.HSBreaker)
	}

	var verifier service.TokenVerifier
	if cfg.Auth.JWTSecret != "" {
		verifier = service.NewJWTVerifier(service.IdentityConfig{
			Secret:   cfg.Auth.JWTSecret,
			Audience: cfg.Auth.JWTAudience,
			Issuer:   cfg.Auth.JWTIssuer,
		})
	} else {
		log.Warn().Msg("JWT_SECRET not set - saved-run endpoints will reject every request")
	}

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}
	idempotency := middleware.NewIdempotencyCache(cfg.Server.IdempotencyTTL)

	groups := []http.RouteGroup{
		http.NewAnalysisRoutes(http.NewHandler(services.Analyzer)),
		http.NewRunRoutes(http.NewRunsHandler(service.NewRunService(runsRepo)), verifier, idempotency),
	}

	return &RouterComponents{
		HealthHandler: health,
		Config: http.RouterConfig{
			APIKeys:        cfg.Auth.APIKeys,
			EnableAuth:     cfg.Auth.Enabled,
			CORSOrigins:    cfg.Server.CORSOrigins,
			SwaggerUser:    cfg.Server.SwaggerUser,
			SwaggerPass:    cfg.Server.SwaggerPass,
			RequestTimeout: cfg.Server.RequestTimeout,
			RateLimiter:    limiter,
			Idempotency:    idempotency,
		},
		Groups:      groups,
		RateLimiter: limiter,
		Idempotency: idempotency,
	}
}

// Stop ends the background cleanup of the rate limiter and idempotency cache.
func (r *RouterComponents) Stop() {
	if r.RateLimiter != nil {
		r.RateLimiter.Stop()
	}
	if r.Idempotency != nil {
		r.Idempotency.Stop()
	}
}
