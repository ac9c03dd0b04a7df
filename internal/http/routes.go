package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/sourcing-lens/internal/middleware"
	"github.com/guttosm/sourcing-lens/internal/service"
)

// RouteGroup registers a set of routes on an API group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// AnalysisRoutes registers the stateless analysis endpoints.
type AnalysisRoutes struct {
	handler *Handler
}

// NewAnalysisRoutes creates AnalysisRoutes over handler.
func NewAnalysisRoutes(handler *Handler) *AnalysisRoutes {
	return &AnalysisRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *AnalysisRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/countries", r.handler.ListCountries)
	rg.POST("/compare", r.handler.Compare)
	rg.POST("/rank", r.handler.Rank)
	rg.POST("/portfolio", r.handler.Portfolio)
	rg.POST("/hs-code", r.handler.SuggestHSCode)
}

// RunRoutes registers the saved-run endpoints behind bearer identity.
type RunRoutes struct {
	handler     *RunsHandler
	verifier    service.TokenVerifier
	idempotency *middleware.IdempotencyCache
}

// NewRunRoutes creates RunRoutes. A nil verifier leaves the routes without
// identity, so every call is rejected as unauthenticated by the service.
func NewRunRoutes(handler *RunsHandler, verifier service.TokenVerifier, idempotency *middleware.IdempotencyCache) *RunRoutes {
	return &RunRoutes{handler: handler, verifier: verifier, idempotency: idempotency}
}

// RegisterRoutes implements RouteGroup.
func (r *RunRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	runs := rg.Group("/runs")
	if r.verifier != nil {
		runs.Use(middleware.BearerIdentity(r.verifier))
	}

	runs.POST("", middleware.Idempotency(r.idempotency), r.handler.SaveRun)
	runs.GET("", r.handler.ListRuns)
	runs.GET("/:id", r.handler.GetRun)
}
