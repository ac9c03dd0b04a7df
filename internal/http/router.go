package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/sourcing-lens/internal/metrics"
	"github.com/guttosm/sourcing-lens/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options. RateLimiter and
// Idempotency are owned by the caller, which stops them on shutdown.
type RouterConfig struct {
	APIKeys        map[string]bool
	EnableAuth     bool
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	RequestTimeout time.Duration
	RateLimiter    *middleware.RateLimiter
	Idempotency    *middleware.IdempotencyCache
}

// NewRouter builds the gin engine: infrastructure routes at the root and
// the analysis and run routes under /api.
func NewRouter(health *HealthHandler, cfg RouterConfig, groups ...RouteGroup) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	registerInfrastructureRoutes(router, health, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)
	for _, g := range groups {
		g.RegisterRoutes(api)
	}

	return router
}

func registerInfrastructureRoutes(router *gin.Engine, health *HealthHandler, cfg *RouterConfig) {
	if health != nil {
		health.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		return
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.Timeout(cfg.RequestTimeout))
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.RateLimit())
	}
	if cfg.EnableAuth {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
}
