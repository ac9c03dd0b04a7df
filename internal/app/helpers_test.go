package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/sourcing-lens/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testConfig mirrors config.Load defaults without reading the environment.
func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			IdempotencyTTL: time.Hour,
			RequestTimeout: 5 * time.Second,
		},
		Database: config.DatabaseConfig{
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		Engine: config.EngineConfig{
			ShippingRatio:     0.1,
			NearshoreBias:     0.10,
			DomesticBias:      0.15,
			RiskWeight:        0.25,
			DefaultRiskScore:  0.5,
			MaxPortfolioItems: 5,
		},
		HSLookup: config.HSLookupConfig{
			Timeout: time.Second,
			Breaker: config.BreakerConfig{FailureThreshold: 3, SuccessThreshold: 1, Timeout: 15 * time.Second},
		},
		Log: config.LogConfig{Level: "error"},
	}
}
