package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 24*time.Hour, cfg.Server.IdempotencyTTL)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
		assert.False(t, cfg.Auth.Enabled)
		assert.Empty(t, cfg.Auth.JWTSecret)
		assert.Equal(t, "sourcing_lens", cfg.Database.DatabaseName)
		assert.InDelta(t, 0.1, cfg.Engine.ShippingRatio, 1e-9)
		assert.Zero(t, cfg.Engine.ShippingFlat)
		assert.InDelta(t, 0.10, cfg.Engine.NearshoreBias, 1e-9)
		assert.InDelta(t, 0.15, cfg.Engine.DomesticBias, 1e-9)
		assert.InDelta(t, 0.25, cfg.Engine.RiskWeight, 1e-9)
		assert.InDelta(t, 0.5, cfg.Engine.DefaultRiskScore, 1e-9)
		assert.Equal(t, 5, cfg.Engine.MaxPortfolioItems)
		assert.False(t, cfg.HSLookup.Enabled)
		assert.Equal(t, 10*time.Second, cfg.HSLookup.Timeout)
		assert.Equal(t, BreakerConfig{FailureThreshold: 3, SuccessThreshold: 1, Timeout: 15 * time.Second}, cfg.HSLookup.Breaker)
		assert.Equal(t, BreakerConfig{FailureThreshold: 5, SuccessThreshold: 2, Timeout: 30 * time.Second}, cfg.Database.Breaker())
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("API_KEYS", "key1,key2")
		_ = os.Setenv("JWT_SECRET", "s3cret")
		_ = os.Setenv("JWT_AUDIENCE", "authenticated")
		_ = os.Setenv("COUNTRY_TABLE_FILE", "/etc/lens/countries.yaml")
		_ = os.Setenv("SHIPPING_RATIO", "0.12")
		_ = os.Setenv("SHIPPING_FLAT_PER_UNIT", "0.4")
		_ = os.Setenv("MAX_PORTFOLIO_ITEMS", "20")
		_ = os.Setenv("HS_LOOKUP_ENABLED", "true")
		_ = os.Setenv("HS_LOOKUP_URL", "https://example.test/hs")
		_ = os.Setenv("HS_LOOKUP_TIMEOUT", "3s")
		_ = os.Setenv("HS_LOOKUP_BREAKER_FAILURE_THRESHOLD", "7")
		_ = os.Setenv("HS_LOOKUP_BREAKER_TIMEOUT", "1m")
		_ = os.Setenv("CIRCUIT_BREAKER_FAILURE_THRESHOLD", "9")
		_ = os.Setenv("REQUEST_TIMEOUT", "5s")
		_ = os.Setenv("LOG_LEVEL", "debug")
		_ = os.Setenv("LOG_PRETTY", "true")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.True(t, cfg.Auth.Enabled)
		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
		assert.Equal(t, "authenticated", cfg.Auth.JWTAudience)
		assert.Equal(t, "/etc/lens/countries.yaml", cfg.Engine.CountryTableFile)
		assert.InDelta(t, 0.12, cfg.Engine.ShippingRatio, 1e-9)
		assert.InDelta(t, 0.4, cfg.Engine.ShippingFlat, 1e-9)
		assert.Equal(t, 20, cfg.Engine.MaxPortfolioItems)
		assert.True(t, cfg.HSLookup.Enabled)
		assert.Equal(t, "https://example.test/hs", cfg.HSLookup.URL)
		assert.Equal(t, 3*time.Second, cfg.HSLookup.Timeout)
		assert.Equal(t, 7, cfg.HSLookup.Breaker.FailureThreshold)
		assert.Equal(t, time.Minute, cfg.HSLookup.Breaker.Timeout)
		assert.Equal(t, 9, cfg.Database.CircuitBreakerFailureThreshold)
		assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("AUTH_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("RISK_WEIGHT", "heavy")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.InDelta(t, 0.25, cfg.Engine.RiskWeight, 1e-9)
	})

	t.Run("parses API keys with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEYS", " key1 , key2 , key3 ")
		defer os.Clearenv()

		cfg := Load()

		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.True(t, cfg.Auth.APIKeys["key3"])
	})

	t.Run("appends CORS origins to local defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://lens.example.com, ")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://lens.example.com",
		}, cfg.Server.CORSOrigins)
	})

	t.Run("returns nil for empty API keys", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Auth.APIKeys)
	})
}
