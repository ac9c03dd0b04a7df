// Package config provides configuration management for the sourcing-lens service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Engine   EngineConfig
	HSLookup HSLookupConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	IdempotencyTTL time.Duration
	// RequestTimeout bounds the context of every /api request.
	RequestTimeout time.Duration
}

// AuthConfig holds authentication configuration.
// API keys guard the whole /api group when Enabled; bearer tokens identify
// the owner of saved runs and are verified, never issued.
type AuthConfig struct {
	Enabled     bool
	APIKeys     map[string]bool
	JWTSecret   string
	JWTAudience string
	JWTIssuer   string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Breaker returns the run store circuit breaker settings.
func (c DatabaseConfig) Breaker() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: c.CircuitBreakerFailureThreshold,
		SuccessThreshold: c.CircuitBreakerSuccessThreshold,
		Timeout:          c.CircuitBreakerTimeout,
	}
}

// BreakerConfig holds the thresholds of one circuit breaker.
type BreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	Timeout          time.Duration
}

// EngineConfig holds the landed-cost engine tunables.
type EngineConfig struct {
	CountryTableFile  string
	ShippingRatio     float64
	ShippingFlat      float64
	NearshoreBias     float64
	DomesticBias      float64
	RiskWeight        float64
	DefaultRiskScore  float64
	MaxPortfolioItems int
}

// HSLookupConfig holds the HS-code inference endpoint configuration.
type HSLookupConfig struct {
	Enabled bool
	URL     string
	APIKey  string
	Timeout time.Duration
	Breaker BreakerConfig
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
			IdempotencyTTL: getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			Enabled:     getEnvBool("AUTH_ENABLED", false),
			APIKeys:     parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecret:   getEnv("JWT_SECRET", ""),
			JWTAudience: getEnv("JWT_AUDIENCE", ""),
			JWTIssuer:   getEnv("JWT_ISSUER", ""),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "sourcing_lens"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Engine: EngineConfig{
			CountryTableFile:  getEnv("COUNTRY_TABLE_FILE", ""),
			ShippingRatio:     getEnvFloat("SHIPPING_RATIO", 0.1),
			ShippingFlat:      getEnvFloat("SHIPPING_FLAT_PER_UNIT", 0),
			NearshoreBias:     getEnvFloat("NEARSHORE_BIAS", 0.10),
			DomesticBias:      getEnvFloat("DOMESTIC_BIAS", 0.15),
			RiskWeight:        getEnvFloat("RISK_WEIGHT", 0.25),
			DefaultRiskScore:  getEnvFloat("DEFAULT_RISK_SCORE", 0.5),
			MaxPortfolioItems: getEnvInt("MAX_PORTFOLIO_ITEMS", 5),
		},
		HSLookup: HSLookupConfig{
			Enabled: getEnvBool("HS_LOOKUP_ENABLED", false),
			URL:     getEnv("HS_LOOKUP_URL", ""),
			APIKey:  getEnv("HS_LOOKUP_API_KEY", ""),
			Timeout: getEnvDuration("HS_LOOKUP_TIMEOUT", 10*time.Second),
			Breaker: BreakerConfig{
				FailureThreshold: getEnvInt("HS_LOOKUP_BREAKER_FAILURE_THRESHOLD", 3),
				SuccessThreshold: getEnvInt("HS_LOOKUP_BREAKER_SUCCESS_THRESHOLD", 1),
				Timeout:          getEnvDuration("HS_LOOKUP_BREAKER_TIMEOUT", 15*time.Second),
			},
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
