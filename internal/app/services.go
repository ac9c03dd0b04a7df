// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/guttosm/sourcing-lens/config"
	"github.com/guttosm/sourcing-lens/internal/circuitbreaker"
	"github.com/guttosm/sourcing-lens/internal/hscode"
	"github.com/guttosm/sourcing-lens/internal/metrics"
	"github.com/guttosm/sourcing-lens/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Table     *service.CountryTable
	Engine    *service.Engine
	Analyzer  *service.AnalysisService
	HSBreaker *circuitbreaker.CircuitBreaker
}

// InitializeServices builds the country table, the engine and the analysis
// service. HS-code lookup is wired only when enabled and a URL is set.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	table := service.DefaultCountryTable()
	if path := cfg.Engine.CountryTableFile; path != "" {
		loaded, err := service.LoadCountryTable(path)
		if err != nil {
			return nil, fmt.Errorf("load country table: %w", err)
		}
		table = loaded
		log.Info().Str("file", path).Strs("countries", table.Keys()).Msg("Loaded country table")
	}

	engine := service.NewEngine(
		service.WithShipping(service.ShippingModel{
			Ratio:       cfg.Engine.ShippingRatio,
			FlatPerUnit: cfg.Engine.ShippingFlat,
		}),
		service.WithCountryPolicy(table),
		service.WithBiases(cfg.Engine.NearshoreBias, cfg.Engine.DomesticBias),
		service.WithRiskWeighting(cfg.Engine.RiskWeight, cfg.Engine.DefaultRiskScore),
	)

	opts := []service.AnalysisOption{service.WithMaxPortfolioItems(cfg.Engine.MaxPortfolioItems)}

	var breaker *circuitbreaker.CircuitBreaker
	if cfg.HSLookup.Enabled && cfg.HSLookup.URL != "" {
		breaker = newCircuitBreaker("hs-lookup", cfg.HSLookup.Breaker, nil)
		client := hscode.NewClient(hscode.Config{
			URL:     cfg.HSLookup.URL,
			APIKey:  cfg.HSLookup.APIKey,
			Timeout: cfg.HSLookup.Timeout,
		}, hscode.WithCircuitBreaker(breaker))
		opts = append(opts, service.WithHSInferrer(client))
		log.Info().Str("url", cfg.HSLookup.URL).Msg("HS code lookup enabled")
	}

	return &ServiceComponents{
		Table:     table,
		Engine:    engine,
		Analyzer:  service.NewAnalysisService(engine, table, opts...),
		HSBreaker: breaker,
	}, nil
}

// newCircuitBreaker builds a breaker with the configured thresholds that
// publishes its state to Prometheus and logs transitions.
func newCircuitBreaker(name string, cfg config.BreakerConfig, isFailure func(error) bool) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: cfg.FailureThreshold,
		SuccessThreshold: cfg.SuccessThreshold,
		Timeout:          cfg.Timeout,
		IsFailure:        isFailure,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})
}
