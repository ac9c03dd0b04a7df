package service

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/guttosm/sourcing-lens/internal/domain/model"
)

// ErrInvalidCountryKey is returned when a requested country is not in the table.
var ErrInvalidCountryKey = errors.New("invalid country key")

const (
	DefaultShippingRatio = 0.1
	DefaultNearshoreBias = 0.10
	DefaultDomesticBias  = 0.15
	DefaultRiskWeight    = 0.25
	DefaultRiskScore     = 0.5
)

// ShippingModel parameterizes the per-unit freight estimate.
// Shipping = base*Ratio*factor + FlatPerUnit*factor.
type ShippingModel struct {
	Ratio       float64
	FlatPerUnit float64
}

// LandedCostCalculator defines the engine operations used by the analysis layer.
type LandedCostCalculator interface {
	RankCountries(profiles []model.CountryProfile, req model.RankingRequest) (model.RankingResult, error)
	AggregatePortfolio(profiles []model.CountryProfile, items []model.PortfolioItem, priority model.Priority) model.PortfolioResult
	Compare(profiles []model.CountryProfile, unitCost float64, annualVolume int, currentKey, alternativeKey string) (model.Comparison, error)
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// Engine ranks sourcing lanes. It holds only policy configuration and is
// safe for concurrent use once constructed.
type Engine struct {
	shipping      ShippingModel
	nearshore     map[string]bool
	nearshoreBias float64
	domesticKey   string
	domesticBias  float64
	riskScores    map[string]float64
	riskWeight    float64
	defaultRisk   float64
}

// NewEngine creates an Engine with the default policy, then applies opts.
func NewEngine(opts ...EngineOption) *Engine {
	defaults := DefaultCountryTable()
	e := &Engine{
		shipping:      ShippingModel{Ratio: DefaultShippingRatio},
		nearshore:     toSet(defaults.Nearshore),
		nearshoreBias: DefaultNearshoreBias,
		domesticKey:   defaults.Domestic,
		domesticBias:  DefaultDomesticBias,
		riskScores:    defaults.RiskScores,
		riskWeight:    DefaultRiskWeight,
		defaultRisk:   DefaultRiskScore,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithShipping sets the shipping model.
func WithShipping(m ShippingModel) EngineOption {
	return func(e *Engine) {
		e.shipping = m
	}
}

// WithCountryPolicy reads the nearshore set, domestic key and risk scores from a table.
// A table loaded from a file replaces all three, so an empty list there means
// none. Fields left empty on an in-code table keep the defaults.
func WithCountryPolicy(t *CountryTable) EngineOption {
	return func(e *Engine) {
		if t == nil {
			return
		}
		if t.fromFile {
			e.nearshore = toSet(t.Nearshore)
			e.domesticKey = t.Domestic
			e.riskScores = t.RiskScores
			return
		}
		if len(t.Nearshore) > 0 {
			e.nearshore = toSet(t.Nearshore)
		}
		if t.Domestic != "" {
			e.domesticKey = t.Domestic
		}
		if len(t.RiskScores) > 0 {
			e.riskScores = t.RiskScores
		}
	}
}

// WithBiases sets the proportional nearshore and domestic biases.
func WithBiases(nearshore, domestic float64) EngineOption {
	return func(e *Engine) {
		e.nearshoreBias = nearshore
		e.domesticBias = domestic
	}
}

// WithRiskWeighting sets the balance-priority risk weight and the score for unmapped keys.
func WithRiskWeighting(weight, defaultScore float64) EngineOption {
	return func(e *Engine) {
		e.riskWeight = weight
		e.defaultRisk = defaultScore
	}
}

// ComputeBreakdown computes the per-unit and annual cost of one lane.
// Negative or NaN unit cost and negative volume are treated as zero; a
// non-positive or non-finite reference multiplier is treated as 1. Amounts
// that overflow are capped at math.MaxFloat64. DeltaVsCurrent is left at zero.
func ComputeBreakdown(profile model.CountryProfile, unitCost float64, annualVolume int, referenceMultiplier float64, shipping ShippingModel) model.CostBreakdown {
	if !(unitCost > 0) {
		unitCost = 0
	}
	if annualVolume < 0 {
		annualVolume = 0
	}
	if !(referenceMultiplier > 0) || math.IsInf(referenceMultiplier, 0) {
		referenceMultiplier = 1
	}

	base := unitCost * (profile.CostMultiplier / referenceMultiplier)
	tariff := base * profile.TariffRate
	freight := base*shipping.Ratio*profile.ShippingFactor + shipping.FlatPerUnit*profile.ShippingFactor
	landed := base + tariff + freight

	return model.CostBreakdown{
		Key:            profile.Key,
		Label:          profile.Label,
		BaseCost:       capFinite(base),
		TariffAmount:   capFinite(tariff),
		ShippingAmount: capFinite(freight),
		LandedUnitCost: capFinite(landed),
		AnnualCost:     capFinite(capFinite(landed) * float64(annualVolume)),
	}
}

// capFinite maps NaN to zero and infinities to the largest finite value of
// the same sign.
func capFinite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

// PercentDelta returns (value-base)/base*100, or nil when base is zero.
func PercentDelta(value, base float64) *float64 {
	if base == 0 {
		return nil
	}
	p := (value - base) / base * 100
	return &p
}

// RankCountries computes a breakdown for every profile and orders them by
// the requested priority. Ties keep table order.
func (e *Engine) RankCountries(profiles []model.CountryProfile, req model.RankingRequest) (model.RankingResult, error) {
	currentIdx := indexOf(profiles, req.CurrentCountryKey)
	if currentIdx < 0 {
		return model.RankingResult{}, fmt.Errorf("%w: %q", ErrInvalidCountryKey, req.CurrentCountryKey)
	}

	reference := profiles[currentIdx].CostMultiplier
	lanes := make([]model.CostBreakdown, len(profiles))
	for i, p := range profiles {
		lanes[i] = ComputeBreakdown(p, req.UnitCost, req.AnnualVolume, reference, e.shipping)
	}

	currentAnnual := lanes[currentIdx].AnnualCost
	for i := range lanes {
		lanes[i].DeltaVsCurrent = lanes[i].AnnualCost - currentAnnual
		lanes[i].PercentVsCurrent = PercentDelta(lanes[i].AnnualCost, currentAnnual)
		lanes[i].IsCurrent = i == currentIdx
	}
	current := lanes[currentIdx]

	priority := req.Priority.Normalize()
	e.order(lanes, priority)

	best := lanes[0]
	savings := current.AnnualCost - best.AnnualCost
	if savings < 0 {
		savings = 0
	}

	return model.RankingResult{
		Priority: priority,
		Lanes:    lanes,
		Current:  current,
		Best:     best,
		Savings:  savings,
	}, nil
}

// AggregatePortfolio ranks each item independently. Items that fail are
// reported with their error and do not abort the batch; only strictly
// positive savings count towards the total.
func (e *Engine) AggregatePortfolio(profiles []model.CountryProfile, items []model.PortfolioItem, priority model.Priority) model.PortfolioResult {
	result := model.PortfolioResult{
		Items: make([]model.PortfolioItemResult, 0, len(items)),
	}

	for i, item := range items {
		ranking, err := e.RankCountries(profiles, model.RankingRequest{
			UnitCost:          item.UnitCost,
			AnnualVolume:      item.AnnualVolume,
			CurrentCountryKey: item.CurrentCountryKey,
			Priority:          priority,
		})
		if err != nil {
			result.Items = append(result.Items, model.PortfolioItemResult{Index: i, Item: item, Err: err})
			continue
		}

		r := ranking
		result.Items = append(result.Items, model.PortfolioItemResult{
			Index:   i,
			Item:    item,
			Ranking: &r,
			Savings: r.Savings,
		})
		if r.Savings > 0 {
			result.TotalSavings = capFinite(result.TotalSavings + r.Savings)
		}
	}

	return result
}

// Compare computes the current lane against a single alternative.
func (e *Engine) Compare(profiles []model.CountryProfile, unitCost float64, annualVolume int, currentKey, alternativeKey string) (model.Comparison, error) {
	currentIdx := indexOf(profiles, currentKey)
	if currentIdx < 0 {
		return model.Comparison{}, fmt.Errorf("%w: %q", ErrInvalidCountryKey, currentKey)
	}
	altIdx := indexOf(profiles, alternativeKey)
	if altIdx < 0 {
		return model.Comparison{}, fmt.Errorf("%w: %q", ErrInvalidCountryKey, alternativeKey)
	}

	reference := profiles[currentIdx].CostMultiplier
	current := ComputeBreakdown(profiles[currentIdx], unitCost, annualVolume, reference, e.shipping)
	current.IsCurrent = true
	current.PercentVsCurrent = PercentDelta(current.AnnualCost, current.AnnualCost)

	alt := ComputeBreakdown(profiles[altIdx], unitCost, annualVolume, reference, e.shipping)
	alt.DeltaVsCurrent = alt.AnnualCost - current.AnnualCost
	alt.PercentVsCurrent = PercentDelta(alt.AnnualCost, current.AnnualCost)
	alt.IsCurrent = altIdx == currentIdx

	cheaper := current.Key
	if alt.AnnualCost < current.AnnualCost {
		cheaper = alt.Key
	}

	return model.Comparison{
		Current:      current,
		Alternative:  alt,
		Delta:        alt.DeltaVsCurrent,
		PercentDelta: alt.PercentVsCurrent,
		Cheaper:      cheaper,
	}, nil
}

// order sorts lanes in place by their priority-adjusted score.
func (e *Engine) order(lanes []model.CostBreakdown, priority model.Priority) {
	type scored struct {
		lane  model.CostBreakdown
		score float64
	}
	ranked := make([]scored, len(lanes))
	for i, l := range lanes {
		ranked[i] = scored{lane: l, score: e.score(l, priority)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})
	for i := range ranked {
		lanes[i] = ranked[i].lane
	}
}

func (e *Engine) score(l model.CostBreakdown, priority model.Priority) float64 {
	switch priority {
	case model.PriorityNearshore:
		if e.nearshore[l.Key] {
			return l.AnnualCost * (1 - e.nearshoreBias)
		}
	case model.PriorityUS:
		if l.Key == e.domesticKey {
			return l.AnnualCost * (1 - e.domesticBias)
		}
	case model.PriorityBalance:
		risk, ok := e.riskScores[l.Key]
		if !ok {
			risk = e.defaultRisk
		}
		return l.AnnualCost * (1 + e.riskWeight*risk)
	}
	return l.AnnualCost
}

func indexOf(profiles []model.CountryProfile, key string) int {
	for i, p := range profiles {
		if p.Key == key {
			return i
		}
	}
	return -1
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
