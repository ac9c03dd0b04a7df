// Package model defines the core domain entities for the landed-cost service.
package model

// Priority selects the ordering policy applied when ranking sourcing lanes.
type Priority string

const (
	// PriorityCost orders lanes by annual landed cost.
	PriorityCost Priority = "cost"
	// PriorityNearshore favors lanes in the configured nearshore set.
	PriorityNearshore Priority = "nearshore"
	// PriorityUS favors the domestic lane.
	PriorityUS Priority = "us"
	// PriorityBalance blends annual cost with a per-country risk score.
	PriorityBalance Priority = "balance"
)

// Normalize returns the priority itself when recognized, otherwise PriorityCost.
func (p Priority) Normalize() Priority {
	switch p {
	case PriorityCost, PriorityNearshore, PriorityUS, PriorityBalance:
		return p
	default:
		return PriorityCost
	}
}

// CountryProfile holds the static cost assumptions of one sourcing country.
//
// @Description Per-country cost assumptions
type CountryProfile struct {
	Key            string  `json:"key" yaml:"key" example:"mexico"`
	Label          string  `json:"label" yaml:"label" example:"Mexico"`
	CostMultiplier float64 `json:"cost_multiplier" yaml:"cost_multiplier" example:"1.04"`
	TariffRate     float64 `json:"tariff_rate" yaml:"tariff_rate" example:"0.02"`
	ShippingFactor float64 `json:"shipping_factor" yaml:"shipping_factor" example:"0.55"`
}

// CostBreakdown is the per-unit and annual cost of sourcing from one country.
//
// @Description Landed cost breakdown for a single lane
type CostBreakdown struct {
	Key            string  `json:"key" example:"mexico"`
	Label          string  `json:"label" example:"Mexico"`
	BaseCost       float64 `json:"base_cost" example:"10.4"`
	TariffAmount   float64 `json:"tariff_amount" example:"0.208"`
	ShippingAmount float64 `json:"shipping_amount" example:"0.572"`
	LandedUnitCost float64 `json:"landed_unit_cost" example:"11.18"`
	AnnualCost     float64 `json:"annual_cost" example:"11180"`
	DeltaVsCurrent float64 `json:"delta_vs_current" example:"-320"`
	// PercentVsCurrent is nil when the current lane costs nothing.
	PercentVsCurrent *float64 `json:"percent_vs_current,omitempty" example:"-2.78"`
	IsCurrent        bool     `json:"is_current"`
}

// RankingRequest describes a single ranking invocation.
type RankingRequest struct {
	UnitCost          float64
	AnnualVolume      int
	CurrentCountryKey string
	Priority          Priority
}

// RankingResult is the ordered outcome of a ranking.
//
// @Description Lanes ordered by the applied priority
type RankingResult struct {
	Priority Priority        `json:"priority" example:"cost"`
	Lanes    []CostBreakdown `json:"lanes"`
	Current  CostBreakdown   `json:"current"`
	Best     CostBreakdown   `json:"best"`
	// Savings is max(0, current annual cost - best annual cost).
	Savings float64 `json:"savings" example:"320"`
}

// Comparison is the outcome of comparing the current lane with one alternative.
//
// @Description Two-lane comparison
type Comparison struct {
	Current      CostBreakdown `json:"current"`
	Alternative  CostBreakdown `json:"alternative"`
	Delta        float64       `json:"delta" example:"-320"`
	PercentDelta *float64      `json:"percent_delta,omitempty" example:"-2.78"`
	// Cheaper is the key of the lane with the lower annual cost; ties favor the current lane.
	Cheaper string `json:"cheaper" example:"mexico"`
	Verdict string `json:"verdict,omitempty"`
}

// PortfolioItem is one SKU row of a multi-SKU analysis.
type PortfolioItem struct {
	Label             string  `json:"label" yaml:"label"`
	Description       string  `json:"description,omitempty" yaml:"description"`
	HSCode            string  `json:"hs_code,omitempty" yaml:"hs_code"`
	UnitCost          float64 `json:"unit_cost" yaml:"unit_cost"`
	AnnualVolume      int     `json:"annual_volume" yaml:"annual_volume"`
	CurrentCountryKey string  `json:"current_country" yaml:"current_country"`
}

// PortfolioItemResult carries either a ranking or the error that prevented one.
type PortfolioItemResult struct {
	Index   int
	Item    PortfolioItem
	Ranking *RankingResult
	Savings float64
	Err     error
}

// PortfolioResult aggregates independently ranked portfolio items.
type PortfolioResult struct {
	Items        []PortfolioItemResult
	TotalSavings float64
}

// Failed returns the items that could not be ranked.
func (r PortfolioResult) Failed() []PortfolioItemResult {
	var failed []PortfolioItemResult
	for _, item := range r.Items {
		if item.Err != nil {
			failed = append(failed, item)
		}
	}
	return failed
}
