package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"github.com/guttosm/sourcing-lens/internal/hscode"
	"github.com/guttosm/sourcing-lens/internal/metrics"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoItems is returned when a portfolio has no rows.
	ErrNoItems = errors.New("portfolio has no items")
	// ErrTooManyItems is returned when a portfolio exceeds the configured maximum.
	ErrTooManyItems = errors.New("portfolio has too many items")
)

// DefaultMaxPortfolioItems caps the number of SKUs in one portfolio analysis.
const DefaultMaxPortfolioItems = 5

const (
	noSavingsNarrative = "No clear savings pockets emerged from this run on our heuristics."
	noRiskNarrative    = "Risk is broadly distributed across your current lanes. Treat this as a qualitative prompt for further review."
)

// NextSteps are attached to every portfolio report.
var NextSteps = []string{
	"Short-list 2–3 lanes per SKU for real RFQs.",
	"Share this pack with your broker / freight partner for validation.",
	"Layer in service, lead time, and capacity before committing to any shift.",
}

// Analyzer defines the analysis flows exposed to transports.
type Analyzer interface {
	Countries() []model.CountryProfile
	Compare(ctx context.Context, in CompareInput) (model.Comparison, error)
	AnalyzeSKU(ctx context.Context, in SKUInput) (SKUAnalysis, error)
	AnalyzePortfolio(ctx context.Context, items []model.PortfolioItem, priority model.Priority) (*model.PortfolioReport, error)
	SuggestHSCode(ctx context.Context, productName, description string) (model.HSCodeSuggestion, error)
}

// CompareInput is a two-lane comparison request.
type CompareInput struct {
	UnitCost       float64
	AnnualVolume   int
	CurrentCountry string
	CompareCountry string
}

// SKUInput is a single-SKU analysis request.
type SKUInput struct {
	ProductName    string
	Description    string
	HSCode         string
	UnitCost       float64
	AnnualVolume   int
	CurrentCountry string
	Priority       model.Priority
}

// SKUAnalysis is the result of a single-SKU analysis.
//
// @Description Single-SKU analysis
type SKUAnalysis struct {
	ProductName string              `json:"product_name"`
	HSCode      string              `json:"hs_code"`
	HSReason    string              `json:"hs_reason,omitempty"`
	HSStatus    model.HSStatus      `json:"hs_status"`
	Ranking     model.RankingResult `json:"ranking"`
	Summary     string              `json:"summary"`
}

// AnalysisOption configures an AnalysisService.
type AnalysisOption func(*AnalysisService)

// WithHSInferrer enables HS-code enrichment.
func WithHSInferrer(inf hscode.Inferrer) AnalysisOption {
	return func(s *AnalysisService) {
		s.inferrer = inf
	}
}

// WithMaxPortfolioItems overrides the portfolio size cap.
func WithMaxPortfolioItems(n int) AnalysisOption {
	return func(s *AnalysisService) {
		if n > 0 {
			s.maxItems = n
		}
	}
}

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) AnalysisOption {
	return func(s *AnalysisService) {
		s.now = now
	}
}

// AnalysisService runs the SKU and portfolio flows on top of the engine.
type AnalysisService struct {
	engine   LandedCostCalculator
	table    *CountryTable
	inferrer hscode.Inferrer
	maxItems int
	now      func() time.Time
}

// NewAnalysisService creates an AnalysisService over table.
func NewAnalysisService(engine LandedCostCalculator, table *CountryTable, opts ...AnalysisOption) *AnalysisService {
	if table == nil {
		table = DefaultCountryTable()
	}
	s := &AnalysisService{
		engine:   engine,
		table:    table,
		maxItems: DefaultMaxPortfolioItems,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Countries returns the profiles of the active table in order.
func (s *AnalysisService) Countries() []model.CountryProfile {
	out := make([]model.CountryProfile, len(s.table.Profiles))
	copy(out, s.table.Profiles)
	return out
}

// MaxPortfolioItems returns the configured cap.
func (s *AnalysisService) MaxPortfolioItems() int {
	return s.maxItems
}

// Compare runs the two-lane comparison and attaches a one-line verdict.
func (s *AnalysisService) Compare(_ context.Context, in CompareInput) (model.Comparison, error) {
	c, err := s.engine.Compare(s.table.Profiles, in.UnitCost, in.AnnualVolume, in.CurrentCountry, in.CompareCountry)
	if err != nil {
		metrics.RecordAnalysis("compare", "error")
		return model.Comparison{}, err
	}

	better := c.Current.Label
	if c.Cheaper == c.Alternative.Key && c.Cheaper != c.Current.Key {
		better = c.Alternative.Label
	}
	c.Verdict = fmt.Sprintf(
		"%s looks directionally more attractive on cost by about %s per year at your volume, using simplified heuristics.",
		better, FormatUSD(abs(c.Delta)),
	)

	metrics.RecordAnalysis("compare", "success")
	return c, nil
}

// SuggestHSCode passes a lookup through to the configured inferrer.
func (s *AnalysisService) SuggestHSCode(ctx context.Context, productName, description string) (model.HSCodeSuggestion, error) {
	if s.inferrer == nil {
		return model.HSCodeSuggestion{}, hscode.ErrLookupDisabled
	}
	suggestion, err := s.inferrer.Infer(ctx, productName, description)
	switch {
	case err != nil:
		metrics.RecordHSLookup(string(model.HSStatusFailed))
	case suggestion.HSCode == "":
		metrics.RecordHSLookup(string(model.HSStatusUnavailable))
	default:
		metrics.RecordHSLookup(string(model.HSStatusSuggested))
	}
	return suggestion, err
}

// AnalyzeSKU resolves the HS code, then ranks every lane for one SKU.
// HS lookup failures are reported through HSStatus and never abort the analysis.
func (s *AnalysisService) AnalyzeSKU(ctx context.Context, in SKUInput) (SKUAnalysis, error) {
	code, reason, status := s.resolveHSCode(ctx, in.ProductName, in.Description, in.HSCode)
	if err := ctx.Err(); err != nil {
		return SKUAnalysis{}, err
	}

	ranking, err := s.rank(model.RankingRequest{
		UnitCost:          in.UnitCost,
		AnnualVolume:      in.AnnualVolume,
		CurrentCountryKey: in.CurrentCountry,
		Priority:          in.Priority,
	})
	if err != nil {
		metrics.RecordAnalysis("sku", "error")
		return SKUAnalysis{}, err
	}

	metrics.RecordAnalysis("sku", "success")
	return SKUAnalysis{
		ProductName: in.ProductName,
		HSCode:      code,
		HSReason:    reason,
		HSStatus:    status,
		Ranking:     ranking,
		Summary:     skuSummary(ranking),
	}, nil
}

// AnalyzePortfolio enriches missing HS codes one item at a time, ranks every
// item through the engine and builds the report. Items that cannot be ranked
// are listed in the report errors.
func (s *AnalysisService) AnalyzePortfolio(ctx context.Context, items []model.PortfolioItem, priority model.Priority) (*model.PortfolioReport, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if len(items) > s.maxItems {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(items), s.maxItems)
	}

	enriched := make([]model.PortfolioItem, len(items))
	statuses := make([]model.HSStatus, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.Label) == "" {
			item.Label = fmt.Sprintf("SKU %d", i+1)
		}
		code, _, status := s.resolveHSCode(ctx, item.Label, item.Description, item.HSCode)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item.HSCode = code
		enriched[i] = item
		statuses[i] = status
	}

	start := time.Now()
	result := s.engine.AggregatePortfolio(s.table.Profiles, enriched, priority)
	metrics.RecordRanking(time.Since(start), string(priority.Normalize()), "portfolio")

	report := s.buildReport(result, statuses)

	status := "success"
	if len(report.Errors) > 0 {
		status = "partial"
		if len(report.Rows) == 0 {
			status = "error"
		}
	}
	metrics.RecordAnalysis("portfolio", status)
	metrics.RecordPortfolioSavings(report.TotalSavings)

	return report, nil
}

func (s *AnalysisService) rank(req model.RankingRequest) (model.RankingResult, error) {
	start := time.Now()
	result, err := s.engine.RankCountries(s.table.Profiles, req)
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.RecordRanking(time.Since(start), string(req.Priority.Normalize()), status)
	return result, err
}

func (s *AnalysisService) resolveHSCode(ctx context.Context, name, description, supplied string) (string, string, model.HSStatus) {
	if code := strings.TrimSpace(supplied); code != "" {
		return code, "", model.HSStatusUserSupplied
	}
	if s.inferrer == nil {
		return "", "", model.HSStatusSkipped
	}

	suggestion, err := s.inferrer.Infer(ctx, name, description)
	if err != nil {
		if errors.Is(err, hscode.ErrLookupDisabled) {
			return "", "", model.HSStatusSkipped
		}
		metrics.RecordHSLookup(string(model.HSStatusFailed))
		log.Warn().Err(err).Str("product", name).Msg("HS code lookup failed")
		return "", "", model.HSStatusFailed
	}
	if suggestion.HSCode == "" {
		metrics.RecordHSLookup(string(model.HSStatusUnavailable))
		return "", suggestion.Reason, model.HSStatusUnavailable
	}
	metrics.RecordHSLookup(string(model.HSStatusSuggested))
	return suggestion.HSCode, suggestion.Reason, model.HSStatusSuggested
}

func (s *AnalysisService) buildReport(result model.PortfolioResult, statuses []model.HSStatus) *model.PortfolioReport {
	report := &model.PortfolioReport{
		TotalSavings: RoundCents(result.TotalSavings),
		Rows:         make([]model.PortfolioRow, 0, len(result.Items)),
		NextSteps:    append([]string(nil), NextSteps...),
		CreatedAt:    s.now().UTC(),
	}

	var narrative, risks []string
	for _, item := range result.Items {
		if item.Err != nil {
			report.Errors = append(report.Errors, model.RowError{
				Index:    item.Index,
				SKULabel: item.Item.Label,
				Error:    item.Err.Error(),
			})
			continue
		}

		current, best := item.Ranking.Current, item.Ranking.Best
		report.Rows = append(report.Rows, model.PortfolioRow{
			SKULabel:        item.Item.Label,
			CurrentLane:     current.Label,
			SuggestedLane:   best.Label,
			CurrentAnnual:   RoundCents(current.AnnualCost),
			SuggestedAnnual: RoundCents(best.AnnualCost),
			AnnualSavings:   RoundCents(item.Savings),
			HSCode:          item.Item.HSCode,
			HSStatus:        statuses[item.Index],
			Volume:          item.Item.AnnualVolume,
		})

		if item.Savings > 0 {
			narrative = append(narrative, fmt.Sprintf(
				"%s: shifting from %s to %s could free up about %s per year at current volumes.",
				item.Item.Label, current.Label, best.Label, FormatUSD(item.Savings),
			))
		} else {
			narrative = append(narrative, fmt.Sprintf(
				"%s: current lane %s remains directionally competitive on cost.",
				item.Item.Label, current.Label,
			))
		}
		risks = append(risks, fmt.Sprintf("%s: %s lane – %s.",
			item.Item.Label, best.Label, strings.Join(s.table.RiskTagsFor(best.Key), ", ")))
	}

	report.Narrative = noSavingsNarrative
	if len(narrative) > 0 {
		report.Narrative = strings.Join(narrative, " ")
	}
	report.RiskSummary = noRiskNarrative
	if len(risks) > 0 {
		report.RiskSummary = strings.Join(risks, " ")
	}
	return report
}

func skuSummary(r model.RankingResult) string {
	diff := r.Best.AnnualCost - r.Current.AnnualCost
	direction := "lower"
	if diff > 0 {
		direction = "higher"
	}
	return fmt.Sprintf(
		"%s emerges as the top lane on our heuristics, with an estimated %s annual landed cost of about %s versus your current lane at this volume.",
		r.Best.Label, direction, FormatUSD(abs(diff)),
	)
}

// RoundCents rounds a money amount to two decimals for presentation.
// NaN rounds to zero and infinities to the largest finite float.
func RoundCents(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return capFinite(v)
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FormatUSD renders v as a dollar amount with thousands separators, e.g. $11,500.00.
// Non-finite amounts render as "-".
func FormatUSD(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart, frac := fixed[:len(fixed)-3], fixed[len(fixed)-3:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + frac
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
