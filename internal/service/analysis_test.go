package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"github.com/guttosm/sourcing-lens/internal/hscode"
	"github.com/guttosm/sourcing-lens/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var reportTime = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func newAnalysis(inf hscode.Inferrer, opts ...AnalysisOption) *AnalysisService {
	opts = append([]AnalysisOption{WithClock(func() time.Time { return reportTime })}, opts...)
	if inf != nil {
		opts = append(opts, WithHSInferrer(inf))
	}
	return NewAnalysisService(NewEngine(), DefaultCountryTable(), opts...)
}

func TestAnalysisService_Compare(t *testing.T) {
	svc := newAnalysis(nil)

	t.Run("alternative wins", func(t *testing.T) {
		c, err := svc.Compare(context.Background(), CompareInput{UnitCost: 10, AnnualVolume: 1000, CurrentCountry: "china", CompareCountry: "mexico"})
		require.NoError(t, err)
		assert.Equal(t, "mexico", c.Cheaper)
		assert.Equal(t, "Mexico looks directionally more attractive on cost by about $320.00 per year at your volume, using simplified heuristics.", c.Verdict)
	})

	t.Run("current wins", func(t *testing.T) {
		c, err := svc.Compare(context.Background(), CompareInput{UnitCost: 10, AnnualVolume: 1000, CurrentCountry: "china", CompareCountry: "usa"})
		require.NoError(t, err)
		assert.Contains(t, c.Verdict, "China looks directionally more attractive on cost by about $654.00")
	})

	t.Run("unknown country", func(t *testing.T) {
		_, err := svc.Compare(context.Background(), CompareInput{UnitCost: 10, AnnualVolume: 1000, CurrentCountry: "china", CompareCountry: "mars"})
		assert.ErrorIs(t, err, ErrInvalidCountryKey)
	})
}

func TestAnalysisService_AnalyzeSKU(t *testing.T) {
	ctx := context.Background()
	in := SKUInput{ProductName: "Bottle", Description: "steel bottle", UnitCost: 10, AnnualVolume: 1000, CurrentCountry: "china"}

	t.Run("uses suggested code", func(t *testing.T) {
		inf := new(mocks.MockHSInferrer)
		inf.On("Infer", mock.Anything, "Bottle", "steel bottle").
			Return(model.HSCodeSuggestion{HSCode: "732393", Reason: "vacuum flask"}, nil)

		res, err := newAnalysis(inf).AnalyzeSKU(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, "732393", res.HSCode)
		assert.Equal(t, "vacuum flask", res.HSReason)
		assert.Equal(t, model.HSStatusSuggested, res.HSStatus)
		assert.Equal(t, "india", res.Ranking.Best.Key)
		assert.Equal(t, "India emerges as the top lane on our heuristics, with an estimated lower annual landed cost of about $575.20 versus your current lane at this volume.", res.Summary)
		inf.AssertExpectations(t)
	})

	t.Run("user supplied code skips lookup", func(t *testing.T) {
		inf := new(mocks.MockHSInferrer)
		withCode := in
		withCode.HSCode = " 8516 "

		res, err := newAnalysis(inf).AnalyzeSKU(ctx, withCode)

		require.NoError(t, err)
		assert.Equal(t, "8516", res.HSCode)
		assert.Equal(t, model.HSStatusUserSupplied, res.HSStatus)
		inf.AssertNotCalled(t, "Infer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lookup failure does not abort", func(t *testing.T) {
		inf := new(mocks.MockHSInferrer)
		inf.On("Infer", mock.Anything, mock.Anything, mock.Anything).
			Return(model.HSCodeSuggestion{}, errors.New("upstream down"))

		res, err := newAnalysis(inf).AnalyzeSKU(ctx, in)

		require.NoError(t, err)
		assert.Empty(t, res.HSCode)
		assert.Equal(t, model.HSStatusFailed, res.HSStatus)
		assert.Len(t, res.Ranking.Lanes, 5)
	})

	t.Run("unusable code", func(t *testing.T) {
		inf := new(mocks.MockHSInferrer)
		inf.On("Infer", mock.Anything, mock.Anything, mock.Anything).
			Return(model.HSCodeSuggestion{Reason: "Parse failed"}, nil)

		res, err := newAnalysis(inf).AnalyzeSKU(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, model.HSStatusUnavailable, res.HSStatus)
	})

	t.Run("no inferrer", func(t *testing.T) {
		res, err := newAnalysis(nil).AnalyzeSKU(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, model.HSStatusSkipped, res.HSStatus)
	})

	t.Run("disabled inferrer", func(t *testing.T) {
		inf := new(mocks.MockHSInferrer)
		inf.On("Infer", mock.Anything, mock.Anything, mock.Anything).
			Return(model.HSCodeSuggestion{}, hscode.ErrLookupDisabled)

		res, err := newAnalysis(inf).AnalyzeSKU(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, model.HSStatusSkipped, res.HSStatus)
	})

	t.Run("higher cost summary under us priority", func(t *testing.T) {
		usIn := in
		usIn.Priority = model.PriorityUS

		res, err := newAnalysis(nil).AnalyzeSKU(ctx, usIn)

		require.NoError(t, err)
		assert.Equal(t, "usa", res.Ranking.Best.Key)
		assert.Contains(t, res.Summary, "estimated higher annual landed cost of about $654.00")
	})

	t.Run("invalid country", func(t *testing.T) {
		bad := in
		bad.CurrentCountry = "atlantis"

		_, err := newAnalysis(nil).AnalyzeSKU(ctx, bad)

		assert.ErrorIs(t, err, ErrInvalidCountryKey)
	})
}

func TestAnalysisService_AnalyzePortfolio(t *testing.T) {
	ctx := context.Background()

	t.Run("builds report", func(t *testing.T) {
		inf := new(mocks.MockHSInferrer)
		inf.On("Infer", mock.Anything, "Bottle", "steel bottle").
			Return(model.HSCodeSuggestion{HSCode: "732393"}, nil).Once()

		items := []model.PortfolioItem{
			{Label: "Bottle", Description: "steel bottle", UnitCost: 10, AnnualVolume: 1000, CurrentCountryKey: "china"},
			{Label: "Kettle", HSCode: "851671", UnitCost: 10, AnnualVolume: 1000, CurrentCountryKey: "india"},
		}

		report, err := newAnalysis(inf).AnalyzePortfolio(ctx, items, model.PriorityCost)

		require.NoError(t, err)
		assert.Equal(t, reportTime, report.CreatedAt)
		assert.InDelta(t, 575.2, report.TotalSavings, 1e-9)
		require.Len(t, report.Rows, 2)
		assert.Empty(t, report.Errors)

		bottle := report.Rows[0]
		assert.Equal(t, "Bottle", bottle.SKULabel)
		assert.Equal(t, "China", bottle.CurrentLane)
		assert.Equal(t, "India", bottle.SuggestedLane)
		assert.InDelta(t, 11500.0, bottle.CurrentAnnual, 1e-9)
		assert.InDelta(t, 10924.8, bottle.SuggestedAnnual, 1e-9)
		assert.InDelta(t, 575.2, bottle.AnnualSavings, 1e-9)
		assert.Equal(t, "732393", bottle.HSCode)
		assert.Equal(t, model.HSStatusSuggested, bottle.HSStatus)
		assert.Equal(t, 1000, bottle.Volume)

		kettle := report.Rows[1]
		assert.Equal(t, "India", kettle.SuggestedLane)
		assert.Zero(t, kettle.AnnualSavings)
		assert.Equal(t, model.HSStatusUserSupplied, kettle.HSStatus)

		assert.Equal(t,
			"Bottle: shifting from China to India could free up about $575.20 per year at current volumes. "+
				"Kettle: current lane India remains directionally competitive on cost.",
			report.Narrative)
		assert.Equal(t,
			"Bottle: India lane – emerging-labor & FX volatility. Kettle: India lane – emerging-labor & FX volatility.",
			report.RiskSummary)
		assert.Equal(t, NextSteps, report.NextSteps)
		inf.AssertExpectations(t)
	})

	t.Run("partial failure keeps other rows", func(t *testing.T) {
		items := []model.PortfolioItem{
			{Label: "Good", UnitCost: 10, AnnualVolume: 1000, CurrentCountryKey: "china"},
			{Label: "Bad", UnitCost: 10, AnnualVolume: 1000, CurrentCountryKey: "atlantis"},
		}

		report, err := newAnalysis(nil).AnalyzePortfolio(ctx, items, model.PriorityCost)

		require.NoError(t, err)
		require.Len(t, report.Rows, 1)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, 1, report.Errors[0].Index)
		assert.Equal(t, "Bad", report.Errors[0].SKULabel)
		assert.Contains(t, report.Errors[0].Error, "invalid country key")
		assert.InDelta(t, 575.2, report.TotalSavings, 1e-9)
	})

	t.Run("all items failing yields fallback narrative", func(t *testing.T) {
		items := []model.PortfolioItem{{Label: "Bad", UnitCost: 10, AnnualVolume: 1, CurrentCountryKey: "atlantis"}}

		report, err := newAnalysis(nil).AnalyzePortfolio(ctx, items, model.PriorityCost)

		require.NoError(t, err)
		assert.Empty(t, report.Rows)
		assert.Equal(t, noSavingsNarrative, report.Narrative)
		assert.Equal(t, noRiskNarrative, report.RiskSummary)
	})

	t.Run("blank labels are numbered", func(t *testing.T) {
		items := []model.PortfolioItem{{UnitCost: 10, AnnualVolume: 1, CurrentCountryKey: "china"}}

		report, err := newAnalysis(nil).AnalyzePortfolio(ctx, items, model.PriorityCost)

		require.NoError(t, err)
		assert.Equal(t, "SKU 1", report.Rows[0].SKULabel)
	})

	t.Run("rejects empty and oversized portfolios", func(t *testing.T) {
		svc := newAnalysis(nil, WithMaxPortfolioItems(2))
		items := make([]model.PortfolioItem, 3)

		_, err := svc.AnalyzePortfolio(ctx, nil, model.PriorityCost)
		assert.ErrorIs(t, err, ErrNoItems)

		_, err = svc.AnalyzePortfolio(ctx, items, model.PriorityCost)
		assert.ErrorIs(t, err, ErrTooManyItems)
		assert.Equal(t, 2, svc.MaxPortfolioItems())
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		inf := new(mocks.MockHSInferrer)
		inf.On("Infer", mock.Anything, mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { cancel() }).
			Return(model.HSCodeSuggestion{}, context.Canceled).Once()

		items := []model.PortfolioItem{
			{Label: "A", UnitCost: 10, AnnualVolume: 1, CurrentCountryKey: "china"},
			{Label: "B", UnitCost: 10, AnnualVolume: 1, CurrentCountryKey: "china"},
		}

		_, err := newAnalysis(inf).AnalyzePortfolio(cctx, items, model.PriorityCost)

		assert.ErrorIs(t, err, context.Canceled)
		inf.AssertNumberOfCalls(t, "Infer", 1)
	})
}

func TestAnalysisService_SuggestHSCode(t *testing.T) {
	_, err := newAnalysis(nil).SuggestHSCode(context.Background(), "Bottle", "steel")
	assert.ErrorIs(t, err, hscode.ErrLookupDisabled)

	inf := new(mocks.MockHSInferrer)
	inf.On("Infer", mock.Anything, "Bottle", "steel").Return(model.HSCodeSuggestion{HSCode: "732393"}, nil)

	s, err := newAnalysis(inf).SuggestHSCode(context.Background(), "Bottle", "steel")

	require.NoError(t, err)
	assert.Equal(t, "732393", s.HSCode)
}

func TestAnalysisService_Countries(t *testing.T) {
	svc := newAnalysis(nil)

	countries := svc.Countries()
	countries[0].Label = "mutated"

	assert.Equal(t, "China", svc.Countries()[0].Label)
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{320, "$320.00"},
		{575.2, "$575.20"},
		{11500, "$11,500.00"},
		{1234567.891, "$1,234,567.89"},
		{-654, "-$654.00"},
		{math.NaN(), "-"},
		{math.Inf(1), "-"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUSD(tt.in))
		})
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 10924.8, RoundCents(10924.800000000001))
	assert.Equal(t, 0.01, RoundCents(0.005))
	assert.Zero(t, RoundCents(math.NaN()))
	assert.Equal(t, math.MaxFloat64, RoundCents(math.Inf(1)))
}

func TestAnalysisService_HugeAmounts(t *testing.T) {
	ctx := context.Background()
	svc := newAnalysis(nil)

	t.Run("sku", func(t *testing.T) {
		var res SKUAnalysis
		require.NotPanics(t, func() {
			var err error
			res, err = svc.AnalyzeSKU(ctx, SKUInput{UnitCost: 1e306, AnnualVolume: 1000, CurrentCountry: "china"})
			require.NoError(t, err)
		})
		assert.NotContains(t, res.Summary, "NaN")
		_, err := json.Marshal(res)
		assert.NoError(t, err)
	})

	t.Run("portfolio", func(t *testing.T) {
		var report *model.PortfolioReport
		require.NotPanics(t, func() {
			var err error
			report, err = svc.AnalyzePortfolio(ctx, []model.PortfolioItem{
				{Label: "Huge", UnitCost: 1e306, AnnualVolume: 1000, CurrentCountryKey: "china"},
			}, model.PriorityCost)
			require.NoError(t, err)
		})
		require.Len(t, report.Rows, 1)
		_, err := json.Marshal(report)
		assert.NoError(t, err)
	})
}
