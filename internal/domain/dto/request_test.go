package dto

import (
	"math"
	"testing"

	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestCompareRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		request     CompareRequest
		expectedErr error
	}{
		{
			name:    "valid request",
			request: CompareRequest{UnitCost: 10, AnnualVolume: 1000, CurrentCountry: "china", CompareCountry: "mexico"},
		},
		{
			name:        "zero unit cost",
			request:     CompareRequest{UnitCost: 0, AnnualVolume: 1000, CurrentCountry: "china", CompareCountry: "mexico"},
			expectedErr: ErrInvalidUnitCost,
		},
		{
			name:        "negative volume",
			request:     CompareRequest{UnitCost: 10, AnnualVolume: -1, CurrentCountry: "china", CompareCountry: "mexico"},
			expectedErr: ErrInvalidAnnualVolume,
		},
		{
			name:        "missing current country",
			request:     CompareRequest{UnitCost: 10, AnnualVolume: 1, CurrentCountry: " ", CompareCountry: "mexico"},
			expectedErr: ErrMissingCountry,
		},
		{
			name:        "missing compare country",
			request:     CompareRequest{UnitCost: 10, AnnualVolume: 1, CurrentCountry: "china"},
			expectedErr: ErrMissingCompare,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLane(t *testing.T) {
	tests := []struct {
		name     string
		unitCost float64
		volume   int
		current  string
		want     error
	}{
		{name: "valid", unitCost: 10, volume: 1000, current: "china"},
		{name: "at upper bounds", unitCost: MaxUnitCost, volume: MaxAnnualVolume, current: "china"},
		{name: "NaN unit cost", unitCost: math.NaN(), volume: 1000, current: "china", want: ErrInvalidUnitCost},
		{name: "infinite unit cost", unitCost: math.Inf(1), volume: 1000, current: "china", want: ErrUnitCostTooLarge},
		{name: "huge unit cost", unitCost: 1e306, volume: 1000, current: "china", want: ErrUnitCostTooLarge},
		{name: "volume too large", unitCost: 10, volume: MaxAnnualVolume + 1, current: "china", want: ErrVolumeTooLarge},
		{name: "zero volume", unitCost: 10, current: "china", want: ErrInvalidAnnualVolume},
		{name: "blank country", unitCost: 10, volume: 1, current: "\t", want: ErrMissingCountry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLane(tt.unitCost, tt.volume, tt.current)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestRankRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RankRequest{UnitCost: 1.5, AnnualVolume: 10, CurrentCountry: "india"}).Validate())
	assert.Equal(t, ErrInvalidUnitCost, (&RankRequest{UnitCost: -1, AnnualVolume: 10, CurrentCountry: "india"}).Validate())
}

func TestPortfolioRequest_Validate(t *testing.T) {
	t.Run("empty items", func(t *testing.T) {
		assert.Equal(t, ErrMissingItems, (&PortfolioRequest{}).Validate())
	})

	t.Run("names the offending item", func(t *testing.T) {
		req := PortfolioRequest{Items: []PortfolioItemRequest{
			{Label: "A", UnitCost: 10, AnnualVolume: 100, CurrentCountry: "china"},
			{Label: "B", UnitCost: 10, AnnualVolume: 0, CurrentCountry: "china"},
		}}

		err := req.Validate()

		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, "items[1].annual_volume", ve.Field)
	})

	t.Run("valid", func(t *testing.T) {
		req := PortfolioRequest{Items: []PortfolioItemRequest{{UnitCost: 10, AnnualVolume: 100, CurrentCountry: "china"}}}
		assert.NoError(t, req.Validate())
	})
}

func TestPortfolioRequest_ToModel(t *testing.T) {
	req := PortfolioRequest{Items: []PortfolioItemRequest{
		{Label: " Bottle ", Description: "steel", HSCode: "732393", UnitCost: 10, AnnualVolume: 1000, CurrentCountry: " China "},
	}}

	items := req.ToModel()

	assert.Equal(t, []model.PortfolioItem{{
		Label:             "Bottle",
		Description:       "steel",
		HSCode:            "732393",
		UnitCost:          10,
		AnnualVolume:      1000,
		CurrentCountryKey: "china",
	}}, items)
}

func TestHSCodeRequest_Validate(t *testing.T) {
	assert.NoError(t, (&HSCodeRequest{Description: "steel bottle"}).Validate())
	assert.NoError(t, (&HSCodeRequest{ProductName: "Bottle"}).Validate())
	assert.Equal(t, ErrMissingDescription, (&HSCodeRequest{}).Validate())
}

func TestSaveRunRequest_Validate(t *testing.T) {
	assert.Equal(t, ErrEmptyReport, (&SaveRunRequest{}).Validate())
	req := SaveRunRequest{Report: model.PortfolioReport{Rows: []model.PortfolioRow{{SKULabel: "A"}}}}
	assert.NoError(t, req.Validate())
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, model.PriorityNearshore, NormalizePriority(" Nearshore "))
	assert.Equal(t, model.PriorityUS, NormalizePriority("us"))
	assert.Equal(t, model.PriorityCost, NormalizePriority(""))
	assert.Equal(t, model.PriorityCost, NormalizePriority("fastest"))
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "unit_cost: must be greater than zero", ErrInvalidUnitCost.Error())
}
