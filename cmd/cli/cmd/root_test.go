package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/sourcing-lens/internal/domain/dto"
	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"github.com/guttosm/sourcing-lens/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(&out)
	root.SetArgs(append(args, "--hs-url", ""))
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCountries(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out, err := run(t, "countries")

		require.NoError(t, err)
		assert.Contains(t, out, "KEY")
		assert.Contains(t, out, "Section 301 / China exposure")
		assert.Contains(t, out, "border / trucking capacity")
	})

	t.Run("json with custom table", func(t *testing.T) {
		path := writeFile(t, "countries.yaml", `
countries:
  - {key: China, label: China, cost_multiplier: 1.0, tariff_rate: 0.08, shipping_factor: 0.7}
  - {key: turkey, label: Turkey, cost_multiplier: 1.02, tariff_rate: 0.03, shipping_factor: 0.6}
`)

		out, err := run(t, "countries", "--countries", path, "-o", "json")

		require.NoError(t, err)
		var countries []model.CountryProfile
		require.NoError(t, json.Unmarshal([]byte(out), &countries))
		require.Len(t, countries, 2)
		assert.Equal(t, "china", countries[0].Key)
		assert.Equal(t, "turkey", countries[1].Key)
	})

	t.Run("invalid table file", func(t *testing.T) {
		path := writeFile(t, "countries.yaml", "countries: []\n")

		_, err := run(t, "countries", "--countries", path)

		assert.ErrorIs(t, err, service.ErrEmptyCountryTable)
	})
}

func TestRank(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, err := run(t, "rank", "--unit-cost", "10", "--volume", "1000", "--current", "China", "--priority", "nearshore", "-o", "json")

		require.NoError(t, err)
		var res service.SKUAnalysis
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, "mexico", res.Ranking.Best.Key)
		assert.InDelta(t, 320.0, res.Ranking.Savings, 1e-6)
		assert.Equal(t, model.HSStatusSkipped, res.HSStatus)
	})

	t.Run("table", func(t *testing.T) {
		out, err := run(t, "rank", "--unit-cost", "10", "--volume", "1000", "--current", "china")

		require.NoError(t, err)
		assert.Contains(t, out, "Priority: cost")
		assert.Contains(t, out, "China *")
		assert.Contains(t, out, "$10,924.80")
		assert.Contains(t, out, "Estimated annual savings: $575.20")
	})

	t.Run("unknown country", func(t *testing.T) {
		_, err := run(t, "rank", "--unit-cost", "10", "--volume", "1000", "--current", "atlantis")

		assert.ErrorIs(t, err, service.ErrInvalidCountryKey)
	})

	t.Run("missing required flag", func(t *testing.T) {
		_, err := run(t, "rank", "--unit-cost", "10", "--current", "china")

		assert.Error(t, err)
	})
}

func TestRank_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "negative unit cost",
			args:    []string{"--unit-cost=-5", "--volume", "1000", "--current", "china"},
			wantErr: dto.ErrInvalidUnitCost,
		},
		{
			name:    "NaN unit cost",
			args:    []string{"--unit-cost", "NaN", "--volume", "1000", "--current", "china"},
			wantErr: dto.ErrInvalidUnitCost,
		},
		{
			name:    "huge unit cost",
			args:    []string{"--unit-cost", "1e306", "--volume", "1000", "--current", "china"},
			wantErr: dto.ErrUnitCostTooLarge,
		},
		{
			name:    "zero volume",
			args:    []string{"--unit-cost", "10", "--volume", "0", "--current", "china"},
			wantErr: dto.ErrInvalidAnnualVolume,
		},
		{
			name:    "blank country",
			args:    []string{"--unit-cost", "10", "--volume", "1000", "--current", " "},
			wantErr: dto.ErrMissingCountry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"rank"}, tt.args...)...)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotContains(t, out, "emerges as the top lane")
		})
	}
}

func TestCompare(t *testing.T) {
	t.Run("usa against china", func(t *testing.T) {
		out, err := run(t, "compare", "--unit-cost", "10", "--volume", "1000", "--current", "china", "--with", "usa")

		require.NoError(t, err)
		assert.Contains(t, out, "Delta: $654.00")
		assert.Contains(t, out, "China looks directionally more attractive on cost by about $654.00")
	})

	t.Run("negative unit cost", func(t *testing.T) {
		_, err := run(t, "compare", "--unit-cost=-1", "--volume", "1000", "--current", "china", "--with", "usa")

		assert.ErrorIs(t, err, dto.ErrInvalidUnitCost)
	})

	t.Run("infinite unit cost", func(t *testing.T) {
		_, err := run(t, "compare", "--unit-cost", "+Inf", "--volume", "1000", "--current", "china", "--with", "usa")

		assert.ErrorIs(t, err, dto.ErrUnitCostTooLarge)
	})
}

func TestPortfolio(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "skus.yaml", `
priority: cost
items:
  - label: Bottle
    unit_cost: 10
    annual_volume: 1000
    current_country: China
  - label: Ghost
    unit_cost: 10
    annual_volume: 1000
    current_country: atlantis
`)

		out, err := run(t, "portfolio", path)

		require.NoError(t, err)
		assert.Contains(t, out, "Total estimated savings: $575.20")
		assert.Contains(t, out, "! Ghost (row 2)")
		assert.Contains(t, out, "Next steps:")
	})

	t.Run("json with priority override", func(t *testing.T) {
		path := writeFile(t, "skus.json", `{"priority":"cost","items":[{"label":"Bottle","unit_cost":10,"annual_volume":1000,"current_country":"china"}]}`)

		out, err := run(t, "portfolio", path, "--priority", "nearshore", "-o", "json")

		require.NoError(t, err)
		var report model.PortfolioReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		require.Len(t, report.Rows, 1)
		assert.Equal(t, "Mexico", report.Rows[0].SuggestedLane)
		assert.InDelta(t, 320.0, report.TotalSavings, 1e-9)
	})

	t.Run("too many items", func(t *testing.T) {
		path := writeFile(t, "skus.yaml", `
items:
  - {unit_cost: 10, annual_volume: 1, current_country: china}
  - {unit_cost: 10, annual_volume: 1, current_country: china}
`)

		_, err := run(t, "portfolio", path, "--max-items", "1")

		assert.ErrorIs(t, err, service.ErrTooManyItems)
	})

	t.Run("invalid row", func(t *testing.T) {
		path := writeFile(t, "skus.yaml", `
items:
  - {label: Bottle, unit_cost: 10, annual_volume: 1000, current_country: china}
  - {label: Mug, unit_cost: -3, annual_volume: 1000, current_country: china}
`)

		_, err := run(t, "portfolio", path)

		assert.ErrorIs(t, err, dto.ErrInvalidUnitCost)
		assert.ErrorContains(t, err, "item 2")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "portfolio", filepath.Join(t.TempDir(), "nope.yaml"))

		assert.Error(t, err)
	})
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := run(t, "countries", "-o", "xml")

	assert.ErrorContains(t, err, "unknown output format")
}
