package service

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyCountryTable is returned when a table has no profiles.
	ErrEmptyCountryTable = errors.New("country table has no profiles")
	// ErrInvalidCountryProfile is returned when a profile fails validation.
	ErrInvalidCountryProfile = errors.New("invalid country profile")
)

// DefaultRiskTag is used when a country has no configured risk tags.
const DefaultRiskTag = "standard sourcing risk mix"

// CountryTable is an ordered set of country profiles plus the policy
// metadata the ranking priorities read from it.
type CountryTable struct {
	Profiles   []model.CountryProfile `yaml:"countries"`
	Nearshore  []string               `yaml:"nearshore"`
	Domestic   string                 `yaml:"domestic"`
	RiskScores map[string]float64     `yaml:"risk_scores"`
	RiskTags   map[string][]string    `yaml:"risk_tags"`

	// fromFile marks a table decoded from YAML. Its policy fields replace
	// the engine defaults even when empty.
	fromFile bool
}

// DefaultCountryTable returns the built-in five-lane table.
func DefaultCountryTable() *CountryTable {
	return &CountryTable{
		Profiles: []model.CountryProfile{
			{Key: "china", Label: "China", CostMultiplier: 1.00, TariffRate: 0.08, ShippingFactor: 0.70},
			{Key: "vietnam", Label: "Vietnam", CostMultiplier: 0.98, TariffRate: 0.05, ShippingFactor: 0.75},
			{Key: "mexico", Label: "Mexico", CostMultiplier: 1.04, TariffRate: 0.02, ShippingFactor: 0.55},
			{Key: "india", Label: "India", CostMultiplier: 0.96, TariffRate: 0.06, ShippingFactor: 0.78},
			{Key: "usa", Label: "USA", CostMultiplier: 1.18, TariffRate: 0.00, ShippingFactor: 0.30},
		},
		Nearshore: []string{"mexico", "usa"},
		Domestic:  "usa",
		RiskScores: map[string]float64{
			"china":   0.8,
			"vietnam": 0.5,
			"india":   0.5,
			"mexico":  0.3,
			"usa":     0.1,
		},
		RiskTags: map[string][]string{
			"china":   {"Section 301 / China exposure"},
			"vietnam": {"emerging-labor & FX volatility"},
			"india":   {"emerging-labor & FX volatility"},
			"mexico":  {"border / trucking capacity"},
			"usa":     {"domestic labor cost & capacity"},
		},
	}
}

// LoadCountryTable reads and validates a YAML country table.
func LoadCountryTable(path string) (*CountryTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read country table: %w", err)
	}
	return ParseCountryTable(data)
}

// ParseCountryTable decodes and validates a YAML country table.
func ParseCountryTable(data []byte) (*CountryTable, error) {
	var table CountryTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse country table: %w", err)
	}
	table.normalizeKeys()
	if err := table.Validate(); err != nil {
		return nil, err
	}
	table.fromFile = true
	return &table, nil
}

func (t *CountryTable) normalizeKeys() {
	for i := range t.Profiles {
		t.Profiles[i].Key = normalizeCountryKey(t.Profiles[i].Key)
	}
	for i, k := range t.Nearshore {
		t.Nearshore[i] = normalizeCountryKey(k)
	}
	t.Domestic = normalizeCountryKey(t.Domestic)
	if len(t.RiskScores) > 0 {
		scores := make(map[string]float64, len(t.RiskScores))
		for k, v := range t.RiskScores {
			scores[normalizeCountryKey(k)] = v
		}
		t.RiskScores = scores
	}
	if len(t.RiskTags) > 0 {
		tags := make(map[string][]string, len(t.RiskTags))
		for k, v := range t.RiskTags {
			tags[normalizeCountryKey(k)] = v
		}
		t.RiskTags = tags
	}
}

func normalizeCountryKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Validate checks key uniqueness and value ranges, and that every policy
// key names a profile.
func (t *CountryTable) Validate() error {
	if t == nil || len(t.Profiles) == 0 {
		return ErrEmptyCountryTable
	}

	seen := make(map[string]struct{}, len(t.Profiles))
	for _, p := range t.Profiles {
		switch {
		case p.Key == "":
			return fmt.Errorf("%w: empty key", ErrInvalidCountryProfile)
		case !(p.CostMultiplier > 0) || math.IsInf(p.CostMultiplier, 0):
			return fmt.Errorf("%w: %s cost multiplier must be positive", ErrInvalidCountryProfile, p.Key)
		case !(p.TariffRate >= 0 && p.TariffRate < 1):
			return fmt.Errorf("%w: %s tariff rate must be in [0,1)", ErrInvalidCountryProfile, p.Key)
		case !(p.ShippingFactor >= 0) || math.IsInf(p.ShippingFactor, 0):
			return fmt.Errorf("%w: %s has negative shipping factor", ErrInvalidCountryProfile, p.Key)
		}
		if _, dup := seen[p.Key]; dup {
			return fmt.Errorf("%w: duplicate key %s", ErrInvalidCountryProfile, p.Key)
		}
		seen[p.Key] = struct{}{}
	}

	known := func(key string) bool {
		_, ok := seen[key]
		return ok
	}
	for _, k := range t.Nearshore {
		if !known(k) {
			return fmt.Errorf("%w: nearshore key %q has no profile", ErrInvalidCountryProfile, k)
		}
	}
	if t.Domestic != "" && !known(t.Domestic) {
		return fmt.Errorf("%w: domestic key %q has no profile", ErrInvalidCountryProfile, t.Domestic)
	}
	for k, v := range t.RiskScores {
		if !known(k) {
			return fmt.Errorf("%w: risk score key %q has no profile", ErrInvalidCountryProfile, k)
		}
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("%w: %s risk score must be in [0,1]", ErrInvalidCountryProfile, k)
		}
	}
	for k := range t.RiskTags {
		if !known(k) {
			return fmt.Errorf("%w: risk tag key %q has no profile", ErrInvalidCountryProfile, k)
		}
	}
	return nil
}

// Lookup returns the profile for key.
func (t *CountryTable) Lookup(key string) (model.CountryProfile, bool) {
	for _, p := range t.Profiles {
		if p.Key == key {
			return p, true
		}
	}
	return model.CountryProfile{}, false
}

// Keys returns the country keys in table order.
func (t *CountryTable) Keys() []string {
	keys := make([]string, len(t.Profiles))
	for i, p := range t.Profiles {
		keys[i] = p.Key
	}
	return keys
}

// RiskTagsFor returns the configured tags for key, or the default tag.
func (t *CountryTable) RiskTagsFor(key string) []string {
	if tags := t.RiskTags[key]; len(tags) > 0 {
		return tags
	}
	return []string{DefaultRiskTag}
}
