// Package dto defines Data Transfer Objects for HTTP request and response handling.
package dto

import (
	"strconv"
	"strings"

	"github.com/guttosm/sourcing-lens/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Upper bounds keep annual amounts well inside float64 range.
const (
	MaxUnitCost     = 1_000_000_000
	MaxAnnualVolume = 1_000_000_000
)

var (
	ErrInvalidUnitCost     = &ValidationError{Field: "unit_cost", Message: "must be greater than zero"}
	ErrUnitCostTooLarge    = &ValidationError{Field: "unit_cost", Message: "must be at most 1000000000"}
	ErrInvalidAnnualVolume = &ValidationError{Field: "annual_volume", Message: "must be a positive integer"}
	ErrVolumeTooLarge      = &ValidationError{Field: "annual_volume", Message: "must be at most 1000000000"}
	ErrMissingCountry      = &ValidationError{Field: "current_country", Message: "is required"}
	ErrMissingCompare      = &ValidationError{Field: "compare_country", Message: "is required"}
	ErrMissingDescription  = &ValidationError{Field: "description", Message: "is required"}
	ErrMissingItems        = &ValidationError{Field: "items", Message: "must contain at least one item"}
	ErrEmptyReport         = &ValidationError{Field: "report", Message: "must contain at least one row"}
)

// ValidateLane checks the inputs shared by every analysis request: a finite
// positive unit cost, a positive volume and a current country, each within
// the upper bounds.
func ValidateLane(unitCost float64, volume int, current string) error {
	switch {
	case !(unitCost > 0):
		return ErrInvalidUnitCost
	case unitCost > MaxUnitCost:
		return ErrUnitCostTooLarge
	case volume <= 0:
		return ErrInvalidAnnualVolume
	case volume > MaxAnnualVolume:
		return ErrVolumeTooLarge
	case strings.TrimSpace(current) == "":
		return ErrMissingCountry
	}
	return nil
}

// CompareRequest is the body of POST /api/compare.
//
// @Description Compare the current lane with one alternative
type CompareRequest struct {
	ProductName    string  `json:"product_name,omitempty" example:"Insulated bottle"`
	UnitCost       float64 `json:"unit_cost" binding:"required,gt=0,lte=1000000000" example:"10"`
	AnnualVolume   int     `json:"annual_volume" binding:"required,gt=0,lte=1000000000" example:"1000"`
	CurrentCountry string  `json:"current_country" binding:"required" example:"china"`
	CompareCountry string  `json:"compare_country" binding:"required" example:"mexico"`
} // @name CompareRequest

// Validate performs custom validation on the request.
func (r *CompareRequest) Validate() error {
	if err := ValidateLane(r.UnitCost, r.AnnualVolume, r.CurrentCountry); err != nil {
		return err
	}
	if strings.TrimSpace(r.CompareCountry) == "" {
		return ErrMissingCompare
	}
	return nil
}

// RankRequest is the body of POST /api/rank.
//
// @Description Single-SKU analysis request
type RankRequest struct {
	ProductName    string  `json:"product_name" example:"Insulated bottle"`
	Description    string  `json:"description,omitempty" example:"24oz stainless steel vacuum bottle"`
	HSCode         string  `json:"hs_code,omitempty" example:"732393"`
	UnitCost       float64 `json:"unit_cost" binding:"required,gt=0,lte=1000000000" example:"10"`
	AnnualVolume   int     `json:"annual_volume" binding:"required,gt=0,lte=1000000000" example:"1000"`
	CurrentCountry string  `json:"current_country" binding:"required" example:"china"`
	Priority       string  `json:"priority,omitempty" enums:"cost,nearshore,us,balance" example:"cost"`
} // @name RankRequest

// Validate performs custom validation on the request.
func (r *RankRequest) Validate() error {
	return ValidateLane(r.UnitCost, r.AnnualVolume, r.CurrentCountry)
}

// PortfolioItemRequest is one SKU in a portfolio request.
type PortfolioItemRequest struct {
	Label          string  `json:"label" example:"Bottle 24oz Black"`
	Description    string  `json:"description,omitempty" example:"24oz stainless steel vacuum bottle"`
	HSCode         string  `json:"hs_code,omitempty" example:"732393"`
	UnitCost       float64 `json:"unit_cost" binding:"required,gt=0,lte=1000000000" example:"10"`
	AnnualVolume   int     `json:"annual_volume" binding:"required,gt=0,lte=1000000000" example:"1000"`
	CurrentCountry string  `json:"current_country" binding:"required" example:"china"`
} // @name PortfolioItemRequest

// PortfolioRequest is the body of POST /api/portfolio.
//
// @Description Multi-SKU analysis request
type PortfolioRequest struct {
	Items    []PortfolioItemRequest `json:"items" binding:"required,min=1,dive"`
	Priority string                 `json:"priority,omitempty" enums:"cost,nearshore,us,balance" example:"cost"`
} // @name PortfolioRequest

// Validate checks that there is at least one item and that each is complete.
// The returned error names the offending item. Binding tags cover the same
// rules for JSON bodies; Validate also serves callers that build requests in code.
func (r *PortfolioRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrMissingItems
	}
	for i, item := range r.Items {
		if err := ValidateLane(item.UnitCost, item.AnnualVolume, item.CurrentCountry); err != nil {
			ve := err.(*ValidationError)
			return &ValidationError{Field: "items[" + strconv.Itoa(i) + "]." + ve.Field, Message: ve.Message}
		}
	}
	return nil
}

// ToModel converts the request items to domain items.
func (r *PortfolioRequest) ToModel() []model.PortfolioItem {
	items := make([]model.PortfolioItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = model.PortfolioItem{
			Label:             strings.TrimSpace(it.Label),
			Description:       it.Description,
			HSCode:            it.HSCode,
			UnitCost:          it.UnitCost,
			AnnualVolume:      it.AnnualVolume,
			CurrentCountryKey: normalizeKey(it.CurrentCountry),
		}
	}
	return items
}

// HSCodeRequest is the body of POST /api/hs-code.
//
// @Description HS-code suggestion request
type HSCodeRequest struct {
	ProductName string `json:"product_name,omitempty" example:"Insulated bottle"`
	Description string `json:"description" example:"24oz stainless steel vacuum bottle"`
} // @name HSCodeRequest

// Validate performs custom validation on the request.
func (r *HSCodeRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" && strings.TrimSpace(r.ProductName) == "" {
		return ErrMissingDescription
	}
	return nil
}

// SaveRunRequest is the body of POST /api/runs.
//
// @Description Save a portfolio report
type SaveRunRequest struct {
	Label  string                `json:"label,omitempty" example:"Q3 bottle review"`
	Report model.PortfolioReport `json:"report"`
} // @name SaveRunRequest

// Validate rejects reports without rows.
func (r *SaveRunRequest) Validate() error {
	if len(r.Report.Rows) == 0 {
		return ErrEmptyReport
	}
	return nil
}

// NormalizeCountry lowercases and trims a country key.
func NormalizeCountry(key string) string {
	return normalizeKey(key)
}

// NormalizePriority maps the wire value to a model.Priority.
func NormalizePriority(p string) model.Priority {
	return model.Priority(strings.ToLower(strings.TrimSpace(p))).Normalize()
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
