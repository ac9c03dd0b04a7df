package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HSStatus describes where an HS code came from, or why there is none.
type HSStatus string

const (
	HSStatusUserSupplied HSStatus = "user_supplied"
	HSStatusSuggested    HSStatus = "suggested"
	HSStatusUnavailable  HSStatus = "unavailable"
	HSStatusFailed       HSStatus = "failed"
	HSStatusSkipped      HSStatus = "skipped"
)

// HSCodeSuggestion is the answer of the HS-code inference service.
//
// @Description Indicative HS classification
type HSCodeSuggestion struct {
	// HSCode has 4 to 6 digits, or is empty when no usable code was returned.
	HSCode string `json:"hs_code" example:"732393"`
	Reason string `json:"reason,omitempty" example:"Stainless steel vacuum bottle"`
}

// PortfolioRow is one tabular row of a portfolio report, ready for export.
//
// @Description SKU-level summary row
type PortfolioRow struct {
	SKULabel        string   `json:"sku_label" bson:"sku_label" example:"Bottle 24oz Black"`
	CurrentLane     string   `json:"current_lane" bson:"current_lane" example:"China"`
	SuggestedLane   string   `json:"suggested_lane" bson:"suggested_lane" example:"India"`
	CurrentAnnual   float64  `json:"current_annual" bson:"current_annual" example:"11500"`
	SuggestedAnnual float64  `json:"suggested_annual" bson:"suggested_annual" example:"10924.8"`
	AnnualSavings   float64  `json:"annual_savings" bson:"annual_savings" example:"575.2"`
	HSCode          string   `json:"hs_code" bson:"hs_code" example:"732393"`
	HSStatus        HSStatus `json:"hs_status,omitempty" bson:"hs_status,omitempty" example:"suggested"`
	Volume          int      `json:"volume" bson:"volume" example:"1000"`
}

// RowError reports a portfolio row that could not be analyzed.
type RowError struct {
	Index    int    `json:"index" bson:"index"`
	SKULabel string `json:"sku_label" bson:"sku_label"`
	Error    string `json:"error" bson:"error"`
}

// PortfolioReport is the explicit result of a portfolio analysis.
// Callers hold it and hand it to the run store or an export formatter.
//
// @Description Portfolio analysis report
type PortfolioReport struct {
	TotalSavings float64        `json:"total_savings" bson:"total_savings" example:"575.2"`
	Rows         []PortfolioRow `json:"rows" bson:"rows"`
	Errors       []RowError     `json:"errors,omitempty" bson:"errors,omitempty"`
	Narrative    string         `json:"narrative" bson:"narrative"`
	RiskSummary  string         `json:"risk_summary" bson:"risk_summary"`
	NextSteps    []string       `json:"next_steps" bson:"next_steps"`
	CreatedAt    time.Time      `json:"created_at" bson:"created_at"`
}

// Run is a saved portfolio report owned by a user.
//
// @Description Saved analysis run
type Run struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID           string             `json:"user_id" bson:"user_id"`
	Label            string             `json:"label" bson:"label"`
	SKUCount         int                `json:"sku_count" bson:"sku_count"`
	EstimatedSavings float64            `json:"estimated_savings" bson:"estimated_savings"`
	Payload          PortfolioReport    `json:"payload" bson:"payload"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}
