package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/sourcing-lens/internal/circuitbreaker"
	"github.com/guttosm/sourcing-lens/internal/domain/dto"
	"github.com/guttosm/sourcing-lens/internal/i18n"
	"github.com/guttosm/sourcing-lens/internal/service"
)

// Handler serves the analysis endpoints.
type Handler struct {
	analyzer service.Analyzer
}

// NewHandler creates a new Handler instance.
func NewHandler(analyzer service.Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// ListCountries handles GET /api/countries.
//
// @Summary      List sourcing countries
// @Description  Returns the active country table in ranking order.
// @Tags         Analysis
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.CountryProfile}
// @Failure      401 {object} dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/countries [get]
func (h *Handler) ListCountries(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.analyzer.Countries())
}

// Compare handles POST /api/compare.
//
// @Summary      Compare two lanes
// @Description  Computes the landed cost of the current lane and one alternative and returns the annual delta with a one-line verdict.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request body dto.CompareRequest true "Lanes to compare"
// @Success      200 {object} dto.SuccessResponse{data=model.Comparison}
// @Failure      400 {object} dto.ErrorResponse "invalid_request or invalid_country"
// @Failure      401 {object} dto.ErrorResponse
// @Failure      429 {object} dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/compare [post]
func (h *Handler) Compare(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CompareRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	result, err := h.analyzer.Compare(c.Request.Context(), service.CompareInput{
		UnitCost:       req.UnitCost,
		AnnualVolume:   req.AnnualVolume,
		CurrentCountry: dto.NormalizeCountry(req.CurrentCountry),
		CompareCountry: dto.NormalizeCountry(req.CompareCountry),
	})
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(result)
}

// Rank handles POST /api/rank.
//
// @Summary      Analyze one SKU
// @Description  Resolves an indicative HS code (when lookup is enabled and none is supplied), then ranks every lane by the requested priority.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request body dto.RankRequest true "SKU to analyze"
// @Success      200 {object} dto.SuccessResponse{data=service.SKUAnalysis}
// @Failure      400 {object} dto.ErrorResponse "invalid_request or invalid_country"
// @Failure      401 {object} dto.ErrorResponse
// @Failure      429 {object} dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/rank [post]
func (h *Handler) Rank(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.RankRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	result, err := h.analyzer.AnalyzeSKU(c.Request.Context(), service.SKUInput{
		ProductName:    req.ProductName,
		Description:    req.Description,
		HSCode:         req.HSCode,
		UnitCost:       req.UnitCost,
		AnnualVolume:   req.AnnualVolume,
		CurrentCountry: dto.NormalizeCountry(req.CurrentCountry),
		Priority:       dto.NormalizePriority(req.Priority),
	})
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(result)
}

// Portfolio handles POST /api/portfolio.
//
// @Summary      Analyze a portfolio
// @Description  Ranks every SKU, sums positive savings and returns a report with narrative, risk summary and next steps. Items that cannot be ranked are listed in errors; the rest of the report is still returned.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request body dto.PortfolioRequest true "Portfolio items"
// @Success      200 {object} dto.SuccessResponse{data=model.PortfolioReport}
// @Failure      400 {object} dto.ErrorResponse "invalid_request or too_many_items"
// @Failure      401 {object} dto.ErrorResponse
// @Failure      429 {object} dto.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/portfolio [post]
func (h *Handler) Portfolio(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.PortfolioRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	report, err := h.analyzer.AnalyzePortfolio(c.Request.Context(), req.ToModel(), dto.NormalizePriority(req.Priority))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(report)
}

// SuggestHSCode handles POST /api/hs-code.
//
// @Summary      Suggest an HS code
// @Description  Asks the configured inference endpoint for an indicative 4-6 digit HS code. The suggestion is not a customs ruling.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request body dto.HSCodeRequest true "Product to classify"
// @Success      200 {object} dto.SuccessResponse{data=model.HSCodeSuggestion}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      502 {object} dto.ErrorResponse "lookup failed"
// @Failure      503 {object} dto.ErrorResponse "lookup disabled or circuit open"
// @Security     ApiKeyAuth
// @Router       /api/hs-code [post]
func (h *Handler) SuggestHSCode(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.HSCodeRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	suggestion, err := h.analyzer.SuggestHSCode(c.Request.Context(), req.ProductName, req.Description)
	if err == nil {
		builder.SuccessOK(suggestion)
		return
	}

	switch status, _, _ := classify(err); {
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.ErrorWithCode(http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyHSLookupFailed, nil)
	case status == http.StatusInternalServerError:
		builder.ErrorWithCode(http.StatusBadGateway, dto.ErrCodeUnavailable, i18n.ErrKeyHSLookupFailed, err)
	default:
		builder.Fail(err)
	}
}
