package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/sourcing-lens/internal/domain/dto"
	"github.com/guttosm/sourcing-lens/internal/middleware"
	"github.com/guttosm/sourcing-lens/internal/service"
)

// RunsHandler serves saved portfolio runs for the verified caller.
type RunsHandler struct {
	runs service.RunStore
}

// NewRunsHandler creates a new RunsHandler.
func NewRunsHandler(runs service.RunStore) *RunsHandler {
	return &RunsHandler{runs: runs}
}

// SaveRun handles POST /api/runs.
//
// @Summary      Save a portfolio report
// @Description  Stores a report under the caller's identity. Retries with the same Idempotency-Key replay the first response.
// @Tags         Runs
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Deduplication key"
// @Param        request body dto.SaveRunRequest true "Report to save"
// @Success      201 {object} dto.SuccessResponse{data=model.Run}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "same key still in progress"
// @Failure      503 {object} dto.ErrorResponse "run store disabled or unavailable"
// @Security     BearerAuth
// @Router       /api/runs [post]
func (h *RunsHandler) SaveRun(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SaveRunRequest](c)
	if err != nil {
		builder.BindError(err)
		return
	}

	run, err := h.runs.Save(c.Request.Context(), middleware.GetUserID(c), req.Label, &req.Report)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessCreated(run)
}

// ListRuns handles GET /api/runs.
//
// @Summary      List saved runs
// @Description  Returns the caller's runs, newest first.
// @Tags         Runs
// @Produce      json
// @Param        limit query int false "Maximum runs to return (default 50, max 200)"
// @Success      200 {object} dto.SuccessResponse{data=dto.RunListResponse}
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/runs [get]
func (h *RunsHandler) ListRuns(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			builder.BindError(&dto.ValidationError{Field: "limit", Message: "must be a non-negative integer"})
			return
		}
		limit = n
	}

	runs, err := h.runs.List(c.Request.Context(), middleware.GetUserID(c), limit)
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(dto.RunListResponse{Runs: runs, Count: len(runs)})
}

// GetRun handles GET /api/runs/:id.
//
// @Summary      Fetch a saved run
// @Tags         Runs
// @Produce      json
// @Param        id path string true "Run id"
// @Success      200 {object} dto.SuccessResponse{data=model.Run}
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      503 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/runs/{id} [get]
func (h *RunsHandler) GetRun(c *gin.Context) {
	run, err := h.runs.Get(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	NewResponseBuilder(c).SuccessOK(run)
}
