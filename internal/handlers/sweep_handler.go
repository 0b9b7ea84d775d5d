package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/pagination"
	"rentfolio/internal/services"
)

// SweepHandler handles sweep trigger and inspection requests.
type SweepHandler struct {
	sweepService services.SweepServicer
	auditService services.AuditServicer
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(sweepService services.SweepServicer, auditService services.AuditServicer) *SweepHandler {
	return &SweepHandler{sweepService: sweepService, auditService: auditService}
}

// TriggerSweep handles running a backfill sweep on demand. The route is
// authenticated with the sweep API key rather than a bearer token, so the
// audit actor is fixed.
// @Summary     Trigger a sweep
// @Description Run a backfill sweep over all recurring obligations, materializing overdue occurrences
// @Tags        sweep
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "Sweep API key"
// @Success     200 {object} models.SweepRun "Completed sweep run"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     409 {object} ErrorResponse "Sweep already in progress"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sweep [post]
func (h *SweepHandler) TriggerSweep(c *gin.Context) {
	run, err := h.sweepService.Run(c.Request.Context(), "manual")
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("cron", "TRIGGER_SWEEP", "sweep_run", run.ID, c.ClientIP(),
		map[string]interface{}{"instances_created": run.InstancesCreated, "roots_failed": run.RootsFailed})

	c.JSON(http.StatusOK, gin.H{"sweep_run": run})
}

// GetSweepRuns handles listing past sweep runs.
// @Summary     Get sweep runs
// @Description Get a paginated history of sweep runs, most recent first
// @Tags        sweep
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.SweepRun] "Paginated sweep runs"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sweep/runs [get]
func (h *SweepHandler) GetSweepRuns(c *gin.Context) {
	if _, err := getActor(c); err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.sweepService.ListRuns(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
