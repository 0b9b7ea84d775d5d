package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/services"
)

// ReportHandler handles tax reporting requests.
type ReportHandler struct {
	deductionService services.DeductionServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(deductionService services.DeductionServicer) *ReportHandler {
	return &ReportHandler{deductionService: deductionService}
}

// GetDeductionReport handles building the deduction report for a tax year.
// @Summary     Get deduction report
// @Description Get the deductible expenses attributable to a calendar year, with amortized expenses contributing their yearly share
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year query int true "Calendar year"
// @Success     200 {object} services.DeductionReport "Deduction report"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/deductions [get]
func (h *ReportHandler) GetDeductionReport(c *gin.Context) {
	if _, err := getActor(c); err != nil {
		respondWithError(c, err)
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidYear)
		return
	}

	report, err := h.deductionService.YearReport(c.Request.Context(), year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetAmortizationStatus handles retrieving the write-off progress of an
// amortized expense.
// @Summary     Get amortization status
// @Description Get how far an amortized expense has been written off as of today
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Obligation ID"
// @Success     200 {object} amortization.Status "Amortization progress"
// @Failure     400 {object} ErrorResponse "Invalid ID or not amortized"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Obligation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /obligations/{id}/amortization [get]
func (h *ReportHandler) GetAmortizationStatus(c *gin.Context) {
	if _, err := getActor(c); err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	status, err := h.deductionService.AmortizationStatus(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"amortization": status})
}
