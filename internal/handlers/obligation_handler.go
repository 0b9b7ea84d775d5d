package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/models"
	"rentfolio/internal/pagination"
	"rentfolio/internal/recurrence"
	"rentfolio/internal/services"
	"rentfolio/internal/uuid"
)

// ObligationHandler handles obligation-related requests.
type ObligationHandler struct {
	obligationService services.ObligationServicer
	seriesService     services.SeriesServicer
	auditService      services.AuditServicer
}

// NewObligationHandler creates a new ObligationHandler.
func NewObligationHandler(obligationService services.ObligationServicer, seriesService services.SeriesServicer, auditService services.AuditServicer) *ObligationHandler {
	return &ObligationHandler{obligationService: obligationService, seriesService: seriesService, auditService: auditService}
}

// CreateObligationRequest represents the request payload for creating an obligation.
// All dates are plain calendar dates in YYYY-MM-DD form.
type CreateObligationRequest struct {
	Kind       models.ObligationKind `json:"kind" binding:"required,obligation_kind"`
	Title      string                `json:"title" binding:"required,min=1,max=200"`
	Notes      string                `json:"notes" binding:"omitempty,max=2000"`
	Category   string                `json:"category" binding:"omitempty,max=100"`
	PropertyID *string               `json:"property_id" binding:"omitempty,uuid"`
	Amount     decimal.Decimal       `json:"amount" binding:"required"`
	Date       string                `json:"date" binding:"required"`

	IsRecurring        bool    `json:"is_recurring"`
	RecurringFrequency *string `json:"recurring_frequency" binding:"omitempty,recurring_frequency"`
	RecurringInterval  *int    `json:"recurring_interval"`
	RecurringEndDate   *string `json:"recurring_end_date"`

	TaxDeductible     bool    `json:"tax_deductible"`
	IsAmortized       bool    `json:"is_amortized"`
	AmortizationYears *int    `json:"amortization_years"`
	AmortizationStart *string `json:"amortization_start"`
}

// UpdateObligationRequest represents the request payload for updating an
// obligation. Omitted fields are left untouched.
type UpdateObligationRequest struct {
	Kind       *models.ObligationKind `json:"kind" binding:"omitempty,obligation_kind"`
	Title      *string                `json:"title" binding:"omitempty,max=200"`
	Notes      *string                `json:"notes" binding:"omitempty,max=2000"`
	Category   *string                `json:"category" binding:"omitempty,max=100"`
	PropertyID *string                `json:"property_id" binding:"omitempty,uuid"`
	Amount     *decimal.Decimal       `json:"amount"`
	Date       *string                `json:"date"`

	RecurringFrequency *string `json:"recurring_frequency" binding:"omitempty,recurring_frequency"`
	RecurringInterval  *int    `json:"recurring_interval"`
	RecurringEndDate   *string `json:"recurring_end_date"`
	ClearRecurringEnd  bool    `json:"clear_recurring_end"`

	TaxDeductible     *bool   `json:"tax_deductible"`
	IsAmortized       *bool   `json:"is_amortized"`
	AmortizationYears *int    `json:"amortization_years"`
	AmortizationStart *string `json:"amortization_start"`
}

// ScheduleResponse lists the projected due dates for a recurring series.
type ScheduleResponse struct {
	Dates []string `json:"dates"`
}

// CreateObligation handles the creation of a new obligation.
// @Summary     Create an obligation
// @Description Create a new obligation; a recurring obligation anchored in the past has its overdue occurrences materialized immediately
// @Tags        obligations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateObligationRequest true "Obligation details"
// @Success     201 {object} services.CreateResult "Obligation created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /obligations [post]
func (h *ObligationHandler) CreateObligation(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDateField(req.Date, "date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	recurringEnd, err := parseOptionalDateField(req.RecurringEndDate, "recurring_end_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	amortizationStart, err := parseOptionalDateField(req.AmortizationStart, "amortization_start")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.obligationService.Create(c.Request.Context(), services.CreateObligationParams{
		Kind:               req.Kind,
		Title:              req.Title,
		Notes:              req.Notes,
		Category:           req.Category,
		PropertyID:         req.PropertyID,
		Amount:             req.Amount,
		Date:               date,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: req.RecurringFrequency,
		RecurringInterval:  req.RecurringInterval,
		RecurringEndDate:   recurringEnd,
		TaxDeductible:      req.TaxDeductible,
		IsAmortized:        req.IsAmortized,
		AmortizationYears:  req.AmortizationYears,
		AmortizationStart:  amortizationStart,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor, "CREATE_OBLIGATION", "obligation", result.Obligation.ID, c.ClientIP(),
		map[string]interface{}{"kind": req.Kind, "title": req.Title, "amount": req.Amount, "is_recurring": req.IsRecurring})

	c.JSON(http.StatusCreated, result)
}

// GetObligations handles listing obligations.
// @Summary     Get obligations
// @Description Get a paginated list of obligations, most recent first
// @Tags        obligations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       kind           query string false "Filter by kind (expense/income)"
// @Param       category       query string false "Filter by category"
// @Param       property_id    query string false "Filter by property"
// @Param       from_date      query string false "Filter by date window start (YYYY-MM-DD)"
// @Param       to_date        query string false "Filter by date window end (YYYY-MM-DD)"
// @Param       recurring      query bool   false "Filter recurring roots"
// @Param       tax_deductible query bool   false "Filter tax-deductible obligations"
// @Param       page           query int    false "Page number (default 1)"
// @Param       page_size      query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Obligation] "Paginated obligations"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /obligations [get]
func (h *ObligationHandler) GetObligations(c *gin.Context) {
	if _, err := getActor(c); err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseObligationFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.obligationService.List(c.Request.Context(), page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseObligationFilter(c *gin.Context) (services.ObligationFilter, error) {
	var filter services.ObligationFilter

	if v := c.Query("kind"); v != "" {
		kind := models.ObligationKind(v)
		switch kind {
		case models.ObligationKindExpense, models.ObligationKindIncome:
			filter.Kind = &kind
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid kind, must be expense or income")
		}
	}

	if v := c.Query("category"); v != "" {
		category := v
		filter.Category = &category
	}

	if v := c.Query("property_id"); v != "" {
		if !uuid.IsValid(v) {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid property_id")
		}
		propertyID := v
		filter.PropertyID = &propertyID
	}

	if v := c.Query("from_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from_date, use YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if v := c.Query("to_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to_date, use YYYY-MM-DD")
		}
		filter.ToDate = &t
	}

	if v := c.Query("recurring"); v != "" {
		switch v {
		case "true":
			b := true
			filter.Recurring = &b
		case "false":
			b := false
			filter.Recurring = &b
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "recurring must be 'true' or 'false'")
		}
	}

	if v := c.Query("tax_deductible"); v != "" {
		switch v {
		case "true":
			b := true
			filter.TaxDeductible = &b
		case "false":
			b := false
			filter.TaxDeductible = &b
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "tax_deductible must be 'true' or 'false'")
		}
	}

	return filter, nil
}

// GetObligation handles retrieving a specific obligation.
// @Summary     Get obligation by ID
// @Description Get a specific obligation by ID
// @Tags        obligations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Obligation ID"
// @Success     200 {object} models.Obligation "Obligation details"
// @Failure     400 {object} ErrorResponse "Invalid obligation ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Obligation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /obligations/{id} [get]
func (h *ObligationHandler) GetObligation(c *gin.Context) {
	if _, err := getActor(c); err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	obligation, err := h.obligationService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"obligation": obligation})
}

// UpdateObligation handles updating an obligation with a mutation scope.
// @Summary     Update obligation
// @Description Update an obligation; for series members the scope selects how far the edit reaches
// @Tags        obligations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path  string                  true  "Obligation ID"
// @Param       scope   query string                  false "Mutation scope (this/future/all, default this)"
// @Param       request body  UpdateObligationRequest true  "Fields to update"
// @Success     200 {object} services.SeriesMutationResult "Mutation outcome"
// @Failure     400 {object} ErrorResponse "Invalid input or scope"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Obligation not found"
// @Failure     409 {object} ErrorResponse "Series in an inconsistent state"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /obligations/{id} [put]
func (h *ObligationHandler) UpdateObligation(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	scope, err := services.ParseScope(c.Query("scope"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDateField(req.Date, "date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	recurringEnd, err := parseOptionalDateField(req.RecurringEndDate, "recurring_end_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	amortizationStart, err := parseOptionalDateField(req.AmortizationStart, "amortization_start")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.seriesService.Update(c.Request.Context(), id, scope, services.UpdateObligationParams{
		Kind:               req.Kind,
		Title:              req.Title,
		Notes:              req.Notes,
		Category:           req.Category,
		PropertyID:         req.PropertyID,
		Amount:             req.Amount,
		Date:               date,
		RecurringFrequency: req.RecurringFrequency,
		RecurringInterval:  req.RecurringInterval,
		RecurringEndDate:   recurringEnd,
		ClearRecurringEnd:  req.ClearRecurringEnd,
		TaxDeductible:      req.TaxDeductible,
		IsAmortized:        req.IsAmortized,
		AmortizationYears:  req.AmortizationYears,
		AmortizationStart:  amortizationStart,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor, "UPDATE_OBLIGATION", "obligation", id, c.ClientIP(),
		map[string]interface{}{"scope": scope, "rows_affected": result.RowsAffected})

	c.JSON(http.StatusOK, result)
}

// DeleteObligation handles deleting an obligation with a mutation scope.
// @Summary     Delete obligation
// @Description Delete an obligation (soft delete); for series members the scope selects how far the delete reaches
// @Tags        obligations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id    path  string true  "Obligation ID"
// @Param       scope query string false "Mutation scope (this/future/all, default this)"
// @Success     200 {object} services.SeriesMutationResult "Mutation outcome"
// @Failure     400 {object} ErrorResponse "Invalid obligation ID or scope"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Obligation not found"
// @Failure     409 {object} ErrorResponse "Series in an inconsistent state"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /obligations/{id} [delete]
func (h *ObligationHandler) DeleteObligation(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	scope, err := services.ParseScope(c.Query("scope"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.seriesService.Delete(c.Request.Context(), id, scope)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor, "DELETE_OBLIGATION", "obligation", id, c.ClientIP(),
		map[string]interface{}{"scope": scope, "rows_affected": result.RowsAffected})

	c.JSON(http.StatusOK, result)
}

// GetObligationInstances handles listing the generated instances of a
// recurring root.
// @Summary     Get series instances
// @Description Get the generated occurrences of a recurring obligation in date order
// @Tags        obligations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Root obligation ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Obligation] "Paginated instances"
// @Failure     400 {object} ErrorResponse "Invalid ID or not a recurring root"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Obligation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /obligations/{id}/instances [get]
func (h *ObligationHandler) GetObligationInstances(c *gin.Context) {
	if _, err := getActor(c); err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.obligationService.ListInstances(c.Request.Context(), id, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetObligationSchedule handles projecting the upcoming due dates of a
// recurring series.
// @Summary     Get series schedule
// @Description Preview the upcoming due dates of a recurring series; an instance resolves to its root's schedule
// @Tags        obligations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path  string true  "Obligation ID"
// @Param       from query string false "Projection start date (YYYY-MM-DD, default today)"
// @Success     200 {object} ScheduleResponse "Projected due dates"
// @Failure     400 {object} ErrorResponse "Invalid ID or not recurring"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Obligation not found"
// @Failure     409 {object} ErrorResponse "Series in an inconsistent state"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /obligations/{id}/schedule [get]
func (h *ObligationHandler) GetObligationSchedule(c *gin.Context) {
	if _, err := getActor(c); err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	from := time.Now()
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from, use YYYY-MM-DD"))
			return
		}
		from = t
	}

	dates, err := h.obligationService.ProjectSchedule(c.Request.Context(), id, from)
	if err != nil {
		respondWithError(c, err)
		return
	}

	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		keys = append(keys, recurrence.DateKey(d))
	}

	c.JSON(http.StatusOK, ScheduleResponse{Dates: keys})
}
