package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "rentfolio/internal/errors"
	"rentfolio/internal/logger"
	"rentfolio/internal/uuid"
)

// dateLayout is the wire format for all obligation dates. Times of day are
// never meaningful here, so the API speaks plain calendar dates.
const dateLayout = "2006-01-02"

// getActor extracts the authenticated caller from the Gin context.
// Returns ErrUnauthorized if not present.
func getActor(c *gin.Context) (string, error) {
	actor, exists := c.Get("actor")
	if !exists {
		return "", apperrors.ErrUnauthorized
	}
	return actor.(string), nil
}

// parseUUIDParam parses a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parseUUIDParam(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseDateField parses a YYYY-MM-DD request field into a UTC date.
func parseDateField(value, field string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, field+" must be a date in YYYY-MM-DD format")
	}
	return d, nil
}

// parseOptionalDateField parses an optional YYYY-MM-DD request field,
// returning nil when the field was omitted.
func parseOptionalDateField(value *string, field string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	d, err := parseDateField(*value, field)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
