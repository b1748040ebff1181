package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "plutus/internal/errors"
	"plutus/internal/logger"
	"plutus/internal/models"
	"plutus/internal/uuid"
)

// ErrorDetail is the inner error payload of an ErrorResponse.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// parsePathID validates a UUID path parameter and returns it.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
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

// PaymentScheduleRequest represents a payment schedule in request payloads.
type PaymentScheduleRequest struct {
	Frequency     string          `json:"frequency" binding:"required,payment_frequency"`
	Amount        float64         `json:"amount" binding:"gte=0"`
	Months        []int           `json:"months" binding:"omitempty,dive,min=1,max=12"`
	CustomAmounts map[int]float64 `json:"custom_amounts"`
}

// toModel converts the request schedule to its model form. Returns nil for a
// nil request so optional schedules pass through.
func (r *PaymentScheduleRequest) toModel() *models.PaymentSchedule {
	if r == nil {
		return nil
	}
	return &models.PaymentSchedule{
		Frequency:     models.Frequency(r.Frequency),
		Amount:        r.Amount,
		Months:        r.Months,
		CustomAmounts: r.CustomAmounts,
	}
}
