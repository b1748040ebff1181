package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "plutus/internal/errors"
	"plutus/internal/services"
)

// projection horizon bounds
const (
	defaultProjectionMonths = 12
	maxProjectionMonths     = 120
)

// ProjectionHandler handles projection and summary requests.
type ProjectionHandler struct {
	projectionService services.ProjectionServicer
}

// NewProjectionHandler creates a new ProjectionHandler.
func NewProjectionHandler(projectionService services.ProjectionServicer) *ProjectionHandler {
	return &ProjectionHandler{projectionService: projectionService}
}

// GetProjections returns month-by-month financial projections.
// @Summary     Get projections
// @Description Project income, expenses and cash flow for the coming months
// @Tags        projections
// @Produce     json
// @Param       months query int false "Projection horizon in months (default 12, max 120)"
// @Success     200 {array} calc.MonthlyProjection "Projections"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /projections [get]
func (h *ProjectionHandler) GetProjections(c *gin.Context) {
	months := defaultProjectionMonths
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxProjectionMonths {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid months"))
			return
		}
		months = parsed
	}

	projections, err := h.projectionService.GetProjections(months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projections": projections})
}

// GetSummary returns the current financial summary.
// @Summary     Get financial summary
// @Description Current net worth and monthly cash flow totals
// @Tags        projections
// @Produce     json
// @Success     200 {object} services.FinancialSummary "Summary"
// @Router      /summary [get]
func (h *ProjectionHandler) GetSummary(c *gin.Context) {
	summary, err := h.projectionService.GetSummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
