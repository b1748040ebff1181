package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "plutus/internal/errors"
	"plutus/internal/models"
	"plutus/internal/pagination"
	"plutus/internal/services"
)

// IncomeHandler handles income-source requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// IncomeSourceRequest represents the request payload for creating or updating
// an income source.
type IncomeSourceRequest struct {
	Name     string                  `json:"name" binding:"required,min=1,max=100"`
	Category string                  `json:"category" binding:"omitempty,income_category"`
	Schedule *PaymentScheduleRequest `json:"schedule"`
	Notes    string                  `json:"notes" binding:"max=500"`
}

// CreateIncomeSource handles the creation of an income source.
// @Summary     Create an income source
// @Tags        income
// @Accept      json
// @Produce     json
// @Param       request body IncomeSourceRequest true "Income source details"
// @Success     201 {object} models.IncomeSource "Income source created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /income [post]
func (h *IncomeHandler) CreateIncomeSource(c *gin.Context) {
	var req IncomeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	income, err := h.incomeService.CreateIncomeSource(req.Name, models.IncomeCategory(req.Category), req.Schedule.toModel(), req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"income_source": income})
}

// GetIncomeSources returns a paginated list of income sources.
// @Summary     List income sources
// @Tags        income
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.IncomeSource] "Income sources"
// @Router      /income [get]
func (h *IncomeHandler) GetIncomeSources(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.incomeService.GetIncomeSources(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetIncomeSource returns a single income source.
// @Summary     Get an income source
// @Tags        income
// @Produce     json
// @Param       id path string true "Income source ID"
// @Success     200 {object} models.IncomeSource "Income source"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /income/{id} [get]
func (h *IncomeHandler) GetIncomeSource(c *gin.Context) {
	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.GetIncomeSourceByID(incomeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income_source": income})
}

// UpdateIncomeSource updates an income source.
// @Summary     Update an income source
// @Tags        income
// @Accept      json
// @Produce     json
// @Param       id path string true "Income source ID"
// @Param       request body IncomeSourceRequest true "Income source details"
// @Success     200 {object} models.IncomeSource "Income source updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /income/{id} [put]
func (h *IncomeHandler) UpdateIncomeSource(c *gin.Context) {
	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req IncomeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	income, err := h.incomeService.UpdateIncomeSource(incomeID, req.Name, models.IncomeCategory(req.Category), req.Schedule.toModel(), req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income_source": income})
}

// DeleteIncomeSource deletes an income source.
// @Summary     Delete an income source
// @Tags        income
// @Produce     json
// @Param       id path string true "Income source ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /income/{id} [delete]
func (h *IncomeHandler) DeleteIncomeSource(c *gin.Context) {
	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncomeSource(incomeID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
