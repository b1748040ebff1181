package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "plutus/internal/errors"
	"plutus/internal/models"
	"plutus/internal/pagination"
	"plutus/internal/services"
)

// LiabilityHandler handles liability requests.
type LiabilityHandler struct {
	liabilityService services.LiabilityServicer
}

// NewLiabilityHandler creates a new LiabilityHandler.
func NewLiabilityHandler(liabilityService services.LiabilityServicer) *LiabilityHandler {
	return &LiabilityHandler{liabilityService: liabilityService}
}

// CreateLiabilityRequest represents the request payload for creating a liability.
type CreateLiabilityRequest struct {
	Name         string                  `json:"name" binding:"required,min=1,max=100"`
	Type         string                  `json:"type" binding:"required,liability_type"`
	Balance      float64                 `json:"balance" binding:"gte=0"`
	InterestRate float64                 `json:"interest_rate" binding:"gte=0,lte=100"`
	Payment      *PaymentScheduleRequest `json:"payment"`
	Notes        string                  `json:"notes" binding:"max=500"`
}

// UpdateLiabilityRequest represents the request payload for updating a
// liability. Omitted fields are left unchanged.
type UpdateLiabilityRequest struct {
	Name         string                  `json:"name" binding:"omitempty,min=1,max=100"`
	Balance      *float64                `json:"balance" binding:"omitempty,gte=0"`
	InterestRate *float64                `json:"interest_rate" binding:"omitempty,gte=0,lte=100"`
	Payment      *PaymentScheduleRequest `json:"payment"`
	Notes        *string                 `json:"notes" binding:"omitempty,max=500"`
}

// CreateLiability handles the creation of a liability.
// @Summary     Create a liability
// @Tags        liabilities
// @Accept      json
// @Produce     json
// @Param       request body CreateLiabilityRequest true "Liability details"
// @Success     201 {object} models.Liability "Liability created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /liabilities [post]
func (h *LiabilityHandler) CreateLiability(c *gin.Context) {
	var req CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	liability, err := h.liabilityService.CreateLiability(req.Name, models.LiabilityType(req.Type), req.Balance, req.InterestRate, req.Payment.toModel(), req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"liability": liability})
}

// GetLiabilities returns a paginated list of liabilities.
// @Summary     List liabilities
// @Tags        liabilities
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Liability] "Liabilities"
// @Router      /liabilities [get]
func (h *LiabilityHandler) GetLiabilities(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.liabilityService.GetLiabilities(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLiability returns a single liability.
// @Summary     Get a liability
// @Tags        liabilities
// @Produce     json
// @Param       id path string true "Liability ID"
// @Success     200 {object} models.Liability "Liability"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /liabilities/{id} [get]
func (h *LiabilityHandler) GetLiability(c *gin.Context) {
	liabilityID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	liability, err := h.liabilityService.GetLiabilityByID(liabilityID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liability": liability})
}

// UpdateLiability updates a liability.
// @Summary     Update a liability
// @Tags        liabilities
// @Accept      json
// @Produce     json
// @Param       id path string true "Liability ID"
// @Param       request body UpdateLiabilityRequest true "Liability details"
// @Success     200 {object} models.Liability "Liability updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /liabilities/{id} [put]
func (h *LiabilityHandler) UpdateLiability(c *gin.Context) {
	liabilityID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	liability, err := h.liabilityService.UpdateLiability(liabilityID, req.Name, req.Balance, req.InterestRate, req.Payment.toModel(), req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liability": liability})
}

// DeleteLiability deletes a liability.
// @Summary     Delete a liability
// @Tags        liabilities
// @Produce     json
// @Param       id path string true "Liability ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /liabilities/{id} [delete]
func (h *LiabilityHandler) DeleteLiability(c *gin.Context) {
	liabilityID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.liabilityService.DeleteLiability(liabilityID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
