package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "plutus/internal/errors"
	"plutus/internal/models"
	"plutus/internal/pagination"
	"plutus/internal/services"
)

// AssetHandler handles asset-related requests.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateAssetRequest represents the request payload for creating an asset.
type CreateAssetRequest struct {
	Name             string                  `json:"name" binding:"required,min=1,max=100"`
	Type             string                  `json:"type" binding:"required,asset_type"`
	Currency         string                  `json:"currency" binding:"omitempty,iso4217"`
	Value            float64                 `json:"value" binding:"gte=0"`
	PurchaseQuantity float64                 `json:"purchase_quantity" binding:"gte=0"`
	CurrentPrice     float64                 `json:"current_price" binding:"gte=0"`
	InterestRate     float64                 `json:"interest_rate" binding:"gte=0,lte=100"`
	Notes            string                  `json:"notes" binding:"max=500"`
	DividendInfo     *PaymentScheduleRequest `json:"dividend_info"`
	RentalInfo       *RentalInfoRequest      `json:"rental_info"`
}

// RentalInfoRequest represents rental details in request payloads.
type RentalInfoRequest struct {
	BaseRent float64 `json:"base_rent" binding:"gte=0"`
}

// TransactionRequest represents the request payload for recording a buy or sell.
type TransactionRequest struct {
	Date         time.Time `json:"date" binding:"required"`
	Quantity     float64   `json:"quantity" binding:"required,gt=0"`
	PricePerUnit float64   `json:"price_per_unit" binding:"gte=0"`
	Fee          float64   `json:"fee" binding:"gte=0"`
	Notes        string    `json:"notes" binding:"max=500"`
}

func (r *CreateAssetRequest) toInput() services.AssetInput {
	var rental *models.RentalInfo
	if r.RentalInfo != nil {
		rental = &models.RentalInfo{BaseRent: r.RentalInfo.BaseRent}
	}
	return services.AssetInput{
		Name:             r.Name,
		Type:             models.AssetType(r.Type),
		Currency:         r.Currency,
		Value:            r.Value,
		PurchaseQuantity: r.PurchaseQuantity,
		CurrentPrice:     r.CurrentPrice,
		InterestRate:     r.InterestRate,
		Notes:            r.Notes,
		DividendInfo:     r.DividendInfo.toModel(),
		RentalInfo:       rental,
	}
}

// CreateAsset handles the creation of a new asset.
// @Summary     Create an asset
// @Description Create a new asset holding
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     201 {object} models.Asset "Asset created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.CreateAsset(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// GetAssets returns a paginated list of assets.
// @Summary     List assets
// @Description List assets, optionally filtered by type
// @Tags        assets
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       type query string false "Asset type filter"
// @Success     200 {object} pagination.PageResponse[models.Asset] "Assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) GetAssets(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var assetType *models.AssetType
	if raw := c.Query("type"); raw != "" {
		at := models.AssetType(raw)
		assetType = &at
	}

	result, err := h.assetService.GetAssets(page, assetType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAsset returns a single asset.
// @Summary     Get an asset
// @Tags        assets
// @Produce     json
// @Param       id path string true "Asset ID"
// @Success     200 {object} models.Asset "Asset"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.assetService.GetAssetByID(assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// UpdateAsset updates an asset.
// @Summary     Update an asset
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id path string true "Asset ID"
// @Param       request body CreateAssetRequest true "Asset details"
// @Success     200 {object} models.Asset "Asset updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.UpdateAsset(assetID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// DeleteAsset deletes an asset.
// @Summary     Delete an asset
// @Tags        assets
// @Produce     json
// @Param       id path string true "Asset ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.DeleteAsset(assetID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RecordBuy records a buy transaction against an asset.
// @Summary     Record a buy
// @Description Record a buy transaction, increasing the asset's quantity
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id path string true "Asset ID"
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.AssetTransaction "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /assets/{id}/buy [post]
func (h *AssetHandler) RecordBuy(c *gin.Context) {
	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.assetService.RecordBuy(assetID, req.Date, req.Quantity, req.PricePerUnit, req.Fee, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// RecordSell records a sell transaction against an asset.
// @Summary     Record a sell
// @Description Record a sell transaction, decreasing the asset's quantity
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       id path string true "Asset ID"
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.AssetTransaction "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient quantity"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /assets/{id}/sell [post]
func (h *AssetHandler) RecordSell(c *gin.Context) {
	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.assetService.RecordSell(assetID, req.Date, req.Quantity, req.PricePerUnit, req.Fee, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetAssetTransactions returns a paginated list of an asset's transactions.
// @Summary     List asset transactions
// @Tags        assets
// @Produce     json
// @Param       id path string true "Asset ID"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.AssetTransaction] "Transactions"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /assets/{id}/transactions [get]
func (h *AssetHandler) GetAssetTransactions(c *gin.Context) {
	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.assetService.GetAssetTransactions(assetID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAssetIncome returns the asset's income figures.
// @Summary     Get asset income
// @Description Get the asset's monthly and annual income with per-month breakdown
// @Tags        assets
// @Produce     json
// @Param       id path string true "Asset ID"
// @Success     200 {object} calc.IncomeResult "Income figures"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /assets/{id}/income [get]
func (h *AssetHandler) GetAssetIncome(c *gin.Context) {
	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.assetService.GetAssetIncome(assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": result})
}

// RefreshIncomeCaches recomputes stale income calculations for all assets.
// @Summary     Refresh income caches
// @Description Recompute the income calculation for every asset with a stale or missing cache
// @Tags        assets
// @Produce     json
// @Success     200 {object} map[string]int "Refresh count"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/income/refresh [post]
func (h *AssetHandler) RefreshIncomeCaches(c *gin.Context) {
	refreshed, err := h.assetService.RefreshIncomeCaches()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"refreshed": refreshed})
}
