package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "plutus/internal/errors"
	"plutus/internal/pagination"
	"plutus/internal/services"
)

// SnapshotHandler handles net worth snapshot requests.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// RecordSnapshot computes and stores a net worth snapshot for the current time.
// @Summary     Record a snapshot
// @Description Compute and store a net worth snapshot now
// @Tags        snapshots
// @Produce     json
// @Success     201 {object} models.NetWorthSnapshot "Snapshot recorded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /snapshots [post]
func (h *SnapshotHandler) RecordSnapshot(c *gin.Context) {
	snapshot, err := h.snapshotService.ComputeAndRecordSnapshot(time.Now().UTC().Truncate(time.Second))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}

// GetSnapshots returns paginated snapshots within an optional date range.
// @Summary     List snapshots
// @Description List net worth snapshots, optionally bounded by from/to dates (RFC 3339)
// @Tags        snapshots
// @Produce     json
// @Param       from query string false "Start of range (RFC 3339)"
// @Param       to query string false "End of range (RFC 3339)"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.NetWorthSnapshot] "Snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /snapshots [get]
func (h *SnapshotHandler) GetSnapshots(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	from, err := parseTimeQuery(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.snapshotService.GetSnapshots(from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseTimeQuery parses an optional RFC 3339 query parameter.
func parseTimeQuery(c *gin.Context, param string) (*time.Time, error) {
	raw := c.Query(param)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return &t, nil
}
