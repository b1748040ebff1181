package models

import (
	"time"

	"plutus/internal/uuid"

	"gorm.io/gorm"
)

// NetWorthSnapshot represents a point-in-time snapshot of net worth.
// This is immutable time-series data — no Base embed, no soft deletes.
type NetWorthSnapshot struct {
	ID                    string    `gorm:"type:uuid;primaryKey" json:"id"`
	RecordedAt            time.Time `gorm:"not null" json:"recorded_at"`
	TotalNetWorth         float64   `gorm:"not null" json:"total_net_worth"`
	AssetValue            float64   `gorm:"not null" json:"asset_value"`
	LiabilityBalance      float64   `gorm:"not null" json:"liability_balance"`
	ProjectedAnnualIncome float64   `gorm:"not null" json:"projected_annual_income"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (s *NetWorthSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New()
	}
	return nil
}
