package services

import (
	"errors"

	"gorm.io/gorm"

	"plutus/internal/calc"
	apperrors "plutus/internal/errors"
	"plutus/internal/models"
	"plutus/internal/pagination"
)

// liabilityService handles liability business logic.
type liabilityService struct {
	db *gorm.DB
}

// NewLiabilityService creates a new LiabilityServicer.
func NewLiabilityService(db *gorm.DB) LiabilityServicer {
	return &liabilityService{db: db}
}

// CreateLiability creates a new liability.
func (s *liabilityService) CreateLiability(name string, liabilityType models.LiabilityType, balance, interestRate float64, payment *models.PaymentSchedule, notes string) (*models.Liability, error) {
	liability := &models.Liability{
		Name:         name,
		Type:         liabilityType,
		Balance:      balance,
		InterestRate: interestRate,
		Payment:      payment,
		Notes:        notes,
	}
	if err := s.db.Create(liability).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return liability, nil
}

// GetLiabilities returns a paginated list of liabilities.
func (s *liabilityService) GetLiabilities(page pagination.PageRequest) (*pagination.PageResponse[models.Liability], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Liability{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var liabilities []models.Liability
	if err := s.db.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&liabilities).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(liabilities, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetLiabilityByID returns a single liability.
func (s *liabilityService) GetLiabilityByID(liabilityID string) (*models.Liability, error) {
	var liability models.Liability
	if err := s.db.First(&liability, "id = ?", liabilityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLiabilityNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &liability, nil
}

// UpdateLiability updates a liability. Nil pointers leave the corresponding
// field unchanged; the payment schedule is replaced when provided.
func (s *liabilityService) UpdateLiability(liabilityID, name string, balance, interestRate *float64, payment *models.PaymentSchedule, notes *string) (*models.Liability, error) {
	liability, err := s.GetLiabilityByID(liabilityID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		liability.Name = name
	}
	if balance != nil {
		liability.Balance = *balance
	}
	if interestRate != nil {
		liability.InterestRate = *interestRate
	}
	if payment != nil {
		liability.Payment = payment
	}
	if notes != nil {
		liability.Notes = *notes
	}

	if err := s.db.Save(liability).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return liability, nil
}

// DeleteLiability soft-deletes a liability.
func (s *liabilityService) DeleteLiability(liabilityID string) error {
	if _, err := s.GetLiabilityByID(liabilityID); err != nil {
		return err
	}
	if err := s.db.Delete(&models.Liability{}, "id = ?", liabilityID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// MonthlyPaymentTotal returns the monthly-equivalent total of all liability
// payments.
func (s *liabilityService) MonthlyPaymentTotal() (float64, error) {
	var liabilities []models.Liability
	if err := s.db.Find(&liabilities).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var total float64
	for i := range liabilities {
		total += calc.MonthlyFromSchedule(liabilities[i].Payment)
	}
	return total, nil
}
