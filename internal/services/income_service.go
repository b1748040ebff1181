package services

import (
	"errors"

	"gorm.io/gorm"

	"plutus/internal/calc"
	apperrors "plutus/internal/errors"
	"plutus/internal/models"
	"plutus/internal/pagination"
)

// incomeService handles income-source business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// CreateIncomeSource creates a recurring income stream.
func (s *incomeService) CreateIncomeSource(name string, category models.IncomeCategory, schedule *models.PaymentSchedule, notes string) (*models.IncomeSource, error) {
	if category == "" {
		category = models.IncomeCategoryActive
	}

	income := &models.IncomeSource{
		Name:     name,
		Category: category,
		Schedule: schedule,
		Notes:    notes,
	}
	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// GetIncomeSources returns a paginated list of income sources.
func (s *incomeService) GetIncomeSources(page pagination.PageRequest) (*pagination.PageResponse[models.IncomeSource], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.IncomeSource{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.IncomeSource
	if err := s.db.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetIncomeSourceByID returns a single income source.
func (s *incomeService) GetIncomeSourceByID(incomeID string) (*models.IncomeSource, error) {
	var income models.IncomeSource
	if err := s.db.First(&income, "id = ?", incomeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeSourceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// UpdateIncomeSource updates an income source.
func (s *incomeService) UpdateIncomeSource(incomeID, name string, category models.IncomeCategory, schedule *models.PaymentSchedule, notes string) (*models.IncomeSource, error) {
	income, err := s.GetIncomeSourceByID(incomeID)
	if err != nil {
		return nil, err
	}

	income.Name = name
	if category != "" {
		income.Category = category
	}
	income.Schedule = schedule
	income.Notes = notes

	if err := s.db.Save(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// DeleteIncomeSource soft-deletes an income source.
func (s *incomeService) DeleteIncomeSource(incomeID string) error {
	if _, err := s.GetIncomeSourceByID(incomeID); err != nil {
		return err
	}
	if err := s.db.Delete(&models.IncomeSource{}, "id = ?", incomeID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// MonthlyTotals returns the monthly-equivalent totals of all income sources,
// split into active and passive.
func (s *incomeService) MonthlyTotals() (active float64, passive float64, err error) {
	var incomes []models.IncomeSource
	if err := s.db.Find(&incomes).Error; err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range incomes {
		monthly := calc.MonthlyFromSchedule(incomes[i].Schedule)
		if incomes[i].Category == models.IncomeCategoryPassive {
			passive += monthly
		} else {
			active += monthly
		}
	}
	return active, passive, nil
}
