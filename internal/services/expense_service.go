package services

import (
	"errors"

	"gorm.io/gorm"

	"plutus/internal/calc"
	apperrors "plutus/internal/errors"
	"plutus/internal/models"
	"plutus/internal/pagination"
)

// expenseService handles expense business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense creates a recurring expense.
func (s *expenseService) CreateExpense(name, category string, schedule *models.PaymentSchedule, notes string) (*models.Expense, error) {
	expense := &models.Expense{
		Name:     name,
		Category: category,
		Schedule: schedule,
		Notes:    notes,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// GetExpenses returns a paginated list of expenses.
func (s *expenseService) GetExpenses(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Expense{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := s.db.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID returns a single expense.
func (s *expenseService) GetExpenseByID(expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, "id = ?", expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense updates an expense.
func (s *expenseService) UpdateExpense(expenseID, name, category string, schedule *models.PaymentSchedule, notes string) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(expenseID)
	if err != nil {
		return nil, err
	}

	expense.Name = name
	expense.Category = category
	expense.Schedule = schedule
	expense.Notes = notes

	if err := s.db.Save(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// DeleteExpense soft-deletes an expense.
func (s *expenseService) DeleteExpense(expenseID string) error {
	if _, err := s.GetExpenseByID(expenseID); err != nil {
		return err
	}
	if err := s.db.Delete(&models.Expense{}, "id = ?", expenseID).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// MonthlyTotal returns the monthly-equivalent total of all expenses.
func (s *expenseService) MonthlyTotal() (float64, error) {
	var expenses []models.Expense
	if err := s.db.Find(&expenses).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var total float64
	for i := range expenses {
		total += calc.MonthlyFromSchedule(expenses[i].Schedule)
	}
	return total, nil
}
