package repositories

import (
	"errors"
	"fmt"

	"budget-coach/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDebtAccountNotFound = errors.New("debt account not found")
)

type debtAccountRepository struct {
	db *gorm.DB
}

func NewDebtAccountRepository(db *gorm.DB) DebtAccountRepositoryInterface {
	return &debtAccountRepository{db: db}
}

func (r *debtAccountRepository) Create(debt *models.DebtAccount) error {
	if err := r.db.Create(debt).Error; err != nil {
		return fmt.Errorf("failed to create debt account: %w", err)
	}
	return nil
}

func (r *debtAccountRepository) GetByID(id uuid.UUID) (*models.DebtAccount, error) {
	var debt models.DebtAccount
	if err := r.db.Where("id = ?", id).First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDebtAccountNotFound
		}
		return nil, fmt.Errorf("failed to get debt account: %w", err)
	}
	return &debt, nil
}

// List orders by APR descending so the most expensive debt comes first.
func (r *debtAccountRepository) List() ([]models.DebtAccount, error) {
	var debts []models.DebtAccount
	if err := r.db.Order("apr DESC").Order("name ASC").Find(&debts).Error; err != nil {
		return nil, fmt.Errorf("failed to list debt accounts: %w", err)
	}
	return debts, nil
}

func (r *debtAccountRepository) Update(debt *models.DebtAccount) error {
	if err := r.db.Save(debt).Error; err != nil {
		return fmt.Errorf("failed to update debt account: %w", err)
	}
	return nil
}

func (r *debtAccountRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.DebtAccount{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete debt account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDebtAccountNotFound
	}
	return nil
}
