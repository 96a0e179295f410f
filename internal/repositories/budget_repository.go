package repositories

import (
	"errors"
	"fmt"

	"budget-coach/internal/models"

	"gorm.io/gorm"
)

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Get() (*models.BudgetLimits, error) {
	var limits models.BudgetLimits
	if err := r.db.Where("id = ?", models.BudgetLimitsID).First(&limits).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.BudgetLimits{ID: models.BudgetLimitsID}, nil
		}
		return nil, fmt.Errorf("failed to get budget limits: %w", err)
	}
	return &limits, nil
}

func (r *budgetRepository) Save(limits *models.BudgetLimits) error {
	if err := limits.Validate(); err != nil {
		return err
	}
	limits.ID = models.BudgetLimitsID
	if err := r.db.Save(limits).Error; err != nil {
		return fmt.Errorf("failed to save budget limits: %w", err)
	}
	return nil
}
