package repositories

import (
	"errors"
	"fmt"

	"budget-coach/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrIncomeSourceNotFound = errors.New("income source not found")
)

type incomeSourceRepository struct {
	db *gorm.DB
}

func NewIncomeSourceRepository(db *gorm.DB) IncomeSourceRepositoryInterface {
	return &incomeSourceRepository{db: db}
}

func (r *incomeSourceRepository) Create(source *models.IncomeSource) error {
	if err := r.db.Create(source).Error; err != nil {
		return fmt.Errorf("failed to create income source: %w", err)
	}
	return nil
}

func (r *incomeSourceRepository) GetByID(id uuid.UUID) (*models.IncomeSource, error) {
	var source models.IncomeSource
	if err := r.db.Where("id = ?", id).First(&source).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncomeSourceNotFound
		}
		return nil, fmt.Errorf("failed to get income source: %w", err)
	}
	return &source, nil
}

func (r *incomeSourceRepository) List() ([]models.IncomeSource, error) {
	var sources []models.IncomeSource
	if err := r.db.Order("name ASC").Order("id ASC").Find(&sources).Error; err != nil {
		return nil, fmt.Errorf("failed to list income sources: %w", err)
	}
	return sources, nil
}

func (r *incomeSourceRepository) Update(source *models.IncomeSource) error {
	if err := r.db.Save(source).Error; err != nil {
		return fmt.Errorf("failed to update income source: %w", err)
	}
	return nil
}

func (r *incomeSourceRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.IncomeSource{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete income source: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrIncomeSourceNotFound
	}
	return nil
}
