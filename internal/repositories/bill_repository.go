package repositories

import (
	"errors"
	"fmt"

	"budget-coach/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBillNotFound = errors.New("bill not found")
)

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) BillRepositoryInterface {
	return &billRepository{db: db}
}

func (r *billRepository) Create(bill *models.Bill) error {
	if bill == nil {
		return errors.New("bill cannot be nil")
	}
	if err := r.db.Create(bill).Error; err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}

func (r *billRepository) GetByID(id uuid.UUID) (*models.Bill, error) {
	var bill models.Bill
	if err := r.db.Where("id = ?", id).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return &bill, nil
}

func (r *billRepository) GetBySourceSignature(signature string) (*models.Bill, error) {
	var bill models.Bill
	if err := r.db.Where("source_signature = ?", signature).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to get bill by signature: %w", err)
	}
	return &bill, nil
}

func (r *billRepository) List() ([]models.Bill, error) {
	var bills []models.Bill
	if err := r.db.Order("due_day ASC").Order("name ASC").Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func (r *billRepository) Update(bill *models.Bill) error {
	result := r.db.Save(bill)
	if result.Error != nil {
		return fmt.Errorf("failed to update bill: %w", result.Error)
	}
	return nil
}

func (r *billRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Bill{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete bill: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBillNotFound
	}
	return nil
}
