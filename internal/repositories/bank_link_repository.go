package repositories

import (
	"errors"
	"fmt"
	"time"

	"budget-coach/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBankLinkNotFound = errors.New("bank link not found")
)

type bankLinkRepository struct {
	db *gorm.DB
}

func NewBankLinkRepository(db *gorm.DB) BankLinkRepositoryInterface {
	return &bankLinkRepository{db: db}
}

func (r *bankLinkRepository) Create(link *models.BankLink) error {
	if err := r.db.Create(link).Error; err != nil {
		return fmt.Errorf("failed to create bank link: %w", err)
	}
	return nil
}

func (r *bankLinkRepository) GetByID(id uuid.UUID) (*models.BankLink, error) {
	return r.first("id = ?", id)
}

func (r *bankLinkRepository) GetByItemID(itemID string) (*models.BankLink, error) {
	return r.first("item_id = ?", itemID)
}

func (r *bankLinkRepository) first(query string, arg interface{}) (*models.BankLink, error) {
	var link models.BankLink
	if err := r.db.Where(query, arg).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankLinkNotFound
		}
		return nil, fmt.Errorf("failed to get bank link: %w", err)
	}
	return &link, nil
}

func (r *bankLinkRepository) List() ([]models.BankLink, error) {
	var links []models.BankLink
	if err := r.db.Order("created_at ASC").Order("id ASC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list bank links: %w", err)
	}
	return links, nil
}

// UpdateSyncState records the outcome of a sync. The cursor is only advanced
// when non-empty so a failed pass resumes from the last good position.
func (r *bankLinkRepository) UpdateSyncState(id uuid.UUID, cursor string, syncedAt time.Time, lastError string) error {
	updates := map[string]interface{}{
		"last_sync_at": syncedAt,
		"last_error":   lastError,
	}
	if cursor != "" {
		updates["cursor"] = cursor
	}

	result := r.db.Model(&models.BankLink{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update bank link sync state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBankLinkNotFound
	}
	return nil
}

func (r *bankLinkRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.BankLink{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete bank link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBankLinkNotFound
	}
	return nil
}
