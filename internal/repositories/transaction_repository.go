package repositories

import (
	"errors"
	"fmt"

	"budget-coach/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// batchSize keeps IN lists and multi-row inserts under driver parameter limits.
const batchSize = 500

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

func (r *transactionRepository) GetByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

func (r *transactionRepository) List(query TransactionQuery) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	q := r.db.Model(&models.Transaction{})
	if query.From != nil {
		q = q.Where("date >= ?", models.Day(*query.From))
	}
	if query.To != nil {
		q = q.Where("date <= ?", models.Day(*query.To))
	}
	if query.Category != "" {
		q = q.Where("category = ?", query.Category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}
	if query.Offset > 0 {
		q = q.Offset(query.Offset)
	}

	if err := q.Order("date DESC").Order("id DESC").Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}

func (r *transactionRepository) All() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("date ASC").Order("id ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) ExistingIDs(ids []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{}, len(ids))
	for start := 0; start < len(ids); start += batchSize {
		end := min(start+batchSize, len(ids))

		var found []string
		if err := r.db.Model(&models.Transaction{}).
			Where("id IN ?", ids[start:end]).
			Pluck("id", &found).Error; err != nil {
			return nil, fmt.Errorf("failed to look up transaction ids: %w", err)
		}
		for _, id := range found {
			existing[id] = struct{}{}
		}
	}
	return existing, nil
}

func (r *transactionRepository) InsertNew(transactions []models.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	var inserted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(transactions); start += batchSize {
			end := min(start+batchSize, len(transactions))
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(transactions[start:end])
			if result.Error != nil {
				return fmt.Errorf("failed to insert transactions: %w", result.Error)
			}
			inserted += result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(inserted), nil
}

func (r *transactionRepository) DeleteByIDs(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Where("id IN ?", ids).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// UpdateCategories writes only the category columns of the given rows.
func (r *transactionRepository) UpdateCategories(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, t := range transactions {
			if err := tx.Model(&models.Transaction{}).
				Where("id = ?", t.ID).
				Updates(map[string]interface{}{
					"category":       t.Category,
					"categorized_at": t.CategorizedAt,
				}).Error; err != nil {
				return fmt.Errorf("failed to update category for %s: %w", t.ID, err)
			}
		}
		return nil
	})
}
