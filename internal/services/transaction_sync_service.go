package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"budget-coach/internal/dto"
	"budget-coach/internal/models"
	"budget-coach/internal/repositories"
)

// MaxImportBatch caps a single import request.
const MaxImportBatch = 10000

var (
	ErrBatchTooLarge = fmt.Errorf("more than %d transactions in one batch", MaxImportBatch)
)

type transactionSyncService struct {
	store           repositories.LedgerStoreInterface
	transactionRepo repositories.TransactionRepositoryInterface
	normalizer      NormalizerInterface
	categorizer     CategorizerInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

func NewTransactionSyncService(
	store repositories.LedgerStoreInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	normalizer NormalizerInterface,
	categorizer CategorizerInterface,
	metrics MetricsRecorderInterface,
) TransactionSyncServiceInterface {
	return &transactionSyncService{
		store:           store,
		transactionRepo: transactionRepo,
		normalizer:      normalizer,
		categorizer:     categorizer,
		metrics:         metrics,
		now:             time.Now,
	}
}

// SyncTransactions normalizes a batch of provider records and stores the new
// ones. Records whose id is already stored are counted as duplicates, so
// replaying a batch changes nothing.
func (s *transactionSyncService) SyncTransactions(ctx context.Context, records []dto.ProviderTransaction, convention SignConvention) (*dto.SyncResult, error) {
	if len(records) > MaxImportBatch {
		return nil, ErrBatchTooLarge
	}

	result := &dto.SyncResult{}
	if len(records) == 0 {
		return result, nil
	}

	start := time.Now()
	err := s.store.WithWriteLock(func() error {
		known, err := s.transactionRepo.ExistingIDs(recordIDs(records))
		if err != nil {
			return err
		}

		normalized := s.normalizer.Normalize(records, convention, known)
		categorizedAt := models.Day(s.now())
		for i := range normalized.Transactions {
			s.categorizer.Categorize(&normalized.Transactions[i])
			normalized.Transactions[i].CategorizedAt = &categorizedAt
		}

		inserted, err := s.transactionRepo.InsertNew(normalized.Transactions)
		if err != nil {
			return err
		}

		result.Accepted = inserted
		result.Skipped = len(normalized.Skipped)
		result.Duplicates = normalized.Duplicates + len(normalized.Transactions) - inserted

		for _, skipped := range normalized.Skipped {
			slog.DebugContext(ctx, "provider record skipped",
				"transaction_id", skipped.TransactionID,
				"reason", skipped.Reason)
		}
		return nil
	})
	if err != nil {
		s.metrics.IncrementCounter("sync.batch", map[string]string{"status": "failed"})
		slog.ErrorContext(ctx, "failed to store transaction batch", "records", len(records), "error", err)
		return nil, fmt.Errorf("failed to sync transactions: %w", err)
	}

	s.metrics.IncrementCounter("sync.batch", map[string]string{"status": "success"})
	s.metrics.RecordGauge("sync.accepted", float64(result.Accepted), nil)
	s.metrics.RecordGauge("sync.skipped", float64(result.Skipped), nil)
	s.metrics.RecordGauge("sync.duplicates", float64(result.Duplicates), nil)
	s.metrics.RecordProcessingTime("sync.batch", time.Since(start))

	return result, nil
}

// RemoveTransactions deletes transactions the provider has withdrawn.
func (s *transactionSyncService) RemoveTransactions(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var removed int64
	err := s.store.WithWriteLock(func() error {
		var err error
		removed, err = s.transactionRepo.DeleteByIDs(ids)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to remove transactions: %w", err)
	}

	if removed > 0 {
		slog.InfoContext(ctx, "removed withdrawn transactions", "count", removed)
	}
	return removed, nil
}

func (s *transactionSyncService) ListTransactions(query repositories.TransactionQuery) ([]models.Transaction, int64, error) {
	return s.transactionRepo.List(query)
}

func recordIDs(records []dto.ProviderTransaction) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if id := strings.TrimSpace(r.TransactionID); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
