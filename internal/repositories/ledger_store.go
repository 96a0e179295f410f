package repositories

import (
	"fmt"
	"sync"

	"budget-coach/internal/models"

	"gorm.io/gorm"
)

// ledgerStore gives the dashboard a consistent view of the ledger while sync
// and category writes take turns behind one writer lock.
type ledgerStore struct {
	db *gorm.DB
	mu sync.RWMutex
}

func NewLedgerStore(db *gorm.DB) LedgerStoreInterface {
	return &ledgerStore{db: db}
}

func (s *ledgerStore) ReadSnapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := &Snapshot{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if snapshot.Transactions, err = NewTransactionRepository(tx).All(); err != nil {
			return err
		}
		if snapshot.Bills, err = NewBillRepository(tx).List(); err != nil {
			return err
		}
		if snapshot.IncomeSources, err = NewIncomeSourceRepository(tx).List(); err != nil {
			return err
		}
		if snapshot.DebtAccounts, err = NewDebtAccountRepository(tx).List(); err != nil {
			return err
		}
		budget, err := NewBudgetRepository(tx).Get()
		if err != nil {
			return err
		}
		snapshot.Budget = *budget
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger snapshot: %w", err)
	}

	if snapshot.Transactions == nil {
		snapshot.Transactions = []models.Transaction{}
	}
	return snapshot, nil
}

func (s *ledgerStore) WithWriteLock(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}
