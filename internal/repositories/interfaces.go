package repositories

import (
	"time"

	"budget-coach/internal/models"

	"github.com/google/uuid"
)

// TransactionQuery filters transaction listings. Zero values mean "no filter".
type TransactionQuery struct {
	From     *time.Time
	To       *time.Time
	Category models.Category
	Offset   int
	Limit    int
}

type TransactionRepositoryInterface interface {
	GetByID(id string) (*models.Transaction, error)
	List(query TransactionQuery) ([]models.Transaction, int64, error)
	// All returns every transaction ordered by date then id.
	All() ([]models.Transaction, error)
	ExistingIDs(ids []string) (map[string]struct{}, error)
	// InsertNew stores transactions whose id is not already present and
	// returns how many rows were written.
	InsertNew(transactions []models.Transaction) (int, error)
	DeleteByIDs(ids []string) (int64, error)
	UpdateCategories(transactions []models.Transaction) error
}

type BillRepositoryInterface interface {
	Create(bill *models.Bill) error
	GetByID(id uuid.UUID) (*models.Bill, error)
	GetBySourceSignature(signature string) (*models.Bill, error)
	List() ([]models.Bill, error)
	Update(bill *models.Bill) error
	Delete(id uuid.UUID) error
}

type IncomeSourceRepositoryInterface interface {
	Create(source *models.IncomeSource) error
	GetByID(id uuid.UUID) (*models.IncomeSource, error)
	List() ([]models.IncomeSource, error)
	Update(source *models.IncomeSource) error
	Delete(id uuid.UUID) error
}

type DebtAccountRepositoryInterface interface {
	Create(debt *models.DebtAccount) error
	GetByID(id uuid.UUID) (*models.DebtAccount, error)
	List() ([]models.DebtAccount, error)
	Update(debt *models.DebtAccount) error
	Delete(id uuid.UUID) error
}

type BudgetRepositoryInterface interface {
	// Get returns the stored limits, or zero limits when none were saved.
	Get() (*models.BudgetLimits, error)
	Save(limits *models.BudgetLimits) error
}

type BankLinkRepositoryInterface interface {
	Create(link *models.BankLink) error
	GetByID(id uuid.UUID) (*models.BankLink, error)
	GetByItemID(itemID string) (*models.BankLink, error)
	List() ([]models.BankLink, error)
	UpdateSyncState(id uuid.UUID, cursor string, syncedAt time.Time, lastError string) error
	Delete(id uuid.UUID) error
}

// Snapshot is one consistent read of everything the dashboard analyses.
type Snapshot struct {
	Transactions  []models.Transaction
	Bills         []models.Bill
	IncomeSources []models.IncomeSource
	DebtAccounts  []models.DebtAccount
	Budget        models.BudgetLimits
}

// LedgerStoreInterface serializes writers against snapshot readers.
type LedgerStoreInterface interface {
	ReadSnapshot() (*Snapshot, error)
	// WithWriteLock runs fn while holding the single writer lock. fn must
	// not call ReadSnapshot.
	WithWriteLock(fn func() error) error
}
