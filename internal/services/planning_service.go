package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"budget-coach/internal/dto"
	"budget-coach/internal/models"
	"budget-coach/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrBillNotFound          = errors.New("bill not found")
	ErrRecurringNotFound     = errors.New("no recurring charge matches that signature")
	ErrBillAlreadyTracked    = errors.New("recurring charge is already tracked as a bill")
	ErrIncomeSourceNotFound  = errors.New("income source not found")
	ErrDebtAccountNotFound   = errors.New("debt account not found")
	ErrInvalidBudgetLimits   = errors.New("budget limits must not be negative")
	ErrInvalidIncomeSchedule = errors.New("invalid income frequency")
)

type planningService struct {
	store      repositories.LedgerStoreInterface
	billRepo   repositories.BillRepositoryInterface
	incomeRepo repositories.IncomeSourceRepositoryInterface
	debtRepo   repositories.DebtAccountRepositoryInterface
	budgetRepo repositories.BudgetRepositoryInterface
	detector   RecurrenceDetectorInterface
	logger     SyncLoggerInterface
}

func NewPlanningService(
	store repositories.LedgerStoreInterface,
	billRepo repositories.BillRepositoryInterface,
	incomeRepo repositories.IncomeSourceRepositoryInterface,
	debtRepo repositories.DebtAccountRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	detector RecurrenceDetectorInterface,
	logger SyncLoggerInterface,
) PlanningServiceInterface {
	return &planningService{
		store:      store,
		billRepo:   billRepo,
		incomeRepo: incomeRepo,
		debtRepo:   debtRepo,
		budgetRepo: budgetRepo,
		detector:   detector,
		logger:     logger,
	}
}

// ---------- Bills ----------

func (s *planningService) CreateBill(req dto.BillRequest) (*models.Bill, error) {
	bill := &models.Bill{
		Name:     strings.TrimSpace(req.Name),
		Amount:   req.Amount.Round(2),
		DueDay:   req.DueDay,
		Category: strings.TrimSpace(req.Category),
	}
	if err := s.billRepo.Create(bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}
	return bill, nil
}

func (s *planningService) ListBills() ([]models.Bill, error) {
	return s.billRepo.List()
}

func (s *planningService) UpdateBill(id uuid.UUID, req dto.BillRequest) (*models.Bill, error) {
	bill, err := s.billRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrBillNotFound, ErrBillNotFound)
	}

	bill.Name = strings.TrimSpace(req.Name)
	bill.Amount = req.Amount.Round(2)
	bill.DueDay = req.DueDay
	if category := strings.TrimSpace(req.Category); category != "" {
		bill.Category = category
	}

	if err := s.billRepo.Update(bill); err != nil {
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}
	return bill, nil
}

func (s *planningService) DeleteBill(id uuid.UUID) error {
	return mapNotFound(s.billRepo.Delete(id), repositories.ErrBillNotFound, ErrBillNotFound)
}

// PromoteRecurring records a detected recurring charge as a bill so it is
// planned for and no longer projected twice.
func (s *planningService) PromoteRecurring(ctx context.Context, req dto.PromoteRecurringRequest) (*models.Bill, error) {
	signature := strings.TrimSpace(req.Signature)

	if _, err := s.billRepo.GetBySourceSignature(signature); err == nil {
		return nil, ErrBillAlreadyTracked
	} else if !errors.Is(err, repositories.ErrBillNotFound) {
		return nil, fmt.Errorf("failed to check existing bills: %w", err)
	}

	snapshot, err := s.store.ReadSnapshot()
	if err != nil {
		return nil, err
	}

	var candidate *models.RecurringBillCandidate
	for _, c := range s.detector.Detect(snapshot.Transactions) {
		if c.Signature == signature {
			candidate = &c
			break
		}
	}
	if candidate == nil {
		return nil, ErrRecurringNotFound
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = titleCategory(candidate.Category)
	}

	bill := &models.Bill{
		Name:            candidate.Name,
		Amount:          candidate.TypicalAmount,
		DueDay:          candidate.LastDate.Day(),
		Category:        category,
		AutoDetected:    true,
		SourceSignature: candidate.Signature,
	}
	if err := s.billRepo.Create(bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	s.logger.LogBillPromoted(ctx, bill.ID, bill.SourceSignature, bill.Amount)
	return bill, nil
}

// ---------- Income ----------

func (s *planningService) CreateIncomeSource(req dto.IncomeSourceRequest) (*models.IncomeSource, error) {
	frequency := models.IncomeFrequency(strings.ToLower(req.Frequency))
	if !frequency.IsValid() {
		return nil, ErrInvalidIncomeSchedule
	}
	source := &models.IncomeSource{
		Name:      strings.TrimSpace(req.Name),
		Amount:    req.Amount.Round(2),
		Frequency: frequency,
	}
	if err := s.incomeRepo.Create(source); err != nil {
		return nil, fmt.Errorf("failed to create income source: %w", err)
	}
	return source, nil
}

func (s *planningService) ListIncomeSources() ([]models.IncomeSource, error) {
	return s.incomeRepo.List()
}

func (s *planningService) UpdateIncomeSource(id uuid.UUID, req dto.IncomeSourceRequest) (*models.IncomeSource, error) {
	frequency := models.IncomeFrequency(strings.ToLower(req.Frequency))
	if !frequency.IsValid() {
		return nil, ErrInvalidIncomeSchedule
	}

	source, err := s.incomeRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrIncomeSourceNotFound, ErrIncomeSourceNotFound)
	}

	source.Name = strings.TrimSpace(req.Name)
	source.Amount = req.Amount.Round(2)
	source.Frequency = frequency
	if err := s.incomeRepo.Update(source); err != nil {
		return nil, fmt.Errorf("failed to update income source: %w", err)
	}
	return source, nil
}

func (s *planningService) DeleteIncomeSource(id uuid.UUID) error {
	return mapNotFound(s.incomeRepo.Delete(id), repositories.ErrIncomeSourceNotFound, ErrIncomeSourceNotFound)
}

// ---------- Debts ----------

func (s *planningService) CreateDebtAccount(req dto.DebtAccountRequest) (*models.DebtAccount, error) {
	debt := &models.DebtAccount{
		Name:           strings.TrimSpace(req.Name),
		Balance:        req.Balance.Round(2),
		APR:            req.APR.Round(2),
		MinimumPayment: req.MinimumPayment.Round(2),
	}
	if err := s.debtRepo.Create(debt); err != nil {
		return nil, fmt.Errorf("failed to create debt account: %w", err)
	}
	return debt, nil
}

func (s *planningService) ListDebtAccounts() ([]models.DebtAccount, error) {
	return s.debtRepo.List()
}

func (s *planningService) UpdateDebtAccount(id uuid.UUID, req dto.DebtAccountRequest) (*models.DebtAccount, error) {
	debt, err := s.debtRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrDebtAccountNotFound, ErrDebtAccountNotFound)
	}

	debt.Name = strings.TrimSpace(req.Name)
	debt.Balance = req.Balance.Round(2)
	debt.APR = req.APR.Round(2)
	debt.MinimumPayment = req.MinimumPayment.Round(2)
	if err := s.debtRepo.Update(debt); err != nil {
		return nil, fmt.Errorf("failed to update debt account: %w", err)
	}
	return debt, nil
}

func (s *planningService) DeleteDebtAccount(id uuid.UUID) error {
	return mapNotFound(s.debtRepo.Delete(id), repositories.ErrDebtAccountNotFound, ErrDebtAccountNotFound)
}

// ---------- Budget ----------

func (s *planningService) GetBudget() (*models.BudgetLimits, error) {
	return s.budgetRepo.Get()
}

func (s *planningService) SaveBudget(req dto.BudgetLimitsRequest) (*models.BudgetLimits, error) {
	limits := &models.BudgetLimits{
		ID:            models.BudgetLimitsID,
		Groceries:     req.Groceries.Round(2),
		Savings:       req.Savings.Round(2),
		Miscellaneous: req.Miscellaneous.Round(2),
	}
	if err := limits.Validate(); err != nil {
		return nil, ErrInvalidBudgetLimits
	}
	if err := s.budgetRepo.Save(limits); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}
	return limits, nil
}

// mapNotFound swaps a repository not-found error for the service one.
func mapNotFound(err, repoErr, serviceErr error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repoErr) {
		return serviceErr
	}
	return err
}
