package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"budget-coach/internal/database"
	"budget-coach/internal/models"
	"budget-coach/internal/repositories"
	"budget-coach/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	repo     repositories.TransactionRepositoryInterface
	billRepo repositories.BillRepositoryInterface
	service  *dashboardService
	asOf     time.Time
}

func (s *DashboardServiceTestSuite) SetupTest() {
	db := database.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.asOf = day(2025, 3, 31)
	s.repo = repositories.NewTransactionRepository(db.DB)
	s.billRepo = repositories.NewBillRepository(db.DB)
	s.service = NewDashboardService(
		repositories.NewLedgerStore(db.DB),
		s.repo,
		testAnalysisConfig(),
		testMetrics(),
	).(*dashboardService)
	s.service.now = func() time.Time { return s.asOf }

	_, err := s.repo.InsertNew([]models.Transaction{
		txn("pay", day(2025, 3, 14), "2500.00", "ACME PAYROLL"),
		txn("grocery", day(2025, 3, 15), "-45.00", "KROGER #123"),
		txn("n1", day(2025, 1, 1), "-15.49", "NETFLIX"),
		txn("n2", day(2025, 1, 31), "-15.49", "NETFLIX"),
		txn("n3", day(2025, 3, 2), "-15.49", "NETFLIX"),
	})
	s.Require().NoError(err)
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) TestComputeDashboard_PersistsCategories() {
	snapshot, err := s.service.ComputeDashboard(s.ctx, s.asOf)

	s.Require().NoError(err)
	s.Equal("2500", snapshot.Income.Amount.String())
	s.Equal("45", snapshot.Spending.Groceries.String())
	s.Equal("15.49", snapshot.Spending.Miscellaneous.StringFixed(2))
	s.Require().Len(snapshot.RecurringBills, 1)
	s.Equal("netflix", snapshot.RecurringBills[0].Signature)

	stored, err := s.repo.All()
	s.Require().NoError(err)
	for _, t := range stored {
		s.NotEmpty(t.Category, t.ID)
	}
	grocery, err := s.repo.GetByID("grocery")
	s.Require().NoError(err)
	s.Equal(models.CategoryGroceries, grocery.Category)
}

func (s *DashboardServiceTestSuite) TestComputeDashboard_SecondRunChangesNothing() {
	first, err := s.service.ComputeDashboard(s.ctx, s.asOf)
	s.Require().NoError(err)

	second, err := s.service.ComputeDashboard(s.ctx, s.asOf)

	s.Require().NoError(err)
	s.Equal(first.Insights, second.Insights)
	s.True(first.NetIncome.Equal(second.NetIncome))
}

func (s *DashboardServiceTestSuite) TestAnalyze_CustomHorizon() {
	short, err := s.service.Analyze(s.ctx, s.asOf, 10)
	s.Require().NoError(err)
	long, err := s.service.Analyze(s.ctx, s.asOf, 90)
	s.Require().NoError(err)

	s.Equal("2025-03-31", short.AsOf)
	s.Len(short.Forecast, 1)
	s.Len(long.Forecast, 3)
	s.Len(short.RecurringBills, 1)
}

func (s *DashboardServiceTestSuite) TestAnalyze_InvalidHorizon() {
	for _, horizon := range []int{0, -1, 366} {
		_, err := s.service.Analyze(s.ctx, s.asOf, horizon)
		s.ErrorIs(err, ErrInvalidHorizon)
	}
}

func (s *DashboardServiceTestSuite) TestDetectAndForecast() {
	stored, err := s.repo.All()
	s.Require().NoError(err)

	candidates := s.service.DetectRecurringBills(stored)
	s.Require().Len(candidates, 1)

	projected, err := s.service.ForecastBills([]models.Bill{{Name: "Rent", Amount: dec("1450"), DueDay: 1}}, candidates, 30)
	s.Require().NoError(err)
	s.Require().Len(projected, 2)
	s.Equal("NETFLIX", projected[0].Name)
	s.Equal("Rent", projected[1].Name)
	s.Equal(day(2025, 4, 1), projected[0].Date)
}

func TestComputeDashboard_ReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := repository_mocks.NewMockLedgerStoreInterface(ctrl)
	repo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
	store.EXPECT().ReadSnapshot().Return(nil, errors.New("connection refused"))

	service := NewDashboardService(store, repo, testAnalysisConfig(), testMetrics())
	snapshot, err := service.ComputeDashboard(context.Background(), day(2025, 3, 31))

	if snapshot != nil || err == nil {
		t.Fatalf("expected read failure, got %v, %v", snapshot, err)
	}
}

func TestComputeDashboard_PersistFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := repository_mocks.NewMockLedgerStoreInterface(ctrl)
	repo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
	store.EXPECT().ReadSnapshot().Return(&repositories.Snapshot{
		Transactions: []models.Transaction{txn("grocery", day(2025, 3, 15), "-45.00", "KROGER")},
	}, nil)
	store.EXPECT().WithWriteLock(gomock.Any()).DoAndReturn(func(fn func() error) error { return fn() })
	repo.EXPECT().UpdateCategories(gomock.Len(1)).Return(errors.New("locked"))

	service := NewDashboardService(store, repo, testAnalysisConfig(), testMetrics())
	snapshot, err := service.ComputeDashboard(context.Background(), day(2025, 3, 31))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snapshot.Spending.Groceries.Equal(dec("45")) {
		t.Fatalf("groceries = %s", snapshot.Spending.Groceries)
	}
}
