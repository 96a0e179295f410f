package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"budget-coach/internal/dto"
	"budget-coach/internal/models"
	"budget-coach/internal/repositories"
	"budget-coach/internal/services"
	"budget-coach/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	syncService *service_mocks.MockTransactionSyncServiceInterface
	syncLogger  *service_mocks.MockSyncLoggerInterface
	handler     *TransactionHandler
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.syncService = service_mocks.NewMockTransactionSyncServiceInterface(s.ctrl)
	s.syncLogger = service_mocks.NewMockSyncLoggerInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.syncService, s.syncLogger)
}

func (s *TransactionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerTestSuite) TestListTransactions_Defaults() {
	stored := make([]models.Transaction, 3)
	for i := range stored {
		stored[i] = models.Transaction{
			ID:       gofakeit.UUID(),
			Date:     time.Date(2024, 3, 10-i, 0, 0, 0, 0, time.UTC),
			Amount:   decimal.NewFromInt(int64(-10 * (i + 1))),
			Name:     gofakeit.Company(),
			Category: models.CategoryMiscellaneous,
		}
	}

	s.syncService.EXPECT().
		ListTransactions(repositories.TransactionQuery{Limit: defaultPageLimit}).
		Return(stored, int64(3), nil)

	c, rec := newRequestContext(newTestEcho(), http.MethodGet, "/api/v1/transactions", nil)
	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Transaction `json:"data"`
		Meta dto.PaginationInfo   `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Data, 3)
	s.Equal(int64(3), resp.Meta.Total)
	s.Equal(defaultPageLimit, resp.Meta.Limit)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_Filters() {
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	s.syncService.EXPECT().
		ListTransactions(gomock.Any()).
		DoAndReturn(func(query repositories.TransactionQuery) ([]models.Transaction, int64, error) {
			s.Require().NotNil(query.From)
			s.Require().NotNil(query.To)
			s.True(query.From.Equal(from))
			s.True(query.To.Equal(to))
			s.Equal(models.CategoryGroceries, query.Category)
			s.Equal(20, query.Offset)
			s.Equal(maxPageLimit, query.Limit)
			return []models.Transaction{}, 0, nil
		})

	target := "/api/v1/transactions?from=2024-02-01&to=2024-02-29&category=groceries&offset=20&limit=5000"
	c, rec := newRequestContext(newTestEcho(), http.MethodGet, target, nil)
	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestListTransactions_InvalidFilters() {
	testCases := []struct {
		name         string
		query        string
		expectedCode string
	}{
		{"bad from date", "from=2024-13-01", "VALIDATION_005"},
		{"bad to date", "to=yesterday", "VALIDATION_005"},
		{"reversed range", "from=2024-03-01&to=2024-02-01", "VALIDATION_004"},
		{"unknown category", "category=travel", "VALIDATION_003"},
		{"negative offset", "offset=-1", "VALIDATION_004"},
		{"negative limit", "limit=-5", "VALIDATION_004"},
		{"non numeric limit", "limit=ten", "VALIDATION_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := newRequestContext(newTestEcho(), http.MethodGet, "/api/v1/transactions?"+tc.query, nil)
			s.Require().NoError(s.handler.ListTransactions(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(tc.expectedCode, decodeError(rec).Error.Code)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestImportTransactions_Success() {
	body := `{"outflow_positive": true, "transactions": [
		{"transaction_id": "t1", "date": "2024-03-01", "amount": 12.5, "name": "Kroger"},
		{"transaction_id": "t2", "date": "2024-03-02", "amount": "-2500.00", "name": "ACME Payroll"}
	]}`
	result := &dto.SyncResult{Accepted: 2}

	s.syncService.EXPECT().
		SyncTransactions(gomock.Any(), gomock.Any(), services.OutflowPositive).
		DoAndReturn(func(_ context.Context, records []dto.ProviderTransaction, _ services.SignConvention) (*dto.SyncResult, error) {
			s.Require().Len(records, 2)
			s.Equal(dto.RawAmount("12.5"), records[0].Amount)
			s.Equal(dto.RawAmount("-2500.00"), records[1].Amount)
			return result, nil
		})
	s.syncLogger.EXPECT().LogBatchImported(gomock.Any(), "api", *result)

	c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/transactions/import", body)
	s.Require().NoError(s.handler.ImportTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Imported 2 transactions")
}

func (s *TransactionHandlerTestSuite) TestImportTransactions_StoredConventionByDefault() {
	s.syncService.EXPECT().
		SyncTransactions(gomock.Any(), gomock.Len(1), services.OutflowNegative).
		Return(&dto.SyncResult{Duplicates: 1}, nil)
	s.syncLogger.EXPECT().LogBatchImported(gomock.Any(), "api", gomock.Any())

	body := `{"transactions": [{"transaction_id": "t1", "date": "2024-03-01", "amount": -4.5, "name": "Cafe"}]}`
	c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/transactions/import", body)
	s.Require().NoError(s.handler.ImportTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestImportTransactions_Rejected() {
	s.Run("malformed body", func() {
		c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/transactions/import", `{"transactions": [`)
		s.Require().NoError(s.handler.ImportTransactions(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_001", decodeError(rec).Error.Code)
	})

	s.Run("missing transactions", func() {
		c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/transactions/import", `{}`)
		s.Require().NoError(s.handler.ImportTransactions(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		resp := decodeError(rec)
		s.Equal("VALIDATION_001", resp.Error.Code)
		s.Contains(strings.Join(resp.Error.Details, ","), "transactions: is required")
	})

	s.Run("empty batch", func() {
		c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/transactions/import", `{"transactions": []}`)
		s.Require().NoError(s.handler.ImportTransactions(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("TRANSACTION_002", decodeError(rec).Error.Code)
	})

	s.Run("batch too large", func() {
		s.syncService.EXPECT().
			SyncTransactions(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrBatchTooLarge)

		c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/transactions/import",
			`{"transactions": [{"transaction_id": "t1"}]}`)
		s.Require().NoError(s.handler.ImportTransactions(c))
		s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
		s.Equal("TRANSACTION_003", decodeError(rec).Error.Code)
	})
}
