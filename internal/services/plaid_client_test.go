package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"budget-coach/internal/config"
	"budget-coach/internal/dto"

	"github.com/stretchr/testify/suite"
)

type PlaidClientTestSuite struct {
	suite.Suite
	ctx      context.Context
	server   *httptest.Server
	mu       sync.Mutex
	requests []map[string]any
	handler  http.HandlerFunc
	breaker  CircuitBreakerInterface
	cfg      *config.PlaidConfig
	client   *PlaidClient
}

func (s *PlaidClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.requests = nil
	s.handler = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		_ = json.Unmarshal(body, &decoded)
		decoded["_path"] = r.URL.Path
		decoded["_version"] = r.Header.Get("Plaid-Version")
		s.mu.Lock()
		s.requests = append(s.requests, decoded)
		s.mu.Unlock()
		s.handler(w, r)
	}))
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Minute, HalfOpenMaxSucc: 1})
	s.cfg = &config.PlaidConfig{
		ClientID:     "client-id",
		Secret:       "secret",
		BaseURL:      s.server.URL,
		ClientName:   "Budget Coach",
		CountryCodes: []string{"US"},
		Products:     []string{"transactions"},
		PageSize:     2,
		MaxPages:     3,
	}
	s.client = newPlaidClient(s.cfg, &http.Client{Transport: &PlaidTransport{base: http.DefaultTransport}}, s.breaker, testMetrics(), nil)
}

func (s *PlaidClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestPlaidClientSuite(t *testing.T) {
	suite.Run(t, new(PlaidClientTestSuite))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *PlaidClientTestSuite) syncPages(pages ...dto.PlaidSyncResponse) {
	call := 0
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		page := pages[call]
		if call < len(pages)-1 {
			call++
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func (s *PlaidClientTestSuite) TestCreateLinkToken() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.PlaidLinkTokenResponse{LinkToken: "link-sandbox-1", Expiration: "2025-03-31T12:00:00Z"})
	}

	resp, err := s.client.CreateLinkToken(s.ctx, "owner")

	s.Require().NoError(err)
	s.Equal("link-sandbox-1", resp.LinkToken)
	s.Require().Len(s.requests, 1)
	s.Equal("/link/token/create", s.requests[0]["_path"])
	s.Equal(plaidAPIVersion, s.requests[0]["_version"])
	s.Equal("client-id", s.requests[0]["client_id"])
	s.Equal(map[string]any{"client_user_id": "owner"}, s.requests[0]["user"])
}

func (s *PlaidClientTestSuite) TestExchangePublicToken() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.PlaidExchangeResponse{AccessToken: "access-1", ItemID: "item-1"})
	}

	resp, err := s.client.ExchangePublicToken(s.ctx, "public-1")

	s.Require().NoError(err)
	s.Equal("access-1", resp.AccessToken)
	s.Equal("item-1", resp.ItemID)
	s.Equal("public-1", s.requests[0]["public_token"])
}

func (s *PlaidClientTestSuite) TestFetchTransactions_FollowsCursor() {
	s.syncPages(
		dto.PlaidSyncResponse{
			Added:      []dto.ProviderTransaction{{TransactionID: "a"}, {TransactionID: "b"}},
			NextCursor: "c1",
			HasMore:    true,
		},
		dto.PlaidSyncResponse{
			Added:      []dto.ProviderTransaction{{TransactionID: "c"}},
			Modified:   []dto.ProviderTransaction{{TransactionID: "a"}},
			Removed:    []dto.PlaidRemovedTransaction{{TransactionID: "old"}},
			NextCursor: "c2",
		},
	)

	result, err := s.client.FetchTransactions(s.ctx, "access-1", "c0")

	s.Require().NoError(err)
	s.Len(result.Transactions, 3)
	s.Equal([]string{"old"}, result.RemovedIDs)
	s.Equal(1, result.Modified)
	s.Equal("c2", result.NextCursor)
	s.Equal(2, result.Pages)
	s.False(result.Truncated)
	s.Require().Len(s.requests, 2)
	s.Equal("c0", s.requests[0]["cursor"])
	s.Equal("c1", s.requests[1]["cursor"])
	s.Equal(float64(2), s.requests[0]["count"])
}

func (s *PlaidClientTestSuite) TestFetchTransactions_StopsAtPageCap() {
	s.syncPages(dto.PlaidSyncResponse{
		Added:      []dto.ProviderTransaction{{TransactionID: "x"}},
		NextCursor: "more",
		HasMore:    true,
	})

	result, err := s.client.FetchTransactions(s.ctx, "access-1", "")

	s.Require().NoError(err)
	s.True(result.Truncated)
	s.Equal(3, result.Pages)
	s.Len(s.requests, 3)
	s.Equal("more", result.NextCursor)
}

func (s *PlaidClientTestSuite) TestErrorMapping() {
	cases := []struct {
		name     string
		status   int
		body     dto.PlaidErrorResponse
		expected error
	}{
		{"login required", http.StatusBadRequest, dto.PlaidErrorResponse{ErrorType: "ITEM_ERROR", ErrorCode: "ITEM_LOGIN_REQUIRED"}, ErrBankLinkInvalid},
		{"rate limited", http.StatusTooManyRequests, dto.PlaidErrorResponse{ErrorType: "RATE_LIMIT_EXCEEDED", ErrorCode: "TRANSACTIONS_LIMIT"}, ErrProviderRateLimited},
		{"server error", http.StatusInternalServerError, dto.PlaidErrorResponse{ErrorType: "API_ERROR", ErrorCode: "INTERNAL_SERVER_ERROR"}, ErrProviderUnavailable},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.breaker.Reset()
			s.handler = func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, tc.body)
			}

			_, err := s.client.FetchTransactions(s.ctx, "access-1", "")

			s.ErrorIs(err, tc.expected)
			var providerErr *ProviderError
			s.Require().True(errors.As(err, &providerErr))
			s.Equal(tc.body.ErrorCode, providerErr.Code)
			s.Equal(tc.status, providerErr.Status)
		})
	}
}

func (s *PlaidClientTestSuite) TestBreakerOpensOnServerErrors() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	for i := 0; i < 2; i++ {
		err := s.client.RemoveItem(s.ctx, "access-1")
		s.ErrorIs(err, ErrProviderUnavailable)
	}
	s.Equal(StateOpen, s.breaker.GetState())

	err := s.client.RemoveItem(s.ctx, "access-1")

	s.ErrorIs(err, ErrCircuitBreakerOpen)
	s.Len(s.requests, 2)
}

func (s *PlaidClientTestSuite) TestClientErrorsDoNotTripBreaker() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, dto.PlaidErrorResponse{ErrorType: "INVALID_INPUT", ErrorCode: "INVALID_FIELD"})
	}

	for i := 0; i < 3; i++ {
		_ = s.client.RemoveItem(s.ctx, "access-1")
	}

	s.Equal(StateClosed, s.breaker.GetState())
}

func (s *PlaidClientTestSuite) TestNotConfigured() {
	s.cfg.Secret = ""

	_, err := s.client.CreateLinkToken(s.ctx, "owner")

	s.ErrorIs(err, ErrProviderNotConfigured)
	s.Empty(s.requests)
}
