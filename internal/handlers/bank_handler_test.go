package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"budget-coach/internal/dto"
	"budget-coach/internal/models"
	"budget-coach/internal/services"
	"budget-coach/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BankHandlerSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	bankLinkService *service_mocks.MockBankLinkServiceInterface
	handler         *BankHandler
}

func TestBankHandler(t *testing.T) {
	suite.Run(t, new(BankHandlerSuite))
}

func (s *BankHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bankLinkService = service_mocks.NewMockBankLinkServiceInterface(s.ctrl)
	s.handler = NewBankHandler(s.bankLinkService)
}

func (s *BankHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BankHandlerSuite) TestCreateLinkToken() {
	s.bankLinkService.EXPECT().
		CreateLinkToken(gomock.Any()).
		Return(&dto.LinkTokenResponse{LinkToken: "link-sandbox-123"}, nil)

	c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/bank/link-token", nil)
	s.Require().NoError(s.handler.CreateLinkToken(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "link-sandbox-123")
}

func (s *BankHandlerSuite) TestProviderErrors() {
	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"rate limited", fmt.Errorf("link token: %w", services.ErrProviderRateLimited), http.StatusTooManyRequests, "BANK_004"},
		{"not configured", services.ErrProviderNotConfigured, http.StatusServiceUnavailable, "BANK_005"},
		{"unavailable", fmt.Errorf("status 500: %w", services.ErrProviderUnavailable), http.StatusBadGateway, "BANK_003"},
		{"breaker open", services.ErrCircuitBreakerOpen, http.StatusBadGateway, "BANK_003"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.bankLinkService.EXPECT().CreateLinkToken(gomock.Any()).Return(nil, tc.err)

			c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/bank/link-token", nil)
			s.Require().NoError(s.handler.CreateLinkToken(c))
			s.Equal(tc.expectedStatus, rec.Code)
			s.Equal(tc.expectedCode, decodeError(rec).Error.Code)
		})
	}
}

func (s *BankHandlerSuite) TestExchangePublicToken() {
	s.Run("created", func() {
		link := &models.BankLink{ID: uuid.New(), InstitutionName: "First Platypus Bank", ItemID: "item-1", AccessToken: "access-secret"}
		s.bankLinkService.EXPECT().
			ExchangePublicToken(gomock.Any(), dto.ExchangeTokenRequest{PublicToken: "public-1", InstitutionName: "First Platypus Bank"}).
			Return(link, nil)

		body := map[string]string{"public_token": "public-1", "institution_name": "First Platypus Bank"}
		c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/bank/exchange", body)
		s.Require().NoError(s.handler.ExchangePublicToken(c))

		s.Equal(http.StatusCreated, rec.Code)
		s.NotContains(rec.Body.String(), "access-secret")
		s.Contains(rec.Body.String(), "item-1")
	})

	s.Run("missing public token", func() {
		c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/bank/exchange", map[string]string{})
		s.Require().NoError(s.handler.ExchangePublicToken(c))

		s.Equal(http.StatusBadRequest, rec.Code)
		resp := decodeError(rec)
		s.Equal("VALIDATION_001", resp.Error.Code)
		s.Contains(resp.Error.Details, "public_token: is required")
	})

	s.Run("invalid item", func() {
		s.bankLinkService.EXPECT().
			ExchangePublicToken(gomock.Any(), gomock.Any()).
			Return(nil, services.ErrBankLinkInvalid)

		c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/bank/exchange", map[string]string{"public_token": "expired"})
		s.Require().NoError(s.handler.ExchangePublicToken(c))
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Equal("BANK_002", decodeError(rec).Error.Code)
	})
}

func (s *BankHandlerSuite) TestListLinks() {
	s.bankLinkService.EXPECT().ListLinks().Return([]models.BankLink{{ID: uuid.New(), ItemID: "item-1"}}, nil)

	c, rec := newRequestContext(newTestEcho(), http.MethodGet, "/api/v1/bank/links", nil)
	s.Require().NoError(s.handler.ListLinks(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data []models.BankLink `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Data, 1)
}

func (s *BankHandlerSuite) TestDisconnect() {
	id := uuid.New()

	s.Run("invalid id", func() {
		c, rec := newRequestContext(newTestEcho(), http.MethodDelete, "/api/v1/bank/links/nope", nil)
		c.SetParamNames("id")
		c.SetParamValues("nope")
		s.Require().NoError(s.handler.Disconnect(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_003", decodeError(rec).Error.Code)
	})

	s.Run("not found", func() {
		s.bankLinkService.EXPECT().Disconnect(gomock.Any(), id).Return(services.ErrBankLinkNotFound)

		c, rec := newRequestContext(newTestEcho(), http.MethodDelete, "/api/v1/bank/links/"+id.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		s.Require().NoError(s.handler.Disconnect(c))
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("BANK_001", decodeError(rec).Error.Code)
	})

	s.Run("disconnected", func() {
		s.bankLinkService.EXPECT().Disconnect(gomock.Any(), id).Return(nil)

		c, rec := newRequestContext(newTestEcho(), http.MethodDelete, "/api/v1/bank/links/"+id.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(id.String())
		s.Require().NoError(s.handler.Disconnect(c))
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *BankHandlerSuite) TestSync() {
	s.bankLinkService.EXPECT().SyncAll(gomock.Any()).Return(&dto.BankSyncResponse{
		Links: []dto.LinkSyncResult{
			{LinkID: "a", SyncResult: dto.SyncResult{Accepted: 4}},
			{LinkID: "b", Error: "bank link must be re-authenticated"},
		},
		Total: dto.SyncResult{Accepted: 4},
	}, nil)

	c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/v1/bank/sync", nil)
	s.Require().NoError(s.handler.Sync(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.BankSyncResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(4, resp.Total.Accepted)
	s.Len(resp.Links, 2)
	s.Equal("bank link must be re-authenticated", resp.Links[1].Error)
}
