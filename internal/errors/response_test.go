package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "trace-123"
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	resp := NewErrorResponse(BillNotFound, s.traceID)

	s.Equal("BILL_001", resp.Error.Code)
	s.Equal("Bill not found", resp.Error.Message)
	s.Equal(s.traceID, resp.Error.TraceID)
	s.Empty(resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	resp := NewErrorResponse(ValidationGeneral, s.traceID,
		WithMessage("bad input"),
		WithDetails("due_day: must be between 1 and 31"),
	)

	s.Equal("bad input", resp.Error.Message)
	s.Equal([]string{"due_day: must be between 1 and 31"}, resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	resp := NewValidationError(map[string]string{"amount": "must be positive"}, s.traceID)

	s.Equal(string(ValidationGeneral), resp.Error.Code)
	s.Equal([]string{"amount: must be positive"}, resp.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalDetail() {
	internal := fmt.Errorf("pq: relation \"bills\" does not exist")

	resp, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), resp.Error.Code)
	s.NotContains(resp.Error.Message, "pq:")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := map[ErrorCode]int{
		ValidationInvalidDate:     http.StatusBadRequest,
		AnalysisHorizonOutOfRange: http.StatusBadRequest,
		AuthExpiredToken:          http.StatusUnauthorized,
		AuthDisabled:              http.StatusForbidden,
		BankLinkNotFound:          http.StatusNotFound,
		BillAlreadyTracked:        http.StatusConflict,
		TransactionBatchTooLarge:  http.StatusRequestEntityTooLarge,
		BankLinkInvalid:           http.StatusUnprocessableEntity,
		BankProviderRateLimit:     http.StatusTooManyRequests,
		BankProviderFailure:       http.StatusBadGateway,
		BankProviderNotEnabled:    http.StatusServiceUnavailable,
		SystemDatabaseError:       http.StatusInternalServerError,
		"UNKNOWN_001":             http.StatusInternalServerError,
	}

	for code, status := range testCases {
		s.Run(string(code), func() {
			s.Equal(status, GetHTTPStatus(code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerClassification() {
	s.True(NewErrorResponse(DebtAccountNotFound, s.traceID).IsClientError())
	s.False(NewErrorResponse(DebtAccountNotFound, s.traceID).IsServerError())
	s.True(NewErrorResponse(BankProviderFailure, s.traceID).IsServerError())
}

func (s *ResponseTestSuite) TestJSONShape() {
	body, err := json.Marshal(NewErrorResponse(IncomeSourceNotFound, s.traceID))
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(body, &decoded))
	s.Equal("INCOME_001", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
	s.NotContains(decoded["error"], "details")
}

func (s *ResponseTestSuite) TestString() {
	resp := NewErrorResponse(SystemRateLimitExceeded, s.traceID)
	s.Equal("[SYSTEM_005] Rate limit exceeded. Please try again later (trace: trace-123)", resp.String())
}
