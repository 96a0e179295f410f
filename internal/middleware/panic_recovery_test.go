package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"budget-coach/internal/errors"
	"budget-coach/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	ctrl    *gomock.Controller
	metrics *service_mocks.MockMetricsRecorderInterface
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
}

func (s *PanicRecoveryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

// serve runs a panicking dashboard route through RequestID and PanicRecovery.
func (s *PanicRecoveryTestSuite) serve(traceID string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	s.echo.Use(RequestID(), PanicRecovery(s.metrics))
	s.echo.GET("/api/v1/dashboard", handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?asOf=2025-03-31", nil)
	if traceID != "" {
		req.Header.Set(TraceIDHeader, traceID)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *PanicRecoveryTestSuite) TestRecoversWithTraceIDAndCountsRoute() {
	s.metrics.EXPECT().IncrementCounter("http.panic", map[string]string{"method": http.MethodGet, "route": "/api/v1/dashboard"})

	rec := s.serve("trace-abc", func(c echo.Context) error {
		panic("forecast exploded")
	})

	s.Equal(http.StatusInternalServerError, rec.Code)
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("SYSTEM_001", body.Error.Code)
	s.Equal("trace-abc", body.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestLogCarriesCorrelationID() {
	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	defer slog.SetDefault(previous)

	s.metrics.EXPECT().IncrementCounter("http.panic", gomock.Any())

	s.serve("sync-42", func(c echo.Context) error {
		panic("boom")
	})

	var entry map[string]interface{}
	s.Require().NoError(json.Unmarshal(logs.Bytes(), &entry))
	s.Equal("panic recovered", entry["msg"])
	s.Equal("sync-42", entry["correlation_id"])
	s.Equal("/api/v1/dashboard", entry["route"])
}

func (s *PanicRecoveryTestSuite) TestNoTraceIDReportsUnknown() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery(nil)(func(c echo.Context) error {
		panic("boom")
	})
	s.NotPanics(func() { _ = handler(c) })

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("unknown", body.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseIsLeftAlone() {
	s.metrics.EXPECT().IncrementCounter("http.panic", gomock.Any())

	rec := s.serve("", func(c echo.Context) error {
		c.Response().WriteHeader(http.StatusOK)
		_, _ = c.Response().Write([]byte(`{"partial":`))
		panic("encoder failed")
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(`{"partial":`, rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestNormalFlowIsNotCounted() {
	rec := s.serve("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *PanicRecoveryTestSuite) TestDifferentPanicValues() {
	values := []struct {
		name      string
		panicWith interface{}
	}{
		{"string", "string panic"},
		{"int", 42},
		{"error", http.ErrHandlerTimeout},
		{"struct", struct{ msg string }{"error"}},
	}

	for _, tc := range values {
		s.Run(tc.name, func() {
			rec := httptest.NewRecorder()
			c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler := PanicRecovery(nil)(func(c echo.Context) error {
				panic(tc.panicWith)
			})
			s.NotPanics(func() { _ = handler(c) })
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}
