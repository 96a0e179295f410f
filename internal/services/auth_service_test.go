package services_test

import (
	"errors"
	"testing"
	"time"

	"budget-coach/internal/config"
	"budget-coach/internal/services"
	"budget-coach/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	passwords    *service_mocks.MockPasswordServiceInterface
	tokens       *service_mocks.MockTokenServiceInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	authConfig   *config.AuthConfig
	service      services.AuthServiceInterface
	tokenExpires time.Time
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.passwords = service_mocks.NewMockPasswordServiceInterface(s.ctrl)
	s.tokens = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.authConfig = &config.AuthConfig{
		OwnerUsername:       "owner",
		OwnerPasswordHash:   "$2a$04$hash",
		AccessTokenDuration: 12 * time.Hour,
	}
	s.service = services.NewAuthService(s.authConfig, s.passwords, s.tokens, s.metrics)
	s.tokenExpires = time.Now().Add(12 * time.Hour)
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestIssueToken_Success() {
	s.passwords.EXPECT().ComparePassword("hunter22!", "$2a$04$hash").Return(true)
	s.tokens.EXPECT().GenerateAccessToken("owner").Return("signed.jwt.token", s.tokenExpires, nil)
	s.metrics.EXPECT().IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"})

	resp, err := s.service.IssueToken("owner", "hunter22!")

	s.Require().NoError(err)
	s.Equal("signed.jwt.token", resp.AccessToken)
	s.Equal("Bearer", resp.TokenType)
	s.InDelta(43200, resp.ExpiresIn, 2)
}

func (s *AuthServiceTestSuite) TestIssueToken_ExpiresInFollowsIssuedToken() {
	s.passwords.EXPECT().ComparePassword("hunter22!", "$2a$04$hash").Return(true)
	s.tokens.EXPECT().GenerateAccessToken("owner").Return("signed.jwt.token", time.Now().Add(90*time.Minute), nil)
	s.metrics.EXPECT().IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"})

	resp, err := s.service.IssueToken("owner", "hunter22!")

	s.Require().NoError(err)
	s.InDelta(5400, resp.ExpiresIn, 2)
}

func (s *AuthServiceTestSuite) TestIssueToken_WrongPassword() {
	s.passwords.EXPECT().ComparePassword("nope", "$2a$04$hash").Return(false)
	s.metrics.EXPECT().IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})

	_, err := s.service.IssueToken("owner", "nope")

	s.ErrorIs(err, services.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestIssueToken_WrongUsername() {
	s.passwords.EXPECT().ComparePassword("hunter22!", "$2a$04$hash").Return(true)
	s.metrics.EXPECT().IncrementCounter("authentication_event", gomock.Any())

	_, err := s.service.IssueToken("admin", "hunter22!")

	s.ErrorIs(err, services.ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestIssueToken_SigningFails() {
	s.passwords.EXPECT().ComparePassword(gomock.Any(), gomock.Any()).Return(true)
	s.tokens.EXPECT().GenerateAccessToken("owner").Return("", time.Time{}, errors.New("no key"))

	_, err := s.service.IssueToken("owner", "hunter22!")

	s.EqualError(err, "no key")
}

func (s *AuthServiceTestSuite) TestIssueToken_Disabled() {
	s.authConfig.OwnerPasswordHash = ""
	service := services.NewAuthService(s.authConfig, s.passwords, s.tokens, s.metrics)

	s.False(service.Enabled())
	_, err := service.IssueToken("owner", "hunter22!")

	s.ErrorIs(err, services.ErrAuthDisabled)
}

func (s *AuthServiceTestSuite) TestEnabled() {
	s.True(s.service.Enabled())
}
