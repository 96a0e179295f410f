package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budget-coach/internal/config"
	"budget-coach/internal/errors"
	"budget-coach/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	tokenService services.TokenServiceInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.tokenService = s.createTokenService(time.Hour)
	s.e = echo.New()
}

func (s *AuthMiddlewareSuite) createTokenService(ttl time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.AuthConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "budget-coach-test",
		AccessTokenDuration: ttl,
	})
}

func (s *AuthMiddlewareSuite) serve(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, string) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	var username string
	handler := mw(func(c echo.Context) error {
		username, _ = c.Get(UsernameContextKey).(string)
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return rec, username
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	token, _, err := s.tokenService.GenerateAccessToken("owner")
	s.Require().NoError(err)

	rec, username := s.serve(RequireAuth(s.tokenService, true), "Bearer "+token)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("owner", username)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_Rejections() {
	foreign, _, err := s.createTokenService(time.Hour).GenerateAccessToken("owner")
	s.Require().NoError(err)

	testCases := []struct {
		name         string
		header       string
		expectedCode errors.ErrorCode
	}{
		{"missing header", "", errors.AuthMissingToken},
		{"wrong scheme", "Basic b3duZXI6cHc=", errors.AuthInvalidTokenFormat},
		{"garbage token", "Bearer not-a-jwt", errors.AuthInvalidTokenFormat},
		{"signed by another key", "Bearer " + foreign, errors.AuthInvalidTokenFormat},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, username := s.serve(RequireAuth(s.tokenService, true), tc.header)
			s.Equal(http.StatusUnauthorized, rec.Code)
			s.Contains(rec.Body.String(), string(tc.expectedCode))
			s.Empty(username)
		})
	}
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	expiring := s.createTokenService(-time.Minute)
	token, _, err := expiring.GenerateAccessToken("owner")
	s.Require().NoError(err)

	rec, _ := s.serve(RequireAuth(expiring, true), "Bearer "+token)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), string(errors.AuthExpiredToken))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_DisabledPassesThrough() {
	rec, username := s.serve(RequireAuth(s.tokenService, false), "")
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(username)
}
