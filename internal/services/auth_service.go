package services

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"budget-coach/internal/config"
	"budget-coach/internal/dto"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAuthDisabled       = errors.New("authentication is not configured")
)

// AuthService exchanges the owner's credentials for an access token. There
// is exactly one user; with no password hash configured the API is open.
type AuthService struct {
	config          config.AuthConfig
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

func NewAuthService(
	authConfig *config.AuthConfig,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
) AuthServiceInterface {
	return &AuthService{
		config:          *authConfig,
		passwordService: passwordService,
		tokenService:    tokenService,
		metrics:         metrics,
		now:             time.Now,
	}
}

func (s *AuthService) Enabled() bool {
	return s.config.OwnerPasswordHash != ""
}

func (s *AuthService) IssueToken(username, password string) (*dto.TokenResponse, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.config.OwnerUsername)) == 1
	passwordOK := s.passwordService.ComparePassword(password, s.config.OwnerPasswordHash)
	if !usernameOK || !passwordOK {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
		slog.Warn("owner login failed", "username", username)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenService.GenerateAccessToken(username)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"})
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresInSeconds(expiresAt, s.now()),
	}, nil
}

// expiresInSeconds is the whole seconds left on a token, never negative.
func expiresInSeconds(expiresAt, now time.Time) int64 {
	remaining := expiresAt.Sub(now).Round(time.Second)
	if remaining < 0 {
		return 0
	}
	return int64(remaining / time.Second)
}
