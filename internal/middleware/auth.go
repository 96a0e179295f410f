package middleware

import (
	stderrors "errors"

	"budget-coach/internal/errors"
	"budget-coach/internal/handlers"
	"budget-coach/internal/services"

	"github.com/labstack/echo/v4"
)

// UsernameContextKey holds the authenticated owner's username.
const UsernameContextKey = "username"

// RequireAuth creates a middleware that requires a valid owner access token.
// When enabled is false the API is open and every request passes through.
func RequireAuth(tokenService services.TokenServiceInterface, enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !enabled {
			return next
		}

		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			c.Set(UsernameContextKey, claims.Username)
			return next(c)
		}
	}
}
