package handlers

import (
	"net/http"

	"budget-coach/internal/dto"
	"budget-coach/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// IssueToken exchanges the owner credentials for an access token
// @Summary Issue access token
// @Description Authenticate the owner with username and password and receive a JWT access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Owner credentials"
// @Success 200 {object} dto.TokenResponse "Access token"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Invalid credentials"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Authentication is not configured"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req dto.TokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	token, err := h.authService.IssueToken(req.Username, req.Password)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, token)
}
