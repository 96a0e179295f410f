package handlers

import (
	"net/http"

	"budget-coach/internal/dto"
	"budget-coach/internal/errors"
	"budget-coach/internal/services"

	"github.com/labstack/echo/v4"
)

// BankHandler manages bank links and provider syncs.
type BankHandler struct {
	bankLinkService services.BankLinkServiceInterface
}

func NewBankHandler(bankLinkService services.BankLinkServiceInterface) *BankHandler {
	return &BankHandler{bankLinkService: bankLinkService}
}

// CreateLinkToken starts the bank connection flow
// @Summary Create link token
// @Description Create a short-lived token for the provider's account linking widget
// @Tags Bank
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.LinkTokenResponse "Link token"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 429 {object} errors.ErrorResponse "BANK_004 - Provider rate limit"
// @Failure 502 {object} errors.ErrorResponse "BANK_003 - Provider failure"
// @Failure 503 {object} errors.ErrorResponse "BANK_005 - Provider not configured"
// @Router /bank/link-token [post]
func (h *BankHandler) CreateLinkToken(c echo.Context) error {
	token, err := h.bankLinkService.CreateLinkToken(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, token)
}

// ExchangePublicToken finishes the bank connection flow
// @Summary Exchange public token
// @Description Exchange the public token from the linking widget for a stored bank link
// @Tags Bank
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ExchangeTokenRequest true "Public token"
// @Success 201 {object} SuccessResponse{data=models.BankLink} "Bank link created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 502 {object} errors.ErrorResponse "BANK_003 - Provider failure"
// @Router /bank/exchange [post]
func (h *BankHandler) ExchangePublicToken(c echo.Context) error {
	var req dto.ExchangeTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	link, err := h.bankLinkService.ExchangePublicToken(c.Request().Context(), req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    link,
		Message: "Bank account linked",
	})
}

// ListLinks returns every connected institution
// @Summary List bank links
// @Tags Bank
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.BankLink} "Bank links"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /bank/links [get]
func (h *BankHandler) ListLinks(c echo.Context) error {
	links, err := h.bankLinkService.ListLinks()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: links})
}

// Disconnect removes a bank link
// @Summary Disconnect bank link
// @Tags Bank
// @Security BearerAuth
// @Param id path string true "Bank link ID (UUID)"
// @Success 204 "Disconnected"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid link ID"
// @Failure 404 {object} errors.ErrorResponse "BANK_001 - Bank link not found"
// @Router /bank/links/{id} [delete]
func (h *BankHandler) Disconnect(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Link ID must be a valid UUID"))
	}

	if err := h.bankLinkService.Disconnect(c.Request().Context(), id); err != nil {
		return SendServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Sync pulls new transactions for every link
// @Summary Sync bank links
// @Description Fetch new transactions from the provider for every link. A failing link does not stop the others.
// @Tags Bank
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BankSyncResponse "Per-link sync results"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /bank/sync [post]
func (h *BankHandler) Sync(c echo.Context) error {
	result, err := h.bankLinkService.SyncAll(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
