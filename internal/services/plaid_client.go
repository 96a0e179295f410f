package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"budget-coach/internal/config"
	"budget-coach/internal/dto"
)

var (
	ErrProviderNotConfigured = errors.New("bank data provider is not configured")
	ErrProviderUnavailable   = errors.New("bank data provider unavailable")
	ErrProviderRateLimited   = errors.New("bank data provider rate limit reached")
	ErrBankLinkInvalid       = errors.New("bank link must be re-authenticated")
)

// Plaid error codes that mean the access token itself is no longer usable.
var invalidLinkCodes = map[string]struct{}{
	"ITEM_LOGIN_REQUIRED":  {},
	"INVALID_ACCESS_TOKEN": {},
	"ITEM_NOT_FOUND":       {},
	"ACCESS_NOT_GRANTED":   {},
}

const plaidAPIVersion = "2020-09-14"

// ProviderError carries the provider's own error details.
type ProviderError struct {
	Status int
	Code   string
	Type   string
	Msg    string
	cause  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("plaid %s (%d): %s", e.Code, e.Status, e.Msg)
}

func (e *ProviderError) Unwrap() error {
	return e.cause
}

type PlaidTransport struct {
	base http.RoundTripper
}

func (t *PlaidTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Plaid-Version", plaidAPIVersion)

	return t.base.RoundTrip(req)
}

// PlaidClient calls the Plaid REST API directly.
type PlaidClient struct {
	config  *config.PlaidConfig
	client  *http.Client
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewPlaidClient(
	cfg *config.PlaidConfig,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ProviderClientInterface {
	return newPlaidClient(cfg, &http.Client{
		Transport: &PlaidTransport{base: http.DefaultTransport},
		Timeout:   cfg.RequestTimeout,
	}, breaker, metrics, logger)
}

func newPlaidClient(cfg *config.PlaidConfig, client *http.Client, breaker CircuitBreakerInterface, metrics MetricsRecorderInterface, logger *slog.Logger) *PlaidClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlaidClient{
		config:  cfg,
		client:  client,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

func (c *PlaidClient) CreateLinkToken(ctx context.Context, clientUserID string) (*dto.LinkTokenResponse, error) {
	body := dto.PlaidLinkTokenRequest{
		ClientID:     c.config.ClientID,
		Secret:       c.config.Secret,
		ClientName:   c.config.ClientName,
		CountryCodes: c.config.CountryCodes,
		Language:     "en",
		User:         dto.PlaidLinkUser{ClientUserID: clientUserID},
		Products:     c.config.Products,
	}

	var resp dto.PlaidLinkTokenResponse
	if err := c.post(ctx, "/link/token/create", body, &resp); err != nil {
		return nil, err
	}
	return &dto.LinkTokenResponse{LinkToken: resp.LinkToken, Expiration: resp.Expiration}, nil
}

func (c *PlaidClient) ExchangePublicToken(ctx context.Context, publicToken string) (*dto.PlaidExchangeResponse, error) {
	body := dto.PlaidExchangeRequest{
		ClientID:    c.config.ClientID,
		Secret:      c.config.Secret,
		PublicToken: publicToken,
	}

	var resp dto.PlaidExchangeResponse
	if err := c.post(ctx, "/item/public_token/exchange", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchTransactions follows the sync cursor until the provider has no more
// pages or the page cap is reached.
func (c *PlaidClient) FetchTransactions(ctx context.Context, accessToken, cursor string) (*dto.ProviderSyncResult, error) {
	result := &dto.ProviderSyncResult{
		Transactions: []dto.ProviderTransaction{},
		NextCursor:   cursor,
	}

	for result.Pages < c.maxPages() {
		body := dto.PlaidSyncRequest{
			ClientID:    c.config.ClientID,
			Secret:      c.config.Secret,
			AccessToken: accessToken,
			Cursor:      result.NextCursor,
			Count:       c.pageSize(),
		}

		var page dto.PlaidSyncResponse
		if err := c.post(ctx, "/transactions/sync", body, &page); err != nil {
			return nil, err
		}

		result.Pages++
		result.Transactions = append(result.Transactions, page.Added...)
		result.Modified += len(page.Modified)
		for _, removed := range page.Removed {
			result.RemovedIDs = append(result.RemovedIDs, removed.TransactionID)
		}
		result.NextCursor = page.NextCursor

		if !page.HasMore {
			return result, nil
		}
	}

	result.Truncated = true
	c.logger.WarnContext(ctx, "plaid sync stopped at page cap",
		"pages", result.Pages,
		"transactions", len(result.Transactions))
	return result, nil
}

func (c *PlaidClient) RemoveItem(ctx context.Context, accessToken string) error {
	body := dto.PlaidItemRemoveRequest{
		ClientID:    c.config.ClientID,
		Secret:      c.config.Secret,
		AccessToken: accessToken,
	}
	var resp struct {
		RequestID string `json:"request_id"`
	}
	return c.post(ctx, "/item/remove", body, &resp)
}

func (c *PlaidClient) pageSize() int {
	if c.config.PageSize > 0 {
		return c.config.PageSize
	}
	return 500
}

func (c *PlaidClient) maxPages() int {
	if c.config.MaxPages > 0 {
		return c.config.MaxPages
	}
	return 20
}

// post sends one request through the circuit breaker. Only transport errors
// and 5xx responses count as breaker failures.
func (c *PlaidClient) post(ctx context.Context, path string, body, out any) error {
	if c.config.ClientID == "" || c.config.Secret == "" {
		return ErrProviderNotConfigured
	}
	defer c.recordBreakerState()
	if c.breaker.IsOpen() {
		c.metrics.IncrementCounter("provider.request", map[string]string{"endpoint": path, "status": "circuit_open"})
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, ErrCircuitBreakerOpen)
	}

	req, err := c.buildRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, respBody, err := c.do(req)
	c.metrics.RecordProcessingTime("provider.request", time.Since(start))
	if err != nil {
		c.breaker.RecordFailure()
		c.metrics.IncrementCounter("provider.request", map[string]string{"endpoint": path, "status": "transport_error"})
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if resp.StatusCode == http.StatusOK {
		c.breaker.RecordSuccess()
		c.metrics.IncrementCounter("provider.request", map[string]string{"endpoint": path, "status": "ok"})
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%w: decode %s response: %w", ErrProviderUnavailable, path, err)
		}
		return nil
	}

	providerErr := c.decodeError(resp.StatusCode, respBody)
	if resp.StatusCode >= http.StatusInternalServerError {
		c.breaker.RecordFailure()
	} else {
		c.breaker.RecordSuccess()
	}
	c.metrics.IncrementCounter("provider.request", map[string]string{"endpoint": path, "status": providerErr.Code})

	c.logger.ErrorContext(ctx, "plaid request failed",
		"endpoint", path,
		"status", resp.StatusCode,
		"error_code", providerErr.Code,
		"error_type", providerErr.Type,
		"message", providerErr.Msg)

	return providerErr
}

func (c *PlaidClient) recordBreakerState() {
	c.metrics.RecordGauge("circuit_breaker.state", float64(c.breaker.GetState()), map[string]string{"service": "plaid"})
}

func (c *PlaidClient) decodeError(status int, body []byte) *ProviderError {
	providerErr := &ProviderError{Status: status, Code: "UNKNOWN", Msg: string(body)}

	var errResp dto.PlaidErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.ErrorCode != "" {
		providerErr.Code = errResp.ErrorCode
		providerErr.Type = errResp.ErrorType
		providerErr.Msg = errResp.ErrorMessage
	}

	_, invalid := invalidLinkCodes[providerErr.Code]
	switch {
	case invalid:
		providerErr.cause = ErrBankLinkInvalid
	case status == http.StatusTooManyRequests || providerErr.Type == "RATE_LIMIT_EXCEEDED":
		providerErr.cause = ErrProviderRateLimited
	default:
		providerErr.cause = ErrProviderUnavailable
	}
	return providerErr
}

func (c *PlaidClient) buildRequest(
	ctx context.Context,
	method, path string,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		c.config.BaseURL+path,
		buf,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (c *PlaidClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error(
			"plaid request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}
