package dto

import (
	"bytes"
	"encoding/json"
)

// RawAmount holds an amount exactly as the provider sent it. Both JSON
// numbers and quoted strings are accepted so a single bad record does not
// fail decoding of the whole batch.
type RawAmount string

func (a *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = RawAmount(s)
		return nil
	}
	*a = RawAmount(data)
	return nil
}

func (a RawAmount) MarshalJSON() ([]byte, error) {
	if a == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}

// ProviderTransaction is a transaction record as delivered by the bank data
// provider, before normalization.
type ProviderTransaction struct {
	TransactionID string    `json:"transaction_id"`
	AccountID     string    `json:"account_id"`
	Date          string    `json:"date"`
	Amount        RawAmount `json:"amount"`
	Name          string    `json:"name"`
	MerchantName  string    `json:"merchant_name,omitempty"`
	Pending       bool      `json:"pending,omitempty"`
}

// ---------- Link ----------

type PlaidLinkUser struct {
	ClientUserID string `json:"client_user_id"`
}

type PlaidLinkTokenRequest struct {
	ClientID     string        `json:"client_id"`
	Secret       string        `json:"secret"`
	ClientName   string        `json:"client_name"`
	CountryCodes []string      `json:"country_codes"`
	Language     string        `json:"language"`
	User         PlaidLinkUser `json:"user"`
	Products     []string      `json:"products"`
}

type PlaidLinkTokenResponse struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration"`
	RequestID  string `json:"request_id"`
}

type PlaidExchangeRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	PublicToken string `json:"public_token"`
}

type PlaidExchangeResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

type PlaidItemRemoveRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
}

// ---------- Sync ----------

type PlaidSyncOptions struct {
	IncludePersonalFinanceCategory bool `json:"include_personal_finance_category"`
}

type PlaidSyncRequest struct {
	ClientID    string           `json:"client_id"`
	Secret      string           `json:"secret"`
	AccessToken string           `json:"access_token"`
	Cursor      string           `json:"cursor,omitempty"`
	Count       int              `json:"count"`
	Options     PlaidSyncOptions `json:"options"`
}

type PlaidRemovedTransaction struct {
	TransactionID string `json:"transaction_id"`
}

type PlaidSyncResponse struct {
	Added      []ProviderTransaction     `json:"added"`
	Modified   []ProviderTransaction     `json:"modified"`
	Removed    []PlaidRemovedTransaction `json:"removed"`
	NextCursor string                    `json:"next_cursor"`
	HasMore    bool                      `json:"has_more"`
	RequestID  string                    `json:"request_id"`
}

// PlaidErrorResponse is the error body Plaid returns with any non-2xx status.
type PlaidErrorResponse struct {
	ErrorType      string `json:"error_type"`
	ErrorCode      string `json:"error_code"`
	ErrorMessage   string `json:"error_message"`
	DisplayMessage string `json:"display_message"`
	RequestID      string `json:"request_id"`
}

// ProviderSyncResult is every page fetched in one sync pass, flattened.
type ProviderSyncResult struct {
	Transactions []ProviderTransaction
	// RemovedIDs are transactions the provider has withdrawn.
	RemovedIDs []string
	// Modified counts updates to already delivered transactions. Stored
	// transactions are immutable, so these are not applied.
	Modified   int
	NextCursor string
	Pages      int
	// Truncated is set when the page cap was hit before the provider ran out.
	Truncated bool
}
