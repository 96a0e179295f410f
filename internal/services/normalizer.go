package services

import (
	"sort"
	"strings"
	"time"

	"budget-coach/internal/dto"
	"budget-coach/internal/models"

	"github.com/shopspring/decimal"
)

// SignConvention says which sign a provider uses for money leaving an account.
type SignConvention int

const (
	// OutflowNegative is the stored convention: negative amounts are spending.
	OutflowNegative SignConvention = iota
	// OutflowPositive is Plaid's convention: positive amounts are spending.
	OutflowPositive
)

// Reasons a provider record is skipped during normalization.
const (
	SkipMissingID     = "missing_id"
	SkipInvalidAmount = "invalid_amount"
	SkipInvalidDate   = "invalid_date"
	SkipMissingName   = "missing_name"
	SkipPending       = "pending"
)

// SkippedRecord identifies a provider record that was not accepted.
type SkippedRecord struct {
	TransactionID string
	Reason        string
}

type NormalizeResult struct {
	Transactions []models.Transaction
	Skipped      []SkippedRecord
	Duplicates   int
}

type normalizer struct{}

func NewNormalizer() NormalizerInterface {
	return &normalizer{}
}

// Normalize converts provider records into transactions. Malformed and
// pending records are skipped, ids already in known or earlier in the batch
// are dropped as duplicates, and the result is ordered by date then id.
func (n *normalizer) Normalize(records []dto.ProviderTransaction, convention SignConvention, known map[string]struct{}) NormalizeResult {
	result := NormalizeResult{Transactions: make([]models.Transaction, 0, len(records))}
	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		id := strings.TrimSpace(record.TransactionID)
		txn, reason := n.convert(record, id, convention)
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedRecord{TransactionID: id, Reason: reason})
			continue
		}

		if _, ok := known[id]; ok {
			result.Duplicates++
			continue
		}
		if _, ok := seen[id]; ok {
			result.Duplicates++
			continue
		}
		seen[id] = struct{}{}
		result.Transactions = append(result.Transactions, txn)
	}

	sort.SliceStable(result.Transactions, func(i, j int) bool {
		a, b := result.Transactions[i], result.Transactions[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})

	return result
}

func (n *normalizer) convert(record dto.ProviderTransaction, id string, convention SignConvention) (models.Transaction, string) {
	if id == "" {
		return models.Transaction{}, SkipMissingID
	}
	if record.Pending {
		return models.Transaction{}, SkipPending
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(string(record.Amount)))
	if err != nil {
		return models.Transaction{}, SkipInvalidAmount
	}
	if convention == OutflowPositive {
		amount = amount.Neg()
	}

	date, ok := parseProviderDate(record.Date)
	if !ok {
		return models.Transaction{}, SkipInvalidDate
	}

	name := strings.TrimSpace(record.Name)
	merchant := strings.TrimSpace(record.MerchantName)
	if name == "" && merchant == "" {
		return models.Transaction{}, SkipMissingName
	}
	if name == "" {
		name = merchant
	}

	return models.Transaction{
		ID:           id,
		AccountID:    strings.TrimSpace(record.AccountID),
		Date:         date,
		Amount:       amount.Round(2),
		Name:         name,
		MerchantName: merchant,
	}, ""
}

// parseProviderDate accepts a calendar date or a full RFC 3339 timestamp.
func parseProviderDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(models.DateLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return models.Day(t), true
	}
	return time.Time{}, false
}
