package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"budget-coach/internal/dto"
	"budget-coach/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	sandboxHistoryDays = 120
	sandboxPayDay      = 4 // day offset within the fortnight, counted from the Unix epoch
	biWeeklyDays       = 14
	sandboxAccountID   = "sandbox-checking"
)

// sandboxMerchant is a fixed charge the sandbox repeats every month.
type sandboxMerchant struct {
	Name   string
	Amount string
	Day    int
}

// SandboxProvider generates a believable transaction history for local use
// without a Plaid account. The same access token always yields the same
// transactions for the same days, so repeated syncs are idempotent.
type SandboxProvider struct {
	now          func() time.Time
	historyDays  int
	groceryPool  []string
	monthlyBills []sandboxMerchant
}

func NewSandboxProvider() ProviderClientInterface {
	return newSandboxProvider(time.Now)
}

func newSandboxProvider(now func() time.Time) *SandboxProvider {
	return &SandboxProvider{
		now:         now,
		historyDays: sandboxHistoryDays,
		groceryPool: []string{
			"Kroger", "Whole Foods Market", "Safeway", "Trader Joe's",
			"Costco Wholesale", "Aldi", "Publix Super Market",
		},
		monthlyBills: []sandboxMerchant{
			{Name: "Oak Street Apartments Rent", Amount: "1450.00", Day: 1},
			{Name: "Netflix", Amount: "15.49", Day: 5},
			{Name: "Verizon Wireless", Amount: "85.00", Day: 12},
			{Name: "Comcast Internet", Amount: "69.99", Day: 20},
			{Name: "Spotify", Amount: "11.99", Day: 24},
		},
	}
}

func (p *SandboxProvider) CreateLinkToken(ctx context.Context, clientUserID string) (*dto.LinkTokenResponse, error) {
	return &dto.LinkTokenResponse{
		LinkToken:  "link-sandbox-" + uuid.NewString(),
		Expiration: p.now().Add(4 * time.Hour).UTC().Format(time.RFC3339),
	}, nil
}

func (p *SandboxProvider) ExchangePublicToken(ctx context.Context, publicToken string) (*dto.PlaidExchangeResponse, error) {
	if strings.TrimSpace(publicToken) == "" {
		return nil, &ProviderError{Status: 400, Code: "INVALID_PUBLIC_TOKEN", Msg: "public token is empty", cause: ErrBankLinkInvalid}
	}
	return &dto.PlaidExchangeResponse{
		AccessToken: "access-sandbox-" + uuid.NewString(),
		ItemID:      "item-sandbox-" + uuid.NewString(),
		RequestID:   uuid.NewString(),
	}, nil
}

// FetchTransactions returns every generated day after the cursor up to
// today. The cursor is the last day already delivered.
func (p *SandboxProvider) FetchTransactions(ctx context.Context, accessToken, cursor string) (*dto.ProviderSyncResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	end := models.Day(p.now())
	start := end.AddDate(0, 0, -p.historyDays)
	if cursor != "" {
		last, err := models.ParseDay(cursor)
		if err != nil {
			return nil, &ProviderError{Status: 400, Code: "INVALID_CURSOR", Msg: err.Error(), cause: ErrProviderUnavailable}
		}
		start = last.AddDate(0, 0, 1)
	}

	seed := tokenSeed(accessToken)
	employer := gofakeit.New(seed).Company()

	transactions := make([]dto.ProviderTransaction, 0)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		transactions = append(transactions, p.generateDay(seed, employer, day)...)
	}

	return &dto.ProviderSyncResult{
		Transactions: transactions,
		NextCursor:   end.Format(models.DateLayout),
		Pages:        1,
	}, nil
}

func (p *SandboxProvider) RemoveItem(ctx context.Context, accessToken string) error {
	return nil
}

// generateDay builds one day's transactions in the provider's convention:
// positive amounts are money leaving the account.
func (p *SandboxProvider) generateDay(seed uint64, employer string, day time.Time) []dto.ProviderTransaction {
	faker := gofakeit.New(seed ^ uint64(day.Unix()))
	date := day.Format(models.DateLayout)
	var out []dto.ProviderTransaction

	add := func(kind, name, merchant string, amount decimal.Decimal) {
		out = append(out, dto.ProviderTransaction{
			TransactionID: fmt.Sprintf("sbx-%x-%s-%s-%d", seed&0xffffffff, date, kind, len(out)),
			AccountID:     sandboxAccountID,
			Date:          date,
			Amount:        dto.RawAmount(amount.StringFixed(2)),
			Name:          name,
			MerchantName:  merchant,
		})
	}

	if daysSinceEpoch(day)%biWeeklyDays == sandboxPayDay {
		add("payroll", strings.ToUpper(employer)+" PAYROLL DIRECT DEP", "", decimal.RequireFromString("-2450.00"))
	}

	for _, bill := range p.monthlyBills {
		if day.Day() == min(bill.Day, models.DaysInMonth(day.Year(), day.Month())) {
			add("bill", bill.Name, bill.Name, decimal.RequireFromString(bill.Amount))
		}
	}

	if day.Weekday() == time.Saturday {
		store := p.groceryPool[faker.IntRange(0, len(p.groceryPool)-1)]
		add("grocery", store, store, decimal.NewFromFloat(faker.Float64Range(40, 140)).Round(2))
	}

	for i, n := 0, faker.IntRange(0, 2); i < n; i++ {
		merchant := faker.Company()
		add("purchase", "POS "+strings.ToUpper(merchant), merchant, decimal.NewFromFloat(faker.Float64Range(4, 60)).Round(2))
	}

	return out
}

func tokenSeed(accessToken string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(accessToken))
	return h.Sum64()
}

func daysSinceEpoch(day time.Time) int {
	return int(models.Day(day).Unix() / 86400)
}
