package services

import (
	"testing"

	"budget-coach/internal/dto"
	"budget-coach/internal/models"

	"github.com/stretchr/testify/suite"
)

type NormalizerTestSuite struct {
	suite.Suite
	normalizer NormalizerInterface
}

func (s *NormalizerTestSuite) SetupTest() {
	s.normalizer = NewNormalizer()
}

func TestNormalizerSuite(t *testing.T) {
	suite.Run(t, new(NormalizerTestSuite))
}

func (s *NormalizerTestSuite) TestNormalize_PlaidSignIsFlipped() {
	records := []dto.ProviderTransaction{
		{TransactionID: "t1", Date: "2025-03-02", Amount: "45.00", Name: "KROGER #123"},
		{TransactionID: "t2", Date: "2025-03-01", Amount: "-2500", Name: "ACME PAYROLL"},
	}

	result := s.normalizer.Normalize(records, OutflowPositive, nil)

	s.Require().Len(result.Transactions, 2)
	s.Empty(result.Skipped)
	s.Equal("t2", result.Transactions[0].ID)
	s.Equal("2500", result.Transactions[0].Amount.String())
	s.Equal("t1", result.Transactions[1].ID)
	s.Equal("-45", result.Transactions[1].Amount.String())
}

func (s *NormalizerTestSuite) TestNormalize_StoredSignIsKept() {
	records := []dto.ProviderTransaction{
		{TransactionID: "t1", Date: "2025-03-02", Amount: "-12.345", Name: "Coffee"},
	}

	result := s.normalizer.Normalize(records, OutflowNegative, nil)

	s.Require().Len(result.Transactions, 1)
	s.Equal("-12.35", result.Transactions[0].Amount.StringFixed(2))
	s.Empty(result.Transactions[0].Category)
}

func (s *NormalizerTestSuite) TestNormalize_SkipsMalformedRecords() {
	records := []dto.ProviderTransaction{
		{TransactionID: " ", Date: "2025-03-02", Amount: "1", Name: "a"},
		{TransactionID: "bad-amount", Date: "2025-03-02", Amount: "abc", Name: "a"},
		{TransactionID: "bad-date", Date: "03/02/2025", Amount: "1", Name: "a"},
		{TransactionID: "no-name", Date: "2025-03-02", Amount: "1"},
		{TransactionID: "pending", Date: "2025-03-02", Amount: "1", Name: "a", Pending: true},
		{TransactionID: "ok", Date: "2025-03-02T10:30:00Z", Amount: "1", MerchantName: "Target"},
	}

	result := s.normalizer.Normalize(records, OutflowPositive, nil)

	s.Require().Len(result.Transactions, 1)
	ok := result.Transactions[0]
	s.Equal("Target", ok.Name)
	s.Equal(models.Day(day(2025, 3, 2)), ok.Date)

	reasons := make(map[string]string)
	for _, skipped := range result.Skipped {
		reasons[skipped.TransactionID] = skipped.Reason
	}
	s.Equal(map[string]string{
		"":           SkipMissingID,
		"bad-amount": SkipInvalidAmount,
		"bad-date":   SkipInvalidDate,
		"no-name":    SkipMissingName,
		"pending":    SkipPending,
	}, reasons)
}

func (s *NormalizerTestSuite) TestNormalize_DropsDuplicates() {
	records := []dto.ProviderTransaction{
		{TransactionID: "known", Date: "2025-03-02", Amount: "1", Name: "a"},
		{TransactionID: "new", Date: "2025-03-02", Amount: "1", Name: "a"},
		{TransactionID: "new", Date: "2025-03-03", Amount: "2", Name: "b"},
	}

	result := s.normalizer.Normalize(records, OutflowPositive, map[string]struct{}{"known": {}})

	s.Require().Len(result.Transactions, 1)
	s.Equal("new", result.Transactions[0].ID)
	s.Equal("-1", result.Transactions[0].Amount.String())
	s.Equal(2, result.Duplicates)
}

func (s *NormalizerTestSuite) TestNormalize_EmptyInput() {
	result := s.normalizer.Normalize(nil, OutflowPositive, nil)

	s.NotNil(result.Transactions)
	s.Empty(result.Transactions)
	s.Zero(result.Duplicates)
}
