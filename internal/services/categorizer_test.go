package services

import (
	"testing"

	"budget-coach/internal/models"

	"github.com/stretchr/testify/suite"
)

type CategorizerTestSuite struct {
	suite.Suite
	categorizer CategorizerInterface
}

func (s *CategorizerTestSuite) SetupTest() {
	s.categorizer = NewCategorizer(testAnalysisConfig())
}

func TestCategorizerSuite(t *testing.T) {
	suite.Run(t, new(CategorizerTestSuite))
}

func (s *CategorizerTestSuite) TestClassify() {
	cases := []struct {
		name     string
		txn      models.Transaction
		expected models.Category
	}{
		{"large deposit is income", txn("1", day(2025, 3, 1), "2500.00", "ACME CORP"), models.CategoryIncome},
		{"small payroll deposit is income", txn("2", day(2025, 3, 1), "40.00", "Payroll adjustment"), models.CategoryIncome},
		{"small refund is not income", txn("3", day(2025, 3, 1), "25.00", "Payroll refund"), models.CategoryMiscellaneous},
		{"mid deposit is income", txn("8", day(2025, 3, 1), "75.00", "Venmo cashout"), models.CategoryIncome},
		{"mid transfer is not income", txn("9", day(2025, 3, 1), "75.00", "Transfer from savings"), models.CategoryMiscellaneous},
		{"mid refund is not income", txn("10", day(2025, 3, 1), "60.00", "Target refund"), models.CategoryGroceries},
		{"deposit at floor is not income", txn("11", day(2025, 3, 1), "50.00", "Venmo cashout"), models.CategoryMiscellaneous},
		{"grocery keyword", txn("4", day(2025, 3, 1), "-45.00", "KROGER #123"), models.CategoryGroceries},
		{"bill keyword", txn("5", day(2025, 3, 1), "-85.00", "Verizon Wireless"), models.CategoryBills},
		{"fallback", txn("6", day(2025, 3, 1), "-12.00", "Corner Cafe"), models.CategoryMiscellaneous},
		{"grocery wins over bill", txn("7", day(2025, 3, 1), "-30.00", "Walmart Gas Station"), models.CategoryGroceries},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			t := tc.txn
			s.Equal(tc.expected, s.categorizer.Classify(&t))
			s.Empty(t.Category)
		})
	}
}

func (s *CategorizerTestSuite) TestClassify_MerchantNameIsSearched() {
	t := txn("1", day(2025, 3, 1), "-60.00", "POS 4471")
	t.MerchantName = "Whole Foods Market"

	s.Equal(models.CategoryGroceries, s.categorizer.Classify(&t))
}

func (s *CategorizerTestSuite) TestRules_MidDepositFollowsIncomeKeyword() {
	var names []string
	for _, r := range s.categorizer.Rules() {
		names = append(names, r.Name)
	}

	s.Equal([]string{"income_threshold", "income_keyword", "income_mid_deposit", "grocery_keyword", "bill_keyword", "fallback"}, names)
}

func (s *CategorizerTestSuite) TestRules_EndWithCatchAll() {
	rules := s.categorizer.Rules()

	s.Require().NotEmpty(rules)
	last := rules[len(rules)-1]
	s.Equal(models.CategoryMiscellaneous, last.Category)
	s.True(last.Match(&models.Transaction{}))
}

func (s *CategorizerTestSuite) TestCategorizeWindow() {
	asOf := day(2025, 3, 31)
	stale := txn("old", day(2025, 1, 1), "-45.00", "Kroger")
	stale.Category = models.CategoryMiscellaneous
	transactions := []models.Transaction{
		txn("in", day(2025, 3, 10), "-45.00", "Kroger"),
		txn("edge", day(2025, 3, 2), "-85.00", "Comcast"),
		stale,
		txn("old-uncategorized", day(2025, 1, 2), "-5.00", "Kiosk"),
	}

	changed := s.categorizer.CategorizeWindow(transactions, asOf)

	s.Equal(models.CategoryGroceries, transactions[0].Category)
	s.Equal(models.CategoryBills, transactions[1].Category)
	s.Equal(models.CategoryMiscellaneous, transactions[2].Category)
	s.Equal(models.CategoryMiscellaneous, transactions[3].Category)
	s.Len(changed, 3)
	s.Require().NotNil(transactions[0].CategorizedAt)
	s.Equal(asOf, *transactions[0].CategorizedAt)
	s.Nil(transactions[2].CategorizedAt)
}

func (s *CategorizerTestSuite) TestWindowBounds_CoversExactlyWindowDays() {
	asOf := day(2025, 3, 31)
	start, end := WindowBounds(asOf, 30)

	s.Equal(day(2025, 3, 2), start)
	s.Equal(asOf, end)
	s.False(InWindow(asOf.AddDate(0, 0, -30), start, end))
	s.True(InWindow(asOf.AddDate(0, 0, -29), start, end))
	s.True(InWindow(asOf, start, end))
	s.False(InWindow(asOf.AddDate(0, 0, 1), start, end))
}

func (s *CategorizerTestSuite) TestCategorizeWindow_DayThirtyBackKeepsCategory() {
	asOf := day(2025, 3, 31)
	outside := txn("outside", asOf.AddDate(0, 0, -30), "-45.00", "Kroger")
	outside.Category = models.CategoryMiscellaneous
	inside := txn("inside", asOf.AddDate(0, 0, -29), "-45.00", "Kroger")
	inside.Category = models.CategoryMiscellaneous
	transactions := []models.Transaction{outside, inside}

	changed := s.categorizer.CategorizeWindow(transactions, asOf)

	s.Equal(models.CategoryMiscellaneous, transactions[0].Category)
	s.Equal(models.CategoryGroceries, transactions[1].Category)
	s.Require().Len(changed, 1)
	s.Equal("inside", changed[0].ID)
}

func (s *CategorizerTestSuite) TestCategorizeWindow_UnchangedIsNotReported() {
	t := txn("in", day(2025, 3, 10), "-45.00", "Kroger")
	t.Category = models.CategoryGroceries

	changed := s.categorizer.CategorizeWindow([]models.Transaction{t}, day(2025, 3, 31))

	s.Empty(changed)
}

func (s *CategorizerTestSuite) TestSumSpending() {
	transactions := []models.Transaction{
		txn("1", day(2025, 3, 10), "-45.00", "Kroger"),
		txn("2", day(2025, 3, 11), "-85.00", "Comcast"),
		txn("3", day(2025, 3, 12), "-10.50", "Cafe"),
		txn("4", day(2025, 3, 12), "20.00", "Cafe refund"),
		txn("5", day(2025, 1, 12), "-99.00", "Kroger"),
	}
	s.categorizer.CategorizeWindow(transactions, day(2025, 3, 31))
	start, end := WindowBounds(day(2025, 3, 31), 30)

	totals := SumSpending(transactions, start, end)

	s.Equal("45", totals.Groceries.String())
	s.Equal("85", totals.Bills.String())
	s.Equal("10.5", totals.Miscellaneous.String())
	s.Equal("140.5", totals.Total().String())
}
