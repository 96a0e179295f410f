package services

import (
	"testing"

	"budget-coach/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InsightGeneratorTestSuite struct {
	suite.Suite
	generator InsightGeneratorInterface
}

func (s *InsightGeneratorTestSuite) SetupTest() {
	s.generator = NewInsightGenerator(testAnalysisConfig())
}

func TestInsightGeneratorSuite(t *testing.T) {
	suite.Run(t, new(InsightGeneratorTestSuite))
}

func (s *InsightGeneratorTestSuite) input(income string, groceries, bills, misc string) InsightInput {
	return InsightInput{
		AsOf:             day(2025, 3, 31),
		Income:           models.IncomeEstimate{Amount: dec(income), Source: models.IncomeFromEstimated},
		Spending:         models.CategoryTotals{Groceries: dec(groceries), Bills: dec(bills), Miscellaneous: dec(misc)},
		TransactionCount: 10,
	}
}

func (s *InsightGeneratorTestSuite) byRule(insights []models.Insight) map[string]models.Insight {
	out := make(map[string]models.Insight, len(insights))
	for _, insight := range insights {
		out[insight.Rule] = insight
	}
	return out
}

func (s *InsightGeneratorTestSuite) TestGenerate_NoData() {
	insights := s.generator.Generate(InsightInput{AsOf: day(2025, 3, 31)})

	s.Require().Len(insights, 1)
	s.Equal("no_data", insights[0].Rule)
	s.Equal(models.SeverityInfo, insights[0].Severity)
}

func (s *InsightGeneratorTestSuite) TestGenerate_HealthySavings() {
	insights := s.byRule(s.generator.Generate(s.input("5000", "500", "1000", "500")))

	s.Require().Contains(insights, "savings_rate")
	s.Equal(models.SeverityPositive, insights["savings_rate"].Severity)
	s.Contains(insights["savings_rate"].Message, "60.0%")
	s.Require().Contains(insights, "leftover_action")
	s.Contains(insights["leftover_action"].Message, "$3000.00")
	s.NotContains(insights, "groceries_share")
	s.NotContains(insights, "miscellaneous_share")
	s.NotContains(insights, "high_interest_debt")
}

func (s *InsightGeneratorTestSuite) TestGenerate_Overspending() {
	insights := s.byRule(s.generator.Generate(s.input("1000", "400", "500", "300")))

	s.Equal(models.SeverityCritical, insights["savings_rate"].Severity)
	s.Contains(insights["savings_rate"].Message, "$200.00")
	s.NotContains(insights, "leftover_action")
}

func (s *InsightGeneratorTestSuite) TestGenerate_NoIncomeWithSpending() {
	insights := s.byRule(s.generator.Generate(s.input("0", "45", "0", "0")))

	s.Equal(models.SeverityCritical, insights["savings_rate"].Severity)
	s.Contains(insights["savings_rate"].Message, "No income")
	s.Contains(insights, "groceries_share")
}

func (s *InsightGeneratorTestSuite) TestGenerate_ShareRulesYieldOneInsightEach() {
	insights := s.generator.Generate(s.input("1000", "450", "0", "550"))

	counts := make(map[string]int)
	for _, insight := range insights {
		counts[insight.Rule]++
	}
	for rule, count := range counts {
		s.Equal(1, count, "rule %s", rule)
	}
	s.Equal(1, counts["groceries_share"])
	s.Equal(1, counts["miscellaneous_share"])
	s.Zero(counts["bills_share"])
}

func (s *InsightGeneratorTestSuite) TestGenerate_BillsShare() {
	insights := s.byRule(s.generator.Generate(s.input("1000", "100", "700", "100")))

	s.Require().Contains(insights, "bills_share")
	s.Contains(insights["bills_share"].Message, "$700.00")

	insights = s.byRule(s.generator.Generate(s.input("2000", "100", "700", "100")))
	s.NotContains(insights, "bills_share")
}

func (s *InsightGeneratorTestSuite) TestEveryRuleYieldsAtMostOneInsight() {
	in := s.input("1000", "450", "900", "550")
	in.Budget = models.BudgetLimits{Groceries: dec("100"), Miscellaneous: dec("100"), Savings: dec("500")}
	in.Debts = []models.DebtAccount{
		{Name: "Store Card", Balance: dec("8000"), APR: dec("27.99")},
		{Name: "Visa", Balance: dec("4200"), APR: dec("24.50")},
	}
	in.Forecast = []models.ProjectedBill{{Date: day(2025, 4, 1), Amount: dec("1500"), Name: "Rent"}}
	in.RecurringCount = 3

	for _, rule := range s.generator.Rules() {
		s.LessOrEqual(len(rule.Evaluate(in)), 1, "rule %s", rule.Name)
	}
}

func (s *InsightGeneratorTestSuite) TestGenerate_OverBudget() {
	in := s.input("5000", "500", "200", "100")
	in.Budget = models.BudgetLimits{Groceries: dec("400"), Miscellaneous: dec("150"), Savings: decimal.Zero}

	insights := s.byRule(s.generator.Generate(in))

	s.Require().Contains(insights, "groceries_budget")
	s.Equal("Groceries spending of $500.00 is $100.00 over your $400.00 budget.", insights["groceries_budget"].Message)
	s.NotContains(insights, "miscellaneous_budget")
}

func (s *InsightGeneratorTestSuite) TestGenerate_SavingsTargetMissed() {
	in := s.input("3000", "1000", "1000", "500")
	in.Budget = models.BudgetLimits{Savings: dec("1000")}

	insights := s.byRule(s.generator.Generate(in))

	s.Require().Contains(insights, "savings_target")
	s.Contains(insights["savings_target"].Message, "$500.00 short")
}

func (s *InsightGeneratorTestSuite) TestGenerate_Debt() {
	in := s.input("3000", "100", "100", "100")
	in.Debts = []models.DebtAccount{
		{Name: "Store Card", Balance: dec("800"), APR: dec("27.99")},
		{Name: "Visa", Balance: dec("4200"), APR: dec("24.50")},
		{Name: "Car Loan", Balance: dec("9000"), APR: dec("6.90")},
	}

	insights := s.byRule(s.generator.Generate(in))

	s.Require().Contains(insights, "high_interest_debt")
	s.Contains(insights["high_interest_debt"].Message, "Store Card")
	s.Require().Contains(insights, "debt_load")
	s.Equal(models.SeverityInfo, insights["debt_load"].Severity)

	in.Income.Amount = dec("2000")
	insights = s.byRule(s.generator.Generate(in))
	s.Equal(models.SeverityCritical, insights["debt_load"].Severity)
}

func (s *InsightGeneratorTestSuite) TestGenerate_UpcomingBillsExceedIncome() {
	in := s.input("1000", "10", "10", "10")
	in.Forecast = []models.ProjectedBill{
		{Date: day(2025, 4, 1), Amount: dec("900"), Name: "Rent"},
		{Date: day(2025, 4, 15), Amount: dec("200"), Name: "Car"},
		{Date: day(2025, 6, 1), Amount: dec("5000"), Name: "Far away"},
	}

	insights := s.byRule(s.generator.Generate(in))

	s.Require().Contains(insights, "upcoming_bills")
	s.Contains(insights["upcoming_bills"].Message, "$1100.00")
}

func (s *InsightGeneratorTestSuite) TestGenerate_RecurringDetected() {
	in := s.input("5000", "10", "10", "10")
	in.RecurringCount = 1

	insights := s.byRule(s.generator.Generate(in))

	s.Equal("Found 1 recurring bill in your history. Add them to your bills to track them.", insights["recurring_detected"].Message)
}

func (s *InsightGeneratorTestSuite) TestGenerate_RuleOrderIsStable() {
	in := s.input("1000", "800", "100", "50")
	in.Budget = models.BudgetLimits{Groceries: dec("500")}
	in.RecurringCount = 2

	first := s.generator.Generate(in)
	second := s.generator.Generate(in)

	s.Equal(first, second)
	order := make(map[string]int)
	for i, rule := range s.generator.Rules() {
		order[rule.Name] = i
	}
	for i := 1; i < len(first); i++ {
		s.LessOrEqual(order[first[i-1].Rule], order[first[i].Rule])
	}
}

func (s *InsightGeneratorTestSuite) TestSavingsRate() {
	s.Equal("25", SavingsRate(dec("2000"), dec("1500")).String())
	s.True(SavingsRate(decimal.Zero, dec("10")).IsZero())
	s.Equal("-50", SavingsRate(dec("100"), dec("150")).String())
}
