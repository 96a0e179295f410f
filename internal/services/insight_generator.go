package services

import (
	"fmt"
	"time"

	"budget-coach/internal/config"
	"budget-coach/internal/models"

	"github.com/shopspring/decimal"
)

// InsightInput is everything the coaching rules look at.
type InsightInput struct {
	AsOf             time.Time
	Income           models.IncomeEstimate
	Spending         models.CategoryTotals
	Budget           models.BudgetLimits
	Debts            []models.DebtAccount
	Bills            []models.Bill
	Forecast         []models.ProjectedBill
	RecurringCount   int
	TransactionCount int
}

// Net is income minus total spending.
func (in InsightInput) Net() decimal.Decimal {
	return in.Income.Amount.Sub(in.Spending.Total())
}

func (in InsightInput) hasData() bool {
	return in.TransactionCount > 0 || in.Income.Amount.IsPositive() || len(in.Bills) > 0 || len(in.Debts) > 0
}

// InsightRule inspects the input and returns at most one insight.
type InsightRule struct {
	Name     string
	Evaluate func(in InsightInput) []models.Insight
}

var (
	hundred        = decimal.NewFromInt(100)
	leftoverFloor  = decimal.NewFromInt(100)
	avalancheFloor = decimal.NewFromInt(1000)
)

type insightGenerator struct {
	rules []InsightRule
}

func NewInsightGenerator(cfg config.AnalysisConfig) InsightGeneratorInterface {
	return &insightGenerator{rules: defaultInsightRules(cfg)}
}

func (g *insightGenerator) Rules() []InsightRule {
	return g.rules
}

// Generate runs every rule in order. With nothing to analyse it returns a
// single prompt to add data.
func (g *insightGenerator) Generate(in InsightInput) []models.Insight {
	if !in.hasData() {
		return []models.Insight{{
			Rule:     "no_data",
			Severity: models.SeverityInfo,
			Message:  "Connect a bank account or add your income and bills to get personalised insights.",
		}}
	}

	insights := make([]models.Insight, 0, len(g.rules))
	for _, rule := range g.rules {
		for _, insight := range rule.Evaluate(in) {
			insight.Rule = rule.Name
			insights = append(insights, insight)
		}
	}
	return insights
}

func defaultInsightRules(cfg config.AnalysisConfig) []InsightRule {
	return []InsightRule{
		{Name: "savings_rate", Evaluate: savingsRateRule},
		{Name: "high_interest_debt", Evaluate: highInterestDebtRule(cfg.HighInterestAPR)},
		{Name: "debt_load", Evaluate: debtLoadRule(cfg.DebtToIncomeMultiple)},
		{Name: "groceries_budget", Evaluate: overBudgetRule(models.CategoryGroceries)},
		{Name: "miscellaneous_budget", Evaluate: overBudgetRule(models.CategoryMiscellaneous)},
		{Name: "savings_target", Evaluate: savingsTargetRule},
		{Name: "groceries_share", Evaluate: groceriesShareRule},
		{Name: "miscellaneous_share", Evaluate: miscellaneousShareRule},
		{Name: "bills_share", Evaluate: billsShareRule},
		{Name: "upcoming_bills", Evaluate: upcomingBillsRule},
		{Name: "recurring_detected", Evaluate: recurringDetectedRule},
		{Name: "leftover_action", Evaluate: leftoverRule},
	}
}

func one(severity models.InsightSeverity, format string, args ...interface{}) []models.Insight {
	return []models.Insight{{Severity: severity, Message: fmt.Sprintf(format, args...)}}
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// SavingsRate is net income as a percentage of income, zero without income.
func SavingsRate(income, spend decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Sub(spend).Div(income).Mul(hundred).Round(2)
}

func savingsRateRule(in InsightInput) []models.Insight {
	spend := in.Spending.Total()
	if !in.Income.Amount.IsPositive() {
		if spend.IsPositive() {
			return one(models.SeverityCritical, "No income recorded in the last 30 days while spending %s.", money(spend))
		}
		return nil
	}

	net := in.Net()
	if !net.IsPositive() {
		return one(models.SeverityCritical, "You're spending %s more than you earn. Review the largest categories first.", money(net.Abs()))
	}

	rate := SavingsRate(in.Income.Amount, spend)
	switch {
	case rate.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return one(models.SeverityPositive, "Great job! You're saving %s%% of your income.", rate.StringFixed(1))
	case rate.GreaterThan(decimal.NewFromInt(10)):
		return one(models.SeverityInfo, "You're saving %s%% of your income. Aim for 20%% to build a stronger cushion.", rate.StringFixed(1))
	default:
		return one(models.SeverityWarning, "You're only saving %s%% of your income. Look for cuts to reach at least 10%%.", rate.StringFixed(1))
	}
}

func highInterestDebtRule(threshold decimal.Decimal) func(InsightInput) []models.Insight {
	return func(in InsightInput) []models.Insight {
		var worst *models.DebtAccount
		for i := range in.Debts {
			d := &in.Debts[i]
			if !d.Balance.IsPositive() || !d.APR.GreaterThan(threshold) {
				continue
			}
			if worst == nil || d.APR.GreaterThan(worst.APR) || (d.APR.Equal(worst.APR) && d.Name < worst.Name) {
				worst = d
			}
		}
		if worst == nil {
			return nil
		}
		return one(models.SeverityWarning, "Prioritise paying off %s: at %s%% APR its %s balance is your most expensive debt.",
			worst.Name, worst.APR.StringFixed(2), money(worst.Balance))
	}
}

func debtLoadRule(multiple decimal.Decimal) func(InsightInput) []models.Insight {
	return func(in InsightInput) []models.Insight {
		total := decimal.Zero
		for i := range in.Debts {
			total = total.Add(in.Debts[i].Balance)
		}
		if !total.IsPositive() {
			return nil
		}
		if in.Income.Amount.IsPositive() && total.GreaterThan(in.Income.Amount.Mul(multiple)) {
			return one(models.SeverityCritical, "Total debt of %s is more than %sx your monthly income. Consider speaking with a credit counsellor.",
				money(total), multiple.String())
		}
		if total.GreaterThan(avalancheFloor) {
			return one(models.SeverityInfo, "With %s of debt, pay the minimums everywhere and put any extra toward the highest APR balance first.", money(total))
		}
		return nil
	}
}

func overBudgetRule(category models.Category) func(InsightInput) []models.Insight {
	return func(in InsightInput) []models.Insight {
		var limit decimal.Decimal
		switch category {
		case models.CategoryGroceries:
			limit = in.Budget.Groceries
		case models.CategoryMiscellaneous:
			limit = in.Budget.Miscellaneous
		}
		spent := in.Spending.For(category)
		if !limit.IsPositive() || !spent.GreaterThan(limit) {
			return nil
		}
		return one(models.SeverityWarning, "%s spending of %s is %s over your %s budget.",
			titleCategory(category), money(spent), money(spent.Sub(limit)), money(limit))
	}
}

func savingsTargetRule(in InsightInput) []models.Insight {
	target := in.Budget.Savings
	if !target.IsPositive() || !in.Income.Amount.IsPositive() {
		return nil
	}
	net := in.Net()
	if net.GreaterThanOrEqual(target) {
		return nil
	}
	return one(models.SeverityWarning, "You're %s short of your %s monthly savings target.", money(target.Sub(net)), money(target))
}

// spendingShare is amount as a percentage of total spending, false when
// nothing was spent.
func spendingShare(in InsightInput, amount decimal.Decimal) (decimal.Decimal, bool) {
	total := in.Spending.Total()
	if !total.IsPositive() {
		return decimal.Zero, false
	}
	return amount.Div(total).Mul(hundred), true
}

func groceriesShareRule(in InsightInput) []models.Insight {
	share, ok := spendingShare(in, in.Spending.Groceries)
	if !ok || !share.GreaterThan(decimal.NewFromInt(40)) {
		return nil
	}
	return one(models.SeverityInfo, "Groceries are %s%% of your spending. Meal planning and store brands can bring this down.", share.StringFixed(0))
}

func miscellaneousShareRule(in InsightInput) []models.Insight {
	share, ok := spendingShare(in, in.Spending.Miscellaneous)
	if !ok || !share.GreaterThan(decimal.NewFromInt(50)) {
		return nil
	}
	return one(models.SeverityWarning, "Miscellaneous purchases are %s%% of your spending. Review them for subscriptions and impulse buys.", share.StringFixed(0))
}

func billsShareRule(in InsightInput) []models.Insight {
	share, ok := spendingShare(in, in.Spending.Bills)
	if !ok || !share.GreaterThan(decimal.NewFromInt(50)) || !in.Income.Amount.IsPositive() {
		return nil
	}
	if !in.Spending.Bills.GreaterThan(in.Income.Amount.Div(decimal.NewFromInt(2))) {
		return nil
	}
	return one(models.SeverityWarning, "Bills take %s, more than half your income. Shop around for cheaper insurance, phone and internet plans.", money(in.Spending.Bills))
}

func upcomingBillsRule(in InsightInput) []models.Insight {
	if !in.Income.Amount.IsPositive() {
		return nil
	}
	cutoff := models.Day(in.AsOf).AddDate(0, 0, 30)
	due := decimal.Zero
	for _, p := range in.Forecast {
		if !p.Date.After(cutoff) {
			due = due.Add(p.Amount)
		}
	}
	if !due.GreaterThan(in.Income.Amount) {
		return nil
	}
	return one(models.SeverityWarning, "Bills due in the next 30 days total %s, more than your monthly income of %s.", money(due), money(in.Income.Amount))
}

func recurringDetectedRule(in InsightInput) []models.Insight {
	if in.RecurringCount == 0 {
		return nil
	}
	noun := "bills"
	if in.RecurringCount == 1 {
		noun = "bill"
	}
	return one(models.SeverityInfo, "Found %d recurring %s in your history. Add them to your bills to track them.", in.RecurringCount, noun)
}

func leftoverRule(in InsightInput) []models.Insight {
	net := in.Net()
	if !net.GreaterThan(leftoverFloor) {
		return nil
	}
	return one(models.SeverityPositive, "You have %s left over. Move it to savings or put it toward your highest-interest debt.", money(net))
}

func titleCategory(c models.Category) string {
	s := string(c)
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
