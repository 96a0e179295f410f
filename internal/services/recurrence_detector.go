package services

import (
	"sort"
	"strings"
	"unicode"

	"budget-coach/internal/models"

	"github.com/shopspring/decimal"
)

// signatureWords is how many leading words of a merchant label identify it.
const signatureWords = 3

type cadenceBucket struct {
	cadence   models.Cadence
	days      int
	tolerance int
}

// cadenceBuckets are checked nearest-first against the median gap.
var cadenceBuckets = []cadenceBucket{
	{cadence: models.CadenceWeekly, days: 7, tolerance: 2},
	{cadence: models.CadenceBiweekly, days: 14, tolerance: 3},
	{cadence: models.CadenceMonthly, days: 30, tolerance: 5},
}

type recurrenceDetector struct {
	tolerancePct decimal.Decimal
	categorizer  CategorizerInterface
}

// NewRecurrenceDetector groups outgoing transactions whose amounts sit within
// tolerancePct percent of each other.
func NewRecurrenceDetector(tolerancePct decimal.Decimal, categorizer CategorizerInterface) RecurrenceDetectorInterface {
	return &recurrenceDetector{tolerancePct: tolerancePct, categorizer: categorizer}
}

// MerchantSignature normalizes a merchant label for grouping: lowercase,
// letters only, first three words.
func MerchantSignature(label string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		if unicode.IsDigit(r) {
			return -1
		}
		return ' '
	}, label)

	words := strings.Fields(cleaned)
	if len(words) > signatureWords {
		words = words[:signatureWords]
	}
	return strings.Join(words, " ")
}

// Detect scans the full history and returns one candidate per merchant and
// amount band that repeats on a consistent cadence.
func (d *recurrenceDetector) Detect(transactions []models.Transaction) []models.RecurringBillCandidate {
	groups := make(map[string][]models.Transaction)
	for _, t := range transactions {
		if !t.IsOutflow() {
			continue
		}
		signature := MerchantSignature(t.Label())
		if signature == "" {
			continue
		}
		groups[signature] = append(groups[signature], t)
	}

	candidates := make([]models.RecurringBillCandidate, 0)
	for signature, group := range groups {
		for _, band := range d.amountBands(group) {
			if candidate, ok := d.evaluate(signature, band); ok {
				candidates = append(candidates, candidate)
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Signature != b.Signature {
			return a.Signature < b.Signature
		}
		if !a.TypicalAmount.Equal(b.TypicalAmount) {
			return a.TypicalAmount.LessThan(b.TypicalAmount)
		}
		return a.LastDate.Before(b.LastDate)
	})
	return candidates
}

// amountBands splits a merchant's transactions into bands where every amount
// is within tolerance of the band's smallest amount.
func (d *recurrenceDetector) amountBands(group []models.Transaction) [][]models.Transaction {
	sorted := append([]models.Transaction(nil), group...)
	sort.Slice(sorted, func(i, j int) bool {
		ai, aj := sorted[i].Amount.Abs(), sorted[j].Amount.Abs()
		if !ai.Equal(aj) {
			return ai.LessThan(aj)
		}
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})

	hundred := decimal.NewFromInt(100)
	var bands [][]models.Transaction
	var current []models.Transaction
	var anchor decimal.Decimal

	for _, t := range sorted {
		amount := t.Amount.Abs()
		if len(current) > 0 {
			limit := anchor.Mul(d.tolerancePct).Div(hundred)
			if amount.Sub(anchor).LessThanOrEqual(limit) {
				current = append(current, t)
				continue
			}
			bands = append(bands, current)
		}
		current = []models.Transaction{t}
		anchor = amount
	}
	if len(current) > 0 {
		bands = append(bands, current)
	}
	return bands
}

func (d *recurrenceDetector) evaluate(signature string, band []models.Transaction) (models.RecurringBillCandidate, bool) {
	if len(band) < 2 {
		return models.RecurringBillCandidate{}, false
	}

	sort.Slice(band, func(i, j int) bool {
		if !band[i].Date.Equal(band[j].Date) {
			return band[i].Date.Before(band[j].Date)
		}
		return band[i].ID < band[j].ID
	})

	gaps := make([]int, 0, len(band)-1)
	for i := 1; i < len(band); i++ {
		gaps = append(gaps, models.DaysBetween(band[i-1].Date, band[i].Date))
	}

	bucket, ok := matchCadence(gaps)
	if !ok {
		return models.RecurringBillCandidate{}, false
	}

	total := decimal.Zero
	minAmount, maxAmount := band[0].Amount.Abs(), band[0].Amount.Abs()
	for _, t := range band {
		amount := t.Amount.Abs()
		total = total.Add(amount)
		if amount.LessThan(minAmount) {
			minAmount = amount
		}
		if amount.GreaterThan(maxAmount) {
			maxAmount = amount
		}
	}

	last := band[len(band)-1]
	return models.RecurringBillCandidate{
		Signature:        signature,
		Name:             last.Label(),
		TypicalAmount:    total.Div(decimal.NewFromInt(int64(len(band)))).Round(2),
		MinAmount:        minAmount,
		MaxAmount:        maxAmount,
		TolerancePct:     d.tolerancePct,
		Cadence:          bucket.cadence,
		CadenceDays:      bucket.days,
		LastDate:         models.Day(last.Date),
		NextExpectedDate: models.Day(last.Date).AddDate(0, 0, bucket.days),
		Occurrences:      len(band),
		Category:         d.categorizer.Classify(&last),
	}, true
}

// matchCadence picks the bucket nearest the median gap and requires every
// gap to fall inside that bucket's tolerance.
func matchCadence(gaps []int) (cadenceBucket, bool) {
	if len(gaps) == 0 {
		return cadenceBucket{}, false
	}

	median := medianGap(gaps)
	best := cadenceBuckets[0]
	for _, bucket := range cadenceBuckets[1:] {
		if abs(median-bucket.days) < abs(median-best.days) {
			best = bucket
		}
	}

	for _, gap := range gaps {
		if abs(gap-best.days) > best.tolerance {
			return cadenceBucket{}, false
		}
	}
	return best, true
}

func medianGap(gaps []int) int {
	sorted := append([]int(nil), gaps...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
