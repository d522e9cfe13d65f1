// Package analysis derives calendar features and computes the dashboard aggregates.
//
// Sums and means are accumulated at full precision and rounded to two decimal
// places (half away from zero) only when written into the domain.Report.
package analysis

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/spending-dashboard/internal/domain"
)

const (
	moneyPlaces        = 2
	defaultRecentLimit = 10
	recentDateFormat   = "2006-01-02"
)

// Aggregator computes a domain.Report from categorized transactions
type Aggregator struct {
	RecentLimit int
}

// NewAggregator creates a new Aggregator that keeps the 10 most recent transactions
func NewAggregator() *Aggregator {
	return &Aggregator{
		RecentLimit: defaultRecentLimit,
	}
}

// Aggregate computes every view of the report. It fails with domain.ErrNoValidData on an empty input.
func (a *Aggregator) Aggregate(records []domain.CategorizedTransaction) (domain.Report, error) {
	if len(records) == 0 {
		return domain.Report{}, domain.ErrNoValidData
	}

	weekendAvg, weekdayAvg := WeekendWeekdayAverages(records)

	summary := domain.Summary{
		TotalSpent:    TotalSpent(records),
		AvgMonthlySub: AvgMonthlySubscription(records),
		WeekendAvg:    roundOptional(weekendAvg),
		WeekdayAvg:    roundOptional(weekdayAvg),
		SavingHint:    SavingHint(weekendAvg, weekdayAvg),
	}

	return domain.Report{
		Summary:              summary,
		MonthlyTrend:         MonthlyTrend(records),
		CategoryDistribution: CategoryDistribution(records),
		WeekendVsWeekday:     WeekendVsWeekday(records),
		RecentTransactions:   RecentTransactions(records, a.RecentLimit),
	}, nil
}

// TotalSpent returns the sum of all amounts
func TotalSpent(records []domain.CategorizedTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total.Round(moneyPlaces)
}

// AvgMonthlySubscription averages the per-month Subscriptions totals over the months that have any.
// Months are year-qualified. Returns nil when there is no subscription transaction.
func AvgMonthlySubscription(records []domain.CategorizedTransaction) *decimal.Decimal {
	monthly := make(map[int]decimal.Decimal)

	for _, r := range records {
		if r.Category != domain.Subscriptions {
			continue
		}
		key := r.Date.Year()*12 + int(r.Date.Month()) - 1
		monthly[key] = monthly[key].Add(r.Amount)
	}

	if len(monthly) == 0 {
		return nil
	}

	sum := decimal.Zero
	for _, m := range monthly {
		sum = sum.Add(m)
	}

	avg := sum.DivRound(decimal.NewFromInt(int64(len(monthly))), moneyPlaces)
	return &avg
}

// WeekendWeekdayAverages returns the unrounded mean amount of weekend and of weekday transactions.
// Either is nil when its subset is empty.
func WeekendWeekdayAverages(records []domain.CategorizedTransaction) (weekend, weekday *decimal.Decimal) {
	var weekendSum, weekdaySum decimal.Decimal
	var weekendCount, weekdayCount int64

	for _, r := range records {
		if r.IsWeekend {
			weekendSum = weekendSum.Add(r.Amount)
			weekendCount++
		} else {
			weekdaySum = weekdaySum.Add(r.Amount)
			weekdayCount++
		}
	}

	return mean(weekendSum, weekendCount), mean(weekdaySum, weekdayCount)
}

// SavingHint compares the weekend and weekday averages. Pass unrounded means so near ties are not hidden.
func SavingHint(weekendAvg, weekdayAvg *decimal.Decimal) string {
	if weekendAvg == nil || weekdayAvg == nil {
		return domain.HintNotEnoughData
	}
	if weekendAvg.GreaterThan(*weekdayAvg) {
		return domain.HintWeekendHigher
	}
	return domain.HintConsistent
}

// MonthlyTrend totals amounts per calendar month number, ordered Jan..Dec.
// The same month of different years shares one entry.
func MonthlyTrend(records []domain.CategorizedTransaction) []domain.MonthAmount {
	totals := make(map[int]decimal.Decimal)
	labels := make(map[int]string)
	for _, r := range records {
		totals[r.MonthNumber] = totals[r.MonthNumber].Add(r.Amount)
		labels[r.MonthNumber] = r.MonthLabel
	}

	trend := make([]domain.MonthAmount, 0, len(totals))
	for month, amount := range totals {
		trend = append(trend, domain.MonthAmount{
			MonthNumber: month,
			Month:       labels[month],
			Amount:      amount.Round(moneyPlaces),
		})
	}

	slices.SortFunc(trend, func(a, b domain.MonthAmount) int {
		return cmp.Compare(a.MonthNumber, b.MonthNumber)
	})

	return trend
}

// CategoryDistribution totals amounts per category present in the data, ordered by category name
func CategoryDistribution(records []domain.CategorizedTransaction) []domain.CategoryAmount {
	totals := make(map[domain.Category]decimal.Decimal)
	for _, r := range records {
		totals[r.Category] = totals[r.Category].Add(r.Amount)
	}

	dist := make([]domain.CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		dist = append(dist, domain.CategoryAmount{
			Category: category,
			Amount:   amount.Round(moneyPlaces),
		})
	}

	slices.SortFunc(dist, func(a, b domain.CategoryAmount) int {
		return cmp.Compare(a.Category, b.Category)
	})

	return dist
}

// WeekendVsWeekday totals amounts for the weekday and the weekend group, in that order.
// A group without transactions is omitted.
func WeekendVsWeekday(records []domain.CategorizedTransaction) []domain.GroupAmount {
	var weekendSum, weekdaySum decimal.Decimal
	var hasWeekend, hasWeekday bool

	for _, r := range records {
		if r.IsWeekend {
			weekendSum = weekendSum.Add(r.Amount)
			hasWeekend = true
		} else {
			weekdaySum = weekdaySum.Add(r.Amount)
			hasWeekday = true
		}
	}

	groups := make([]domain.GroupAmount, 0, 2)
	if hasWeekday {
		groups = append(groups, domain.GroupAmount{Type: domain.GroupWeekday, Amount: weekdaySum.Round(moneyPlaces)})
	}
	if hasWeekend {
		groups = append(groups, domain.GroupAmount{Type: domain.GroupWeekend, Amount: weekendSum.Round(moneyPlaces)})
	}

	return groups
}

// RecentTransactions returns up to limit transactions, newest date first.
// Transactions sharing a date keep their input order.
func RecentTransactions(records []domain.CategorizedTransaction, limit int) []domain.RecentTransaction {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b domain.CategorizedTransaction) int {
		return b.Date.Compare(a.Date)
	})

	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recent := make([]domain.RecentTransaction, 0, len(sorted))
	for _, r := range sorted {
		recent = append(recent, domain.RecentTransaction{
			Date:        r.Date.Format(recentDateFormat),
			Description: r.Description,
			Category:    string(r.Category),
			Amount:      r.Amount.StringFixed(moneyPlaces),
		})
	}

	return recent
}

func mean(sum decimal.Decimal, count int64) *decimal.Decimal {
	if count == 0 {
		return nil
	}
	avg := sum.Div(decimal.NewFromInt(count))
	return &avg
}

func roundOptional(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	rounded := d.Round(moneyPlaces)
	return &rounded
}
