package domain

import "github.com/shopspring/decimal"

// Weekend/weekday group labels
const (
	GroupWeekend = "Weekend"
	GroupWeekday = "Weekday"
)

// Saving hints
const (
	HintWeekendHigher = "Your weekend spending is higher!"
	HintConsistent    = "Your spending is consistent."
	HintNotEnoughData = "Not enough data to compare weekend and weekday spending."
)

// Report contains the aggregate views computed from one dataset.
// Monetary values are already rounded to 2 decimal places.
type Report struct {
	Summary              Summary
	MonthlyTrend         []MonthAmount
	CategoryDistribution []CategoryAmount
	WeekendVsWeekday     []GroupAmount
	RecentTransactions   []RecentTransaction
}

// Summary holds the headline figures. A nil pointer means the value is undefined for the dataset.
type Summary struct {
	TotalSpent    decimal.Decimal
	AvgMonthlySub *decimal.Decimal
	WeekendAvg    *decimal.Decimal
	WeekdayAvg    *decimal.Decimal
	SavingHint    string
}

// MonthAmount is the total spent in one calendar month
type MonthAmount struct {
	MonthNumber int
	Month       string
	Amount      decimal.Decimal
}

// CategoryAmount is the total spent in one category
type CategoryAmount struct {
	Category Category
	Amount   decimal.Decimal
}

// GroupAmount is the total spent in the weekend or the weekday group
type GroupAmount struct {
	Type   string
	Amount decimal.Decimal
}

// RecentTransaction is a transaction rendered as text for display
type RecentTransaction struct {
	Date        string
	Description string
	Category    string
	Amount      string
}
