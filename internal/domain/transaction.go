package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category represents one of the fixed spending classes
type Category string

// Spending categories. The set is closed.
const (
	Dining        Category = "Dining"
	Transport     Category = "Transport"
	Subscriptions Category = "Subscriptions"
	Rent          Category = "Rent"
	Shopping      Category = "Shopping"
	Utilities     Category = "Utilities"
	Other         Category = "Other"
)

// Categories returns the closed category set in rule precedence order, Other last
func Categories() []Category {
	return []Category{Dining, Transport, Subscriptions, Rent, Shopping, Utilities, Other}
}

// Transaction represents a validated financial movement
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// CategorizedTransaction is a Transaction with its derived attributes attached once during enrichment
type CategorizedTransaction struct {
	Transaction
	Category    Category
	MonthNumber int    // 1-12
	MonthLabel  string // Jan..Dec
	DayName     string // Monday..Sunday
	IsWeekend   bool
}
