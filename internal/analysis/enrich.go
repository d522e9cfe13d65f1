package analysis

import (
	"time"

	"github.com/tirasundara/spending-dashboard/internal/domain"
)

// Features holds the calendar attributes derived from a transaction date
type Features struct {
	MonthNumber int
	MonthLabel  string
	DayName     string
	IsWeekend   bool
}

// DeriveFeatures computes the calendar attributes of a date.
// Weekend means Saturday or Sunday regardless of locale.
func DeriveFeatures(date time.Time) Features {
	weekday := date.Weekday()

	return Features{
		MonthNumber: int(date.Month()),
		MonthLabel:  date.Format("Jan"),
		DayName:     weekday.String(),
		IsWeekend:   weekday == time.Saturday || weekday == time.Sunday,
	}
}

// Enrich categorizes each transaction and attaches its calendar features, preserving order
func Enrich(txns []domain.Transaction, categorizer domain.Categorizer) []domain.CategorizedTransaction {
	enriched := make([]domain.CategorizedTransaction, 0, len(txns))

	for _, txn := range txns {
		f := DeriveFeatures(txn.Date)

		enriched = append(enriched, domain.CategorizedTransaction{
			Transaction: txn,
			Category:    categorizer.Categorize(txn.Description),
			MonthNumber: f.MonthNumber,
			MonthLabel:  f.MonthLabel,
			DayName:     f.DayName,
			IsWeekend:   f.IsWeekend,
		})
	}

	return enriched
}
