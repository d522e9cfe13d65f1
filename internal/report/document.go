package report

import "github.com/tirasundara/spending-dashboard/internal/domain"

// Document is the serialised shape of a domain.Report. Keys and nesting are stable for consumers.
type Document struct {
	Summary              SummaryDocument          `json:"summary"`
	MonthlyTrend         []MonthlyTrendEntry      `json:"monthly_trend"`
	CategoryDistribution []CategoryEntry          `json:"category_distribution"`
	WeekendVsWeekday     []WeekendVsWeekdayEntry  `json:"weekend_vs_weekday"`
	RecentTransactions   []RecentTransactionEntry `json:"recent_transactions"`
}

// SummaryDocument holds the headline figures; undefined averages are null
type SummaryDocument struct {
	TotalSpent    Money  `json:"total_spent"`
	AvgMonthlySub *Money `json:"avg_monthly_sub"`
	WeekendAvg    *Money `json:"weekend_avg"`
	WeekdayAvg    *Money `json:"weekday_avg"`
	SavingHint    string `json:"saving_hint"`
}

// MonthlyTrendEntry is the total for one calendar month
type MonthlyTrendEntry struct {
	Month  string `json:"month"`
	Amount Money  `json:"amount"`
}

// CategoryEntry is the total for one category
type CategoryEntry struct {
	Category string `json:"category"`
	Amount   Money  `json:"amount"`
}

// WeekendVsWeekdayEntry is the total for the weekend or the weekday group
type WeekendVsWeekdayEntry struct {
	Type   string `json:"type"`
	Amount Money  `json:"amount"`
}

// RecentTransactionEntry is a transaction rendered as text
type RecentTransactionEntry struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
}

// NewDocument maps a report onto its serialised shape. Empty views become empty arrays.
func NewDocument(r domain.Report) Document {
	doc := Document{
		Summary: SummaryDocument{
			TotalSpent:    NewMoney(r.Summary.TotalSpent),
			AvgMonthlySub: optionalMoney(r.Summary.AvgMonthlySub),
			WeekendAvg:    optionalMoney(r.Summary.WeekendAvg),
			WeekdayAvg:    optionalMoney(r.Summary.WeekdayAvg),
			SavingHint:    r.Summary.SavingHint,
		},
		MonthlyTrend:         make([]MonthlyTrendEntry, 0, len(r.MonthlyTrend)),
		CategoryDistribution: make([]CategoryEntry, 0, len(r.CategoryDistribution)),
		WeekendVsWeekday:     make([]WeekendVsWeekdayEntry, 0, len(r.WeekendVsWeekday)),
		RecentTransactions:   make([]RecentTransactionEntry, 0, len(r.RecentTransactions)),
	}

	for _, m := range r.MonthlyTrend {
		doc.MonthlyTrend = append(doc.MonthlyTrend, MonthlyTrendEntry{Month: m.Month, Amount: NewMoney(m.Amount)})
	}

	for _, c := range r.CategoryDistribution {
		doc.CategoryDistribution = append(doc.CategoryDistribution, CategoryEntry{Category: string(c.Category), Amount: NewMoney(c.Amount)})
	}

	for _, g := range r.WeekendVsWeekday {
		doc.WeekendVsWeekday = append(doc.WeekendVsWeekday, WeekendVsWeekdayEntry{Type: g.Type, Amount: NewMoney(g.Amount)})
	}

	for _, t := range r.RecentTransactions {
		doc.RecentTransactions = append(doc.RecentTransactions, RecentTransactionEntry{
			Date:        t.Date,
			Description: t.Description,
			Category:    t.Category,
			Amount:      t.Amount,
		})
	}

	return doc
}
