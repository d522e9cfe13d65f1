// Package fixture generates synthetic transaction files for demos and tests.
//
// The generator is seeded explicitly; the same seed and row count always yield the same rows.
package fixture

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/spending-dashboard/internal/domain"
)

const (
	dateFormat      = "2006-01-02"
	defaultCurrency = "INR"
	rentAmount      = 25000
	missingRate     = 0.02
)

// Header is the column layout of generated files
var Header = []string{"date", "description", "amount", "currency"}

type descriptionGroup struct {
	key          string
	descriptions []string
	minAmount    float64
	maxAmount    float64
}

// The subscription group keeps the historical misspelled key; its descriptions include one
// misspelled entry so cleaning has something to repair.
var catalogue = []descriptionGroup{
	{"Food & Drink", []string{"Starbucks", "McDonaldsn", "Whole Foods", "Taco Bell", "Local Cafe", "Pizza Hut", "UberEats"}, 5, 200},
	{"Transport", []string{"Uber", "Lyft", "Gas Station", "Metro Ticket", "Parking Gar"}, 5, 200},
	{"Subsciptions", []string{"Netflix", "Spotify", "Amazon Prime", "Gym Membership", "Cloud Storage", "Subsciptions Renewal"}, 10, 30},
	{"Shopping", []string{"Amazon", "Walmart", "Target", "Apparel Store", "Electronic Mart", "Home Depot"}, 5, 200},
	{"Utilities", []string{"Electric Bill", "Water Bill", "Internet Provider", "Phone Bill"}, 50, 150},
	{"Rent", []string{"Monthly Rent"}, rentAmount, rentAmount},
}

// Generator produces RawRecords from a private random source
type Generator struct {
	rng      *rand.Rand
	Start    time.Time
	SpanDays int
	Currency string
}

// NewGenerator creates a new Generator for the given seed
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		Start:    time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		SpanDays: 365,
		Currency: defaultCurrency,
	}
}

// Records generates n rows sorted by date. Rows sharing a date keep generation order.
func (g *Generator) Records(n int) []domain.RawRecord {
	records := make([]domain.RawRecord, 0, n)

	for i := 0; i < n; i++ {
		group := catalogue[g.rng.Intn(len(catalogue))]
		desc := group.descriptions[g.rng.Intn(len(group.descriptions))]

		// Transaction ids and locations make descriptions messy
		if g.rng.Float64() > 0.5 {
			desc = fmt.Sprintf("%s #%d NY", desc, 1000+g.rng.Intn(9000))
		}

		date := g.Start.AddDate(0, 0, g.rng.Intn(g.SpanDays+1))

		var amount decimal.Decimal
		if group.key == "Rent" {
			amount = decimal.NewFromInt(rentAmount)
			date = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
		} else {
			v := group.minAmount + g.rng.Float64()*(group.maxAmount-group.minAmount)
			amount = decimal.NewFromFloat(v).Round(2)
		}

		amountStr := amount.StringFixed(2)
		if g.rng.Float64() < missingRate {
			amountStr = ""
		}

		records = append(records, domain.RawRecord{
			Date:        date.Format(dateFormat),
			Description: desc,
			Amount:      amountStr,
			Currency:    g.Currency,
		})
	}

	slices.SortStableFunc(records, func(a, b domain.RawRecord) int {
		return strings.Compare(a.Date, b.Date)
	})

	for i := range records {
		records[i].Row = i + 1
	}

	return records
}

// WriteCSV writes n generated rows, with a header, to w
func (g *Generator) WriteCSV(w io.Writer, n int) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, rec := range g.Records(n) {
		if err := writer.Write([]string{rec.Date, rec.Description, rec.Amount, rec.Currency}); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", rec.Row, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}

	return nil
}
