// Package normalizer turns raw transaction rows into validated transactions.
//
// Rows with an unparseable date, an empty or non-numeric amount, a negative amount
// or a blank description are dropped whole. They never reach an aggregate and are
// never counted as zero.
package normalizer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tirasundara/spending-dashboard/internal/domain"
)

// DefaultDateFormat is the layout of the date column
const DefaultDateFormat = "2006-01-02"

// Known literal misspellings and their canonical spelling
var descriptionRepairs = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)subsciptions`), "Subscriptions"},
}

// Stats counts what happened to the rows of one run
type Stats struct {
	RowsRead            int
	Transactions        int
	InvalidDate         int
	InvalidAmount       int
	NegativeAmount      int
	EmptyDescription    int
	RepairedDescription int
}

// Dropped returns the number of rows excluded from the run
func (s Stats) Dropped() int {
	return s.RowsRead - s.Transactions
}

// Normalizer validates RawRecords and converts them to Transactions
type Normalizer struct {
	DateFormat string
	log        logrus.FieldLogger
}

// NewNormalizer creates a new Normalizer
func NewNormalizer(dateFormat string, log logrus.FieldLogger) *Normalizer {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Normalizer{
		DateFormat: dateFormat,
		log:        log,
	}
}

// Normalize converts records to transactions, preserving the order of surviving rows
func (n *Normalizer) Normalize(records []domain.RawRecord) ([]domain.Transaction, Stats) {
	stats := Stats{RowsRead: len(records)}
	txns := make([]domain.Transaction, 0, len(records))

	for _, rec := range records {
		txn, err := n.NormalizeRecord(rec)
		if err != nil {
			countDrop(&stats, err)
			n.log.WithFields(logrus.Fields{
				"row":    rec.Row,
				"reason": err.Error(),
			}).Debug("Dropping row")
			continue
		}

		if txn.Description != strings.TrimSpace(rec.Description) {
			stats.RepairedDescription++
		}

		txns = append(txns, txn)
	}

	stats.Transactions = len(txns)
	return txns, stats
}

// NormalizeRecord converts a single record. The returned error wraps one of the domain row-level errors.
func (n *Normalizer) NormalizeRecord(rec domain.RawRecord) (domain.Transaction, error) {
	date, err := time.Parse(n.DateFormat, strings.TrimSpace(rec.Date))
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, rec.Date)
	}

	amountStr := strings.TrimSpace(rec.Amount)
	if amountStr == "" {
		return domain.Transaction{}, fmt.Errorf("%w: empty", domain.ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, rec.Amount)
	}

	if amount.IsNegative() {
		return domain.Transaction{}, fmt.Errorf("%w: %s", domain.ErrNegativeAmount, amount)
	}

	desc := RepairDescription(strings.TrimSpace(rec.Description))
	if desc == "" {
		return domain.Transaction{}, domain.ErrEmptyDescription
	}

	return domain.Transaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
	}, nil
}

// RepairDescription fixes known misspellings case-insensitively, leaving the rest of the text untouched
func RepairDescription(desc string) string {
	for _, r := range descriptionRepairs {
		desc = r.pattern.ReplaceAllLiteralString(desc, r.replacement)
	}
	return desc
}

func countDrop(stats *Stats, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		stats.InvalidDate++
	case errors.Is(err, domain.ErrInvalidAmount):
		stats.InvalidAmount++
	case errors.Is(err, domain.ErrNegativeAmount):
		stats.NegativeAmount++
	case errors.Is(err, domain.ErrEmptyDescription):
		stats.EmptyDescription++
	}
}
