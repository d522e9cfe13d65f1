package normalizer_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/tirasundara/spending-dashboard/internal/domain"
	"github.com/tirasundara/spending-dashboard/internal/normalizer"
)

func newTestNormalizer() (*normalizer.Normalizer, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return normalizer.NewNormalizer("", log), hook
}

func TestNormalizer_Normalize(t *testing.T) {
	n, hook := newTestNormalizer()

	records := []domain.RawRecord{
		{Row: 1, Date: "2025-01-05", Description: "Starbucks #1 NY", Amount: "4.50", Currency: "INR"},
		{Row: 2, Date: "2025-01-05", Description: "Amazon Prime", Amount: "14.99", Currency: "INR"},
		{Row: 3, Date: "2025-01-06", Description: "", Amount: "", Currency: "INR"},
	}

	txns, stats := n.Normalize(records)

	if len(txns) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(txns))
	}

	if txns[0].Description != "Starbucks #1 NY" || txns[1].Description != "Amazon Prime" {
		t.Errorf("Expected input order to be preserved, got %q then %q", txns[0].Description, txns[1].Description)
	}

	expectedAmount := decimal.RequireFromString("4.50")
	if !txns[0].Amount.Equal(expectedAmount) {
		t.Errorf("Expected first amount to be %s, got %s", expectedAmount, txns[0].Amount)
	}

	if txns[0].Date.Format("2006-01-02") != "2025-01-05" {
		t.Errorf("Expected first date to be 2025-01-05, got %s", txns[0].Date.Format("2006-01-02"))
	}

	if stats.RowsRead != 3 || stats.Transactions != 2 || stats.Dropped() != 1 {
		t.Errorf("Expected 3 read, 2 kept, 1 dropped, got %+v", stats)
	}

	if stats.InvalidAmount != 1 {
		t.Errorf("Expected 1 invalid amount, got %d", stats.InvalidAmount)
	}

	if len(hook.Entries) != 1 {
		t.Fatalf("Expected 1 log entry for the dropped row, got %d", len(hook.Entries))
	}
	if hook.LastEntry().Data["row"] != 3 {
		t.Errorf("Expected dropped row to be 3, got %v", hook.LastEntry().Data["row"])
	}
}

func TestNormalizer_NormalizeRecord_Errors(t *testing.T) {
	n, _ := newTestNormalizer()

	tests := []struct {
		name     string
		record   domain.RawRecord
		expected error
	}{
		{"empty amount", domain.RawRecord{Date: "2025-01-01", Description: "Uber", Amount: ""}, domain.ErrInvalidAmount},
		{"blank amount", domain.RawRecord{Date: "2025-01-01", Description: "Uber", Amount: "   "}, domain.ErrInvalidAmount},
		{"non-numeric amount", domain.RawRecord{Date: "2025-01-01", Description: "Uber", Amount: "abc"}, domain.ErrInvalidAmount},
		{"NaN amount", domain.RawRecord{Date: "2025-01-01", Description: "Uber", Amount: "NaN"}, domain.ErrInvalidAmount},
		{"negative amount", domain.RawRecord{Date: "2025-01-01", Description: "Uber", Amount: "-3.00"}, domain.ErrNegativeAmount},
		{"bad date", domain.RawRecord{Date: "2025/01/01", Description: "Uber", Amount: "3.00"}, domain.ErrInvalidDate},
		{"impossible date", domain.RawRecord{Date: "2025-02-30", Description: "Uber", Amount: "3.00"}, domain.ErrInvalidDate},
		{"empty date", domain.RawRecord{Date: "", Description: "Uber", Amount: "3.00"}, domain.ErrInvalidDate},
		{"empty description", domain.RawRecord{Date: "2025-01-01", Description: "  ", Amount: "3.00"}, domain.ErrEmptyDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := n.NormalizeRecord(tt.record)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected error %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestNormalizer_NormalizeRecord_Valid(t *testing.T) {
	n, _ := newTestNormalizer()

	txn, err := n.NormalizeRecord(domain.RawRecord{Date: " 2025-03-01 ", Description: " Monthly Rent ", Amount: " 25000 "})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if txn.Description != "Monthly Rent" {
		t.Errorf("Expected trimmed description, got %q", txn.Description)
	}

	if !txn.Amount.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("Expected amount 25000, got %s", txn.Amount)
	}

	// Zero is a real amount, not a missing one
	txn, err = n.NormalizeRecord(domain.RawRecord{Date: "2025-03-01", Description: "Gym", Amount: "0"})
	if err != nil {
		t.Fatalf("Unexpected error for zero amount: %v", err)
	}
	if !txn.Amount.IsZero() {
		t.Errorf("Expected zero amount, got %s", txn.Amount)
	}
}

func TestRepairDescription(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Subsciptions renewal", "Subscriptions renewal"},
		{"subsciptions", "Subscriptions"},
		{"MY SUBSCIPTIONS #4411 NY", "MY Subscriptions #4411 NY"},
		{"Netflix subsciptions and Subsciptions", "Netflix Subscriptions and Subscriptions"},
		{"Subscriptions", "Subscriptions"},
		{"Starbucks", "Starbucks"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizer.RepairDescription(tt.in); got != tt.expected {
			t.Errorf("RepairDescription(%q): expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}

func TestNormalizer_CountsRepairs(t *testing.T) {
	n, _ := newTestNormalizer()

	txns, stats := n.Normalize([]domain.RawRecord{
		{Row: 1, Date: "2025-02-10", Description: "Subsciptions renewal", Amount: "9.99"},
		{Row: 2, Date: "2025-02-11", Description: "Netflix", Amount: "15.49"},
	})

	if len(txns) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(txns))
	}
	if txns[0].Description != "Subscriptions renewal" {
		t.Errorf("Expected repaired description, got %q", txns[0].Description)
	}
	if stats.RepairedDescription != 1 {
		t.Errorf("Expected 1 repaired description, got %d", stats.RepairedDescription)
	}
}
