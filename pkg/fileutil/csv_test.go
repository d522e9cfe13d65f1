package fileutil_test

import (
	"strings"
	"testing"

	"github.com/tirasundara/spending-dashboard/pkg/fileutil"
)

func TestCSVReader_StreamWithShortRows(t *testing.T) {
	input := "\ufeffdate,description,amount\n2025-01-01,Uber,12.00\n2025-01-02,Lyft\n"
	reader := fileutil.NewCSVStreamReader(strings.NewReader(input))

	var header []string
	var rows [][]string

	err := reader.ReadAndProcessByRow(
		func(h []string) error { header = h; return nil },
		func(row []string) error { rows = append(rows, row); return nil },
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if header[0] != "date" {
		t.Errorf("Expected BOM to be stripped from header, got %q", header[0])
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	if len(rows[1]) != 2 {
		t.Errorf("Expected short row to keep 2 fields, got %d", len(rows[1]))
	}
}

func TestCSVReader_EmptyInput(t *testing.T) {
	reader := fileutil.NewCSVStreamReader(strings.NewReader(""))

	err := reader.ReadAndProcessByRow(
		func([]string) error { return nil },
		func([]string) error { return nil },
	)
	if err == nil {
		t.Errorf("Expected an error for empty input")
	}
}

func TestCSVReader_MissingFile(t *testing.T) {
	reader := fileutil.NewCSVReader("does/not/exist.csv")

	err := reader.ReadAndProcessByRow(
		func([]string) error { return nil },
		func([]string) error { return nil },
	)
	if err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}
