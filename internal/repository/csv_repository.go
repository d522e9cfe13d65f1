package repository

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/tirasundara/spending-dashboard/internal/domain"
	"github.com/tirasundara/spending-dashboard/pkg/fileutil"
)

var (
	requiredHeaderFields = []string{"date", "description", "amount"}
	optionalHeaderFields = []string{"currency"}
)

// CSVRecordRepository implements the RecordRepository interface for CSV data
type CSVRecordRepository struct {
	FilePath string
	name     string
	reader   *fileutil.CSVReader
}

// NewCSVRecordRepository creates a new CSVRecordRepository for a file
func NewCSVRecordRepository(filePath string) *CSVRecordRepository {
	return &CSVRecordRepository{
		FilePath: filePath,
		name:     filepath.Base(filePath),
		reader:   fileutil.NewCSVReader(filePath),
	}
}

// NewCSVRecordRepositoryFromReader creates a new CSVRecordRepository reading from r.
// The repository can be read once.
func NewCSVRecordRepositoryFromReader(name string, r io.Reader) *CSVRecordRepository {
	return &CSVRecordRepository{
		name:   name,
		reader: fileutil.NewCSVStreamReader(r),
	}
}

// Source implements the RecordRepository interface
func (r *CSVRecordRepository) Source() string {
	return r.name
}

// ReadRecords implements the RecordRepository interface.
// Cells missing from short rows are read as empty strings.
func (r *CSVRecordRepository) ReadRecords() ([]domain.RawRecord, error) {
	var columnMap map[string]int

	headerFn := func(header []string) error {
		var err error
		columnMap, err = createHeaderMap(header, requiredHeaderFields, optionalHeaderFields)
		if err != nil {
			return fmt.Errorf("mapping CSV columns: %w", err)
		}
		return nil
	}

	var records []domain.RawRecord
	rowProcessorFn := func(row []string) error {
		records = append(records, domain.RawRecord{
			Row:         len(records) + 1,
			Date:        cell(row, columnMap, "date"),
			Description: cell(row, columnMap, "description"),
			Amount:      cell(row, columnMap, "amount"),
			Currency:    cell(row, columnMap, "currency"),
		})
		return nil
	}

	if err := r.reader.ReadAndProcessByRow(headerFn, rowProcessorFn); err != nil {
		return nil, fmt.Errorf("reading transactions from %s: %w", r.name, err)
	}

	return records, nil
}

func cell(row []string, columnMap map[string]int, column string) string {
	idx, ok := columnMap[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
