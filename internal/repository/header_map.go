package repository

import (
	"fmt"
	"strings"

	"github.com/tirasundara/spending-dashboard/internal/domain"
)

// createHeaderMap creates a map of column names to their indices.
// Required columns must be present; optional ones are mapped only when found.
func createHeaderMap(header []string, required []string, optional []string) (map[string]int, error) {
	columnMap := make(map[string]int)

	find := func(column string) (int, bool) {
		for i, field := range header {
			if strings.EqualFold(column, strings.TrimSpace(field)) {
				return i, true
			}
		}
		return -1, false
	}

	for _, column := range required {
		idx, found := find(column)
		if !found {
			return nil, fmt.Errorf("%w: '%s' not found in CSV header", domain.ErrMissingColumn, column)
		}
		columnMap[column] = idx
	}

	for _, column := range optional {
		if idx, found := find(column); found {
			columnMap[column] = idx
		}
	}

	return columnMap, nil
}
