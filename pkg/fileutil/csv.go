package fileutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

const utf8BOM = "\ufeff"

// CSVReader provides a helper/utility to read CSV data from a file or a stream
type CSVReader struct {
	FilePath string
	source   io.Reader
}

// NewCSVReader returns a CSVReader instance for a specified CSV file
func NewCSVReader(fp string) *CSVReader {
	return &CSVReader{
		FilePath: fp,
	}
}

// NewCSVStreamReader returns a CSVReader reading from r. The stream can be consumed once.
func NewCSVStreamReader(r io.Reader) *CSVReader {
	return &CSVReader{
		source: r,
	}
}

// ReadAndProcessByRow reads the header, hands it to headerFn, then hands every
// following row to processorFn in order. Rows may have any number of fields.
func (r *CSVReader) ReadAndProcessByRow(headerFn func([]string) error, processorFn func([]string) error) error {
	src, closeFn, err := r.open()
	if err != nil {
		return err
	}
	defer closeFn()

	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return fmt.Errorf("reading CSV header: empty input")
	}
	if err != nil {
		return fmt.Errorf("reading CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	if err := headerFn(header); err != nil {
		return err
	}

	// read and process row by row
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break // end of file, stop
		}
		if err != nil {
			return fmt.Errorf("reading CSV row: %w", err)
		}

		if err = processorFn(row); err != nil {
			return err
		}
	}

	return nil
}

func (r *CSVReader) open() (io.Reader, func(), error) {
	if r.source != nil {
		return r.source, func() {}, nil
	}

	f, err := os.Open(r.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening a csv file: %w", err)
	}

	return f, func() { f.Close() }, nil
}
