package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/csv2ofx/internal/model"
)

// CSVReader parses delimited text exports.
type CSVReader struct {
	// Delimiter separates fields; zero means a comma.
	Delimiter rune
}

// Format returns the reader name.
func (p *CSVReader) Format() string { return "csv" }

// Read parses r. Line endings are normalized to LF before parsing.
func (p *CSVReader) Read(r io.Reader) ([]model.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if p.Delimiter != 0 {
		cr.Comma = p.Delimiter
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	return rowsFromRecords(records), nil
}
