package importer

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"

	"github.com/cleared-dev/csv2ofx/internal/model"
)

// XLSXReader parses the first sheet of an Excel workbook.
type XLSXReader struct{}

// Format returns the reader name.
func (p *XLSXReader) Format() string { return "xlsx" }

// Read parses r as an XLSX workbook.
func (p *XLSXReader) Read(r io.Reader) ([]model.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading XLSX: %w", err)
	}
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, fmt.Errorf("opening XLSX: %w", err)
	}
	if len(f.Sheets) == 0 {
		return nil, fmt.Errorf("XLSX has no sheets")
	}

	firstSheet := f.Sheets[0]
	records := make([][]string, 0, len(firstSheet.Rows))
	for _, row := range firstSheet.Rows {
		if row == nil {
			continue
		}
		rec := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			if cell != nil {
				rec[i] = cell.String()
			}
		}
		records = append(records, rec)
	}
	return rowsFromRecords(records), nil
}
