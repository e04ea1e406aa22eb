// Package importer reads tabular exports into rows keyed by header name.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/csv2ofx/internal/model"
)

// Reader converts a tabular file into rows. The first record is the header.
type Reader interface {
	Read(r io.Reader) ([]model.Row, error)
	Format() string
}

// Registry holds named readers.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in readers. delimiter
// applies to the CSV reader.
func DefaultRegistry(delimiter rune) *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{Delimiter: delimiter})
	r.Register(&XLSXReader{})
	return r
}

// DetectFormat guesses the input format from a file name, falling back to
// def for stdin and unknown extensions.
func DetectFormat(path, def string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return "xlsx"
	case ".csv", ".txt":
		return "csv"
	default:
		return def
	}
}

// ReadFile reads path with the reader registered for format. "-" and ""
// read stdin.
func (r *Registry) ReadFile(path, format string, stdin io.Reader) ([]model.Row, error) {
	rd := r.Get(format)
	if rd == nil {
		return nil, fmt.Errorf("unknown input format %q", format)
	}

	if path == "" || path == "-" {
		return rd.Read(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	rows, err := rd.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// rowsFromRecords pairs every record after the header with the header
// names. Short records are padded with empty cells and extra cells are
// dropped.
func rowsFromRecords(records [][]string) []model.Row {
	if len(records) == 0 {
		return nil
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]model.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := make(model.Row, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
