package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/csv2ofx/internal/model"
)

func TestRegistry(t *testing.T) {
	r := DefaultRegistry(',')
	require.NotNil(t, r.Get("csv"))
	require.NotNil(t, r.Get("XLSX"))
	assert.Nil(t, r.Get("ods"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVReader{})
	assert.Panics(t, func() { r.Register(&CSVReader{Delimiter: ';'}) })
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, "xlsx", DetectFormat("export.XLSX", "csv"))
	assert.Equal(t, "csv", DetectFormat("export.csv", "xlsx"))
	assert.Equal(t, "csv", DetectFormat("-", "csv"))
	assert.Equal(t, "xlsx", DetectFormat("", "xlsx"))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Amount\n06/10/2012,100\n"), 0o644))

	r := DefaultRegistry(',')
	rows, err := r.ReadFile(path, "csv", nil)
	require.NoError(t, err)
	assert.Equal(t, []model.Row{{"Date": "06/10/2012", "Amount": "100"}}, rows)
}

func TestReadFile_Stdin(t *testing.T) {
	r := DefaultRegistry(',')
	rows, err := r.ReadFile("-", "csv", strings.NewReader("A\n1\n"))
	require.NoError(t, err)
	assert.Equal(t, []model.Row{{"A": "1"}}, rows)
}

func TestReadFile_Errors(t *testing.T) {
	r := DefaultRegistry(',')

	_, err := r.ReadFile(filepath.Join(t.TempDir(), "missing.csv"), "csv", nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = r.ReadFile("-", "ods", strings.NewReader(""))
	assert.ErrorContains(t, err, "unknown input format")
}
