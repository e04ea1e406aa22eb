package amount

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/csv2ofx/internal/mapping"
	"github.com/cleared-dev/csv2ofx/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"100.00", "100.00"},
		{"$1,234.56", "1234.56"},
		{"-$1,234.56", "-1234.56"},
		{"USD -42", "-42.00"},
		{"  7.5 ", "7.50"},
		{"1.2.3", "1.20"},
		{"12-34", "1234.00"},
		{"", "0.00"},
		{"n/a", "0.00"},
		{"-", "0.00"},
		{"5.", "5.00"},
		{".25", "0.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.input).StringFixed(2), "input %q", tt.input)
	}
}

func TestNormalize(t *testing.T) {
	hm := mapping.HeaderMap{Account: "Account", Amount: "Amount"}
	rows := []model.Row{
		{"Account": "Checking", "Amount": "$1,000.00"},
		{"Account": "Savings", "Amount": "garbage"},
	}

	splits, err := Normalize(rows, mapping.SourceCustom, hm)
	require.NoError(t, err)
	require.Len(t, splits, 2)

	assert.Equal(t, 0, splits[0].Pos)
	assert.Equal(t, "Checking", splits[0].Account)
	assert.Equal(t, "1000.00", splits[0].Amount.StringFixed(2))
	assert.Equal(t, 1, splits[1].Pos)
	assert.True(t, splits[1].Amount.IsZero())

	// Input rows stay untouched.
	assert.Equal(t, "$1,000.00", rows[0]["Amount"])
}

func TestNormalize_UnmappedAmount(t *testing.T) {
	_, err := Normalize([]model.Row{{"x": "1"}}, mapping.SourceCustom, mapping.HeaderMap{Account: "x"})
	require.Error(t, err)

	var cerr *mapping.ConfigurationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "amount", cerr.Field)
}

func TestNormalize_MissingColumn(t *testing.T) {
	hm := mapping.HeaderMap{Amount: "NetAmount"}
	_, err := Normalize([]model.Row{{"Amount": "1"}}, mapping.SourceXero, hm)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NetAmount")
}
