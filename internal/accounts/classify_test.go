package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/csv2ofx/internal/model"
)

func TestClassify(t *testing.T) {
	table := TypeTable{
		{Type: "Bank", Keywords: []string{"checking", "savings"}},
		{Type: "Cash", Keywords: []string{"cash"}},
	}

	tests := []struct {
		name string
		want model.AccountType
	}{
		{"checking account", "Bank"},
		{"somecash", "Cash"},
		{"CHECKING", "Bank"},
		{"Petty Cash Savings", "Bank"}, // first table entry wins
		{"Brokerage", "n/a"},
		{"", "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name, table, "n/a"))
		})
	}
}

func TestClassify_EmptyTable(t *testing.T) {
	assert.Equal(t, model.AccountType("n/a"), Classify("checking", nil, "n/a"))
}

func TestClassify_IgnoresEmptyKeyword(t *testing.T) {
	table := TypeTable{{Type: "Bank", Keywords: []string{""}}}
	assert.Equal(t, model.AccountType("n/a"), Classify("anything", table, "n/a"))
}

func TestClassify_DefaultTables(t *testing.T) {
	tests := []struct {
		format model.Format
		name   string
		want   model.AccountType
	}{
		{model.FormatOFX, "Chase Checking", model.AccountTypeChecking},
		{model.FormatOFX, "Online Savings", model.AccountTypeSavings},
		{model.FormatOFX, "Money Market", model.AccountTypeMoneyMrkt},
		{model.FormatOFX, "Amex Express", model.AccountTypeCreditLine},
		{model.FormatOFX, "Discover It", model.AccountTypeCreditLine},
		{model.FormatOFX, "Brokerage", model.AccountTypeChecking},
		{model.FormatQIF, "Accounts Receivable", model.AccountTypeBank},
		{model.FormatQIF, "Visa", model.AccountTypeBank},
		{model.FormatQIF, "Cash on hand", model.AccountTypeCash},
		{model.FormatQIF, "Brokerage", model.AccountTypeBank},
	}
	for _, tt := range tests {
		got := Classify(tt.name, DefaultTable(tt.format), DefaultType(tt.format))
		assert.Equal(t, tt.want, got, "%s %q", tt.format, tt.name)
	}
}
