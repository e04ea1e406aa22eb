package render

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/csv2ofx/internal/model"
)

func TestQIF_SimpleTransaction(t *testing.T) {
	td := model.TransactionData{
		Account: "Checking",
		Date:    time.Date(2012, time.June, 10, 0, 0, 0, 0, time.UTC),
		Amount:  decimal.RequireFromString("100"),
		Payee:   "Acme",
	}

	var b strings.Builder
	QIFAccountHeader(&b, "Checking", model.AccountTypeChecking)
	QIFTransactionHeader(&b, model.AccountTypeChecking, td, true)
	QIFTransactionFooter(&b)

	want := "!Account\n" +
		"NChecking\n" +
		"TCHECKING\n" +
		"^\n" +
		"!Type:CHECKING\n" +
		"D06/10/12\n" +
		"PAcme\n" +
		"T100.00\n" +
		"^\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("QIF mismatch (-want +got):\n%s", diff)
	}
}

func TestQIFTransactionHeader(t *testing.T) {
	td := model.TransactionData{
		Date:     time.Date(2012, time.January, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.RequireFromString("-12.5"),
		Payee:    "payee",
		CheckNum: "1",
		Desc:     "memo text",
	}

	tests := []struct {
		name string
		td   model.TransactionData
		memo bool
		want string
	}{
		{"check number", td, false, "!Type:Bank\nN1\nD01/01/12\nPpayee\nT-12.50\n"},
		{"memo", td, true, "!Type:Bank\nN1\nD01/01/12\nPpayee\nMmemo text\nT-12.50\n"},
		{"no payee", model.TransactionData{Date: td.Date, Amount: td.Amount}, true, "!Type:Bank\nD01/01/12\nT-12.50\n"},
	}
	for _, tt := range tests {
		var b strings.Builder
		QIFTransactionHeader(&b, model.AccountTypeBank, tt.td, tt.memo)
		assert.Equal(t, tt.want, b.String(), tt.name)
	}
}

func TestQIFSplit(t *testing.T) {
	var b strings.Builder
	QIFSplit(&b, "account", "desc", decimal.NewFromInt(100))
	QIFSplit(&b, "other", "", decimal.RequireFromString("-0.1"))

	assert.Equal(t, "Saccount\nEdesc\n$100.00\nSother\n$-0.10\n", b.String())
}
