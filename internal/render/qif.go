// Package render writes QIF and OFX text. Every function appends to the
// builder it is given and performs no other I/O.
package render

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/csv2ofx/internal/model"
)

// QIFDateLayout is the date form QIF readers expect.
const QIFDateLayout = "01/02/06"

// QIFAccountHeader opens an account section.
func QIFAccountHeader(b *strings.Builder, name string, typ model.AccountType) {
	b.WriteString("!Account\n")
	b.WriteString("N" + name + "\n")
	b.WriteString("T" + string(typ) + "\n")
	b.WriteString("^\n")
}

// QIFTransactionHeader writes the transaction line for td. When memo is set
// a non-empty description is written as the M field.
func QIFTransactionHeader(b *strings.Builder, typ model.AccountType, td model.TransactionData, memo bool) {
	b.WriteString("!Type:" + string(typ) + "\n")
	if td.CheckNum != "" {
		b.WriteString("N" + td.CheckNum + "\n")
	}
	b.WriteString("D" + td.Date.Format(QIFDateLayout) + "\n")
	if td.Payee != "" {
		b.WriteString("P" + td.Payee + "\n")
	}
	if memo && td.Desc != "" {
		b.WriteString("M" + td.Desc + "\n")
	}
	b.WriteString("T" + td.Amount.StringFixed(2) + "\n")
}

// QIFSplit writes one split line.
func QIFSplit(b *strings.Builder, account, desc string, amount decimal.Decimal) {
	b.WriteString("S" + account + "\n")
	if desc != "" {
		b.WriteString("E" + desc + "\n")
	}
	b.WriteString("$" + amount.StringFixed(2) + "\n")
}

// QIFTransactionFooter closes a transaction.
func QIFTransactionFooter(b *strings.Builder) {
	b.WriteString("^\n")
}
