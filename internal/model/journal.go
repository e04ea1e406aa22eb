package model

import (
	"github.com/shopspring/decimal"
)

// Row is one input line keyed by column name.
type Row map[string]string

// Get returns the cell for column. An empty column name means the field is
// not mapped and always yields "".
func (r Row) Get(column string) string {
	if column == "" {
		return ""
	}
	return r[column]
}

// Lookup is like Get but reports whether the column is mapped and present.
func (r Row) Lookup(column string) (string, bool) {
	if column == "" {
		return "", false
	}
	v, ok := r[column]
	return v, ok
}

// Split is a normalized row: one line item of a transaction.
type Split struct {
	Pos     int // ordinal position in the input, 0-based
	Row     Row
	Account string
	Amount  decimal.Decimal
}

// Transaction is an ordered group of splits sharing a key.
type Transaction struct {
	Key    string
	Splits []Split
}

// Main returns the first split. After main-split promotion this is the
// split with the largest absolute amount.
func (t Transaction) Main() Split {
	return t.Splits[0]
}

// Sum returns the signed total of all split amounts.
func (t Transaction) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range t.Splits {
		sum = sum.Add(s.Amount)
	}
	return sum
}

// Clone returns a copy whose split slice can be reordered without touching t.
func (t Transaction) Clone() Transaction {
	splits := make([]Split, len(t.Splits))
	copy(splits, t.Splits)
	return Transaction{Key: t.Key, Splits: splits}
}
