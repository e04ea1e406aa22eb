package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRowGet(t *testing.T) {
	row := Row{"Amount": "10.00", "Notes": ""}

	assert.Equal(t, "10.00", row.Get("Amount"))
	assert.Equal(t, "", row.Get("Missing"))
	assert.Equal(t, "", row.Get(""), "unmapped column")

	_, ok := row.Lookup("Notes")
	assert.True(t, ok, "present but empty")
	_, ok = row.Lookup("Missing")
	assert.False(t, ok)
	_, ok = row.Lookup("")
	assert.False(t, ok)
}

func TestTransactionSum(t *testing.T) {
	txn := Transaction{Key: "1", Splits: []Split{
		{Account: "A", Amount: decimal.RequireFromString("60.00")},
		{Account: "B", Amount: decimal.RequireFromString("40.00")},
		{Account: "C", Amount: decimal.RequireFromString("-100.00")},
	}}
	assert.True(t, txn.Sum().IsZero(), "got %s", txn.Sum())
	assert.Equal(t, "A", txn.Main().Account)
}

func TestTransactionClone(t *testing.T) {
	txn := Transaction{Key: "1", Splits: []Split{{Account: "A"}, {Account: "B"}}}
	c := txn.Clone()
	c.Splits[0], c.Splits[1] = c.Splits[1], c.Splits[0]

	assert.Equal(t, "A", txn.Splits[0].Account, "original untouched")
	assert.Equal(t, "B", c.Splits[0].Account)
}
