package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionData is the rendering-ready projection of one split.
type TransactionData struct {
	Account        string
	Date           time.Time
	Amount         decimal.Decimal // sign-adjusted, negative = debit
	Payee          string
	Desc           string // description, notes and class joined by spaces
	ID             string
	CheckNum       string
	Class          string
	Type           string // OFX TRNTYPE: CREDIT or DEBIT
	SplitAccount   string
	SplitAccountID string
}
