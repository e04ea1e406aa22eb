// Package extract projects normalized splits into rendering-ready
// transaction data.
package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/cleared-dev/csv2ofx/internal/id"
	"github.com/cleared-dev/csv2ofx/internal/mapping"
	"github.com/cleared-dev/csv2ofx/internal/model"
)

// DefaultSplitAccount names the counter-account of a split that has none.
const DefaultSplitAccount = "Orphan"

// Options controls how splits are projected.
type Options struct {
	Source              mapping.Source
	DefaultSplitAccount string
	Location            *time.Location
}

func (o Options) splitAccount() string {
	if o.DefaultSplitAccount == "" {
		return DefaultSplitAccount
	}
	return o.DefaultSplitAccount
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// Extract builds the TransactionData for one split.
//
// The id is taken from the id column, then the check number column, and is
// otherwise derived from the date, amount, payee, split account and
// description so that identical input always yields the same id.
func Extract(split model.Split, hm mapping.HeaderMap, opts Options) (model.TransactionData, error) {
	if err := hm.Require(opts.Source, "amount"); err != nil {
		return model.TransactionData{}, err
	}

	row := split.Row
	date, err := ParseDate(row.Get(hm.Date), hm.DateLayouts, opts.location())
	if err != nil {
		return model.TransactionData{}, fmt.Errorf("row %d: %w", split.Pos+1, err)
	}

	amt := split.Amount
	rawType := strings.TrimSpace(row.Get(hm.Type))
	if strings.EqualFold(rawType, "debit") {
		amt = amt.Neg()
	}

	splitAccount := row.Get(hm.SplitAccount)
	if splitAccount == "" {
		splitAccount = opts.splitAccount()
	}

	td := model.TransactionData{
		Account:        split.Account,
		Date:           date,
		Amount:         amt,
		Payee:          row.Get(hm.Payee),
		Desc:           joinDesc(row.Get(hm.Description), row.Get(hm.Notes), row.Get(hm.Class)),
		CheckNum:       row.Get(hm.CheckNum),
		Class:          row.Get(hm.Class),
		SplitAccount:   splitAccount,
		SplitAccountID: id.Account(splitAccount),
	}

	switch {
	case rawType != "":
		td.Type = strings.ToUpper(rawType)
	case amt.IsPositive():
		td.Type = "CREDIT"
	default:
		td.Type = "DEBIT"
	}

	switch {
	case row.Get(hm.ID) != "":
		td.ID = row.Get(hm.ID)
	case td.CheckNum != "":
		td.ID = td.CheckNum
	default:
		td.ID = id.Hash(date.Format("20060102"), amt.StringFixed(2), td.Payee, td.SplitAccount, td.Desc)
	}
	return td, nil
}

func joinDesc(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
