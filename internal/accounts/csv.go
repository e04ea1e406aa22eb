package accounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/csv2ofx/internal/id"
	"github.com/cleared-dev/csv2ofx/internal/model"
)

const (
	numFields = 3
	colName   = 0
	colType   = 1
	colID     = 2
)

// ReadAccounts reads an account listing written by WriteAccounts.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes one row per account with a header line.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_name", "account_type", "account_id"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colID] = acct.ID
	return row
}

// UnmarshalAccount converts a CSV row to an Account. The id must be the
// surrogate id of the name.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if want := id.Account(record[colName]); record[colID] != want {
		return model.Account{}, fmt.Errorf("account %q: id %q does not match %q", record[colName], record[colID], want)
	}
	return model.Account{
		Name: record[colName],
		Type: model.AccountType(record[colType]),
		ID:   record[colID],
	}, nil
}
