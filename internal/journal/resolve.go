package journal

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/csv2ofx/internal/model"
)

// MainSplit returns the index of the split with the largest absolute amount.
// Ties keep the earliest split.
func MainSplit(txn model.Transaction) (int, error) {
	mainIdx := -1
	maxAbs := decimal.Zero
	for i, s := range txn.Splits {
		if abs := s.Amount.Abs(); abs.GreaterThan(maxAbs) {
			mainIdx = i
			maxAbs = abs
		}
	}
	if mainIdx < 0 {
		return 0, &NoMainAccountError{Key: txn.Key}
	}
	return mainIdx, nil
}

// PromoteMain returns a copy of txn with its main split moved to the front.
// The remaining splits keep their relative order.
func PromoteMain(txn model.Transaction) (model.Transaction, error) {
	idx, err := MainSplit(txn)
	if err != nil {
		return model.Transaction{}, err
	}

	splits := make([]model.Split, 0, len(txn.Splits))
	splits = append(splits, txn.Splits[idx])
	splits = append(splits, txn.Splits[:idx]...)
	splits = append(splits, txn.Splits[idx+1:]...)
	return model.Transaction{Key: txn.Key, Splits: splits}, nil
}

// UniqueAccounts returns the main account of every transaction,
// deduplicated and sorted. Transactions must already have their main split
// first.
func UniqueAccounts(txns []model.Transaction) []string {
	seen := make(map[string]bool)
	var accounts []string
	for _, txn := range txns {
		if len(txn.Splits) == 0 {
			continue
		}
		name := txn.Main().Account
		if seen[name] {
			continue
		}
		seen[name] = true
		accounts = append(accounts, name)
	}
	sort.Strings(accounts)
	return accounts
}
