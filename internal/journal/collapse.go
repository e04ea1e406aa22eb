package journal

import (
	"sort"

	"github.com/cleared-dev/csv2ofx/internal/model"
)

// Collapse merges each split into the split before it when both post to the
// same account and that account is in accounts. Only adjacent splits merge;
// callers sort by account first (see SortByAccount) to bring them together.
// The merged split keeps the first row and the summed amount.
func Collapse(txn model.Transaction, accounts []string) model.Transaction {
	collapsible := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		if a != "" {
			collapsible[a] = true
		}
	}

	out := model.Transaction{Key: txn.Key, Splits: make([]model.Split, 0, len(txn.Splits))}
	for i, s := range txn.Splits {
		if i > 0 && collapsible[s.Account] && s.Account == txn.Splits[i-1].Account {
			last := &out.Splits[len(out.Splits)-1]
			last.Amount = last.Amount.Add(s.Amount)
			continue
		}
		out.Splits = append(out.Splits, s)
	}
	return out
}

// SortByAccount returns a copy of txn with splits stably sorted by account name.
func SortByAccount(txn model.Transaction) model.Transaction {
	out := txn.Clone()
	sort.SliceStable(out.Splits, func(i, j int) bool {
		return out.Splits[i].Account < out.Splits[j].Account
	})
	return out
}
