package journal

import (
	"github.com/cleared-dev/csv2ofx/internal/id"
	"github.com/cleared-dev/csv2ofx/internal/mapping"
	"github.com/cleared-dev/csv2ofx/internal/model"
)

// Group partitions splits into transactions, in first-seen key order.
//
// Simple sources produce one transaction per row keyed by its ordinal.
// Compound sources group rows on the id column and keep input order within a
// group; a row with an empty id becomes its own ordinal-keyed group.
func Group(splits []model.Split, hm mapping.HeaderMap) []model.Transaction {
	groups := make(map[string][]model.Split)
	var groupOrder []string

	for _, s := range splits {
		key := id.FormatOrdinal(s.Pos)
		if hm.Compound {
			if v := s.Row.Get(hm.ID); v != "" {
				key = v
			}
		}
		if _, seen := groups[key]; !seen {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], s)
	}

	txns := make([]model.Transaction, 0, len(groupOrder))
	for _, key := range groupOrder {
		txns = append(txns, model.Transaction{Key: key, Splits: groups[key]})
	}
	return txns
}
