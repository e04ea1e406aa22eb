package accounts

import (
	"strings"

	"github.com/cleared-dev/csv2ofx/internal/model"
)

// TypeKeywords maps an account type to the name fragments that select it.
type TypeKeywords struct {
	Type     model.AccountType `yaml:"type" validate:"required"`
	Keywords []string          `yaml:"keywords" validate:"required,min=1,dive,required"`
}

// TypeTable is searched in order; the first entry with a matching keyword wins.
type TypeTable []TypeKeywords

// Classify returns the type of the first table entry with a keyword that
// occurs in name, ignoring case. Unmatched names get def.
func Classify(name string, table TypeTable, def model.AccountType) model.AccountType {
	lower := strings.ToLower(name)
	for _, entry := range table {
		for _, kw := range entry.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(kw)) {
				return entry.Type
			}
		}
	}
	return def
}
