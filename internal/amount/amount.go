package amount

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/csv2ofx/internal/mapping"
	"github.com/cleared-dev/csv2ofx/internal/model"
)

// Parse strips currency formatting from s and returns its value. A minus
// sign counts only before the first digit; parsing stops at a second
// decimal point. Input without digits yields zero.
func Parse(s string) decimal.Decimal {
	var b strings.Builder
	negative := false
	seenDigit := false
	seenPoint := false

loop:
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
			b.WriteRune(r)
		case r == '.':
			if seenPoint {
				break loop
			}
			seenPoint = true
			b.WriteRune(r)
		case r == '-' && !seenDigit:
			negative = true
		}
	}

	if !seenDigit {
		return decimal.Zero
	}

	digits := strings.TrimSuffix(b.String(), ".")
	if strings.HasPrefix(digits, ".") {
		digits = "0" + digits
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		d = d.Neg()
	}
	return d
}

// Normalize converts rows into splits with parsed amounts and resolved
// account names. The input rows are not modified.
func Normalize(rows []model.Row, source mapping.Source, hm mapping.HeaderMap) ([]model.Split, error) {
	if err := hm.Require(source, "amount"); err != nil {
		return nil, err
	}

	splits := make([]model.Split, 0, len(rows))
	for pos, row := range rows {
		raw, ok := row.Lookup(hm.Amount)
		if !ok {
			return nil, &mapping.ConfigurationError{
				Source: source,
				Field:  "amount",
				Reason: "column " + hm.Amount + " missing from row",
			}
		}
		splits = append(splits, model.Split{
			Pos:     pos,
			Row:     row,
			Account: row.Get(hm.Account),
			Amount:  Parse(raw),
		})
	}
	return splits, nil
}
