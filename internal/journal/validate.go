package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/csv2ofx/internal/id"
	"github.com/cleared-dev/csv2ofx/internal/model"
)

// BalanceError reports a compound transaction whose splits do not sum to zero.
type BalanceError struct {
	Key string
	Sum decimal.Decimal
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("%s: splits sum to %s, want 0.00", Describe(e.Key), e.Sum.String())
}

// NoMainAccountError reports a transaction where every split amount is zero.
type NoMainAccountError struct {
	Key string
}

func (e *NoMainAccountError) Error() string {
	return fmt.Sprintf("%s: main account not found, all splits are zero", Describe(e.Key))
}

// Describe names a transaction by its id, or by input row for ordinal keys.
func Describe(key string) string {
	if pos, err := id.ParseOrdinal(key); err == nil {
		return fmt.Sprintf("transaction at row %d", pos+1)
	}
	return "transaction " + key
}

// Verify checks that every transaction balances to 0.00 at two decimal
// places. The first violation is returned.
func Verify(txns []model.Transaction) error {
	for _, txn := range txns {
		sum := txn.Sum()
		if !sum.Round(2).IsZero() {
			return &BalanceError{Key: txn.Key, Sum: sum}
		}
	}
	return nil
}
