package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/csv2ofx/internal/model"
)

func TestResolve(t *testing.T) {
	svc := Resolve([]string{"Checking", "Savings", "Petty Cash"},
		DefaultTable(model.FormatOFX), DefaultType(model.FormatOFX), "")

	require.Len(t, svc.All(), 3)

	acct, ok := svc.Get("Checking")
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeChecking, acct.Type)
	assert.Equal(t, "195917574edc9b6bbeb5be9785b6a479", acct.ID)

	acct, ok = svc.Get("Savings")
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeSavings, acct.Type)

	// No OFX keyword matches cash.
	acct, ok = svc.Get("Petty Cash")
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeChecking, acct.Type)
}

func TestResolve_Override(t *testing.T) {
	svc := Resolve([]string{"Checking", "Savings"},
		DefaultTable(model.FormatOFX), DefaultType(model.FormatOFX), model.AccountTypeCreditLine)

	assert.Len(t, svc.ByType(model.AccountTypeCreditLine), 2)
	assert.Empty(t, svc.ByType(model.AccountTypeChecking))
}

func TestResolve_KeepsOrder(t *testing.T) {
	svc := Resolve([]string{"b", "a"}, nil, "n/a", "")
	all := svc.All()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Name)
	assert.Equal(t, "a", all[1].Name)
}

func TestGet(t *testing.T) {
	svc := NewService([]model.Account{{Name: "Checking", Type: model.AccountTypeChecking}})

	_, ok := svc.Get("Checking")
	assert.True(t, ok)
	_, ok = svc.Get("checking")
	assert.False(t, ok)
	_, ok = svc.Get("Savings")
	assert.False(t, ok)
}

func TestByType_IgnoresCase(t *testing.T) {
	svc := Resolve([]string{"Checking", "Cash"},
		DefaultTable(model.FormatQIF), DefaultType(model.FormatQIF), "")

	got := svc.ByType("cash")
	require.Len(t, got, 1)
	assert.Equal(t, "Cash", got[0].Name)
}

func TestPin(t *testing.T) {
	svc := Resolve([]string{"Checking", "Savings"},
		DefaultTable(model.FormatOFX), DefaultType(model.FormatOFX), "")
	pinned := NewService([]model.Account{
		{Name: "Savings", Type: model.AccountTypeMoneyMrkt},
		{Name: "Brokerage", Type: model.AccountTypeSavings},
		{Name: "Checking"},
	})

	got := svc.Pin(pinned)

	all := got.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Checking", all[0].Name)
	assert.Equal(t, model.AccountTypeChecking, all[0].Type)
	assert.Equal(t, "Savings", all[1].Name)
	assert.Equal(t, model.AccountTypeMoneyMrkt, all[1].Type)
	assert.Equal(t, "ab0da0e987457927aebb5111d5d32c12", all[1].ID)

	// The receiver is unchanged.
	acct, ok := svc.Get("Savings")
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeSavings, acct.Type)
}
