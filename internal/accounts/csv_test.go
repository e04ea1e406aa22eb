package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/csv2ofx/internal/id"
	"github.com/cleared-dev/csv2ofx/internal/model"
)

func TestWriteAccounts(t *testing.T) {
	accounts := []model.Account{
		{Name: "Checking", Type: model.AccountTypeChecking, ID: id.Account("Checking")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, accounts))

	want := "account_name,account_type,account_id\n" +
		"Checking,CHECKING,195917574edc9b6bbeb5be9785b6a479\n"
	assert.Equal(t, want, buf.String())
}

func TestRoundTrip(t *testing.T) {
	svc := Resolve([]string{"Business Checking", "Visa, Gold", "Cash"},
		DefaultTable(model.FormatQIF), DefaultType(model.FormatQIF), "")

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, svc.All()))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, svc.All(), got)
}

func TestReadAccounts_Empty(t *testing.T) {
	got, err := ReadAccounts(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadAccounts_BadID(t *testing.T) {
	in := "account_name,account_type,account_id\nChecking,CHECKING,deadbeef\n"
	_, err := ReadAccounts(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadAccounts_WrongFieldCount(t *testing.T) {
	in := "account_name,account_type,account_id\nChecking,CHECKING\n"
	_, err := ReadAccounts(strings.NewReader(in))
	assert.Error(t, err)
}
