package model

// AccountType is the coarse account tag written to QIF and OFX output.
type AccountType string

const (
	AccountTypeChecking   AccountType = "CHECKING"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeMoneyMrkt  AccountType = "MONEYMRKT"
	AccountTypeCreditLine AccountType = "CREDITLINE"
	AccountTypeBank       AccountType = "Bank"
	AccountTypeCash       AccountType = "Cash"
)

// Account is a main-split account resolved from the input.
type Account struct {
	Name string
	Type AccountType
	ID   string // md5 hex of Name
}

// Format is an output file format.
type Format string

const (
	FormatQIF Format = "qif"
	FormatOFX Format = "ofx"
)
