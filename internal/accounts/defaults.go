package accounts

import "github.com/cleared-dev/csv2ofx/internal/model"

// DefaultTable returns the built-in type table for an output format.
func DefaultTable(format model.Format) TypeTable {
	switch format {
	case model.FormatQIF:
		return qifTable()
	default:
		return ofxTable()
	}
}

// DefaultType returns the type given to accounts no keyword matches.
func DefaultType(format model.Format) model.AccountType {
	switch format {
	case model.FormatQIF:
		return model.AccountTypeBank
	default:
		return model.AccountTypeChecking
	}
}

func ofxTable() TypeTable {
	return TypeTable{
		{Type: model.AccountTypeChecking, Keywords: []string{"checking"}},
		{Type: model.AccountTypeSavings, Keywords: []string{"savings"}},
		{Type: model.AccountTypeMoneyMrkt, Keywords: []string{"market"}},
		{Type: model.AccountTypeCreditLine, Keywords: []string{"visa", "master", "express", "discover"}},
	}
}

func qifTable() TypeTable {
	return TypeTable{
		{Type: model.AccountTypeBank, Keywords: []string{
			"checking", "savings", "market", "receivable", "payable",
			"visa", "master", "express", "discover",
		}},
		{Type: model.AccountTypeCash, Keywords: []string{"cash"}},
	}
}
