package mapping

import (
	"fmt"
	"sort"
	"strings"
)

// Source identifies the service that produced an export.
type Source string

const (
	SourceMint    Source = "mint"
	SourceXero    Source = "xero"
	SourceYodlee  Source = "yodlee"
	SourceExim    Source = "exim"
	SourceCustom  Source = "custom"
	SourceDefault Source = "default"
)

// HeaderMap names the input column backing each logical transaction field.
// An empty string means the source does not provide the field.
type HeaderMap struct {
	Account      string `yaml:"account"`
	Date         string `yaml:"date"`
	Type         string `yaml:"type,omitempty"`
	Amount       string `yaml:"amount"`
	Description  string `yaml:"description,omitempty"`
	Payee        string `yaml:"payee,omitempty"`
	Notes        string `yaml:"notes,omitempty"`
	SplitAccount string `yaml:"split_account,omitempty"`
	Class        string `yaml:"class,omitempty"`
	ID           string `yaml:"id,omitempty"`
	CheckNum     string `yaml:"check_num,omitempty"`

	// Compound sources emit one row per split; rows sharing ID form a transaction.
	Compound bool `yaml:"compound"`

	// FlipPrimaryQIF negates the main amount on the QIF transaction line.
	FlipPrimaryQIF bool `yaml:"flip_primary_qif,omitempty"`

	// DateLayouts are Go time layouts tried before the generic list.
	DateLayouts []string `yaml:"date_layouts,omitempty"`
}

// ConfigurationError reports a header field the chosen path needs but the
// mapping does not provide.
type ConfigurationError struct {
	Source Source
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("mapping %q: %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("mapping %q: field %s: %s", e.Source, e.Field, e.Reason)
}

// Lookup returns the header map for source. custom is the map supplied by
// configuration and is only used when source is "custom".
func Lookup(source string, custom *HeaderMap) (HeaderMap, error) {
	switch Source(strings.ToLower(source)) {
	case SourceMint:
		return HeaderMap{
			Account:      "Account Name",
			Date:         "Date",
			Type:         "Transaction Type",
			Amount:       "Amount",
			Description:  "Original Description",
			Payee:        "Description",
			Notes:        "Notes",
			SplitAccount: "Category",
			DateLayouts:  []string{"1/02/2006", "01/02/2006"},
		}, nil
	case SourceXero:
		return HeaderMap{
			Account:        "AccountName",
			Date:           "JournalDate",
			Amount:         "NetAmount",
			Description:    "Description",
			Payee:          "Description",
			Notes:          "Product",
			SplitAccount:   "AccountName",
			Class:          "Resource",
			ID:             "JournalNumber",
			CheckNum:       "Reference",
			Compound:       true,
			FlipPrimaryQIF: true,
		}, nil
	case SourceYodlee, "yoodlee":
		return HeaderMap{
			Account:      "Account Name",
			Date:         "Date",
			Type:         "Transaction Type",
			Amount:       "Amount",
			Description:  "Original Description",
			Payee:        "User Description",
			Notes:        "Memo",
			SplitAccount: "Category",
			Class:        "Classification",
			ID:           "Transaction Id",
		}, nil
	case SourceExim:
		return HeaderMap{
			Account: "Account",
			Date:    "Date",
			Amount:  "Amount",
			Payee:   "Narration",
			Notes:   "Notes",
			ID:      "Reference Number",
		}, nil
	case SourceCustom:
		if custom == nil {
			return HeaderMap{}, &ConfigurationError{Source: SourceCustom, Reason: "no custom header map configured"}
		}
		return *custom, nil
	case SourceDefault, "":
		return HeaderMap{
			Account:      "Field",
			Date:         "Field",
			Type:         "Field",
			Amount:       "Field",
			Description:  "Field",
			Payee:        "Field",
			Notes:        "Field",
			SplitAccount: "Field",
			Class:        "Field",
			ID:           "Field",
			CheckNum:     "Field",
		}, nil
	default:
		return HeaderMap{}, &ConfigurationError{Source: Source(source), Reason: "unknown mapping"}
	}
}

// Sources returns the known source identifiers, sorted.
func Sources() []string {
	s := []string{
		string(SourceMint),
		string(SourceXero),
		string(SourceYodlee),
		string(SourceExim),
		string(SourceCustom),
		string(SourceDefault),
	}
	sort.Strings(s)
	return s
}

// Require fails with a ConfigurationError naming the first unmapped field.
// Field names are the yaml keys of HeaderMap.
func (h HeaderMap) Require(source Source, fields ...string) error {
	for _, f := range fields {
		if h.column(f) == "" {
			return &ConfigurationError{Source: source, Field: f, Reason: "not mapped"}
		}
	}
	return nil
}

// Columns returns the mapped fields as yaml key -> column name, for display.
func (h HeaderMap) Columns() map[string]string {
	out := make(map[string]string)
	for _, f := range fieldNames {
		if c := h.column(f); c != "" {
			out[f] = c
		}
	}
	return out
}

var fieldNames = []string{
	"account", "date", "type", "amount", "description", "payee",
	"notes", "split_account", "class", "id", "check_num",
}

// FieldNames lists the logical field names in display order.
func FieldNames() []string {
	return append([]string(nil), fieldNames...)
}

func (h HeaderMap) column(field string) string {
	switch field {
	case "account":
		return h.Account
	case "date":
		return h.Date
	case "type":
		return h.Type
	case "amount":
		return h.Amount
	case "description":
		return h.Description
	case "payee":
		return h.Payee
	case "notes":
		return h.Notes
	case "split_account":
		return h.SplitAccount
	case "class":
		return h.Class
	case "id":
		return h.ID
	case "check_num":
		return h.CheckNum
	default:
		return ""
	}
}
