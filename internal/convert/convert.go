// Package convert runs the full conversion of input rows into QIF or OFX
// text.
package convert

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/csv2ofx/internal/accounts"
	"github.com/cleared-dev/csv2ofx/internal/amount"
	"github.com/cleared-dev/csv2ofx/internal/extract"
	"github.com/cleared-dev/csv2ofx/internal/journal"
	"github.com/cleared-dev/csv2ofx/internal/mapping"
	"github.com/cleared-dev/csv2ofx/internal/model"
	"github.com/cleared-dev/csv2ofx/internal/render"
)

// Options controls a conversion run.
type Options struct {
	Source   mapping.Source
	Format   model.Format
	Transfer bool

	// Primary is a split account whose transactions are skipped.
	Primary string
	// Collapse lists accounts whose splits are merged within a transaction.
	Collapse []string

	// Start is inclusive and End exclusive; zero values are unbounded.
	Start time.Time
	End   time.Time

	Currency string
	Language string

	// AccountType, when set, replaces classification for every account.
	AccountType model.AccountType
	// TypeTable defaults to the built-in table for Format.
	TypeTable accounts.TypeTable

	// Pinned holds accounts from an earlier listing. Their types take
	// precedence over classification but not over AccountType.
	Pinned *accounts.Service

	DefaultSplitAccount string
	Location            *time.Location

	// Now stamps the OFX server time. Defaults to time.Now.
	Now func() time.Time
}

// Converter turns rows of one source into output text.
type Converter struct {
	hm   mapping.HeaderMap
	opts Options
	log  zerolog.Logger
}

// New returns a Converter for rows described by hm.
func New(hm mapping.HeaderMap, opts Options, log zerolog.Logger) *Converter {
	if opts.Format == "" {
		opts.Format = model.FormatOFX
	}
	if opts.TypeTable == nil {
		opts.TypeTable = accounts.DefaultTable(opts.Format)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Converter{hm: hm, opts: opts, log: log}
}

// entry is a transaction ready to render: the main split's data first,
// followed by the data of the remaining splits.
type entry struct {
	main   model.TransactionData
	others []model.TransactionData
}

// Prepare groups, verifies and collapses rows and resolves the main
// accounts. Compound transactions are sorted by account and returned with
// their main split first.
func (c *Converter) Prepare(rows []model.Row) ([]model.Transaction, *accounts.Service, error) {
	splits, err := amount.Normalize(rows, c.opts.Source, c.hm)
	if err != nil {
		return nil, nil, err
	}

	txns := journal.Group(splits, c.hm)
	c.log.Debug().Int("rows", len(rows)).Int("transactions", len(txns)).Msg("grouped")

	if c.hm.Compound {
		if err := journal.Verify(txns); err != nil {
			return nil, nil, err
		}

		for i, txn := range txns {
			txns[i] = journal.SortByAccount(txn)
		}

		if len(c.opts.Collapse) > 0 {
			merged := 0
			for i, txn := range txns {
				before := len(txn.Splits)
				txns[i] = journal.Collapse(txn, c.opts.Collapse)
				merged += before - len(txns[i].Splits)
			}
			if err := journal.Verify(txns); err != nil {
				return nil, nil, fmt.Errorf("after collapsing: %w", err)
			}
			c.log.Debug().Int("merged", merged).Strs("accounts", c.opts.Collapse).Msg("collapsed")
		}

		for i, txn := range txns {
			promoted, err := journal.PromoteMain(txn)
			if err != nil {
				return nil, nil, err
			}
			txns[i] = promoted
		}
	}

	names := journal.UniqueAccounts(txns)
	svc := accounts.Resolve(names, c.opts.TypeTable, accounts.DefaultType(c.opts.Format), c.opts.AccountType)
	if c.opts.Pinned != nil && c.opts.AccountType == "" {
		svc = svc.Pin(c.opts.Pinned)
	}
	c.log.Debug().Strs("accounts", names).Msg("resolved accounts")
	return txns, svc, nil
}

// Accounts returns the resolved main accounts of rows.
func (c *Converter) Accounts(rows []model.Row) ([]model.Account, error) {
	_, svc, err := c.Prepare(rows)
	if err != nil {
		return nil, err
	}
	return svc.All(), nil
}

// Convert renders rows as QIF or OFX text.
func (c *Converter) Convert(rows []model.Row) (string, error) {
	txns, svc, err := c.Prepare(rows)
	if err != nil {
		return "", err
	}

	byAccount := make(map[string][]entry)
	skipped := 0
	for _, txn := range txns {
		e, err := c.extract(txn)
		if err != nil {
			return "", err
		}
		if !c.keep(e.main) {
			skipped++
			continue
		}
		byAccount[txn.Main().Account] = append(byAccount[txn.Main().Account], e)
	}
	c.log.Debug().Int("skipped", skipped).Msg("filtered transactions")

	var b strings.Builder
	switch c.opts.Format {
	case model.FormatQIF:
		c.renderQIF(&b, svc, byAccount)
	default:
		c.renderOFX(&b, svc, byAccount)
	}
	return b.String(), nil
}

func (c *Converter) extract(txn model.Transaction) (entry, error) {
	opts := extract.Options{
		Source:              c.opts.Source,
		DefaultSplitAccount: c.opts.DefaultSplitAccount,
		Location:            c.opts.Location,
	}

	var e entry
	for i, s := range txn.Splits {
		td, err := extract.Extract(s, c.hm, opts)
		if err != nil {
			return entry{}, fmt.Errorf("%s: %w", journal.Describe(txn.Key), err)
		}
		if i == 0 {
			e.main = td
			continue
		}
		e.others = append(e.others, td)
	}
	return e, nil
}

// keep applies the date range and the primary account filter to the main
// split; compound transactions are kept or dropped as a whole.
func (c *Converter) keep(td model.TransactionData) bool {
	if !c.opts.Start.IsZero() && td.Date.Before(c.opts.Start) {
		return false
	}
	if !c.opts.End.IsZero() && !td.Date.Before(c.opts.End) {
		return false
	}
	if c.opts.Primary != "" && td.SplitAccount == c.opts.Primary {
		return false
	}
	return true
}

func (c *Converter) renderQIF(b *strings.Builder, svc *accounts.Service, byAccount map[string][]entry) {
	for _, acct := range svc.All() {
		entries := byAccount[acct.Name]
		if len(entries) == 0 {
			continue
		}
		render.QIFAccountHeader(b, acct.Name, acct.Type)
		for _, e := range entries {
			head := e.main
			if c.hm.FlipPrimaryQIF {
				head.Amount = head.Amount.Neg()
			}
			render.QIFTransactionHeader(b, acct.Type, head, !c.hm.Compound)

			switch {
			case c.hm.Compound:
				for _, td := range e.others {
					render.QIFSplit(b, td.SplitAccount, td.Desc, td.Amount)
				}
			case c.hm.SplitAccount != "":
				render.QIFSplit(b, e.main.SplitAccount, e.main.Desc, e.main.Amount)
			}
			render.QIFTransactionFooter(b)
		}
	}
}

func (c *Converter) renderOFX(b *strings.Builder, svc *accounts.Service, byAccount map[string][]entry) {
	now := c.opts.Now().In(c.opts.Location)
	render.OFXHeader(b, now, c.opts.Language, c.opts.Transfer)

	for _, acct := range svc.All() {
		entries := byAccount[acct.Name]
		if len(entries) == 0 {
			continue
		}

		if c.opts.Transfer {
			for _, e := range entries {
				for _, td := range c.transfers(e) {
					render.OFXTransfer(b, c.opts.Currency, acct, td, c.classify(svc, td.SplitAccount))
				}
			}
			continue
		}

		start, end := dateRange(entries)
		render.OFXAccountStart(b, c.opts.Currency, acct, start, end)
		for _, e := range entries {
			render.OFXTransaction(b, e.main)
		}
		render.OFXAccountEnd(b, now)
	}

	render.OFXFooter(b, c.opts.Transfer)
}

// transfers returns the legs of e moved out of its main account: the main
// split itself for simple sources, every other split for compound ones.
func (c *Converter) transfers(e entry) []model.TransactionData {
	if !c.hm.Compound {
		return []model.TransactionData{e.main}
	}
	legs := make([]model.TransactionData, 0, len(e.others))
	for _, td := range e.others {
		td.Date = e.main.Date
		legs = append(legs, td)
	}
	return legs
}

// classify returns the type of a transfer destination. Accounts already
// resolved or pinned keep their type.
func (c *Converter) classify(svc *accounts.Service, name string) model.AccountType {
	if c.opts.AccountType != "" {
		return c.opts.AccountType
	}
	if acct, ok := svc.Get(name); ok {
		return acct.Type
	}
	if c.opts.Pinned != nil {
		if acct, ok := c.opts.Pinned.Get(name); ok && acct.Type != "" {
			return acct.Type
		}
	}
	return accounts.Classify(name, c.opts.TypeTable, accounts.DefaultType(c.opts.Format))
}

func dateRange(entries []entry) (start, end time.Time) {
	for i, e := range entries {
		d := e.main.Date
		if i == 0 || d.Before(start) {
			start = d
		}
		if i == 0 || d.After(end) {
			end = d
		}
	}
	return start, end
}
