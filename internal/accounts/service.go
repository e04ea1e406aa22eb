package accounts

import (
	"strings"

	"github.com/cleared-dev/csv2ofx/internal/id"
	"github.com/cleared-dev/csv2ofx/internal/model"
)

// Service provides in-memory lookup over the accounts resolved from one input.
type Service struct {
	accounts []model.Account
	byName   map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byName := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byName[a.Name] = a
	}
	return &Service{accounts: accounts, byName: byName}
}

// Resolve classifies each name against table and assigns its surrogate id.
// A non-empty override replaces classification for every account.
func Resolve(names []string, table TypeTable, def, override model.AccountType) *Service {
	accts := make([]model.Account, 0, len(names))
	for _, name := range names {
		typ := override
		if typ == "" {
			typ = Classify(name, table, def)
		}
		accts = append(accts, model.Account{Name: name, Type: typ, ID: id.Account(name)})
	}
	return NewService(accts)
}

// All returns all accounts in resolution order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by name.
func (s *Service) Get(name string) (model.Account, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// ByType returns all accounts of the given type, ignoring case.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if strings.EqualFold(string(a.Type), string(accountType)) {
			result = append(result, a)
		}
	}
	return result
}

// Pin returns a Service with the types of s replaced by those of pinned
// for accounts present in both. Order and ids are kept.
func (s *Service) Pin(pinned *Service) *Service {
	accts := make([]model.Account, len(s.accounts))
	for i, a := range s.accounts {
		if p, ok := pinned.Get(a.Name); ok && p.Type != "" {
			a.Type = p.Type
		}
		accts[i] = a
	}
	return NewService(accts)
}
