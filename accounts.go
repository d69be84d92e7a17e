package bookkeeping

import (
	"iter"
	"maps"
	"slices"
)

// Accounts is the registry of declared accounts and their kind.
//
// It is built once from the document and is immutable afterwards; lookups
// are exact-match and case-sensitive, there is no fuzzy matching. KindOf is
// the only validation point for misspelled account names.
type Accounts struct {
	kinds map[string]Kind
}

// NewAccounts creates an empty registry.
func NewAccounts() *Accounts {
	return &Accounts{kinds: make(map[string]Kind)}
}

// Declare registers an account with its kind. Declaring the same name twice
// is an error, whatever the kinds.
func (a *Accounts) Declare(name string, kind Kind) error {
	if _, ok := a.kinds[name]; ok {
		return &DuplicateAccountError{Name: name}
	}
	a.kinds[name] = kind
	return nil
}

// KindOf returns the kind of a declared account.
func (a *Accounts) KindOf(name string) (Kind, error) {
	kind, ok := a.kinds[name]
	if !ok {
		return 0, &UnknownAccountError{Account: name}
	}
	return kind, nil
}

// Len returns the number of declared accounts.
func (a *Accounts) Len() int { return len(a.kinds) }

// Names iterates over all declared account names in lexical order, for
// deterministic output.
func (a *Accounts) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		names := slices.Collect(maps.Keys(a.kinds))
		slices.Sort(names)
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// ByKind iterates, in lexical order, over the declared accounts of one kind.
func (a *Accounts) ByKind(kind Kind) iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range a.Names() {
			if a.kinds[name] != kind {
				continue
			}
			if !yield(name) {
				return
			}
		}
	}
}
