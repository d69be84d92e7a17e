package bookkeeping

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Sums accumulates per-account and per-kind totals over a sequence of
// transfers. Every declared account is present, zero-initialized, so
// accounts never referenced report zero rather than being absent.
type Sums struct {
	Accounts map[string]decimal.Decimal
	Kinds    map[Kind]decimal.Decimal
}

func newSums(accounts *Accounts) Sums {
	s := Sums{
		Accounts: make(map[string]decimal.Decimal, accounts.Len()),
		Kinds:    make(map[Kind]decimal.Decimal, len(Kinds)),
	}
	for name := range accounts.Names() {
		s.Accounts[name] = decimal.Zero
	}
	for _, kind := range Kinds {
		s.Kinds[kind] = decimal.Zero
	}
	return s
}

func (s Sums) add(account string, kind Kind, amount decimal.Decimal) {
	s.Accounts[account] = s.Accounts[account].Add(amount)
	s.Kinds[kind] = s.Kinds[kind].Add(amount)
}

// Total returns the sum of all account balances. For a validated ledger it
// is exactly zero: money is never created or destroyed.
func (s Sums) Total() decimal.Decimal {
	total := decimal.Zero
	for _, balance := range s.Accounts {
		total = total.Add(balance)
	}
	return total
}

// GroupingSummary is the per-grouping slice of the summary, in declaration
// order.
type GroupingSummary struct {
	Name string
	Sums Sums
}

// Summary is the categorized financial result of one document: final
// balance per account, totals per kind, and the derived aggregates.
type Summary struct {
	Name     string
	Currency string
	From, To Date // dates of the first and last transfer

	Global    Sums
	Groupings []GroupingSummary

	// NetWorth is the sum of asset and creditor balances.
	NetWorth decimal.Decimal
	// NetResult is the sum of income and expense balances.
	NetResult decimal.Decimal
	// InitialCarry holds the balance of each initial_value account,
	// reported individually. Whether they mirror the previous year's
	// closing balances is a manual convention, not checked here.
	InitialCarry map[string]decimal.Decimal
}

// NewSummary folds a validated ledger into its summary. It is a pure
// function of (accounts, ledger): running it twice yields identical values.
// The ledger must have passed Validate; aggregation itself cannot fail.
func NewSummary(name, currency string, accounts *Accounts, ledger *Ledger) *Summary {
	if currency == "" {
		currency = DefaultCurrency
	}
	s := &Summary{
		Name:         name,
		Currency:     currency,
		From:         ledger.OldestTransferDate(),
		To:           ledger.NewestTransferDate(),
		Global:       newSums(accounts),
		InitialCarry: make(map[string]decimal.Decimal),
	}

	for _, g := range ledger.Groupings() {
		local := GroupingSummary{Name: g.Name, Sums: newSums(accounts)}
		for _, t := range g.Transfers {
			for account := range t.Accounts() {
				kind, err := accounts.KindOf(account)
				if err != nil {
					// Excluded by Validate; an unknown account never
					// contributes to any balance.
					continue
				}
				amount := t.Amounts[account]
				s.Global.add(account, kind, amount)
				local.Sums.add(account, kind, amount)
			}
		}
		s.Groupings = append(s.Groupings, local)
	}

	for kind, total := range s.Global.Kinds {
		switch kind {
		case Asset, Creditor:
			s.NetWorth = s.NetWorth.Add(total)
		case Income, Expense:
			s.NetResult = s.NetResult.Add(total)
		case InitialValue:
			// Reported per account, never aggregated into a total.
		}
	}
	for account := range accounts.ByKind(InitialValue) {
		s.InitialCarry[account] = s.Global.Accounts[account]
	}
	return s
}

// Balance returns the final balance of one account.
func (s *Summary) Balance(account string) decimal.Decimal {
	return s.Global.Accounts[account]
}

// Amount wraps a raw balance into the summary's currency for rendering.
func (s *Summary) Amount(value decimal.Decimal) Amount {
	return A(value, s.Currency)
}

// MarshalJSON implements the json.Marshaler interface for Summary with a
// canonical field order and lexically sorted account keys.
func (s *Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", s.Name)
	w.Append("currency", s.Currency)
	if !s.From.IsZero() {
		w.Append("from", s.From)
		w.Append("to", s.To)
	}
	w.Append("net_worth", s.NetWorth)
	w.Append("net_result", s.NetResult)
	w.Append("initial_carry", sumsObject(s.InitialCarry))
	w.Append("accounts", sumsObject(s.Global.Accounts))
	w.Append("kinds", kindsObject(s.Global.Kinds))
	var groupings jsonObjectWriter
	for _, g := range s.Groupings {
		var local jsonObjectWriter
		local.Append("accounts", sumsObject(g.Sums.Accounts))
		local.Append("kinds", kindsObject(g.Sums.Kinds))
		groupings.Append(g.Name, &local)
	}
	w.Append("groupings", &groupings)
	return w.MarshalJSON()
}

func sumsObject(balances map[string]decimal.Decimal) *jsonObjectWriter {
	var w jsonObjectWriter
	names := make([]string, 0, len(balances))
	for name := range balances {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		w.Append(name, balances[name])
	}
	return &w
}

func kindsObject(totals map[Kind]decimal.Decimal) *jsonObjectWriter {
	var w jsonObjectWriter
	for _, kind := range Kinds {
		w.Append(kind.String(), totals[kind])
	}
	return &w
}
