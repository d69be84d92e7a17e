package bookkeeping

import (
	"iter"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Transfer is an atomic, dated movement of money across two or more
// accounts. The amounts of one transfer must sum to exactly zero; positive
// means money flowing into the account, negative money flowing out.
type Transfer struct {
	Label   string                     // human readable description, not unique
	Date    Date                       // calendar date, no time component
	Amounts map[string]decimal.Decimal // account name -> signed amount
	Notes   map[string]string          // free-form attachments (receipt paths, ...)

	source string // name of the grouping the transfer came from
}

// NewTransfer creates a transfer. Amount keys are account names.
func NewTransfer(day Date, label string, amounts map[string]decimal.Decimal) Transfer {
	return Transfer{Label: label, Date: day, Amounts: amounts}
}

// Source returns the name of the grouping this transfer was declared in.
// It is set during period resolution and used for error reporting.
func (t Transfer) Source() string { return t.source }

// Accounts iterates over the referenced account names in lexical order.
func (t Transfer) Accounts() iter.Seq[string] {
	return func(yield func(string) bool) {
		names := slices.Collect(maps.Keys(t.Amounts))
		slices.Sort(names)
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// Sum returns the exact sum of all amounts. Zero for a well-formed transfer.
func (t Transfer) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, amount := range t.Amounts {
		sum = sum.Add(amount)
	}
	return sum
}

func (t Transfer) Equal(o Transfer) bool {
	if t.Label != o.Label || t.Date != o.Date || len(t.Amounts) != len(o.Amounts) || len(t.Notes) != len(o.Notes) {
		return false
	}
	for account, amount := range t.Amounts {
		other, ok := o.Amounts[account]
		if !ok || !amount.Equal(other) {
			return false
		}
	}
	return maps.Equal(t.Notes, o.Notes)
}

// MarshalJSON implements the json.Marshaler interface for Transfer with a
// canonical field order and lexically sorted amount keys.
func (t Transfer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("label", t.Label)
	w.Append("date", t.Date)
	var amounts jsonObjectWriter
	for account := range t.Accounts() {
		amounts.Append(account, t.Amounts[account])
	}
	w.Append("amounts", &amounts)
	if len(t.Notes) > 0 {
		var notes jsonObjectWriter
		keys := slices.Collect(maps.Keys(t.Notes))
		slices.Sort(keys)
		for _, key := range keys {
			notes.Append(key, t.Notes[key])
		}
		w.Append("notes", &notes)
	}
	return w.MarshalJSON()
}
