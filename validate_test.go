package bookkeeping

import (
	"errors"
	"testing"
)

func yearAccounts(t *testing.T) *Accounts {
	t.Helper()
	a := NewAccounts()
	for name, kind := range map[string]Kind{
		"initial_money": InitialValue,
		"money":         Asset,
		"mortgage":      Creditor,
		"salary":        Income,
		"rent":          Expense,
		"food":          Expense,
	} {
		if err := a.Declare(name, kind); err != nil {
			t.Fatal(err)
		}
	}
	return a
}

// resolveLedger runs the resolver on inline groupings so transfers carry
// their source, then builds the ledger.
func resolveLedger(t *testing.T, groupings ...Inlined) *Ledger {
	t.Helper()
	nodes := make([]Grouping, len(groupings))
	for i, g := range groupings {
		nodes[i] = g
	}
	resolved, err := Resolve(nodes, newMapLoader(nil))
	if err != nil {
		t.Fatal(err)
	}
	return NewLedger(resolved)
}

func TestValidate_OK(t *testing.T) {
	ledger := resolveLedger(t, Inlined{Name: "year", Transfers: []Transfer{
		NewTransfer(NewDate(2025, 1, 1), "carry over", amounts("initial_money", "-100", "money", "100")),
		NewTransfer(NewDate(2025, 1, 31), "salary", amounts("money", "3000", "salary", "-3000")),
	}})
	if err := Validate(yearAccounts(t), ledger); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidate_UnknownAccount(t *testing.T) {
	ledger := resolveLedger(t, Inlined{Name: "q1", Transfers: []Transfer{
		NewTransfer(NewDate(2025, 2, 3), "groceries", amounts("money", "-42", "grocery", "42")),
	}})

	err := Validate(yearAccounts(t), ledger)
	var unknown *UnknownAccountError
	if !errors.As(err, &unknown) {
		t.Fatalf("Validate() error = %v, want UnknownAccountError", err)
	}
	if unknown.Account != "grocery" {
		t.Errorf("Account = %q, want %q", unknown.Account, "grocery")
	}
	if unknown.Transfer != "groceries" || unknown.Source != "q1" {
		t.Errorf("context = (%q, %q), want (groceries, q1)", unknown.Transfer, unknown.Source)
	}
}

func TestValidate_UnbalancedTransfer(t *testing.T) {
	ledger := resolveLedger(t, Inlined{Name: "q1", Transfers: []Transfer{
		NewTransfer(NewDate(2025, 2, 3), "off by a cent", amounts("money", "10.00", "salary", "-9.99")),
	}})

	err := Validate(yearAccounts(t), ledger)
	var unbalanced *UnbalancedTransferError
	if !errors.As(err, &unbalanced) {
		t.Fatalf("Validate() error = %v, want UnbalancedTransferError", err)
	}
	if !unbalanced.Sum.Equal(dec("0.01")) {
		t.Errorf("Sum = %v, want 0.01", unbalanced.Sum)
	}
	if unbalanced.Transfer != "off by a cent" {
		t.Errorf("Transfer = %q, want %q", unbalanced.Transfer, "off by a cent")
	}
}

func TestValidate_EmptyLedger(t *testing.T) {
	if err := Validate(yearAccounts(t), NewLedger(nil)); err != nil {
		t.Fatalf("Validate() on empty ledger error = %v", err)
	}
}

func TestValidate_FirstErrorWins(t *testing.T) {
	// An unknown account in an earlier transfer is reported before a later
	// unbalanced one.
	ledger := resolveLedger(t, Inlined{Name: "q1", Transfers: []Transfer{
		NewTransfer(NewDate(2025, 1, 1), "first", amounts("ghost", "0")),
		NewTransfer(NewDate(2025, 1, 2), "second", amounts("money", "1")),
	}})

	err := Validate(yearAccounts(t), ledger)
	var unknown *UnknownAccountError
	if !errors.As(err, &unknown) {
		t.Fatalf("Validate() error = %v, want UnknownAccountError first", err)
	}
}
