package bookkeeping

import (
	"errors"
	"slices"
	"testing"
)

func TestAccounts_Declare(t *testing.T) {
	a := NewAccounts()
	if err := a.Declare("money", Asset); err != nil {
		t.Fatalf("Declare() error = %v", err)
	}
	if err := a.Declare("salary", Income); err != nil {
		t.Fatalf("Declare() error = %v", err)
	}

	var dup *DuplicateAccountError
	err := a.Declare("money", Expense)
	if !errors.As(err, &dup) {
		t.Fatalf("Declare() on existing name error = %v, want DuplicateAccountError", err)
	}
	if dup.Name != "money" {
		t.Errorf("DuplicateAccountError.Name = %q, want %q", dup.Name, "money")
	}
	// The failed declaration must not have altered the registry.
	kind, err := a.KindOf("money")
	if err != nil || kind != Asset {
		t.Errorf("KindOf(money) = %v, %v, want Asset", kind, err)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestAccounts_KindOf(t *testing.T) {
	a := NewAccounts()
	a.Declare("mortgage", Creditor)

	var unknown *UnknownAccountError
	if _, err := a.KindOf("rent"); !errors.As(err, &unknown) {
		t.Fatalf("KindOf(rent) error = %v, want UnknownAccountError", err)
	}
	if unknown.Account != "rent" {
		t.Errorf("UnknownAccountError.Account = %q, want %q", unknown.Account, "rent")
	}
}

func TestAccounts_Names(t *testing.T) {
	a := NewAccounts()
	a.Declare("salary", Income)
	a.Declare("initial_money", InitialValue)
	a.Declare("money", Asset)

	got := slices.Collect(a.Names())
	want := []string{"initial_money", "money", "salary"}
	if !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestAccounts_ByKind(t *testing.T) {
	a := NewAccounts()
	a.Declare("money", Asset)
	a.Declare("savings", Asset)
	a.Declare("salary", Income)

	got := slices.Collect(a.ByKind(Asset))
	want := []string{"money", "savings"}
	if !slices.Equal(got, want) {
		t.Errorf("ByKind(Asset) = %v, want %v", got, want)
	}
	if got := slices.Collect(a.ByKind(Creditor)); len(got) != 0 {
		t.Errorf("ByKind(Creditor) = %v, want empty", got)
	}
}
