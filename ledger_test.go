package bookkeeping

import "testing"

func TestLedger_StableOrdering(t *testing.T) {
	groupings := []Inlined{
		{Name: "q2", Transfers: []Transfer{
			NewTransfer(NewDate(2025, 4, 1), "rent april", amounts("money", "-800", "rent", "800")),
		}},
		{Name: "q1", Transfers: []Transfer{
			NewTransfer(NewDate(2025, 1, 31), "salary", amounts("money", "3000", "salary", "-3000")),
			NewTransfer(NewDate(2025, 1, 31), "rent january", amounts("money", "-800", "rent", "800")),
			NewTransfer(NewDate(2025, 1, 2), "coffee", amounts("money", "-3", "food", "3")),
		}},
	}

	ledger := NewLedger(groupings)
	if ledger.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", ledger.Len())
	}

	// Sorted by date; same-date transfers keep their declaration order.
	want := []string{"coffee", "salary", "rent january", "rent april"}
	for i, transfer := range ledger.Transfers() {
		if transfer.Label != want[i] {
			t.Errorf("transfers[%d].Label = %q, want %q", i, transfer.Label, want[i])
		}
	}

	if got := ledger.OldestTransferDate(); got != NewDate(2025, 1, 2) {
		t.Errorf("OldestTransferDate() = %v, want 2025-01-02", got)
	}
	if got := ledger.NewestTransferDate(); got != NewDate(2025, 4, 1) {
		t.Errorf("NewestTransferDate() = %v, want 2025-04-01", got)
	}
}

func TestLedger_Empty(t *testing.T) {
	ledger := NewLedger(nil)
	if ledger.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ledger.Len())
	}
	if !ledger.OldestTransferDate().IsZero() || !ledger.NewestTransferDate().IsZero() {
		t.Errorf("empty ledger should report zero dates")
	}
}
