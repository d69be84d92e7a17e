package bookkeeping

import "testing"

func TestAmount_String(t *testing.T) {
	tests := []struct {
		amount Amount
		want   string
	}{
		{A(1500.00, "EUR"), "€1,500.00"},
		{A(-29.99, "EUR"), "-€29.99"},
		{A(0, "EUR"), "€0.00"},
	}
	for _, tt := range tests {
		if got := tt.amount.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAmount_SignedString(t *testing.T) {
	if got := A(100, "EUR").SignedString(); got != "+€100.00" {
		t.Errorf("SignedString() = %q, want %q", got, "+€100.00")
	}
	if got := A(0, "EUR").SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want %q", got, "-")
	}
}

func TestAmount_Add(t *testing.T) {
	// 0.1+0.2 is exactly 0.3 in decimal arithmetic.
	sum := A(0.1, "EUR").Add(A(0.2, "EUR"))
	if !sum.Equal(A(0.3, "EUR")) {
		t.Errorf("Add() = %v, want 0.3", sum.Decimal())
	}

	// The empty currency is weak and takes the other operand's.
	mixed := Amount{}.Add(A(5, "USD"))
	if mixed.Currency() != "USD" {
		t.Errorf("Add() currency = %q, want USD", mixed.Currency())
	}
}
