package bookkeeping

import (
	"encoding/json"
	"testing"
)

func TestKind_RoundTrip(t *testing.T) {
	for _, kind := range Kinds {
		got, err := ParseKind(kind.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) error = %v", kind.String(), err)
		}
		if got != kind {
			t.Errorf("ParseKind(%q) = %v, want %v", kind.String(), got, kind)
		}
	}
}

func TestKind_Parse(t *testing.T) {
	if got, err := ParseKind("initial_value"); err != nil || got != InitialValue {
		t.Errorf("ParseKind(initial_value) = %v, %v", got, err)
	}
	if _, err := ParseKind("liability"); err == nil {
		t.Errorf("ParseKind(liability) expected an error")
	}
}

func TestKind_UnmarshalJSON(t *testing.T) {
	var k Kind
	if err := json.Unmarshal([]byte(`"creditor"`), &k); err != nil || k != Creditor {
		t.Errorf("Unmarshal(creditor) = %v, %v", k, err)
	}
	if err := json.Unmarshal([]byte(`"debtor"`), &k); err == nil {
		t.Errorf("Unmarshal(debtor) expected an error")
	}
}
