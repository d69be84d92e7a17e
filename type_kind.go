package bookkeeping

import (
	"encoding/json"
	"fmt"
)

// Kind classifies the semantics of an account.
//
// The set is closed on purpose: the aggregation logic switches exhaustively
// over it, so adding a kind is a compile-time visible change.
type Kind int

const (
	// Asset is value you have right now.
	Asset Kind = iota
	// Creditor is someone you owe money to.
	Creditor
	// Income is a source of money.
	Income
	// Expense is a sink of money.
	Expense
	// InitialValue is a balancing account used only to seed the starting
	// balance of another account without violating conservation. When you
	// keep multiple years you can check it against the previous year's
	// closing balance.
	InitialValue
)

// Kinds lists all account kinds in rendering order.
var Kinds = []Kind{Asset, Creditor, Income, Expense, InitialValue}

func (k Kind) String() string {
	switch k {
	case Asset:
		return "asset"
	case Creditor:
		return "creditor"
	case Income:
		return "income"
	case Expense:
		return "expense"
	case InitialValue:
		return "initial_value"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "asset":
		return Asset, nil
	case "creditor":
		return Creditor, nil
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	case "initial_value":
		return InitialValue, nil
	default:
		return 0, fmt.Errorf("unknown account kind: %q", s)
	}
}

func (k Kind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *Kind) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

var _ json.Marshaler = (*Kind)(nil)
var _ json.Unmarshaler = (*Kind)(nil)
