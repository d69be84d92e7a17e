package bookkeeping

import "github.com/shopspring/decimal"

// dec builds an exact decimal from its string form.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// amounts builds a transfer amounts map from alternating name, value pairs.
func amounts(pairs ...string) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		m[pairs[i]] = dec(pairs[i+1])
	}
	return m
}
