package bookkeeping

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a document does not declare one.
const DefaultCurrency = "EUR"

// Amount represents a signed monetary value in the document's currency.
//
// All arithmetic is exact decimal arithmetic; the currency only matters for
// rendering. The zero-sum invariant of transfers relies on this exactness.
type Amount struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Amount {
	return Amount{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// currency returns the full go-money currency for formatting.
func (a Amount) currency() money.Currency {
	cur := a.cur
	if cur == "" {
		cur = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, cur).Currency()
}

// String returns the string representation of the amount, formatted for its currency.
func (a Amount) String() string {
	cur := a.currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the amount with an explicit sign.
// Zero is represented as "-".
func (a Amount) SignedString() string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}

func (a Amount) Currency() string         { return a.cur }
func (a Amount) Decimal() decimal.Decimal { return a.value }
func (a Amount) Equal(b Amount) bool      { return a.value.Equal(b.value) && a.cur == b.cur }
func (a Amount) IsZero() bool             { return a.value.IsZero() }
func (a Amount) IsPositive() bool         { return a.value.IsPositive() }
func (a Amount) IsNegative() bool         { return a.value.IsNegative() }
func (a Amount) Neg() Amount              { return Amount{value: a.value.Neg(), cur: a.cur} }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value), cur: cur(a, b)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value), cur: cur(a, b)} }

// makes the "" currency totally weak.
func cur(a, b Amount) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

func (a Amount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", a.cur)
	w.Append("amount", a.value.Round(int32(a.currency().Fraction)))
	return w.MarshalJSON()
}
