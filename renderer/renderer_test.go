package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yearend/bookkeeping"
)

func yearSummary(t *testing.T) (*bookkeeping.Accounts, *bookkeeping.Ledger, *bookkeeping.Summary) {
	t.Helper()
	accounts := bookkeeping.NewAccounts()
	for name, kind := range map[string]bookkeeping.Kind{
		"initial_money": bookkeeping.InitialValue,
		"money":         bookkeeping.Asset,
		"salary":        bookkeeping.Income,
		"rent":          bookkeeping.Expense,
	} {
		if err := accounts.Declare(name, kind); err != nil {
			t.Fatal(err)
		}
	}
	groupings, err := bookkeeping.Resolve([]bookkeeping.Grouping{
		bookkeeping.Inlined{Name: "q1", Transfers: []bookkeeping.Transfer{
			bookkeeping.NewTransfer(bookkeeping.NewDate(2025, 1, 1), "carry over",
				map[string]decimal.Decimal{
					"initial_money": decimal.NewFromInt(-100),
					"money":         decimal.NewFromInt(100),
				}),
			bookkeeping.NewTransfer(bookkeeping.NewDate(2025, 1, 31), "salary",
				map[string]decimal.Decimal{
					"money":  decimal.NewFromInt(3000),
					"salary": decimal.NewFromInt(-3000),
				}),
		}},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ledger := bookkeeping.NewLedger(groupings)
	if err := bookkeeping.Validate(accounts, ledger); err != nil {
		t.Fatal(err)
	}
	return accounts, ledger, bookkeeping.NewSummary("2025", "EUR", accounts, ledger)
}

func TestNewSummaryView(t *testing.T) {
	accounts, _, summary := yearSummary(t)
	v := NewSummaryView(accounts, summary)

	if v.Title != "2025" {
		t.Errorf("Title = %q, want 2025", v.Title)
	}
	if v.Period != "2025-01-01 to 2025-01-31" {
		t.Errorf("Period = %q", v.Period)
	}
	if v.NetWorth != "+€3,100.00" {
		t.Errorf("NetWorth = %q, want +€3,100.00", v.NetWorth)
	}
	if v.NetResult != "-€3,000.00" {
		t.Errorf("NetResult = %q, want -€3,000.00", v.NetResult)
	}
	if len(v.Kinds) != len(bookkeeping.Kinds) {
		t.Errorf("len(Kinds) = %d, want %d", len(v.Kinds), len(bookkeeping.Kinds))
	}
	if len(v.InitialCarry) != 1 || v.InitialCarry[0].Name != "initial_money" {
		t.Errorf("InitialCarry = %v", v.InitialCarry)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	accounts, _, summary := yearSummary(t)
	md := SummaryMarkdown(accounts, summary)

	for _, want := range []string{
		"# 2025",
		"| Net worth | +€3,100.00 |",
		"| Net result | -€3,000.00 |",
		"| Carry-over initial_money | -€100.00 |",
		"## asset",
		"| money | +€3,100.00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary markdown misses %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "error") {
		t.Errorf("summary markdown contains a template error:\n%s", md)
	}
}

func TestLogMarkdown(t *testing.T) {
	_, ledger, summary := yearSummary(t)
	md := LogMarkdown(summary, ledger)

	for _, want := range []string{
		"# Ledger",
		"| 2025-01-01 | carry over | q1 | initial_money | -€100.00 |",
		"| 2025-01-31 | salary | q1 | money | +€3,000.00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("log markdown misses %q:\n%s", want, md)
		}
	}
}
