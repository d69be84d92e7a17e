package renderer

import (
	"github.com/yearend/bookkeeping"
)

// SummaryView is the renderer-facing shape of a summary: everything is
// preformatted so the templates stay dumb.
type SummaryView struct {
	Title     string
	Period    string
	NetWorth  string
	NetResult string

	Kinds        []KindView
	InitialCarry []RowView
	Groupings    []GroupingView
}

// KindView is one account kind with its accounts and total.
type KindView struct {
	Name     string
	Total    string
	Accounts []RowView
}

// RowView is a single account and its balance.
type RowView struct {
	Name    string
	Balance string
}

// GroupingView is the compact per-grouping section: kind totals only.
type GroupingView struct {
	Name  string
	Kinds []RowView
}

// NewSummaryView builds the view for a computed summary. The registry is
// needed to group accounts under their kind.
func NewSummaryView(accounts *bookkeeping.Accounts, s *bookkeeping.Summary) *SummaryView {
	v := &SummaryView{
		Title:     s.Name,
		NetWorth:  s.Amount(s.NetWorth).SignedString(),
		NetResult: s.Amount(s.NetResult).SignedString(),
	}
	if !s.From.IsZero() {
		v.Period = s.From.String() + " to " + s.To.String()
	}

	for _, kind := range bookkeeping.Kinds {
		kv := KindView{
			Name:  kind.String(),
			Total: s.Amount(s.Global.Kinds[kind]).SignedString(),
		}
		for name := range accounts.ByKind(kind) {
			kv.Accounts = append(kv.Accounts, RowView{
				Name:    name,
				Balance: s.Amount(s.Balance(name)).SignedString(),
			})
		}
		v.Kinds = append(v.Kinds, kv)
	}

	for name := range accounts.ByKind(bookkeeping.InitialValue) {
		v.InitialCarry = append(v.InitialCarry, RowView{
			Name:    name,
			Balance: s.Amount(s.InitialCarry[name]).SignedString(),
		})
	}

	for _, g := range s.Groupings {
		gv := GroupingView{Name: g.Name}
		for _, kind := range bookkeeping.Kinds {
			total := g.Sums.Kinds[kind]
			if total.IsZero() {
				continue
			}
			gv.Kinds = append(gv.Kinds, RowView{
				Name:    kind.String(),
				Balance: s.Amount(total).SignedString(),
			})
		}
		v.Groupings = append(v.Groupings, gv)
	}
	return v
}
