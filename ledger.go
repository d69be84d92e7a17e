package bookkeeping

import (
	"iter"
	"sort"
)

// Ledger is the fully flattened, ordered sequence of transfers for one
// document.
//
// In a Ledger transfers are always in chronological order: the resolved
// groupings are concatenated in declaration order, then stable-sorted by
// date, so same-day transfers keep their declaration order.
type Ledger struct {
	groupings []Inlined
	transfers []Transfer
}

// NewLedger builds the ledger from resolved groupings.
func NewLedger(groupings []Inlined) *Ledger {
	l := &Ledger{groupings: groupings}
	for _, g := range groupings {
		l.transfers = append(l.transfers, g.Transfers...)
	}
	l.stableSort()
	return l
}

// stableSort sorts the ledger by transfer date. The sort is stable, meaning
// transfers on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transfers, func(i, j int) bool {
		return l.transfers[i].Date.Before(l.transfers[j].Date)
	})
}

// Len returns the number of transfers in the ledger.
func (l *Ledger) Len() int { return len(l.transfers) }

// Groupings returns the resolved groupings in declaration order.
func (l *Ledger) Groupings() []Inlined { return l.groupings }

// Transfers returns an iterator that yields each transfer in ledger order.
func (l *Ledger) Transfers() iter.Seq2[int, Transfer] {
	return func(yield func(int, Transfer) bool) {
		for i, t := range l.transfers {
			if !yield(i, t) {
				return
			}
		}
	}
}

// OldestTransferDate returns the date of the earliest transfer in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) OldestTransferDate() Date {
	if len(l.transfers) == 0 {
		return Date{}
	}
	return l.transfers[0].Date
}

// NewestTransferDate returns the date of the latest transfer in the ledger,
// or the zero date if the ledger is empty.
func (l *Ledger) NewestTransferDate() Date {
	if len(l.transfers) == 0 {
		return Date{}
	}
	return l.transfers[len(l.transfers)-1].Date
}
