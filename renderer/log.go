package renderer

import "github.com/yearend/bookkeeping"

// LogView is one posting of the flattened ledger.
type LogView struct {
	Date     string
	Label    string
	Grouping string
	Account  string
	Amount   string
}

// LogMarkdown renders the flattened ledger as a markdown table, one row per
// posting, in ledger order.
func LogMarkdown(s *bookkeeping.Summary, ledger *bookkeeping.Ledger) string {
	var rows []LogView
	for _, t := range ledger.Transfers() {
		for account := range t.Accounts() {
			rows = append(rows, LogView{
				Date:     t.Date.String(),
				Label:    t.Label,
				Grouping: t.Source(),
				Account:  account,
				Amount:   s.Amount(t.Amounts[account]).SignedString(),
			})
		}
	}
	return renderTemplate("log", "log.md", nil, rows)
}
