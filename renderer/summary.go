package renderer

import "github.com/yearend/bookkeeping"

// SummaryMarkdown renders the full summary report to a markdown string.
func SummaryMarkdown(accounts *bookkeeping.Accounts, s *bookkeeping.Summary) string {
	partials := map[string]string{
		"summary_title":     "summary_title.md",
		"summary_accounts":  "summary_accounts.md",
		"summary_groupings": "summary_groupings.md",
	}
	return renderTemplate("summary", "summary.md", partials, NewSummaryView(accounts, s))
}
