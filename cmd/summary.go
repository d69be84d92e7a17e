package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yearend/bookkeeping/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	asJSON bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the yearly bookkeeping summary" }
func (*summaryCmd) Usage() string {
	return `bkp summary [-json]

  Computes and displays the document summary: final balance per account,
  totals per kind, net worth and net result, globally and per grouping.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Output the summary as JSON instead of markdown.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, _, summary, err := Summarize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding summary: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SummaryMarkdown(doc.Accounts, summary))
	return subcommands.ExitSuccess
}
