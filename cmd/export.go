package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yearend/bookkeeping"
)

type exportCmd struct {
	dbPath string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the resolved ledger to a SQLite database" }
func (*exportCmd) Usage() string {
	return `bkp export [-o <db>]

  Resolves and validates the document, then exports accounts, transfers and
  postings into a SQLite database for ad-hoc SQL analysis.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dbPath, "o", "bookkeeping.db", "Path of the SQLite database to write.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, ledger, summary, err := Summarize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := bookkeeping.ExportSQLite(c.dbPath, doc.Accounts, ledger, summary); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", c.dbPath, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d transfers to %s\n", ledger.Len(), c.dbPath)
	return subcommands.ExitSuccess
}
