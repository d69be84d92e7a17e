package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yearend/bookkeeping/renderer"
)

type logCmd struct{}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list all transfers in chronological order" }
func (*logCmd) Usage() string {
	return `bkp log

  Lists every transfer of the resolved ledger, one row per posting,
  sorted by date.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, ledger, summary, err := Summarize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LogMarkdown(summary, ledger))
	return subcommands.ExitSuccess
}
