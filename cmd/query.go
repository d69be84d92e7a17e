package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from the summary with a JSONPath" }
func (*queryCmd) Usage() string {
	return `bkp query <jsonpath>

  Evaluates a JSONPath expression against the computed summary and prints
  the result as JSON.

Usage Examples:
# Net worth of the year.
$ bkp query '$.net_worth'

# Balance of one account.
$ bkp query '$.accounts.money'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query expects exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	_, _, summary, err := Summarize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// Round-trip through generic JSON, the form jsonpath evaluates.
	raw, err := json.Marshal(summary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding summary: %v\n", err)
		return subcommands.ExitFailure
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding summary: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := jsonpath.Get(f.Arg(0), v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
