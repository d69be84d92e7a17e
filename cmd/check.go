package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yearend/bookkeeping"
	"golang.org/x/sync/errgroup"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate one or more documents" }
func (*checkCmd) Usage() string {
	return `bkp check [<document>...]

  Resolves and validates each document: every referenced account must be
  declared, every transfer must sum to zero, every grouping reference must
  resolve without cycles. Defaults to the -f document.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	paths := f.Args()
	if len(paths) == 0 {
		paths = []string{*documentFile}
	}

	g, _ := errgroup.WithContext(ctx)
	for _, path := range paths {
		g.Go(func() error {
			doc, err := bookkeeping.LoadDocument(path)
			if err != nil {
				return err
			}
			if _, _, err := doc.Summarize(bookkeeping.DocumentLoader(path)); err != nil {
				return fmt.Errorf("in document %q: %w", path, err)
			}
			fmt.Printf("%s: ok\n", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
