package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yearend/bookkeeping"
)

type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the document into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `bkp fmt [-w]

  Validates the document and writes it back in its canonical form: stable
  field order, lexically sorted account and amount keys, 2-space indent.
  By default the result goes to stdout; -w rewrites the document in place.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "Write the result back to the document file instead of stdout.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, loader, err := LoadDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	// Formatting an invalid document would entrench its errors.
	if _, _, err := doc.Summarize(loader); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.write {
		if err := bookkeeping.EncodeDocument(os.Stdout, doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding document: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(*documentFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening document %q: %v\n", *documentFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := bookkeeping.EncodeDocument(out, doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing document %q: %v\n", *documentFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %s\n", *documentFile)
	return subcommands.ExitSuccess
}
