// Package cmd implements the CLI application to compute yearly bookkeeping.
package cmd

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
	"github.com/yearend/bookkeeping"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&logCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&checkCmd{}, "documents")
	c.Register(&fmtCmd{}, "documents")
	c.Register(&exportCmd{}, "documents")

	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var documentFile = flag.String("f", "year.json", "Path to the bookkeeping document (JSON format)")

// LoadDocument decodes the app document and returns it with its loader.
func LoadDocument() (*bookkeeping.Document, bookkeeping.Loader, error) {
	doc, err := bookkeeping.LoadDocument(*documentFile)
	if err != nil {
		return nil, nil, err
	}
	if doc.Accounts.Len() == 0 {
		log.Println("warning, document declares no accounts, every transfer will fail validation")
	}
	return doc, bookkeeping.DocumentLoader(*documentFile), nil
}

// Summarize runs the whole pipeline on the app document.
func Summarize() (*bookkeeping.Document, *bookkeeping.Ledger, *bookkeeping.Summary, error) {
	doc, loader, err := LoadDocument()
	if err != nil {
		return nil, nil, nil, err
	}
	ledger, summary, err := doc.Summarize(loader)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("in document %q: %w", *documentFile, err)
	}
	return doc, ledger, summary, nil
}
