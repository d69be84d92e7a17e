package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/yearend/bookkeeping/agent"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "Start an interactive session with the AI assistant." }
func (*assistCmd) Usage() string {
	return `bkp assist [<initial prompt>]

  Start an interactive session with an AI assistant that answers questions
  about the computed summary. Requires a GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	_, _, summary, err := Summarize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	raw, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding summary: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewBookkeeper(string(raw)))
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
