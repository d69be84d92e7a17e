package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/yearend/bookkeeping/cmd"
)

// completion describes the CLI for shell completion. Running the binary
// through a completion hook (COMP_LINE set) prints candidates and exits.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"f": predict.Files("*.json"),
	},
	Sub: map[string]*complete.Command{
		"summary": {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
		"log":     {},
		"query":   {},
		"check":   {Args: predict.Files("*.json")},
		"fmt":     {Flags: map[string]complete.Predictor{"w": predict.Nothing}},
		"export":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.db")}},
		"assist":  {},
		"topic":   {Args: predict.Set{"readme", "format", "kinds", "groupings"}},
	},
}

func main() {
	completion.Complete("bkp")

	// Optional .env, for GEMINI_API_KEY and friends.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
