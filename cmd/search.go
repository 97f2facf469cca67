package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"cointrade"
	"cointrade/renderer"

	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "look up a crypto currency by its ticker symbol" }
func (*searchCmd) Usage() string {
	return `coin search <symbol>

  Shows the live quote for a single ticker symbol, e.g. "coin search BTC".
`
}

func (*searchCmd) SetFlags(*flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(f.Arg(0))

	quote, err := QuoteSource().Quote(ctx, symbol, *fiatFlag)
	if errors.Is(err, cointrade.ErrSymbolNotFound) {
		fmt.Fprintf(os.Stderr, "%s not found\n", symbol)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quote: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Quotes([]cointrade.Quote{quote}))
	return subcommands.ExitSuccess
}
