package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cointrade/renderer"

	"github.com/google/subcommands"
)

type listCmd struct {
	page int
	size int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the top crypto currencies by market-cap rank" }
func (*listCmd) Usage() string {
	return `coin list [-page <n>] [-n <size>]

  Lists the top crypto currencies with their live prices.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.page, "page", 1, "Page to display, starting at 1")
	f.IntVar(&c.size, "n", 10, "Number of currencies per page")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quotes, err := QuoteSource().List(ctx, c.page, c.size, *fiatFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching listing: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Quotes(quotes))
	return subcommands.ExitSuccess
}
