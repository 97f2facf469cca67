package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cointrade"
	"cointrade/renderer"

	"github.com/google/subcommands"
)

type walletCmd struct{}

func (*walletCmd) Name() string     { return "wallet" }
func (*walletCmd) Synopsis() string { return "display the cash balance and open positions" }
func (*walletCmd) Usage() string {
	return `coin wallet -u <username>

  Displays the state of the wallet: the cash balance and every open
  position with its average purchase price, live price and profit.
`
}

func (*walletCmd) SetFlags(*flag.FlagSet) {}

func (c *walletCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, err := Username()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()
	if err := Login(store, user); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	engine := cointrade.NewEngine(store, QuoteSource(), user, *fiatFlag)
	report, err := engine.Portfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing wallet: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Wallet(report))
	return subcommands.ExitSuccess
}
