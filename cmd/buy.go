package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"cointrade"
	"cointrade/renderer"

	"github.com/google/subcommands"
)

type buyCmd struct {
	symbol string
	amount string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "purchase crypto at the live price" }
func (*buyCmd) Usage() string {
	return `coin buy -u <username> -s <symbol> -a <amount>

  Purchases an amount of a crypto currency at the current market price.
  The cost is debited from the wallet's cash balance.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol to purchase")
	f.StringVar(&c.amount, "a", "", "Amount to purchase (decimal)")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return executeTrade(f, c.symbol, c.amount, func(e *cointrade.Engine, amount cointrade.Quantity) (cointrade.Transaction, error) {
		return e.Buy(ctx, strings.ToUpper(c.symbol), amount)
	})
}

// executeTrade runs the shared flow of buy and sell: resolve the user, log
// in, parse the amount, run the trade, and report the outcome.
func executeTrade(f *flag.FlagSet, symbol, amount string,
	trade func(*cointrade.Engine, cointrade.Quantity) (cointrade.Transaction, error)) subcommands.ExitStatus {

	if symbol == "" || amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	qty, err := cointrade.ParseQuantity(amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

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
	tx, err := trade(engine, qty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
