package cmd

import (
	"context"
	"flag"
	"strings"

	"cointrade"

	"github.com/google/subcommands"
)

type sellCmd struct {
	symbol string
	amount string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell crypto at the live price" }
func (*sellCmd) Usage() string {
	return `coin sell -u <username> -s <symbol> -a <amount>

  Sells an amount of a held crypto currency at the current market price.
  The proceeds are credited to the wallet's cash balance.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Ticker symbol to sell")
	f.StringVar(&c.amount, "a", "", "Amount to sell (decimal)")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return executeTrade(f, c.symbol, c.amount, func(e *cointrade.Engine, amount cointrade.Quantity) (cointrade.Transaction, error) {
		return e.Sell(ctx, strings.ToUpper(c.symbol), amount)
	})
}
