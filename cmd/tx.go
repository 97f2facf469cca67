package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cointrade/renderer"

	"github.com/google/subcommands"
)

type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*txCmd) Usage() string {
	return `coin tx -u <username> [-head <n>] [-tail <n>]

  Lists the wallet's transactions, oldest first, with options for limiting
  the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
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

	ledger, err := store.Transactions(ctx, user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.head > 0 && len(ledger) > c.head {
		ledger = ledger[:c.head]
	}
	if c.tail > 0 && len(ledger) > c.tail {
		ledger = ledger[len(ledger)-c.tail:]
	}

	printMarkdown(renderer.Transactions(ledger))
	return subcommands.ExitSuccess
}
