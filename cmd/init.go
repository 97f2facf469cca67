package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cointrade"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/subcommands"
)

type initCmd struct {
	balance float64
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a wallet with an opening cash balance" }
func (*initCmd) Usage() string {
	return `coin init -u <username> [-balance <amount>]

  Provisions a new wallet: the user row, its password, and the opening
  cash balance the simulator trades against.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.balance, "balance", 1000, "Opening cash balance")
}

func (c *initCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, err := Username()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.balance < 0 {
		fmt.Fprintln(os.Stderr, "Error: opening balance must not be negative")
		return subcommands.ExitUsageError
	}

	var password string
	prompt := &survey.Password{Message: fmt.Sprintf("Choose a password for %s:", user)}
	if err := survey.AskOne(prompt, &password, survey.WithValidator(survey.MinLength(4))); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var confirm string
	if err := survey.AskOne(&survey.Password{Message: "Confirm password:"}, &confirm); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if password != confirm {
		fmt.Fprintln(os.Stderr, "Error: passwords do not match")
		return subcommands.ExitFailure
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	opening := cointrade.M(c.balance, *fiatFlag)
	if err := store.CreateWallet(ctx, user, password, opening); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating wallet: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created wallet %q with an opening balance of %s\n", user, opening)
	return subcommands.ExitSuccess
}
