package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"cointrade"
	"cointrade/renderer"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/subcommands"
)

const (
	menuList   = "List top crypto currencies"
	menuSearch = "Search crypto by its ticker symbol"
	menuBuy    = "Purchase crypto"
	menuSell   = "Sell crypto"
	menuWallet = "Display state of wallet"
	menuTx     = "Display transaction list"
	menuExit   = "Exit"
)

type tradeCmd struct{}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "start an interactive trading session" }
func (*tradeCmd) Usage() string {
	return `coin trade -u <username>

  Logs in and starts a menu-driven trading session: list and search live
  prices, buy and sell, inspect the wallet and the transaction history.
`
}

func (*tradeCmd) SetFlags(*flag.FlagSet) {}

func (c *tradeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	quotes := QuoteSource()
	engine := cointrade.NewEngine(store, quotes, user, *fiatFlag)

	for {
		var choice string
		menu := &survey.Select{
			Message: "What would you like to do?",
			Options: []string{menuList, menuSearch, menuBuy, menuSell, menuWallet, menuTx, menuExit},
		}
		if err := survey.AskOne(menu, &choice); err != nil {
			// Ctrl-C in the prompt ends the session.
			fmt.Println("Goodbye")
			return subcommands.ExitSuccess
		}

		switch choice {
		case menuList:
			listing, err := quotes.List(ctx, 1, 10, *fiatFlag)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			printMarkdown(renderer.Quotes(listing))

		case menuSearch:
			symbol, err := promptSymbol("Enter ticker symbol:")
			if err != nil {
				continue
			}
			quote, err := quotes.Quote(ctx, symbol, *fiatFlag)
			if errors.Is(err, cointrade.ErrSymbolNotFound) {
				fmt.Printf("%s not found\n", symbol)
				continue
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			printMarkdown(renderer.Quotes([]cointrade.Quote{quote}))

		case menuBuy:
			runInteractiveTrade(ctx, engine.Buy, "buy")

		case menuSell:
			runInteractiveTrade(ctx, engine.Sell, "sell")

		case menuWallet:
			report, err := engine.Portfolio(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			printMarkdown(renderer.Wallet(report))

		case menuTx:
			ledger, err := engine.History(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			printMarkdown(renderer.Transactions(ledger))

		case menuExit:
			fmt.Println("Goodbye")
			return subcommands.ExitSuccess
		}
	}
}

// runInteractiveTrade prompts for a symbol and an amount and runs one trade.
// Validation failures are expected outcomes: they are shown and the menu is
// offered again.
func runInteractiveTrade(ctx context.Context, trade func(context.Context, string, cointrade.Quantity) (cointrade.Transaction, error), verb string) {
	symbol, err := promptSymbol(fmt.Sprintf("Enter crypto symbol to %s:", verb))
	if err != nil {
		return
	}
	amount, err := promptAmount(fmt.Sprintf("Enter amount of %s to %s:", symbol, verb))
	if err != nil {
		return
	}
	tx, err := trade(ctx, symbol, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(renderer.Transaction(tx))
}

var symbolPattern = regexp.MustCompile(`^[A-Z0-9.-]+$`)

func promptSymbol(message string) (string, error) {
	var symbol string
	prompt := &survey.Input{Message: message}
	err := survey.AskOne(prompt, &symbol, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(strings.ToUpper(val.(string)))
		if len(str) == 0 {
			return fmt.Errorf("symbol cannot be empty")
		}
		if len(str) > 10 {
			return fmt.Errorf("symbol too long (max 10 characters)")
		}
		if !symbolPattern.MatchString(str) {
			return fmt.Errorf("invalid symbol format (use letters, numbers, dots, and hyphens only)")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.ToUpper(symbol)), nil
}

func promptAmount(message string) (cointrade.Quantity, error) {
	var raw string
	prompt := &survey.Input{Message: message}
	err := survey.AskOne(prompt, &raw, survey.WithValidator(func(val interface{}) error {
		q, err := cointrade.ParseQuantity(strings.TrimSpace(val.(string)))
		if err != nil {
			return fmt.Errorf("invalid decimal amount")
		}
		if !q.IsPositive() {
			return fmt.Errorf("amount must be positive")
		}
		return nil
	}))
	if err != nil {
		return cointrade.Quantity{}, err
	}
	return cointrade.ParseQuantity(strings.TrimSpace(raw))
}
