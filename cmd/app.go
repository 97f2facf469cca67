// Package cmd implements the CLI application to manage a paper-trading
// wallet.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cointrade"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// A main package will range over Commands and Register each one.
var Commands = []subcommands.Command{
	&initCmd{},
	&listCmd{},
	&searchCmd{},
	&buyCmd{},
	&sellCmd{},
	&walletCmd{},
	&txCmd{},
	&tradeCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const apiKeyEnv = "COINMARKET_API_KEY"

var (
	dbFile   = flag.String("db", "storage/database.sqlite", "Path to the SQLite wallet database")
	userFlag = flag.String("u", "", "Wallet username")
	fiatFlag = flag.String("fiat", "USD", "Fiat currency balances and quotes are reported in")
	apiFlag  = flag.String("api-key", "", "CoinMarketCap API key.\n If missing it is read from the "+apiKeyEnv+" environment variable (a .env file is honored)")
)

// OpenStore opens the wallet database named by the -db flag.
func OpenStore() (*cointrade.Store, error) {
	return cointrade.Open(*dbFile)
}

// QuoteSource builds the live price client from the -api-key flag, the
// environment, or a .env file.
func QuoteSource() cointrade.QuoteSource {
	key := *apiFlag
	if key == "" {
		_ = godotenv.Load() // a missing .env file is fine
		key = os.Getenv(apiKeyEnv)
	}
	if key == "" {
		log.Printf("no CoinMarketCap API key set (flag -api-key or %s), quotes will fail", apiKeyEnv)
	}
	return cointrade.NewCoinMarketClient(key, "")
}

// Username returns the wallet user from the -u flag, prompting if absent.
func Username() (string, error) {
	if *userFlag != "" {
		return *userFlag, nil
	}
	var user string
	prompt := &survey.Input{Message: "Username:"}
	if err := survey.AskOne(prompt, &user, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return user, nil
}

// Login prompts for the user's password and verifies it against the store.
func Login(store *cointrade.Store, user string) error {
	var password string
	prompt := &survey.Password{Message: fmt.Sprintf("Password for %s:", user)}
	if err := survey.AskOne(prompt, &password); err != nil {
		return err
	}
	return store.Login(context.Background(), user, password)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer is unavailable (e.g. a dumb terminal or a pipe).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
