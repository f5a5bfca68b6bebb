package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var openingBalance string

// createCmd represents the create command.
var createCmd = &cobra.Command{
	Use:   "create OWNER",
	Short: "Create a new account",
	Long: `Create a new account for the given owner and print its ID.

Example:
  bankctl create "Alice"
  bankctl create "Bob" --opening 250.00`,
	Args: cobra.ExactArgs(1),
	Run:  runCreate,
}

func init() {
	createCmd.Flags().StringVar(&openingBalance, "opening", "0", "Opening balance")
}

func runCreate(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	opening, err := decimal.NewFromString(openingBalance)
	exitOnError(err, "invalid opening balance")

	st := openStore(cfg)
	defer st.Close()

	l := loadLedger(st)

	id, err := l.CreateAccount(args[0], opening)
	exitOnError(err, "failed to create account")

	saveLedger(st, l)

	slog.Info("Account created", "id", id, "owner", args[0], "opening", opening.String())
	fmt.Println(id)
}
