package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// depositCmd represents the deposit command.
var depositCmd = &cobra.Command{
	Use:   "deposit ACCOUNT_ID AMOUNT",
	Short: "Deposit funds into an account",
	Long: `Deposit a positive amount into the given account.

Example:
  bankctl deposit 7f8c1a2b-... 50.00`,
	Args: cobra.ExactArgs(2),
	Run:  runDeposit,
}

func runDeposit(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	amount, err := decimal.NewFromString(args[1])
	exitOnError(err, "invalid amount")

	st := openStore(cfg)
	defer st.Close()

	l := loadLedger(st)

	acct, err := l.Deposit(args[0], amount)
	exitOnError(err, "failed to deposit")

	saveLedger(st, l)

	slog.Info("Deposit applied", "id", acct.ID, "amount", amount.String())
	fmt.Printf("%s %s\n", acct.Balance.StringFixed(2), cfg.Currency)
}
