package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// withdrawCmd represents the withdraw command.
var withdrawCmd = &cobra.Command{
	Use:   "withdraw ACCOUNT_ID AMOUNT",
	Short: "Withdraw funds from an account",
	Long: `Withdraw a positive amount from the given account. Overdrafts are
rejected and leave the balance unchanged.

Example:
  bankctl withdraw 7f8c1a2b-... 20.00`,
	Args: cobra.ExactArgs(2),
	Run:  runWithdraw,
}

func runWithdraw(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	amount, err := decimal.NewFromString(args[1])
	exitOnError(err, "invalid amount")

	st := openStore(cfg)
	defer st.Close()

	l := loadLedger(st)

	acct, err := l.Withdraw(args[0], amount)
	exitOnError(err, "failed to withdraw")

	saveLedger(st, l)

	slog.Info("Withdrawal applied", "id", acct.ID, "amount", amount.String())
	fmt.Printf("%s %s\n", acct.Balance.StringFixed(2), cfg.Currency)
}
