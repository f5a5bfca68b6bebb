package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// balanceCmd represents the balance command.
var balanceCmd = &cobra.Command{
	Use:   "balance ACCOUNT_ID",
	Short: "Show an account's current balance",
	Long: `Print the current balance of the given account.

Example:
  bankctl balance 7f8c1a2b-...`,
	Args: cobra.ExactArgs(1),
	Run:  runBalance,
}

func runBalance(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	st := openStore(cfg)
	defer st.Close()

	l := loadLedger(st)

	balance, err := l.Balance(args[0])
	exitOnError(err, "failed to get balance")

	fmt.Printf("%s %s\n", balance.StringFixed(2), cfg.Currency)
}
