package cmd

import (
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// transferCmd represents the transfer command.
var transferCmd = &cobra.Command{
	Use:   "transfer FROM_ID TO_ID AMOUNT",
	Short: "Transfer funds between two accounts",
	Long: `Atomically move a positive amount from one account to another.
Either both balance changes apply or neither does.

Example:
  bankctl transfer 7f8c1a2b-... 3e9d4c5f-... 50.00`,
	Args: cobra.ExactArgs(3),
	Run:  runTransfer,
}

func runTransfer(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	amount, err := decimal.NewFromString(args[2])
	exitOnError(err, "invalid amount")

	st := openStore(cfg)
	defer st.Close()

	l := loadLedger(st)

	err = l.Transfer(args[0], args[1], amount)
	exitOnError(err, "failed to transfer")

	saveLedger(st, l)

	slog.Info("Transfer applied", "from", args[0], "to", args[1], "amount", amount.String())
}
