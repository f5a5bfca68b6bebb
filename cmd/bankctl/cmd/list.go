package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	Long: `List all accounts in creation order with their balances.

Example:
  bankctl list`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	st := openStore(cfg)
	defer st.Close()

	l := loadLedger(st)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOWNER\tBALANCE")
	for _, a := range l.Accounts() {
		fmt.Fprintf(w, "%s\t%s\t%s %s\n", a.ID, a.OwnerName, a.Balance.StringFixed(2), cfg.Currency)
	}
	w.Flush()
}
