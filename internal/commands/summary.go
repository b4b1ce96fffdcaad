package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/render"
	"github.com/tallybook-dev/tallybook/internal/report"
)

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show total balance and current-month activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, books, err := opts.open()
			if err != nil {
				return err
			}

			rates := cfg.ExchangeRates()
			base := cfg.BaseCurrency
			now := time.Now()

			total := report.TotalBalance(books.Ledgers(), base, rates)
			income := report.MonthlyIncome(books.Transactions(), base, rates, now)
			expenses := report.MonthlyExpenses(books.Transactions(), base, rates, now)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total balance:   %s\n", render.FormatMoney(total, base))
			fmt.Fprintf(out, "Income (%s):  %s\n", now.Format("Jan 06"), render.FormatMoney(income, base))
			fmt.Fprintf(out, "Expenses (%s): %s\n", now.Format("Jan 06"), render.FormatMoney(expenses, base))
			return nil
		},
	}
	return cmd
}
