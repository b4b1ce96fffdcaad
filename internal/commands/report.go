package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/render"
	"github.com/tallybook-dev/tallybook/internal/report"
	"github.com/tallybook-dev/tallybook/internal/voucher"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var month string
	var year string
	var plain bool

	cmd := &cobra.Command{
		Use:       "report <pnl|balance-sheet|journal|ledgers|trial-balance>",
		Short:     "Render a financial statement for a completed period",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"pnl", "balance-sheet", "journal", "ledgers", "trial-balance"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, books, err := opts.open()
			if err != nil {
				return err
			}

			now := time.Now()
			period, gran, err := resolvePeriod(month, year, now)
			if err != nil {
				return err
			}
			if !dates.Available(period.To, gran, now) {
				return fmt.Errorf("statement for %s is not available until the period has ended", period.Label())
			}

			rates := cfg.ExchangeRates()
			base := cfg.BaseCurrency

			var md string
			switch args[0] {
			case "pnl":
				p := report.ProfitAndLoss(books.Transactions(), books.Categories(), period, base, rates)
				md = render.ProfitAndLoss(p, base)
			case "balance-sheet":
				bs := report.BuildBalanceSheet(books.Transactions(), books.Bills(), base, rates, period.To)
				md = render.BalanceSheet(bs, base)
			case "journal":
				entries := report.BuildJournal(books.Transactions(), books.Categories(), period, base, rates)
				md = render.Journal(entries, base)
			case "ledgers":
				entries := report.BuildJournal(books.Transactions(), books.Categories(), period, base, rates)
				md = render.Ledgers(sortedAccounts(report.BuildLedgerAccounts(entries)), base)
			case "trial-balance":
				balances := voucher.LedgerBalances(books.Vouchers(), books.Ledgers(), books.AccountGroups(), period)
				md = render.TrialBalance(sortedBalances(balances), period.Label(), base)
			default:
				return fmt.Errorf("unknown report %q", args[0])
			}

			if plain {
				fmt.Fprint(cmd.OutOrStdout(), md)
			} else {
				fmt.Fprint(cmd.OutOrStdout(), render.Terminal(md))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "monthly period as YYYY-MM (default previous month)")
	cmd.Flags().StringVar(&year, "year", "", "yearly period as YYYY")
	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown without terminal styling")
	cmd.MarkFlagsMutuallyExclusive("month", "year")

	return cmd
}

// resolvePeriod picks the reporting window: an explicit month or year, or
// the previous calendar month by default (the latest month the gate can
// ever allow).
func resolvePeriod(month, year string, now time.Time) (dates.Range, dates.Granularity, error) {
	if year != "" {
		t, err := time.Parse("2006", year)
		if err != nil {
			return dates.Range{}, "", fmt.Errorf("invalid year %q, want YYYY: %w", year, err)
		}
		return dates.YearOf(t), dates.Yearly, nil
	}
	if month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return dates.Range{}, "", fmt.Errorf("invalid month %q, want YYYY-MM: %w", month, err)
		}
		return dates.MonthOf(t), dates.Monthly, nil
	}

	prev := dates.StartOfMonth(now).AddDate(0, -1, 0)
	return dates.MonthOf(prev), dates.Monthly, nil
}

func sortedAccounts(accounts map[string]report.LedgerAccount) []report.LedgerAccount {
	out := make([]report.LedgerAccount, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedBalances(balances map[string]voucher.LedgerBalance) []voucher.LedgerBalance {
	out := make([]voucher.LedgerBalance, 0, len(balances))
	for _, b := range balances {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ledger.Name < out[j].Ledger.Name })
	return out
}
