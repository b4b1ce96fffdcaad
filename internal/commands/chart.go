package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/chart"
	"github.com/tallybook-dev/tallybook/internal/report"
)

func newChartCommand(opts *rootOptions) *cobra.Command {
	var months int
	var outDir string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render income/expense charts to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, books, err := opts.open()
			if err != nil {
				return err
			}

			if months < 1 {
				return fmt.Errorf("months must be at least 1")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating output dir: %w", err)
			}

			rates := cfg.ExchangeRates()
			base := cfg.BaseCurrency
			now := time.Now()

			series := report.TransactionsByMonth(books.Transactions(), months, base, rates, now)
			barPath := filepath.Join(outDir, "income-vs-expenses.png")
			if err := writeChart(barPath, func(f *os.File) error {
				return chart.MonthlyBars(f, series)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", barPath)

			slices := report.ExpensesByCategory(books.Transactions(), books.Categories(), base, rates, now)
			if len(slices) == 0 {
				lg := opts.log()
				lg.Warn().Msg("no categorized expenses this month, skipping pie chart")
				return nil
			}
			piePath := filepath.Join(outDir, "expenses-by-category.png")
			if err := writeChart(piePath, func(f *os.File) error {
				return chart.CategoryPie(f, slices)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", piePath)
			return nil
		},
	}

	cmd.Flags().IntVar(&months, "months", 6, "trailing months in the bar chart")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")

	return cmd
}

func writeChart(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}
