package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/model"
	"github.com/tallybook-dev/tallybook/internal/store"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
	}
	addCmd.AddCommand(
		newAddTransactionCommand(opts, model.TypeIncome),
		newAddTransactionCommand(opts, model.TypeExpense),
	)
	return addCmd
}

func newAddTransactionCommand(opts *rootOptions, typ model.TransactionType) *cobra.Command {
	var amount string
	var date string
	var description string
	var category string
	var currency string

	cmd := &cobra.Command{
		Use:   string(typ),
		Short: fmt.Sprintf("Record an %s transaction", typ),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, books, err := opts.open()
			if err != nil {
				return err
			}

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}

			day := dates.Day(time.Now())
			if date != "" {
				day, err = dates.ParseDay(date)
				if err != nil {
					return err
				}
			}

			if currency == "" {
				currency = cfg.BaseCurrency
			}

			catID := ""
			if category != "" {
				catID, err = resolveCategory(books, category)
				if err != nil {
					return err
				}
			}

			tx, err := books.AddTransaction(model.Transaction{
				ProfileID:   cfg.Profile.ID,
				Amount:      amt,
				Date:        day,
				Description: description,
				Type:        typ,
				CategoryID:  catID,
				Currency:    currency,
			})
			if err != nil {
				return err
			}

			details := fmt.Sprintf("add: %s %s %s", typ, amt.StringFixed(2), currency)
			if err := opts.saveAndRecord(cfg, books, "add_transaction", details, tx.ID); err != nil {
				return err
			}

			lg := opts.log()
			lg.Info().Str("id", tx.ID).Str("type", string(typ)).Msg("transaction recorded")
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s %s (%s)\n", typ, amt.StringFixed(2), currency, tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount, non-negative (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")
	cmd.Flags().StringVar(&category, "category", "", "category name or ID")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (default base currency)")

	return cmd
}

// resolveCategory matches a category by ID or case-insensitive name.
func resolveCategory(books *store.Books, s string) (string, error) {
	for _, c := range books.Categories() {
		if c.ID == s || strings.EqualFold(c.Name, s) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
