package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/model"
	"github.com/tallybook-dev/tallybook/internal/store"
)

func newBillCommand(opts *rootOptions) *cobra.Command {
	billCmd := &cobra.Command{
		Use:   "bill",
		Short: "Track upcoming bills",
	}
	billCmd.AddCommand(newBillAddCommand(opts), newBillPayCommand(opts))
	return billCmd
}

func newBillAddCommand(opts *rootOptions) *cobra.Command {
	var name string
	var amount string
	var due string
	var currency string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an upcoming bill",
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
			dueDate, err := dates.ParseDay(due)
			if err != nil {
				return err
			}
			if currency == "" {
				currency = cfg.BaseCurrency
			}

			bill, err := books.AddBill(model.Bill{
				ProfileID: cfg.Profile.ID,
				Name:      name,
				Amount:    amt,
				DueDate:   dueDate,
				Currency:  currency,
			})
			if err != nil {
				return err
			}

			details := fmt.Sprintf("bill: add %s %s %s", name, amt.StringFixed(2), currency)
			if err := opts.saveAndRecord(cfg, books, "add_bill", details, bill.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added bill %s due %s (%s)\n", name, dueDate.Format(dates.DayFormat), bill.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "bill name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&amount, "amount", "", "amount due (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&due, "due", "", "due date as YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("due")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (default base currency)")

	return cmd
}

func newBillPayCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay <bill>",
		Short: "Mark a bill as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, books, err := opts.open()
			if err != nil {
				return err
			}

			bill, err := resolveBill(books, args[0])
			if err != nil {
				return err
			}
			if err := books.PayBill(bill.ID); err != nil {
				return err
			}

			details := "bill: pay " + bill.Name
			if err := opts.saveAndRecord(cfg, books, "pay_bill", details, bill.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Paid bill %s\n", bill.Name)
			return nil
		},
	}
	return cmd
}

// resolveBill matches a bill by ID or case-insensitive name.
func resolveBill(books *store.Books, s string) (model.Bill, error) {
	for _, b := range books.Bills() {
		if b.ID == s || strings.EqualFold(b.Name, s) {
			return b, nil
		}
	}
	return model.Bill{}, fmt.Errorf("unknown bill %q", s)
}
