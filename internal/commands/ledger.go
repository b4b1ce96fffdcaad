package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/model"
	"github.com/tallybook-dev/tallybook/internal/store"
)

func newLedgerCommand(opts *rootOptions) *cobra.Command {
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Manage ledger accounts",
	}
	ledgerCmd.AddCommand(newLedgerAddCommand(opts), newLedgerListCommand(opts))
	return ledgerCmd
}

func newLedgerAddCommand(opts *rootOptions) *cobra.Command {
	var name string
	var group string
	var opening string
	var currency string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a ledger account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, books, err := opts.open()
			if err != nil {
				return err
			}

			groupID, err := resolveAccountGroup(books, group)
			if err != nil {
				return err
			}

			open := decimal.Zero
			if opening != "" {
				open, err = decimal.NewFromString(opening)
				if err != nil {
					return fmt.Errorf("invalid opening balance %q: %w", opening, err)
				}
			}
			if currency == "" {
				currency = cfg.BaseCurrency
			}

			l, err := books.AddLedger(model.Ledger{
				ProfileID:      cfg.Profile.ID,
				Name:           name,
				AccountGroupID: groupID,
				OpeningBalance: open,
				Currency:       currency,
			})
			if err != nil {
				return err
			}

			details := fmt.Sprintf("ledger: add %s (%s)", name, group)
			if err := opts.saveAndRecord(cfg, books, "add_ledger", details, l.ID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added ledger %s (%s)\n", name, l.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "ledger name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&group, "group", "", "account group name or ID (required)")
	_ = cmd.MarkFlagRequired("group")
	cmd.Flags().StringVar(&opening, "opening", "", "opening balance (default 0)")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (default base currency)")

	return cmd
}

func newLedgerListCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, books, err := opts.open()
			if err != nil {
				return err
			}

			groups := make(map[string]model.AccountGroup, len(books.AccountGroups()))
			for _, g := range books.AccountGroups() {
				groups[g.ID] = g
			}

			for _, l := range books.Ledgers() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s %s\t%s\n",
					l.ID, l.Name, l.OpeningBalance.StringFixed(2), l.Currency, groups[l.AccountGroupID].Name)
			}
			return nil
		},
	}
	return cmd
}

// resolveAccountGroup matches a group by ID or case-insensitive name.
func resolveAccountGroup(books *store.Books, s string) (string, error) {
	for _, g := range books.AccountGroups() {
		if g.ID == s || strings.EqualFold(g.Name, s) {
			return g.ID, nil
		}
	}
	return "", fmt.Errorf("unknown account group %q", s)
}

// resolveLedger matches a ledger by ID or case-insensitive name.
func resolveLedger(books *store.Books, s string) (model.Ledger, error) {
	for _, l := range books.Ledgers() {
		if l.ID == s || strings.EqualFold(l.Name, s) {
			return l, nil
		}
	}
	return model.Ledger{}, fmt.Errorf("unknown ledger %q", s)
}
