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

func newVoucherCommand(opts *rootOptions) *cobra.Command {
	voucherCmd := &cobra.Command{
		Use:   "voucher",
		Short: "Double-entry vouchers",
	}
	voucherCmd.AddCommand(newVoucherCreateCommand(opts))
	return voucherCmd
}

func newVoucherCreateCommand(opts *rootOptions) *cobra.Command {
	var date string
	var vtype string
	var narration string
	var currency string
	var debits []string
	var credits []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a balanced voucher",
		Long: `Create a voucher from debit and credit legs. Each leg is
"<ledger>:<amount>", where the ledger is a name or ID. Debits must equal
credits or the voucher is rejected whole.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, books, err := opts.open()
			if err != nil {
				return err
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

			var entries []model.VoucherEntry
			for _, leg := range debits {
				e, err := parseLeg(books, leg, model.SideDebit)
				if err != nil {
					return err
				}
				entries = append(entries, e)
			}
			for _, leg := range credits {
				e, err := parseLeg(books, leg, model.SideCredit)
				if err != nil {
					return err
				}
				entries = append(entries, e)
			}

			v, err := books.CreateVoucher(model.Voucher{
				ProfileID: cfg.Profile.ID,
				Type:      model.VoucherType(vtype),
				Date:      day,
				Narration: narration,
				Entries:   entries,
				Currency:  currency,
			})
			if err != nil {
				return err
			}

			details := fmt.Sprintf("voucher: %s %s", v.Number, narration)
			if err := opts.saveAndRecord(cfg, books, "create_voucher", details, v.ID); err != nil {
				return err
			}

			lg := opts.log()
			lg.Info().Str("number", v.Number).Msg("voucher created")
			fmt.Fprintf(cmd.OutOrStdout(), "Created voucher %s\n", v.Number)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&vtype, "type", string(model.VoucherJournal), "voucher type")
	cmd.Flags().StringVar(&narration, "narration", "", "narration text")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code (default base currency)")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "debit leg as <ledger>:<amount>, repeatable")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "credit leg as <ledger>:<amount>, repeatable")

	return cmd
}

// parseLeg splits "<ledger>:<amount>" and resolves the ledger reference.
// Ledger names may themselves contain colons, so the split is on the last one.
func parseLeg(books *store.Books, leg string, side model.EntrySide) (model.VoucherEntry, error) {
	i := strings.LastIndex(leg, ":")
	if i < 1 || i == len(leg)-1 {
		return model.VoucherEntry{}, fmt.Errorf("invalid leg %q, want <ledger>:<amount>", leg)
	}

	ledger, err := resolveLedger(books, leg[:i])
	if err != nil {
		return model.VoucherEntry{}, err
	}
	amount, err := decimal.NewFromString(leg[i+1:])
	if err != nil {
		return model.VoucherEntry{}, fmt.Errorf("invalid amount in leg %q: %w", leg, err)
	}

	return model.VoucherEntry{
		LedgerID: ledger.ID,
		Amount:   amount,
		Side:     side,
	}, nil
}
