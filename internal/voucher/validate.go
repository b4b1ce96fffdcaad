// Package voucher is the double-entry side of the books: balanced vouchers
// posted across ledgers, validated before storage, and folded into genuine
// per-ledger journals and balances. It is deliberately separate from the
// simplified transaction-derived reports in the report package; the two
// produce different views and are never merged.
package voucher

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// ValidationError describes a single invariant violation on a voucher.
type ValidationError struct {
	Invariant   int
	VoucherID   string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.VoucherID, e.Description)
}

// LedgerChecker tests whether a ledger ID exists.
type LedgerChecker interface {
	Exists(id string) bool
}

// Validate enforces the voucher invariants:
//
//  1. Sum of debit legs equals sum of credit legs.
//  2. The voucher has at least two legs.
//  3. Every leg references a known ledger.
//  4. Every leg amount is positive with a known side.
//  5. Amounts carry at most 2 decimal places.
//
// A voucher failing any invariant must be rejected whole, never partially
// stored.
func Validate(v model.Voucher, ledgers LedgerChecker) []ValidationError {
	var errs []ValidationError

	if !v.Balanced() {
		errs = append(errs, ValidationError{
			Invariant: 1,
			VoucherID: v.ID,
			Description: fmt.Sprintf("debits (%s) != credits (%s)",
				v.Debits().StringFixed(2), v.Credits().StringFixed(2)),
		})
	}

	if len(v.Entries) < 2 {
		errs = append(errs, ValidationError{
			Invariant:   2,
			VoucherID:   v.ID,
			Description: fmt.Sprintf("voucher has %d legs, need at least 2", len(v.Entries)),
		})
	}

	hundred := decimal.NewFromInt(100)
	for i, e := range v.Entries {
		if !ledgers.Exists(e.LedgerID) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				VoucherID:   v.ID,
				Description: fmt.Sprintf("leg %d: unknown ledger %q", i, e.LedgerID),
			})
		}

		if !e.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				Invariant:   4,
				VoucherID:   v.ID,
				Description: fmt.Sprintf("leg %d: amount %s is not positive", i, e.Amount),
			})
		}
		if e.Side != model.SideDebit && e.Side != model.SideCredit {
			errs = append(errs, ValidationError{
				Invariant:   4,
				VoucherID:   v.ID,
				Description: fmt.Sprintf("leg %d: unknown side %q", i, e.Side),
			})
		}

		scaled := e.Amount.Mul(hundred)
		if !scaled.Equal(scaled.Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   5,
				VoucherID:   v.ID,
				Description: fmt.Sprintf("leg %d: amount %s has more than 2 decimal places", i, e.Amount),
			})
		}
	}

	return errs
}
