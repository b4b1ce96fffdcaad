package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide marks a voucher entry as the debit or credit side.
type EntrySide string

const (
	SideDebit  EntrySide = "debit"
	SideCredit EntrySide = "credit"
)

// VoucherType names the standard voucher kinds.
type VoucherType string

const (
	VoucherContra     VoucherType = "Contra"
	VoucherPayment    VoucherType = "Payment"
	VoucherReceipt    VoucherType = "Receipt"
	VoucherJournal    VoucherType = "Journal"
	VoucherSales      VoucherType = "Sales"
	VoucherPurchase   VoucherType = "Purchase"
	VoucherCreditNote VoucherType = "Credit Note"
	VoucherDebitNote  VoucherType = "Debit Note"
)

// VoucherEntry is one leg of a voucher, posted against a ledger.
type VoucherEntry struct {
	LedgerID    string
	Amount      decimal.Decimal
	Side        EntrySide
	Description string
}

// Voucher is a dated, balanced set of debit/credit entries across ledgers.
// Sum of debit amounts must equal sum of credit amounts; unbalanced vouchers
// are rejected at creation and never stored.
type Voucher struct {
	ID        string
	Number    string // "YYYY-MM-NNN", sequential within the month
	ProfileID string
	Type      VoucherType
	Date      time.Time
	Narration string
	Entries   []VoucherEntry
	Currency  string
	Reference string
}

// Debits returns the sum of the voucher's debit legs.
func (v Voucher) Debits() decimal.Decimal {
	total := decimal.Zero
	for _, e := range v.Entries {
		if e.Side == SideDebit {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Credits returns the sum of the voucher's credit legs.
func (v Voucher) Credits() decimal.Decimal {
	total := decimal.Zero
	for _, e := range v.Entries {
		if e.Side == SideCredit {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Balanced reports whether debits equal credits.
func (v Voucher) Balanced() bool { return v.Debits().Equal(v.Credits()) }
