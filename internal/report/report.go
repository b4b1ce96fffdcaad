// Package report computes financial statements from read-only snapshots of
// transactions, categories, bills, and ledgers. Every function is a pure,
// stateless transform: it never mutates its inputs, touches no shared state,
// and recomputes from the full collections on every call.
package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// BreakdownLine is one category's converted total within a breakdown.
type BreakdownLine struct {
	Category string
	Amount   decimal.Decimal
}

// ProfitLossAccount is a profit & loss statement for a period.
type ProfitLossAccount struct {
	Period           string
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetProfitLoss    decimal.Decimal
	IncomeBreakdown  []BreakdownLine
	ExpenseBreakdown []BreakdownLine
}

// JournalEntry is a simplified single-transaction debit/credit pair.
type JournalEntry struct {
	ID            string
	Date          time.Time
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
	Currency      string
}

// LedgerEntry is one posting in a ledger account's running history.
type LedgerEntry struct {
	Date        time.Time
	Description string
	Debit       bool
	Amount      decimal.Decimal
	Balance     decimal.Decimal
}

// LedgerAccount is a named account's posting history with running balances.
type LedgerAccount struct {
	Name         string
	Entries      []LedgerEntry
	FinalBalance decimal.Decimal
}

// BalanceSheetLine is one asset or liability line.
type BalanceSheetLine struct {
	Name   string
	Amount decimal.Decimal
}

// BalanceSheet is a statement of assets, liabilities, and equity as of a date.
type BalanceSheet struct {
	Date             time.Time
	Assets           []BalanceSheetLine
	TotalAssets      decimal.Decimal
	Liabilities      []BalanceSheetLine
	TotalLiabilities decimal.Decimal
	Equity           decimal.Decimal
}

// MonthlySummary is one month's converted income and expense totals.
type MonthlySummary struct {
	Month    string // "Jan 24"
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// CategorySlice is one category's share of current-month expenses,
// carrying the category's display color for charting.
type CategorySlice struct {
	Name  string
	Value decimal.Decimal
	Color string
}
