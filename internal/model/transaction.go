package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single cash movement. Amount is always non-negative;
// the direction is carried by Type, never by the amount's sign.
type Transaction struct {
	ID          string
	ProfileID   string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Type        TransactionType
	CategoryID  string // empty = uncategorized
	Currency    string
	LedgerID    string // optional ledger reference
}

// Uncategorized reports whether the transaction has no category reference.
func (t Transaction) Uncategorized() bool { return t.CategoryID == "" }
