package model

import "github.com/shopspring/decimal"

// GroupType classifies account groups into the five standard accounting
// categories.
type GroupType string

const (
	GroupAsset     GroupType = "asset"
	GroupLiability GroupType = "liability"
	GroupEquity    GroupType = "equity"
	GroupIncome    GroupType = "income"
	GroupExpense   GroupType = "expense"
)

// AccountGroup is a hierarchical classification node for ledgers.
// ParentID forms a tree; top-level groups have an empty ParentID.
type AccountGroup struct {
	ID       string
	Name     string
	ParentID string
	Type     GroupType
}

// Ledger is a named financial account (cash, bank, sales, etc.).
// Its opening balance participates in total-balance computation independent
// of transaction history.
type Ledger struct {
	ID             string
	ProfileID      string
	Name           string
	AccountGroupID string
	OpeningBalance decimal.Decimal
	Currency       string
	IsContra       bool
}
