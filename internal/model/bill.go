package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a recurring obligation. Unpaid bills feed the balance sheet as an
// outstanding-liability proxy.
type Bill struct {
	ID        string
	ProfileID string
	Name      string
	Amount    decimal.Decimal
	DueDate   time.Time
	IsPaid    bool
	Currency  string
}
