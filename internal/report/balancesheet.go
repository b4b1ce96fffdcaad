package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/fx"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// BuildBalanceSheet derives a balance sheet as of endDate from cumulative
// transaction history and outstanding bills. Assets are a single synthetic
// "Cash & Bank" line (running net of income minus expenses dated on or
// before endDate); liabilities are a single "Outstanding Bills" line (unpaid
// bills due on or before endDate). Equity closes the identity
// equity = assets - liabilities.
func BuildBalanceSheet(txns []model.Transaction, bills []model.Bill, baseCurrency string, rates fx.Rates, endDate time.Time) BalanceSheet {
	cash := decimal.Zero
	for _, t := range txns {
		if t.Date.After(endDate) {
			continue
		}
		converted := fx.Convert(t.Amount, t.Currency, baseCurrency, rates)
		switch t.Type {
		case model.TypeIncome:
			cash = cash.Add(converted)
		case model.TypeExpense:
			cash = cash.Sub(converted)
		}
	}

	outstanding := decimal.Zero
	for _, b := range bills {
		if b.IsPaid || b.DueDate.After(endDate) {
			continue
		}
		outstanding = outstanding.Add(fx.Convert(b.Amount, b.Currency, baseCurrency, rates))
	}

	return BalanceSheet{
		Date:             endDate,
		Assets:           []BalanceSheetLine{{Name: "Cash & Bank", Amount: cash}},
		TotalAssets:      cash,
		Liabilities:      []BalanceSheetLine{{Name: "Outstanding Bills", Amount: outstanding}},
		TotalLiabilities: outstanding,
		Equity:           cash.Sub(outstanding),
	}
}
