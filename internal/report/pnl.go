package report

import (
	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/fx"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// sumConverted totals the transactions converted into baseCurrency.
func sumConverted(txns []model.Transaction, baseCurrency string, rates fx.Rates) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(fx.Convert(t.Amount, t.Currency, baseCurrency, rates))
	}
	return total
}

// ProfitAndLoss builds a profit & loss statement for the period. Totals
// include every transaction in the window, categorized or not; the
// breakdowns follow BreakdownByCategory's rules. No rounding is applied.
func ProfitAndLoss(txns []model.Transaction, categories []model.Category, period dates.Range, baseCurrency string, rates fx.Rates) ProfitLossAccount {
	income := FilterByPeriod(txns, period, model.TypeIncome)
	expenses := FilterByPeriod(txns, period, model.TypeExpense)

	totalIncome := sumConverted(income, baseCurrency, rates)
	totalExpenses := sumConverted(expenses, baseCurrency, rates)

	return ProfitLossAccount{
		Period:           period.Label(),
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		NetProfitLoss:    totalIncome.Sub(totalExpenses),
		IncomeBreakdown:  BreakdownByCategory(income, categories, baseCurrency, rates),
		ExpenseBreakdown: BreakdownByCategory(expenses, categories, baseCurrency, rates),
	}
}
