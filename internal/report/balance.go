package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/fx"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// TotalBalance sums each ledger's opening balance converted into
// baseCurrency. Transaction activity is intentionally excluded: "balance"
// here means the sum of opening balances only.
func TotalBalance(ledgers []model.Ledger, baseCurrency string, rates fx.Rates) decimal.Decimal {
	total := decimal.Zero
	for _, l := range ledgers {
		total = total.Add(fx.Convert(l.OpeningBalance, l.Currency, baseCurrency, rates))
	}
	return total
}

// MonthlyIncome totals income for the calendar month containing now.
func MonthlyIncome(txns []model.Transaction, baseCurrency string, rates fx.Rates, now time.Time) decimal.Decimal {
	month := dates.MonthOf(now)
	return sumConverted(FilterByPeriod(txns, month, model.TypeIncome), baseCurrency, rates)
}

// MonthlyExpenses totals expenses for the calendar month containing now.
func MonthlyExpenses(txns []model.Transaction, baseCurrency string, rates fx.Rates, now time.Time) decimal.Decimal {
	month := dates.MonthOf(now)
	return sumConverted(FilterByPeriod(txns, month, model.TypeExpense), baseCurrency, rates)
}

// TransactionsByMonth produces a trailing series of monthly income/expense
// totals ending with the month containing now, oldest first. Totals are
// rounded to 2 decimal places for charting.
func TransactionsByMonth(txns []model.Transaction, months int, baseCurrency string, rates fx.Rates, now time.Time) []MonthlySummary {
	series := make([]MonthlySummary, 0, months)
	for i := months - 1; i >= 0; i-- {
		// Anchor on the month start so day-31 nows cannot skip short months.
		anchor := dates.StartOfMonth(now).AddDate(0, -i, 0)
		month := dates.MonthOf(anchor)

		income := sumConverted(FilterByPeriod(txns, month, model.TypeIncome), baseCurrency, rates)
		expenses := sumConverted(FilterByPeriod(txns, month, model.TypeExpense), baseCurrency, rates)

		series = append(series, MonthlySummary{
			Month:    anchor.Format("Jan 06"),
			Income:   income.Round(2),
			Expenses: expenses.Round(2),
		})
	}
	return series
}

// ExpensesByCategory slices the current month's expenses per category,
// keyed by display name and carrying the category color. Uncategorized
// expenses are excluded, as are zero-total slices.
func ExpensesByCategory(txns []model.Transaction, categories []model.Category, baseCurrency string, rates fx.Rates, now time.Time) []CategorySlice {
	month := dates.MonthOf(now)
	expenses := FilterByPeriod(txns, month, model.TypeExpense)

	colors := make(map[string]string, len(categories))
	for _, c := range categories {
		colors[c.Name] = c.Color
	}

	var slices []CategorySlice
	for _, line := range BreakdownByCategory(expenses, categories, baseCurrency, rates) {
		slices = append(slices, CategorySlice{
			Name:  line.Category,
			Value: line.Amount,
			Color: colors[line.Category],
		})
	}
	return slices
}
