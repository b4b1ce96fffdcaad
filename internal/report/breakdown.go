package report

import (
	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/fx"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// BreakdownByCategory groups transactions by category display name, summing
// amounts converted into baseCurrency.
//
// Grouping is by name, not ID: two categories sharing a name merge into one
// line. Transactions whose category cannot be resolved are excluded from the
// breakdown entirely (they still count toward period totals elsewhere).
// Lines appear in insertion order of first occurrence, and only lines with a
// strictly positive total are returned.
func BreakdownByCategory(txns []model.Transaction, categories []model.Category, baseCurrency string, rates fx.Rates) []BreakdownLine {
	names := make(map[string]string, len(categories)) // id -> display name
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, t := range txns {
		name, ok := names[t.CategoryID]
		if !ok {
			continue
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		converted := fx.Convert(t.Amount, t.Currency, baseCurrency, rates)
		totals[name] = totals[name].Add(converted)
	}

	var lines []BreakdownLine
	for _, name := range order {
		if !totals[name].IsPositive() {
			continue
		}
		lines = append(lines, BreakdownLine{Category: name, Amount: totals[name]})
	}
	return lines
}
