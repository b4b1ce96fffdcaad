// Package chart draws PNG charts of the books: monthly income vs expense
// bars and a current-month expense pie.
package chart

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tallybook-dev/tallybook/internal/report"
)

var (
	incomeColor  = drawing.ColorFromHex("2e7d32")
	expenseColor = drawing.ColorFromHex("c62828")
)

// categoryColors maps the category palette names to chart fill colors.
var categoryColors = map[string]drawing.Color{
	"bg-red-500":    drawing.ColorFromHex("ef4444"),
	"bg-blue-500":   drawing.ColorFromHex("3b82f6"),
	"bg-green-500":  drawing.ColorFromHex("22c55e"),
	"bg-teal-500":   drawing.ColorFromHex("14b8a6"),
	"bg-purple-500": drawing.ColorFromHex("a855f7"),
	"bg-pink-500":   drawing.ColorFromHex("ec4899"),
	"bg-orange-500": drawing.ColorFromHex("f97316"),
	"bg-indigo-500": drawing.ColorFromHex("6366f1"),
}

func colorFor(name string) drawing.Color {
	if c, ok := categoryColors[name]; ok {
		return c
	}
	return drawing.ColorFromHex("9ca3af")
}

// MonthlyBars writes a PNG bar chart with an income and an expense bar
// per month.
func MonthlyBars(w io.Writer, months []report.MonthlySummary) error {
	if len(months) == 0 {
		return fmt.Errorf("no months to chart")
	}

	hasData := false
	var bars []chart.Value
	for _, m := range months {
		if m.Income.IsPositive() || m.Expenses.IsPositive() {
			hasData = true
		}
		bars = append(bars,
			chart.Value{
				Label: m.Month + " in",
				Value: m.Income.InexactFloat64(),
				Style: chart.Style{FillColor: incomeColor, StrokeColor: incomeColor},
			},
			chart.Value{
				Label: m.Month + " out",
				Value: m.Expenses.InexactFloat64(),
				Style: chart.Style{FillColor: expenseColor, StrokeColor: expenseColor},
			},
		)
	}

	if !hasData {
		return fmt.Errorf("no activity to chart")
	}

	c := chart.BarChart{
		Title:    "Income vs Expenses",
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
	}
	return c.Render(chart.PNG, w)
}

// CategoryPie writes a PNG pie chart of expense shares by category.
func CategoryPie(w io.Writer, slices []report.CategorySlice) error {
	if len(slices) == 0 {
		return fmt.Errorf("no expenses to chart")
	}

	var values []chart.Value
	for _, s := range slices {
		values = append(values, chart.Value{
			Label: s.Name,
			Value: s.Value.InexactFloat64(),
			Style: chart.Style{FillColor: colorFor(s.Color)},
		})
	}

	pie := chart.PieChart{
		Title:  "Expenses by Category",
		Width:  512,
		Height: 512,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}
