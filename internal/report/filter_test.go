package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/model"
)

func TestFilterByPeriod_InclusiveBounds(t *testing.T) {
	txns := []model.Transaction{
		tx("t1", "2024-01-01", "10", model.TypeIncome, "c3", "USD"),
		tx("t2", "2024-01-15", "20", model.TypeExpense, "c1", "USD"),
		tx("t3", "2024-01-31", "30", model.TypeIncome, "c3", "USD"),
		tx("t4", "2023-12-31", "40", model.TypeIncome, "c3", "USD"),
		tx("t5", "2024-02-01", "50", model.TypeExpense, "c1", "USD"),
	}
	period := dates.Range{From: day("2024-01-01"), To: day("2024-01-31")}

	got := FilterByPeriod(txns, period, "")
	assert.Len(t, got, 3)
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	assert.ElementsMatch(t, []string{"t1", "t2", "t3"}, ids,
		"boundary dates must be included, outside dates excluded")
}

func TestFilterByPeriod_ByType(t *testing.T) {
	txns := []model.Transaction{
		tx("t1", "2024-01-05", "100", model.TypeIncome, "c3", "USD"),
		tx("t2", "2024-01-10", "40", model.TypeExpense, "c1", "USD"),
	}
	period := dates.MonthOf(day("2024-01-15"))

	income := FilterByPeriod(txns, period, model.TypeIncome)
	assert.Len(t, income, 1)
	assert.Equal(t, "t1", income[0].ID)

	expenses := FilterByPeriod(txns, period, model.TypeExpense)
	assert.Len(t, expenses, 1)
	assert.Equal(t, "t2", expenses[0].ID)
}

func TestFilterByPeriod_DoesNotMutateInput(t *testing.T) {
	txns := []model.Transaction{
		tx("t1", "2024-01-05", "100", model.TypeIncome, "c3", "USD"),
		tx("t2", "2024-01-10", "40", model.TypeExpense, "c1", "USD"),
	}
	period := dates.MonthOf(day("2024-01-15"))

	got := FilterByPeriod(txns, period, model.TypeIncome)
	got[0].ID = "mutated"

	assert.Equal(t, "t1", txns[0].ID, "filter must return a fresh slice")
	assert.Len(t, txns, 2)
}

func TestFilterByPeriod_EmptyInput(t *testing.T) {
	period := dates.MonthOf(day("2024-01-15"))
	assert.Empty(t, FilterByPeriod(nil, period, ""))
}
