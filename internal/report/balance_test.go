package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook-dev/tallybook/internal/model"
)

func TestTotalBalance_OpeningBalancesOnly(t *testing.T) {
	ledgers := []model.Ledger{
		{ID: "l1", Name: "Cash", OpeningBalance: dec("500"), Currency: "USD"},
		{ID: "l2", Name: "Bank", OpeningBalance: dec("92"), Currency: "EUR"}, // 100 USD
	}

	got := TotalBalance(ledgers, "USD", usdRates())
	assert.True(t, dec("600").Equal(got), "got %s", got)
}

func TestTotalBalance_IgnoresTransactionActivity(t *testing.T) {
	// "Balance" is the sum of opening balances only; transaction history is
	// intentionally not consulted. The signature admits no transactions at
	// all, which pins the simplification in place.
	ledgers := []model.Ledger{
		{ID: "l1", Name: "Cash", OpeningBalance: dec("500"), Currency: "USD"},
	}
	assert.True(t, dec("500").Equal(TotalBalance(ledgers, "USD", usdRates())))
}

func TestMonthlyIncomeAndExpenses(t *testing.T) {
	now := day("2024-01-20")
	txns := []model.Transaction{
		tx("t1", "2024-01-05", "1000", model.TypeIncome, "c3", "USD"),
		tx("t2", "2024-01-10", "400", model.TypeExpense, "c1", "USD"),
		tx("t3", "2023-12-31", "999", model.TypeIncome, "c3", "USD"), // previous month
	}

	assert.True(t, dec("1000").Equal(MonthlyIncome(txns, "USD", usdRates(), now)))
	assert.True(t, dec("400").Equal(MonthlyExpenses(txns, "USD", usdRates(), now)))
}

func TestTransactionsByMonth(t *testing.T) {
	now := day("2024-03-15")
	txns := []model.Transaction{
		tx("t1", "2024-01-05", "100", model.TypeIncome, "c3", "USD"),
		tx("t2", "2024-02-10", "200", model.TypeIncome, "c3", "USD"),
		tx("t3", "2024-02-15", "50", model.TypeExpense, "c1", "USD"),
		tx("t4", "2024-03-01", "300", model.TypeIncome, "c3", "USD"),
	}

	series := TransactionsByMonth(txns, 3, "USD", usdRates(), now)
	require.Len(t, series, 3)

	assert.Equal(t, "Jan 24", series[0].Month)
	assert.True(t, dec("100").Equal(series[0].Income))
	assert.Equal(t, "Feb 24", series[1].Month)
	assert.True(t, dec("200").Equal(series[1].Income))
	assert.True(t, dec("50").Equal(series[1].Expenses))
	assert.Equal(t, "Mar 24", series[2].Month)
	assert.True(t, dec("300").Equal(series[2].Income))
}

func TestTransactionsByMonth_MonthEndAnchor(t *testing.T) {
	// A now of March 31 must still walk Feb and Jan, not skip into March.
	now := day("2024-03-31")
	series := TransactionsByMonth(nil, 3, "USD", usdRates(), now)
	require.Len(t, series, 3)
	assert.Equal(t, "Jan 24", series[0].Month)
	assert.Equal(t, "Feb 24", series[1].Month)
	assert.Equal(t, "Mar 24", series[2].Month)
}

func TestExpensesByCategory(t *testing.T) {
	now := day("2024-01-20")
	txns := []model.Transaction{
		tx("t1", "2024-01-05", "30", model.TypeExpense, "c1", "USD"),
		tx("t2", "2024-01-10", "500", model.TypeExpense, "c2", "USD"),
		tx("t3", "2024-01-12", "75", model.TypeExpense, "", "USD"),    // uncategorized
		tx("t4", "2024-01-15", "40", model.TypeIncome, "c3", "USD"),   // not an expense
		tx("t5", "2023-12-20", "10", model.TypeExpense, "c1", "USD"),  // previous month
	}

	slices := ExpensesByCategory(txns, testCategories(), "USD", usdRates(), now)
	require.Len(t, slices, 2)

	assert.Equal(t, "Food", slices[0].Name)
	assert.Equal(t, "bg-red-500", slices[0].Color)
	assert.True(t, dec("30").Equal(slices[0].Value))
	assert.Equal(t, "Rent", slices[1].Name)
	assert.True(t, dec("500").Equal(slices[1].Value))
}
