package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook-dev/tallybook/internal/model"
)

func bill(id, due, amount string, paid bool) model.Bill {
	return model.Bill{
		ID:        id,
		ProfileID: "p1",
		Name:      "bill " + id,
		Amount:    dec(amount),
		DueDate:   day(due),
		IsPaid:    paid,
		Currency:  "USD",
	}
}

func TestBuildBalanceSheet_CashFromTransactionHistory(t *testing.T) {
	txns := []model.Transaction{
		tx("t1", "2024-01-05", "1000", model.TypeIncome, "c3", "USD"),
		tx("t2", "2024-01-10", "400", model.TypeExpense, "c1", "USD"),
		tx("t3", "2024-02-10", "999", model.TypeIncome, "c3", "USD"), // after endDate
	}

	bs := BuildBalanceSheet(txns, nil, "USD", usdRates(), day("2024-01-31"))

	require.Len(t, bs.Assets, 1)
	assert.Equal(t, "Cash & Bank", bs.Assets[0].Name)
	assert.True(t, dec("600").Equal(bs.TotalAssets), "got %s", bs.TotalAssets)
}

func TestBuildBalanceSheet_OutstandingBills(t *testing.T) {
	bills := []model.Bill{
		bill("b1", "2024-01-10", "150", false),
		bill("b2", "2024-01-20", "50", true),   // paid, excluded
		bill("b3", "2024-03-01", "500", false), // due after endDate, excluded
	}

	bs := BuildBalanceSheet(nil, bills, "USD", usdRates(), day("2024-01-31"))

	require.Len(t, bs.Liabilities, 1)
	assert.Equal(t, "Outstanding Bills", bs.Liabilities[0].Name)
	assert.True(t, dec("150").Equal(bs.TotalLiabilities), "got %s", bs.TotalLiabilities)
}

func TestBuildBalanceSheet_EquityIdentity(t *testing.T) {
	txns := []model.Transaction{
		tx("t1", "2024-01-05", "1000", model.TypeIncome, "c3", "USD"),
		tx("t2", "2024-01-10", "400", model.TypeExpense, "c1", "USD"),
	}
	bills := []model.Bill{bill("b1", "2024-01-10", "150", false)}

	bs := BuildBalanceSheet(txns, bills, "USD", usdRates(), day("2024-01-31"))

	assert.True(t, bs.Equity.Equal(bs.TotalAssets.Sub(bs.TotalLiabilities)),
		"equity == assets - liabilities must hold exactly")
	assert.True(t, dec("450").Equal(bs.Equity), "got %s", bs.Equity)
}

func TestBuildBalanceSheet_NegativeCashAllowed(t *testing.T) {
	txns := []model.Transaction{
		tx("t1", "2024-01-10", "400", model.TypeExpense, "c1", "USD"),
	}

	bs := BuildBalanceSheet(txns, nil, "USD", usdRates(), day("2024-01-31"))

	assert.True(t, dec("-400").Equal(bs.TotalAssets))
	assert.True(t, bs.Equity.Equal(bs.TotalAssets.Sub(bs.TotalLiabilities)))
}

func TestBuildBalanceSheet_InclusiveEndDate(t *testing.T) {
	txns := []model.Transaction{
		tx("t1", "2024-01-31", "100", model.TypeIncome, "c3", "USD"),
	}
	bills := []model.Bill{bill("b1", "2024-01-31", "30", false)}

	bs := BuildBalanceSheet(txns, bills, "USD", usdRates(), day("2024-01-31"))

	assert.True(t, dec("100").Equal(bs.TotalAssets), "endDate transaction included")
	assert.True(t, dec("30").Equal(bs.TotalLiabilities), "endDate bill included")
}
