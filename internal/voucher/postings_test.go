package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/model"
)

func testLedgers() []model.Ledger {
	return []model.Ledger{
		{ID: "cash", Name: "Cash", AccountGroupID: "g-assets", OpeningBalance: dec("1000"), Currency: "USD"},
		{ID: "sales", Name: "Sales", AccountGroupID: "g-income", OpeningBalance: dec("0"), Currency: "USD"},
		{ID: "rent", Name: "Rent", AccountGroupID: "g-expenses", OpeningBalance: dec("0"), Currency: "USD"},
		{ID: "loan", Name: "Bank Loan", AccountGroupID: "g-liabilities", OpeningBalance: dec("500"), Currency: "USD"},
	}
}

func testGroups() []model.AccountGroup {
	return []model.AccountGroup{
		{ID: "g-assets", Name: "Assets", Type: model.GroupAsset},
		{ID: "g-income", Name: "Income", Type: model.GroupIncome},
		{ID: "g-expenses", Name: "Expenses", Type: model.GroupExpense},
		{ID: "g-liabilities", Name: "Liabilities", Type: model.GroupLiability},
	}
}

func janRange() dates.Range {
	return dates.MonthOf(dates.MustParseDay("2024-01-15"))
}

func TestPostings_FlattensAndSorts(t *testing.T) {
	vouchers := []model.Voucher{
		{
			ID: "v2", Number: "2024-01-002", Date: dates.MustParseDay("2024-01-20"),
			Narration: "rent payment",
			Entries: []model.VoucherEntry{
				{LedgerID: "rent", Amount: dec("700"), Side: model.SideDebit},
				{LedgerID: "cash", Amount: dec("700"), Side: model.SideCredit},
			},
		},
		{
			ID: "v1", Number: "2024-01-001", Date: dates.MustParseDay("2024-01-10"),
			Narration: "cash sale",
			Entries: []model.VoucherEntry{
				{LedgerID: "cash", Amount: dec("300"), Side: model.SideDebit},
				{LedgerID: "sales", Amount: dec("300"), Side: model.SideCredit, Description: "invoice 42"},
			},
		},
		{
			ID: "v3", Number: "2024-02-001", Date: dates.MustParseDay("2024-02-01"),
			Entries: []model.VoucherEntry{
				{LedgerID: "cash", Amount: dec("1"), Side: model.SideDebit},
				{LedgerID: "sales", Amount: dec("1"), Side: model.SideCredit},
			},
		},
	}

	rows := Postings(vouchers, janRange())
	require.Len(t, rows, 4, "February voucher excluded")

	assert.Equal(t, "v1", rows[0].VoucherID, "date ascending")
	assert.Equal(t, "cash sale", rows[0].Narration, "falls back to voucher narration")
	assert.Equal(t, "invoice 42", rows[1].Narration, "leg description wins")
	assert.Equal(t, "v2", rows[2].VoucherID)
}

func TestLedgerBalances_DirectionByGroupType(t *testing.T) {
	vouchers := []model.Voucher{
		{
			ID: "v1", Date: dates.MustParseDay("2024-01-10"),
			Entries: []model.VoucherEntry{
				{LedgerID: "cash", Amount: dec("300"), Side: model.SideDebit},
				{LedgerID: "sales", Amount: dec("300"), Side: model.SideCredit},
			},
		},
		{
			ID: "v2", Date: dates.MustParseDay("2024-01-20"),
			Entries: []model.VoucherEntry{
				{LedgerID: "rent", Amount: dec("700"), Side: model.SideDebit},
				{LedgerID: "cash", Amount: dec("700"), Side: model.SideCredit},
			},
		},
	}

	balances := LedgerBalances(vouchers, testLedgers(), testGroups(), janRange())

	cash := balances["cash"]
	assert.True(t, dec("1000").Equal(cash.Opening))
	assert.True(t, dec("600").Equal(cash.Closing), "1000 + 300 - 700, got %s", cash.Closing)
	assert.True(t, dec("300").Equal(cash.Debits))
	assert.True(t, dec("700").Equal(cash.Credits))
	assert.Len(t, cash.Postings, 2)

	sales := balances["sales"]
	assert.True(t, dec("300").Equal(sales.Closing), "credits grow income ledgers")

	rent := balances["rent"]
	assert.True(t, dec("700").Equal(rent.Closing), "debits grow expense ledgers")
}

func TestLedgerBalances_NoPostings(t *testing.T) {
	balances := LedgerBalances(nil, testLedgers(), testGroups(), janRange())

	loan := balances["loan"]
	assert.True(t, loan.Opening.Equal(loan.Closing), "untouched ledger keeps its opening balance")
	assert.Empty(t, loan.Postings)
}

func TestLedgerBalances_LiabilityCreditsIncrease(t *testing.T) {
	vouchers := []model.Voucher{
		{
			ID: "v1", Date: dates.MustParseDay("2024-01-10"),
			Entries: []model.VoucherEntry{
				{LedgerID: "cash", Amount: dec("250"), Side: model.SideDebit},
				{LedgerID: "loan", Amount: dec("250"), Side: model.SideCredit},
			},
		},
	}

	balances := LedgerBalances(vouchers, testLedgers(), testGroups(), janRange())
	assert.True(t, dec("750").Equal(balances["loan"].Closing), "500 + 250, got %s", balances["loan"].Closing)
}
