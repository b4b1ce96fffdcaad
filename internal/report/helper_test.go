package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/fx"
	"github.com/tallybook-dev/tallybook/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	return dates.MustParseDay(s)
}

func usdRates() fx.Rates {
	return fx.Rates{"USD": dec("1"), "EUR": dec("0.92")}
}

func tx(id, date, amount string, typ model.TransactionType, categoryID, currency string) model.Transaction {
	return model.Transaction{
		ID:          id,
		ProfileID:   "p1",
		Amount:      dec(amount),
		Date:        day(date),
		Description: "txn " + id,
		Type:        typ,
		CategoryID:  categoryID,
		Currency:    currency,
	}
}

func testCategories() []model.Category {
	return []model.Category{
		{ID: "c1", Name: "Food", Color: "bg-red-500", Icon: "Utensils"},
		{ID: "c2", Name: "Rent", Color: "bg-blue-500", Icon: "Home"},
		{ID: "c3", Name: "Salary", Color: "bg-teal-500", Icon: "Briefcase"},
	}
}
