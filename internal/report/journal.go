package report

import (
	"sort"

	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/fx"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// cashAccount is the fixed account every transaction posts against. This is
// a deliberate simplification, not genuine double-entry posting: the
// transaction's actual ledger reference is ignored. The voucher package
// carries the real double-entry engine.
const cashAccount = "Assets: Cash/Bank"

// uncategorizedName is the account label used when a transaction's category
// cannot be resolved. Such transactions still produce journal entries; only
// category breakdowns exclude them.
const uncategorizedName = "Uncategorized"

// BuildJournal derives one journal entry per transaction in the period,
// sorted by date ascending. Income debits the cash account and credits
// "Income: {category}"; expenses debit "Expenses: {category}" and credit
// the cash account. Amounts are converted into baseCurrency, so both legs
// of an entry always carry the same amount. An empty window yields an empty
// journal, not an error.
func BuildJournal(txns []model.Transaction, categories []model.Category, period dates.Range, baseCurrency string, rates fx.Rates) []JournalEntry {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	inPeriod := FilterByPeriod(txns, period, "")
	sort.SliceStable(inPeriod, func(i, j int) bool {
		return inPeriod[i].Date.Before(inPeriod[j].Date)
	})

	entries := make([]JournalEntry, 0, len(inPeriod))
	for _, t := range inPeriod {
		category, ok := names[t.CategoryID]
		if !ok {
			category = uncategorizedName
		}

		entry := JournalEntry{
			ID:          t.ID,
			Date:        t.Date,
			Description: t.Description,
			Amount:      fx.Convert(t.Amount, t.Currency, baseCurrency, rates),
			Currency:    baseCurrency,
		}
		switch t.Type {
		case model.TypeIncome:
			entry.DebitAccount = cashAccount
			entry.CreditAccount = "Income: " + category
		case model.TypeExpense:
			entry.DebitAccount = "Expenses: " + category
			entry.CreditAccount = cashAccount
		default:
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// BuildLedgerAccounts folds journal entries into per-account running
// balances, processed in ascending date order: debits add, credits
// subtract. The final running value becomes the account's FinalBalance.
func BuildLedgerAccounts(entries []JournalEntry) map[string]LedgerAccount {
	ordered := make([]JournalEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	accounts := make(map[string]LedgerAccount)
	post := func(name string, e JournalEntry, debit bool) {
		acct := accounts[name]
		acct.Name = name
		if debit {
			acct.FinalBalance = acct.FinalBalance.Add(e.Amount)
		} else {
			acct.FinalBalance = acct.FinalBalance.Sub(e.Amount)
		}
		acct.Entries = append(acct.Entries, LedgerEntry{
			Date:        e.Date,
			Description: e.Description,
			Debit:       debit,
			Amount:      e.Amount,
			Balance:     acct.FinalBalance,
		})
		accounts[name] = acct
	}

	for _, e := range ordered {
		post(e.DebitAccount, e, true)
		post(e.CreditAccount, e, false)
	}
	return accounts
}
