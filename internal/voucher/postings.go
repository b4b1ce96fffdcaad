package voucher

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// Posting is one voucher leg flattened into a journal row.
type Posting struct {
	VoucherID string
	Number    string
	Date      time.Time
	LedgerID  string
	Narration string
	Side      model.EntrySide
	Amount    decimal.Decimal
}

// Postings flattens the legs of every voucher dated within period into
// date-ordered journal rows. Voucher order is preserved for same-day rows.
func Postings(vouchers []model.Voucher, period dates.Range) []Posting {
	var rows []Posting
	for _, v := range vouchers {
		if !period.Contains(v.Date) {
			continue
		}
		for _, e := range v.Entries {
			narration := e.Description
			if narration == "" {
				narration = v.Narration
			}
			rows = append(rows, Posting{
				VoucherID: v.ID,
				Number:    v.Number,
				Date:      v.Date,
				LedgerID:  e.LedgerID,
				Narration: narration,
				Side:      e.Side,
				Amount:    e.Amount,
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows
}

// LedgerBalance is a ledger's position after applying a period's postings to
// its opening balance.
type LedgerBalance struct {
	Ledger   model.Ledger
	Opening  decimal.Decimal
	Debits   decimal.Decimal
	Credits  decimal.Decimal
	Closing  decimal.Decimal
	Postings []Posting
}

// LedgerBalances folds period postings into per-ledger balances. The
// direction a posting moves a balance follows the ledger's account-group
// type: debits increase asset and expense ledgers, credits increase
// liability, equity, and income ledgers. Ledgers without postings are
// returned with closing == opening.
func LedgerBalances(vouchers []model.Voucher, ledgers []model.Ledger, groups []model.AccountGroup, period dates.Range) map[string]LedgerBalance {
	groupTypes := make(map[string]model.GroupType, len(groups))
	for _, g := range groups {
		groupTypes[g.ID] = g.Type
	}

	balances := make(map[string]LedgerBalance, len(ledgers))
	for _, l := range ledgers {
		balances[l.ID] = LedgerBalance{
			Ledger:  l,
			Opening: l.OpeningBalance,
			Closing: l.OpeningBalance,
		}
	}

	for _, p := range Postings(vouchers, period) {
		b, ok := balances[p.LedgerID]
		if !ok {
			// Dangling ledger reference; validation prevents these at
			// creation, so skip rather than invent a ledger.
			continue
		}

		signed := p.Amount
		if p.Side == model.SideDebit {
			b.Debits = b.Debits.Add(p.Amount)
		} else {
			b.Credits = b.Credits.Add(p.Amount)
		}
		if !debitIncreases(groupTypes[b.Ledger.AccountGroupID]) {
			signed = signed.Neg()
		}
		if p.Side == model.SideCredit {
			signed = signed.Neg()
		}
		b.Closing = b.Closing.Add(signed)
		b.Postings = append(b.Postings, p)
		balances[p.LedgerID] = b
	}
	return balances
}

// debitIncreases reports whether a debit grows balances for the group type.
func debitIncreases(t model.GroupType) bool {
	return t == model.GroupAsset || t == model.GroupExpense
}
