package report

import (
	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// FilterByPeriod returns the transactions dated within period, boundaries
// included. A non-empty typ narrows the result to that transaction type.
// The input is never mutated and the result carries no guaranteed order;
// callers needing an order must sort explicitly.
func FilterByPeriod(txns []model.Transaction, period dates.Range, typ model.TransactionType) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if typ != "" && t.Type != typ {
			continue
		}
		if !period.Contains(t.Date) {
			continue
		}
		out = append(out, t)
	}
	return out
}
