package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// TransactionsHeader is the CSV header for transactions.csv.
const TransactionsHeader = "id,profile_id,amount,date,description,type,category_id,currency,ledger_id"

const (
	txNumFields   = 9
	txColID       = 0
	txColProfile  = 1
	txColAmount   = 2
	txColDate     = 3
	txColDesc     = 4
	txColType     = 5
	txColCategory = 6
	txColCurrency = 7
	txColLedger   = 8
)

// ReadTransactions reads all transactions from a transactions.csv reader.
// Rows with unparseable dates or amounts are an error, not a silent skip:
// bad data must surface instead of vanishing from every report.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = txNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// WriteTransactions writes transactions.csv (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, txNumFields)
	row[txColID] = t.ID
	row[txColProfile] = t.ProfileID
	row[txColAmount] = t.Amount.String()
	row[txColDate] = t.Date.Format(dates.DayFormat)
	row[txColDesc] = t.Description
	row[txColType] = string(t.Type)
	row[txColCategory] = t.CategoryID
	row[txColCurrency] = t.Currency
	row[txColLedger] = t.LedgerID
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != txNumFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", txNumFields, len(record))
	}

	amount, err := decimal.NewFromString(record[txColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[txColAmount], err)
	}
	if amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("negative amount %s: direction belongs in the type column", amount)
	}

	date, err := dates.ParseDay(record[txColDate])
	if err != nil {
		return model.Transaction{}, err
	}

	typ := model.TransactionType(record[txColType])
	if !typ.Valid() {
		return model.Transaction{}, fmt.Errorf("unknown transaction type %q", record[txColType])
	}

	return model.Transaction{
		ID:          record[txColID],
		ProfileID:   record[txColProfile],
		Amount:      amount,
		Date:        date,
		Description: record[txColDesc],
		Type:        typ,
		CategoryID:  record[txColCategory],
		Currency:    record[txColCurrency],
		LedgerID:    record[txColLedger],
	}, nil
}
