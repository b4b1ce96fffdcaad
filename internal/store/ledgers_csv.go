package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// LedgersHeader is the CSV header for ledgers.csv.
const LedgersHeader = "id,profile_id,name,account_group_id,opening_balance,currency,is_contra"

const (
	ledNumFields   = 7
	ledColID       = 0
	ledColProfile  = 1
	ledColName     = 2
	ledColGroup    = 3
	ledColOpening  = 4
	ledColCurrency = 5
	ledColContra   = 6
)

// ReadLedgers reads ledgers.csv.
func ReadLedgers(r io.Reader) ([]model.Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = ledNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledgers CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var ledgers []model.Ledger
	for i, rec := range records[1:] {
		l, err := UnmarshalLedger(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		ledgers = append(ledgers, l)
	}
	return ledgers, nil
}

// WriteLedgers writes ledgers.csv (including header).
func WriteLedgers(w io.Writer, ledgers []model.Ledger) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(LedgersHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, l := range ledgers {
		if err := cw.Write(MarshalLedger(l)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalLedger converts a Ledger to a CSV row.
func MarshalLedger(l model.Ledger) []string {
	row := make([]string, ledNumFields)
	row[ledColID] = l.ID
	row[ledColProfile] = l.ProfileID
	row[ledColName] = l.Name
	row[ledColGroup] = l.AccountGroupID
	row[ledColOpening] = l.OpeningBalance.String()
	row[ledColCurrency] = l.Currency
	row[ledColContra] = strconv.FormatBool(l.IsContra)
	return row
}

// UnmarshalLedger converts a CSV row to a Ledger.
func UnmarshalLedger(record []string) (model.Ledger, error) {
	if len(record) != ledNumFields {
		return model.Ledger{}, fmt.Errorf("expected %d fields, got %d", ledNumFields, len(record))
	}

	opening, err := decimal.NewFromString(record[ledColOpening])
	if err != nil {
		return model.Ledger{}, fmt.Errorf("parsing opening_balance %q: %w", record[ledColOpening], err)
	}

	contra, err := strconv.ParseBool(record[ledColContra])
	if err != nil {
		return model.Ledger{}, fmt.Errorf("parsing is_contra %q: %w", record[ledColContra], err)
	}

	return model.Ledger{
		ID:             record[ledColID],
		ProfileID:      record[ledColProfile],
		Name:           record[ledColName],
		AccountGroupID: record[ledColGroup],
		OpeningBalance: opening,
		Currency:       record[ledColCurrency],
		IsContra:       contra,
	}, nil
}
