package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/dates"
	"github.com/tallybook-dev/tallybook/internal/model"
)

// BillsHeader is the CSV header for bills.csv.
const BillsHeader = "id,profile_id,name,amount,due_date,is_paid,currency"

const (
	billNumFields   = 7
	billColID       = 0
	billColProfile  = 1
	billColName     = 2
	billColAmount   = 3
	billColDue      = 4
	billColPaid     = 5
	billColCurrency = 6
)

// ReadBills reads bills.csv.
func ReadBills(r io.Reader) ([]model.Bill, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = billNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading bills CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var bills []model.Bill
	for i, rec := range records[1:] {
		b, err := UnmarshalBill(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		bills = append(bills, b)
	}
	return bills, nil
}

// WriteBills writes bills.csv (including header).
func WriteBills(w io.Writer, bills []model.Bill) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(BillsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, b := range bills {
		if err := cw.Write(MarshalBill(b)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalBill converts a Bill to a CSV row.
func MarshalBill(b model.Bill) []string {
	row := make([]string, billNumFields)
	row[billColID] = b.ID
	row[billColProfile] = b.ProfileID
	row[billColName] = b.Name
	row[billColAmount] = b.Amount.String()
	row[billColDue] = b.DueDate.Format(dates.DayFormat)
	row[billColPaid] = strconv.FormatBool(b.IsPaid)
	row[billColCurrency] = b.Currency
	return row
}

// UnmarshalBill converts a CSV row to a Bill.
func UnmarshalBill(record []string) (model.Bill, error) {
	if len(record) != billNumFields {
		return model.Bill{}, fmt.Errorf("expected %d fields, got %d", billNumFields, len(record))
	}

	amount, err := decimal.NewFromString(record[billColAmount])
	if err != nil {
		return model.Bill{}, fmt.Errorf("parsing amount %q: %w", record[billColAmount], err)
	}

	due, err := dates.ParseDay(record[billColDue])
	if err != nil {
		return model.Bill{}, err
	}

	paid, err := strconv.ParseBool(record[billColPaid])
	if err != nil {
		return model.Bill{}, fmt.Errorf("parsing is_paid %q: %w", record[billColPaid], err)
	}

	return model.Bill{
		ID:        record[billColID],
		ProfileID: record[billColProfile],
		Name:      record[billColName],
		Amount:    amount,
		DueDate:   due,
		IsPaid:    paid,
		Currency:  record[billColCurrency],
	}, nil
}
