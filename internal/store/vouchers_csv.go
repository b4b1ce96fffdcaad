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

// VouchersHeader is the CSV header for vouchers.csv. One row per leg; rows
// sharing a voucher_id form one voucher and the header fields repeat.
const VouchersHeader = "voucher_id,number,profile_id,type,date,narration,currency,reference,ledger_id,side,amount,leg_description"

const (
	vchNumFields   = 12
	vchColID       = 0
	vchColNumber   = 1
	vchColProfile  = 2
	vchColType     = 3
	vchColDate     = 4
	vchColNarr     = 5
	vchColCurrency = 6
	vchColRef      = 7
	vchColLedger   = 8
	vchColSide     = 9
	vchColAmount   = 10
	vchColLegDesc  = 11
)

// ReadVouchers reads vouchers.csv, grouping leg rows back into vouchers in
// first-occurrence order.
func ReadVouchers(r io.Reader) ([]model.Voucher, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = vchNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading vouchers CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	byID := make(map[string]*model.Voucher)
	var order []string
	for i, rec := range records[1:] {
		header, entry, err := unmarshalVoucherLeg(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		v, ok := byID[header.ID]
		if !ok {
			v = &header
			byID[header.ID] = v
			order = append(order, header.ID)
		}
		v.Entries = append(v.Entries, entry)
	}

	vouchers := make([]model.Voucher, 0, len(order))
	for _, id := range order {
		vouchers = append(vouchers, *byID[id])
	}
	return vouchers, nil
}

// WriteVouchers writes vouchers.csv (including header), one row per leg.
func WriteVouchers(w io.Writer, vouchers []model.Voucher) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(VouchersHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, v := range vouchers {
		for i, e := range v.Entries {
			if err := cw.Write(marshalVoucherLeg(v, e)); err != nil {
				return fmt.Errorf("voucher %s leg %d: %w", v.ID, i, err)
			}
		}
	}
	return cw.Error()
}

func marshalVoucherLeg(v model.Voucher, e model.VoucherEntry) []string {
	row := make([]string, vchNumFields)
	row[vchColID] = v.ID
	row[vchColNumber] = v.Number
	row[vchColProfile] = v.ProfileID
	row[vchColType] = string(v.Type)
	row[vchColDate] = v.Date.Format(dates.DayFormat)
	row[vchColNarr] = v.Narration
	row[vchColCurrency] = v.Currency
	row[vchColRef] = v.Reference
	row[vchColLedger] = e.LedgerID
	row[vchColSide] = string(e.Side)
	row[vchColAmount] = e.Amount.StringFixed(2)
	row[vchColLegDesc] = e.Description
	return row
}

func unmarshalVoucherLeg(record []string) (model.Voucher, model.VoucherEntry, error) {
	if len(record) != vchNumFields {
		return model.Voucher{}, model.VoucherEntry{}, fmt.Errorf("expected %d fields, got %d", vchNumFields, len(record))
	}

	date, err := dates.ParseDay(record[vchColDate])
	if err != nil {
		return model.Voucher{}, model.VoucherEntry{}, err
	}

	amount, err := decimal.NewFromString(record[vchColAmount])
	if err != nil {
		return model.Voucher{}, model.VoucherEntry{}, fmt.Errorf("parsing amount %q: %w", record[vchColAmount], err)
	}

	side := model.EntrySide(record[vchColSide])
	if side != model.SideDebit && side != model.SideCredit {
		return model.Voucher{}, model.VoucherEntry{}, fmt.Errorf("unknown side %q", record[vchColSide])
	}

	v := model.Voucher{
		ID:        record[vchColID],
		Number:    record[vchColNumber],
		ProfileID: record[vchColProfile],
		Type:      model.VoucherType(record[vchColType]),
		Date:      date,
		Narration: record[vchColNarr],
		Currency:  record[vchColCurrency],
		Reference: record[vchColRef],
	}
	e := model.VoucherEntry{
		LedgerID:    record[vchColLedger],
		Amount:      amount,
		Side:        side,
		Description: record[vchColLegDesc],
	}
	return v, e, nil
}
