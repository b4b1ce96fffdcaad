package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// AccountGroupsHeader is the CSV header for account-groups.csv.
const AccountGroupsHeader = "id,name,parent_id,type"

const (
	grpNumFields = 4
	grpColID     = 0
	grpColName   = 1
	grpColParent = 2
	grpColType   = 3
)

// ReadAccountGroups reads account-groups.csv.
func ReadAccountGroups(r io.Reader) ([]model.AccountGroup, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = grpNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading account groups CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var groups []model.AccountGroup
	for i, rec := range records[1:] {
		g, err := UnmarshalAccountGroup(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// WriteAccountGroups writes account-groups.csv (including header).
func WriteAccountGroups(w io.Writer, groups []model.AccountGroup) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(AccountGroupsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, g := range groups {
		if err := cw.Write(MarshalAccountGroup(g)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccountGroup converts an AccountGroup to a CSV row.
func MarshalAccountGroup(g model.AccountGroup) []string {
	return []string{g.ID, g.Name, g.ParentID, string(g.Type)}
}

// UnmarshalAccountGroup converts a CSV row to an AccountGroup.
func UnmarshalAccountGroup(record []string) (model.AccountGroup, error) {
	if len(record) != grpNumFields {
		return model.AccountGroup{}, fmt.Errorf("expected %d fields, got %d", grpNumFields, len(record))
	}

	typ := model.GroupType(record[grpColType])
	switch typ {
	case model.GroupAsset, model.GroupLiability, model.GroupEquity, model.GroupIncome, model.GroupExpense:
	default:
		return model.AccountGroup{}, fmt.Errorf("unknown group type %q", record[grpColType])
	}

	return model.AccountGroup{
		ID:       record[grpColID],
		Name:     record[grpColName],
		ParentID: record[grpColParent],
		Type:     typ,
	}, nil
}
