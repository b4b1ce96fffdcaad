package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// CategoriesHeader is the CSV header for categories.csv.
const CategoriesHeader = "id,name,color,icon"

const (
	catNumFields = 4
	catColID     = 0
	catColName   = 1
	catColColor  = 2
	catColIcon   = 3
)

// ReadCategories reads categories.csv.
func ReadCategories(r io.Reader) ([]model.Category, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = catNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading categories CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var categories []model.Category
	for i, rec := range records[1:] {
		c, err := UnmarshalCategory(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// WriteCategories writes categories.csv (including header).
func WriteCategories(w io.Writer, categories []model.Category) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CategoriesHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, c := range categories {
		if err := cw.Write(MarshalCategory(c)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalCategory converts a Category to a CSV row.
func MarshalCategory(c model.Category) []string {
	return []string{c.ID, c.Name, c.Color, c.Icon}
}

// UnmarshalCategory converts a CSV row to a Category.
func UnmarshalCategory(record []string) (model.Category, error) {
	if len(record) != catNumFields {
		return model.Category{}, fmt.Errorf("expected %d fields, got %d", catNumFields, len(record))
	}
	if record[catColName] == "" {
		return model.Category{}, fmt.Errorf("category %q has no name", record[catColID])
	}
	return model.Category{
		ID:    record[catColID],
		Name:  record[catColName],
		Color: record[catColColor],
		Icon:  record[catColIcon],
	}, nil
}
