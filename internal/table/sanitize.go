package table

import (
	"fmt"
	"strings"
)

// headerOffset converts a zero-based row index into the 1-indexed row number
// the user sees in Excel, accounting for the header row.
const headerOffset = 2

// DropReport describes one row removed during sanitation. Removal is
// reported, never silent.
type DropReport struct {
	Dataset   string
	RowNumber int      // 1-indexed spreadsheet row number, header included
	Columns   []string // required columns that were empty
}

func (d DropReport) String() string {
	return fmt.Sprintf("%s: строка %d удалена из-за пустых значений в колонках: %s",
		d.Dataset, d.RowNumber, strings.Join(d.Columns, ", "))
}

// Sanitize removes rows missing any required-column value and reports each
// removal. It fails immediately with a SchemaError if a required column is
// absent from the table entirely. Surviving rows keep their original order.
func Sanitize(t *Table, required []string, dataset string) (*Table, []DropReport, error) {
	if err := t.RequireColumns(dataset, required); err != nil {
		return nil, nil, err
	}

	var drops []DropReport
	kept := make([]Row, 0, len(t.Rows))
	for idx, row := range t.Rows {
		var empty []string
		for _, col := range required {
			if strings.TrimSpace(row[col]) == "" {
				empty = append(empty, col)
			}
		}
		if len(empty) > 0 {
			drops = append(drops, DropReport{
				Dataset:   dataset,
				RowNumber: idx + headerOffset,
				Columns:   empty,
			})
			continue
		}
		kept = append(kept, row)
	}

	return &Table{Columns: t.Columns, Rows: kept}, drops, nil
}
