// Package table provides the column-labeled in-memory table produced by the
// spreadsheet reader, along with row sanitation applied before validation.
package table

import (
	"fmt"
	"strings"
)

// Row holds one spreadsheet row keyed by column header.
type Row map[string]string

// Table is a fully materialized spreadsheet sheet. Column headers are
// locale-specific and must match the source file byte-for-byte.
type Table struct {
	Columns []string
	Rows    []Row
}

// SchemaError reports required columns absent from a table. It is fatal and
// halts the pipeline for the affected file.
type SchemaError struct {
	Dataset string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: отсутствуют обязательные колонки: %s", e.Dataset, strings.Join(e.Missing, ", "))
}

// HasColumn reports whether the table carries the given column header.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Column returns every cell of the named column in row order. Rows without
// the column yield the empty string. An unknown column yields all-empty
// values so that validation can keep running against a fallback series.
func (t *Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// RequireColumns fails with a SchemaError naming every missing column, or
// returns nil when all are present.
func (t *Table) RequireColumns(dataset string, required []string) error {
	var missing []string
	for _, col := range required {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Dataset: dataset, Missing: missing}
	}
	return nil
}
