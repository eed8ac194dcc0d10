// Package xlsx loads uploaded spreadsheet bytes into column-labeled tables.
// Files are read once and fully materialized; no streaming.
package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/antonv/assessment-client/internal/table"
)

// ReadError represents a failure to load a sheet from a spreadsheet.
type ReadError struct {
	Sheet   string
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("xlsx read error (лист %q): %s: %v", e.Sheet, e.Message, e.Cause)
	}
	return fmt.Sprintf("xlsx read error (лист %q): %s", e.Sheet, e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// ReadSheet reads one sheet into a Table. An empty sheetName selects the
// first sheet of the workbook; a non-empty name must match exactly. The
// first row is treated as the header. Blank rows are kept so that every
// row index maps straight onto its spreadsheet row number; the sanitizer
// drops and reports them.
func ReadSheet(r io.Reader, sheetName string) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ReadError{Sheet: sheetName, Message: "не удалось открыть файл", Cause: err}
	}
	defer func() { _ = f.Close() }()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, &ReadError{Sheet: sheetName, Message: "лист не найден в файле"}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &ReadError{Sheet: sheetName, Message: "не удалось прочитать строки", Cause: err}
	}
	if len(rows) == 0 {
		return nil, &ReadError{Sheet: sheetName, Message: "лист пуст"}
	}

	header := make([]string, 0, len(rows[0]))
	for _, col := range rows[0] {
		header = append(header, strings.TrimSpace(col))
	}

	t := &table.Table{Columns: header}
	for _, cells := range rows[1:] {
		row := make(table.Row, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			// excelize trims trailing empty cells from each row
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}
