package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV serializes the table as RFC 4180 CSV, header row first.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if len(t.Columns) > 0 {
		if err := cw.Write(t.Columns); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	for _, row := range t.Rows {
		if err := cw.Write(normalizeRow(row, len(t.Columns))); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
