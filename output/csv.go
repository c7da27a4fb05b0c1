package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/vegasq/rowcat/query"
)

// CSVFormatter outputs rows as CSV format.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer.
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the table as CSV: a header record with the columns in
// schema order, then one record per row.
func (c *CSVFormatter) Format(tbl query.Table) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(tbl.Columns); err != nil {
		return err
	}

	for _, row := range tbl.Rows {
		record := make([]string, len(tbl.Columns))
		for i, col := range tbl.Columns {
			record[i] = row[col]
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
