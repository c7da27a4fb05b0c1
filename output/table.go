package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/rowcat/query"
)

// TableFormatter outputs rows as a bordered grid table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new grid table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer.
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the table as a bordered grid with a header row. Columns
// appear in schema order.
func (t *TableFormatter) Format(tbl query.Table) error {
	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(tbl.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetRowLine(true)

	for _, row := range tbl.Rows {
		record := make([]string, len(tbl.Columns))
		for i, col := range tbl.Columns {
			record[i] = row[col]
		}
		table.Append(record)
	}

	table.Render()
	return nil
}
