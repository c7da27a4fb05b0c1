// Package output provides formatters for printing query results.
//
// Three formats are supported:
//
//   - Grid table: human-readable bordered table (the default)
//   - CSV: comma-separated values with header row
//   - JSON Lines: one JSON object per row
//
// All formatters implement the Formatter interface and work with
// query.Table values; aggregate scalars are rendered through the same
// interface as one-row tables.
//
// Example:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(tbl); err != nil {
//	    log.Fatal(err)
//	}
package output
