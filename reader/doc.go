// Package reader loads tabular files into query.Table values.
//
// Two formats are supported:
//
//   - CSV: the first record is the header and fixes the column set;
//     every cell is kept as raw text.
//   - Parquet: read via parquet-go; cell values are normalized to their
//     canonical string form so the pipeline sees one uniform row model.
//
// ReadFile dispatches on the file extension. The whole file is loaded
// into memory before the pipeline runs.
//
// Example:
//
//	tbl, err := reader.ReadFile("phones.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
package reader
