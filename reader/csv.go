package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vegasq/rowcat/query"
)

// ReadCSV reads a CSV file into a Table. The first record is the header
// and fixes the column set; duplicate header names are rejected. Records
// shorter than the header are padded with empty strings so every row
// carries the full column set; records longer than the header fail.
func ReadCSV(path string) (query.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return query.Table{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1 // short records are padded below

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return query.Table{}, fmt.Errorf("file %s has no header row", path)
		}
		return query.Table{}, fmt.Errorf("failed to read header: %w", err)
	}

	seen := make(map[string]bool, len(header))
	for _, col := range header {
		if seen[col] {
			return query.Table{}, fmt.Errorf("duplicate column %q in header", col)
		}
		seen[col] = true
	}

	tbl := query.Table{Columns: header, Rows: make([]query.Row, 0)}
	for line := 2; ; line++ {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return query.Table{}, fmt.Errorf("failed to read row: %w", err)
		}
		if len(record) > len(header) {
			return query.Table{}, fmt.Errorf("line %d has %d fields, header has %d", line, len(record), len(header))
		}

		row := make(query.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}
