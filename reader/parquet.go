package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/rowcat/query"
)

// ReadParquet reads a parquet file into a Table. The schema's top-level
// fields give the column order; every cell value is normalized to its
// canonical string form so the pipeline's per-value coercion applies
// uniformly to both parquet and CSV input.
//
// The entire file is loaded into memory, so this is not suitable for
// files larger than available memory.
func ReadParquet(path string) (query.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return query.Table{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stat, err := file.Stat()
	if err != nil {
		return query.Table{}, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return query.Table{}, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name()
	}

	r := parquet.NewReader(pqFile)
	defer func() { _ = r.Close() }()

	tbl := query.Table{Columns: columns, Rows: make([]query.Row, 0)}
	for {
		raw := make(map[string]interface{})
		if err := r.Read(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return query.Table{}, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(query.Row, len(columns))
		for _, col := range columns {
			row[col] = cellText(raw[col])
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	return tbl, nil
}

// cellText converts a parquet cell value to the raw text form the
// pipeline works with. Nulls become empty strings, matching the CSV
// representation of a missing value.
func cellText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case int:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}
