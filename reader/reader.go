package reader

import (
	"path/filepath"
	"strings"

	"github.com/vegasq/rowcat/query"
)

// ReadFile loads a tabular file into a Table, choosing the loader by
// extension: .parquet is read as parquet, anything else as CSV.
func ReadFile(path string) (query.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return ReadParquet(path)
	}
	return ReadCSV(path)
}
