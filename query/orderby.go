package query

import (
	"fmt"
	"sort"
)

// ApplyOrderBy returns a permutation of tbl ordered by the coerced value
// of the directive's column. The sort is stable: rows whose compared
// values are equal keep their relative input order. The input table is
// left untouched; the result holds a newly ordered row slice.
//
// Returns ErrUnknownColumn if the column is outside the table schema.
func ApplyOrderBy(tbl Table, d OrderDirective) (Table, error) {
	if !tbl.HasColumn(d.Column) {
		return Table{}, fmt.Errorf("%w: %q", ErrUnknownColumn, d.Column)
	}

	sorted := make([]Row, len(tbl.Rows))
	copy(sorted, tbl.Rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := CompareValues(Coerce(sorted[i][d.Column]), Coerce(sorted[j][d.Column]))
		if d.Desc {
			return cmp > 0
		}
		return cmp < 0
	})

	return Table{Columns: tbl.Columns, Rows: sorted}, nil
}
