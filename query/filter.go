package query

import "fmt"

// ApplyFilter keeps the rows of tbl whose cell in the predicate's column
// satisfies the comparison, preserving their relative order. Both the
// cell and the predicate literal are coerced per comparison: two numbers
// compare numerically (exact equality for =), anything else compares as
// original strings.
//
// Returns ErrUnknownColumn if the predicate references a column outside
// the table schema.
func ApplyFilter(tbl Table, p Predicate) (Table, error) {
	if !tbl.HasColumn(p.Column) {
		return Table{}, fmt.Errorf("%w: %q", ErrUnknownColumn, p.Column)
	}

	literal := Coerce(p.Value)

	kept := make([]Row, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		if p.Op.holds(CompareValues(Coerce(row[p.Column]), literal)) {
			kept = append(kept, row)
		}
	}

	return Table{Columns: tbl.Columns, Rows: kept}, nil
}
