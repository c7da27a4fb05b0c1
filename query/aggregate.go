package query

import (
	"fmt"
	"sort"
)

// Aggregate reduces one column of tbl to a single scalar.
//
// count is the number of rows in the current table, regardless of cell
// content. The numeric functions (sum, avg, min, max, median) operate on
// the numeric-parseable subset of the column's cells; empty and
// non-numeric cells are excluded. sum of an empty subset is 0; avg, min,
// max and median over an empty subset return ErrEmptyAggregate.
//
// Returns ErrUnknownColumn if the column is outside the table schema.
func Aggregate(tbl Table, d AggregateDirective) (Scalar, error) {
	if !tbl.HasColumn(d.Column) {
		return Scalar{}, fmt.Errorf("%w: %q", ErrUnknownColumn, d.Column)
	}

	if d.Func == AggCount {
		return Scalar{Func: AggCount, Value: float64(len(tbl.Rows))}, nil
	}

	nums := numericColumn(tbl, d.Column)

	if d.Func == AggSum {
		return Scalar{Func: AggSum, Value: sum(nums)}, nil
	}

	if len(nums) == 0 {
		return Scalar{}, fmt.Errorf("%w: %s over column %q with no numeric values", ErrEmptyAggregate, d.Func, d.Column)
	}

	switch d.Func {
	case AggAvg:
		return Scalar{Func: AggAvg, Value: sum(nums) / float64(len(nums))}, nil
	case AggMin:
		min := nums[0]
		for _, n := range nums[1:] {
			if n < min {
				min = n
			}
		}
		return Scalar{Func: AggMin, Value: min}, nil
	case AggMax:
		max := nums[0]
		for _, n := range nums[1:] {
			if n > max {
				max = n
			}
		}
		return Scalar{Func: AggMax, Value: max}, nil
	case AggMedian:
		return Scalar{Func: AggMedian, Value: median(nums)}, nil
	default:
		return Scalar{}, fmt.Errorf("unknown aggregate function: %s", d.Func)
	}
}

// numericColumn extracts the numeric-parseable subset of a column, in
// row order.
func numericColumn(tbl Table, column string) []float64 {
	nums := make([]float64, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		if v := Coerce(row[column]); v.Kind == KindNumber {
			nums = append(nums, v.Num)
		}
	}
	return nums
}

func sum(nums []float64) float64 {
	total := 0.0
	for _, n := range nums {
		total += n
	}
	return total
}

// median returns the middle value of nums, or the mean of the two middle
// values for an even count. nums must be non-empty and is not modified.
func median(nums []float64) float64 {
	sorted := append([]float64(nil), nums...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
