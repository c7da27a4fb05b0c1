package query

import (
	"math"
	"strconv"
	"strings"
)

// ValueKind tags the comparison type of a coerced cell.
type ValueKind int

const (
	KindText ValueKind = iota
	KindNumber
)

// Value is the comparable form of a raw cell: a number if the whole
// trimmed cell parses as one, text otherwise. The original string form is
// always retained so mixed-kind comparisons can fall back to it.
type Value struct {
	Kind ValueKind
	Num  float64
	Raw  string
}

// Coerce decides the comparison type of a raw cell. The decision is made
// independently per value, not per column; a column may hold a mix of
// numeric and textual cells. The empty string coerces to text.
func Coerce(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(n) {
			// NaN would break the total order; keep it textual.
			return Value{Kind: KindNumber, Num: n, Raw: raw}
		}
	}
	return Value{Kind: KindText, Raw: raw}
}

// CompareValues is a total order over coerced values, returning -1, 0 or
// +1. Two numbers compare numerically, with exact float equality. Any
// other pairing compares the original string forms lexicographically;
// this is the documented fallback when only one side is numeric, and it
// places the empty string before any non-empty text.
func CompareValues(a, b Value) int {
	if a.Kind == KindNumber && b.Kind == KindNumber {
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a.Raw, b.Raw)
}
