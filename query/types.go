package query

import (
	"errors"
	"strconv"
)

// Errors reported by the pipeline. Callers match them with errors.Is;
// the wrapped message carries the offending expression or column name.
var (
	// ErrMalformedExpression indicates a directive string that could not
	// be split or validated.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrUnknownColumn indicates a directive referencing a column that is
	// absent from the table's column list.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrEmptyAggregate indicates avg/min/max/median requested over zero
	// numeric-parseable values.
	ErrEmptyAggregate = errors.New("empty aggregate")
)

// Row maps column names to raw cell text. Missing cells are empty
// strings, never omitted keys: every row in a Table carries exactly the
// keys listed in Table.Columns.
type Row map[string]string

// Table is an in-memory ordered collection of rows plus the shared
// column schema. Row order is load order and is significant: it is the
// stable baseline the sort engine preserves across equal keys.
//
// Pipeline stages never mutate a Table in place; each stage returns a
// new Table value sharing the column list.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether name is part of the table schema.
func (t Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Op is a predicate comparison operator.
type Op int

const (
	OpLess    Op = iota // <
	OpGreater           // >
	OpEqual             // =
)

// String returns the operator's source form.
func (o Op) String() string {
	switch o {
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpEqual:
		return "="
	default:
		return "?"
	}
}

// holds reports whether a three-way comparison outcome satisfies the
// operator. cmp follows the CompareValues convention (-1, 0, +1).
func (o Op) holds(cmp int) bool {
	switch o {
	case OpLess:
		return cmp < 0
	case OpGreater:
		return cmp > 0
	case OpEqual:
		return cmp == 0
	default:
		return false
	}
}

// Predicate is a single-column filter condition: column, operator and the
// literal to compare against. The literal is kept in raw string form and
// coerced per comparison, exactly like cell values.
type Predicate struct {
	Column string
	Op     Op
	Value  string
}

// String re-serializes the predicate to its source form, so that
// ParsePredicate(p.String()) yields an equivalent predicate.
func (p Predicate) String() string {
	return p.Column + p.Op.String() + p.Value
}

// OrderDirective names the column to sort by and the direction.
type OrderDirective struct {
	Column string
	Desc   bool
}

// AggregateFunc names an aggregate function. Values are the canonical
// lowercase spellings accepted by ParseAggregateDirective.
type AggregateFunc string

const (
	AggAvg    AggregateFunc = "avg"
	AggSum    AggregateFunc = "sum"
	AggMin    AggregateFunc = "min"
	AggMax    AggregateFunc = "max"
	AggMedian AggregateFunc = "median"

	// AggCount counts all rows in the current table, whether or not the
	// aggregated column's cell parses numerically or is empty.
	AggCount AggregateFunc = "count"
)

// AggregateDirective names the column to reduce and the function to
// reduce it with.
type AggregateDirective struct {
	Column string
	Func   AggregateFunc
}

// Scalar is the result of an aggregate stage.
type Scalar struct {
	Func  AggregateFunc
	Value float64
}

// String formats the value in its shortest decimal form; counts and
// whole-number results render without a fractional part.
func (s Scalar) String() string {
	return strconv.FormatFloat(s.Value, 'g', -1, 64)
}

// Table renders the scalar as a one-column, one-row table headed by the
// function name, so formatters treat aggregate output like any row set.
func (s Scalar) Table() Table {
	name := string(s.Func)
	return Table{
		Columns: []string{name},
		Rows:    []Row{{name: s.String()}},
	}
}
