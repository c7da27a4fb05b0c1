// Package query implements the row pipeline at the heart of rowcat:
// compact expression parsing, per-value type coercion, and the filter,
// sort and aggregate engines that run over a loaded table.
//
// # Data Model
//
// A Table is an ordered list of column names plus rows, where every row
// maps each column to the raw cell text read from the source file. Cells
// stay strings; the numeric-or-textual decision is made per value at
// comparison time by Coerce.
//
// # Expressions
//
// Three compact mini-languages drive the pipeline:
//
//   - filter:    column<op>value, op one of < > =   ("price>500")
//   - order-by:  column=asc|desc                    ("price=desc")
//   - aggregate: column=function                    ("rating=avg")
//
// # Basic Usage
//
// Parse directives and run the pipeline:
//
//	pred, err := query.ParsePredicate("price>500")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := query.Run(tbl, query.Pipeline{Filter: &pred})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Comparison Semantics
//
// Each comparison coerces both operands independently. When both sides
// parse as numbers they compare numerically; otherwise both compare as
// their original string forms. A column may therefore hold a mix of
// numeric and textual cells without any comparison failing.
//
// # Error Handling
//
// The package reports three terminal error kinds, matched with errors.Is:
//
//   - ErrMalformedExpression: a directive string could not be parsed
//   - ErrUnknownColumn: a directive references a column the table lacks
//   - ErrEmptyAggregate: avg/min/max/median over zero numeric cells
package query
