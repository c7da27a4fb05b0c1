package query

import (
	"fmt"
	"strings"
)

// ParsePredicate parses a compact filter expression of the form
// column<op>value, where op is one of < > =. The string is scanned left
// to right; the first byte matching an operator symbol splits it into
// column and value, both of which must be non-empty.
//
// Examples: "price>500", "brand=xiaomi", "name<m".
func ParsePredicate(expr string) (Predicate, error) {
	for i := 0; i < len(expr); i++ {
		var op Op
		switch expr[i] {
		case '<':
			op = OpLess
		case '>':
			op = OpGreater
		case '=':
			op = OpEqual
		default:
			continue
		}

		column, value := expr[:i], expr[i+1:]
		if column == "" || value == "" {
			return Predicate{}, fmt.Errorf("%w: %q: column and value must be non-empty", ErrMalformedExpression, expr)
		}
		return Predicate{Column: column, Op: op, Value: value}, nil
	}
	return Predicate{}, fmt.Errorf("%w: %q: expected column<op>value with op one of < > =", ErrMalformedExpression, expr)
}

// ParseOrderDirective parses a sort expression of the form
// column=asc|desc. The direction keyword is matched case-insensitively.
func ParseOrderDirective(expr string) (OrderDirective, error) {
	column, direction, err := splitKeyword(expr)
	if err != nil {
		return OrderDirective{}, err
	}

	switch direction {
	case "asc":
		return OrderDirective{Column: column}, nil
	case "desc":
		return OrderDirective{Column: column, Desc: true}, nil
	default:
		return OrderDirective{}, fmt.Errorf("%w: %q: direction must be asc or desc", ErrMalformedExpression, expr)
	}
}

// ParseAggregateDirective parses an aggregate expression of the form
// column=function, where function is one of avg, sum, min, max, count or
// median. The function name is matched case-insensitively.
func ParseAggregateDirective(expr string) (AggregateDirective, error) {
	column, name, err := splitKeyword(expr)
	if err != nil {
		return AggregateDirective{}, err
	}

	switch fn := AggregateFunc(name); fn {
	case AggAvg, AggSum, AggMin, AggMax, AggCount, AggMedian:
		return AggregateDirective{Column: column, Func: fn}, nil
	default:
		return AggregateDirective{}, fmt.Errorf("%w: %q: unknown aggregate function %q", ErrMalformedExpression, expr, name)
	}
}

// splitKeyword splits a column=keyword expression at its first '=' and
// lowercases the keyword. Shared by the order-by and aggregate parsers.
func splitKeyword(expr string) (column, keyword string, err error) {
	i := strings.IndexByte(expr, '=')
	if i < 0 {
		return "", "", fmt.Errorf("%w: %q: expected column=<keyword>", ErrMalformedExpression, expr)
	}

	column, keyword = expr[:i], strings.ToLower(expr[i+1:])
	if column == "" || keyword == "" {
		return "", "", fmt.Errorf("%w: %q: column and keyword must be non-empty", ErrMalformedExpression, expr)
	}
	return column, keyword, nil
}
