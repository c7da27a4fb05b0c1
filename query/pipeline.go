package query

// Pipeline describes which stages to run over a loaded table. Nil stages
// are skipped; the non-nil ones always run in the fixed order filter,
// sort, aggregate.
type Pipeline struct {
	Filter    *Predicate
	Order     *OrderDirective
	Aggregate *AggregateDirective
}

// Result is the pipeline outcome: the final row set, or an aggregate
// scalar when the pipeline ends in an aggregate stage.
type Result struct {
	Table  Table
	Scalar *Scalar
}

// Run applies the pipeline stages to tbl in fixed order. Each stage
// receives the previous stage's output and produces a new value; the
// first stage error aborts the run and is returned unchanged, with no
// partial result.
func Run(tbl Table, p Pipeline) (Result, error) {
	var err error

	if p.Filter != nil {
		tbl, err = ApplyFilter(tbl, *p.Filter)
		if err != nil {
			return Result{}, err
		}
	}

	if p.Order != nil {
		tbl, err = ApplyOrderBy(tbl, *p.Order)
		if err != nil {
			return Result{}, err
		}
	}

	if p.Aggregate != nil {
		scalar, err := Aggregate(tbl, *p.Aggregate)
		if err != nil {
			return Result{}, err
		}
		return Result{Scalar: &scalar}, nil
	}

	return Result{Table: tbl}, nil
}
