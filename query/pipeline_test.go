package query

import (
	"errors"
	"reflect"
	"testing"
)

func TestRun_EndToEnd(t *testing.T) {
	tbl := Table{
		Columns: []string{"name", "price"},
		Rows: []Row{
			{"name": "A", "price": "100"},
			{"name": "B", "price": "600"},
			{"name": "C", "price": "700"},
		},
	}

	filter, err := ParsePredicate("price>500")
	if err != nil {
		t.Fatalf("ParsePredicate() error = %v", err)
	}
	order, err := ParseOrderDirective("price=desc")
	if err != nil {
		t.Fatalf("ParseOrderDirective() error = %v", err)
	}

	t.Run("filter only", func(t *testing.T) {
		result, err := Run(tbl, Pipeline{Filter: &filter})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if want := []string{"B", "C"}; !reflect.DeepEqual(names(result.Table), want) {
			t.Errorf("Run() rows = %v, want %v", names(result.Table), want)
		}
	})

	t.Run("filter then sort", func(t *testing.T) {
		result, err := Run(tbl, Pipeline{Filter: &filter, Order: &order})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if want := []string{"C", "B"}; !reflect.DeepEqual(names(result.Table), want) {
			t.Errorf("Run() rows = %v, want %v", names(result.Table), want)
		}
	})

	t.Run("filter then aggregate", func(t *testing.T) {
		agg, err := ParseAggregateDirective("price=avg")
		if err != nil {
			t.Fatalf("ParseAggregateDirective() error = %v", err)
		}

		result, err := Run(tbl, Pipeline{Filter: &filter, Aggregate: &agg})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if result.Scalar == nil {
			t.Fatal("Run() with aggregate returned no scalar")
		}
		if result.Scalar.Value != 650 {
			t.Errorf("Run() scalar = %v, want 650", result.Scalar.Value)
		}
	})
}

func TestRun_EmptyPipeline(t *testing.T) {
	tbl := phonesTable()

	result, err := Run(tbl, Pipeline{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !reflect.DeepEqual(result.Table, tbl) {
		t.Errorf("Run() with no stages should return the input table unchanged")
	}
	if result.Scalar != nil {
		t.Errorf("Run() with no aggregate returned a scalar")
	}
}

func TestRun_CountAfterFilter(t *testing.T) {
	tbl := phonesTable()

	filter := Predicate{Column: "brand", Op: OpEqual, Value: "xiaomi"}
	agg := AggregateDirective{Column: "name", Func: AggCount}

	result, err := Run(tbl, Pipeline{Filter: &filter, Aggregate: &agg})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Scalar == nil || result.Scalar.Value != 2 {
		t.Errorf("Run() count = %v, want 2", result.Scalar)
	}
}

func TestRun_StageErrorAborts(t *testing.T) {
	tbl := phonesTable()

	tests := []struct {
		name     string
		pipeline Pipeline
		wantErr  error
	}{
		{
			name:     "unknown filter column",
			pipeline: Pipeline{Filter: &Predicate{Column: "cost", Op: OpGreater, Value: "5"}},
			wantErr:  ErrUnknownColumn,
		},
		{
			name:     "unknown order column",
			pipeline: Pipeline{Order: &OrderDirective{Column: "cost"}},
			wantErr:  ErrUnknownColumn,
		},
		{
			name:     "unknown aggregate column",
			pipeline: Pipeline{Aggregate: &AggregateDirective{Column: "cost", Func: AggAvg}},
			wantErr:  ErrUnknownColumn,
		},
		{
			name: "empty aggregate after filter",
			pipeline: Pipeline{
				Filter:    &Predicate{Column: "price", Op: OpGreater, Value: "10000"},
				Aggregate: &AggregateDirective{Column: "price", Func: AggAvg},
			},
			wantErr: ErrEmptyAggregate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Run(tbl, tt.pipeline)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			// No partial output alongside an error.
			if result.Scalar != nil || result.Table.Rows != nil {
				t.Errorf("Run() returned partial result %+v alongside error", result)
			}
		})
	}
}
