package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vegasq/rowcat/output"
	"github.com/vegasq/rowcat/query"
	"github.com/vegasq/rowcat/reader"
)

var (
	filePath      string
	whereFlag     string
	orderByFlag   string
	aggregateFlag string
	formatFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "rowcat",
	Short: "Filter, sort and aggregate tabular files",
	Long: `rowcat loads a CSV or Parquet file and runs a query pipeline over it:
an optional single-column filter, an optional single-column sort, and an
optional single-column aggregate. Without an aggregate the resulting rows
are printed; with one, a single scalar is.

Examples:
  rowcat --file phones.csv
  rowcat --file phones.csv --where "price>500"
  rowcat --file phones.csv --where "brand=xiaomi" --order-by "price=desc"
  rowcat --file phones.csv --aggregate "rating=avg"
  rowcat --file events.parquet --order-by "name=asc" -o csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRootCommand,
}

func init() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the input file (.parquet is read as parquet, anything else as CSV)")
	rootCmd.Flags().StringVarP(&whereFlag, "where", "w", "", `Filter: column<op>value with op one of < > = (e.g. "price>500")`)
	rootCmd.Flags().StringVar(&orderByFlag, "order-by", "", `Sort: column=asc|desc (e.g. "price=desc")`)
	rootCmd.Flags().StringVarP(&aggregateFlag, "aggregate", "a", "", `Aggregate: column=avg|sum|min|max|count|median (e.g. "rating=avg")`)
	rootCmd.Flags().StringVarP(&formatFlag, "output", "o", "table", "Output format: table, csv, jsonl")
	_ = rootCmd.MarkFlagRequired("file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRootCommand(cmd *cobra.Command, args []string) error {
	// Parse directives before touching the file so a malformed expression
	// fails fast.
	pipeline, err := buildPipeline()
	if err != nil {
		return err
	}

	formatter, err := newFormatter(formatFlag)
	if err != nil {
		return err
	}

	tbl, err := reader.ReadFile(filePath)
	if err != nil {
		return err
	}

	result, err := query.Run(tbl, pipeline)
	if err != nil {
		return err
	}

	if result.Scalar != nil {
		return formatter.Format(result.Scalar.Table())
	}
	return formatter.Format(result.Table)
}

// buildPipeline parses the directive flags into a pipeline.
func buildPipeline() (query.Pipeline, error) {
	var pipeline query.Pipeline

	if whereFlag != "" {
		pred, err := query.ParsePredicate(whereFlag)
		if err != nil {
			return query.Pipeline{}, err
		}
		pipeline.Filter = &pred
	}

	if orderByFlag != "" {
		order, err := query.ParseOrderDirective(orderByFlag)
		if err != nil {
			return query.Pipeline{}, err
		}
		pipeline.Order = &order
	}

	if aggregateFlag != "" {
		agg, err := query.ParseAggregateDirective(aggregateFlag)
		if err != nil {
			return query.Pipeline{}, err
		}
		pipeline.Aggregate = &agg
	}

	return pipeline, nil
}

// newFormatter selects an output formatter writing to stdout.
func newFormatter(format string) (output.Formatter, error) {
	switch format {
	case "table":
		return output.NewTableFormatter(os.Stdout), nil
	case "csv":
		return output.NewCSVFormatter(os.Stdout), nil
	case "json", "jsonl":
		return output.NewJSONFormatter(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (supported: table, csv, jsonl)", format)
	}
}
