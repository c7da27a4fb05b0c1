package output

import (
	"io"

	"github.com/vegasq/rowcat/query"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a table in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the table in the formatter's specific format
	Format(tbl query.Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
