package source

import "context"

// Table is a raw tabular payload: one header row plus data rows, every cell
// still a string. The core pipeline treats the source as opaque beyond this.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Source reads the raw measurement table from wherever it lives.
type Source interface {
	Read(ctx context.Context) (Table, error)
}
