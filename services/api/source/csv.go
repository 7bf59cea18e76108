package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
)

// CSVSource reads the measurement table from a CSV file on disk.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a file-backed source.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Read loads the whole file into a Table. The first row is taken as headers;
// ragged data rows are padded or truncated to the header width.
func (s *CSVSource) Read(_ context.Context) (Table, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return Table{}, fmt.Errorf("open csv %s: %w", s.Path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv %s: %w", s.Path, err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("read csv %s: file has no header row", s.Path)
	}

	headers := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, len(headers))
		copy(row, rec)
		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows}, nil
}
