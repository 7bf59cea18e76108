package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads the measurement table from a Postgres table. Column
// names become headers and every cell is rendered back to a string, so the
// normalizer sees the same shape it would from a CSV export.
type PostgresSource struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresSource connects a pool and binds it to one table.
func NewPostgresSource(ctx context.Context, databaseURL, table string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &PostgresSource{pool: pool, table: table}, nil
}

// Close releases the pool resources.
func (s *PostgresSource) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Read selects every row of the bound table.
func (s *PostgresSource) Read(ctx context.Context) (Table, error) {
	ident := pgx.Identifier(strings.Split(s.table, ".")).Sanitize()

	rows, err := s.pool.Query(ctx, "SELECT * FROM "+ident)
	if err != nil {
		return Table{}, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()

	descs := rows.FieldDescriptions()
	headers := make([]string, 0, len(descs))
	for _, d := range descs {
		headers = append(headers, d.Name)
	}

	out := make([][]string, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return Table{}, fmt.Errorf("scan %s: %w", s.table, err)
		}
		row := make([]string, len(headers))
		for i, v := range values {
			if v == nil {
				continue
			}
			row[i] = fmt.Sprint(v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("read %s: %w", s.table, err)
	}

	return Table{Headers: headers, Rows: out}, nil
}
