package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measurements.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSourceRead(t *testing.T) {
	path := writeCSV(t, "City,Value\nDelhi,142.5\nDenver,12\n")

	table, err := NewCSVSource(path).Read(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"City", "Value"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Delhi", "142.5"}, table.Rows[0])
}

func TestCSVSourcePadsRaggedRows(t *testing.T) {
	path := writeCSV(t, "City,Value,Unit\nDelhi,142.5\n")

	table, err := NewCSVSource(path).Read(context.Background())
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"Delhi", "142.5", ""}, table.Rows[0])
}

func TestCSVSourceMissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "missing.csv")).Read(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCSVSourceEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := NewCSVSource(path).Read(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}
