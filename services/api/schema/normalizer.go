// Package schema maps raw source tables with arbitrary column headers onto
// the canonical measurement schema. Resolution is alias-driven and
// all-or-nothing: either every required logical field is found or the load
// fails with a MappingError naming what is missing.
package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/dataset"
	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/source"
)

// UnknownSource fills source_name when the source has no such column.
const UnknownSource = "Unknown Source"

// Logical field names.
const (
	FieldCountryCode  = "country_code"
	FieldCity         = "city"
	FieldLocation     = "location"
	FieldPollutant    = "pollutant"
	FieldSourceName   = "source_name"
	FieldUnit         = "unit"
	FieldValue        = "value"
	FieldLastUpdated  = "last_updated"
	FieldCountryLabel = "country_label"
	FieldLatitude     = "latitude"
	FieldLongitude    = "longitude"
)

type fieldSpec struct {
	field    string
	aliases  []string
	optional bool
}

// fieldSpecs maps each logical field to its acceptable source headers, in
// priority order. New source spellings are added here, not in code paths.
var fieldSpecs = []fieldSpec{
	{field: FieldCountryCode, aliases: []string{"country_code", "countrycode", "code"}},
	{field: FieldCity, aliases: []string{"city"}},
	{field: FieldLocation, aliases: []string{"location", "station", "site"}},
	{field: FieldPollutant, aliases: []string{"pollutant", "parameter"}},
	{field: FieldSourceName, aliases: []string{"source_name", "sourcename", "source"}, optional: true},
	{field: FieldUnit, aliases: []string{"unit"}},
	{field: FieldValue, aliases: []string{"value", "concentration"}},
	{field: FieldLastUpdated, aliases: []string{"last_updated", "date_local", "date", "timestamp"}},
	{field: FieldCountryLabel, aliases: []string{"country_label", "country"}},
	{field: FieldLatitude, aliases: []string{"latitude", "lat"}},
	{field: FieldLongitude, aliases: []string{"longitude", "lon"}},
}

// MappingError reports every unresolved required field together with the
// headers actually seen, so a mismatched export is diagnosable from the
// error alone.
type MappingError struct {
	MissingFields     []string
	NormalizedHeaders []string
	OriginalHeaders   []string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf(
		"source columns do not match the expected schema: missing logical fields %v (normalized headers: %v, original headers: %v)",
		e.MissingFields, e.NormalizedHeaders, e.OriginalHeaders,
	)
}

// CanonicalizeHeader trims, lowercases and collapses internal whitespace of a
// raw column header to a single underscore.
func CanonicalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(h))), "_")
}

// Normalize resolves the table's headers against the alias table and converts
// every row into a canonical record. Numeric fields that fail to parse become
// null rather than failing the load; anomaly fields are left zeroed for the
// detector. Row order is preserved.
func Normalize(table source.Table) ([]dataset.Record, error) {
	normalized := make([]string, 0, len(table.Headers))
	index := make(map[string]int, len(table.Headers))
	for i, h := range table.Headers {
		n := CanonicalizeHeader(h)
		normalized = append(normalized, n)
		if _, seen := index[n]; !seen {
			index[n] = i
		}
	}

	columns := make(map[string]int, len(fieldSpecs))
	missing := make([]string, 0)
	for _, spec := range fieldSpecs {
		col, ok := resolve(spec.aliases, index)
		if !ok {
			if !spec.optional {
				missing = append(missing, spec.field)
			}
			continue
		}
		columns[spec.field] = col
	}

	if len(missing) > 0 {
		return nil, &MappingError{
			MissingFields:     missing,
			NormalizedHeaders: normalized,
			OriginalHeaders:   table.Headers,
		}
	}

	records := make([]dataset.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		rec := dataset.Record{
			CountryCode:  cell(row, columns, FieldCountryCode),
			CountryLabel: cell(row, columns, FieldCountryLabel),
			City:         cell(row, columns, FieldCity),
			Location:     cell(row, columns, FieldLocation),
			Pollutant:    cell(row, columns, FieldPollutant),
			SourceName:   UnknownSource,
			Unit:         cell(row, columns, FieldUnit),
			Value:        numericCell(row, columns, FieldValue),
			LastUpdated:  cell(row, columns, FieldLastUpdated),
			Lat:          numericCell(row, columns, FieldLatitude),
			Lon:          numericCell(row, columns, FieldLongitude),
		}
		if _, ok := columns[FieldSourceName]; ok {
			if name := cell(row, columns, FieldSourceName); name != "" {
				rec.SourceName = name
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

func resolve(aliases []string, index map[string]int) (int, bool) {
	for _, alias := range aliases {
		if col, ok := index[alias]; ok {
			return col, true
		}
	}
	return 0, false
}

func cell(row []string, columns map[string]int, field string) string {
	col, ok := columns[field]
	if !ok || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func numericCell(row []string, columns map[string]int, field string) *float64 {
	raw := cell(row, columns, field)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
