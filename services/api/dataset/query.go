package dataset

import "sort"

// DefaultLimit caps query results when the caller does not set one.
const DefaultLimit = 10000

// Criteria holds the filters for one measurement query.
type Criteria struct {
	Countries     []string
	Pollutants    []string
	OnlyAnomalies bool
	Limit         int
}

// QueryResult is a filtered page of records. Count reflects the rows actually
// returned after the limit is applied, not the total match count.
type QueryResult struct {
	Count int      `json:"count"`
	Data  []Record `json:"data"`
}

// FilterValues lists the distinct values available for each filter dimension.
type FilterValues struct {
	Countries  []string `json:"countries"`
	Pollutants []string `json:"pollutants"`
	Cities     []string `json:"cities"`
}

// GroupSummary aggregates the value column for one group key. The aggregates
// are null when the group has no numeric values.
type GroupSummary struct {
	GroupKey        string   `json:"group_key"`
	NumMeasurements int      `json:"num_measurements"`
	AvgValue        *float64 `json:"avg_value"`
	MinValue        *float64 `json:"min_value"`
	MaxValue        *float64 `json:"max_value"`
}

// SummaryReport is the dataset-wide overview served by /summary.
type SummaryReport struct {
	TotalRows     int            `json:"total_rows"`
	NumCountries  int            `json:"num_countries"`
	NumCities     int            `json:"num_cities"`
	NumPollutants int            `json:"num_pollutants"`
	ByCountry     []GroupSummary `json:"summary_by_country"`
	ByPollutant   []GroupSummary `json:"summary_by_pollutant"`
}

// Filters returns the distinct non-null country labels, pollutants and cities
// across the whole snapshot, each list sorted.
func (d *Dataset) Filters() FilterValues {
	countries := make(map[string]struct{})
	pollutants := make(map[string]struct{})
	cities := make(map[string]struct{})

	for i := range d.records {
		addDistinct(countries, d.records[i].CountryLabel)
		addDistinct(pollutants, d.records[i].Pollutant)
		addDistinct(cities, d.records[i].City)
	}

	return FilterValues{
		Countries:  sortedKeys(countries),
		Pollutants: sortedKeys(pollutants),
		Cities:     sortedKeys(cities),
	}
}

// Query returns the records matching every supplied criterion, in snapshot
// order, truncated to the limit. An empty filter set imposes no restriction.
func (d *Dataset) Query(c Criteria) QueryResult {
	limit := c.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	countrySet := toSet(c.Countries)
	pollutantSet := toSet(c.Pollutants)

	matched := make([]Record, 0)
	for i := range d.records {
		rec := d.records[i]
		if len(countrySet) > 0 {
			if _, ok := countrySet[rec.CountryLabel]; !ok {
				continue
			}
		}
		if len(pollutantSet) > 0 {
			if _, ok := pollutantSet[rec.Pollutant]; !ok {
				continue
			}
		}
		if c.OnlyAnomalies && !rec.IsAnomaly {
			continue
		}
		matched = append(matched, rec)
		if len(matched) >= limit {
			break
		}
	}

	return QueryResult{Count: len(matched), Data: matched}
}

// Summary computes the overview counts and the per-country and per-pollutant
// aggregate tables. Records with a null group key are excluded from grouping;
// aggregates within a group cover non-null values only.
func (d *Dataset) Summary() SummaryReport {
	filters := d.Filters()

	return SummaryReport{
		TotalRows:     len(d.records),
		NumCountries:  len(filters.Countries),
		NumCities:     len(filters.Cities),
		NumPollutants: len(filters.Pollutants),
		ByCountry:     d.groupValues(func(r Record) string { return r.CountryLabel }),
		ByPollutant:   d.groupValues(func(r Record) string { return r.Pollutant }),
	}
}

type valueAgg struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (d *Dataset) groupValues(key func(Record) string) []GroupSummary {
	groups := make(map[string]*valueAgg)

	for i := range d.records {
		rec := d.records[i]
		k := key(rec)
		if k == "" {
			continue
		}
		agg, ok := groups[k]
		if !ok {
			agg = &valueAgg{}
			groups[k] = agg
		}
		if rec.Value == nil {
			continue
		}
		v := *rec.Value
		if agg.count == 0 || v < agg.min {
			agg.min = v
		}
		if agg.count == 0 || v > agg.max {
			agg.max = v
		}
		agg.count++
		agg.sum += v
	}

	out := make([]GroupSummary, 0, len(groups))
	for _, k := range sortedGroupKeys(groups) {
		agg := groups[k]
		row := GroupSummary{GroupKey: k, NumMeasurements: agg.count}
		if agg.count > 0 {
			avg := agg.sum / float64(agg.count)
			mn, mx := agg.min, agg.max
			row.AvgValue = &avg
			row.MinValue = &mn
			row.MaxValue = &mx
		}
		out = append(out, row)
	}
	return out
}

func addDistinct(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedGroupKeys(groups map[string]*valueAgg) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
