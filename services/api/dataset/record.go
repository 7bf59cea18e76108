package dataset

// Record is one canonical measurement row. Value, Lat and Lon are nullable;
// string fields use "" for values absent from the source.
type Record struct {
	CountryCode  string   `json:"country_code"`
	CountryLabel string   `json:"country_label"`
	City         string   `json:"city"`
	Location     string   `json:"location"`
	Pollutant    string   `json:"pollutant"`
	SourceName   string   `json:"source_name"`
	Unit         string   `json:"unit"`
	Value        *float64 `json:"value"`
	LastUpdated  string   `json:"last_updated"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	IsAnomaly    bool     `json:"is_anomaly"`
	AnomalyScore float64  `json:"anomaly_score"`
}

// Dataset is an immutable snapshot of labeled records in source row order.
// A reload builds a new Dataset; a published one is never mutated.
type Dataset struct {
	records []Record
}

// New wraps labeled records into a snapshot.
func New(records []Record) *Dataset {
	return &Dataset{records: records}
}

// Len returns the number of records in the snapshot.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records exposes the underlying rows (callers must not mutate).
func (d *Dataset) Records() []Record {
	return d.records
}
