// Package anomaly labels measurement records as statistical outliers using a
// single interquartile-range threshold over the whole value column. The
// threshold is deliberately global across pollutants and units; per-pollutant
// baselines are out of scope.
package anomaly

import (
	"math"
	"sort"

	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/dataset"
)

// Thresholds holds the fences and median computed over the non-null values.
type Thresholds struct {
	Q1     float64
	Q3     float64
	IQR    float64
	Lower  float64
	Upper  float64
	Median float64
}

// Compute derives IQR thresholds from the non-null values of the records.
// The second return is false when there are no numeric values at all.
func Compute(records []dataset.Record) (Thresholds, bool) {
	values := make([]float64, 0, len(records))
	for i := range records {
		if records[i].Value != nil {
			values = append(values, *records[i].Value)
		}
	}
	if len(values) == 0 {
		return Thresholds{}, false
	}

	sort.Float64s(values)

	q1 := quantile(values, 0.25)
	q3 := quantile(values, 0.75)
	iqr := q3 - q1

	return Thresholds{
		Q1:     q1,
		Q3:     q3,
		IQR:    iqr,
		Lower:  q1 - 1.5*iqr,
		Upper:  q3 + 1.5*iqr,
		Median: quantile(values, 0.5),
	}, true
}

// Label computes thresholds once and flags every record in place. Records
// with a null value are never anomalous; non-anomalous records get a zero
// score. An all-null value column leaves every record unflagged.
func Label(records []dataset.Record) []dataset.Record {
	t, ok := Compute(records)
	if !ok {
		for i := range records {
			records[i].IsAnomaly = false
			records[i].AnomalyScore = 0
		}
		return records
	}

	for i := range records {
		records[i].IsAnomaly, records[i].AnomalyScore = t.Flag(records[i].Value)
	}
	return records
}

// Flag evaluates one value against the fences. The score is the absolute
// distance from the median for anomalies and exactly zero otherwise.
func (t Thresholds) Flag(value *float64) (bool, float64) {
	if value == nil {
		return false, 0
	}
	v := *value
	if v < t.Lower || v > t.Upper {
		return true, math.Abs(v - t.Median)
	}
	return false, 0
}

// quantile estimates the q-th quantile of sorted values with linear
// interpolation between the two nearest ranks.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
