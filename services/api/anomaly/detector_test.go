package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/dataset"
)

func f(v float64) *float64 {
	return &v
}

func recordsWithValues(values []*float64) []dataset.Record {
	records := make([]dataset.Record, 0, len(values))
	for _, v := range values {
		records = append(records, dataset.Record{Pollutant: "pm25", Value: v})
	}
	return records
}

func TestComputeFixtureThresholds(t *testing.T) {
	records := recordsWithValues([]*float64{f(1), f(2), f(3), f(4), f(5), f(100)})

	th, ok := Compute(records)
	require.True(t, ok)

	assert.InDelta(t, 2.25, th.Q1, 1e-9)
	assert.InDelta(t, 4.75, th.Q3, 1e-9)
	assert.InDelta(t, 2.5, th.IQR, 1e-9)
	assert.InDelta(t, -1.5, th.Lower, 1e-9)
	assert.InDelta(t, 8.5, th.Upper, 1e-9)
	assert.InDelta(t, 3.5, th.Median, 1e-9)
}

func TestLabelFlagsOnlyOutliers(t *testing.T) {
	records := recordsWithValues([]*float64{f(1), f(2), f(3), f(4), f(5), f(100)})

	Label(records)

	for i, rec := range records[:5] {
		assert.False(t, rec.IsAnomaly, "record %d should not be anomalous", i)
		assert.Zero(t, rec.AnomalyScore, "record %d score", i)
	}
	require.True(t, records[5].IsAnomaly)
	assert.InDelta(t, 96.5, records[5].AnomalyScore, 1e-9)
}

func TestLabelAllNullValues(t *testing.T) {
	records := recordsWithValues([]*float64{nil, nil, nil})

	_, ok := Compute(records)
	assert.False(t, ok)

	Label(records)
	for i, rec := range records {
		assert.False(t, rec.IsAnomaly, "record %d", i)
		assert.Zero(t, rec.AnomalyScore, "record %d", i)
	}
}

func TestLabelNullValuesNeverAnomalous(t *testing.T) {
	records := recordsWithValues([]*float64{f(1), nil, f(2), f(3), f(4), f(5), f(100)})

	Label(records)

	assert.False(t, records[1].IsAnomaly)
	assert.Zero(t, records[1].AnomalyScore)
}

func TestLabelScoreInvariants(t *testing.T) {
	records := recordsWithValues([]*float64{f(-50), f(0.5), f(1), f(1.5), f(2), f(2.5), f(3), nil, f(75)})

	Label(records)

	for i, rec := range records {
		assert.GreaterOrEqual(t, rec.AnomalyScore, 0.0, "record %d", i)
		if !rec.IsAnomaly {
			assert.Zero(t, rec.AnomalyScore, "non-anomalous record %d must score zero", i)
		}
	}
}

func TestComputeSingleValue(t *testing.T) {
	records := recordsWithValues([]*float64{f(42)})

	th, ok := Compute(records)
	require.True(t, ok)
	assert.Equal(t, 42.0, th.Q1)
	assert.Equal(t, 42.0, th.Q3)
	assert.Zero(t, th.IQR)

	Label(records)
	assert.False(t, records[0].IsAnomaly)
}
