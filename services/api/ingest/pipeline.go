// Package ingest wires the load pipeline: raw source, schema normalization,
// anomaly labeling, snapshot construction.
package ingest

import (
	"context"
	"fmt"

	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/anomaly"
	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/dataset"
	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/schema"
	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/source"
)

// Loader builds the store's load function over a raw source. A failure in
// any stage aborts the whole load; no partial dataset is ever produced.
func Loader(src source.Source) dataset.LoadFunc {
	return func(ctx context.Context) (*dataset.Dataset, error) {
		table, err := src.Read(ctx)
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}

		records, err := schema.Normalize(table)
		if err != nil {
			return nil, fmt.Errorf("normalize source: %w", err)
		}

		return dataset.New(anomaly.Label(records)), nil
	}
}
