package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/config"
	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/dataset"
	httpserver "github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/http"
	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/ingest"
	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/source"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var src source.Source
	switch cfg.SourceKind {
	case config.SourcePostgres:
		pg, err := source.NewPostgresSource(ctx, cfg.DatabaseURL, cfg.MeasurementsTable)
		if err != nil {
			log.Fatalf("source error: %v", err)
		}
		defer pg.Close()
		src = pg
	default:
		src = source.NewCSVSource(cfg.CSVPath)
	}

	store := dataset.NewStore(ingest.Loader(src))

	// Load once at startup; on failure the API keeps running and every data
	// endpoint retries lazily.
	if ds, err := store.Load(ctx); err != nil {
		log.Printf("initial load failed: %v", err)
	} else {
		log.Printf("loaded %d measurement rows", ds.Len())
	}

	srv := httpserver.New(cfg, store)
	log.Printf("REST API listening on %s", cfg.ListenAddr())

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
