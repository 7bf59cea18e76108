package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"strconv"
)

// Source kinds accepted in SOURCE.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds environment-driven settings for the REST API.
type Config struct {
	SourceKind        string
	CSVPath           string
	DatabaseURL       string
	MeasurementsTable string
	Port              int
	DefaultLimit      int
	BearerToken       string
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		SourceKind:        SourceCSV,
		CSVPath:           "preprocessed_openaq_ready.csv",
		MeasurementsTable: "measurements",
		Port:              8080,
		DefaultLimit:      10000,
	}

	if kind := os.Getenv("SOURCE"); kind != "" {
		if kind != SourceCSV && kind != SourcePostgres {
			return cfg, fmt.Errorf("invalid SOURCE: %s (want csv or postgres)", kind)
		}
		cfg.SourceKind = kind
	}

	if path := os.Getenv("CSV_PATH"); path != "" {
		cfg.CSVPath = path
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.SourceKind == SourcePostgres && cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is required when SOURCE=postgres")
	}

	if table := os.Getenv("MEASUREMENTS_TABLE"); table != "" {
		cfg.MeasurementsTable = table
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	} else if portStr := os.Getenv("API_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid API_PORT: %s", portStr)
		}
	}

	if limitStr := os.Getenv("API_DEFAULT_LIMIT"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			cfg.DefaultLimit = limit
		} else {
			return cfg, fmt.Errorf("invalid API_DEFAULT_LIMIT: %s", limitStr)
		}
	}

	cfg.BearerToken = os.Getenv("API_BEARER_TOKEN")

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
