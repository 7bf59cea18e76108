package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Anil0806/AQI-Monitoring-Anomaly-Detection-Dashboard/services/api/dataset"
)

// handleHealth reports liveness and whether a dataset is loaded.
// GET /health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"data_loaded": s.store.Loaded(),
	})
}

// handleFilters returns the distinct filter values for the dashboard.
// GET /filters
func (s *Server) handleFilters(c *gin.Context) {
	ds, err := s.store.Dataset(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ds.Filters())
}

// handleMapData is the main data endpoint used by the dashboard: filtered
// rows with lat/lon and anomaly labels.
// GET /map-data?country=&pollutant=&only_anomalies=&limit=
func (s *Server) handleMapData(c *gin.Context) {
	criteria := dataset.Criteria{
		Countries:  splitList(c.Query("country")),
		Pollutants: splitList(c.Query("pollutant")),
		Limit:      s.cfg.DefaultLimit,
	}

	if v := c.Query("only_anomalies"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid only_anomalies"})
			return
		}
		criteria.OnlyAnomalies = b
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		criteria.Limit = limit
	}

	ds, err := s.store.Dataset(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ds.Query(criteria))
}

// handleSummary returns dataset-wide statistics grouped by country and by
// pollutant.
// GET /summary
func (s *Server) handleSummary(c *gin.Context) {
	ds, err := s.store.Dataset(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ds.Summary())
}

// splitList parses a single value or comma-separated list query parameter.
// Tokens are trimmed and empty tokens dropped; an empty input means no filter.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
