package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"site-uptime-backend/internal/artifact"
	"site-uptime-backend/internal/logger"
	"site-uptime-backend/internal/uptime"
)

// Aggregator computes reports for a set of sites.
type Aggregator interface {
	Run(ctx context.Context, zones map[int64]string, asOf time.Time) ([]uptime.StatusReport, error)
}

// TimezoneSource provides the full site -> zone map.
type TimezoneSource interface {
	GetAll(ctx context.Context) (map[int64]string, error)
}

// Generator produces a report file for every known site.
type Generator struct {
	aggregator Aggregator
	zones      TimezoneSource
	artifacts  artifact.Storage
	asOf       func() time.Time
}

// NewGenerator creates a Generator. asOf supplies the reference instant of each report.
func NewGenerator(agg Aggregator, zones TimezoneSource, artifacts artifact.Storage, asOf func() time.Time) *Generator {
	return &Generator{
		aggregator: agg,
		zones:      zones,
		artifacts:  artifacts,
		asOf:       asOf,
	}
}

// FixedAsOf always reports as of t.
func FixedAsOf(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// WallClockAsOf reports as of the moment a job starts.
func WallClockAsOf() time.Time {
	return time.Now().UTC()
}

// ArtifactKey is where the file of a report is stored.
func ArtifactKey(reportID string) string {
	return fmt.Sprintf("reports/report_%s.csv", reportID)
}

// Generate writes the report file and returns its key.
func (g *Generator) Generate(ctx context.Context, reportID string) (string, error) {
	zones, err := g.zones.GetAll(ctx)
	if err != nil {
		return "", fmt.Errorf("load timezones: %w", err)
	}

	asOf := g.asOf()
	reports, err := g.aggregator.Run(ctx, zones, asOf)
	if err != nil {
		return "", fmt.Errorf("aggregate: %w", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, reports); err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}

	key := ArtifactKey(reportID)
	if err := g.artifacts.Put(ctx, key, bytes.NewReader(buf.Bytes()), "text/csv"); err != nil {
		return "", fmt.Errorf("store artifact: %w", err)
	}
	sitesReported.WithLabelValues().Add(float64(len(reports)))

	logger.Ctx(ctx).Info().
		Time("as_of", asOf).
		Int("sites", len(zones)).
		Int("rows", len(reports)).
		Str("artifact", key).
		Msg("report written")
	return key, nil
}
