// Package seed bulk-loads sample, business hour and timezone CSV exports.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"site-uptime-backend/internal/logger"
	"site-uptime-backend/internal/model"
	"site-uptime-backend/internal/parse"
	"site-uptime-backend/internal/store"
)

// DefaultBatchSize is the number of rows sent to the store per insert.
const DefaultBatchSize = 1000

// Default file names inside a seed directory.
const (
	SamplesFile   = "store_status.csv"
	HoursFile     = "menu_hours.csv"
	TimezonesFile = "timezones.csv"
)

// Stats counts what a single file produced.
type Stats struct {
	Rows    int
	Loaded  int
	Skipped int
}

// Loader reads seed CSVs and writes them through a SeedStore.
type Loader struct {
	store     store.SeedStore
	batchSize int
	log       logger.Logger
}

// NewLoader creates a Loader. A batchSize <= 0 uses DefaultBatchSize.
func NewLoader(s store.SeedStore, batchSize int, log logger.Logger) *Loader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Loader{store: s, batchSize: batchSize, log: logger.Component(log, "seed")}
}

// LoadSamples reads store_id,status,timestamp_utc rows.
func (l *Loader) LoadSamples(ctx context.Context, r io.Reader) (Stats, error) {
	return load(ctx, l, r, []string{"store_id", "status", "timestamp_utc"},
		func(row record) (model.SiteSample, error) {
			id, err := parse.SiteID(row.get("store_id"))
			if err != nil {
				return model.SiteSample{}, err
			}
			status, err := parse.Status(row.get("status"))
			if err != nil {
				return model.SiteSample{}, err
			}
			at, err := parse.Timestamp(row.get("timestamp_utc"))
			if err != nil {
				return model.SiteSample{}, err
			}
			return model.SiteSample{SiteID: id, Status: status, ObservedAt: at}, nil
		},
		l.store.InsertSamples)
}

// LoadBusinessHours reads store_id,day,start_time_local,end_time_local rows.
// Clock values are normalized to HH:MM:SS.
func (l *Loader) LoadBusinessHours(ctx context.Context, r io.Reader) (Stats, error) {
	return load(ctx, l, r, []string{"store_id", "day", "start_time_local", "end_time_local"},
		func(row record) (model.BusinessHours, error) {
			id, err := parse.SiteID(row.get("store_id"))
			if err != nil {
				return model.BusinessHours{}, err
			}
			day, err := parse.Weekday(row.get("day"))
			if err != nil {
				return model.BusinessHours{}, err
			}
			open, err := parse.Clock(row.get("start_time_local"))
			if err != nil {
				return model.BusinessHours{}, err
			}
			closeAt, err := parse.Clock(row.get("end_time_local"))
			if err != nil {
				return model.BusinessHours{}, err
			}
			return model.BusinessHours{
				SiteID:     id,
				Weekday:    day,
				OpenLocal:  parse.FormatClock(open),
				CloseLocal: parse.FormatClock(closeAt),
			}, nil
		},
		l.store.InsertBusinessHours)
}

// LoadTimezones reads store_id,timezone_str rows. Zone names are checked
// against the tz database so a bad export fails at load time.
func (l *Loader) LoadTimezones(ctx context.Context, r io.Reader) (Stats, error) {
	return load(ctx, l, r, []string{"store_id", "timezone_str"},
		func(row record) (model.SiteTimezone, error) {
			id, err := parse.SiteID(row.get("store_id"))
			if err != nil {
				return model.SiteTimezone{}, err
			}
			zone := strings.TrimSpace(row.get("timezone_str"))
			if zone != "" {
				if _, err := time.LoadLocation(zone); err != nil {
					return model.SiteTimezone{}, fmt.Errorf("unknown timezone %q", zone)
				}
			}
			return model.SiteTimezone{SiteID: id, Timezone: zone}, nil
		},
		l.store.UpsertTimezones)
}

// LoadDir loads the three seed files found in dir. Missing files are skipped.
func (l *Loader) LoadDir(ctx context.Context, dir string) error {
	steps := []struct {
		name string
		load func(context.Context, io.Reader) (Stats, error)
	}{
		{TimezonesFile, l.LoadTimezones},
		{HoursFile, l.LoadBusinessHours},
		{SamplesFile, l.LoadSamples},
	}

	for _, step := range steps {
		path := filepath.Join(dir, step.name)
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			l.log.Warn().Str("file", path).Msg("seed file not found, skipping")
			continue
		}
		if err != nil {
			return err
		}
		stats, err := step.load(ctx, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
		l.log.Info().
			Str("file", path).
			Int("rows", stats.Rows).
			Int("loaded", stats.Loaded).
			Int("skipped", stats.Skipped).
			Msg("seed file loaded")
	}
	return nil
}

type record struct {
	cols   map[string]int
	fields []string
}

func (r record) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// load streams r, converting each row with parseRow and flushing every
// batchSize converted rows. Rows that fail to convert are logged and skipped.
func load[T any](ctx context.Context, l *Loader, r io.Reader, required []string,
	parseRow func(record) (T, error), flush func(context.Context, []T) error) (Stats, error) {

	var stats Stats
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return stats, nil
	}
	if err != nil {
		return stats, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return stats, fmt.Errorf("missing column %q", name)
		}
	}

	batch := make([]T, 0, l.batchSize)
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read row %d: %w", stats.Rows+1, err)
		}
		stats.Rows++

		v, err := parseRow(record{cols: cols, fields: fields})
		if err != nil {
			stats.Skipped++
			l.log.Warn().Err(err).Int("row", stats.Rows).Msg("skipping malformed seed row")
			continue
		}
		batch = append(batch, v)

		if len(batch) == l.batchSize {
			if err := flush(ctx, batch); err != nil {
				return stats, err
			}
			stats.Loaded += len(batch)
			batch = make([]T, 0, l.batchSize)
		}
	}

	if len(batch) > 0 {
		if err := flush(ctx, batch); err != nil {
			return stats, err
		}
		stats.Loaded += len(batch)
	}
	return stats, nil
}
