package aggregator

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"site-uptime-backend/internal/logger"
	"site-uptime-backend/internal/model"
	"site-uptime-backend/internal/parse"
	"site-uptime-backend/internal/schedule"
	"site-uptime-backend/internal/store"
	"site-uptime-backend/internal/uptime"
)

const (
	DefaultChunkSize = 100
	DefaultTimezone  = "America/Chicago"

	// SampleWindow is how far back samples are loaded; it covers the longest trailing window.
	SampleWindow = 7 * 24 * time.Hour
)

// ErrMalformedSchedule is returned for business-hour rows that cannot be interpreted.
var ErrMalformedSchedule = errors.New("malformed schedule")

// Aggregator computes status reports for many sites, one chunk of sites at a time.
type Aggregator struct {
	samples     store.SampleStore
	schedules   store.ScheduleStore
	chunkSize   int
	defaultZone string
	log         logger.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithChunkSize sets how many sites are fetched per round-trip.
func WithChunkSize(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.chunkSize = n
		}
	}
}

// WithDefaultTimezone sets the zone used for sites without one.
func WithDefaultTimezone(zone string) Option {
	return func(a *Aggregator) {
		if zone != "" {
			a.defaultZone = zone
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(a *Aggregator) {
		a.log = l
	}
}

// New creates an Aggregator reading from the given stores.
func New(samples store.SampleStore, schedules store.ScheduleStore, opts ...Option) *Aggregator {
	a := &Aggregator{
		samples:     samples,
		schedules:   schedules,
		chunkSize:   DefaultChunkSize,
		defaultZone: DefaultTimezone,
		log:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run builds one report per site with samples in the last week before asOf.
// Sites are processed in ascending id order, one chunk after another.
func (a *Aggregator) Run(ctx context.Context, zones map[int64]string, asOf time.Time) ([]uptime.StatusReport, error) {
	ids := make([]int64, 0, len(zones))
	for id := range zones {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	locs := newLocations(a.defaultZone)
	var reports []uptime.StatusReport
	for i, chunk := range chunkIDs(ids, a.chunkSize) {
		out, err := a.runChunk(ctx, chunk, zones, locs, asOf)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
		reports = append(reports, out...)
	}

	a.log.Info().
		Int("sites", len(ids)).
		Int("reports", len(reports)).
		Time("as_of", asOf).
		Msg("aggregation complete")
	return reports, nil
}

func (a *Aggregator) runChunk(ctx context.Context, ids []int64, zones map[int64]string, locs *locations, asOf time.Time) ([]uptime.StatusReport, error) {
	start := time.Now()
	defer func() {
		chunkDuration.WithLabelValues().Observe(time.Since(start).Seconds())
	}()

	samples, err := a.samples.FetchSamples(ctx, ids, asOf.Add(-SampleWindow), asOf)
	if err != nil {
		return nil, err
	}
	rows, err := a.schedules.FetchSchedule(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 || len(rows) == 0 {
		a.log.Debug().
			Int("sites", len(ids)).
			Int("samples", len(samples)).
			Int("schedule_rows", len(rows)).
			Msg("skipping chunk without data")
		return nil, nil
	}

	schedules, err := buildSchedules(rows)
	if err != nil {
		return nil, err
	}

	reports := make([]uptime.StatusReport, 0, len(ids))
	for siteID, run := range siteRuns(samples) {
		loc, err := locs.get(zones[siteID])
		if err != nil {
			return nil, fmt.Errorf("site %d: %w", siteID, err)
		}
		report, err := uptime.BuildSiteReport(siteID, run, schedules[siteID], loc, asOf)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// chunkIDs splits ids into consecutive slices of at most size elements.
func chunkIDs(ids []int64, size int) [][]int64 {
	if size <= 0 {
		size = DefaultChunkSize
	}
	chunks := make([][]int64, 0, (len(ids)+size-1)/size)
	for c := range slices.Chunk(ids, size) {
		chunks = append(chunks, c)
	}
	return chunks
}

// siteRuns yields the contiguous runs of rows sharing a site id. Rows must be
// sorted by site id; runs are never empty.
func siteRuns(rows []model.SiteSample) iter.Seq2[int64, []model.SiteSample] {
	return func(yield func(int64, []model.SiteSample) bool) {
		start := 0
		for i := 1; i <= len(rows); i++ {
			if i < len(rows) && rows[i].SiteID == rows[start].SiteID {
				continue
			}
			if !yield(rows[start].SiteID, rows[start:i]) {
				return
			}
			start = i
		}
	}
}

// buildSchedules turns business-hour rows into per-site schedules.
func buildSchedules(rows []model.BusinessHours) (map[int64]schedule.Schedule, error) {
	out := make(map[int64]schedule.Schedule)
	for _, r := range rows {
		if r.Weekday < int(schedule.Monday) || r.Weekday > int(schedule.Sunday) {
			return nil, fmt.Errorf("%w: site %d weekday %d", ErrMalformedSchedule, r.SiteID, r.Weekday)
		}
		open, err := parse.Clock(r.OpenLocal)
		if err != nil {
			return nil, fmt.Errorf("%w: site %d: %w", ErrMalformedSchedule, r.SiteID, err)
		}
		closing, err := parse.Clock(r.CloseLocal)
		if err != nil {
			return nil, fmt.Errorf("%w: site %d: %w", ErrMalformedSchedule, r.SiteID, err)
		}

		s, ok := out[r.SiteID]
		if !ok {
			s = schedule.Schedule{}
			out[r.SiteID] = s
		}
		s[schedule.Weekday(r.Weekday)] = schedule.Hours{Open: open, Close: closing}
	}
	return out, nil
}

// locations memoizes time.LoadLocation for one run.
type locations struct {
	fallback string
	byName   map[string]*time.Location
}

func newLocations(fallback string) *locations {
	return &locations{fallback: fallback, byName: make(map[string]*time.Location)}
}

func (l *locations) get(name string) (*time.Location, error) {
	if name == "" {
		name = l.fallback
	}
	if loc, ok := l.byName[name]; ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	l.byName[name] = loc
	return loc, nil
}
