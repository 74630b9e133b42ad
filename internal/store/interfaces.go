package store

import (
	"context"
	"time"

	"site-uptime-backend/internal/model"
)

//go:generate mockgen -source=interfaces.go -destination=./mocks/store_mock.go -package=mocks

// SampleStore reads status samples.
type SampleStore interface {
	// FetchSamples returns samples of the given sites observed in [since, until],
	// ordered by site id, then newest first.
	FetchSamples(ctx context.Context, siteIDs []int64, since, until time.Time) ([]model.SiteSample, error)
}

// ScheduleStore reads business hours.
type ScheduleStore interface {
	FetchSchedule(ctx context.Context, siteIDs []int64) ([]model.BusinessHours, error)
}

// TimezoneStore is the authoritative source of site timezones.
type TimezoneStore interface {
	ListTimezones(ctx context.Context) ([]model.SiteTimezone, error)
}

// JobStore persists report jobs.
type JobStore interface {
	CreateJob(ctx context.Context, job *model.ReportJob) error
	UpdateJob(ctx context.Context, reportID string, update JobUpdate) error
	GetJob(ctx context.Context, reportID string) (*model.ReportJob, error)
}

// SeedStore bulk-loads seed data.
type SeedStore interface {
	InsertSamples(ctx context.Context, samples []model.SiteSample) error
	InsertBusinessHours(ctx context.Context, hours []model.BusinessHours) error
	UpsertTimezones(ctx context.Context, zones []model.SiteTimezone) error
}
