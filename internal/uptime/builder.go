package uptime

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"site-uptime-backend/internal/model"
	"site-uptime-backend/internal/schedule"
)

// ErrNoSamples is returned when a report is requested for a site without samples.
var ErrNoSamples = errors.New("no samples for site")

// StatusReport is the six-figure summary of one site.
type StatusReport struct {
	SiteID                  int64
	ActiveMinutesLastHour   float64
	InactiveMinutesLastHour float64
	ActiveHoursLastDay      float64
	InactiveHoursLastDay    float64
	ActiveHoursLastWeek     float64
	InactiveHoursLastWeek   float64
}

// BuildSiteReport localizes samples and asOf into loc and runs both estimators.
// It is a pure function of its arguments.
func BuildSiteReport(siteID int64, samples []model.SiteSample, sched schedule.Schedule, loc *time.Location, asOf time.Time) (StatusReport, error) {
	if len(samples) == 0 {
		return StatusReport{}, fmt.Errorf("site %d: %w", siteID, ErrNoSamples)
	}

	local := make([]Sample, len(samples))
	for i, s := range samples {
		if !s.Status.Valid() {
			return StatusReport{}, fmt.Errorf("site %d: %w: %q", siteID, ErrUnknownStatus, s.Status)
		}
		local[i] = Sample{Status: s.Status, At: s.ObservedAt.In(loc)}
	}
	// Newest first; a no-op for rows already ordered by the store.
	slices.SortStableFunc(local, func(a, b Sample) int {
		return b.At.Compare(a.At)
	})
	localAsOf := asOf.In(loc)

	hour, err := LastHourStatus(local, localAsOf, sched)
	if err != nil {
		return StatusReport{}, fmt.Errorf("site %d: %w", siteID, err)
	}
	window, err := CumulativeStatus(local, localAsOf, sched)
	if err != nil {
		return StatusReport{}, fmt.Errorf("site %d: %w", siteID, err)
	}

	return StatusReport{
		SiteID:                  siteID,
		ActiveMinutesLastHour:   hour.ActiveMinutes,
		InactiveMinutesLastHour: hour.InactiveMinutes,
		ActiveHoursLastDay:      window.ActiveDayHours,
		InactiveHoursLastDay:    window.InactiveDayHours,
		ActiveHoursLastWeek:     window.ActiveWeekHours,
		InactiveHoursLastWeek:   window.InactiveWeekHours,
	}, nil
}
