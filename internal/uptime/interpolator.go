// Package uptime estimates how long a site was active or inactive over
// trailing windows from sparse status samples.
package uptime

import (
	"errors"
	"fmt"
	"math"
	"time"

	"site-uptime-backend/internal/model"
	"site-uptime-backend/internal/schedule"
)

// epsilon keeps the proportional estimator defined when a window has no samples.
const epsilon = 1e-6

const (
	hourWindow = time.Hour
	dayWindow  = 24 * time.Hour
	weekWindow = 7 * 24 * time.Hour
)

// ErrUnknownStatus is returned for a sample whose status is neither active nor inactive.
var ErrUnknownStatus = errors.New("unknown sample status")

// Sample is a status reading in the site's local time.
type Sample struct {
	Status model.Status
	At     time.Time
}

// HourSummary holds the trailing-hour estimate in minutes.
type HourSummary struct {
	ActiveMinutes   float64
	InactiveMinutes float64
}

// WindowSummary holds the trailing-day and trailing-week estimates in hours.
type WindowSummary struct {
	ActiveDayHours    float64
	InactiveDayHours  float64
	ActiveWeekHours   float64
	InactiveWeekHours float64
}

type byStatus[T int | time.Duration] struct {
	active   T
	inactive T
}

func (b *byStatus[T]) add(s model.Status, v T) error {
	switch s {
	case model.StatusActive:
		b.active += v
	case model.StatusInactive:
		b.inactive += v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return nil
}

// LastHourStatus treats status as a step function sampled backward from asOf.
// Samples must be ordered newest first. Each sample inside business hours owns
// the time up to the next newer sample (or asOf). The first sample older than
// one hour owns whatever is left of the hour.
func LastHourStatus(samples []Sample, asOf time.Time, sched schedule.Schedule) (HourSummary, error) {
	windowStart := asOf.Add(-hourWindow)
	next := asOf

	var acc byStatus[time.Duration]
	for _, s := range samples {
		if s.At.After(asOf) || !sched.IsWithinHours(s.At) {
			continue
		}

		if !s.At.Before(windowStart) {
			if err := acc.add(s.Status, next.Sub(s.At)); err != nil {
				return HourSummary{}, err
			}
			next = s.At
			continue
		}

		rest := next.Sub(windowStart)
		if rest < 0 {
			rest = 0
		}
		if err := acc.add(s.Status, rest); err != nil {
			return HourSummary{}, err
		}
		break
	}

	return HourSummary{
		ActiveMinutes:   round2(acc.active.Minutes()),
		InactiveMinutes: round2(acc.inactive.Minutes()),
	}, nil
}

// CumulativeStatus converts the share of active and inactive samples inside
// business hours into hours of the window's business-hour budget. The day
// budget is the business time elapsed in the 24 hours ending at the newest
// sample; the week budget is the schedule's weekly total.
func CumulativeStatus(samples []Sample, asOf time.Time, sched schedule.Schedule) (WindowSummary, error) {
	dayStart := asOf.Add(-dayWindow)
	weekStart := asOf.Add(-weekWindow)

	var (
		day, week byStatus[int]
		latest    *Sample
	)
	for i := range samples {
		s := samples[i]
		if s.At.After(asOf) {
			continue
		}
		if latest == nil {
			latest = &samples[i]
		}
		if !sched.IsWithinHours(s.At) {
			continue
		}
		if !s.At.Before(weekStart) {
			if err := week.add(s.Status, 1); err != nil {
				return WindowSummary{}, err
			}
		}
		if !s.At.Before(dayStart) {
			if err := day.add(s.Status, 1); err != nil {
				return WindowSummary{}, err
			}
		}
	}
	if latest == nil {
		return WindowSummary{}, nil
	}

	dayBudget := sched.BracketingHours(latest.At).ElapsedBusinessHours(latest.At)
	weekBudget := sched.WeeklyBusinessHours()

	return WindowSummary{
		ActiveDayHours:    share(day.active, day, dayBudget),
		InactiveDayHours:  share(day.inactive, day, dayBudget),
		ActiveWeekHours:   share(week.active, week, weekBudget),
		InactiveWeekHours: share(week.inactive, week, weekBudget),
	}, nil
}

func share(count int, all byStatus[int], budget time.Duration) float64 {
	total := float64(all.active + all.inactive)
	return round2(float64(count) / (total + epsilon) * budget.Hours())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
