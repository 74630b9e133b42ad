// Package schedule models per-weekday business hours of a site in its local time.
package schedule

import "time"

// Day is the length of a local day as a clock offset.
const Day = 24 * time.Hour

// Weekday numbers days from Monday (0) to Sunday (6).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayOf returns the weekday of t in t's own location.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// Hours is an open window expressed as offsets from local midnight.
type Hours struct {
	Open  time.Duration
	Close time.Duration
}

// AllDay is the window assumed for a weekday without an entry.
var AllDay = Hours{Open: 0, Close: Day}

// Length is Close-Open, or zero for an inverted window.
func (h Hours) Length() time.Duration {
	if h.Close < h.Open {
		return 0
	}
	return h.Close - h.Open
}

// Contains reports whether the clock offset falls inside [Open, Close].
func (h Hours) Contains(clock time.Duration) bool {
	return clock >= h.Open && clock <= h.Close
}

// Schedule holds the business hours of one site. A missing weekday means
// the site is open for the whole day.
type Schedule map[Weekday]Hours

// HoursOn returns the window for d, falling back to AllDay.
func (s Schedule) HoursOn(d Weekday) (Hours, bool) {
	h, ok := s[d]
	if !ok {
		return AllDay, false
	}
	return h, true
}

// IsWithinHours reports whether the local time of day of t lies within the
// business hours of t's weekday.
func (s Schedule) IsWithinHours(t time.Time) bool {
	h, ok := s[WeekdayOf(t)]
	if !ok {
		return true
	}
	return h.Contains(clockOf(t))
}

// WeeklyBusinessHours sums the open windows of Monday through Saturday.
// Sunday is not counted. A missing day contributes a full 24 hours.
func (s Schedule) WeeklyBusinessHours() time.Duration {
	var total time.Duration
	for d := Monday; d <= Saturday; d++ {
		h, _ := s.HoursOn(d)
		total += h.Length()
	}
	return total
}

// Bracket holds the boundaries around a local instant used to size the
// trailing-day window.
type Bracket struct {
	// PrevOpen and PrevClose are yesterday's window. When yesterday has no
	// entry both are yesterday's midnight, so yesterday adds nothing.
	PrevOpen  time.Time
	PrevClose time.Time
	// Open and Close are today's window; a day without an entry runs
	// midnight to midnight.
	Open  time.Time
	Close time.Time
}

// BracketingHours returns yesterday's close and today's window around t.
func (s Schedule) BracketingHours(t time.Time) Bracket {
	today := midnight(t)
	yesterday := today.AddDate(0, 0, -1)

	b := Bracket{
		PrevOpen:  yesterday,
		PrevClose: yesterday,
		Open:      today,
		Close:     at(today, Day),
	}
	if h, ok := s[WeekdayOf(yesterday)]; ok {
		b.PrevOpen = at(yesterday, h.Open)
		b.PrevClose = at(yesterday, h.Close)
	}
	if h, ok := s[WeekdayOf(t)]; ok {
		b.Open = at(today, h.Open)
		b.Close = at(today, h.Close)
	}
	return b
}

// ElapsedBusinessHours is the business time inside the 24 hours ending at t:
// the part of yesterday's window after t-24h plus today from open until t.
func (b Bracket) ElapsedBusinessHours(t time.Time) time.Duration {
	start := t.Add(-Day)
	if b.PrevOpen.After(start) {
		start = b.PrevOpen
	}

	var total time.Duration
	if b.PrevClose.After(start) {
		total += b.PrevClose.Sub(start)
	}

	end := t
	if b.Close.Before(end) {
		end = b.Close
	}
	if end.After(b.Open) {
		total += end.Sub(b.Open)
	}

	if total > Day {
		return Day
	}
	return total
}

func clockOf(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// at returns the wall-clock instant offset from the given local midnight.
func at(day time.Time, offset time.Duration) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, int(offset), day.Location())
}
