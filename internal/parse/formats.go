package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"site-uptime-backend/internal/model"
	"site-uptime-backend/internal/schedule"
)

var (
	clockRe      = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d{1,9}))?)?$`)
	utcSuffixRe  = regexp.MustCompile(`(?i)\s*(?:UTC|Z)$`)
	timestampFmt = []string{
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04:05.999999999",
	}
)

// Timestamp parses an absolute UTC instant such as "2023-01-25 18:13:22.47922 UTC".
// RFC3339 input is accepted as well.
func Timestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}

	s = utcSuffixRe.ReplaceAllString(s, "")
	for _, layout := range timestampFmt {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp: %q", raw)
}

// Clock parses a local time of day ("09:00", "17:30:00", "23:59:59.999999")
// into an offset from midnight. "24:00:00" is accepted as end of day.
func Clock(raw string) (time.Duration, error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, fmt.Errorf("unable to parse clock time: %q", raw)
	}

	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	sec := 0
	if m[3] != "" {
		sec, _ = strconv.Atoi(m[3])
	}
	var frac time.Duration
	if m[4] != "" {
		digits := m[4] + strings.Repeat("0", 9-len(m[4]))
		ns, _ := strconv.Atoi(digits)
		frac = time.Duration(ns)
	}

	if min > 59 || sec > 59 {
		return 0, fmt.Errorf("clock time out of range: %q", raw)
	}
	d := time.Duration(h)*time.Hour + time.Duration(min)*time.Minute + time.Duration(sec)*time.Second + frac
	if d > schedule.Day {
		return 0, fmt.Errorf("clock time out of range: %q", raw)
	}
	return d, nil
}

// FormatClock renders an offset from midnight as HH:MM:SS.
func FormatClock(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	return fmt.Sprintf("%02d:%02d:%02d", h, m, d/time.Second)
}

// Weekday parses a day number where 0 is Monday and 6 is Sunday.
func Weekday(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 || n > 6 {
		return 0, fmt.Errorf("unable to parse weekday: %q", raw)
	}
	return n, nil
}

// Status parses a sample status name, ignoring case and surrounding space.
func Status(raw string) (model.Status, error) {
	s := model.Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown status: %q", raw)
	}
	return s, nil
}

// SiteID parses a numeric site identifier.
func SiteID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse site id: %q", raw)
	}
	return id, nil
}
