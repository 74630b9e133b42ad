package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"site-uptime-backend/internal/model"
	"site-uptime-backend/internal/schedule"
)

func TestTimestamp(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  time.Time
		expectErr bool
	}{
		{
			name:     "seed format with fraction",
			raw:      "2023-01-25 18:13:22.47922 UTC",
			expected: time.Date(2023, 1, 25, 18, 13, 22, 479220000, time.UTC),
		},
		{
			name:     "seed format without fraction",
			raw:      "2023-01-24 09:08:13 UTC",
			expected: time.Date(2023, 1, 24, 9, 8, 13, 0, time.UTC),
		},
		{
			name:     "rfc3339 with offset",
			raw:      "2023-01-24T03:00:00-06:00",
			expected: time.Date(2023, 1, 24, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "no zone suffix",
			raw:      "2023-01-24 09:08:13",
			expected: time.Date(2023, 1, 24, 9, 8, 13, 0, time.UTC),
		},
		{
			name:      "garbage",
			raw:       "yesterday",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Timestamp(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestClock(t *testing.T) {
	testCases := []struct {
		raw       string
		expected  time.Duration
		expectErr bool
	}{
		{raw: "09:00:00", expected: 9 * time.Hour},
		{raw: "9:30", expected: 9*time.Hour + 30*time.Minute},
		{raw: "23:59:59.999999", expected: schedule.Day - time.Microsecond},
		{raw: "00:00:00", expected: 0},
		{raw: "24:00:00", expected: schedule.Day},
		{raw: "24:00:01", expectErr: true},
		{raw: "12:60:00", expectErr: true},
		{raw: "noon", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := Clock(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05:07", FormatClock(9*time.Hour+5*time.Minute+7*time.Second))
	assert.Equal(t, "23:59:59", FormatClock(schedule.Day-time.Microsecond))
}

func TestWeekdayStatusSiteID(t *testing.T) {
	d, err := Weekday(" 6 ")
	require.NoError(t, err)
	assert.Equal(t, 6, d)
	_, err = Weekday("7")
	assert.Error(t, err)

	s, err := Status("Inactive")
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, s)
	_, err = Status("unknown")
	assert.Error(t, err)

	id, err := SiteID("8419537941919820732")
	require.NoError(t, err)
	assert.Equal(t, int64(8419537941919820732), id)
	_, err = SiteID("abc")
	assert.Error(t, err)
}
