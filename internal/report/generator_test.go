package report

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"site-uptime-backend/internal/artifact"
	"site-uptime-backend/internal/artifact/mocks"
	"site-uptime-backend/internal/uptime"
)

type fakeAggregator struct {
	reports []uptime.StatusReport
	err     error
	gotAsOf time.Time
	gotZone map[int64]string
}

func (f *fakeAggregator) Run(_ context.Context, zones map[int64]string, asOf time.Time) ([]uptime.StatusReport, error) {
	f.gotAsOf = asOf
	f.gotZone = zones
	return f.reports, f.err
}

type fakeZones struct {
	zones map[int64]string
	err   error
}

func (f fakeZones) GetAll(context.Context) (map[int64]string, error) {
	return f.zones, f.err
}

func TestGenerator_Generate(t *testing.T) {
	storage, err := artifact.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	asOf := time.Date(2023, 1, 25, 18, 0, 0, 0, time.UTC)
	agg := &fakeAggregator{reports: []uptime.StatusReport{{SiteID: 1, ActiveMinutesLastHour: 60}}}
	zones := fakeZones{zones: map[int64]string{1: "America/New_York"}}
	gen := NewGenerator(agg, zones, storage, FixedAsOf(asOf))

	key, err := gen.Generate(context.Background(), "01ABC")
	require.NoError(t, err)
	assert.Equal(t, "reports/report_01ABC.csv", key)
	assert.Equal(t, asOf, agg.gotAsOf)
	assert.Equal(t, zones.zones, agg.gotZone)

	rc, err := storage.Open(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1,60.00,0.00,0.00,0.00,0.00,0.00", lines[1])
}

func TestGenerator_Errors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("timezones unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockStorage(ctrl)
		gen := NewGenerator(&fakeAggregator{}, fakeZones{err: boom}, storage, WallClockAsOf)

		_, err := gen.Generate(context.Background(), "r1")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("aggregation fails before anything is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockStorage(ctrl)
		gen := NewGenerator(&fakeAggregator{err: boom}, fakeZones{}, storage, WallClockAsOf)

		_, err := gen.Generate(context.Background(), "r1")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("artifact write fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockStorage(ctrl)
		storage.EXPECT().
			Put(gomock.Any(), "reports/report_r1.csv", gomock.Any(), "text/csv").
			Return(artifact.ErrAlreadyExists)
		gen := NewGenerator(&fakeAggregator{}, fakeZones{}, storage, WallClockAsOf)

		_, err := gen.Generate(context.Background(), "r1")
		assert.ErrorIs(t, err, artifact.ErrAlreadyExists)
	})
}
