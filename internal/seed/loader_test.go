package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"site-uptime-backend/internal/logger"
	"site-uptime-backend/internal/model"
	"site-uptime-backend/internal/store/mocks"
)

func TestLoadSamples_Batches(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSeedStore(ctrl)

	var got [][]model.SiteSample
	s.EXPECT().InsertSamples(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []model.SiteSample) error {
			got = append(got, rows)
			return nil
		}).Times(2)

	in := "store_id,status,timestamp_utc\n" +
		"1,active,2023-01-25 18:13:22.47922 UTC\n" +
		"1,INACTIVE,2023-01-25 17:13:22 UTC\n" +
		"2,sleeping,2023-01-25 17:13:22 UTC\n" +
		"2,active,2023-01-24T09:00:00Z\n"

	stats, err := NewLoader(s, 2, logger.Nop()).LoadSamples(context.Background(), strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, Stats{Rows: 4, Loaded: 3, Skipped: 1}, stats)

	require.Len(t, got, 2)
	assert.Len(t, got[0], 2)
	assert.Len(t, got[1], 1)
	assert.Equal(t, model.StatusInactive, got[0][1].Status)
	assert.Equal(t, time.Date(2023, 1, 25, 18, 13, 22, 479220000, time.UTC), got[0][0].ObservedAt)
	assert.Equal(t, int64(2), got[1][0].SiteID)
}

func TestLoadBusinessHours_NormalizesClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSeedStore(ctrl)
	s.EXPECT().InsertBusinessHours(gomock.Any(), []model.BusinessHours{
		{SiteID: 5, Weekday: 0, OpenLocal: "09:00:00", CloseLocal: "17:30:00"},
	}).Return(nil)

	in := "store_id,day,start_time_local,end_time_local\n" +
		"5,0,9:00,17:30:00\n" +
		"5,7,09:00:00,17:00:00\n"

	stats, err := NewLoader(s, 0, logger.Nop()).LoadBusinessHours(context.Background(), strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
}

func TestLoadTimezones(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSeedStore(ctrl)
	s.EXPECT().UpsertTimezones(gomock.Any(), []model.SiteTimezone{
		{SiteID: 1, Timezone: "Asia/Beirut"},
		{SiteID: 2, Timezone: ""},
	}).Return(nil)

	in := "store_id,timezone_str\n1,Asia/Beirut\n2,\n3,Mars/Olympus\n"
	stats, err := NewLoader(s, 0, logger.Nop()).LoadTimezones(context.Background(), strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, Stats{Rows: 3, Loaded: 2, Skipped: 1}, stats)
}

func TestLoad_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSeedStore(ctrl)
	l := NewLoader(s, 0, logger.Nop())

	_, err := l.LoadTimezones(context.Background(), strings.NewReader("id,zone\n1,UTC\n"))
	assert.ErrorContains(t, err, `missing column "store_id"`)

	stats, err := l.LoadTimezones(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, stats)

	boom := errors.New("disk full")
	s.EXPECT().UpsertTimezones(gomock.Any(), gomock.Any()).Return(boom)
	_, err = l.LoadTimezones(context.Background(), strings.NewReader("store_id,timezone_str\n1,UTC\n"))
	assert.ErrorIs(t, err, boom)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TimezonesFile), []byte("store_id,timezone_str\n1,UTC\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, SamplesFile), []byte("store_id,status,timestamp_utc\n1,active,2023-01-25 18:13:22 UTC\n"), 0o644))

	ctrl := gomock.NewController(t)
	s := mocks.NewMockSeedStore(ctrl)
	gomock.InOrder(
		s.EXPECT().UpsertTimezones(gomock.Any(), gomock.Len(1)).Return(nil),
		s.EXPECT().InsertSamples(gomock.Any(), gomock.Len(1)).Return(nil),
	)

	require.NoError(t, NewLoader(s, 0, logger.Nop()).LoadDir(context.Background(), dir))
}
