package tzcache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"site-uptime-backend/internal/logger"
	"site-uptime-backend/internal/model"
	"site-uptime-backend/internal/store/mocks"
)

func TestCache_MissTriggersSingleRebuild(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tzStore := mocks.NewMockTimezoneStore(ctrl)

	tzStore.EXPECT().
		ListTimezones(gomock.Any()).
		Return([]model.SiteTimezone{
			{SiteID: 1, Timezone: "America/Chicago"},
			{SiteID: 2, Timezone: "Asia/Kolkata"},
		}, nil).
		Times(1)

	c := New(tzStore, 0, logger.Nop())

	zones, err := c.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "America/Chicago", 2: "Asia/Kolkata"}, zones)

	// served from cache
	again, err := c.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, zones, again)
}

func TestCache_InvalidateAndRebuild(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tzStore := mocks.NewMockTimezoneStore(ctrl)

	gomock.InOrder(
		tzStore.EXPECT().ListTimezones(gomock.Any()).
			Return([]model.SiteTimezone{{SiteID: 1, Timezone: "America/Chicago"}}, nil),
		tzStore.EXPECT().ListTimezones(gomock.Any()).
			Return([]model.SiteTimezone{{SiteID: 1, Timezone: "America/Denver"}}, nil),
	)

	c := New(tzStore, 0, logger.Nop())
	_, err := c.GetAll(context.Background())
	require.NoError(t, err)

	c.Invalidate()
	zones, err := c.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "America/Denver", zones[1])
}

func TestCache_RebuildError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tzStore := mocks.NewMockTimezoneStore(ctrl)

	storeErr := errors.New("db down")
	tzStore.EXPECT().ListTimezones(gomock.Any()).Return(nil, storeErr).Times(2)

	c := New(tzStore, 0, logger.Nop())
	_, err := c.GetAll(context.Background())
	assert.ErrorIs(t, err, storeErr)

	// nothing was cached, so the next read retries the store
	_, err = c.GetAll(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
