package store

import (
	"context"
	"fmt"
	"time"

	"site-uptime-backend/internal/model"
)

func (s *gormStore) FetchSamples(ctx context.Context, siteIDs []int64, since, until time.Time) ([]model.SiteSample, error) {
	if len(siteIDs) == 0 {
		return nil, nil
	}

	var rows []model.SiteSample
	err := s.db.WithContext(ctx).
		Where("site_id IN ? AND observed_at >= ? AND observed_at <= ?", siteIDs, since.UTC(), until.UTC()).
		Order("site_id ASC").
		Order("observed_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch samples for %d sites: %w", len(siteIDs), err)
	}
	return rows, nil
}

func (s *gormStore) FetchSchedule(ctx context.Context, siteIDs []int64) ([]model.BusinessHours, error) {
	if len(siteIDs) == 0 {
		return nil, nil
	}

	var rows []model.BusinessHours
	err := s.db.WithContext(ctx).
		Where("site_id IN ?", siteIDs).
		Order("site_id ASC").
		Order("weekday ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch schedules for %d sites: %w", len(siteIDs), err)
	}
	return rows, nil
}

func (s *gormStore) ListTimezones(ctx context.Context) ([]model.SiteTimezone, error) {
	var rows []model.SiteTimezone
	if err := s.db.WithContext(ctx).Order("site_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list timezones: %w", err)
	}
	return rows, nil
}
