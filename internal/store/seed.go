package store

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"site-uptime-backend/internal/model"
)

func (s *gormStore) InsertSamples(ctx context.Context, samples []model.SiteSample) error {
	if len(samples) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).CreateInBatches(&samples, insertBatchSize).Error; err != nil {
		return fmt.Errorf("insert %d samples: %w", len(samples), err)
	}
	return nil
}

func (s *gormStore) InsertBusinessHours(ctx context.Context, hours []model.BusinessHours) error {
	if len(hours) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).CreateInBatches(&hours, insertBatchSize).Error; err != nil {
		return fmt.Errorf("insert %d business hours: %w", len(hours), err)
	}
	return nil
}

func (s *gormStore) UpsertTimezones(ctx context.Context, zones []model.SiteTimezone) error {
	if len(zones) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "site_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"timezone"}),
	}).CreateInBatches(&zones, insertBatchSize).Error
	if err != nil {
		return fmt.Errorf("upsert %d timezones: %w", len(zones), err)
	}
	return nil
}
