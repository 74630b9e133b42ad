package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"site-uptime-backend/internal/model"
)

func (s *gormStore) CreateJob(ctx context.Context, job *model.ReportJob) error {
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("create report job %s: %w", job.ReportID, err)
	}
	return nil
}

func (s *gormStore) GetJob(ctx context.Context, reportID string) (*model.ReportJob, error) {
	var job model.ReportJob
	err := s.db.WithContext(ctx).Where("report_id = ?", reportID).Take(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report job %s: %w", reportID, err)
	}
	return &job, nil
}

// UpdateJob applies a status transition with a conditional update so that a
// job never moves backwards or leaves a terminal state.
func (s *gormStore) UpdateJob(ctx context.Context, reportID string, update JobUpdate) error {
	from := update.Status.Predecessors()
	if len(from) == 0 {
		return fmt.Errorf("%w: to %q", ErrInvalidTransition, update.Status)
	}

	cols := map[string]any{"status": update.Status}
	switch update.Status {
	case model.JobRunning:
		cols["started_at"] = update.At.UTC()
	case model.JobFinished:
		if update.Filename == "" {
			return fmt.Errorf("%w: finished job %s without filename", ErrInvalidTransition, reportID)
		}
		cols["finished_at"] = update.At.UTC()
		cols["filename"] = update.Filename
	case model.JobFailed:
		cols["finished_at"] = update.At.UTC()
	}

	res := s.db.WithContext(ctx).
		Model(&model.ReportJob{}).
		Where("report_id = ? AND status IN ?", reportID, from).
		Updates(cols)
	if res.Error != nil {
		return fmt.Errorf("update report job %s: %w", reportID, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	current, err := s.GetJob(ctx, reportID)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, update.Status)
}
