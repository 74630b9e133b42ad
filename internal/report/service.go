// Package report runs asynchronous report jobs: a job is created pending,
// picked up by a worker, and ends finished with a CSV artifact or failed.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/oklog/ulid/v2"

	"site-uptime-backend/internal/artifact"
	"site-uptime-backend/internal/logger"
	"site-uptime-backend/internal/model"
	"site-uptime-backend/internal/store"
)

// ArtifactGenerator produces the file of one report and returns its key.
type ArtifactGenerator interface {
	Generate(ctx context.Context, reportID string) (string, error)
}

// NewReportID mints a short, sortable, opaque report id.
var NewReportID = func() string {
	return ulid.Make().String()
}

// Options tunes a Service.
type Options struct {
	Workers   int
	QueueSize int
	// Now stamps job transitions; defaults to UTC wall-clock time.
	Now func() time.Time
}

// Service accepts report requests and answers status queries.
type Service struct {
	jobs      store.JobStore
	generator ArtifactGenerator
	artifacts artifact.Storage
	pool      *WorkerPool
	now       func() time.Time
	log       logger.Logger
}

// NewService wires a Service and its worker pool. Call Start before submitting.
func NewService(jobs store.JobStore, gen ArtifactGenerator, artifacts artifact.Storage, opts Options, log logger.Logger) *Service {
	s := &Service{
		jobs:      jobs,
		generator: gen,
		artifacts: artifacts,
		now:       opts.Now,
		log:       log,
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	s.pool = NewWorkerPool(opts.Workers, opts.QueueSize, s.process, log)
	return s
}

// Start launches the workers.
func (s *Service) Start(ctx context.Context) {
	s.pool.Start(ctx)
}

// Stop waits for running jobs and marks jobs that never started as failed.
func (s *Service) Stop() {
	ctx := context.Background()
	for _, id := range s.pool.Stop() {
		if err := s.jobs.UpdateJob(ctx, id, store.JobUpdate{Status: model.JobFailed, At: s.now()}); err != nil {
			s.log.Error().Err(err).Str(logger.FieldReportID, id).Msg("failed to mark queued job failed")
			continue
		}
		jobsTotal.WithLabelValues(string(model.JobFailed)).Inc()
		s.log.Warn().Str(logger.FieldReportID, id).Msg("queued report job dropped at shutdown")
	}
}

// Submit records a pending job and hands it to a worker. It does not wait for the report.
func (s *Service) Submit(ctx context.Context) (string, error) {
	id := NewReportID()
	job := &model.ReportJob{
		ReportID:  id,
		Status:    model.JobPending,
		CreatedAt: s.now(),
	}
	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return "", err
	}

	if err := s.pool.Dispatch(id); err != nil {
		if uerr := s.jobs.UpdateJob(ctx, id, store.JobUpdate{Status: model.JobFailed, At: s.now()}); uerr != nil {
			logger.Ctx(ctx).Error().Err(uerr).Str(logger.FieldReportID, id).Msg("failed to mark undispatched job")
		}
		jobsTotal.WithLabelValues(string(model.JobFailed)).Inc()
		return "", fmt.Errorf("dispatch report %s: %w", id, err)
	}

	logger.Ctx(ctx).Info().Str(logger.FieldReportID, id).Msg("report job submitted")
	return id, nil
}

// Query returns the job record of reportID.
func (s *Service) Query(ctx context.Context, reportID string) (*model.ReportJob, error) {
	job, err := s.jobs.GetJob(ctx, reportID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

// OpenArtifact opens the file of a finished job.
func (s *Service) OpenArtifact(ctx context.Context, job *model.ReportJob) (io.ReadCloser, error) {
	if job.Status != model.JobFinished || job.Filename == nil {
		return nil, ErrReportNotReady
	}
	return s.artifacts.Open(ctx, *job.Filename)
}

// process is the worker entry point. Every failure, including a panic, ends
// with the job marked failed.
func (s *Service) process(ctx context.Context, reportID string) {
	log := s.log.With().Str(logger.FieldReportID, reportID).Logger()
	ctx = log.WithContext(ctx)
	start := time.Now()

	err := s.run(ctx, reportID)
	status := model.JobFinished
	if err != nil {
		status = model.JobFailed
		log.Error().Err(err).Msg("report job failed")
		if uerr := s.jobs.UpdateJob(ctx, reportID, store.JobUpdate{Status: model.JobFailed, At: s.now()}); uerr != nil {
			log.Error().Err(uerr).Msg("failed to mark report job failed")
		}
	} else {
		log.Info().Dur(logger.FieldDuration, time.Since(start)).Msg("report job finished")
	}

	jobsTotal.WithLabelValues(string(status)).Inc()
	jobDuration.WithLabelValues(string(status)).Observe(time.Since(start).Seconds())
}

func (s *Service) run(ctx context.Context, reportID string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\n%s", ErrJobPanic, r, debug.Stack())
		}
	}()

	if err := s.jobs.UpdateJob(ctx, reportID, store.JobUpdate{Status: model.JobRunning, At: s.now()}); err != nil {
		return fmt.Errorf("mark running: %w", err)
	}

	key, err := s.generator.Generate(ctx, reportID)
	if err != nil {
		return err
	}

	if err := s.jobs.UpdateJob(ctx, reportID, store.JobUpdate{Status: model.JobFinished, At: s.now(), Filename: key}); err != nil {
		return fmt.Errorf("mark finished: %w", err)
	}
	return nil
}
