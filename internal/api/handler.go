package api

import (
	"context"
	"io"

	"site-uptime-backend/internal/model"
)

// ReportService is the job pipeline behind the report endpoints.
type ReportService interface {
	Submit(ctx context.Context) (string, error)
	Query(ctx context.Context, reportID string) (*model.ReportJob, error)
	OpenArtifact(ctx context.Context, job *model.ReportJob) (io.ReadCloser, error)
}

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func(ctx context.Context) error

// Handler holds shared dependencies for API handlers.
type Handler struct {
	reports ReportService
	health  HealthChecker
}

// NewHandler creates a new API handler. health may be nil.
func NewHandler(reports ReportService, health HealthChecker) *Handler {
	return &Handler{
		reports: reports,
		health:  health,
	}
}
