package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"site-uptime-backend/internal/logger"
	"site-uptime-backend/internal/model"
	"site-uptime-backend/internal/report"
)

type triggerResponse struct {
	ReportID string `json:"report_id"`
}

type statusResponse struct {
	ReportID string          `json:"report_id"`
	Status   model.JobStatus `json:"status"`
}

// TriggerReport handles POST /api/trigger_report. It answers as soon as the
// job is queued.
func (h *Handler) TriggerReport(c *gin.Context) {
	ctx := c.Request.Context()
	id, err := h.reports.Submit(ctx)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("failed to submit report")
		status := http.StatusInternalServerError
		if errors.Is(err, report.ErrQueueFull) {
			status = http.StatusServiceUnavailable
		}
		c.AbortWithStatusJSON(status, gin.H{"error": "failed to trigger report"})
		return
	}
	c.JSON(http.StatusOK, triggerResponse{ReportID: id})
}

// GetReport handles GET /api/get_report/:report_id. Unfinished jobs answer with
// their status; finished jobs stream the CSV file.
func (h *Handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("report_id")

	job, err := h.reports.Query(ctx, id)
	if errors.Is(err, report.ErrReportNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str(logger.FieldReportID, id).Msg("failed to query report")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to query report"})
		return
	}

	if job.Status != model.JobFinished {
		c.JSON(http.StatusOK, statusResponse{ReportID: job.ReportID, Status: job.Status})
		return
	}

	rc, err := h.reports.OpenArtifact(ctx, job)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str(logger.FieldReportID, id).Msg("failed to open report artifact")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "report file unavailable"})
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report_%s.csv"`, job.ReportID))
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str(logger.FieldReportID, id).Msg("report download interrupted")
	}
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(c *gin.Context) {
	if h.health != nil {
		if err := h.health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
