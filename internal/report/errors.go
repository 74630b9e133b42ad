package report

import "errors"

var (
	// ErrReportNotFound is returned when a report id is unknown.
	ErrReportNotFound = errors.New("report not found")
	// ErrReportNotReady is returned when the artifact of an unfinished job is requested.
	ErrReportNotReady = errors.New("report not ready")
	// ErrQueueFull is returned when no worker can accept a new job.
	ErrQueueFull = errors.New("report queue is full")
	// ErrJobPanic wraps a panic recovered while generating a report.
	ErrJobPanic = errors.New("report job panicked")
)
