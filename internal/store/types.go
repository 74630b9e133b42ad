package store

import (
	"errors"
	"time"

	"site-uptime-backend/internal/model"
)

var (
	// ErrNotFound is returned when a job id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidTransition is returned when a job cannot move to the requested status.
	ErrInvalidTransition = errors.New("invalid job status transition")
)

// JobUpdate moves a job to Status at time At. Filename is required for finished jobs.
type JobUpdate struct {
	Status   model.JobStatus
	At       time.Time
	Filename string
}
