package model

import "time"

// JobStatus is the lifecycle state of a report job.
type JobStatus string

const (
	JobPending  JobStatus = "pending"
	JobRunning  JobStatus = "running"
	JobFinished JobStatus = "finished"
	JobFailed   JobStatus = "failed"
)

// Terminal reports whether no further transition is allowed from s.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobFinished, JobFailed:
		return true
	}
	return false
}

// Predecessors lists the states a job may move to s from.
func (s JobStatus) Predecessors() []JobStatus {
	switch s {
	case JobRunning:
		return []JobStatus{JobPending}
	case JobFinished:
		return []JobStatus{JobRunning}
	case JobFailed:
		// pending covers jobs that could not be handed to a worker.
		return []JobStatus{JobPending, JobRunning}
	}
	return nil
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, p := range next.Predecessors() {
		if p == s {
			return true
		}
	}
	return false
}

// ReportJob tracks one asynchronous report run.
type ReportJob struct {
	ReportID   string    `gorm:"primaryKey;size:32"`
	Status     JobStatus `gorm:"size:16;not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
	StartedAt  *time.Time
	FinishedAt *time.Time
	Filename   *string `gorm:"size:255"`
}

func (ReportJob) TableName() string { return "report_jobs" }
