package model

import "time"

// Status is the observed state of a site.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

// SiteSample is one status reading for a site (append-only).
type SiteSample struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	SiteID     int64     `gorm:"not null;index:idx_site_samples_site_observed,priority:1"`
	Status     Status    `gorm:"size:16;not null"`
	ObservedAt time.Time `gorm:"not null;index:idx_site_samples_site_observed,priority:2"`
}

func (SiteSample) TableName() string { return "site_samples" }
