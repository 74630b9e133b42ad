package store

import (
	"gorm.io/gorm"
)

const insertBatchSize = 500

// Store groups every persistence concern of the service.
type Store interface {
	SampleStore
	ScheduleStore
	TimezoneStore
	JobStore
	SeedStore
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}
