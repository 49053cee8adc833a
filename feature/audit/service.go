package audit

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service records and queries the sync audit trail.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new audit service. A nil db yields a no-op recorder.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Enabled reports whether the audit trail is backed by a database.
func (s *Service) Enabled() bool {
	return s != nil && s.db != nil
}

// Migrate creates or updates the audit table.
func (s *Service) Migrate() error {
	if !s.Enabled() {
		return nil
	}
	if err := s.db.AutoMigrate(&SyncRecord{}); err != nil {
		return fmt.Errorf("failed to migrate audit table: %w", err)
	}
	return nil
}

// Record persists one sync run. Failures are logged but never propagated:
// a broken audit trail must not fail the sync itself.
func (s *Service) Record(ctx context.Context, rec SyncRecord) {
	if !s.Enabled() {
		return
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		s.logger.Warn("Failed to record sync run", zap.Error(err))
	}
}

// Recent returns the latest sync runs, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]SyncRecord, error) {
	if !s.Enabled() {
		return nil, nil
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	var records []SyncRecord
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query sync records: %w", err)
	}
	return records, nil
}
