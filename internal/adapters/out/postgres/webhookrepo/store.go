// Package webhookrepo parks payment notifications whose retries were
// exhausted so operators can reconcile them by hand.
package webhookrepo

import (
	"context"
	"time"

	"kirim/internal/core/ports"

	"gorm.io/gorm"
)

// FailureDTO is the database row for one dead-lettered notification.
type FailureDTO struct {
	ID       string `gorm:"type:varchar(64);primaryKey"`
	Payload  []byte
	Reason   string
	Attempts int
	FailedAt time.Time
}

// TableName overrides GORM's default naming to use "webhook_failures".
func (FailureDTO) TableName() string {
	return "webhook_failures"
}

// GormWebhookFailureStore implements ports.WebhookFailureStore using GORM.
// It writes outside the unit of work: a dead letter must survive even when
// the failed operation's transaction rolls back.
type GormWebhookFailureStore struct {
	db *gorm.DB
}

// NewGormWebhookFailureStore creates a GORM-backed dead-letter store.
func NewGormWebhookFailureStore(db *gorm.DB) *GormWebhookFailureStore {
	return &GormWebhookFailureStore{db: db}
}

// Add parks an exhausted notification.
func (s *GormWebhookFailureStore) Add(ctx context.Context, failure ports.WebhookFailure) error {
	dto := FailureDTO{
		ID:       failure.ID,
		Payload:  failure.Payload,
		Reason:   failure.Reason,
		Attempts: failure.Attempts,
		FailedAt: failure.FailedAt,
	}

	return s.db.WithContext(ctx).Create(&dto).Error
}
