// Package auditrepo appends audit records. Rows are write-only from the
// application's point of view; review happens through operator tooling.
package auditrepo

import (
	"time"

	"kirim/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// RecordDTO is the database row for one audit record.
type RecordDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	Action     string     `gorm:"type:varchar(64);index"`
	EntityType string     `gorm:"type:varchar(32)"`
	EntityID   uuid.UUID  `gorm:"type:uuid;index"`
	Details    string
	OccurredAt time.Time
}

// TableName overrides GORM's default naming to use "audit_records".
func (RecordDTO) TableName() string {
	return "audit_records"
}

func fromDomain(record *audit.Record) RecordDTO {
	var actorID *uuid.UUID
	if id := record.ActorID(); id != nil {
		raw := id.Bytes()
		actorID = &raw
	}

	return RecordDTO{
		ID:         record.ID().Bytes(),
		ActorID:    actorID,
		Action:     record.Action(),
		EntityType: record.EntityType(),
		EntityID:   record.EntityID().Bytes(),
		Details:    record.Details(),
		OccurredAt: record.OccurredAt(),
	}
}
