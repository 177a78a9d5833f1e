package ports

import (
	"context"

	"kirim/internal/core/domain/model/audit"
)

// AuditRepository defines the append-only persistence contract for audit
// records. Records are written through the unit of work so they commit or
// roll back together with the change they describe.
type AuditRepository interface {
	// Add appends an audit record.
	Add(ctx context.Context, record *audit.Record) error
}
