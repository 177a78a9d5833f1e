package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"kirim/internal/core/domain/model/audit"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/ports"
)

// newTrackingID generates a public order tracking identifier, e.g.
// "KRM-4F2A9C0D7B1E". Tracking IDs are opaque and carry no ordering.
func newTrackingID() (string, error) {
	raw := make([]byte, 6)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate tracking id: %w", err)
	}
	return "KRM-" + strings.ToUpper(hex.EncodeToString(raw)), nil
}

// newInvoicePublicID generates the public invoice identifier embedded in
// payment codes and gateway order references, e.g. "INV-2026-9A3C41D08B".
func newInvoicePublicID(now time.Time) (string, error) {
	raw := make([]byte, 5)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate invoice public id: %w", err)
	}
	return fmt.Sprintf("INV-%d-%s", now.Year(), strings.ToUpper(hex.EncodeToString(raw))), nil
}

// newInviteToken generates the opaque single-use invite token.
func newInviteToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate invite token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// appendAudit writes an audit record through the transaction-bound audit
// repository so it commits together with the change it describes.
func appendAudit(
	ctx context.Context, repo ports.AuditRepository, actorID *kernel.UUID,
	action, entityType string, entityID kernel.UUID, details string,
) error {
	record, err := audit.NewRecord(
		kernel.NewUUID(), actorID, action, entityType, entityID, details, time.Now().UTC())
	if err != nil {
		return err
	}
	return repo.Add(ctx, record)
}
