// Package audit provides the audit trail Record entity. Records are written
// in the same transaction as the state change they describe so the trail
// never diverges from the data.
package audit

import (
	"errors"
	"time"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not
// created through the NewRecord factory method.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Well-known audit actions.
const (
	ActionOrderCreated       = "order.created"
	ActionOrderAssigned      = "order.assigned"
	ActionOrderStatusChanged = "order.status_changed"
	ActionOrderStopCompleted = "order.stop_completed"
	ActionReportFiled        = "order.report_filed"
	ActionInvoiceCreated     = "invoice.created"
	ActionInvoicePaid        = "invoice.paid"
	ActionInvoiceOverdue     = "invoice.overdue"
	ActionDriverInvited      = "driver.invited"
	ActionDriverJoined       = "driver.joined"
	ActionDriverRemoved      = "driver.removed"
)

// Record is a single immutable audit trail entry.
type Record struct {
	id         kernel.UUID
	actorID    *kernel.UUID
	action     string
	entityType string
	entityID   kernel.UUID
	details    string
	occurredAt time.Time

	isConstructed bool
}

// NewRecord creates a validated Record. actorID is nil for system-initiated
// changes such as scheduled jobs and gateway webhooks; details carries an
// optional human-readable summary.
func NewRecord(
	id kernel.UUID, actorID *kernel.UUID, action, entityType string,
	entityID kernel.UUID, details string, occurredAt time.Time,
) (*Record, error) {
	record := &Record{
		actorID:       actorID,
		details:       details,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setID(id),
		record.setAction(action),
		record.setEntityType(entityType),
		record.setEntityID(entityID),
		record.setOccurredAt(occurredAt),
	); err != nil {
		return nil, err
	}

	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// Validate ensures the Record was created through NewRecord.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// ActorID returns the acting user, or nil for system actions.
func (r *Record) ActorID() *kernel.UUID {
	return r.actorID
}

// Action returns the action name, e.g. "order.status_changed".
func (r *Record) Action() string {
	return r.action
}

// EntityType returns the kind of entity the action touched.
func (r *Record) EntityType() string {
	return r.entityType
}

// EntityID returns the identifier of the touched entity.
func (r *Record) EntityID() kernel.UUID {
	return r.entityID
}

// Details returns the optional summary text.
func (r *Record) Details() string {
	return r.details
}

// OccurredAt returns when the recorded change happened.
func (r *Record) OccurredAt() time.Time {
	return r.occurredAt
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setAction(action string) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}
	r.action = action
	return nil
}

func (r *Record) setEntityType(entityType string) error {
	if entityType == "" {
		return errs.NewValueIsRequiredError("entityType")
	}
	r.entityType = entityType
	return nil
}

func (r *Record) setEntityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.entityID = id
	return nil
}

func (r *Record) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	r.occurredAt = occurredAt
	return nil
}
