package order

import (
	"errors"
	"fmt"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"
)

// ErrStopIsNotConstructed is returned when a Stop instance was not created
// through the NewStop factory method.
var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// StopType distinguishes pickup waypoints from dropoff waypoints.
type StopType int

const (
	// StopTypeUnknown is the invalid zero value.
	StopTypeUnknown StopType = iota

	// StopTypePickup marks a waypoint where goods are collected.
	StopTypePickup

	// StopTypeDropoff marks a waypoint where goods are delivered.
	StopTypeDropoff
)

// StopTypeFromString parses a wire/persistence stop type name.
func StopTypeFromString(s string) (StopType, error) {
	switch s {
	case "pickup":
		return StopTypePickup, nil
	case "dropoff":
		return StopTypeDropoff, nil
	default:
		return StopTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"stopType", fmt.Errorf("%q is not a valid stop type", s))
	}
}

// String returns the wire name of the stop type.
func (t StopType) String() string {
	switch t {
	case StopTypePickup:
		return "pickup"
	case StopTypeDropoff:
		return "dropoff"
	default:
		return "unknown"
	}
}

// Validate checks the stop type is pickup or dropoff.
func (t StopType) Validate() error {
	if t != StopTypePickup && t != StopTypeDropoff {
		return errs.NewValueIsInvalidErrorWithCause(
			"stopType", fmt.Errorf("%d is not a valid stop type", t))
	}
	return nil
}

// StopStatus is the completion state of a stop.
type StopStatus int

const (
	// StopStatusUnknown is the invalid zero value.
	StopStatusUnknown StopStatus = iota

	// StopPending means the driver has not completed the stop yet.
	StopPending

	// StopCompleted means the driver confirmed the stop.
	StopCompleted
)

// String returns the wire name of the stop status.
func (s StopStatus) String() string {
	switch s {
	case StopPending:
		return "pending"
	case StopCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Stop is a waypoint within an order's route. Stops are owned by exactly one
// order and carry a contiguous 1..N sequence number. At least one pickup and
// one dropoff must exist per order, enforced by the Order constructor.
type Stop struct {
	id       kernel.UUID
	sequence int
	stopType StopType
	address  string
	point    kernel.GeoPoint
	status   StopStatus

	isConstructed bool
}

// NewStop creates a pending Stop with validated fields. The sequence must be
// positive; contiguity across the order is validated by NewOrder.
func NewStop(id kernel.UUID, sequence int, stopType StopType, address string, point kernel.GeoPoint) (*Stop, error) {
	stop := &Stop{
		status:        StopPending,
		isConstructed: true,
	}

	if err := errors.Join(
		stop.setID(id),
		stop.setSequence(sequence),
		stop.setType(stopType),
		stop.setAddress(address),
		stop.setPoint(point),
	); err != nil {
		return nil, err
	}

	return stop, nil
}

// RestoreStop reconstructs a Stop from persistence without re-running
// creation-time rules.
func RestoreStop(
	id kernel.UUID, sequence int, stopType StopType, address string, point kernel.GeoPoint, status StopStatus,
) (*Stop, error) {
	stop, err := NewStop(id, sequence, stopType, address, point)
	if err != nil {
		return nil, err
	}
	if status != StopPending && status != StopCompleted {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"stopStatus", fmt.Errorf("%d is not a valid stop status", status))
	}
	stop.status = status
	return stop, nil
}

// Validate ensures the Stop was created through NewStop.
func (s *Stop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStopIsNotConstructed
	}
	return nil
}

// ID returns the stop's unique identifier.
func (s *Stop) ID() kernel.UUID {
	return s.id
}

// Sequence returns the stop's 1-based position in the route.
func (s *Stop) Sequence() int {
	return s.sequence
}

// Type returns whether the stop is a pickup or a dropoff.
func (s *Stop) Type() StopType {
	return s.stopType
}

// Address returns the human-readable stop address.
func (s *Stop) Address() string {
	return s.address
}

// Point returns the stop coordinates.
func (s *Stop) Point() kernel.GeoPoint {
	return s.point
}

// Status returns the stop completion state.
func (s *Stop) Status() StopStatus {
	return s.status
}

// IsCompleted reports whether the driver already confirmed this stop.
func (s *Stop) IsCompleted() bool {
	return s.status == StopCompleted
}

// Complete marks the stop completed. Completing an already-completed stop is
// a no-op; the return value reports whether the state actually changed.
func (s *Stop) Complete() bool {
	if s.status == StopCompleted {
		return false
	}
	s.status = StopCompleted
	return true
}

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stop) setSequence(sequence int) error {
	if sequence < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"sequence", fmt.Errorf("%d is not a positive sequence number", sequence))
	}
	s.sequence = sequence
	return nil
}

func (s *Stop) setType(stopType StopType) error {
	if err := stopType.Validate(); err != nil {
		return err
	}
	s.stopType = stopType
	return nil
}

func (s *Stop) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.address = address
	return nil
}

func (s *Stop) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	s.point = point
	return nil
}
