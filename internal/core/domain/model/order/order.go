package order

import (
	"errors"
	"fmt"
	"time"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Contact holds the name and phone of a party on the order.
type Contact struct {
	Name  string
	Phone string
}

// Order is the aggregate root for one delivery job: an ordered sequence of
// stops executed by an assigned driver on behalf of a tenant's service.
//
// Order enforces these invariants:
//   - At least two stops, with at least one pickup and one dropoff
//   - Stop sequence numbers are contiguous starting from 1
//   - Status transitions follow the fixed lifecycle table
//   - Delivered and Cancelled orders are immutable
//   - Estimated cost is fixed at creation
//
// Orders created with a pre-assigned driver start in Accepted; orders
// without one start in PendingDispatch awaiting assignment.
type Order struct {
	id            kernel.UUID
	trackingID    string
	serviceID     kernel.UUID
	driverID      *kernel.UUID
	vehicleID     *kernel.UUID
	orderer       Contact
	recipient     Contact
	estimatedCost int64
	notes         string
	status        Status
	stops         []*Stop
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates a validated Order with its stops as one unit.
//
// The stops slice is validated for route shape (see invariants above).
// driverID and vehicleID are optional: supplying a driver pre-assigns the
// order and it starts Accepted. Tenant ownership of the driver and vehicle
// is the caller's concern; the aggregate only guards internal consistency.
func NewOrder(
	id kernel.UUID,
	trackingID string,
	serviceID kernel.UUID,
	orderer Contact,
	recipient Contact,
	estimatedCost int64,
	notes string,
	stops []*Stop,
	driverID *kernel.UUID,
	vehicleID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		orderer:       orderer,
		recipient:     recipient,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrackingID(trackingID),
		o.setServiceID(serviceID),
		o.setEstimatedCost(estimatedCost),
		o.setStops(stops),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		o.driverID = driverID
		o.vehicleID = vehicleID
		o.status = Accepted
	} else {
		o.status = PendingDispatch
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, trusting the stored
// status but re-checking structural invariants.
func RestoreOrder(
	id kernel.UUID,
	trackingID string,
	serviceID kernel.UUID,
	orderer Contact,
	recipient Contact,
	estimatedCost int64,
	notes string,
	status Status,
	stops []*Stop,
	driverID *kernel.UUID,
	vehicleID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, trackingID, serviceID, orderer, recipient, estimatedCost, notes,
		stops, driverID, vehicleID, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackingID returns the public tracking identifier.
func (o *Order) TrackingID() string {
	return o.trackingID
}

// ServiceID returns the owning delivery service.
func (o *Order) ServiceID() kernel.UUID {
	return o.serviceID
}

// Driver returns the assigned driver's ID, or nil if unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Vehicle returns the assigned vehicle's ID, or nil if unassigned.
func (o *Order) Vehicle() *kernel.UUID {
	return o.vehicleID
}

// Orderer returns the ordering party contact.
func (o *Order) Orderer() Contact {
	return o.orderer
}

// Recipient returns the receiving party contact.
func (o *Order) Recipient() Contact {
	return o.recipient
}

// EstimatedCost returns the quoted cost in whole currency units.
func (o *Order) EstimatedCost() int64 {
	return o.estimatedCost
}

// Notes returns the optional free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Stops returns the route stops in sequence order.
func (o *Order) Stops() []*Stop {
	return o.stops
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StopByID returns the stop with the given ID, or a NotFound-kind error
// when the stop does not belong to this order.
func (o *Order) StopByID(stopID kernel.UUID) (*Stop, error) {
	for _, stop := range o.stops {
		if stop.ID().IsEqual(stopID) {
			return stop, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("stop", stopID.String())
}

// IsAssignedTo reports whether the order is currently assigned to driverID.
func (o *Order) IsAssignedTo(driverID kernel.UUID) bool {
	return o.driverID != nil && o.driverID.IsEqual(driverID)
}

// Assign assigns a driver (and optionally a vehicle) to the order.
//
// Assignment is legal only while the order is in PendingDispatch; any other
// status yields a Conflict-kind error. On success the order moves to
// Accepted.
func (o *Order) Assign(driverID kernel.UUID, vehicleID *kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.status != PendingDispatch {
		return errs.NewConflictError(
			fmt.Sprintf("order is not in pending_dispatch (current status: %s)", o.status))
	}

	o.driverID = &driverID
	o.vehicleID = vehicleID
	o.status = Accepted
	return nil
}

// ChangeStatus moves the order to next, enforcing the transition table.
// On an illegal move the status is unchanged and a Conflict-kind
// "invalid status transition from X to Y" error is returned.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkDelivered transitions the order to Delivered.
func (o *Order) MarkDelivered() error {
	return o.ChangeStatus(Delivered)
}

// Cancel transitions the order to Cancelled.
func (o *Order) Cancel() error {
	return o.ChangeStatus(Cancelled)
}

// CompleteStop marks the identified stop completed.
//
// Returns a NotFound-kind error when the stop does not belong to this order.
// Re-completing an already-completed stop is a no-op; the boolean reports
// whether the stop actually changed state.
func (o *Order) CompleteStop(stopID kernel.UUID) (bool, error) {
	stop, err := o.StopByID(stopID)
	if err != nil {
		return false, err
	}
	return stop.Complete(), nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackingID(trackingID string) error {
	if trackingID == "" {
		return errs.NewValueIsRequiredError("trackingID")
	}
	o.trackingID = trackingID
	return nil
}

func (o *Order) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	o.serviceID = serviceID
	return nil
}

func (o *Order) setEstimatedCost(cost int64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedCost", fmt.Errorf("%d is negative", cost))
	}
	o.estimatedCost = cost
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// setStops validates the route shape: at least two stops, at least one
// pickup and one dropoff, and sequence numbers contiguous from 1.
func (o *Order) setStops(stops []*Stop) error {
	if len(stops) < 2 {
		return errs.NewValueIsOutOfRangeError("stops", len(stops), 2, "unbounded")
	}

	var pickups, dropoffs int
	for i, stop := range stops {
		if err := stop.Validate(); err != nil {
			return err
		}
		if stop.Sequence() != i+1 {
			return errs.NewValueIsInvalidErrorWithCause("stops",
				fmt.Errorf("sequence %d at position %d is not contiguous", stop.Sequence(), i+1))
		}
		switch stop.Type() {
		case StopTypePickup:
			pickups++
		case StopTypeDropoff:
			dropoffs++
		}
	}

	if pickups == 0 || dropoffs == 0 {
		return errs.NewValueIsInvalidErrorWithCause("stops",
			errors.New("route needs at least one pickup and one dropoff"))
	}

	o.stops = stops
	return nil
}
